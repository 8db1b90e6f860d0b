package machine

import (
	"math"

	"github.com/mnml-lang/minvm/lang/bytecode"
	"github.com/mnml-lang/minvm/lang/object"
)

// binaryOp implements ADD/SUB/MUL/DIV/MOD and the six comparisons. The
// right operand is popped first, then the left, per spec.md §4.7's binary
// instruction stack contract.
func (vm *VM) binaryOp(op bytecode.Opcode) *RuntimeError {
	right, err := vm.pop()
	if err != nil {
		return err
	}
	left, err := vm.pop()
	if err != nil {
		return err
	}

	switch op {
	case bytecode.EQL:
		return vm.push(object.Bool(object.Equal(left, right)))
	case bytecode.NEQ:
		return vm.push(object.Bool(!object.Equal(left, right)))
	}

	if op == bytecode.ADD {
		if ls, ok := left.(*object.StringObj); ok {
			rs, ok2 := right.(*object.StringObj)
			if !ok2 {
				if vm.TypeCheck {
					return vm.typeFault(op, left, right)
				}
				// TypeCheck disabled: trust the producer, treat the
				// mismatched operand as contributing no bytes rather than
				// asserting its Go type and panicking.
			}
			var rbytes []byte
			if ok2 {
				rbytes = rs.Str.Bytes
			}
			return vm.push(vm.Heap.NewStringObj(append(append([]byte{}, ls.Str.Bytes...), rbytes...)))
		}
	}

	if li, lok := left.(object.Int); lok {
		ri, rok := right.(object.Int)
		if !rok {
			if vm.TypeCheck {
				return vm.typeFault(op, left, right)
			}
			ri = 0
		}
		return vm.intBinaryOp(op, li, ri)
	}

	if lf, lok := left.(object.Float); lok {
		rf, rok := right.(object.Float)
		if !rok {
			if vm.TypeCheck {
				return vm.typeFault(op, left, right)
			}
			rf = 0
		}
		return vm.floatBinaryOp(op, lf, rf)
	}

	return vm.typeFault(op, left, right)
}

func (vm *VM) typeFault(op bytecode.Opcode, left, right object.Value) *RuntimeError {
	return vm.fault(KindTypeError, "%s: incompatible operand kinds %s and %s", op, left.Kind(), right.Kind())
}

func (vm *VM) intBinaryOp(op bytecode.Opcode, l, r object.Int) *RuntimeError {
	switch op {
	case bytecode.ADD:
		return vm.push(l + r)
	case bytecode.SUB:
		return vm.push(l - r)
	case bytecode.MUL:
		return vm.push(l * r)
	case bytecode.DIV:
		if r == 0 {
			return vm.fault(KindDivByZero, "integer divide by zero")
		}
		return vm.push(l / r)
	case bytecode.MOD:
		if r == 0 {
			return vm.fault(KindDivByZero, "integer modulo by zero")
		}
		return vm.push(l % r)
	case bytecode.LT:
		return vm.push(object.Bool(l < r))
	case bytecode.LE:
		return vm.push(object.Bool(l <= r))
	case bytecode.GT:
		return vm.push(object.Bool(l > r))
	case bytecode.GE:
		return vm.push(object.Bool(l >= r))
	default:
		return vm.fault(KindUnimplemented, "unimplemented integer operator %s", op)
	}
}

func (vm *VM) floatBinaryOp(op bytecode.Opcode, l, r object.Float) *RuntimeError {
	switch op {
	case bytecode.ADD:
		return vm.push(l + r)
	case bytecode.SUB:
		return vm.push(l - r)
	case bytecode.MUL:
		return vm.push(l * r)
	case bytecode.DIV:
		if r == 0 {
			return vm.fault(KindDivByZero, "float division by zero")
		}
		return vm.push(l / r)
	case bytecode.MOD:
		if r == 0 {
			return vm.fault(KindDivByZero, "float modulo by zero")
		}
		return vm.push(object.Float(math.Mod(float64(l), float64(r))))
	case bytecode.LT:
		return vm.push(object.Bool(l < r))
	case bytecode.LE:
		return vm.push(object.Bool(l <= r))
	case bytecode.GT:
		return vm.push(object.Bool(l > r))
	case bytecode.GE:
		return vm.push(object.Bool(l >= r))
	default:
		return vm.fault(KindUnimplemented, "unimplemented float operator %s", op)
	}
}

// unaryOp implements NEG and NOT.
func (vm *VM) unaryOp(op bytecode.Opcode) *RuntimeError {
	v, err := vm.pop()
	if err != nil {
		return err
	}

	switch op {
	case bytecode.NEG:
		switch n := v.(type) {
		case object.Int:
			return vm.push(-n)
		case object.Float:
			return vm.push(-n)
		default:
			if !vm.TypeCheck {
				return vm.push(object.Int(0))
			}
			return vm.fault(KindTypeError, "neg: operand of kind %s is not numeric", v.Kind())
		}

	case bytecode.NOT:
		return vm.push(object.Bool(!object.Truthy(v)))

	default:
		return vm.fault(KindUnimplemented, "unimplemented unary operator %s", op)
	}
}
