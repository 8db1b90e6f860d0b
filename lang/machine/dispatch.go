package machine

import (
	"github.com/mnml-lang/minvm/lang/bytecode"
	"github.com/mnml-lang/minvm/lang/object"
)

// Run executes the VM's top-level chunk to completion, returning the
// runtime fault that stopped it, or nil on a HALT.
//
// Per this module's resolution of spec.md §9's open question, every
// operand read is bounds-checked against the executing chunk's code
// (rather than trusting the loader unconditionally): a Go slice index out
// of range panics, which is strictly worse than a reported RuntimeError.
func (vm *VM) Run() *RuntimeError {
	for {
		op, ferr := vm.nextOp()
		if ferr != nil {
			return ferr
		}

		switch op {
		case bytecode.NOP:
			// no-op

		case bytecode.HALT:
			return nil

		case bytecode.POP:
			if _, err := vm.pop(); err != nil {
				return err
			}

		case bytecode.DUP:
			v, err := vm.peek(0)
			if err != nil {
				return err
			}
			if err := vm.push(v); err != nil {
				return err
			}

		case bytecode.NIL:
			if err := vm.push(object.Nil); err != nil {
				return err
			}
		case bytecode.TRUE:
			if err := vm.push(object.Bool(true)); err != nil {
				return err
			}
		case bytecode.FALSE:
			if err := vm.push(object.Bool(false)); err != nil {
				return err
			}

		case bytecode.ADD, bytecode.SUB, bytecode.MUL, bytecode.DIV, bytecode.MOD,
			bytecode.EQL, bytecode.NEQ, bytecode.LT, bytecode.LE, bytecode.GT, bytecode.GE:
			if err := vm.binaryOp(op); err != nil {
				return err
			}

		case bytecode.NEG, bytecode.NOT:
			if err := vm.unaryOp(op); err != nil {
				return err
			}

		case bytecode.RETURN:
			val, err := vm.pop()
			if err != nil {
				return err
			}
			if vm.frameCount == 0 {
				return vm.fault(KindBounds, "return outside of any call frame")
			}
			vm.popFrame()
			if err := vm.push(val); err != nil {
				return err
			}

		case bytecode.CONSTANT:
			idx, ferr := vm.nextU8()
			if ferr != nil {
				return ferr
			}
			v, err := vm.constantAt(int(idx))
			if err != nil {
				return err
			}
			if err := vm.push(v); err != nil {
				return err
			}

		case bytecode.PUSH_CLOSURE:
			if err := vm.pushClosure(); err != nil {
				return err
			}

		case bytecode.GET_LOCAL:
			slot, ferr := vm.nextU32()
			if ferr != nil {
				return ferr
			}
			v, err := vm.localAt(int(slot))
			if err != nil {
				return err
			}
			if err := vm.push(v); err != nil {
				return err
			}

		case bytecode.SET_LOCAL:
			slot, ferr := vm.nextU32()
			if ferr != nil {
				return ferr
			}
			v, err := vm.peek(0)
			if err != nil {
				return err
			}
			if err := vm.setLocalAt(int(slot), v); err != nil {
				return err
			}

		case bytecode.GET_UPVALUE:
			slot, ferr := vm.nextU32()
			if ferr != nil {
				return ferr
			}
			uv, err := vm.upvalueAt(int(slot))
			if err != nil {
				return err
			}
			if err := vm.push(uv.Get()); err != nil {
				return err
			}

		case bytecode.SET_UPVALUE:
			slot, ferr := vm.nextU32()
			if ferr != nil {
				return ferr
			}
			uv, err := vm.upvalueAt(int(slot))
			if err != nil {
				return err
			}
			v, err2 := vm.peek(0)
			if err2 != nil {
				return err2
			}
			uv.Set(v)

		case bytecode.CLOSE_UPVALUE:
			slot, ferr := vm.nextU32()
			if ferr != nil {
				return ferr
			}
			fr := vm.currentFrame()
			if fr == nil {
				return vm.fault(KindBounds, "close_upvalue outside of any call frame")
			}
			fr.closeUpvaluesFrom(int(slot))

		case bytecode.CALL:
			argc, ferr := vm.nextU32()
			if ferr != nil {
				return ferr
			}
			if err := vm.call(int(argc)); err != nil {
				return err
			}

		case bytecode.JUMP:
			addr, ferr := vm.nextU32()
			if ferr != nil {
				return ferr
			}
			if err := vm.jumpTo(int(addr)); err != nil {
				return err
			}

		case bytecode.JUMP_IF_FALSE:
			addr, ferr := vm.nextU32()
			if ferr != nil {
				return ferr
			}
			cond, err := vm.pop()
			if err != nil {
				return err
			}
			if !object.Truthy(cond) {
				if err := vm.jumpTo(int(addr)); err != nil {
					return err
				}
			}

		default:
			return vm.fault(KindUnimplemented, "unimplemented opcode %s", op)
		}
	}
}

// nextOp reads one opcode byte at the current ip and advances it.
func (vm *VM) nextOp() (bytecode.Opcode, *RuntimeError) {
	b, err := vm.nextU8()
	if err != nil {
		return 0, err
	}
	return bytecode.Opcode(b), nil
}

func (vm *VM) nextU8() (byte, *RuntimeError) {
	if vm.ip < 0 || vm.ip >= len(vm.chunk.Code) {
		return 0, vm.fault(KindBounds, "instruction pointer %d out of bounds (code length %d)", vm.ip, len(vm.chunk.Code))
	}
	b := vm.chunk.Code[vm.ip]
	vm.ip++
	return b, nil
}

func (vm *VM) nextU32() (uint32, *RuntimeError) {
	if vm.ip < 0 || vm.ip+4 > len(vm.chunk.Code) {
		return 0, vm.fault(KindBounds, "instruction operand at %d out of bounds (code length %d)", vm.ip, len(vm.chunk.Code))
	}
	v := uint32(vm.chunk.Code[vm.ip]) |
		uint32(vm.chunk.Code[vm.ip+1])<<8 |
		uint32(vm.chunk.Code[vm.ip+2])<<16 |
		uint32(vm.chunk.Code[vm.ip+3])<<24
	vm.ip += 4
	return v, nil
}

func (vm *VM) jumpTo(addr int) *RuntimeError {
	if addr < 0 || addr > len(vm.chunk.Code) {
		return vm.fault(KindBounds, "jump target %d out of bounds (code length %d)", addr, len(vm.chunk.Code))
	}
	vm.ip = addr
	return nil
}

func (vm *VM) constantAt(idx int) (object.Value, *RuntimeError) {
	if idx < 0 || idx >= len(vm.chunk.Constants) {
		return nil, vm.fault(KindBounds, "constant index %d out of bounds (pool size %d)", idx, len(vm.chunk.Constants))
	}
	return vm.chunk.Constants[idx], nil
}

func (vm *VM) localAt(slot int) (object.Value, *RuntimeError) {
	fr := vm.currentFrame()
	if fr == nil || slot < 0 || slot >= len(fr.Locals) {
		return nil, vm.fault(KindBounds, "local slot %d out of bounds", slot)
	}
	return fr.Locals[slot], nil
}

func (vm *VM) setLocalAt(slot int, v object.Value) *RuntimeError {
	fr := vm.currentFrame()
	if fr == nil || slot < 0 || slot >= len(fr.Locals) {
		return vm.fault(KindBounds, "local slot %d out of bounds", slot)
	}
	fr.Locals[slot] = v
	return nil
}

func (vm *VM) upvalueAt(slot int) (*object.UpvalueObj, *RuntimeError) {
	fr := vm.currentFrame()
	if fr == nil || fr.Closure == nil || slot < 0 || slot >= len(fr.Closure.Upvalues) {
		return nil, vm.fault(KindBounds, "upvalue slot %d out of bounds", slot)
	}
	return fr.Closure.Upvalues[slot], nil
}
