package machine

import "github.com/mnml-lang/minvm/lang/object"

// call implements the CALL instruction: the operand stack holds the
// callee followed by argc arguments, per spec.md §4.7's call contract.
// Closures push a new CallFrame with their arguments copied into the
// first argc local slots; natives are invoked directly against the host
// function.
func (vm *VM) call(argc int) *RuntimeError {
	calleeIdx := vm.stackTop - argc - 1
	if calleeIdx < 0 {
		return vm.fault(KindStackUnderflow, "call: operand stack underflow")
	}
	callee := vm.stack[calleeIdx]

	switch c := callee.(type) {
	case *object.ClosureObj:
		if c.Fn.Arity != argc {
			return vm.fault(KindTypeError, "call: %s expects %d arguments, got %d", c.Fn.Name, c.Fn.Arity, argc)
		}
		if err := vm.pushFrame(c); err != nil {
			return err
		}
		fr := vm.currentFrame()
		copy(fr.Locals[:argc], vm.stack[calleeIdx+1:calleeIdx+1+argc])
		vm.clearStackFrom(calleeIdx)
		return nil

	case *object.NativeFnObj:
		if c.Arity != argc {
			return vm.fault(KindTypeError, "call: native %s expects %d arguments, got %d", c.Name, c.Arity, argc)
		}
		args := make([]object.Value, argc)
		copy(args, vm.stack[calleeIdx+1:calleeIdx+1+argc])
		vm.clearStackFrom(calleeIdx)

		result, err := c.Fn(args)
		if err != nil {
			return vm.fault(KindUnimplemented, "native %s: %s", c.Name, err)
		}
		return vm.push(result)

	default:
		return vm.fault(KindTypeError, "call: value of kind %s is not callable", callee.Kind())
	}
}

func (vm *VM) clearStackFrom(idx int) {
	for i := idx; i < vm.stackTop; i++ {
		vm.stack[i] = nil
	}
	vm.stackTop = idx
}

// pushClosure implements PUSH_CLOSURE: it reads a function constant index
// and an upvalue count, then for each upvalue descriptor (is_local byte,
// index u32) either captures the current frame's local or forwards an
// upvalue already captured by the enclosing closure, per spec.md §4.7.
func (vm *VM) pushClosure() *RuntimeError {
	idx, ferr := vm.nextU8()
	if ferr != nil {
		return ferr
	}
	fnVal, err := vm.constantAt(int(idx))
	if err != nil {
		return err
	}
	fnObj, ok := fnVal.(*object.FunctionObj)
	if !ok {
		return vm.fault(KindTypeError, "push_closure: constant %d is not a function", idx)
	}

	upcount, ferr := vm.nextU32()
	if ferr != nil {
		return ferr
	}

	closure := vm.Heap.NewClosureObj(fnObj, int(upcount))
	fr := vm.currentFrame()

	for i := 0; i < int(upcount); i++ {
		isLocal, ferr := vm.nextU8()
		if ferr != nil {
			return ferr
		}
		index, ferr := vm.nextU32()
		if ferr != nil {
			return ferr
		}

		if isLocal != 0 {
			if fr == nil {
				return vm.fault(KindBounds, "push_closure: is_local capture outside of any call frame")
			}
			closure.Upvalues[i] = fr.captureUpvalue(vm.Heap, int(index))
			continue
		}

		if fr == nil || fr.Closure == nil || int(index) >= len(fr.Closure.Upvalues) {
			return vm.fault(KindBounds, "push_closure: upvalue index %d out of bounds", index)
		}
		closure.Upvalues[i] = fr.Closure.Upvalues[index]
	}

	return vm.push(closure)
}
