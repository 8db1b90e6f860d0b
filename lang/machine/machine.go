// Package machine implements the VM runtime: the operand-stack dispatch
// loop, call frames, arithmetic, closures/upvalues and the runtime error
// reporter. It has no knowledge of the wire format; it consumes a
// lang/object.Chunk tree already materialized by lang/loader.
package machine

import (
	"io"
	"os"

	"github.com/mnml-lang/minvm/lang/bytecode"
	"github.com/mnml-lang/minvm/lang/object"
)

const (
	stackMax  = bytecode.StackMax
	framesMax = bytecode.FramesMax
	localsMax = bytecode.LocalsMax
)

// VM is one execution of a loaded artifact: the operand stack, the call
// frame stack, the heap it took ownership of from the loader, and the
// native function table natives may dispatch into.
//
// current_chunk/ip from spec.md §3's VM state are the chunk and ip fields
// below, always describing the executing code. Each CallFrame only holds
// the *caller's* chunk/ip (SavedChunk/SavedIP), restored when it returns.
type VM struct {
	Heap *object.Heap

	topLevel *object.Chunk
	chunk    *object.Chunk
	ip       int

	stack    [stackMax]object.Value
	stackTop int

	frames     [framesMax]*CallFrame
	frameCount int

	natives map[string]*object.NativeFnObj

	Stdout io.Writer
	Stderr io.Writer

	// TypeCheck enables the arithmetic/comparison operand type-checking
	// discipline of spec.md §4.7 (ENABLE_TYPE_CHECK). Disabling it trusts
	// the loaded artifact's producer to have only ever emitted
	// well-typed operand combinations.
	TypeCheck bool
}

// New returns a VM ready to run chunk, taking ownership of heap (and
// everything it tracks) per spec.md §5's resource-acquisition contract.
func New(chunk *object.Chunk, heap *object.Heap) *VM {
	vm := &VM{
		Heap:      heap,
		topLevel:  chunk,
		chunk:     chunk,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		TypeCheck: true,
	}
	vm.registerNatives()
	return vm
}

// Close releases the VM's heap. The VM is the heap's authoritative owner,
// per spec.md §5; callers must not use either after Close.
func (vm *VM) Close() {
	vm.Heap.Close()
}

func (vm *VM) push(v object.Value) *RuntimeError {
	if vm.stackTop >= stackMax {
		return vm.fault(KindStackOverflow, "operand stack overflow (max %d)", stackMax)
	}
	vm.stack[vm.stackTop] = v
	vm.stackTop++
	return nil
}

func (vm *VM) pop() (object.Value, *RuntimeError) {
	if vm.stackTop <= 0 {
		return nil, vm.fault(KindStackUnderflow, "operand stack underflow")
	}
	vm.stackTop--
	v := vm.stack[vm.stackTop]
	vm.stack[vm.stackTop] = nil
	return v, nil
}

func (vm *VM) peek(distance int) (object.Value, *RuntimeError) {
	idx := vm.stackTop - 1 - distance
	if idx < 0 {
		return nil, vm.fault(KindStackUnderflow, "operand stack underflow")
	}
	return vm.stack[idx], nil
}

func (vm *VM) currentFrame() *CallFrame {
	if vm.frameCount == 0 {
		return nil
	}
	return vm.frames[vm.frameCount-1]
}

// pushFrame enters closure as a new call, saving the currently executing
// chunk/ip as the frame to resume once it returns.
func (vm *VM) pushFrame(closure *object.ClosureObj) *RuntimeError {
	if vm.frameCount >= framesMax {
		return vm.fault(KindFrameOverflow, "call frame overflow (max %d)", framesMax)
	}
	fr := newCallFrame(closure, vm.chunk, vm.ip)
	vm.frames[vm.frameCount] = fr
	vm.frameCount++
	vm.chunk = closure.Fn.Chunk
	vm.ip = 0
	return nil
}

// popFrame closes every upvalue still open on the returning frame and
// restores the caller's chunk/ip.
func (vm *VM) popFrame() *CallFrame {
	fr := vm.frames[vm.frameCount-1]
	fr.closeUpvaluesFrom(0)
	vm.frames[vm.frameCount-1] = nil
	vm.frameCount--

	vm.chunk = fr.SavedChunk
	vm.ip = fr.SavedIP
	return fr
}

func (vm *VM) fault(kind Kind, format string, args ...any) *RuntimeError {
	err := newFault(kind, format, args...)
	if vm.chunk != nil && vm.ip >= 0 && vm.ip < len(vm.chunk.Metadata) {
		meta := vm.chunk.Metadata[vm.ip]
		err.HasPos = true
		err.ChunkName = vm.chunk.Name
		err.Line = meta.Line
		err.Col = meta.Col
	}
	return err
}
