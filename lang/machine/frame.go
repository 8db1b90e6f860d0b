package machine

import "github.com/mnml-lang/minvm/lang/object"

// CallFrame is the runtime record for one active call: the closure being
// executed, the instruction pointer to resume the caller at, and a
// fixed-capacity array of local variable slots.
//
// Every open upvalue ever captured from this frame's own Locals is tracked
// here too (rather than in one VM-wide list): a direct PUSH_CLOSURE capture
// (is_local=1) always targets the currently executing frame's own locals,
// so scoping an open-upvalue list per frame is equivalent to spec.md
// §3/§4.7's single VM-wide descending list, and it is what makes
// close-on-return a local operation instead of a VM-wide filter.
type CallFrame struct {
	Closure *object.ClosureObj

	SavedChunk *object.Chunk
	SavedIP    int

	Locals []object.Value

	// OpenUpvalues holds this frame's open upvalues, sorted descending by
	// Slot (see upvalue.go).
	OpenUpvalues []*object.UpvalueObj
}

func newCallFrame(closure *object.ClosureObj, savedChunk *object.Chunk, savedIP int) *CallFrame {
	return &CallFrame{
		Closure:    closure,
		SavedChunk: savedChunk,
		SavedIP:    savedIP,
		Locals:     make([]object.Value, localsMax),
	}
}
