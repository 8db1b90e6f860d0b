package object

import "fmt"

// FunctionObj is a compiled function: its Chunk, arity and optional name.
// It owns its Chunk (freed, in spirit, when the FunctionObj itself becomes
// unreachable -- see Heap.Close's note on Go's GC making manual frees
// unnecessary).
type FunctionObj struct {
	objHeader
	Chunk *Chunk
	Arity int
	Name  string
}

var _ Object = (*FunctionObj)(nil)

func (f *FunctionObj) String() string {
	if f.Name == "" {
		return fmt.Sprintf("<function %p>", f)
	}
	return fmt.Sprintf("<function %s>", f.Name)
}

// ClosureObj pairs a non-owning pointer to a FunctionObj with an owned
// array of captured Upvalue handles, one per upvalue the closure captures.
type ClosureObj struct {
	objHeader
	Fn       *FunctionObj
	Upvalues []*UpvalueObj
}

var _ Object = (*ClosureObj)(nil)

func (c *ClosureObj) String() string { return fmt.Sprintf("<closure %s>", c.Fn.Name) }

// NativeFn is a host function exposed to VM bytecode. It owns no
// resources, per spec.md §3.
type NativeFn func(args []Value) (Value, error)

// NativeFnObj wraps a native host function with a name and arity.
type NativeFnObj struct {
	objHeader
	Name  string
	Arity int
	Fn    NativeFn
}

var _ Object = (*NativeFnObj)(nil)

func (n *NativeFnObj) String() string { return fmt.Sprintf("<native %s>", n.Name) }
