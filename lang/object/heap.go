package object

// Heap owns every heap-allocated Object reachable from a VM, on one
// intrusive singly-linked list, plus the intern set all StringObjs borrow
// from. The loader and the VM share a single Heap so that nested function
// chunks may safely reference strings interned while building an outer or
// inner chunk.
//
// Go's garbage collector, not this list, is what actually reclaims memory:
// the list exists to satisfy the observable contract of spec.md §3/§4.4
// (every object reachable exactly once from one list) and to give a future
// reserved GC (spec.md §4.8) something to walk and to hang a
// bytes_allocated counter from.
type Heap struct {
	head    Object
	strings *StringSet

	// BytesAllocated is a reserved hook for a future mark-and-sweep
	// collector; it is incremented on every allocation and otherwise
	// unused today.
	BytesAllocated uint64
}

// NewHeap returns an empty Heap with a fresh intern set.
func NewHeap() *Heap {
	return &Heap{strings: NewStringSet()}
}

// Strings returns the heap's intern set.
func (h *Heap) Strings() *StringSet { return h.strings }

func (h *Heap) track(o Object, size uint64) {
	o.setNext(h.head)
	h.head = o
	h.BytesAllocated += size
}

// Objects calls fn for every object on the heap's intrusive list, in
// most-recently-allocated-first order.
func (h *Heap) Objects(fn func(Object)) {
	for o := h.head; o != nil; o = o.next() {
		fn(o)
	}
}

// NewStringObj interns b and returns a StringObj wrapping the canonical
// entry, tracked on the heap's object list.
func (h *Heap) NewStringObj(b []byte) *StringObj {
	obj := &StringObj{Str: h.strings.Intern(b)}
	obj.kind = ObjString
	h.track(obj, uint64(len(b)))
	return obj
}

// NewFunctionObj allocates a FunctionObj owning chunk.
func (h *Heap) NewFunctionObj(chunk *Chunk, arity int, name string) *FunctionObj {
	obj := &FunctionObj{Chunk: chunk, Arity: arity, Name: name}
	obj.kind = ObjFunction
	h.track(obj, uint64(len(chunk.Code)))
	return obj
}

// NewClosureObj allocates a ClosureObj over fn with upvalCount upvalue
// slots, initially nil.
func (h *Heap) NewClosureObj(fn *FunctionObj, upvalCount int) *ClosureObj {
	obj := &ClosureObj{Fn: fn, Upvalues: make([]*UpvalueObj, upvalCount)}
	obj.kind = ObjClosure
	h.track(obj, uint64(upvalCount)*8)
	return obj
}

// NewNativeFnObj allocates a NativeFnObj.
func (h *Heap) NewNativeFnObj(name string, arity int, fn NativeFn) *NativeFnObj {
	obj := &NativeFnObj{Name: name, Arity: arity, Fn: fn}
	obj.kind = ObjNative
	h.track(obj, 0)
	return obj
}

// NewUpvalueObj allocates an open UpvalueObj pointing at location.
func (h *Heap) NewUpvalueObj(location *Value, slot int) *UpvalueObj {
	obj := NewOpenUpvalue(location, slot)
	obj.kind = ObjUpvalue
	h.track(obj, 0)
	return obj
}

// NewRangeObj allocates a RangeObj.
func (h *Heap) NewRangeObj(start, end, step Value, inclusive bool) *RangeObj {
	obj := &RangeObj{Start: start, End: end, Step: step, Inclusive: inclusive}
	obj.kind = ObjRange
	h.track(obj, 0)
	return obj
}

// NewRecordObj allocates a RecordObj.
func (h *Heap) NewRecordObj(name string, fields []string, methods []*ClosureObj) *RecordObj {
	obj := &RecordObj{Name: name, Fields: fields, Methods: methods}
	obj.kind = ObjRecord
	h.track(obj, 0)
	return obj
}

// NewInstanceObj allocates an InstanceObj with one zero Value per field of
// record.
func (h *Heap) NewInstanceObj(record *RecordObj) *InstanceObj {
	obj := &InstanceObj{Record: record, Fields: make([]Value, len(record.Fields))}
	obj.kind = ObjInstance
	h.track(obj, uint64(len(record.Fields))*8)
	return obj
}

// NewBoundMethodObj allocates a BoundMethodObj.
func (h *Heap) NewBoundMethodObj(receiver Value, method *ClosureObj) *BoundMethodObj {
	obj := &BoundMethodObj{Receiver: receiver, Method: method}
	obj.kind = ObjBoundMethod
	h.track(obj, 0)
	return obj
}

// Close releases the heap's reference to its object list and intern set.
// It runs no per-object destructors: Go's GC reclaims the underlying
// memory once the Heap itself (and anything else referencing its objects)
// becomes unreachable. Close exists so VM shutdown has one place to make
// that release explicit and final, matching spec.md §4.4's "the VM frees
// the list on shutdown" contract at the API level.
func (h *Heap) Close() {
	h.head = nil
	h.strings = nil
}
