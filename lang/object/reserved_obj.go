package object

import "fmt"

// The object kinds below are reserved per spec.md §3: their shapes are
// specified so that a future compiler/VM revision can materialize them,
// but no opcode in this VM core currently produces or consumes one, and
// the wire format defines no payload for their Tag values (lang/bytecode
// still enumerates them, per the canonical tag catalogue in spec.md §6).
// The deserializer treats encountering one as Unimplemented rather than
// guessing at an undefined payload layout.

// RangeObj represents a start/end/step range, optionally end-inclusive.
type RangeObj struct {
	objHeader
	Start, End, Step Value
	Inclusive        bool
}

var _ Object = (*RangeObj)(nil)

func (r *RangeObj) String() string {
	op := ".."
	if r.Inclusive {
		op = "..="
	}
	return fmt.Sprintf("<range %s%s%s>", r.Start, op, r.End)
}

// RecordObj is a record (struct-like) type definition: a name, its field
// names, and its methods (closures).
type RecordObj struct {
	objHeader
	Name    string
	Fields  []string
	Methods []*ClosureObj
}

var _ Object = (*RecordObj)(nil)

func (r *RecordObj) String() string { return fmt.Sprintf("<record %s>", r.Name) }

// InstanceObj is an instance of a RecordObj, with one Value per declared
// field, in RecordObj.Fields order.
type InstanceObj struct {
	objHeader
	Record *RecordObj
	Fields []Value
}

var _ Object = (*InstanceObj)(nil)

func (i *InstanceObj) String() string { return fmt.Sprintf("<instance %s>", i.Record.Name) }

// BoundMethodObj pairs a receiver value with one of its record's methods.
type BoundMethodObj struct {
	objHeader
	Receiver Value
	Method   *ClosureObj
}

var _ Object = (*BoundMethodObj)(nil)

func (b *BoundMethodObj) String() string { return fmt.Sprintf("<bound method %s>", b.Method.Fn.Name) }
