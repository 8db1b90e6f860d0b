package object

import "fmt"

// UpvalueObj mediates access to a captured local variable. While open, it
// points directly into the owning frame's stack slot (reads and writes
// pass through); once the frame returns, it is closed: the last value is
// copied into the object and the pointer is released, so further
// holders keep observing the final value.
type UpvalueObj struct {
	objHeader

	location *Value // non-nil while open
	closed   Value
	isClosed bool

	// Slot is the stack slot this upvalue was captured from. It identifies
	// the upvalue for capture-dedup and open-list ordering; see
	// lang/machine's captureUpvalue / closeUpvaluesFrom.
	Slot int
}

var _ Object = (*UpvalueObj)(nil)

func (u *UpvalueObj) String() string { return fmt.Sprintf("<upvalue slot=%d>", u.Slot) }

// IsOpen reports whether the upvalue still reads through to its captured
// stack slot.
func (u *UpvalueObj) IsOpen() bool { return !u.isClosed }

// Location returns the stack slot pointer for an open upvalue, or nil if
// the upvalue is closed.
func (u *UpvalueObj) Location() *Value {
	if u.isClosed {
		return nil
	}
	return u.location
}

// Get returns the upvalue's current value, open or closed.
func (u *UpvalueObj) Get() Value {
	if u.isClosed {
		return u.closed
	}
	return *u.location
}

// Set writes through to the captured slot (if open) or the closed payload
// (if closed).
func (u *UpvalueObj) Set(v Value) {
	if u.isClosed {
		u.closed = v
		return
	}
	*u.location = v
}

// Close transitions the upvalue from open to closed, copying the current
// value of the captured slot into the closed payload. Closing an already
// closed upvalue is a no-op.
func (u *UpvalueObj) Close() {
	if u.isClosed {
		return
	}
	u.closed = *u.location
	u.isClosed = true
	u.location = nil
}

// NewOpenUpvalue returns a new open UpvalueObj pointing at location (a slot
// in some frame's stack/locals array).
func NewOpenUpvalue(location *Value, slot int) *UpvalueObj {
	return &UpvalueObj{location: location, Slot: slot}
}
