package machine

import (
	"testing"

	"github.com/mnml-lang/minvm/lang/object"
)

func TestCaptureUpvalueDedup(t *testing.T) {
	heap := object.NewHeap()
	fr := newCallFrame(nil, nil, 0)
	fr.Locals[2] = object.Int(5)
	fr.Locals[4] = object.Int(9)

	a := fr.captureUpvalue(heap, 2)
	b := fr.captureUpvalue(heap, 2)
	if a != b {
		t.Fatal("capturing the same slot twice should return the same upvalue")
	}

	c := fr.captureUpvalue(heap, 4)
	if c == a {
		t.Fatal("capturing a distinct slot returned the same upvalue")
	}
	if len(fr.OpenUpvalues) != 2 {
		t.Fatalf("OpenUpvalues has %d entries, want 2", len(fr.OpenUpvalues))
	}
	// descending order by slot.
	if fr.OpenUpvalues[0].Slot < fr.OpenUpvalues[1].Slot {
		t.Fatal("OpenUpvalues is not sorted descending by slot")
	}
}

func TestCloseUpvaluesFrom(t *testing.T) {
	heap := object.NewHeap()
	fr := newCallFrame(nil, nil, 0)
	fr.Locals[0] = object.Int(1)
	fr.Locals[1] = object.Int(2)
	fr.Locals[2] = object.Int(3)

	low := fr.captureUpvalue(heap, 0)
	mid := fr.captureUpvalue(heap, 1)
	high := fr.captureUpvalue(heap, 2)

	fr.closeUpvaluesFrom(1)

	if !low.IsOpen() {
		t.Fatal("slot 0 should remain open")
	}
	if mid.IsOpen() || high.IsOpen() {
		t.Fatal("slots >= 1 should be closed")
	}
	if len(fr.OpenUpvalues) != 1 {
		t.Fatalf("OpenUpvalues has %d entries after close, want 1", len(fr.OpenUpvalues))
	}
}
