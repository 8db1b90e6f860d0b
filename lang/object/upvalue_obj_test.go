package object

import "testing"

// TestUpvalueRoundTrip exercises Testable Property #4: an upvalue reads
// through to its captured slot while open, and keeps observing the last
// written value once closed.
func TestUpvalueRoundTrip(t *testing.T) {
	var local Value = Int(1)
	uv := NewOpenUpvalue(&local, 0)

	if !uv.IsOpen() {
		t.Fatal("new upvalue should be open")
	}
	if got := uv.Get(); got != Int(1) {
		t.Fatalf("Get() = %v, want Int(1)", got)
	}

	local = Int(7)
	if got := uv.Get(); got != Int(7) {
		t.Fatalf("Get() after write-through = %v, want Int(7)", got)
	}

	uv.Close()
	if uv.IsOpen() {
		t.Fatal("upvalue should be closed")
	}
	if got := uv.Get(); got != Int(7) {
		t.Fatalf("Get() after close = %v, want Int(7)", got)
	}

	// writes after close no longer reach the original slot.
	uv.Set(Int(99))
	if local != Int(7) {
		t.Fatalf("closed Set() leaked through to the original slot: %v", local)
	}
	if got := uv.Get(); got != Int(99) {
		t.Fatalf("Get() after closed Set() = %v, want Int(99)", got)
	}
}
