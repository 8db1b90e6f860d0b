package object

import "testing"

func TestHeapTracksAllocations(t *testing.T) {
	heap := NewHeap()
	heap.NewStringObj([]byte("a"))
	heap.NewStringObj([]byte("b"))
	heap.NewFunctionObj(&Chunk{}, 0, "f")

	count := 0
	heap.Objects(func(Object) { count++ })
	if count != 3 {
		t.Fatalf("Objects() visited %d objects, want 3", count)
	}
}

func TestHeapConstructsReservedObjects(t *testing.T) {
	heap := NewHeap()

	r := heap.NewRangeObj(Int(0), Int(10), Int(1), false)
	if r.Start != Int(0) || r.End != Int(10) || r.Inclusive {
		t.Fatalf("RangeObj fields = %+v, want start=0 end=10 inclusive=false", r)
	}

	rec := heap.NewRecordObj("Point", []string{"x", "y"}, nil)
	inst := heap.NewInstanceObj(rec)
	if len(inst.Fields) != 2 {
		t.Fatalf("InstanceObj has %d fields, want 2 (one per record field)", len(inst.Fields))
	}
	if inst.Fields[0] != nil {
		t.Fatalf("InstanceObj field should start nil, got %v", inst.Fields[0])
	}

	closure := heap.NewClosureObj(heap.NewFunctionObj(&Chunk{}, 0, "m"), 0)
	bm := heap.NewBoundMethodObj(inst, closure)
	if bm.Receiver != Value(inst) || bm.Method != closure {
		t.Fatal("BoundMethodObj did not retain its receiver/method")
	}

	count := 0
	heap.Objects(func(Object) { count++ })
	if count != 6 {
		t.Fatalf("Objects() visited %d objects, want 6", count)
	}
}

func TestHeapCloseReleasesList(t *testing.T) {
	heap := NewHeap()
	heap.NewStringObj([]byte("a"))
	heap.Close()

	count := 0
	heap.Objects(func(Object) { count++ })
	if count != 0 {
		t.Fatalf("Objects() after Close() visited %d objects, want 0", count)
	}
}
