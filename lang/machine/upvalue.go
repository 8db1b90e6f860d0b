package machine

import (
	"golang.org/x/exp/slices"

	"github.com/mnml-lang/minvm/lang/object"
)

// captureUpvalue implements spec.md §4.7's capture_upvalue(location,
// slot_index): it returns the existing open upvalue for slot if one is
// already in fr's open list, or allocates and links a new one. fr's
// OpenUpvalues stays sorted descending by Slot throughout, maintained with
// a binary-search insertion point (golang.org/x/exp/slices).
func (fr *CallFrame) captureUpvalue(heap *object.Heap, slot int) *object.UpvalueObj {
	i, found := slices.BinarySearchFunc(fr.OpenUpvalues, slot, func(uv *object.UpvalueObj, target int) int {
		return target - uv.Slot
	})
	if found {
		return fr.OpenUpvalues[i]
	}

	uv := heap.NewUpvalueObj(&fr.Locals[slot], slot)
	fr.OpenUpvalues = slices.Insert(fr.OpenUpvalues, i, uv)
	return uv
}

// closeUpvaluesFrom closes every open upvalue captured at or above
// thresholdSlot and drops them from fr's open list, per spec.md §4.7's
// upvalue-close contract. Because the list is sorted descending, the
// upvalues to close are always its leading run.
func (fr *CallFrame) closeUpvaluesFrom(thresholdSlot int) {
	i := 0
	for i < len(fr.OpenUpvalues) && fr.OpenUpvalues[i].Slot >= thresholdSlot {
		fr.OpenUpvalues[i].Close()
		i++
	}
	fr.OpenUpvalues = fr.OpenUpvalues[i:]
}
