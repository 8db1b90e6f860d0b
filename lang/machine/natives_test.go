package machine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mnml-lang/minvm/lang/object"
)

func TestNativeLen(t *testing.T) {
	heap := object.NewHeap()
	vm := New(&object.Chunk{Code: []byte{}}, heap)

	fn, ok := vm.Native("len")
	if !ok {
		t.Fatal("len native not registered")
	}
	s := heap.NewStringObj([]byte("hello"))
	got, err := fn.Fn([]object.Value{s})
	if err != nil {
		t.Fatal(err)
	}
	if got != object.Int(5) {
		t.Fatalf("len(\"hello\") = %v, want Int(5)", got)
	}

	if _, err := fn.Fn([]object.Value{object.Int(1)}); err == nil {
		t.Fatal("expected an error calling len on a non-string")
	}
}

func TestNativePrintUnquoted(t *testing.T) {
	var buf bytes.Buffer
	heap := object.NewHeap()
	vm := New(&object.Chunk{Code: []byte{}}, heap)
	vm.Stdout = &buf

	fn, _ := vm.Native("print")
	s := heap.NewStringObj([]byte("hi"))
	if _, err := fn.Fn([]object.Value{s}); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "hi" {
		t.Fatalf("print output = %q, want unquoted %q", got, "hi")
	}
}

func TestNativeClockReturnsFloat(t *testing.T) {
	heap := object.NewHeap()
	vm := New(&object.Chunk{Code: []byte{}}, heap)

	fn, _ := vm.Native("clock")
	got, err := fn.Fn(nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.(object.Float); !ok {
		t.Fatalf("clock() returned %T, want object.Float", got)
	}
}
