package machine

import (
	"fmt"
	"time"

	"github.com/mnml-lang/minvm/lang/object"
)

// registerNatives builds the minimal native-function table every VM
// starts with: clock, len and print. NativeFnObj is a live object kind
// under spec.md §3 (not one of the reserved ones), but the spec leaves
// its actual host functions to whatever embeds the VM; these three give
// this module's own test fixtures something to call.
func (vm *VM) registerNatives() {
	vm.natives = map[string]*object.NativeFnObj{
		"clock": vm.Heap.NewNativeFnObj("clock", 0, nativeClock),
		"len":   vm.Heap.NewNativeFnObj("len", 1, nativeLen),
		"print": vm.Heap.NewNativeFnObj("print", 1, vm.nativePrint),
	}
}

// Native looks up a registered native function by name, for callers that
// need to seed a chunk's constant pool with one before running it.
func (vm *VM) Native(name string) (*object.NativeFnObj, bool) {
	n, ok := vm.natives[name]
	return n, ok
}

func nativeClock(_ []object.Value) (object.Value, error) {
	return object.Float(float64(time.Now().UnixNano()) / 1e9), nil
}

func nativeLen(args []object.Value) (object.Value, error) {
	switch v := args[0].(type) {
	case *object.StringObj:
		return object.Int(v.Str.Len()), nil
	default:
		return nil, fmt.Errorf("len: value of kind %s has no length", v.Kind())
	}
}

func (vm *VM) nativePrint(args []object.Value) (object.Value, error) {
	if s, ok := args[0].(*object.StringObj); ok {
		fmt.Fprintln(vm.Stdout, s.Str.String())
	} else {
		fmt.Fprintln(vm.Stdout, args[0].String())
	}
	return object.Void, nil
}
