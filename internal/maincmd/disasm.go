package maincmd

import (
	"context"

	"github.com/mna/mainer"

	"github.com/mnml-lang/minvm/lang/loader"
	"github.com/mnml-lang/minvm/lang/machine"
	"github.com/mnml-lang/minvm/lang/object"
)

// disasmCmd loads the artifact at path and prints its disassembly without
// executing it.
func disasmCmd(_ context.Context, stdio mainer.Stdio, path string, _ *Cmd) error {
	data, err := loader.ReadArtifactBytes(path, stdio.Stdin)
	if err != nil {
		return printError(stdio, err)
	}

	heap := object.NewHeap()
	chunk, err := loader.Load(data, heap)
	if err != nil {
		return printError(stdio, err)
	}

	machine.Disassemble(stdio.Stdout, chunk)
	return nil
}
