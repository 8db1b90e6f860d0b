package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/mnml-lang/minvm/lang/loader"
	"github.com/mnml-lang/minvm/lang/machine"
)

func printError(stdio mainer.Stdio, err error) error {
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
	}
	return err
}

// runCmd loads the artifact at path and executes it to completion.
func runCmd(_ context.Context, stdio mainer.Stdio, path string, c *Cmd) error {
	chunk, heap, err := loader.LoadFile(path, stdio.Stdin)
	if err != nil {
		return printError(stdio, err)
	}

	vm := machine.New(chunk, heap)
	defer vm.Close()
	vm.Stdout = stdio.Stdout
	vm.Stderr = stdio.Stderr
	vm.TypeCheck = !c.NoTypeCheck

	if rerr := vm.Run(); rerr != nil {
		fmt.Fprint(stdio.Stderr, rerr.Report())
		return rerr
	}
	return nil
}
