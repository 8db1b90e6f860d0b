package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dolthub/swiss"
	"github.com/mna/mainer"
)

const binName = "minvm"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] <command> <path>
       %[1]s [<option>...] <path>
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] <command> <path>
       %[1]s [<option>...] <path>
       %[1]s -h|--help
       %[1]s -v|--version

Loads a bytecode artifact and runs it, or disassembles it.

The <command> can be one of:
       run                       Load and execute the artifact (default
                                 when <command> is omitted).
       disasm                    Load the artifact and print its
                                 disassembly without executing it.

<path> may be "%[2]s" (case-insensitive) to read the artifact from
standard input instead of a file.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
       --no-type-check           Disable arithmetic/comparison operand
                                 type checking.

More information on the %[1]s project:
       https://github.com/mnml-lang/minvm
`, binName, "*stdin")
)

// cmdFunc is a command handler: the <path> operand, plus the parsed Cmd
// for flags it cares about (such as NoTypeCheck).
type cmdFunc func(context.Context, mainer.Stdio, string, *Cmd) error

type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help        bool `flag:"h,help"`
	Version     bool `flag:"v,version"`
	NoTypeCheck bool `flag:"no-type-check"`

	args    []string
	flags   map[string]bool
	cmdFn   cmdFunc
	cmdPath string
}

func (c *Cmd) SetArgs(args []string) {
	c.args = args
}

func (c *Cmd) SetFlags(flags map[string]bool) {
	c.flags = flags
}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	if len(c.args) == 0 {
		return errors.New("no path specified")
	}

	cmdName := c.args[0]
	rest := c.args[1:]
	if cmdName != "run" && cmdName != "disasm" {
		// bare `minvm <path>` aliases `run <path>`, per the VM's single-path
		// command-line contract.
		cmdName = "run"
		rest = c.args
	}

	if len(rest) != 1 {
		return fmt.Errorf("%s: exactly one artifact path is required", cmdName)
	}

	fn, ok := buildCmds().Get(cmdName)
	if !ok {
		return fmt.Errorf("unknown command: %s", cmdName)
	}
	c.cmdFn = fn
	c.cmdPath = rest[0]
	return nil
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false, // leaving this here for now in case some flags can use this
		EnvPrefix: binName + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.Failure
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success

	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.cmdPath, c); err != nil {
		// each command takes care of printing its errors, just return with an error code
		return mainer.Failure
	}
	return mainer.Success
}

// buildCmds returns the command dispatch table, keyed by command name.
func buildCmds() *swiss.Map[string, cmdFunc] {
	m := swiss.NewMap[string, cmdFunc](2)
	m.Put("run", runCmd)
	m.Put("disasm", disasmCmd)
	return m
}
