package maincmd_test

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/mna/mainer"

	"github.com/mnml-lang/minvm/internal/filetest"
	"github.com/mnml-lang/minvm/internal/maincmd"
)

var testUpdateDisasmTests = flag.Bool("test.update-disasm-tests", false, "If set, replace expected disasm golden output with actual results.")

func TestDisasmGolden(t *testing.T) {
	ctx := context.Background()
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".mnvm") {
		t.Run(fi.Name(), func(t *testing.T) {
			var buf, ebuf bytes.Buffer
			stdio := mainer.Stdio{Stdout: &buf, Stderr: &ebuf}
			c := &maincmd.Cmd{}
			code := c.Main([]string{"minvm", "disasm", filepath.Join(srcDir, fi.Name())}, stdio)
			if code != mainer.Success {
				t.Fatalf("disasm exited %v, stderr: %s", code, ebuf.String())
			}
			filetest.DiffOutput(t, fi, buf.String(), resultDir, testUpdateDisasmTests)
		})
	}
}
