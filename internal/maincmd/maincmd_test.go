package maincmd

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mna/mainer"

	"github.com/mnml-lang/minvm/lang/bytecode"
)

// The helpers below hand-assemble artifact byte streams; there is no
// producer compiler in this module for CLI-level tests to drive instead.

type byteBuf struct{ b []byte }

func (w *byteBuf) u8(v byte) *byteBuf { w.b = append(w.b, v); return w }

func (w *byteBuf) u32(v uint32) *byteBuf {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	w.b = append(w.b, tmp[:]...)
	return w
}

func (w *byteBuf) raw(b []byte) *byteBuf { w.b = append(w.b, b...); return w }

func chunkBytes(code []byte) []byte {
	w := &byteBuf{}
	w.u32(0)                    // name length
	w.u32(uint32(len(code))).raw(code)
	w.u32(0) // constant count
	w.u32(0) // metadata count
	return w.b
}

func artifactBytes(chunk []byte) []byte {
	payload := append([]byte(bytecode.Header), chunk...)
	sum := bytecode.Checksum(chunk)
	w := &byteBuf{b: payload}
	w.u32(sum)
	return w.b
}

func writeArtifact(t *testing.T, code []byte) string {
	t.Helper()
	data := artifactBytes(chunkBytes(code))
	path := filepath.Join(t.TempDir(), "artifact.minvm")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunCmdHalt(t *testing.T) {
	code := []byte{byte(bytecode.HALT)}
	path := writeArtifact(t, code)

	var out, errs bytes.Buffer
	stdio := mainer.Stdio{Stdout: &out, Stderr: &errs}
	if err := runCmd(context.Background(), stdio, path, &Cmd{}); err != nil {
		t.Fatalf("run failed: %s (stderr: %s)", err, errs.String())
	}
}

// A runtime fault (here, an operand stack underflow) surfaces a reported
// runtime error and a non-nil command error, without panicking the CLI
// layer.
func TestRunCmdFaultReportsError(t *testing.T) {
	code := []byte{byte(bytecode.POP)}
	path := writeArtifact(t, code)

	var out, errs bytes.Buffer
	stdio := mainer.Stdio{Stdout: &out, Stderr: &errs}
	err := runCmd(context.Background(), stdio, path, &Cmd{})
	if err == nil {
		t.Fatal("expected a runtime fault")
	}
	if !strings.Contains(errs.String(), "Runtime error") {
		t.Fatalf("stderr = %q, want a reported runtime error", errs.String())
	}
}

func TestDisasmCmdListsInstructions(t *testing.T) {
	code := []byte{byte(bytecode.HALT)}
	path := writeArtifact(t, code)

	var out, errs bytes.Buffer
	stdio := mainer.Stdio{Stdout: &out, Stderr: &errs}
	if err := disasmCmd(context.Background(), stdio, path, &Cmd{}); err != nil {
		t.Fatalf("disasm failed: %s", err)
	}
	if !strings.Contains(out.String(), "halt") {
		t.Fatalf("disasm output = %q, want it to list halt", out.String())
	}
}

func TestMainBarePathAliasesRun(t *testing.T) {
	code := []byte{byte(bytecode.HALT)}
	path := writeArtifact(t, code)

	var out, errs bytes.Buffer
	stdio := mainer.Stdio{Stdout: &out, Stderr: &errs}
	c := &Cmd{}
	code2 := c.Main([]string{binName, path}, stdio)
	if code2 != mainer.Success {
		t.Fatalf("exit code = %v, want Success (stderr: %s)", code2, errs.String())
	}
}

func TestMainUnknownCommand(t *testing.T) {
	var out, errs bytes.Buffer
	stdio := mainer.Stdio{Stdout: &out, Stderr: &errs}
	c := &Cmd{}
	code := c.Main([]string{binName, "frobnicate", "x"}, stdio)
	if code != mainer.Failure {
		t.Fatalf("exit code = %v, want Failure", code)
	}
}
