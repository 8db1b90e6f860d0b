// Package loader implements the artifact loader and deserializer: reading a
// bytecode artifact from a file (or standard input), validating its
// header/length/checksum, and recursively materializing it into a
// lang/object.Chunk tree, live heap objects and interned strings.
package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mnml-lang/minvm/lang/bytecode"
	"github.com/mnml-lang/minvm/lang/object"
)

// StdinSentinel is the case-insensitive path value that means "read the
// artifact from standard input until EOF".
const StdinSentinel = "*stdin"

// Kind classifies a Load failure, mirroring spec.md §7's error taxonomy for
// everything this package can fail at.
type Kind uint8

const (
	KindIO Kind = iota
	KindInvalidArtifact
	KindMalformedArtifact
)

// Error is returned by every function in this package that can fail.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func ioErr(format string, args ...any) error {
	return &Error{Kind: KindIO, Msg: fmt.Sprintf(format, args...)}
}

func invalidErr(format string, args ...any) error {
	return &Error{Kind: KindInvalidArtifact, Msg: fmt.Sprintf(format, args...)}
}

func malformedErr(format string, args ...any) error {
	return &Error{Kind: KindMalformedArtifact, Msg: fmt.Sprintf(format, args...)}
}

// ReadArtifactBytes slurps the artifact from path, or from standard input
// when path is the (case-insensitive) StdinSentinel.
func ReadArtifactBytes(path string, stdin io.Reader) ([]byte, error) {
	if strings.EqualFold(path, StdinSentinel) {
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, ioErr("reading standard input: %s", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioErr("reading %s: %s", path, err)
	}
	return data, nil
}

// Validate checks the header, minimum length and trailing checksum of an
// artifact buffer, per spec.md §4.5.
func Validate(data []byte) error {
	if len(data) <= bytecode.HeaderLen+bytecode.ChecksumLen {
		return invalidErr("invalid bytecode: artifact too short (%d bytes)", len(data))
	}
	if !bytes.Equal(data[:bytecode.HeaderLen], []byte(bytecode.Header)) {
		return invalidErr("invalid bytecode: header mismatch, artifact is not valid")
	}

	payloadEnd := len(data) - bytecode.ChecksumLen
	payload := data[bytecode.HeaderLen:payloadEnd]
	want := bytecode.Checksum(payload)

	r := bytecode.NewReader(data, payloadEnd)
	got, err := r.ReadU32LE()
	if err != nil {
		return invalidErr("invalid bytecode: missing checksum")
	}
	if got != want {
		return invalidErr("invalid bytecode: checksum mismatch, artifact is not valid")
	}
	return nil
}

// Load validates data and deserializes it into a top-level Chunk. Allocated
// heap objects and interned strings are recorded on heap, which the caller
// owns and shares with the resulting Chunk (the top-level Chunk itself is
// owned by the caller, typically a lang/machine.VM).
func Load(data []byte, heap *object.Heap) (*object.Chunk, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	r := bytecode.NewReader(data, bytecode.HeaderLen)
	chunk, err := readChunk(r, heap)
	if err != nil {
		return nil, err
	}
	return chunk, nil
}

// LoadFile reads and loads an artifact from path (or standard input, per
// StdinSentinel), returning the top-level Chunk and a fresh Heap owning
// every object and interned string it references.
func LoadFile(path string, stdin io.Reader) (*object.Chunk, *object.Heap, error) {
	data, err := ReadArtifactBytes(path, stdin)
	if err != nil {
		return nil, nil, err
	}
	heap := object.NewHeap()
	chunk, err := Load(data, heap)
	if err != nil {
		return nil, nil, err
	}
	return chunk, heap, nil
}
