package loader_test

import (
	"encoding/binary"
	"math"

	"github.com/mnml-lang/minvm/lang/bytecode"
)

// The helpers below hand-assemble artifact byte streams for tests. There is
// no producer compiler in this module, so tests play that role directly.

type byteBuf struct {
	b []byte
}

func (w *byteBuf) u8(v byte) *byteBuf {
	w.b = append(w.b, v)
	return w
}

func (w *byteBuf) u32(v uint32) *byteBuf {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	w.b = append(w.b, tmp[:]...)
	return w
}

func (w *byteBuf) i32(v int32) *byteBuf { return w.u32(uint32(v)) }

func (w *byteBuf) f64(v float64) *byteBuf {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(v))
	w.b = append(w.b, tmp[:]...)
	return w
}

func (w *byteBuf) str(s string) *byteBuf {
	w.u32(uint32(len(s)))
	w.b = append(w.b, s...)
	return w
}

func (w *byteBuf) raw(b []byte) *byteBuf {
	w.b = append(w.b, b...)
	return w
}

// intConstant returns the encoded bytes of one Int constant.
func intConstant(v int32) []byte {
	w := &byteBuf{}
	w.u8(byte(bytecode.TagInt)).i32(v)
	return w.b
}

// stringConstant returns the encoded bytes of one String constant.
func stringConstant(s string) []byte {
	w := &byteBuf{}
	w.u8(byte(bytecode.TagString)).str(s)
	return w.b
}

// chunkBytes assembles one chunk: name, code, constants, (empty) metadata.
func chunkBytes(name string, code []byte, constants [][]byte) []byte {
	w := &byteBuf{}
	w.str(name)
	w.u32(uint32(len(code))).raw(code)
	w.u32(uint32(len(constants)))
	for _, c := range constants {
		w.raw(c)
	}
	w.u32(0) // metadata count
	return w.b
}

// artifactBytes wraps a chunk payload with the header and trailing
// checksum, per spec.md §4.5.
func artifactBytes(chunk []byte) []byte {
	payload := append([]byte(bytecode.Header), chunk...)
	sum := bytecode.Checksum(chunk)
	w := &byteBuf{b: payload}
	w.u32(sum)
	return w.b
}
