// Package bytecode defines the wire-level building blocks shared by the
// artifact loader and the virtual machine: the header/checksum constants,
// the bounded little-endian byte reader, the instruction opcode table and
// the value tag catalogue. It has no knowledge of runtime values or
// objects; those live in lang/object.
package bytecode

// Header and size limits, per the artifact format.
const (
	Header       = "MNML"
	HeaderLen    = len(Header)
	ChecksumLen  = 4
	StackMax     = 4096
	FramesMax    = 128
	LocalsMax    = 4096
)
