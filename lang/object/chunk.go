package object

// Metadata is the per-instruction debug record: the source line/column the
// instruction's first byte maps to, and the token length it spans.
type Metadata struct {
	Line, Col uint32
	Length    uint32
}

// Chunk is a bundle of code, constants and debug metadata: the unit of
// deserialization and execution scope. A Chunk is owned by its parent
// FunctionObj, except the top-level Chunk, which is owned by the VM.
// Constants may themselves contain FunctionObjs embedding further Chunks,
// so the type is recursive through Value/Object, not through a direct
// self-reference.
type Chunk struct {
	Name      string
	Code      []byte
	Constants []Value
	Metadata  []Metadata
}

// MetadataAt returns the debug metadata for code offset ip. Metadata is
// indexed directly by instruction-pointer position (one entry per code
// byte, repeated across a multi-byte instruction's operand bytes), so
// callers never need to resolve a byte offset to an instruction index.
func (c *Chunk) MetadataAt(ip int) Metadata {
	if ip < 0 || ip >= len(c.Metadata) {
		return Metadata{}
	}
	return c.Metadata[ip]
}
