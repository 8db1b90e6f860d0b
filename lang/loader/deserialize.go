package loader

import (
	"github.com/mnml-lang/minvm/lang/bytecode"
	"github.com/mnml-lang/minvm/lang/object"
)

// readChunk reads one chunk: name, code, constants, metadata, per spec.md
// §4.6's recursive grammar. Constants may themselves be FunctionObjs
// embedding further chunks, read via readValue -> readChunk recursion.
func readChunk(r *bytecode.Reader, heap *object.Heap) (*object.Chunk, error) {
	name, err := r.ReadString()
	if err != nil {
		return nil, malformedErr("reading chunk name: %s", err)
	}

	codeLen, err := r.ReadU32LE()
	if err != nil {
		return nil, malformedErr("reading code length: %s", err)
	}
	code, err := r.ReadBytes(int(codeLen))
	if err != nil {
		return nil, malformedErr("reading code: %s", err)
	}

	constCount, err := r.ReadU32LE()
	if err != nil {
		return nil, malformedErr("reading constant count: %s", err)
	}
	constants := make([]object.Value, 0, constCount)
	for i := uint32(0); i < constCount; i++ {
		v, err := readValue(r, heap)
		if err != nil {
			return nil, malformedErr("reading constant %d: %s", i, err)
		}
		constants = append(constants, v)
	}

	metaCount, err := r.ReadU32LE()
	if err != nil {
		return nil, malformedErr("reading metadata count: %s", err)
	}
	metadata := make([]object.Metadata, 0, metaCount)
	for i := uint32(0); i < metaCount; i++ {
		line, err := r.ReadU32LE()
		if err != nil {
			return nil, malformedErr("reading metadata %d line: %s", i, err)
		}
		col, err := r.ReadU32LE()
		if err != nil {
			return nil, malformedErr("reading metadata %d col: %s", i, err)
		}
		length, err := r.ReadU32LE()
		if err != nil {
			return nil, malformedErr("reading metadata %d length: %s", i, err)
		}
		metadata = append(metadata, object.Metadata{Line: line, Col: col, Length: length})
	}

	return &object.Chunk{
		Name:      name,
		Code:      code,
		Constants: constants,
		Metadata:  metadata,
	}, nil
}

// readValue reads one tagged constant-pool value, per spec.md §4.6/§6.
func readValue(r *bytecode.Reader, heap *object.Heap) (object.Value, error) {
	tagByte, err := r.ReadU8()
	if err != nil {
		return nil, malformedErr("reading value tag: %s", err)
	}
	tag := bytecode.Tag(tagByte)

	switch tag {
	case bytecode.TagInt:
		v, err := r.ReadI32LE()
		if err != nil {
			return nil, malformedErr("reading int payload: %s", err)
		}
		return object.Int(v), nil

	case bytecode.TagFloat:
		v, err := r.ReadF64LE()
		if err != nil {
			return nil, malformedErr("reading float payload: %s", err)
		}
		return object.Float(v), nil

	case bytecode.TagString:
		s, err := r.ReadString()
		if err != nil {
			return nil, malformedErr("reading string payload: %s", err)
		}
		return heap.NewStringObj([]byte(s)), nil

	case bytecode.TagChar:
		b, err := r.ReadU8()
		if err != nil {
			return nil, malformedErr("reading char payload: %s", err)
		}
		return object.Char(b), nil

	case bytecode.TagBool:
		b, err := r.ReadU8()
		if err != nil {
			return nil, malformedErr("reading bool payload: %s", err)
		}
		return object.Bool(b != 0), nil

	case bytecode.TagNil:
		return object.Nil, nil

	case bytecode.TagVoid:
		return object.Void, nil

	case bytecode.TagFunction:
		return readFunction(r, heap)

	case bytecode.TagClosure:
		// Reserved: closures are produced at runtime by PUSH_CLOSURE, never
		// materialized directly from an artifact's constant pool.
		return nil, malformedErr("unimplemented: closure constants are not supported")

	case bytecode.TagRange, bytecode.TagRecord, bytecode.TagInstance, bytecode.TagBoundMethod:
		return nil, malformedErr("unimplemented: %s constants are reserved and have no defined wire payload", tag)

	default:
		return nil, malformedErr("unknown value tag: %d", tagByte)
	}
}

// readFunction reads a Function constant payload: arity, optional name,
// then a recursive chunk.
func readFunction(r *bytecode.Reader, heap *object.Heap) (object.Value, error) {
	arity, err := r.ReadU32LE()
	if err != nil {
		return nil, malformedErr("reading function arity: %s", err)
	}

	hasName, err := r.ReadU8()
	if err != nil {
		return nil, malformedErr("reading function has_name flag: %s", err)
	}

	var name string
	if hasName != 0 {
		name, err = r.ReadString()
		if err != nil {
			return nil, malformedErr("reading function name: %s", err)
		}
	}

	chunk, err := readChunk(r, heap)
	if err != nil {
		return nil, err
	}

	return heap.NewFunctionObj(chunk, int(arity), name), nil
}
