package bytecode

// Tag is the one-byte discriminator that precedes every encoded constant
// value in an artifact's constant pool. Numbering is the canonical table
// from spec.md §6 (cross-checked, and where it disagrees, preferred over
// original_source/minvm/include/codes.h's draft numbering).
type Tag uint8

const (
	TagInt Tag = iota
	TagFloat
	TagString
	TagChar
	TagBool
	TagNil
	TagVoid
	TagFunction
	TagClosure
	TagRange
	TagRecord
	TagInstance
	TagBoundMethod
)

var tagNames = [...]string{
	TagInt:         "int",
	TagFloat:       "float",
	TagString:      "string",
	TagChar:        "char",
	TagBool:        "bool",
	TagNil:         "nil",
	TagVoid:        "void",
	TagFunction:    "function",
	TagClosure:     "closure",
	TagRange:       "range",
	TagRecord:      "record",
	TagInstance:    "instance",
	TagBoundMethod: "bound_method",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) && tagNames[t] != "" {
		return tagNames[t]
	}
	return "unknown tag"
}
