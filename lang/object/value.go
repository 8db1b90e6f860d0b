// Package object implements the VM's data model: the Value tagged sum, the
// interned String type, the heap Object variants and their intrusive
// allocation list, and the Chunk (compiled function body) model. It has no
// knowledge of the dispatch loop or the wire format; those live in
// lang/machine and lang/loader respectively.
package object

import "strconv"

// ValueKind discriminates the variants of Value.
type ValueKind uint8

const (
	KindInt ValueKind = iota
	KindFloat
	KindBool
	KindChar
	KindNil
	KindVoid
	KindObject
)

func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	case KindNil:
		return "nil"
	case KindVoid:
		return "void"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is the interface implemented by every value the machine can push on
// the operand stack. Primitive variants (Int, Float, Bool, Char, Nil, Void)
// are plain by-value Go types; Object variants carry a non-owning pointer
// into the heap's intrusive object list.
type Value interface {
	Kind() ValueKind
	String() string
}

// Int is a 32-bit two's-complement integer value.
type Int int32

func (Int) Kind() ValueKind { return KindInt }
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// Float is an IEEE-754 double value.
type Float float64

func (Float) Kind() ValueKind  { return KindFloat }
func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// Bool is a boolean value.
type Bool bool

func (Bool) Kind() ValueKind  { return KindBool }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Char is a single-byte character value (see DESIGN.md's Open Question
// decision on wire size).
type Char byte

func (Char) Kind() ValueKind  { return KindChar }
func (c Char) String() string { return strconv.QuoteRune(rune(c)) }

// nilValue and voidValue are the singleton Nil and Void values.
type nilValue struct{}

func (nilValue) Kind() ValueKind  { return KindNil }
func (nilValue) String() string   { return "nil" }

type voidValue struct{}

func (voidValue) Kind() ValueKind { return KindVoid }
func (voidValue) String() string  { return "void" }

// Nil and Void are the sole instances of their respective kinds.
var (
	Nil  Value = nilValue{}
	Void Value = voidValue{}
)

// Truthy reports whether v is considered true by conditional jumps. Only
// Bool participates directly; every other kind is truthy except Nil.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case Bool:
		return bool(x)
	case nilValue:
		return false
	default:
		return true
	}
}

// Equal reports whether a and b are equal. Primitive kinds compare
// structurally; Object kinds compare by identity, except StringObj, where
// interning makes pointer identity and content equality coincide (see
// lang/object's intern set).
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Int:
		return av == b.(Int)
	case Float:
		return av == b.(Float)
	case Bool:
		return av == b.(Bool)
	case Char:
		return av == b.(Char)
	case nilValue, voidValue:
		return true
	default:
		ao, aok := a.(Object)
		bo, bok := b.(Object)
		if !aok || !bok {
			return false
		}
		if as, ok := ao.(*StringObj); ok {
			bs, ok2 := bo.(*StringObj)
			return ok2 && as.Str == bs.Str
		}
		return ao == bo
	}
}
