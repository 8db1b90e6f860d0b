package object

import "strconv"

// StringObj is a heap object wrapping a weak reference to an interned
// String. It owns no bytes: the owning StringSet outlives every StringObj
// that points into it.
type StringObj struct {
	objHeader
	Str *String
}

var _ Object = (*StringObj)(nil)

func (s *StringObj) String() string { return strconv.Quote(s.Str.String()) }
