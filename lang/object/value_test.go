package object

import "testing"

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Bool(true), true},
		{Bool(false), false},
		{Nil, false},
		{Void, true},
		{Int(0), true},
		{Float(0), true},
	}
	for _, c := range cases {
		if got := Truthy(c.v); got != c.want {
			t.Errorf("Truthy(%v) = %t, want %t", c.v, got, c.want)
		}
	}
}

func TestEqualPrimitives(t *testing.T) {
	cases := []struct {
		a, b Value
		want bool
	}{
		{Int(1), Int(1), true},
		{Int(1), Int(2), false},
		{Int(1), Float(1), false},
		{Float(1.5), Float(1.5), true},
		{Bool(true), Bool(true), true},
		{Char('a'), Char('a'), true},
		{Nil, Nil, true},
		{Void, Void, true},
	}
	for _, c := range cases {
		if got := Equal(c.a, c.b); got != c.want {
			t.Errorf("Equal(%v, %v) = %t, want %t", c.a, c.b, got, c.want)
		}
	}
}

func TestEqualInternedStrings(t *testing.T) {
	heap := NewHeap()
	a := heap.NewStringObj([]byte("abc"))
	b := heap.NewStringObj([]byte("abc"))
	if a == b {
		t.Fatal("expected distinct StringObj wrappers")
	}
	if !Equal(a, b) {
		t.Fatal("StringObjs over equal interned content should compare equal")
	}
}
