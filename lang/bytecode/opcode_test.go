package bytecode

import (
	"strings"
	"testing"
)

func TestOpcodeString(t *testing.T) {
	for op := Opcode(0); op <= OpcodeMax; op++ {
		if opcodeNames[op] == "" {
			t.Errorf("missing string representation of opcode %d", op)
		}
		if s := op.String(); strings.Contains(s, "illegal") {
			t.Errorf("invalid string representation of opcode %d", op)
		}
	}
}

func TestOpcodeHasArg(t *testing.T) {
	cases := []struct {
		op     Opcode
		hasArg bool
		isJump bool
	}{
		{NOP, false, false},
		{HALT, false, false},
		{RETURN, false, false},
		{CONSTANT, true, false},
		{GET_LOCAL, true, false},
		{CALL, true, false},
		{JUMP, true, true},
		{JUMP_IF_FALSE, true, true},
	}
	for _, c := range cases {
		t.Run(c.op.String(), func(t *testing.T) {
			if got := c.op.HasArg(); got != c.hasArg {
				t.Errorf("HasArg() = %t, want %t", got, c.hasArg)
			}
			if got := c.op.IsJump(); got != c.isJump {
				t.Errorf("IsJump() = %t, want %t", got, c.isJump)
			}
		})
	}
}
