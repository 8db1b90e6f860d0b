package bytecode

import "fmt"

// Opcode is the tag byte of one VM instruction. Instructions at or above
// OpcodeArgMin are followed by a fixed-width little-endian operand;
// instructions below it take no operand. Per spec.md §4.7, CONSTANT's and
// PUSH_CLOSURE's own index operand is a single byte (u8); every other
// argument-bearing opcode in this table uses a u32, a concrete choice this
// module makes for the opcodes the spec leaves unspecified (see IndexWidth).
//
// Several operations the spec leaves "reserved, specified by contract"
// (calls/returns, the exact table beyond PUSH_CONST/PUSH_CLOSURE/
// arithmetic) are fixed here to a concrete numbering, since this module is
// both the producer and the consumer of the artifacts it tests against.
type Opcode uint8

const ( //nolint:revive
	NOP  Opcode = iota // - NOP -
	HALT                // - HALT -              stop execution successfully

	// stack shuffling
	POP  //   x POP -
	DUP  //   x DUP x x

	// literals
	NIL   // - NIL Nil
	TRUE  // - TRUE True
	FALSE // - FALSE False

	// binary arithmetic (dispatched by lang/machine's binaryOp)
	ADD
	SUB
	MUL
	DIV
	MOD

	// binary comparisons
	EQL
	NEQ
	LT
	LE
	GT
	GE

	// unary
	NEG // x NEG -x
	NOT // x NOT !x

	RETURN // value RETURN -         return value from the current frame

	// --- opcodes with an argument go below this line ---

	CONSTANT     //                  - CONSTANT<idx>            value
	PUSH_CLOSURE //       fn upvalues PUSH_CLOSURE<idx><upcount> closure
	GET_LOCAL    //                  - GET_LOCAL<slot>          value
	SET_LOCAL    //              value SET_LOCAL<slot>          -
	GET_UPVALUE  //                  - GET_UPVALUE<slot>        value
	SET_UPVALUE  //              value SET_UPVALUE<slot>        -
	CLOSE_UPVALUE //                 - CLOSE_UPVALUE<slot>      -      close every open upvalue at or above slot
	CALL         //   fn arg1..argN CALL<argc>                 result
	JUMP         //                  - JUMP<addr>               -
	JUMP_IF_FALSE //              cond JUMP_IF_FALSE<addr>       -

	OpcodeArgMin = CONSTANT
	OpcodeMax    = JUMP_IF_FALSE
	jumpMin      = JUMP
	jumpMax      = JUMP_IF_FALSE
)

var opcodeNames = [...]string{
	NOP:           "nop",
	HALT:          "halt",
	POP:           "pop",
	DUP:           "dup",
	NIL:           "nil",
	TRUE:          "true",
	FALSE:         "false",
	ADD:           "add",
	SUB:           "sub",
	MUL:           "mul",
	DIV:           "div",
	MOD:           "mod",
	EQL:           "eql",
	NEQ:           "neq",
	LT:            "lt",
	LE:            "le",
	GT:            "gt",
	GE:            "ge",
	NEG:           "neg",
	NOT:           "not",
	RETURN:        "return",
	CONSTANT:      "constant",
	PUSH_CLOSURE:  "push_closure",
	GET_LOCAL:     "get_local",
	SET_LOCAL:     "set_local",
	GET_UPVALUE:   "get_upvalue",
	SET_UPVALUE:   "set_upvalue",
	CLOSE_UPVALUE: "close_upvalue",
	CALL:          "call",
	JUMP:          "jump",
	JUMP_IF_FALSE: "jump_if_false",
}

func (op Opcode) String() string {
	if int(op) < len(opcodeNames) && opcodeNames[op] != "" {
		return opcodeNames[op]
	}
	return fmt.Sprintf("illegal op (%d)", op)
}

// HasArg reports whether op is followed by an operand in the code stream.
// PUSH_CLOSURE additionally carries upvalue descriptor bytes beyond its own
// operand; see lang/machine's dispatch loop.
func (op Opcode) HasArg() bool { return op >= OpcodeArgMin }

// IndexWidth returns the byte width of op's own leading operand (not
// counting further bytes some instructions carry, such as PUSH_CLOSURE's
// upvalue descriptors or CALL's implicit argument slots). spec.md §4.7
// fixes PUSH_CONST (this table's CONSTANT) and PUSH_CLOSURE's own index
// operand at one byte; every other argument-bearing opcode here is this
// module's own u32 choice, per the opcode-table Open Question.
func (op Opcode) IndexWidth() int {
	switch op {
	case CONSTANT, PUSH_CLOSURE:
		return 1
	default:
		return 4
	}
}

// IsJump reports whether op's operand is a raw instruction offset rather
// than e.g. a constant-pool index or local slot.
func (op Opcode) IsJump() bool { return op >= jumpMin && op <= jumpMax }
