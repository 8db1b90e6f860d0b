package machine

import (
	"fmt"
	"io"

	"github.com/mnml-lang/minvm/lang/bytecode"
	"github.com/mnml-lang/minvm/lang/object"
)

// Disassemble writes a human-readable instruction listing for chunk (and,
// recursively, every Function constant it holds) to w.
func Disassemble(w io.Writer, chunk *object.Chunk) {
	disassembleChunk(w, chunk, "")
}

func disassembleChunk(w io.Writer, chunk *object.Chunk, indent string) {
	name := chunk.Name
	if name == "" {
		name = "<top level>"
	}
	fmt.Fprintf(w, "%s== %s ==\n", indent, name)

	var nested []*object.FunctionObj
	ip := 0
	for ip < len(chunk.Code) {
		ip, nested = disassembleInstruction(w, chunk, ip, indent, nested)
	}

	for _, fn := range nested {
		disassembleChunk(w, fn.Chunk, indent+"  ")
	}
}

func disassembleInstruction(w io.Writer, chunk *object.Chunk, ip int, indent string, nested []*object.FunctionObj) (int, []*object.FunctionObj) {
	op := bytecode.Opcode(chunk.Code[ip])
	meta := chunk.MetadataAt(ip)
	fmt.Fprintf(w, "%s%04d  %4d:%-4d  %s", indent, ip, meta.Line+1, meta.Col+1, op)

	next := ip + 1
	if !op.HasArg() {
		fmt.Fprintln(w)
		return next, nested
	}

	var arg uint32
	if op.IndexWidth() == 1 {
		if next < len(chunk.Code) {
			arg = uint32(chunk.Code[next])
		}
		next++
	} else {
		arg = readU32At(chunk.Code, next)
		next += 4
	}

	switch op {
	case bytecode.CONSTANT:
		fmt.Fprintf(w, " %d", arg)
		if int(arg) < len(chunk.Constants) {
			c := chunk.Constants[arg]
			fmt.Fprintf(w, " ; %s", c.String())
			if fn, ok := c.(*object.FunctionObj); ok {
				nested = append(nested, fn)
			}
		}
		fmt.Fprintln(w)

	case bytecode.PUSH_CLOSURE:
		fmt.Fprintf(w, " %d", arg)
		upcount := readU32At(chunk.Code, next)
		next += 4
		fmt.Fprintf(w, " upvalues=%d", upcount)
		for i := uint32(0); i < upcount && next+5 <= len(chunk.Code); i++ {
			isLocal := chunk.Code[next]
			idx := readU32At(chunk.Code, next+1)
			next += 5
			scope := "upvalue"
			if isLocal != 0 {
				scope = "local"
			}
			fmt.Fprintf(w, " (%s %d)", scope, idx)
		}
		fmt.Fprintln(w)

	case bytecode.JUMP, bytecode.JUMP_IF_FALSE:
		fmt.Fprintf(w, " -> %d\n", arg)

	default:
		fmt.Fprintf(w, " %d\n", arg)
	}

	return next, nested
}

func readU32At(code []byte, i int) uint32 {
	if i+4 > len(code) {
		return 0
	}
	return uint32(code[i]) | uint32(code[i+1])<<8 | uint32(code[i+2])<<16 | uint32(code[i+3])<<24
}
