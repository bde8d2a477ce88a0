// Package disasm decodes DCPU-16 word images back into syntax trees.
package disasm

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/Jayshua/dcpu16-assembler/ast"
	"github.com/Jayshua/dcpu16-assembler/dcpu"
)

// Decode decodes an image into instructions, and the address of each.
//
// Words that do not start an instruction the assembler would generate
// (reserved opcodes, a literal b operand, a missing trailing word, or a
// trailing literal that fits inline) decode as a single word Data.
// Generating the decoded instructions gives back the same image.
func Decode(words []uint16) (insts []ast.Instruction, addrs []int) {
	return decode(words, true)
}

// decode decodes every instruction of an image. Unless canonical is set, a
// trailing literal that fits inline is accepted, as label references are
// always generated in that form.
func decode(words []uint16, canonical bool) (insts []ast.Instruction, addrs []int) {
	for ip := 0; ip < len(words); {
		inst, size := decodeAt(words, ip, canonical)
		insts = append(insts, inst)
		addrs = append(addrs, ip)
		ip += size
	}

	return
}

// decodeAt decodes the instruction at ip, returning it and its size.
func decodeAt(words []uint16, ip int, canonical bool) (inst ast.Instruction, size int) {
	word := words[ip]
	raw := ast.Data{Data: []ast.Datum{ast.DataWord{Word: word}}}
	opcode, b, a := dcpu.Split(word)

	value, na, ok := decodeOperand(a, true, canonical, words, ip+1)
	if !ok {
		return raw, 1
	}

	if opcode == 0 {
		op, ok := dcpu.LookupSpecial(b)
		if !ok {
			return raw, 1
		}
		return ast.Special{Op: op, A: value.(ast.Value)}, 1 + na
	}

	op, ok := dcpu.LookupBasic(opcode)
	if !ok {
		return raw, 1
	}

	dest, nb, ok := decodeOperand(b, false, canonical, words, ip+1+na)
	if !ok {
		return raw, 1
	}

	return ast.Basic{Op: op, B: dest.(ast.Destination), A: value.(ast.Value)}, 1 + na + nb
}

// decodeOperand decodes a field code. isA selects the a operand position.
// The result is an ast.Value for a, an ast.Destination for b.
func decodeOperand(code uint16, isA bool, canonical bool, words []uint16, at int) (operand any, n int, ok bool) {
	next := func() (lit ast.Literal, ok bool) {
		if at >= len(words) {
			return
		}
		n = 1
		return ast.Number(words[at]), true
	}

	switch {
	case code < dcpu.FIELD_REG_INDIRECT:
		return ast.Register{Reg: dcpu.Register(code)}, 0, true
	case code < dcpu.FIELD_REG_OFFSET:
		return ast.IndirectRegister{Reg: dcpu.Register(code - dcpu.FIELD_REG_INDIRECT)}, 0, true
	case code < dcpu.FIELD_PUSH_POP:
		lit, ok := next()
		if !ok {
			return nil, 0, false
		}
		return ast.IndirectOffset{Reg: dcpu.Register(code - dcpu.FIELD_REG_OFFSET), Offset: lit}, n, true
	case code == dcpu.FIELD_PUSH_POP:
		if isA {
			return ast.Pop{}, 0, true
		}
		return ast.Push{}, 0, true
	case code == dcpu.FIELD_PEEK:
		return ast.IndirectRegister{Reg: dcpu.REG_SP}, 0, true
	case code == dcpu.FIELD_PICK:
		lit, ok := next()
		if !ok {
			return nil, 0, false
		}
		return ast.IndirectOffset{Reg: dcpu.REG_SP, Offset: lit}, n, true
	case code == dcpu.FIELD_SP:
		return ast.Register{Reg: dcpu.REG_SP}, 0, true
	case code == dcpu.FIELD_PC:
		return ast.Register{Reg: dcpu.REG_PC}, 0, true
	case code == dcpu.FIELD_EX:
		return ast.Register{Reg: dcpu.REG_EX}, 0, true
	case code == dcpu.FIELD_NEXT_INDIRECT:
		lit, ok := next()
		if !ok {
			return nil, 0, false
		}
		return ast.IndirectLiteral{Address: lit}, n, true
	case !isA:
		// Literal destinations are never generated.
		return nil, 0, false
	case code == dcpu.FIELD_NEXT_LITERAL:
		lit, ok := next()
		if !ok {
			return nil, 0, false
		}
		if _, inline := dcpu.InlineLiteral(lit.Number); inline && canonical {
			return nil, 0, false
		}
		return ast.Immediate{Lit: lit}, n, true
	}

	value, ok := dcpu.InlineValue(code)
	if !ok {
		return nil, 0, false
	}
	return ast.Immediate{Lit: ast.Number(value)}, 0, true
}

// Listing writes one line per decoded instruction: its address, its words
// and its assembly text. Labels are written before their address.
func Listing(w io.Writer, words []uint16, labels map[string]uint16) (err error) {
	byAddr := map[int][]string{}
	for name, addr := range labels {
		byAddr[int(addr)] = append(byAddr[int(addr)], name)
	}

	writeLabels := func(addr int) (err error) {
		names := byAddr[addr]
		slices.Sort(names)
		for _, name := range names {
			_, err = fmt.Fprintf(w, ":%v\n", name)
			if err != nil {
				return
			}
		}
		delete(byAddr, addr)
		return
	}

	insts, addrs := decode(words, false)
	for n, inst := range insts {
		addr := addrs[n]
		size := len(words) - addr
		if n+1 < len(addrs) {
			size = addrs[n+1] - addr
		}

		for ip := addr; ip < addr+size; ip++ {
			err = writeLabels(ip)
			if err != nil {
				return
			}
		}

		hex := make([]string, size)
		for i := range size {
			hex[i] = fmt.Sprintf("%04x", words[addr+i])
		}

		_, err = fmt.Fprintf(w, "0x%04x: %-14s  %v\n", addr, strings.Join(hex, " "), inst)
		if err != nil {
			return
		}
	}

	// Labels at the end of the image.
	for _, addr := range slices.Sorted(maps.Keys(byAddr)) {
		err = writeLabels(addr)
		if err != nil {
			return
		}
	}

	return
}
