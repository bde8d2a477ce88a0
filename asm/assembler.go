// Copyright 2025, The dcpu16-assembler Authors

// Package asm is the text front end of the DCPU-16 assembler.
//
// Each line holds any number of label definitions (':name' or 'name:')
// followed by at most one instruction, a DAT directive or a .equ
// definition. A ';' starts a comment. Operands are separated by commas:
//
//	:loop   SET [0x2000+I], [A]   ; 2161 2000
//	        SUB I, 1
//	        IFN I, 0
//	        SET PC, loop
//	:msg    DAT "hello", 0
//
// Literals are decimal, 0x hexadecimal, 0b binary or 0o octal numbers,
// 'c' characters, label names, .equ names, or $(expr) expressions that
// are evaluated at assembly time.
package asm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"strings"
	"unicode"

	"github.com/Jayshua/dcpu16-assembler/ast"
	"github.com/Jayshua/dcpu16-assembler/codegen"
	"github.com/Jayshua/dcpu16-assembler/dcpu"
	"github.com/Jayshua/dcpu16-assembler/translate"
)

// Predefined system equates.
var sysEquate = map[string]string{
	"MEMORY_SIZE": "0x10000",
}

// basicMap maps mnemonics of basic operations.
var basicMap = map[string]dcpu.BasicOp{}

// specialMap maps mnemonics of special operations.
var specialMap = map[string]dcpu.SpecialOp{}

func init() {
	for _, op := range dcpu.BasicOps() {
		basicMap[op.String()] = op
	}
	for _, op := range dcpu.SpecialOps() {
		specialMap[op.String()] = op
	}
}

// Source is a parsed program, with the source location of each
// instruction.
type Source struct {
	Instructions []ast.Instruction // Program in order.
	LineNo       []int             // Line number of each instruction.
	Lines        []string          // Source text of each instruction.
}

// append adds an instruction with its location.
func (src *Source) append(inst ast.Instruction, lineno int, line string) {
	src.Instructions = append(src.Instructions, inst)
	src.LineNo = append(src.LineNo, lineno)
	src.Lines = append(src.Lines, line)
}

// Assembler parses DCPU-16 assembly text.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
	Strict  bool // If set, a label defined twice is an error.

	predefine map[string]string // Predefines.
	equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate, for
// every following Parse.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// Equate returns the value of an equate after the last Parse.
func (asm *Assembler) Equate(equ string) (value string, ok bool) {
	value, ok = asm.equate[equ]
	return
}

// Parse parses an input stream into a Source.
func (asm *Assembler) Parse(input io.Reader) (src *Source, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			src = nil
		}
	}()

	asm.equate = maps.Clone(sysEquate)
	for equ, value := range asm.predefine {
		asm.equate[equ] = value
	}

	src = &Source{}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			translate.Log("%v: %v", lineno, text)
		}

		line = strings.TrimSpace(stripComment(text))

		err = asm.parseLine(src, line, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()

	return
}

// parseLine parses a single line, appending its instructions to src.
func (asm *Assembler) parseLine(src *Source, line string, lineno int) (err error) {
	rest := line
	for {
		label, after, found := cutLabel(rest)
		if !found {
			break
		}
		if !identRe.MatchString(label) {
			err = ErrLabelInvalid
			return
		}
		src.append(ast.Label{Name: label}, lineno, line)
		rest = after
	}

	if len(rest) == 0 {
		return
	}

	end := strings.IndexFunc(rest, unicode.IsSpace)
	if end < 0 {
		end = len(rest)
	}
	mnemonic := strings.ToUpper(rest[:end])
	operands := strings.TrimSpace(rest[end:])

	var inst ast.Instruction

	switch mnemonic {
	case ".EQU":
		err = asm.defineEquate(operands)
		return
	case "DAT", ".DAT":
		inst, err = asm.dataOf(operands)
	default:
		inst, err = asm.instructionOf(mnemonic, operands)
	}
	if err != nil {
		return
	}

	src.append(inst, lineno, line)

	return
}

// defineEquate handles '.equ NAME VALUE'. Numeric values are evaluated
// once, at definition.
func (asm *Assembler) defineEquate(operands string) (err error) {
	end := strings.IndexFunc(operands, unicode.IsSpace)
	if end < 0 {
		err = ErrEquateSyntax
		return
	}
	name := operands[:end]
	value := strings.TrimSpace(operands[end:])
	if len(value) == 0 || !identRe.MatchString(name) {
		err = ErrEquateSyntax
		return
	}

	_, ok := asm.equate[name]
	if ok {
		err = ErrEquateDuplicate
		return
	}

	if value == name {
		err = ErrEquateLoop
		return
	}

	num, numErr := asm.valueOf(asm.expand(value))
	if numErr == nil {
		value = fmt.Sprintf("%#x", num)
	}

	asm.equate[name] = value

	return
}

// instructionOf parses a basic or special instruction.
func (asm *Assembler) instructionOf(mnemonic string, operands string) (inst ast.Instruction, err error) {
	args := splitTop(operands, ',')
	if len(operands) == 0 {
		args = nil
	}

	if op, ok := basicMap[mnemonic]; ok {
		if len(args) < 2 {
			err = ErrOperandMissing
			return
		}
		if len(args) > 2 {
			err = ErrOperandExtra
			return
		}
		basic := ast.Basic{Op: op}
		basic.B, err = asm.destinationOperand(args[0])
		if err != nil {
			return
		}
		basic.A, err = asm.valueOperand(args[1])
		if err != nil {
			return
		}
		inst = basic
		return
	}

	if op, ok := specialMap[mnemonic]; ok {
		if len(args) < 1 {
			err = ErrOperandMissing
			return
		}
		if len(args) > 1 {
			err = ErrOperandExtra
			return
		}
		special := ast.Special{Op: op}
		special.A, err = asm.valueOperand(args[0])
		if err != nil {
			return
		}
		inst = special
		return
	}

	err = ErrOpcodeInvalid
	return
}

// Generate generates the binary image of a parsed source. Errors are
// located at the line of the offending instruction.
func (asm *Assembler) Generate(src *Source) (prog *codegen.Program, err error) {
	gen := &codegen.Generator{Verbose: asm.Verbose, Strict: asm.Strict}

	prog, err = gen.Generate(src.Instructions)

	var errInst *codegen.ErrInstruction
	if errors.As(err, &errInst) && errInst.Index < len(src.LineNo) {
		err = &ErrSyntax{
			LineNo: src.LineNo[errInst.Index],
			Line:   src.Lines[errInst.Index],
			Err:    errInst.Err,
		}
	}

	return
}

// Assemble parses and generates a program.
func (asm *Assembler) Assemble(input io.Reader) (prog *codegen.Program, err error) {
	src, err := asm.Parse(input)
	if err != nil {
		return
	}

	return asm.Generate(src)
}
