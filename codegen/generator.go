// Copyright 2025, The dcpu16-assembler Authors

// Package codegen turns a DCPU-16 syntax tree into a binary word image.
//
// Generation works in two passes. The first pass converts every instruction
// into its words, writing a 0x0000 placeholder for every label reference and
// recording the address of every label definition as it is encountered. The
// second pass replaces each placeholder with the address recorded for its
// label, which allows labels to be referenced before they are defined.
package codegen

import (
	"github.com/Jayshua/dcpu16-assembler/ast"
	"github.com/Jayshua/dcpu16-assembler/dcpu"
	"github.com/Jayshua/dcpu16-assembler/translate"
)

// pending is a label reference waiting for the label's address.
type pending struct {
	Label string // Label being referenced.
	Index int    // Output index of the placeholder word.
	Inst  int    // Index of the referencing instruction.
}

// Generator is a two pass code generator for the DCPU-16.
type Generator struct {
	Verbose bool // If set, verbosely logs the generator actions.
	Strict  bool // If set, a label defined twice is an error.

	output  []uint16          // Binary output so far.
	pending []pending         // Label references to resolve after pass one.
	labels  map[string]uint16 // Label addresses discovered in pass one.
	spans   []Span            // Output words of each instruction.
	inst    int               // Index of the instruction being consumed.
}

// Generate generates the binary image of a program with a default
// Generator.
func Generate(instructions []ast.Instruction) (words []uint16, err error) {
	gen := &Generator{}
	prog, err := gen.Generate(instructions)
	if err != nil {
		return
	}

	words = prog.Words
	return
}

// Generate consumes every instruction, then resolves every label
// reference. No partial image is returned on error.
func (gen *Generator) Generate(instructions []ast.Instruction) (prog *Program, err error) {
	gen.reset(len(instructions))
	defer gen.reset(0)

	for n, inst := range instructions {
		gen.inst = n
		ip := len(gen.output)

		err = gen.consume(inst)
		if err == nil && len(gen.output) > dcpu.MEMORY_SIZE {
			err = ErrImageTooLarge
		}
		if err != nil {
			err = &ErrInstruction{Index: n, Instruction: inst, Err: err}
			return
		}

		gen.spans = append(gen.spans, Span{Index: n, Ip: ip, Len: len(gen.output) - ip})
	}

	err = gen.finalize(instructions)
	if err != nil {
		return
	}

	prog = &Program{
		Words:  gen.output,
		Labels: gen.labels,
		Spans:  gen.spans,
	}

	return
}

// reset clears the generator state.
func (gen *Generator) reset(size int) {
	gen.output = nil
	gen.pending = nil
	gen.labels = make(map[string]uint16, 16)
	gen.spans = make([]Span, 0, size)
	gen.inst = 0
}

// consume emits the words of a single instruction.
func (gen *Generator) consume(instruction ast.Instruction) (err error) {
	switch inst := instruction.(type) {
	case ast.Basic:
		err = gen.generateBasic(inst)
	case ast.Special:
		err = gen.generateSpecial(inst)
	case ast.Label:
		err = gen.appendLabel(inst.Name)
	case ast.Data:
		err = gen.generateData(inst)
	default:
		err = ErrInstructionInvalid
	}

	return
}

// finalize replaces every placeholder word with its label's address,
// draining the pending list.
func (gen *Generator) finalize(instructions []ast.Instruction) (err error) {
	for _, ref := range gen.pending {
		addr, ok := gen.labels[ref.Label]
		if !ok {
			err = &ErrInstruction{
				Index:       ref.Inst,
				Instruction: instructions[ref.Inst],
				Err:         ErrLabelMissing(ref.Label),
			}
			return
		}

		if gen.Verbose {
			translate.Log("patch [0x%04x] = 0x%04x (%v)", ref.Index, addr, ref.Label)
		}

		gen.output[ref.Index] = addr
	}

	gen.pending = nil

	return
}

// appendLabel records the current output position as the label's address.
func (gen *Generator) appendLabel(label string) (err error) {
	if len(gen.output) >= dcpu.MEMORY_SIZE {
		err = ErrImageTooLarge
		return
	}

	addr := uint16(len(gen.output))

	old, ok := gen.labels[label]
	if ok {
		if gen.Strict {
			err = ErrLabelDuplicate(label)
			return
		}
		if gen.Verbose {
			translate.Log("label %v redefined, 0x%04x replaces 0x%04x", label, addr, old)
		}
	}

	if gen.Verbose {
		translate.Log("label %v = 0x%04x", label, addr)
	}

	gen.labels[label] = addr

	return
}

// generateData appends the words of a data declaration.
func (gen *Generator) generateData(data ast.Data) (err error) {
	for _, datum := range data.Data {
		switch d := datum.(type) {
		case ast.DataLabel:
			err = gen.appendLabel(d.Name)
		case ast.DataWord:
			gen.output = append(gen.output, d.Word)
		case ast.DataString:
			gen.output = append(gen.output, d.Words()...)
		default:
			err = ErrDatumInvalid
		}
		if err != nil {
			return
		}
	}

	return
}

// generateBasic appends a basic instruction, then the a operand's trailing
// word, then the b operand's trailing word.
func (gen *Generator) generateBasic(inst ast.Basic) (err error) {
	if !inst.Op.Valid() {
		err = ErrInstructionInvalid
		return
	}

	value, err := ast.EncodeValue(inst.A)
	if err != nil {
		return
	}

	dest, err := ast.EncodeDestination(inst.B)
	if err != nil {
		return
	}

	gen.output = append(gen.output, dcpu.MakeBasic(inst.Op, dest.Code, value.Code))

	if value.Next != nil {
		gen.generateLiteral(*value.Next)
	}

	if dest.Next != nil {
		gen.generateLiteral(*dest.Next)
	}

	return
}

// generateSpecial appends a special instruction and the a operand's
// trailing word.
func (gen *Generator) generateSpecial(inst ast.Special) (err error) {
	if !inst.Op.Valid() {
		err = ErrInstructionInvalid
		return
	}

	value, err := ast.EncodeValue(inst.A)
	if err != nil {
		return
	}

	gen.output = append(gen.output, dcpu.MakeSpecial(inst.Op, value.Code))

	if value.Next != nil {
		gen.generateLiteral(*value.Next)
	}

	return
}

// generateLiteral appends a trailing literal word. A label reference is
// written as 0x0000 and patched by finalize.
func (gen *Generator) generateLiteral(lit ast.Literal) {
	if lit.IsLabel() {
		gen.pending = append(gen.pending, pending{
			Label: lit.Label,
			Index: len(gen.output),
			Inst:  gen.inst,
		})
		gen.output = append(gen.output, 0x0000)
		return
	}

	gen.output = append(gen.output, lit.Number)
}
