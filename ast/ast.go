// Package ast holds the syntax tree of a DCPU-16 assembly program and the
// operand encoder that maps operand nodes to field codes.
//
// A program is a []Instruction, where each instruction is one of:
//
//   - Basic   - a two operand instruction such as SET or ADD
//   - Special - a one operand instruction such as JSR or HWI
//   - Label   - a label definition such as :loop
//   - Data    - raw words embedded in the program with DAT
//
// The a operand of an instruction is a Value, the b operand of a basic
// instruction is a Destination. PUSH is only a Destination, POP and
// immediate literals are only Values.
package ast

import (
	"github.com/Jayshua/dcpu16-assembler/dcpu"
)

// Literal is either a resolved number or a reference to a label.
type Literal struct {
	Label  string // Label name, if set the literal is resolved later.
	Number uint16 // Value of a numeric literal.
}

// Number makes a numeric literal.
func Number(value uint16) Literal {
	return Literal{Number: value}
}

// LabelRef makes a literal referring to a label.
func LabelRef(name string) Literal {
	return Literal{Label: name}
}

// IsLabel returns true if the literal needs label resolution.
func (lit Literal) IsLabel() bool {
	return len(lit.Label) != 0
}

// Value is the a operand of an instruction.
type Value interface {
	value()
}

// Destination is the b operand of a basic instruction.
type Destination interface {
	destination()
}

// Register is direct register access.
type Register struct {
	Reg dcpu.Register
}

// IndirectRegister is [reg].
type IndirectRegister struct {
	Reg dcpu.Register
}

// IndirectOffset is [reg + offset].
type IndirectOffset struct {
	Reg    dcpu.Register
	Offset Literal
}

// IndirectLiteral is [address].
type IndirectLiteral struct {
	Address Literal
}

// Immediate is a literal value.
type Immediate struct {
	Lit Literal
}

// Push is PUSH, [--SP].
type Push struct{}

// Pop is POP, [SP++].
type Pop struct{}

func (Register) value()         {}
func (IndirectRegister) value() {}
func (IndirectOffset) value()   {}
func (IndirectLiteral) value()  {}
func (Immediate) value()        {}
func (Pop) value()              {}

func (Register) destination()         {}
func (IndirectRegister) destination() {}
func (IndirectOffset) destination()   {}
func (IndirectLiteral) destination()  {}
func (Push) destination()             {}

// Instruction is a single node of a program.
type Instruction interface {
	instruction()
}

// Basic is a two operand instruction, OP b, a.
type Basic struct {
	Op dcpu.BasicOp
	B  Destination
	A  Value
}

// Special is a one operand instruction, OP a.
type Special struct {
	Op dcpu.SpecialOp
	A  Value
}

// Label defines a label at the current output position.
type Label struct {
	Name string
}

// Data embeds raw words.
type Data struct {
	Data []Datum
}

func (Basic) instruction()   {}
func (Special) instruction() {}
func (Label) instruction()   {}
func (Data) instruction()    {}

// Datum is an element of a Data instruction.
type Datum interface {
	datum()
}

// DataLabel defines a label at the current output position.
type DataLabel struct {
	Name string
}

// DataWord is a single raw word.
type DataWord struct {
	Word uint16
}

// DataString is a string, one word per character.
type DataString struct {
	Text string
}

func (DataLabel) datum()  {}
func (DataWord) datum()   {}
func (DataString) datum() {}

// Words returns the words of a string datum. Each character is truncated
// to 16 bits. Bytes that are not valid UTF-8 become 0xfffd.
func (ds DataString) Words() (words []uint16) {
	for _, r := range ds.Text {
		words = append(words, uint16(r))
	}
	return
}
