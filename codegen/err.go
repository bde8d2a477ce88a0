package codegen

import (
	"errors"

	"github.com/Jayshua/dcpu16-assembler/ast"
	"github.com/Jayshua/dcpu16-assembler/translate"
)

var f = translate.From

var (
	ErrImageTooLarge      = errors.New(f("program does not fit in 0x10000 words"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrDatumInvalid       = errors.New(f("data item invalid"))
)

// ErrLabelMissing is a reference to a label that is never defined.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrLabelDuplicate is a label defined more than once in strict mode.
type ErrLabelDuplicate string

func (el ErrLabelDuplicate) Error() string {
	return f("label %v duplicated", string(el))
}

// ErrInstruction locates an error at an instruction of the input sequence.
type ErrInstruction struct {
	Index       int
	Instruction ast.Instruction
	Err         error
}

func (err *ErrInstruction) Error() string {
	return f("instruction %d '%v' %v", err.Index, err.Instruction, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}
