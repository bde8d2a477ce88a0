package asm

import (
	"errors"

	"github.com/Jayshua/dcpu16-assembler/translate"
)

var f = translate.From

var (
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrEquateLoop         = errors.New(f(".equ refers to itself"))
	ErrLabelInvalid       = errors.New(f("label name invalid"))
	ErrOpcodeInvalid      = errors.New(f("opcode invalid"))
	ErrOperandMissing     = errors.New(f("operand missing"))
	ErrOperandExtra       = errors.New(f("excessive operands"))
	ErrDestinationInvalid = errors.New(f("operand can not be a destination"))
	ErrValueInvalid       = errors.New(f("operand can not be a value"))
	ErrIndirectionInvalid = errors.New(f("indirection invalid"))
	ErrDataInvalid        = errors.New(f("data item invalid"))
	ErrStringUnterminated = errors.New(f("string unterminated"))
	ErrStringEncoding     = errors.New(f("string is not valid UTF-8"))
)

// ErrSyntax locates an error at a line of the source text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a value or register", string(err))
}

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a character", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
