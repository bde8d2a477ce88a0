package ast

import (
	"errors"

	"github.com/Jayshua/dcpu16-assembler/dcpu"
	"github.com/Jayshua/dcpu16-assembler/translate"
)

var f = translate.From

var (
	ErrOperandMissing  = errors.New(f("operand missing"))
	ErrOperandInvalid  = errors.New(f("operand invalid"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
)

// ErrIndirectRegister reports indirect access through a register that
// can not be used indirectly (PC or EX).
type ErrIndirectRegister struct {
	Reg    dcpu.Register
	Offset bool // Set for [reg + offset].
}

func (err *ErrIndirectRegister) Error() string {
	if err.Offset {
		return f("indirect %v access with offset is not possible on the DCPU-16", err.Reg)
	}
	return f("indirect %v access is not possible on the DCPU-16", err.Reg)
}
