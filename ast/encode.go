package ast

import (
	"github.com/Jayshua/dcpu16-assembler/dcpu"
)

// Field is an encoded operand: the field code, and the literal that must
// follow the instruction word when the field code alone can not hold it.
type Field struct {
	Code uint16
	Next *Literal
}

// EncodeValue encodes an a operand.
//
// Numeric immediates 0..30 and 0xffff are folded into the field code,
// every other immediate (and every label) uses a trailing word.
func EncodeValue(value Value) (field Field, err error) {
	switch v := value.(type) {
	case Pop:
		field.Code = dcpu.FIELD_PUSH_POP
	case Immediate:
		if !v.Lit.IsLabel() {
			code, ok := dcpu.InlineLiteral(v.Lit.Number)
			if ok {
				field.Code = code
				return
			}
		}
		field = Field{Code: dcpu.FIELD_NEXT_LITERAL, Next: &v.Lit}
	case Register:
		field.Code, err = encodeRegister(v.Reg)
	case IndirectRegister, IndirectOffset, IndirectLiteral:
		field, err = encodeIndirection(v)
	case nil:
		err = ErrOperandMissing
	default:
		err = ErrOperandInvalid
	}

	return
}

// EncodeDestination encodes the b operand of a basic instruction.
func EncodeDestination(dest Destination) (field Field, err error) {
	switch d := dest.(type) {
	case Push:
		field.Code = dcpu.FIELD_PUSH_POP
	case Register:
		field.Code, err = encodeRegister(d.Reg)
	case IndirectRegister, IndirectOffset, IndirectLiteral:
		field, err = encodeIndirection(d)
	case nil:
		err = ErrOperandMissing
	default:
		err = ErrOperandInvalid
	}

	return
}

// encodeRegister encodes direct register access.
func encodeRegister(reg dcpu.Register) (code uint16, err error) {
	code, ok := reg.Code()
	if !ok {
		err = ErrRegisterInvalid
	}
	return
}

// encodeIndirection encodes the three forms of indirect memory access.
func encodeIndirection(operand any) (field Field, err error) {
	switch ind := operand.(type) {
	case IndirectLiteral:
		field = Field{Code: dcpu.FIELD_NEXT_INDIRECT, Next: &ind.Address}
	case IndirectRegister:
		code, ok := ind.Reg.IndirectCode()
		if !ok {
			err = indirectError(ind.Reg, false)
			return
		}
		field.Code = code
	case IndirectOffset:
		code, ok := ind.Reg.OffsetCode()
		if !ok {
			err = indirectError(ind.Reg, true)
			return
		}
		field = Field{Code: code, Next: &ind.Offset}
	default:
		err = ErrOperandInvalid
	}

	return
}

// indirectError tells an impossible indirection apart from a register
// number that is out of range.
func indirectError(reg dcpu.Register, offset bool) error {
	if reg == dcpu.REG_PC || reg == dcpu.REG_EX {
		return &ErrIndirectRegister{Reg: reg, Offset: offset}
	}
	return ErrRegisterInvalid
}
