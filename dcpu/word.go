package dcpu

// Instruction word layout.
const (
	OPCODE_MASK = 0x001f
	B_MASK      = 0x03e0
	A_MASK      = 0xfc00
	B_SHIFT     = 5
	A_SHIFT     = 10
)

// MakeBasic packs a basic instruction word.
func MakeBasic(op BasicOp, b, a uint16) uint16 {
	return (a << A_SHIFT) | (b << B_SHIFT) | op.Code()
}

// MakeSpecial packs a special instruction word.
func MakeSpecial(op SpecialOp, a uint16) uint16 {
	return (a << A_SHIFT) | (op.Code() << B_SHIFT)
}

// Split unpacks an instruction word into its opcode, b and a fields.
// For special instructions opcode is zero and b holds the special opcode.
func Split(word uint16) (opcode, b, a uint16) {
	opcode = word & OPCODE_MASK
	b = (word & B_MASK) >> B_SHIFT
	a = (word & A_MASK) >> A_SHIFT
	return
}

// NextWord returns true if the operand field code is followed by an
// extra word.
func NextWord(code uint16) bool {
	switch {
	case code >= FIELD_REG_OFFSET && code < FIELD_REG_OFFSET+8:
		return true
	case code == FIELD_PICK, code == FIELD_NEXT_INDIRECT, code == FIELD_NEXT_LITERAL:
		return true
	}
	return false
}

// InlineLiteral folds a literal into an a-operand field code when it
// fits, that is for 0..30 and 0xffff.
func InlineLiteral(value uint16) (code uint16, ok bool) {
	if value <= FIELD_INLINE_MAX || value == 0xffff {
		return value + FIELD_INLINE, true
	}
	return
}

// InlineValue is the inverse of InlineLiteral for a-operand codes
// 0x20..0x3f.
func InlineValue(code uint16) (value uint16, ok bool) {
	if code < FIELD_INLINE-1 || code > 0x3f {
		return
	}
	return code - FIELD_INLINE, true
}
