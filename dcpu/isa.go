package dcpu

// MEMORY_SIZE is the number of addressable words.
const MEMORY_SIZE = 0x10000

// Register is a DCPU-16 register.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_A  = Register(0)  // A
	REG_B  = Register(1)  // B
	REG_C  = Register(2)  // C
	REG_X  = Register(3)  // X
	REG_Y  = Register(4)  // Y
	REG_Z  = Register(5)  // Z
	REG_I  = Register(6)  // I
	REG_J  = Register(7)  // J
	REG_SP = Register(8)  // SP
	REG_PC = Register(9)  // PC
	REG_EX = Register(10) // EX
)

// Registers lists every register in declaration order.
var Registers = []Register{
	REG_A, REG_B, REG_C, REG_X, REG_Y, REG_Z, REG_I, REG_J,
	REG_SP, REG_PC, REG_EX,
}

// Operand field codes that do not depend on a register.
const (
	FIELD_PUSH_POP      = 0x18 // PUSH as b, POP as a
	FIELD_PEEK          = 0x19 // [SP]
	FIELD_PICK          = 0x1a // [SP + next word]
	FIELD_SP            = 0x1b // SP
	FIELD_PC            = 0x1c // PC
	FIELD_EX            = 0x1d // EX
	FIELD_NEXT_INDIRECT = 0x1e // [next word]
	FIELD_NEXT_LITERAL  = 0x1f // next word
	FIELD_INLINE        = 0x21 // inline literal 0, 0x20 is 0xffff
	FIELD_INLINE_MAX    = 30   // largest non-negative inline literal

	FIELD_REG_INDIRECT = 0x08 // [A]..[J] start here
	FIELD_REG_OFFSET   = 0x10 // [A + next word]..[J + next word] start here
)

// General returns true for the eight general purpose registers.
func (reg Register) General() bool {
	return reg >= REG_A && reg <= REG_J
}

// Code returns the operand field code of direct register access.
func (reg Register) Code() (code uint16, ok bool) {
	switch {
	case reg.General():
		return uint16(reg), true
	case reg == REG_SP:
		return FIELD_SP, true
	case reg == REG_PC:
		return FIELD_PC, true
	case reg == REG_EX:
		return FIELD_EX, true
	}
	return
}

// IndirectCode returns the operand field code of [reg].
// PC and EX can not be used indirectly.
func (reg Register) IndirectCode() (code uint16, ok bool) {
	switch {
	case reg.General():
		return FIELD_REG_INDIRECT + uint16(reg), true
	case reg == REG_SP:
		return FIELD_PEEK, true
	}
	return
}

// OffsetCode returns the operand field code of [reg + next word].
// PC and EX can not be used indirectly.
func (reg Register) OffsetCode() (code uint16, ok bool) {
	switch {
	case reg.General():
		return FIELD_REG_OFFSET + uint16(reg), true
	case reg == REG_SP:
		return FIELD_PICK, true
	}
	return
}

// BasicOp is a two operand instruction.
type BasicOp int

//go:generate go tool stringer -linecomment -type=BasicOp
const (
	OP_SET = BasicOp(0)  // SET
	OP_ADD = BasicOp(1)  // ADD
	OP_SUB = BasicOp(2)  // SUB
	OP_MUL = BasicOp(3)  // MUL
	OP_MLI = BasicOp(4)  // MLI
	OP_DIV = BasicOp(5)  // DIV
	OP_DVI = BasicOp(6)  // DVI
	OP_MOD = BasicOp(7)  // MOD
	OP_MDI = BasicOp(8)  // MDI
	OP_AND = BasicOp(9)  // AND
	OP_BOR = BasicOp(10) // BOR
	OP_XOR = BasicOp(11) // XOR
	OP_SHR = BasicOp(12) // SHR
	OP_ASR = BasicOp(13) // ASR
	OP_SHL = BasicOp(14) // SHL
	OP_IFB = BasicOp(15) // IFB
	OP_IFC = BasicOp(16) // IFC
	OP_IFE = BasicOp(17) // IFE
	OP_IFN = BasicOp(18) // IFN
	OP_IFG = BasicOp(19) // IFG
	OP_IFA = BasicOp(20) // IFA
	OP_IFL = BasicOp(21) // IFL
	OP_IFU = BasicOp(22) // IFU
	OP_ADX = BasicOp(23) // ADX
	OP_SBX = BasicOp(24) // SBX
	OP_STI = BasicOp(25) // STI
	OP_STD = BasicOp(26) // STD
)

// basicCode maps basic operations to their 5-bit opcode.
var basicCode = [...]uint16{
	OP_SET: 0x01,
	OP_ADD: 0x02,
	OP_SUB: 0x03,
	OP_MUL: 0x04,
	OP_MLI: 0x05,
	OP_DIV: 0x06,
	OP_DVI: 0x07,
	OP_MOD: 0x08,
	OP_MDI: 0x09,
	OP_AND: 0x0a,
	OP_BOR: 0x0b,
	OP_XOR: 0x0c,
	OP_SHR: 0x0d,
	OP_ASR: 0x0e,
	OP_SHL: 0x0f,
	OP_IFB: 0x10,
	OP_IFC: 0x11,
	OP_IFE: 0x12,
	OP_IFN: 0x13,
	OP_IFG: 0x14,
	OP_IFA: 0x15,
	OP_IFL: 0x16,
	OP_IFU: 0x17,
	OP_ADX: 0x1a,
	OP_SBX: 0x1b,
	OP_STI: 0x1e,
	OP_STD: 0x1f,
}

// Valid returns true if op is a defined basic operation.
func (op BasicOp) Valid() bool {
	return op >= 0 && int(op) < len(basicCode)
}

// Code returns the opcode of the basic operation.
func (op BasicOp) Code() uint16 {
	return basicCode[op]
}

// Conditional returns true for the IFx family.
func (op BasicOp) Conditional() bool {
	return op >= OP_IFB && op <= OP_IFU
}

// BasicOps lists every basic operation in declaration order.
func BasicOps() []BasicOp {
	ops := make([]BasicOp, len(basicCode))
	for n := range ops {
		ops[n] = BasicOp(n)
	}
	return ops
}

// LookupBasic returns the basic operation with the given opcode.
func LookupBasic(code uint16) (op BasicOp, ok bool) {
	for n, c := range basicCode {
		if c == code {
			return BasicOp(n), true
		}
	}
	return
}

// SpecialOp is a single operand instruction.
type SpecialOp int

//go:generate go tool stringer -linecomment -type=SpecialOp
const (
	SPECIAL_JSR = SpecialOp(0) // JSR
	SPECIAL_INT = SpecialOp(1) // INT
	SPECIAL_IAG = SpecialOp(2) // IAG
	SPECIAL_IAS = SpecialOp(3) // IAS
	SPECIAL_RFI = SpecialOp(4) // RFI
	SPECIAL_IAQ = SpecialOp(5) // IAQ
	SPECIAL_HWN = SpecialOp(6) // HWN
	SPECIAL_HWQ = SpecialOp(7) // HWQ
	SPECIAL_HWI = SpecialOp(8) // HWI
)

// specialCode maps special operations to their 5-bit opcode.
var specialCode = [...]uint16{
	SPECIAL_JSR: 0x01,
	SPECIAL_INT: 0x08,
	SPECIAL_IAG: 0x09,
	SPECIAL_IAS: 0x0a,
	SPECIAL_RFI: 0x0b,
	SPECIAL_IAQ: 0x0c,
	SPECIAL_HWN: 0x10,
	SPECIAL_HWQ: 0x11,
	SPECIAL_HWI: 0x12,
}

// Valid returns true if op is a defined special operation.
func (op SpecialOp) Valid() bool {
	return op >= 0 && int(op) < len(specialCode)
}

// Code returns the opcode of the special operation.
func (op SpecialOp) Code() uint16 {
	return specialCode[op]
}

// SpecialOps lists every special operation in declaration order.
func SpecialOps() []SpecialOp {
	ops := make([]SpecialOp, len(specialCode))
	for n := range ops {
		ops[n] = SpecialOp(n)
	}
	return ops
}

// LookupSpecial returns the special operation with the given opcode.
func LookupSpecial(code uint16) (op SpecialOp, ok bool) {
	for n, c := range specialCode {
		if c == code {
			return SpecialOp(n), true
		}
	}
	return
}
