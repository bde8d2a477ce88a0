// Package dcpu describes the DCPU-16 instruction set as seen by the assembler.
//
// The DCPU-16 is a 16-bit word addressed processor with eight general purpose
// registers (A, B, C, X, Y, Z, I, J), a program counter (PC), a stack
// pointer (SP) and an overflow register (EX). A basic instruction packs two
// operand field codes and an opcode into one word as aaaaaabbbbbooooo, a
// special instruction packs its single operand and a special opcode as
// aaaaaaooooo00000. Some operand field codes are followed by an extra word.
package dcpu
