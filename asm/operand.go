package asm

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Jayshua/dcpu16-assembler/ast"
	"github.com/Jayshua/dcpu16-assembler/dcpu"
)

// regMap maps register names to registers.
var regMap = map[string]dcpu.Register{}

func init() {
	for _, reg := range dcpu.Registers {
		regMap[reg.String()] = reg
	}
}

// expand substitutes an equate for a word. Substitution is not recursive.
func (asm *Assembler) expand(word string) string {
	value, ok := asm.equate[word]
	if ok {
		return value
	}
	return word
}

// register returns the register named by word, if any.
func (asm *Assembler) register(word string) (reg dcpu.Register, ok bool) {
	reg, ok = regMap[strings.ToUpper(asm.expand(word))]
	return
}

// valueOf parses a numeric literal: a number, a character or $(expr).
// Negative numbers wrap to 16 bits.
func (asm *Assembler) valueOf(word string) (value uint16, err error) {
	switch {
	case strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")"):
		return asm.parenEval(word[2 : len(word)-1])
	case len(word) >= 3 && word[0] == '\'' && word[len(word)-1] == '\'':
		char, ok := unquote(word[1 : len(word)-1])
		runes := []rune(char)
		if !ok || len(runes) != 1 {
			err = ErrParseCharacter(word)
			return
		}
		value = uint16(runes[0])
		return
	}

	v64, err := strconv.ParseInt(word, 0, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value, ok := wordOf(v64)
	if !ok {
		err = ErrParseNumber(word)
		return
	}

	return
}

// literalOf parses a literal: a numeric literal, or a label reference.
// The word is expanded once.
func (asm *Assembler) literalOf(word string) (lit ast.Literal, err error) {
	word = asm.expand(strings.TrimSpace(word))
	if len(word) == 0 {
		err = ErrOperandMissing
		return
	}

	if identRe.MatchString(word) {
		if _, isReg := regMap[strings.ToUpper(word)]; isReg {
			err = ErrParseValue(word)
			return
		}
		lit = ast.LabelRef(word)
		return
	}

	value, err := asm.valueOf(word)
	if err != nil {
		return
	}

	lit = ast.Number(value)
	return
}

// operandOf parses an operand in either position. The result is one of
// the ast operand types.
func (asm *Assembler) operandOf(text string) (operand any, err error) {
	word := strings.TrimSpace(text)
	text = asm.expand(word)
	if len(text) == 0 {
		err = ErrOperandMissing
		return
	}

	upper := strings.ToUpper(text)

	head, tail := upper, ""
	if end := strings.IndexFunc(text, unicode.IsSpace); end >= 0 {
		head, tail = strings.ToUpper(text[:end]), text[end:]
	}

	switch {
	case upper == "PUSH" || upper == "[--SP]":
		operand = ast.Push{}
		return
	case upper == "POP" || upper == "[SP++]":
		operand = ast.Pop{}
		return
	case upper == "PEEK":
		operand = ast.IndirectRegister{Reg: dcpu.REG_SP}
		return
	case head == "PICK" && len(tail) != 0:
		var lit ast.Literal
		lit, err = asm.literalOf(tail)
		if err != nil {
			return
		}
		operand = ast.IndirectOffset{Reg: dcpu.REG_SP, Offset: lit}
		return
	case strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]"):
		return asm.indirectionOf(text[1 : len(text)-1])
	}

	reg, ok := asm.register(word)
	if ok {
		operand = ast.Register{Reg: reg}
		return
	}

	lit, err := asm.literalOf(word)
	if err != nil {
		return
	}

	operand = ast.Immediate{Lit: lit}
	return
}

// indirectionOf parses the inside of [...]: reg, reg+lit, lit+reg, reg-num
// or lit.
func (asm *Assembler) indirectionOf(inner string) (operand any, err error) {
	parts := splitTop(inner, '+')
	negate := false
	if len(parts) == 1 {
		head, tail, found := strings.Cut(inner, "-")
		if found && len(strings.TrimSpace(head)) != 0 {
			if _, isReg := asm.register(strings.TrimSpace(head)); isReg {
				parts = []string{strings.TrimSpace(head), strings.TrimSpace(tail)}
				negate = true
			}
		}
	}

	switch len(parts) {
	case 1:
		reg, isReg := asm.register(parts[0])
		if isReg {
			operand = ast.IndirectRegister{Reg: reg}
			return
		}
		var lit ast.Literal
		lit, err = asm.literalOf(parts[0])
		if err != nil {
			return
		}
		operand = ast.IndirectLiteral{Address: lit}
	case 2:
		reg, isReg := asm.register(parts[0])
		other := parts[1]
		if !isReg {
			reg, isReg = asm.register(parts[1])
			other = parts[0]
		}
		if !isReg {
			err = ErrIndirectionInvalid
			return
		}
		var lit ast.Literal
		lit, err = asm.literalOf(other)
		if err != nil {
			return
		}
		if negate {
			if lit.IsLabel() {
				err = ErrIndirectionInvalid
				return
			}
			lit.Number = -lit.Number
		}
		operand = ast.IndirectOffset{Reg: reg, Offset: lit}
	default:
		err = ErrIndirectionInvalid
	}

	return
}

// valueOperand parses an a operand.
func (asm *Assembler) valueOperand(text string) (value ast.Value, err error) {
	operand, err := asm.operandOf(text)
	if err != nil {
		return
	}

	value, ok := operand.(ast.Value)
	if !ok {
		err = ErrValueInvalid
	}

	return
}

// destinationOperand parses the b operand of a basic instruction.
func (asm *Assembler) destinationOperand(text string) (dest ast.Destination, err error) {
	operand, err := asm.operandOf(text)
	if err != nil {
		return
	}

	dest, ok := operand.(ast.Destination)
	if !ok {
		err = ErrDestinationInvalid
	}

	return
}

// dataOf parses the comma list of a DAT directive.
func (asm *Assembler) dataOf(text string) (data ast.Data, err error) {
	if len(strings.TrimSpace(text)) == 0 {
		err = ErrOperandMissing
		return
	}

	for _, item := range splitTop(text, ',') {
		switch {
		case strings.HasPrefix(item, `"`):
			if len(item) < 2 || !strings.HasSuffix(item, `"`) {
				err = ErrStringUnterminated
				return
			}
			str, ok := unquote(item[1 : len(item)-1])
			if !ok {
				err = ErrStringUnterminated
				return
			}
			if !utf8.ValidString(str) {
				err = ErrStringEncoding
				return
			}
			data.Data = append(data.Data, ast.DataString{Text: str})
		case strings.HasPrefix(item, ":"):
			name := item[1:]
			if !identRe.MatchString(name) {
				err = ErrLabelInvalid
				return
			}
			data.Data = append(data.Data, ast.DataLabel{Name: name})
		default:
			var lit ast.Literal
			lit, err = asm.literalOf(item)
			if err != nil {
				return
			}
			if lit.IsLabel() {
				err = ErrDataInvalid
				return
			}
			data.Data = append(data.Data, ast.DataWord{Word: lit.Number})
		}
	}

	return
}
