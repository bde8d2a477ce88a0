package asm

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jayshua/dcpu16-assembler/ast"
	"github.com/Jayshua/dcpu16-assembler/codegen"
	"github.com/Jayshua/dcpu16-assembler/dcpu"
)

const notchSample = `
        ; Try some basic stuff
        SET A, 0x30              ; 7c01 0030
        SET [0x1000], 0x20       ; 7fc1 0020 1000
        SUB A, [0x1000]          ; 7803 1000
        IFN A, 0x10              ; c413
           SET PC, crash         ; 7f81 001a

        ; Do a loopy thing
        SET I, 10                ; acc1
        SET A, 0x2000            ; 7c01 2000
:loop   SET [0x2000+I], [A]      ; 22c1 2000
        SUB I, 1                 ; 88c3
        IFN I, 0                 ; 84d3
           SET PC, loop          ; 7f81 000d

        ; Call a subroutine
        SET X, 0x4               ; 9461
        JSR testsub              ; 7c20 0018
        SET PC, crash            ; 7f81 001a

:testsub SHL X, 4                ; 946f
        SET PC, POP              ; 6381

        ; Hang forever.
:crash  SET PC, crash            ; 7f81 001a
`

var notchWords = []uint16{
	0x7c01, 0x0030, 0x7fc1, 0x0020, 0x1000, 0x7803, 0x1000, 0xc413,
	0x7f81, 0x001a, 0xacc1, 0x7c01, 0x2000, 0x22c1, 0x2000, 0x88c3,
	0x84d3, 0x7f81, 0x000d, 0x9461, 0x7c20, 0x0018, 0x7f81, 0x001a,
	0x946f, 0x6381, 0x7f81, 0x001a,
}

func assemble(asm *Assembler, text string) (words []uint16, err error) {
	prog, err := asm.Assemble(strings.NewReader(text))
	if err != nil {
		return
	}

	words = prog.Words
	return
}

func TestAssemble_Sample(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Assemble(strings.NewReader(notchSample))
	if !assert.NoError(err) {
		return
	}

	assert.Equal(notchWords, prog.Words)
	assert.Equal(map[string]uint16{
		"loop":    0x000d,
		"testsub": 0x0018,
		"crash":   0x001a,
	}, prog.Labels)
}

func TestAssemble_ForwardReference(t *testing.T) {
	assert := assert.New(t)

	words, err := assemble(&Assembler{}, "SET X, 33800\nSET Y, data\n:data\n")
	assert.NoError(err)
	assert.Equal([]uint16{0x7c61, 0x8408, 0x7c81, 0x0004}, words)
}

func TestAssemble_Operands(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		line     string
		expected []uint16
	}{
		{"SET A, PEEK", []uint16{0x6401}},
		{"SET A, [SP]", []uint16{0x6401}},
		{"SET PICK 3, A", []uint16{0x0341, 0x0003}},
		{"SET A, PICK\t3", []uint16{0x6801, 0x0003}},
		{"SET A, pick  3", []uint16{0x6801, 0x0003}},
		{"SET [SP+3], A", []uint16{0x0341, 0x0003}},
		{"SET PUSH, 0x10", []uint16{0xc701}},
		{"SET [--SP], A", []uint16{0x0301}},
		{"SET A, POP", []uint16{0x6001}},
		{"SET A, [SP++]", []uint16{0x6001}},
		{"SET A, [B+2]", []uint16{0x4401, 0x0002}},
		{"SET A, [2+B]", []uint16{0x4401, 0x0002}},
		{"SET A, [B-1]", []uint16{0x4401, 0xffff}},
		{"SET A, -1", []uint16{0x8001}},
		{"SET A, 0xffff", []uint16{0x8001}},
		{"SET A, 30", []uint16{0xfc01}},
		{"SET A, 31", []uint16{0x7c01, 0x001f}},
		{"SET A, 0b101", []uint16{0x9801}},
		{"SET A, 'A'", []uint16{0x7c01, 0x0041}},
		{"SET A, $(2*8)", []uint16{0xc401}},
		{"SET A, $(MEMORY_SIZE-1)", []uint16{0x8001}},
		{"set x, [j]", []uint16{0x3c61}},
		{"SET EX, SP", []uint16{0x6fa1}},
		{"IAG [0x10]", []uint16{0x7920, 0x0010}},
		{"HWI A", []uint16{0x0240}},
		{"INT 5", []uint16{0x9900}},
		{"SET A, 1 ; trailing comment", []uint16{0x8801}},
	}

	for _, entry := range table {
		words, err := assemble(&Assembler{}, entry.line)
		if !assert.NoError(err, entry.line) {
			continue
		}
		assert.Equal(entry.expected, words, entry.line)
	}
}

func TestAssemble_Labels(t *testing.T) {
	assert := assert.New(t)

	text := `
start:  SET A, 1
:a :b   SET PC, start
end:
`
	prog, err := (&Assembler{}).Assemble(strings.NewReader(text))
	if !assert.NoError(err) {
		return
	}

	assert.Equal([]uint16{0x8801, 0x7f81, 0x0000}, prog.Words)
	assert.Equal(map[string]uint16{"start": 0, "a": 1, "b": 1, "end": 3}, prog.Labels)
}

func TestAssemble_Data(t *testing.T) {
	assert := assert.New(t)

	text := `
:msg    DAT "Hi;", 0, 'x', :mid, 0x1234
        .dat "\"\n"
        SET A, msg
        SET B, mid
`
	prog, err := (&Assembler{}).Assemble(strings.NewReader(text))
	if !assert.NoError(err) {
		return
	}

	assert.Equal([]uint16{
		'H', 'i', ';', 0, 'x', 0x1234,
		'"', '\n',
		0x7c01, 0x0000,
		0x7c21, 0x0005,
	}, prog.Words)
}

func TestAssemble_Equate(t *testing.T) {
	assert := assert.New(t)

	text := `
.equ COUNT 10
.equ TWICE $(COUNT*2)
.equ VIDEO X
.equ TARGET done
        SET A, COUNT
        SET B, TWICE
        SET VIDEO, 1
        SET PC, TARGET
:done
`
	asm := &Assembler{}
	words, err := assemble(asm, text)
	assert.NoError(err)
	assert.Equal([]uint16{0xac01, 0xd421, 0x8861, 0x7f81, 0x0005}, words)

	value, ok := asm.Equate("TWICE")
	assert.True(ok)
	assert.Equal("0x14", value)

	value, ok = asm.Equate("VIDEO")
	assert.True(ok)
	assert.Equal("X", value)

	_, ok = asm.Equate("UNKNOWN")
	assert.False(ok)
}

func TestAssemble_Predefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("BASE", "0x8000")

	words, err := assemble(asm, "SET A, BASE\nSET B, $(BASE+1)\n")
	assert.NoError(err)
	assert.Equal([]uint16{0x7c01, 0x8000, 0x7c21, 0x8001}, words)

	asm.Predefine("BASE", "0x9000")
	words, err = assemble(asm, "SET A, BASE\n")
	assert.NoError(err)
	assert.Equal([]uint16{0x7c01, 0x9000}, words)

	_, err = assemble(asm, ".equ BASE 1\n")
	assert.ErrorIs(err, ErrEquateDuplicate)
}

func TestAssemble_Errors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		text   string
		lineNo int
		err    error
	}{
		{"SET A", 1, ErrOperandMissing},
		{"SET A, B, C", 1, ErrOperandExtra},
		{"JSR", 1, ErrOperandMissing},
		{"JSR A, B", 1, ErrOperandExtra},
		{"\nFOO A, B", 2, ErrOpcodeInvalid},
		{"SET 1, A", 1, ErrDestinationInvalid},
		{"SET POP, A", 1, ErrDestinationInvalid},
		{"SET A, PUSH", 1, ErrValueInvalid},
		{"SET A, [B+C]", 1, ErrParseValue("C")},
		{"SET A, [B-label]", 1, ErrIndirectionInvalid},
		{"SET A, [1+2+B]", 1, ErrIndirectionInvalid},
		{"DAT", 1, ErrOperandMissing},
		{"DAT \"abc", 1, ErrStringUnterminated},
		{"DAT \"a\xffb\"", 1, ErrStringEncoding},
		{"DAT label", 1, ErrDataInvalid},
		{".equ X", 1, ErrEquateSyntax},
		{".equ 1X 2", 1, ErrEquateSyntax},
		{".equ X X", 1, ErrEquateLoop},
		{".equ X 1\n.equ X 2", 2, ErrEquateDuplicate},
		{"1bad: SET A, 1", 1, ErrLabelInvalid},
		{"SET A, 1\n\nSET [PC], A", 3, nil},
		{"SET A, 1\nSET B, 2\nSET PC, nowhere", 3, codegen.ErrLabelMissing("nowhere")},
	}

	for _, entry := range table {
		src, err := (&Assembler{}).Parse(strings.NewReader(entry.text))
		if err == nil {
			_, err = (&Assembler{}).Generate(src)
		} else {
			assert.Nil(src, entry.text)
		}

		var errSyntax *ErrSyntax
		if !assert.True(errors.As(err, &errSyntax), entry.text) {
			continue
		}
		assert.Equal(entry.lineNo, errSyntax.LineNo, entry.text)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.text)
		}
	}
}

func TestAssemble_ParseErrors(t *testing.T) {
	assert := assert.New(t)

	var errNumber ErrParseNumber
	_, err := assemble(&Assembler{}, "SET A, 0x10000")
	assert.True(errors.As(err, &errNumber))

	_, err = assemble(&Assembler{}, "SET A, 12z")
	assert.True(errors.As(err, &errNumber))

	var errExpr ErrParseExpression
	_, err = assemble(&Assembler{}, "SET A, $(1+)")
	assert.True(errors.As(err, &errExpr))

	_, err = assemble(&Assembler{}, "SET A, $(0x10000)")
	assert.True(errors.As(err, &errExpr))

	var errChar ErrParseCharacter
	_, err = assemble(&Assembler{}, "SET A, 'ab'")
	assert.True(errors.As(err, &errChar))

	var errValue ErrParseValue
	_, err = assemble(&Assembler{}, "SET A, [B+C]")
	assert.True(errors.As(err, &errValue))
	_, err = assemble(&Assembler{}, "DAT A")
	assert.True(errors.As(err, &errValue))

	var errInd *ast.ErrIndirectRegister
	_, err = assemble(&Assembler{}, "SET A, [EX+1]")
	if assert.True(errors.As(err, &errInd)) {
		assert.Equal(dcpu.REG_EX, errInd.Reg)
		assert.True(errInd.Offset)
	}
}

func TestAssemble_Strict(t *testing.T) {
	assert := assert.New(t)

	text := ":here\nDAT 0\n:here\nSET PC, here\n"

	words, err := assemble(&Assembler{}, text)
	assert.NoError(err)
	assert.Equal([]uint16{0x0000, 0x7f81, 0x0001}, words)

	_, err = assemble(&Assembler{Strict: true}, text)
	var errSyntax *ErrSyntax
	if assert.True(errors.As(err, &errSyntax)) {
		assert.Equal(3, errSyntax.LineNo)
	}
	assert.ErrorIs(err, codegen.ErrLabelDuplicate("here"))
}

func TestAssemble_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	text := notchSample + `
:table  DAT 0x0000, :mid, "a\"b\n", 0x0007
        SET [SP + 0x0002], [J + 0x0010]
        SET PUSH, [table]
`

	asm := &Assembler{}
	src, err := asm.Parse(strings.NewReader(text))
	if !assert.NoError(err) {
		return
	}

	prog, err := asm.Generate(src)
	if !assert.NoError(err) {
		return
	}

	var sb strings.Builder
	for _, inst := range src.Instructions {
		fmt.Fprintln(&sb, inst)
	}

	again, err := asm.Assemble(strings.NewReader(sb.String()))
	if !assert.NoError(err, sb.String()) {
		return
	}

	assert.Equal(prog.Words, again.Words)
	assert.Equal(prog.Labels, again.Labels)
}

func TestParse_Source(t *testing.T) {
	assert := assert.New(t)

	text := "; header\n:main SET A, 1 ; one\n\n  JSR main\n"
	src, err := (&Assembler{}).Parse(strings.NewReader(text))
	if !assert.NoError(err) {
		return
	}

	assert.Equal([]ast.Instruction{
		ast.Label{Name: "main"},
		ast.Basic{Op: dcpu.OP_SET, B: ast.Register{Reg: dcpu.REG_A}, A: ast.Immediate{Lit: ast.Number(1)}},
		ast.Special{Op: dcpu.SPECIAL_JSR, A: ast.Immediate{Lit: ast.LabelRef("main")}},
	}, src.Instructions)
	assert.Equal([]int{2, 2, 4}, src.LineNo)
	assert.Equal([]string{":main SET A, 1", ":main SET A, 1", "JSR main"}, src.Lines)
}

func TestAssemble_EquateSingleLevel(t *testing.T) {
	assert := assert.New(t)

	text := `
.equ FOO bar
.equ bar 5
        SET A, FOO
        SET B, bar
:bar
`
	prog, err := (&Assembler{}).Assemble(strings.NewReader(text))
	if !assert.NoError(err) {
		return
	}

	assert.Equal([]uint16{0x7c01, 0x0003, 0x9821}, prog.Words)
	assert.Equal(map[string]uint16{"bar": 3}, prog.Labels)
}

func TestAssemble_Verbose(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	defer log.SetOutput(log.Writer())
	log.SetOutput(&buf)

	_, err := assemble(&Assembler{Verbose: true}, ":start SET A, 1\n")
	assert.NoError(err)

	out := buf.String()
	assert.Contains(out, "1: :start SET A, 1")
	assert.Contains(out, "label start = 0x0000")
}
