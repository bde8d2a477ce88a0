package asm

import (
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// parenEval does compile-time $(...) evaluations. Every equate that is a
// number is visible to the expression.
func (asm *Assembler) parenEval(expr string) (value uint16, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.equate {
		num, numErr := strconv.ParseInt(str, 0, 32)
		if numErr != nil {
			// Ignore equates that are not numbers, they may be
			// registers or labels.
			continue
		}
		pred[key] = starlark.MakeInt64(num)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	value, ok = wordOf(st_int64)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

// wordOf converts a signed value in -0x8000..0xffff to a word.
func wordOf(v64 int64) (word uint16, ok bool) {
	if v64 < -0x8000 || v64 > 0xffff {
		return
	}
	return uint16(v64), true
}
