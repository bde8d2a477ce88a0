package codegen

import (
	"cmp"
	"encoding/binary"
	"io"
	"iter"
	"maps"
	"slices"
)

// Program is a generated binary image.
type Program struct {
	Words  []uint16          // Binary image.
	Labels map[string]uint16 // Label addresses.
	Spans  []Span            // Output words of each instruction, in input order.
}

// Span is the range of output words generated by one instruction.
type Span struct {
	Index int // Index of the instruction in the input sequence.
	Ip    int // Address of the first word.
	Len   int // Number of words, zero for labels.
}

// Debug returns the span of the instruction that generated the word at ip.
func (prog *Program) Debug(ip uint16) (span Span, ok bool) {
	for _, sp := range prog.Spans {
		if int(ip) >= sp.Ip && int(ip) < sp.Ip+sp.Len {
			return sp, true
		}
	}

	return
}

// Bytes returns the image as big-endian bytes.
func (prog *Program) Bytes() (data []byte) {
	data = make([]byte, 0, len(prog.Words)*2)
	for _, word := range prog.Words {
		data = binary.BigEndian.AppendUint16(data, word)
	}

	return
}

// WriteTo writes the big-endian image to w.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	count, err := w.Write(prog.Bytes())
	n = int64(count)
	return
}

// Symbols iterates the labels ordered by address, then by name.
func (prog *Program) Symbols() iter.Seq2[string, uint16] {
	names := slices.SortedFunc(maps.Keys(prog.Labels), func(a, b string) int {
		return cmp.Or(cmp.Compare(prog.Labels[a], prog.Labels[b]), cmp.Compare(a, b))
	})

	return func(yield func(name string, addr uint16) bool) {
		for _, name := range names {
			if !yield(name, prog.Labels[name]) {
				return
			}
		}
	}
}
