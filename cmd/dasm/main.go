// Copyright 2025, The dcpu16-assembler Authors

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Jayshua/dcpu16-assembler/asm"
	"github.com/Jayshua/dcpu16-assembler/disasm"
)

func main() {
	var output string
	var printAst bool
	var listing bool
	var verbose bool
	var strict bool

	assembler := &asm.Assembler{}

	flag.StringVar(&output, "o", "", "Output file (default: input with .bin extension)")
	flag.BoolVar(&printAst, "p", false, "Print the syntax tree")
	flag.BoolVar(&listing, "l", false, "Print a listing of the generated image")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&strict, "strict", false, "Reject labels that are defined twice")
	flag.Func("D", "Predefine an equate, NAME=VALUE", func(def string) error {
		name, value, ok := strings.Cut(def, "=")
		if !ok || len(name) == 0 {
			return asm.ErrEquateSyntax
		}
		assembler.Predefine(name, value)
		return nil
	})

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: Expected one input file, got: %v", os.Args[0], flag.Args())
	}

	input := flag.Arg(0)
	if len(output) == 0 {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".bin"
	}

	assembler.Verbose = verbose
	assembler.Strict = strict

	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	defer inf.Close()

	src, err := assembler.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	if printAst {
		for n, inst := range src.Instructions {
			fmt.Printf("%4d: %#v\n", src.LineNo[n], inst)
		}
	}

	prog, err := assembler.Generate(src)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	if listing {
		err = disasm.Listing(os.Stdout, prog.Words, prog.Labels)
		if err != nil {
			log.Fatal(err)
		}
	}

	ouf, err := os.Create(output)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	_, err = prog.WriteTo(ouf)
	if err == nil {
		err = ouf.Close()
	}
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
