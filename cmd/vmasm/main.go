// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"iter"
	"log"
	"os"
	"strings"

	"github.com/ezrec/vmasm/internal"
	"github.com/ezrec/vmasm/lexer"
	"github.com/ezrec/vmasm/opcode"
	"github.com/ezrec/vmasm/token"
)

func main() {
	var opcodes bool
	var keywords bool
	var verbose bool
	defines := map[string]string{}

	flag.BoolVar(&opcodes, "o", false, "List the opcode table")
	flag.BoolVar(&keywords, "k", false, "List the reserved keywords")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Func("D", "Predefine NAME=VALUE for $() expressions", func(arg string) error {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || len(name) == 0 {
			return fmt.Errorf("expected NAME=VALUE, not '%v'", arg)
		}
		defines[name] = value
		return nil
	})

	flag.Parse()

	if opcodes {
		for op, code := range opcode.Default().All() {
			fmt.Printf("%#02x\t%-8v\t%v\n", uint8(code), code.Group(), op)
		}
	}

	if keywords {
		for word, kind := range token.Keywords() {
			fmt.Printf("%-12v\t%v\n", word, kind.Family())
		}
	}

	// Tokenize every source file, in order.
	var streams []iter.Seq[token.Token]
	for _, path := range flag.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}

		l := lexer.New(string(data))
		l.Verbose = verbose
		for name, value := range defines {
			l.Predefine(name, value)
		}
		streams = append(streams, l.Tokens())
	}

	illegal := 0
	for tok := range internal.IterSeqConcat(streams...) {
		if tok.Kind == token.KIND_ILLEGAL {
			illegal++
		}
		fmt.Println(tok)
	}

	if illegal > 0 {
		log.Fatalf("%v: %v illegal tokens", os.Args[0], illegal)
	}
}
