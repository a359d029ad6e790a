// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package lexer scans assembly source text into tokens.
//
// Reserved words are told apart from user symbols with token.Lookup.
// Compile-time integer expressions, written as $( expr ), are evaluated
// with Starlark and replaced by an integer token.
package lexer

import (
	"iter"
	"log"
	"slices"
	"strconv"
	"unicode/utf8"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/vmasm/internal"
	"github.com/ezrec/vmasm/token"
)

const (
	EXPR_STEP_LIMIT = 100000 // Maximum Starlark steps per $() expression
)

// punctuation maps single character tokens to their kind.
var punctuation = map[byte]token.Kind{
	',': token.KIND_COMMA,
}

// Lexer is a single pass scanner over an assembly source text.
type Lexer struct {
	Verbose bool // If set, logs every scanned token.

	input     string
	pos       int
	line      int
	predefine map[string]string
}

// New creates a lexer over the input text.
func New(input string) *Lexer {
	return &Lexer{
		input: input,
		line:  1,
	}
}

// Tokenize scans an entire input text, up to and including the EOF token.
func Tokenize(input string) []token.Token {
	return slices.Collect(New(input).Tokens())
}

// Predefine defines a new expression constant, or redefines an existing one.
// Values which do not parse as integers are ignored by expressions.
func (l *Lexer) Predefine(name string, value string) {
	if l.predefine == nil {
		l.predefine = map[string]string{name: value}
	} else {
		l.predefine[name] = value
	}
}

// Line returns the current line number, starting at 1.
func (l *Lexer) Line() int {
	return l.line
}

// Tokens iterates over the remaining tokens. The final token is EOF.
func (l *Lexer) Tokens() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok := l.NextToken()
			if !yield(tok) || tok.Kind == token.KIND_EOF {
				return
			}
		}
	}
}

// NextToken scans the next token. Once the input is exhausted, every
// call returns an EOF token.
func (l *Lexer) NextToken() (tok token.Token) {
	l.skipSpace()

	if l.Verbose {
		defer func(line int) {
			log.Printf("%v: %v\n", line, tok)
		}(l.line)
	}

	if l.pos >= len(l.input) {
		tok = token.New(token.KIND_EOF, "")
		return
	}

	ch := l.input[l.pos]

	switch {
	case ch == '"':
		tok = l.readString()
	case ch == ':':
		tok = l.readLabel()
	case ch == '$' && l.peek(1) == '(':
		tok = l.readExpression()
	case isDigit(ch), ch == '-' && isDigit(l.peek(1)):
		tok = l.readNumber()
	case isIdentStart(ch):
		ident := l.readIdent()
		tok = token.New(token.Lookup(ident), ident)
	default:
		start := l.pos
		_, size := utf8.DecodeRuneInString(l.input[l.pos:])
		l.pos += size
		tok = token.New(internal.FindOrDefault(punctuation, ch, token.KIND_ILLEGAL), l.input[start:l.pos])
	}

	return
}

// peek returns the byte n positions ahead, or 0 past the end of input.
func (l *Lexer) peek(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

// skipSpace skips whitespace and ';' comments.
func (l *Lexer) skipSpace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case '\n':
			l.line++
		case ' ', '\t', '\r':
		case ';':
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.pos++
			}
			continue
		default:
			return
		}
		l.pos++
	}
}

func (l *Lexer) readIdent() string {
	start := l.pos
	l.pos++
	for l.pos < len(l.input) && isIdentChar(l.input[l.pos]) {
		l.pos++
	}
	return l.input[start:l.pos]
}

// readLabel reads a ':name' label definition.
func (l *Lexer) readLabel() token.Token {
	next := l.peek(1)
	l.pos++
	if !isLetter(next) && next != '_' {
		return token.New(token.KIND_ILLEGAL, ":")
	}

	return token.New(token.KIND_LABEL, l.readIdent())
}

// readNumber reads a decimal or 0x prefixed hexadecimal integer.
func (l *Lexer) readNumber() token.Token {
	start := l.pos
	if l.input[l.pos] == '-' {
		l.pos++
	}

	digit := isDigit
	if l.input[l.pos] == '0' && (l.peek(1) == 'x' || l.peek(1) == 'X') && isHexDigit(l.peek(2)) {
		l.pos += 2
		digit = isHexDigit
	}

	for l.pos < len(l.input) && digit(l.input[l.pos]) {
		l.pos++
	}

	return token.New(token.KIND_INT, l.input[start:l.pos])
}

// readString reads a double quoted string. The literal is the raw text
// between the quotes; escapes are kept as written. A string left open at
// the end of the line is illegal.
func (l *Lexer) readString() token.Token {
	start := l.pos + 1
	l.pos++

	for {
		if l.pos >= len(l.input) || l.input[l.pos] == '\n' {
			return token.New(token.KIND_ILLEGAL, l.input[start:l.pos])
		}

		ch := l.input[l.pos]
		if ch == '"' {
			tok := token.New(token.KIND_STRING, l.input[start:l.pos])
			l.pos++
			return tok
		}
		if ch == '\\' && l.peek(1) != 0 && l.peek(1) != '\n' {
			l.pos++
		}
		l.pos++
	}
}

// readExpression reads and evaluates a $( expr ) expression.
// An expression left open at the end of the line, or one that fails to
// evaluate, is illegal; its literal is the source text from the '$' on.
func (l *Lexer) readExpression() token.Token {
	start := l.pos
	l.pos += 2

	depth := 1
	for depth > 0 {
		if l.pos >= len(l.input) || l.input[l.pos] == '\n' {
			return token.New(token.KIND_ILLEGAL, l.input[start:l.pos])
		}
		switch l.input[l.pos] {
		case '(':
			depth++
		case ')':
			depth--
		}
		l.pos++
	}

	expr := l.input[start+2 : l.pos-1]
	value, err := l.evaluate(expr)
	if err != nil {
		if l.Verbose {
			log.Printf("%v: %v\n", l.line, err)
		}
		return token.New(token.KIND_ILLEGAL, l.input[start:l.pos])
	}

	return token.New(token.KIND_INT, strconv.FormatInt(value, 10))
}

// evaluate runs an integer expression, with the integer predefines as globals.
func (l *Lexer) evaluate(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	thread.SetMaxExecutionSteps(EXPR_STEP_LIMIT)
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range l.predefine {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Not an integer; may be a register or label alias.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = &ErrExpression{Expr: expr, Err: err}
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = &ErrExpression{Expr: expr, Err: ErrNotInteger}
		return
	}

	value, ok = st_int.Int64()
	if !ok {
		err = &ErrExpression{Expr: expr, Err: ErrOverflow}
		return
	}

	return
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isIdentStart(ch byte) bool {
	return isLetter(ch) || ch == '_' || ch == '#'
}

func isIdentChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}
