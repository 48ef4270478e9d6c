// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package expr evaluates integer expressions over named constants.
//
// Expressions use C-like integer syntax: hex, octal and binary literals,
// the arithmetic operators and the bitwise |, &, ^, ~, << and >>. Names
// resolve to previously defined constants.
package expr

import (
	"iter"
	"log"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Evaluator evaluates expressions against a set of predefined names.
type Evaluator struct {
	Verbose bool // If set, logs each evaluation.

	define map[string]uint32
}

// Define defines a new name or redefines an existing one.
func (ev *Evaluator) Define(name string, value uint32) {
	if ev.define == nil {
		ev.define = map[string]uint32{name: value}
	} else {
		ev.define[name] = value
	}
}

// DefineAll defines every name of the sequence. Values that are not numbers
// are ignored.
func (ev *Evaluator) DefineAll(defines iter.Seq2[string, string]) {
	for name, text := range defines {
		value, err := ParseNumber(text)
		if err != nil {
			continue
		}
		ev.Define(name, value)
	}
}

// Lookup returns the value of a defined name.
func (ev *Evaluator) Lookup(name string) (value uint32, ok bool) {
	value, ok = ev.define[name]
	return
}

// ParseNumber converts a C style integer literal into a 32-bit value.
// A leading '~' inverts the value, and negative values wrap.
func ParseNumber(word string) (value uint32, err error) {
	word = strings.TrimSpace(word)
	if len(word) == 0 {
		err = ErrParseNumber(word)
		return
	}

	invert := false
	if word[0] == '~' {
		invert = true
		word = word[1:]
	}

	// C style octal, ie 0755
	text := word
	if len(text) > 1 && text[0] == '0' && text[1] >= '0' && text[1] <= '9' {
		text = "0o" + text[1:]
	}

	v64, err := strconv.ParseInt(text, 0, 34)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value, err = truncate(v64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if invert {
		value = ^value
	}

	return
}

// truncate converts to 32 bits, wrapping negative values.
func truncate(v64 int64) (value uint32, err error) {
	if v64 > 0xffffffff || v64 < -int64(0x80000000) {
		err = ErrRange
		return
	}

	value = uint32(v64)
	return
}

// Eval evaluates an integer expression.
func (ev *Evaluator) Eval(text string) (value uint32, err error) {
	if len(strings.TrimSpace(text)) == 0 {
		err = &ErrParseExpression{Expr: text, Err: ErrEmpty}
		return
	}

	// Fast path for literals and names.
	word := strings.TrimSpace(text)
	if value, err = ParseNumber(word); err == nil {
		return
	}
	if v, ok := ev.define[word]; ok {
		value = v
		err = nil
		return
	}

	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, v := range ev.define {
		pred[key] = starlark.MakeUint64(uint64(v))
	}

	prog := "rc=(" + cIntegers(text) + ")\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = &ErrParseExpression{Expr: text, Err: err}
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = &ErrParseExpression{Expr: text, Err: ErrNotInteger}
		return
	}

	big_int := st_int.BigInt()
	if !big_int.IsInt64() {
		err = &ErrParseExpression{Expr: text, Err: ErrRange}
		return
	}

	value, err = truncate(big_int.Int64())
	if err != nil {
		err = &ErrParseExpression{Expr: text, Err: err}
		return
	}

	if ev.Verbose {
		log.Printf("expr: %v = %#x", text, value)
	}

	return
}

// cIntegers rewrites C integer expressions into their starlark form.
// C octal (0755) becomes 0o755, U/L suffixes are dropped, and '/' is
// integer division.
func cIntegers(text string) string {
	var out strings.Builder

	for n := 0; n < len(text); {
		c := text[n]
		if c == '/' {
			out.WriteString("//")
			n++
			if n < len(text) && text[n] == '/' {
				n++
			}
			continue
		}
		if !isDigit(c) || (n > 0 && isIdent(text[n-1])) {
			out.WriteByte(c)
			n++
			continue
		}

		end := n
		for end < len(text) && isIdent(text[end]) {
			end++
		}
		word := strings.TrimRight(text[n:end], "uUlL")
		if len(word) > 1 && word[0] == '0' && isDigit(word[1]) {
			word = "0o" + word[1:]
		}
		out.WriteString(word)
		n = end
	}

	return out.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdent(c byte) bool {
	return isDigit(c) || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
