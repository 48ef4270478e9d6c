// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package header

import (
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/tk1mem/mem"
)

const generated = "// Code generated by tk1mem; DO NOT EDIT."

// errWriter keeps the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// literal formats a symbol value. Bit indexes and small sizes are decimal.
func literal(sym mem.Symbol) string {
	if strings.HasSuffix(sym.Name, "_BIT") || strings.HasSuffix(sym.Name, "_SIZE") && sym.Value < 0x1000 {
		return fmt.Sprintf("%d", sym.Value)
	}
	return fmt.Sprintf("0x%08x", sym.Value)
}

func nameWidth(symbols []mem.Symbol) (width int) {
	for _, sym := range symbols {
		width = max(width, len(sym.Name))
	}
	return
}

// entries writes one line per symbol, with the given indent, separator and
// terminator.
func entries(ew *errWriter, symbols []mem.Symbol, indent string, sep string, term string) {
	width := nameWidth(symbols)

	for _, sym := range symbols {
		comment := sym.Comment
		if sym.Provisional {
			ew.printf("%v// TODO provisional: %v\n", indent, strings.TrimSuffix(comment, ":"))
			comment = ""
		}
		line := fmt.Sprintf("%v%-*v %v %v%v", indent, width, sym.Name, sep, literal(sym), term)
		if len(comment) != 0 {
			line += " // " + comment
		}
		ew.printf("%v\n", line)
	}
}

// RenderC writes the symbols as a C header enum, protected by guard.
func RenderC(w io.Writer, symbols []mem.Symbol, guard string) (err error) {
	ew := &errWriter{w: w}

	ew.printf("%v\n\n", generated)
	ew.printf("// clang-format off\n\n")
	ew.printf("#ifndef %v\n#define %v\n\n", guard, guard)
	ew.printf("enum {\n")
	entries(ew, symbols, "    ", "=", ",")
	ew.printf("};\n\n")
	ew.printf("#endif\n")

	return ew.err
}

// RenderGo writes the symbols as Go constants of package pkg.
func RenderGo(w io.Writer, symbols []mem.Symbol, pkg string) (err error) {
	ew := &errWriter{w: w}

	ew.printf("%v\n\n", generated)
	ew.printf("package %v\n\n", pkg)
	ew.printf("const (\n")
	entries(ew, symbols, "\t", "=", "")
	ew.printf(")\n")

	return ew.err
}
