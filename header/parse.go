// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package header

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"regexp"
	"strings"

	"github.com/ezrec/tk1mem/expr"
)

// Entry is a single named value of a header.
type Entry struct {
	LineNo      int    // Line number of the definition.
	Name        string // Constant name.
	Expr        string // Expression text, as written.
	Value       uint32 // Evaluated value.
	Comment     string // Trailing or preceding comment.
	Provisional bool   // Marked with a TODO comment.
}

// File is a parsed header.
type File struct {
	Entries []Entry // Entries, in file order.

	index map[string]int
}

// Lookup returns the named entry.
func (file *File) Lookup(name string) (entry Entry, ok bool) {
	n, ok := file.index[name]
	if ok {
		entry = file.Entries[n]
	}
	return
}

// Defines returns an iterator over all entry names and their values.
func (file *File) Defines() iter.Seq2[string, string] {
	return func(yield func(name string, value string) bool) {
		for _, entry := range file.Entries {
			if !yield(entry.Name, fmt.Sprintf("%#x", entry.Value)) {
				return
			}
		}
	}
}

func (file *File) add(entry Entry) (err error) {
	if file.index == nil {
		file.index = make(map[string]int)
	}
	_, ok := file.index[entry.Name]
	if ok {
		err = ErrDefineDuplicate
		return
	}

	file.index[entry.Name] = len(file.Entries)
	file.Entries = append(file.Entries, entry)
	return
}

// Parser reads headers. The zero value is ready to use.
type Parser struct {
	Verbose bool // If set, logs every parsed line.

	predefine map[string]uint32
}

// Predefine makes a name available to the expressions of the header.
func (parser *Parser) Predefine(name string, value uint32) {
	if parser.predefine == nil {
		parser.predefine = map[string]uint32{name: value}
	} else {
		parser.predefine[name] = value
	}
}

var (
	reName   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	reEnum   = regexp.MustCompile(`^(typedef\s+)?enum(\s+[A-Za-z_][A-Za-z0-9_]*)?\s*(\{(.*))?$`)
	reDefine = regexp.MustCompile(`^#\s*define\s+([A-Za-z_][A-Za-z0-9_]*)(\s+(.*))?$`)
	reEntry  = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*(=\s*(.*?))?\s*,?$`)
)

// Parse reads a header using a default parser.
func Parse(input io.Reader) (file *File, err error) {
	parser := &Parser{}
	return parser.Parse(input)
}

// Parse reads a header of enum entries and #define lines.
//
// Every value is evaluated in order, so later entries may refer to earlier
// ones. Function-like macros, and defines with no value or a non-integer
// value, are skipped. An
// entry that follows a TODO comment is marked provisional.
func (parser *Parser) Parse(input io.Reader) (file *File, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			file = nil
		}
	}()

	file = &File{}

	ev := &expr.Evaluator{Verbose: parser.Verbose}
	for name, value := range parser.predefine {
		ev.Define(name, value)
	}

	var in_enum bool
	var want_brace bool
	var in_comment bool
	var enum_next uint32
	var provisional bool
	var note string

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1
		line = strings.TrimSpace(text)

		if parser.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		// Drop /* ... */ comments, which may span lines.
		text, in_comment = stripBlockComment(text, in_comment)

		code, comment, _ := strings.Cut(text, "//")
		code = strings.TrimSpace(code)
		comment = strings.TrimSpace(comment)

		if len(code) == 0 {
			if strings.Contains(comment, "TODO") {
				provisional = true
			} else if len(comment) != 0 {
				note = comment
			}
			continue
		}

		if len(comment) == 0 {
			comment = note
		}
		note = ""

		// #define NAME value
		if strings.HasPrefix(code, "#") {
			match := reDefine.FindStringSubmatch(code)
			if match == nil || len(strings.TrimSpace(match[3])) == 0 {
				// Include guards, #include, #if and friends.
				provisional = false
				continue
			}
			err = parser.define(file, ev, Entry{
				LineNo:      lineno,
				Name:        match[1],
				Expr:        strings.TrimSpace(match[3]),
				Comment:     comment,
				Provisional: provisional,
			})
			if errors.Is(err, expr.ErrNotInteger) {
				// String and float macros.
				err = nil
			}
			if err != nil {
				return
			}
			provisional = false
			continue
		}

		if want_brace {
			rest, ok := strings.CutPrefix(code, "{")
			if !ok {
				err = ErrDefineSyntax
				return
			}
			want_brace = false
			in_enum = true
			enum_next = 0
			code = strings.TrimSpace(rest)
		} else if match := reEnum.FindStringSubmatch(code); match != nil {
			if in_enum {
				err = ErrEnumNesting
				return
			}
			if len(match[3]) == 0 {
				want_brace = true
				continue
			}
			in_enum = true
			enum_next = 0
			code = strings.TrimSpace(match[4])
		}

		if !in_enum {
			continue
		}

		// The closing brace may follow the last entries on a line.
		code, _, closed := strings.Cut(code, "}")

		// Several entries may share a line.
		for _, item := range strings.Split(code, ",") {
			item = strings.TrimSpace(item)
			if len(item) == 0 {
				continue
			}
			match := reEntry.FindStringSubmatch(item)
			if match == nil {
				err = ErrDefineSyntax
				return
			}
			entry := Entry{
				LineNo:      lineno,
				Name:        match[1],
				Expr:        match[3],
				Comment:     comment,
				Provisional: provisional,
			}
			if len(entry.Expr) == 0 {
				entry.Expr = fmt.Sprintf("%#x", enum_next)
			}
			err = parser.define(file, ev, entry)
			if err != nil {
				return
			}
			enum_next = file.Entries[len(file.Entries)-1].Value + 1
		}
		provisional = false

		if closed {
			in_enum = false
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	switch {
	case in_comment:
		err = ErrCommentLonely
	case in_enum, want_brace:
		err = ErrEnumLonely
	}

	return
}

// define evaluates and records a single entry.
func (parser *Parser) define(file *File, ev *expr.Evaluator, entry Entry) (err error) {
	if !reName.MatchString(entry.Name) {
		err = ErrNameInvalid
		return
	}

	entry.Value, err = ev.Eval(stripCast(entry.Expr))
	if err != nil {
		return
	}

	err = file.add(entry)
	if err != nil {
		return
	}

	ev.Define(entry.Name, entry.Value)
	return
}

// stripBlockComment removes /* */ comments from a line.
func stripBlockComment(text string, in_comment bool) (out string, still bool) {
	for len(text) > 0 {
		if in_comment {
			_, after, found := strings.Cut(text, "*/")
			if !found {
				return out, true
			}
			text = after
			in_comment = false
			continue
		}
		// Line comments hide any block comment opener.
		before, after, found := strings.Cut(text, "/*")
		if !found || strings.Contains(before, "//") {
			out += text
			break
		}
		out += before + " "
		text = after
		in_comment = true
	}

	return out, in_comment
}

var reCast = regexp.MustCompile(`\(\s*(u?int(8|16|32|64)_t|unsigned( int| long)?|uintptr_t)\s*\)`)

// stripCast removes C integer casts from an expression.
func stripCast(text string) string {
	return reCast.ReplaceAllString(text, "")
}
