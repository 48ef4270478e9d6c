// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ezrec/tk1mem/expr"
	"github.com/ezrec/tk1mem/header"
	"github.com/ezrec/tk1mem/mem"
	"github.com/ezrec/tk1mem/translate"
)

var f = translate.From

var (
	ErrDrift     = errors.New(f("header differs from memory map"))
	ErrGenerator = errors.New(f("unknown generator"))
	ErrNoAction  = errors.New(f("nothing to do"))
)

func main() {
	log.SetFlags(0)
	log.SetPrefix(os.Args[0] + ": ")

	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

// run executes the command line in args, writing results to out.
func run(args []string, out io.Writer) (err error) {
	var list bool
	var addr string
	var eval string
	var compare string
	var generate string
	var pkg string
	var check bool
	var verbose bool

	var user [][2]string

	flags := flag.NewFlagSet("tk1mem", flag.ContinueOnError)
	flags.BoolVar(&list, "l", false, "List the memory map")
	flags.StringVar(&addr, "a", "", "Address (or expression) to decode")
	flags.StringVar(&eval, "e", "", "Expression to evaluate")
	flags.StringVar(&compare, "c", "", "Header file to compare against the memory map")
	flags.StringVar(&generate, "g", "", "Generate a header: c or go")
	flags.StringVar(&pkg, "p", "", "Include guard (c) or package name (go) of the generated header")
	flags.BoolVar(&check, "check", false, "Verify the memory map invariants")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")
	flags.Func("D", "Extra NAME=VALUE define for expressions", func(text string) error {
		name, value, ok := strings.Cut(text, "=")
		if !ok || len(name) == 0 {
			return fmt.Errorf("-D %v: %w", text, expr.ErrParseNumber(text))
		}
		user = append(user, [2]string{name, value})
		return nil
	})

	err = flags.Parse(args)
	if err != nil {
		return
	}

	if flags.NArg() != 0 {
		err = fmt.Errorf("%v: %v", f("unknown arguments"), flags.Args())
		return
	}

	ev := &expr.Evaluator{Verbose: verbose}
	ev.DefineAll(mem.Defines())

	// Each -D may refer to the map and to the -D names before it.
	for _, define := range user {
		var value uint32
		value, err = ev.Eval(define[1])
		if err != nil {
			err = fmt.Errorf("-D %v: %w", define[0], err)
			return
		}
		ev.Define(define[0], value)
	}

	did := false

	if check {
		did = true
		err = mem.TK1.Check()
		if err != nil {
			return
		}
		fmt.Fprintln(out, f("memory map ok"))
	}

	if list {
		did = true
		fmt.Fprint(out, mem.TK1.String())
	}

	if len(eval) != 0 {
		did = true
		var value uint32
		value, err = ev.Eval(eval)
		if err != nil {
			return
		}
		fmt.Fprintf(out, "0x%08x\n", value)
	}

	if len(addr) != 0 {
		did = true
		err = decode(out, ev, addr, verbose)
		if err != nil {
			return
		}
	}

	if len(compare) != 0 {
		did = true
		err = compareFile(out, compare, verbose)
		if err != nil {
			return
		}
	}

	if len(generate) != 0 {
		did = true
		switch generate {
		case "c":
			if len(pkg) == 0 {
				pkg = "TK1_MEM_H"
			}
			err = header.RenderC(out, mem.Symbols(), pkg)
		case "go":
			if len(pkg) == 0 {
				pkg = "tkey"
			}
			err = header.RenderGo(out, mem.Symbols(), pkg)
		default:
			err = fmt.Errorf("%w: %v", ErrGenerator, generate)
		}
		if err != nil {
			return
		}
	}

	if !did {
		flags.SetOutput(out)
		flags.Usage()
		err = ErrNoAction
	}

	return
}

// decode prints the location of an address expression.
func decode(out io.Writer, ev *expr.Evaluator, text string, verbose bool) (err error) {
	value, err := ev.Eval(text)
	if err != nil {
		return
	}

	loc, err := mem.TK1.Decode(value)
	if err != nil {
		return
	}

	fmt.Fprintln(out, loc.String())

	if loc.Register != nil {
		for _, bit := range loc.Register.Bits {
			fmt.Fprintf(out, "  bit %d %v (0x%x)\n", bit.Index, bit.Name, bit.Mask())
		}
	}

	if verbose && loc.Device != nil {
		for name, value := range loc.Device.Defines() {
			fmt.Fprintf(out, "  %v = %v\n", name, value)
		}
	}

	return
}

// compareFile reports the differences between a header file and the memory map.
func compareFile(out io.Writer, path string, verbose bool) (err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	parser := &header.Parser{Verbose: verbose}
	file, err := parser.Parse(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	mismatches := header.Compare(file, mem.Symbols())
	for _, mm := range mismatches {
		fmt.Fprintf(out, "%v: %v\n", path, mm)
	}

	if len(mismatches) != 0 {
		err = fmt.Errorf("%v: %w", path, ErrDrift)
		return
	}

	fmt.Fprintln(out, f("%v: %d entries match", path, len(file.Entries)))
	return
}
