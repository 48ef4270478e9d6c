package header

import (
	"fmt"

	"github.com/ezrec/tk1mem/mem"
)

// MismatchKind is the kind of difference between a header and a symbol table.
type MismatchKind int

//go:generate go tool stringer -linecomment -type=MismatchKind
const (
	MISMATCH_VALUE       = MismatchKind(0) // value
	MISMATCH_MISSING     = MismatchKind(1) // missing
	MISMATCH_EXTRA       = MismatchKind(2) // extra
	MISMATCH_PROVISIONAL = MismatchKind(3) // provisional
)

// Mismatch is a single difference between a header and a symbol table.
type Mismatch struct {
	Kind MismatchKind
	Name string
	Want uint32 // Value in the symbol table.
	Got  uint32 // Value in the header.
}

func (mm Mismatch) String() string {
	switch mm.Kind {
	case MISMATCH_VALUE:
		return fmt.Sprintf("%v: %v: want 0x%08x, got 0x%08x", mm.Kind, mm.Name, mm.Want, mm.Got)
	case MISMATCH_MISSING:
		return fmt.Sprintf("%v: %v (0x%08x)", mm.Kind, mm.Name, mm.Want)
	case MISMATCH_EXTRA:
		return fmt.Sprintf("%v: %v (0x%08x)", mm.Kind, mm.Name, mm.Got)
	}
	return fmt.Sprintf("%v: %v", mm.Kind, mm.Name)
}

// Compare reports every difference between a parsed header and a symbol
// table. Header entries absent from the table are reported as extra,
// table symbols absent from the header as missing.
func Compare(file *File, symbols []mem.Symbol) (mismatches []Mismatch) {
	known := map[string]bool{}

	for _, sym := range symbols {
		known[sym.Name] = true

		entry, ok := file.Lookup(sym.Name)
		if !ok {
			mismatches = append(mismatches, Mismatch{Kind: MISMATCH_MISSING, Name: sym.Name, Want: sym.Value})
			continue
		}
		if entry.Value != sym.Value {
			mismatches = append(mismatches, Mismatch{Kind: MISMATCH_VALUE, Name: sym.Name, Want: sym.Value, Got: entry.Value})
		}
		if entry.Provisional != sym.Provisional {
			mismatches = append(mismatches, Mismatch{Kind: MISMATCH_PROVISIONAL, Name: sym.Name, Want: sym.Value, Got: entry.Value})
		}
	}

	for _, entry := range file.Entries {
		if !known[entry.Name] {
			mismatches = append(mismatches, Mismatch{Kind: MISMATCH_EXTRA, Name: entry.Name, Got: entry.Value})
		}
	}

	return
}
