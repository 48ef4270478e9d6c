package mem

import (
	"errors"

	"github.com/ezrec/tk1mem/translate"
)

var f = translate.From

var (
	// Lookup errors
	ErrAddressUnmapped = errors.New(f("address unmapped"))
	ErrDeviceUnknown   = errors.New(f("no core at address"))
	ErrRegisterUnknown = errors.New(f("register unknown"))

	// Invariant errors
	ErrOrder     = errors.New(f("out of order"))
	ErrOverlap   = errors.New(f("overlap"))
	ErrBounds    = errors.New(f("out of bounds"))
	ErrAlignment = errors.New(f("not word aligned"))
	ErrDuplicate = errors.New(f("duplicated"))
	ErrBitIndex  = errors.New(f("bit index invalid"))
	ErrSpan      = errors.New(f("span invalid"))
	ErrAppLayout = errors.New(f("application layout invalid"))
)

// ErrInvariant reports a single violated layout invariant.
type ErrInvariant struct {
	Rule    string // Short name of the violated rule.
	Subject string // Region, core or register that violates it.
	Err     error
}

func (err *ErrInvariant) Error() string {
	return f("%v: %v: %v", err.Rule, err.Subject, err.Err)
}

func (err *ErrInvariant) Unwrap() error {
	return err.Err
}

// ErrAddress records the address that failed to decode.
type ErrAddress struct {
	Addr uint32
	Err  error
}

func (err *ErrAddress) Error() string {
	return f("0x%08x %v", err.Addr, err.Err)
}

func (err *ErrAddress) Unwrap() error {
	return err.Err
}
