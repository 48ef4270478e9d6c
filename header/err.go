package header

import (
	"errors"

	"github.com/ezrec/tk1mem/translate"
)

var f = translate.From

var (
	ErrDefineDuplicate = errors.New(f("define duplicated"))
	ErrDefineSyntax    = errors.New(f("define syntax"))
	ErrEnumNesting     = errors.New(f("enum in enum prohibited"))
	ErrEnumLonely      = errors.New(f("enum without closing brace"))
	ErrCommentLonely   = errors.New(f("comment without closing */"))
	ErrNameInvalid     = errors.New(f("name invalid"))
)

// ErrSyntax reports the header line that failed to parse.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
