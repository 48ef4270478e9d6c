package expr

import (
	"errors"

	"github.com/ezrec/tk1mem/translate"
)

var f = translate.From

var (
	ErrEmpty = errors.New(f("expression empty"))
	ErrRange = errors.New(f("value out of 32-bit range"))

	ErrNotInteger = errors.New(f("value is not an integer"))
)

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrParseExpression reports an expression that did not evaluate to an integer.
type ErrParseExpression struct {
	Expr string
	Err  error
}

func (err *ErrParseExpression) Error() string {
	if err.Err == nil {
		return f("(%v) is not a valid expression", err.Expr)
	}
	return f("(%v) is not a valid expression: %v", err.Expr, err.Err)
}

func (err *ErrParseExpression) Unwrap() error {
	return err.Err
}
