// Package errors is the single import for error handling: stdlib matching
// plus pkg/errors wrapping, which records a stack trace at the wrap site.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Matching and construction without a stack trace.
var (
	New  = stderrors.New
	Is   = stderrors.Is
	Join = stderrors.Join
)

// Wrapping with a stack trace.
var (
	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
	Errorf    = pkgerrors.Errorf
)

// AsType returns the first error in err's tree of type T.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}
