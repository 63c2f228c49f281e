// Package casio defines the error taxonomy shared by every layer of the
// kernel: bigint, expr, reduce, polyexpr, polyops, gf, factor and roots.
//
// Mathematically undefined results (0^0, 0/0) are not errors in this
// taxonomy — they are the atomic expr.Undefined value and propagate
// structurally through the reducer. The kinds here are failures: a
// precondition was violated, or the requested operation has no meaning in
// the active domain.
package casio

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind discriminates the error taxonomy of spec.md §7.
type Kind int

const (
	// InvalidArgument: a precondition on an operand was violated, e.g.
	// replace's substitution key was not a symbol.
	InvalidArgument Kind = iota
	// NotAPolynomial: an expression could not be normalized against the
	// requested variable list.
	NotAPolynomial
	// DomainError: the operation is invalid in the active coefficient
	// domain, e.g. GF(p) requested with a non-prime p, or a zero
	// denominator.
	DomainError
	// ArithmeticError: division by zero, or an integer-only operation
	// applied to a non-integer operand.
	ArithmeticError
	// Fail: internal inconsistency. Should never occur; reaching this
	// indicates a bug in the kernel, not bad input.
	Fail
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case NotAPolynomial:
		return "NotAPolynomial"
	case DomainError:
		return "DomainError"
	case ArithmeticError:
		return "ArithmeticError"
	case Fail:
		return "Fail"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type returned by kernel operations. It
// carries a Kind so callers can test with errors.As and dispatch without
// parsing the message, and a stack trace (via github.com/pkg/errors) so a
// failure surfaced from deep inside Hensel lifting or Sturm bisection is
// debuggable at the call site that ultimately reported it.
type Error struct {
	Kind  Kind
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a Kind-tagged, stack-annotated error.
func New(kind Kind, format string, args ...interface{}) error {
	return errors.WithStack(&Error{Kind: kind, msg: fmt.Sprintf(format, args...)})
}

// Wrap annotates cause with a Kind and a message and attaches a new stack
// trace at the call site; cause, with any stack it carries, is kept as the
// wrapped error.
func Wrap(cause error, kind Kind, format string, args ...interface{}) error {
	if cause == nil {
		return nil
	}
	return errors.WithStack(&Error{Kind: kind, msg: fmt.Sprintf(format, args...), cause: cause})
}

// Is reports whether err (or something it wraps) is a *Error of kind k.
func Is(err error, k Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == k {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
