package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"slices"

	"github.com/pkg/errors"
)

// Sentinel errors shared by the collection packages.
var (
	// ErrNotFound indicates that an element the operation depends on is not stored.
	ErrNotFound = errors.New("not found")
	// ErrTypeMismatch indicates that a value could not be used as the collection's element type.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrCorrupt indicates that a structural invariant of a collection does not hold.
	ErrCorrupt = errors.New("corrupt structure")
	// ErrRootExists indicates an attempt to set a root on a tree that already has one.
	ErrRootExists = errors.New("root already exists")
	// ErrEmpty indicates that the operation needs at least one stored element.
	ErrEmpty = errors.New("empty collection")
)

// Re-exported functions from github.com/pkg/errors and standard library for convenience.
var (
	// New returns an error that formats as the given text.
	New = errors.New
	// Errorf formats according to a format specifier and returns the string as a
	// value that satisfies error.
	Errorf = errors.Errorf
	// Wrap returns an error annotating err with a stack trace at the point Wrap is called,
	// and the supplied message. If err is nil, Wrap returns nil.
	Wrap = errors.Wrap
	// Wrapf returns an error annotating err with a stack trace at the point Wrapf is called,
	// and the format specifier. If err is nil, Wrapf returns nil.
	Wrapf = errors.Wrapf
	// WithStack annotates err with a stack trace at the point WithStack was called.
	WithStack = errors.WithStack
	// WithMessage annotates err with a new message. If err is nil, WithMessage returns nil.
	WithMessage = errors.WithMessage
	// Cause returns the underlying cause of the error, if possible.
	Cause = errors.Cause
	// Is reports whether any error in err's chain matches target.
	Is = stderrors.Is
	// As finds the first error in err's chain that matches target.
	As = stderrors.As
	// Join returns an error that wraps the given errors. Any nil error values are discarded.
	Join = stderrors.Join
)

// Annotate wraps the error pointed to by err with the formatted message if err is non-nil.
//
// Example usage:
//
//	func (t *Tree) Validate() (err error) {
//	    defer Annotate(&err, "validate")
//	    // ...
//	}
func Annotate(err *error, msg string, args ...any) {
	if *err != nil {
		*err = errors.Wrapf(*err, msg, args...)
	}
}

// OneOf returns true if the root cause of the received error matches any of the provided errors.
//
//	if OneOf(err, ErrNotFound, ErrEmpty) {
//	    // nothing to operate on
//	}
func OneOf(received error, errs ...error) bool {
	return slices.Contains(errs, Cause(received))
}

// WithCause wraps an error with an explicit root cause. The returned error implements
// Cause() for the root cause and Unwrap() for the wrapper.
func WithCause(err error, cause error) error {
	return &withCause{err, cause}
}

type withCause struct {
	error
	cause error
}

func (w *withCause) Error() string { return w.error.Error() + ": " + w.cause.Error() }

func (w *withCause) Cause() error { return w.cause }

func (w *withCause) Unwrap() error { return w.error }

func (w *withCause) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%+v\n", w.Cause())
			io.WriteString(s, w.error.Error())
			return
		}
		fallthrough
	case 's', 'q':
		io.WriteString(s, w.Error())
	}
}
