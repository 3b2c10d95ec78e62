// Package contract reports precondition violations. A violation is a caller
// bug, not a runtime condition: it is logged and raised as a panic carrying
// a *Violation, which Recover turns back into an error where a caller wants
// one.
package contract

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
)

var (
	ErrOutOfBounds   = errors.New("mathlib: index out of bounds")
	ErrArity         = errors.New("mathlib: wrong number of elements")
	ErrNotSquare     = errors.New("mathlib: matrix is not square")
	ErrAffineWeights = errors.New("mathlib: affine weights do not sum to one")
	ErrDegenerate    = errors.New("mathlib: degenerate numeric input")
	ErrShape         = errors.New("mathlib: shape mismatch")
)

// Violation is the panic value raised for a broken precondition.
type Violation struct {
	Op    string
	Err   error
	Frame string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %v on %s", v.Op, v.Err, v.Frame)
}

func (v *Violation) Unwrap() error {
	return v.Err
}

// Violate logs and panics with a Violation of op. err should wrap one of the
// package sentinels.
func Violate(op string, err error) {
	raise(op, err, 2)
}

// Violatef is Violate with a formatted detail prepended to err.
func Violatef(op string, err error, format string, args ...any) {
	raise(op, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err), 2)
}

// Require violates op with err unless ok holds.
func Require(ok bool, op string, err error, format string, args ...any) {
	if !ok {
		raise(op, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err), 2)
	}
}

// Index violates op unless 0 <= i < n.
func Index(op string, i, n int) {
	if i < 0 || i >= n {
		raise(op, fmt.Errorf("index %d outside [0, %d): %w", i, n, ErrOutOfBounds), 2)
	}
}

func raise(op string, err error, skip int) {
	v := &Violation{Op: op, Err: err, Frame: callerFrame(skip)}
	currentLogger().WithFields(logrus.Fields{
		"op":    v.Op,
		"error": v.Err.Error(),
		"frame": v.Frame,
	}).Error("contract violation")
	panic(v)
}

func callerFrame(skip int) string {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown frame"
	}
	name := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
	}
	return fmt.Sprintf("%s (%s:%d)", name, filepath.Base(file), line)
}

// OrPanic runs finalizers and panics if err is non-nil.
func OrPanic(err error, finalizers ...func()) {
	if err == nil {
		return
	}
	for _, fn := range finalizers {
		fn()
	}
	panic(err)
}

// Recover converts a Violation panic into *err. It must be deferred
// directly. Panics of any other kind are re-raised.
func Recover(err *error) {
	if v := recover(); v != nil {
		if violation, ok := v.(*Violation); ok {
			*err = violation
			return
		}
		panic(v)
	}
}
