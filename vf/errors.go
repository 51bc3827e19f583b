package vf

import (
	"errors"
	"fmt"
)

// Sentinel errors for checked preconditions. Every error returned by a
// go-vfunc entry point wraps one of these.
var (
	// ErrShortBuffer reports a destination slice with too few elements.
	ErrShortBuffer = errors.New("vf: destination buffer too short")

	// ErrLengthMismatch reports inputs that must have equal length but
	// don't.
	ErrLengthMismatch = errors.New("vf: input lengths differ")

	// ErrInvalidArgument reports a parameter outside its domain, such as a
	// rolling window larger than the input.
	ErrInvalidArgument = errors.New("vf: invalid argument")
)

// ArgError describes a failed precondition on a single argument.
type ArgError struct {
	Op   string // operation, e.g. "kernel.Scale"
	Arg  string // argument name
	Need int    // required length or bound, when meaningful
	Have int    // actual length or value, when meaningful
	Msg  string // free-form detail
	Err  error  // one of the sentinels above
}

func (e *ArgError) Error() string {
	switch {
	case e.Msg != "":
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Arg, e.Msg)
	case e.Err == ErrLengthMismatch:
		return fmt.Sprintf("%s: %s: lengths %d and %d differ", e.Op, e.Arg, e.Need, e.Have)
	default:
		return fmt.Sprintf("%s: %s: need %d elements, have %d", e.Op, e.Arg, e.Need, e.Have)
	}
}

func (e *ArgError) Unwrap() error { return e.Err }

// CheckDst returns an ErrShortBuffer error if dst holds fewer than need
// elements.
func CheckDst(op, arg string, have, need int) error {
	if have >= need {
		return nil
	}
	return &ArgError{Op: op, Arg: arg, Need: need, Have: have, Err: ErrShortBuffer}
}

// CheckSameLen returns an ErrLengthMismatch error if a != b.
func CheckSameLen(op, arg string, a, b int) error {
	if a == b {
		return nil
	}
	return &ArgError{Op: op, Arg: arg, Need: a, Have: b, Err: ErrLengthMismatch}
}

// InvalidArgument returns an ErrInvalidArgument error.
func InvalidArgument(op, arg, format string, args ...any) error {
	return &ArgError{Op: op, Arg: arg, Msg: fmt.Sprintf(format, args...), Err: ErrInvalidArgument}
}
