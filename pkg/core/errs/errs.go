// Package errs defines the fatal error taxonomy shared by every core
// component: tensor primitives, layer primitives, the attention block, the
// transformer block, and the generation loop. The core performs no local
// recovery; every Error is terminal by construction and carries the exit
// code the process should report once it has been logged.
package errs

import (
	"errors"
	"fmt"
)

// Kind enumerates the five error categories the core recognizes. The
// numeric value doubles as the process exit code on fatal termination.
type Kind int

const (
	// InvalidInput covers shape/dimension mismatches, illegal arguments,
	// and out-of-vocabulary indices.
	InvalidInput Kind = iota + 1
	// IndexError covers element access past the bounds of a tensor.
	IndexError
	// MemoryError covers allocation failure.
	MemoryError
	// FileError covers weight-file open or read failure.
	FileError
	// ValueError covers a malformed path or configuration string.
	ValueError
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case IndexError:
		return "IndexError"
	case MemoryError:
		return "MemoryError"
	case FileError:
		return "FileError"
	case ValueError:
		return "ValueError"
	default:
		return "UnknownError"
	}
}

// Error is the single error type produced anywhere in the core. Kind
// selects both the log treatment and the process exit code; Err, when
// present, is the underlying cause (e.g. an *os.PathError from the weight
// loader) and is reachable through errors.Unwrap.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New constructs a Kind-tagged error with no underlying cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf is New with fmt.Sprintf-style formatting of msg.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap constructs a Kind-tagged error around an underlying cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// ExitCode returns the numeric tag a fatal Error should be reported with.
// Any non-taxonomy error (should not occur in the core, but guards callers
// at the process boundary) maps to exit code 1.
func ExitCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return int(e.Kind)
	}
	return 1
}
