package errcode

import (
	"errors"
	"syscall"
)

// Codes for the error taxonomy shared by every package of the client.
// They live in the system range, so an unmapped build still renders a platform message.
var (
	CodeInvalidParameter = System(syscall.EINVAL)
	CodeOutOfMemory      = System(syscall.ENOMEM)
	CodeAlreadyExists    = System(syscall.EEXIST)
	CodeNotFound         = System(syscall.ENOENT)
)

// CodeNoMatch reports that a package pattern matched nothing.
var CodeNoMatch = Application(1006)

// Sentinels for errors.Is. Any *Error with the same code matches.
var (
	ErrInvalidParameter = &Error{Code: CodeInvalidParameter}
	ErrOutOfMemory      = &Error{Code: CodeOutOfMemory}
	ErrAlreadyExists    = &Error{Code: CodeAlreadyExists}
	ErrNotFound         = &Error{Code: CodeNotFound}
	ErrNoMatch          = &Error{Code: CodeNoMatch}
)

// Error is an error carrying a Code, the operation that failed and the path it
// failed on, if any.
//
// Error renders through the default Resolver, so the message always matches
// what the client shows for the same numeric code.
type Error struct {
	Code Code
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := Default().Describe(e.Code)
	if e.Err != nil {
		if c, ok := FromError(e.Err); !ok || c != e.Code {
			msg += ": " + e.Err.Error()
		}
	}

	switch {
	case e.Op != "" && e.Path != "":
		return e.Op + " " + e.Path + ": " + msg
	case e.Op != "":
		return e.Op + ": " + msg
	case e.Path != "":
		return e.Path + ": " + msg
	default:
		return msg
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error holding the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// New returns an error for code.
func New(code Code, op, path string) error {
	return &Error{Code: code, Op: op, Path: path}
}

// Wrap attaches a code to err. The code is taken from err itself through FromError;
// errors that carry none get the generic ApplicationBase code. An err that is already
// an *Error is returned unchanged.
//
// Returns nil if err is nil.
func Wrap(err error, op, path string) error {
	if err == nil {
		return nil
	}

	var codeErr *Error
	if errors.As(err, &codeErr) {
		return err
	}

	code, ok := FromError(err)
	if !ok {
		code = Application(ApplicationBase)
	}
	return &Error{Code: code, Op: op, Path: path, Err: err}
}

// SystemError returns an error for a raw errno observed during op on path.
func SystemError(errno syscall.Errno, op, path string) error {
	return &Error{Code: System(errno), Op: op, Path: path, Err: errno}
}

// InvalidParameter returns an invalid-parameter error for op. Reason is appended
// to the message when non-empty.
func InvalidParameter(op, reason string) error {
	e := &Error{Code: CodeInvalidParameter, Op: op}
	if reason != "" {
		e.Err = errors.New(reason)
	}
	return e
}

// IsSystem reports whether err carries a system code.
func IsSystem(err error) bool {
	code, ok := FromError(err)
	return ok && code.IsSystem()
}
