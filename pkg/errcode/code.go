// Package errcode models the error codes used by the tdnf client and resolves them
// into human-readable descriptions.
//
// A Code is either Success, an application code defined by the client, or a system
// code carrying a raw errno. The client's legacy flat numeric space, where system
// errors are stored as errno + SystemBase, is supported through Numeric and FromNumeric.
package errcode

import (
	"errors"
	"io/fs"
	"strconv"
	"syscall"
)

const (
	// ApplicationBase is the first code reserved for client-defined errors.
	ApplicationBase uint32 = 1000

	// SystemBase is the offset added to an errno to store it in the numeric code space.
	// Only codes strictly greater than SystemBase are system errors.
	SystemBase uint32 = 1600
)

// Kind identifies the variant held by a Code.
type Kind uint8

const (
	KindSuccess Kind = iota
	KindApplication
	KindSystem
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindApplication:
		return "application"
	case KindSystem:
		return "system"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Code is a tagged error code. The zero value is Success.
// Codes are comparable and can be used as map keys.
type Code struct {
	kind  Kind
	value uint32
}

// Success is the code of a successful operation.
var Success = Code{}

// Application returns the client-defined code n. Zero maps to Success.
func Application(n uint32) Code {
	if n == 0 {
		return Success
	}
	return Code{kind: KindApplication, value: n}
}

// System returns the code wrapping a raw errno. Errno zero maps to Success.
func System(errno syscall.Errno) Code {
	if errno == 0 {
		return Success
	}
	return Code{kind: KindSystem, value: uint32(errno)}
}

// Kind returns the variant of the code.
func (c Code) Kind() Kind {
	return c.kind
}

// IsSuccess reports whether c is Success.
func (c Code) IsSuccess() bool {
	return c.kind == KindSuccess
}

// IsSystem reports whether c wraps an errno.
func (c Code) IsSystem() bool {
	return c.kind == KindSystem
}

// Errno returns the raw errno of a system code, or zero for any other kind.
func (c Code) Errno() syscall.Errno {
	if c.kind != KindSystem {
		return 0
	}
	return syscall.Errno(c.value)
}

// Numeric returns the code in the legacy flat encoding.
func (c Code) Numeric() uint32 {
	switch c.kind {
	case KindApplication:
		return c.value
	case KindSystem:
		return EncodeSystemError(syscall.Errno(c.value))
	default:
		return 0
	}
}

// String returns the numeric form, which is what users of the client see in messages.
func (c Code) String() string {
	return strconv.FormatUint(uint64(c.Numeric()), 10)
}

// FromNumeric decodes a legacy numeric code.
func FromNumeric(n uint32) Code {
	switch {
	case n == 0:
		return Success
	case IsSystemError(n):
		return System(syscall.Errno(DecodeSystemError(n)))
	default:
		return Application(n)
	}
}

// IsSystemError reports whether the numeric code n lies in the system range.
func IsSystemError(n uint32) bool {
	return n > SystemBase
}

// DecodeSystemError returns the errno stored in n, or zero if n is not a system code.
func DecodeSystemError(n uint32) uint32 {
	if !IsSystemError(n) {
		return 0
	}
	return n - SystemBase
}

// EncodeSystemError stores errno in the numeric code space.
// A raw errno must always pass through here before it is treated as a numeric code.
func EncodeSystemError(errno syscall.Errno) uint32 {
	return uint32(errno) + SystemBase
}

// FromError extracts the code carried by err.
//
// It looks for an *Error first, then a syscall.Errno, then the io/fs sentinel errors.
// The boolean is false when err is nil or carries no recognisable code.
func FromError(err error) (Code, bool) {
	if err == nil {
		return Success, false
	}

	var codeErr *Error
	if errors.As(err, &codeErr) {
		return codeErr.Code, true
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return System(errno), true
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return System(syscall.ENOENT), true
	case errors.Is(err, fs.ErrExist):
		return System(syscall.EEXIST), true
	case errors.Is(err, fs.ErrPermission):
		return System(syscall.EACCES), true
	case errors.Is(err, fs.ErrInvalid):
		return System(syscall.EINVAL), true
	}

	return Success, false
}
