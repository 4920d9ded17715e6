package errcode

import (
	"errors"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"
	"syscall"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnknownErrorString is returned for codes that neither the table nor the platform describe.
const UnknownErrorString = "Unknown error"

// Resolver maps codes to descriptions. It is read-only after construction and
// safe for concurrent use.
type Resolver struct {
	table   Table
	entries map[Code]Entry
}

// NewResolver indexes t. Duplicate codes keep their first entry.
func NewResolver(t Table) *Resolver {
	r := &Resolver{
		table:   make(Table, len(t)),
		entries: make(map[Code]Entry, len(t)),
	}
	copy(r.table, t)

	for _, e := range t {
		if _, dup := r.entries[e.Code]; dup {
			slog.Debug("Ignoring duplicate error table entry", "code", e.Code.String(), "name", e.Name)
			continue
		}
		r.entries[e.Code] = e
	}
	return r
}

// Table returns a copy of the table the resolver was built from.
func (r *Resolver) Table() Table {
	t := make(Table, len(r.table))
	copy(t, r.table)
	return t
}

// Describe returns the description of c. The table is consulted first, then the
// platform description of a system code's errno, then UnknownErrorString.
// The result is never empty.
func (r *Resolver) Describe(c Code) string {
	if e, ok := r.entries[c]; ok && e.Description != "" {
		return e.Description
	}

	if c.IsSystem() {
		if desc := platformDescription(c.Errno()); desc != "" {
			return desc
		}
	}

	return UnknownErrorString
}

// Name returns the symbolic name of c: the table name when one is set, the errno
// name for system codes, and UNKNOWN otherwise.
func (r *Resolver) Name(c Code) string {
	if e, ok := r.entries[c]; ok && e.Name != "" {
		return e.Name
	}

	if c.IsSystem() {
		if name := errnoName(c.Errno()); name != "" {
			return name
		}
		return "ERRNO_" + strconv.FormatUint(uint64(c.Errno()), 10)
	}

	if c.IsSuccess() {
		return "SUCCESS"
	}
	return "UNKNOWN"
}

// DescribeError returns a message for err. Coded errors render through the resolver,
// path errors keep their operation and path, anything else falls back to err.Error().
// Returns an empty string only when err is nil.
func (r *Resolver) DescribeError(err error) string {
	if err == nil {
		return ""
	}

	var codeErr *Error
	if errors.As(err, &codeErr) {
		return codeErr.Error()
	}

	if code, ok := FromError(err); ok {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return pathErr.Op + " " + pathErr.Path + ": " + r.Describe(code)
		}
		return r.Describe(code)
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return UnknownErrorString
}

// platformDescription returns the strerror text for errno, sentence-cased the way
// libc prints it. Errnos the platform does not know yield "".
func platformDescription(errno syscall.Errno) string {
	msg := errno.Error()
	if msg == "" || strings.HasPrefix(msg, "errno ") {
		return ""
	}

	_, size := utf8.DecodeRuneInString(msg)
	return cases.Upper(language.Und).String(msg[:size]) + msg[size:]
}

var defaultResolver atomic.Pointer[Resolver]

func init() {
	defaultResolver.Store(NewResolver(DefaultTable()))
}

// Default returns the resolver used by Error.Error and the package-level helpers.
func Default() *Resolver {
	return defaultResolver.Load()
}

// SetDefault replaces the default resolver. Passing nil restores the built-in table.
func SetDefault(r *Resolver) {
	if r == nil {
		r = NewResolver(DefaultTable())
	}
	defaultResolver.Store(r)
}

// Describe describes c with the default resolver.
func Describe(c Code) string {
	return Default().Describe(c)
}

// DescribeError describes err with the default resolver.
func DescribeError(err error) string {
	return Default().DescribeError(err)
}
