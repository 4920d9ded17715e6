package ui

import (
	"github.com/tdnf-go/tdnf-util/pkg/errcode"
)

// ErrorType defines the category of error for proper handling
type ErrorType int

const (
	ErrorTypeValidation    ErrorType = iota // Bad arguments - show error, no usage
	ErrorTypeFileSystem                     // File operations - show error, no usage
	ErrorTypeConfiguration                  // Config issues - show error, no usage
	ErrorTypeInternal                       // Unexpected - show error, no usage
)

// CLIError carries metadata about how a command error should be presented.
type CLIError struct {
	Err           error
	Type          ErrorType
	SuppressUsage bool // Don't show Cobra usage message
	SilentExit    bool // Don't show error message (already printed)
}

func (e *CLIError) Error() string {
	return errcode.DescribeError(e.Err)
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// Code returns the error code carried by the wrapped error, if any.
func (e *CLIError) Code() (errcode.Code, bool) {
	return errcode.FromError(e.Err)
}

// Constructor helpers

func NewValidationError(err error) *CLIError {
	return &CLIError{
		Err:           err,
		Type:          ErrorTypeValidation,
		SuppressUsage: true,
	}
}

func NewFileSystemError(err error) *CLIError {
	return &CLIError{
		Err:           err,
		Type:          ErrorTypeFileSystem,
		SuppressUsage: true,
	}
}

func NewConfigurationError(err error) *CLIError {
	return &CLIError{
		Err:           err,
		Type:          ErrorTypeConfiguration,
		SuppressUsage: true,
	}
}

func NewInternalError(err error) *CLIError {
	return &CLIError{
		Err:           err,
		Type:          ErrorTypeInternal,
		SuppressUsage: true,
	}
}

// NewSilentError reports a failure whose message has already been printed.
func NewSilentError(err error) *CLIError {
	return &CLIError{
		Err:           err,
		Type:          ErrorTypeValidation,
		SuppressUsage: true,
		SilentExit:    true,
	}
}
