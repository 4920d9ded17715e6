package ui

import (
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/tdnf-go/tdnf-util/pkg/errcode"
)

func TestFormatError(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	tcs := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil", err: nil, expected: ""},
		{
			name:     "coded error",
			err:      NewFileSystemError(errcode.SystemError(syscall.EEXIST, "mkdir", "/var/cache/tdnf")),
			expected: fmt.Sprintf("✗ Error: mkdir /var/cache/tdnf: File exists (%d)\n", errcode.SystemBase+uint32(syscall.EEXIST)),
		},
		{
			name:     "application code",
			err:      errcode.New(errcode.Application(1006), "", ""),
			expected: "✗ Error: No matching packages (1006)\n",
		},
		{
			name:     "plain error",
			err:      errors.New("accepts 1 arg(s), received 0"),
			expected: "✗ Error: accepts 1 arg(s), received 0\n",
		},
		{
			name:     "silent error",
			err:      NewSilentError(errors.New("already printed")),
			expected: "",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatError(tc.err))
		})
	}
}

func TestFormatSuccess(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	assert.Equal(t, "✓ Created /tmp/a\n", FormatSuccess("Created %s", "/tmp/a"))
}

func TestFormatBool(t *testing.T) {
	assert.Equal(t, "true", FormatBool(true))
	assert.Equal(t, "false", FormatBool(false))
}

func TestCLIError(t *testing.T) {
	inner := errcode.InvalidParameter("size", "\"ten\" is not a byte count")
	err := NewValidationError(inner)

	assert.Equal(t, ErrorTypeValidation, err.Type)
	assert.True(t, err.SuppressUsage)
	assert.False(t, err.SilentExit)
	assert.ErrorIs(t, err, errcode.ErrInvalidParameter)
	assert.Equal(t, "size: Invalid argument: \"ten\" is not a byte count", err.Error())

	code, ok := err.Code()
	assert.True(t, ok)
	assert.Equal(t, errcode.CodeInvalidParameter, code)

	assert.Equal(t, ErrorTypeConfiguration, NewConfigurationError(inner).Type)
	assert.Equal(t, ErrorTypeInternal, NewInternalError(inner).Type)
}
