package ui

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/tdnf-go/tdnf-util/pkg/errcode"
)

// FormatError formats an error message with styling.
// The message is resolved through errcode so coded errors always read the same.
// NOTE: Adds a new line manually. Use strings.TrimSpace if you want to strip it.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) && cliErr.SilentExit {
		return ""
	}

	msg := errcode.DescribeError(err)
	if code, ok := errcode.FromError(err); ok {
		msg = fmt.Sprintf("%s (%s)", msg, code)
	}
	return ErrorStyle.Render("✗ Error: "+msg) + "\n"
}

// FormatSuccess renders a checkmarked confirmation line.
func FormatSuccess(format string, args ...any) string {
	return SuccessStyle.Render("✓ "+fmt.Sprintf(format, args...)) + "\n"
}

// FormatBool renders a predicate result for scripts: "true" or "false".
func FormatBool(b bool) string {
	return strconv.FormatBool(b)
}
