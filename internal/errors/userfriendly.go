package errors

import (
	"fmt"
	"strings"
)

// UserFriendlyError provides user-friendly error messages with context and hints
type UserFriendlyError struct {
	Message string
	Reason  string
	Hint    string
	Try     string
	Err     error
}

func (e UserFriendlyError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Message)
	if e.Reason != "" {
		buf.WriteString("\n  Reason: " + e.Reason)
	}
	if e.Hint != "" {
		buf.WriteString("\n  Hint: " + e.Hint)
	}
	if e.Try != "" {
		buf.WriteString("\n  Try: " + e.Try)
	}
	if e.Err != nil {
		buf.WriteString("\n  Details: " + e.Err.Error())
	}
	return buf.String()
}

func (e UserFriendlyError) Unwrap() error {
	return e.Err
}

// WrapFlagError wraps flag validation errors with user-friendly context
func WrapFlagError(err error, flag string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Invalid value for %s", flag),
		Reason:  err.Error(),
		Hint:    "Run with --help for the full list of options and defaults",
		Try:     "autonudge --skiptime 5 --message \"Skipping in\"",
		Err:     err,
	}
}

// WrapDispatchError wraps input-injection failures with platform-specific hints
func WrapDispatchError(err error, platform string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: "Failed to send the confirmation keystrokes",
		Reason:  extractDispatchReason(err),
		Hint:    dispatchHint(platform),
		Err:     err,
	}
}

func extractDispatchReason(err error) string {
	errStr := err.Error()

	if strings.Contains(errStr, "deadline exceeded") || strings.Contains(errStr, "killed") {
		return "The injection tool did not finish within the dispatch timeout"
	}
	if strings.Contains(errStr, "executable file not found") {
		return "The injection tool is not installed on this host"
	}
	if strings.Contains(errStr, "exit status") {
		return "The injection tool ran but reported a failure"
	}

	return "Keystroke injection failed"
}

func dispatchHint(platform string) string {
	switch platform {
	case "darwin":
		return "Grant your terminal Accessibility permission under System Settings > Privacy & Security"
	case "linux":
		return "xdotool must be installed and an X11 session active (Wayland is not supported)"
	case "windows":
		return "SendInput can be blocked by elevated windows; run from a non-elevated terminal"
	default:
		return "This platform has no supported input-injection facility"
	}
}
