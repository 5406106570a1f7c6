package util

import "fmt"

// Error is an error carrier that keeps the operator-facing log message
// separate from the message shown to the user
type Error struct {
	LogMsg     string
	SimpleMsg  string
	Response   string
	URL        string
	HTTPStatus int
	CausedBy   error
}

// Error implements the error interface, preferring the user-facing message
func (err *Error) Error() string {
	if err.SimpleMsg != "" {
		return err.SimpleMsg
	}
	return err.LogMsg
}

// Log records the error against the given context and returns it for
// propagation; prefix is prepended to the log message when non-empty
func (err *Error) Log(ctx LogContext, prefix string) error {
	message := err.LogMsg
	if message == "" {
		message = err.SimpleMsg
	}
	if prefix != "" {
		message = prefix + ": " + message
	}
	if err.Response != "" {
		message = fmt.Sprintf("%s; response: %s", message, err.Response)
	}
	if err.CausedBy != nil {
		message = fmt.Sprintf("%s; caused by: %v", message, err.CausedBy)
	}
	logMessage(ctx, ERROR, message)
	return err
}

// PathError indicates a missing or unusable file or directory argument
type PathError struct {
	Path   string
	Reason string
}

func (err *PathError) Error() string {
	return fmt.Sprintf("path %q: %s", err.Path, err.Reason)
}

// NewPathError creates a PathError for the given path
func NewPathError(path, reason string) *PathError {
	return &PathError{Path: path, Reason: reason}
}
