package util

import (
	"crypto/rand"
	"fmt"
	"log"
	"net/http"
)

// Severity levels used by the loggers and LogAudit
const (
	DEBUG = iota
	INFO
	NOTICE
	WARN
	ERROR
	ALERT
)

var severityNames = map[int]string{
	DEBUG:  "DEBUG",
	INFO:   "INFO",
	NOTICE: "NOTICE",
	WARN:   "WARN",
	ERROR:  "ERROR",
	ALERT:  "ALERT",
}

// LogContext is the context for a log message: what application emitted it,
// under which session, and where file logs should be rooted
type LogContext interface {
	AppName() string
	SessionID() string
	LogRootDir() string
}

// BasicLogContext is a minimal LogContext for callers that have no
// longer-lived context of their own
type BasicLogContext struct {
	sessionID string
}

// AppName returns an empty string
func (c *BasicLogContext) AppName() string {
	return ""
}

// SessionID returns a Session ID, creating one if needed
func (c *BasicLogContext) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = PsuUUID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *BasicLogContext) LogRootDir() string {
	return ""
}

func logMessage(ctx LogContext, severity int, message string) {
	label, ok := severityNames[severity]
	if !ok {
		label = severityNames[INFO]
	}
	log.Printf("[%s] app=%s session=%s %s", label, ctx.AppName(), ctx.SessionID(), message)
}

// LogInfo logs an informational message
func LogInfo(ctx LogContext, message string) {
	logMessage(ctx, INFO, message)
}

// LogAlert logs a message that needs attention but is not tied to an error value
func LogAlert(ctx LogContext, message string) {
	logMessage(ctx, ALERT, message)
}

// LogSimpleErr logs a message together with its underlying error and returns
// an error suitable for propagation to the caller
func LogSimpleErr(ctx LogContext, message string, err error) error {
	outErr := Error{LogMsg: message, SimpleMsg: message, CausedBy: err}
	logMessage(ctx, ERROR, fmt.Sprintf("%s: %v", message, err))
	return &outErr
}

// LogAuditInput holds the parts of an audit log message
type LogAuditInput struct {
	Actor    string
	Action   string
	Actee    string
	Message  string
	Severity int
}

// LogAudit logs an actor/action/actee audit message
func LogAudit(ctx LogContext, input LogAuditInput) {
	logMessage(ctx, input.Severity, fmt.Sprintf("audit actor=%s action=%s actee=%s %s",
		input.Actor, input.Action, input.Actee, input.Message))
}

// HTTPError writes an error message to a response with the given status code,
// logging it against the request
func HTTPError(r *http.Request, w http.ResponseWriter, ctx LogContext, message string, status int) {
	logMessage(ctx, WARN, fmt.Sprintf("HTTP %d on %s %s: %s", status, r.Method, r.URL.Path, message))
	http.Error(w, message, status)
}

// PsuUUID generates a pseudo-UUID for session identification; it is random
// but makes no RFC 4122 conformance claims
func PsuUUID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("%X-%X-%X-%X-%X", b[0:4], b[4:6], b[6:8], b[8:10], b[10:]), nil
}
