package sherlock

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// Client errors.
var (
	// ErrNotConnected is returned when an operation is attempted while the
	// Sherlock gRPC service is unreachable.
	ErrNotConnected = errors.New("not connected to a Sherlock gRPC service")
)

// ArgumentError reports a caller-supplied argument rejected by client-side
// validation. No remote call is made when an ArgumentError is returned.
type ArgumentError struct {
	// Op names the failed operation (e.g. "add random vibe event").
	Op string

	// Message describes the invalid argument.
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Op + " error: " + e.Message
}

// APIError reports a failure returned by the Sherlock server: a -1 return
// code with either a message or an error array.
type APIError struct {
	// Op names the failed operation.
	Op string

	// Message is the server-reported failure message, if any.
	Message string

	// Errors holds the server-reported error array when no single message
	// was provided.
	Errors []string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Op + " error: " + e.Message
	}
	return e.Op + " error: " + strings.Join(e.Errors, "; ")
}

// Messages returns one formatted message per server-reported error.
func (e *APIError) Messages() []string {
	if e.Message != "" {
		return []string{e.Op + " error: " + e.Message}
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		msgs = append(msgs, e.Op+" error: "+err)
	}
	return msgs
}

// VersionError reports an operation attempted against a server release
// that does not support it.
type VersionError struct {
	Op     string
	Server int
	Min    int
}

func (e *VersionError) Error() string {
	if e.Server == 0 {
		return fmt.Sprintf("%s: unable to determine the Sherlock server version", e.Op)
	}
	return fmt.Sprintf("%s: Sherlock %d is too old, requires at least %d", e.Op, e.Server, e.Min)
}

// ErrorDetails extracts structured detail strings attached to a remote
// call failure. Returns nil when the error carries no gRPC status details.
func ErrorDetails(err error) []string {
	st, ok := status.FromError(err)
	if !ok || st == nil {
		return nil
	}
	var details []string
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			details = append(details, info.GetReason())
		}
	}
	return details
}
