package eval

import (
	"strings"

	"github.com/keyplexex/itmoscript/pkg/diag"
)

// Exception is a fatal runtime error. It records where the error happened and
// the call trace at that point. There is no way to catch an Exception from
// ITMOScript code; it always unwinds to the driver.
type Exception struct {
	Reason error
	// Frames of the call trace, most recent first.
	StackTrace []string
	// The innermost node being evaluated when the error happened. May be nil.
	Context *diag.Context
}

// Reason returns the Reason field if err is an *Exception. Otherwise it returns
// err itself.
func Reason(err error) error {
	if exc, ok := err.(*Exception); ok {
		return exc.Reason
	}
	return err
}

// Error returns the message of the reason.
func (exc *Exception) Error() string { return exc.Reason.Error() }

// Unwrap returns the reason, so that errors.As can find the underlying error
// type.
func (exc *Exception) Unwrap() error { return exc.Reason }

// Show shows the exception.
func (exc *Exception) Show(indent string) string {
	var sb strings.Builder
	sb.WriteString("Exception: \033[31;1m" + exc.Reason.Error() + "\033[m")
	if exc.Context != nil {
		sb.WriteString("\n" + indent + "  " + exc.Context.ShowCompact(indent+"  "))
	}
	if len(exc.StackTrace) > 0 {
		sb.WriteString("\n" + indent + "Traceback:")
		for _, frame := range exc.StackTrace {
			sb.WriteString("\n" + indent + "  " + frame)
		}
	}
	return sb.String()
}
