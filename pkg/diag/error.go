package diag

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Error represents an error with context that can be showed.
type Error struct {
	Type    string
	Message string
	Context Context
	// Partial is true when the error was caused by the source ending too
	// early. Appending more source may make it go away.
	Partial bool
}

// Variables controlling the style of the message.
var (
	messageStart = "\033[31;1m"
	messageEnd   = "\033[m"
)

// Error returns a plain text representation of the error.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Type, e.Context.Describe(), e.Message)
}

// Line returns the 1-based line number where the error occurred.
func (e *Error) Line() int { return e.Context.Position().Line }

// Range returns the range of the error.
func (e *Error) Range() Ranging {
	return e.Context.Range()
}

// Show shows the error.
func (e *Error) Show(indent string) string {
	return fmt.Sprintf("%s: %s%s%s\n%s  %s", capitalize(e.Type),
		messageStart, e.Message, messageEnd,
		indent, e.Context.ShowCompact(indent+"  "))
}

func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[n:]
}
