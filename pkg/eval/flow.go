package eval

import (
	"errors"

	"github.com/keyplexex/itmoscript/pkg/eval/vals"
)

// Flow is a special type of error used for the loop control statements. It
// never escapes a loop body, since break and continue outside of loops are
// rejected by the parser.
type Flow uint

// Control flows.
const (
	Break Flow = iota
	Continue
)

var flowNames = [...]string{"break", "continue"}

func (f Flow) Error() string {
	if int(f) < len(flowNames) {
		return flowNames[f]
	}
	return "unknown flow"
}

// Return is the signal raised by a return statement. It unwinds to the
// innermost function call, or ends the program when raised at the top level.
type Return struct {
	Value vals.Value
}

func (Return) Error() string { return "return" }

// ErrExit is returned by Run and Eval when the program calls exit().
var ErrExit = errors.New("exit")

func isSignal(err error) bool {
	switch err.(type) {
	case Flow, Return:
		return true
	}
	return err == ErrExit
}
