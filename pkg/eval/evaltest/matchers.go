package evaltest

import (
	"fmt"
	"math"
	"reflect"

	"github.com/keyplexex/itmoscript/pkg/eval"
	"github.com/keyplexex/itmoscript/pkg/eval/vals"
)

type errorMatcher interface{ matchError(error) bool }

// An errorMatcher for exceptions.
type exc struct {
	reason error
	frames []string
}

func (e exc) Error() string {
	if len(e.frames) == 0 {
		return fmt.Sprintf("exception with reason %v", e.reason)
	}
	return fmt.Sprintf("exception with reason %v and stack trace %v", e.reason, e.frames)
}

func (e exc) matchError(e2 error) bool {
	if e2, ok := e2.(*eval.Exception); ok {
		return matchErr(e.reason, e2.Reason) &&
			(len(e.frames) == 0 || reflect.DeepEqual(e.frames, e2.StackTrace))
	}
	return false
}

// ErrorWithType returns an error that can be passed to Case.Throws to match
// any error with the same type as the argument.
func ErrorWithType(v error) error { return errWithType{v} }

// An errorMatcher for any error with the given type.
type errWithType struct{ v error }

func (e errWithType) Error() string { return fmt.Sprintf("error with type %T", e.v) }

func (e errWithType) matchError(e2 error) bool {
	return reflect.TypeOf(e.v) == reflect.TypeOf(e2)
}

// ErrorWithMessage returns an error that can be passed to Case.Throws to match
// any error with the given message.
func ErrorWithMessage(msg string) error { return errWithMessage{msg} }

// An errorMatcher for any error with the given message.
type errWithMessage struct{ msg string }

func (e errWithMessage) Error() string { return "error with message " + e.msg }

func (e errWithMessage) matchError(e2 error) bool {
	return e2 != nil && e.msg == e2.Error()
}

// ValueMatcher is a value that can be passed to Case.Puts and has its own
// matching semantics.
type ValueMatcher interface{ matchValue(any) bool }

// Anything matches anything. It is useful when the value is not deterministic.
var Anything ValueMatcher = anything{}

type anything struct{}

func (anything) matchValue(any) bool { return true }

// AnyOfKind matches any value of the given kind.
func AnyOfKind(k vals.Kind) ValueMatcher { return anyOfKind{k} }

type anyOfKind struct{ kind vals.Kind }

func (m anyOfKind) matchValue(v any) bool {
	value, ok := v.(vals.Value)
	return ok && value.Kind() == m.kind
}

// ApproximatelyThreshold defines the threshold for matching numbers when using
// Approximately.
const ApproximatelyThreshold = 1e-15

// Approximately matches a number within the threshold defined by
// ApproximatelyThreshold.
func Approximately(f float64) ValueMatcher { return approximately{f} }

type approximately struct{ value float64 }

func (a approximately) matchValue(v any) bool {
	value, ok := v.(vals.Value)
	if !ok || value.Kind() != vals.NumberKind {
		return false
	}
	f := value.Num()
	switch {
	case math.IsNaN(a.value):
		return math.IsNaN(f)
	case math.IsInf(a.value, 0):
		return f == a.value
	}
	return math.Abs(f-a.value) <= ApproximatelyThreshold
}
