// Package evaltest provides a framework for testing ITMOScript code.
//
// The entry point for the framework is the Test function, which accepts a
// *testing.T and any number of test cases.
//
// Test cases are constructed using the That function, followed by method calls
// that add additional information to it.
//
// Example:
//
//	Test(t,
//		That("x = 1 + 2", "x").Puts(3),
//		That("print(\"a\")").Prints("a"),
//		That("1 / 0").Throws(errs.DivisionByZero{Op: vals.OpDiv}))
package evaltest

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/keyplexex/itmoscript/pkg/eval"
	"github.com/keyplexex/itmoscript/pkg/eval/vals"
	"github.com/keyplexex/itmoscript/pkg/parse"
)

// Case is a test case that can be used in Test.
type Case struct {
	codes []string
	stdin string
	setup func(cfg *eval.EvalCfg)
	want  result
}

type result struct {
	ValueOut   []any
	BytesOut   string
	Exited     bool
	ParseError string
	Exception  error
}

// That returns a new Case with the specified source code. Multiple arguments
// are joined with newlines. To specify multiple pieces of code that are
// executed separately in the same Interpreter, use the Then method.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "1 + 2" evaluates to 3 reads:
//
//	That("1 + 2").Puts(3)
func That(lines ...string) Case {
	return Case{codes: []string{strings.Join(lines, "\n")}}
}

// Then returns a new Case that executes the given code in addition, keeping
// the bindings of the previous pieces. Multiple arguments are joined with
// newlines.
func (c Case) Then(lines ...string) Case {
	c.codes = append(c.codes, strings.Join(lines, "\n"))
	return c
}

// WithStdin returns a new Case whose code reads from the given input.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// WithSetup returns a new Case with the given function applied to the EvalCfg
// before the Interpreter is created.
func (c Case) WithSetup(f func(*eval.EvalCfg)) Case {
	c.setup = f
	return c
}

// DoesNothing returns c unchanged. It is useful to mark tests that don't have
// any side effects, for example:
//
//	That("x = 1").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// Puts returns an altered Case that requires the top-level expression
// statements of the code to evaluate to the given values. Nil values and
// assignments are not counted.
//
// Values may be vals.Value, or Go values that are converted: numbers of type
// int or float64, string and bool. A ValueMatcher may also be used.
func (c Case) Puts(vs ...any) Case {
	c.want.ValueOut = vs
	return c
}

// Prints returns an altered Case that requires the code to write exactly the
// given text to its output.
func (c Case) Prints(s string) Case {
	c.want.BytesOut = s
	return c
}

// Exits returns an altered Case that requires the code to call exit().
func (c Case) Exits() Case {
	c.want.Exited = true
	return c
}

// DoesNotParse returns an altered Case that requires the code to fail parsing
// with the given message.
func (c Case) DoesNotParse(msg string) Case {
	c.want.ParseError = msg
	return c
}

// Throws returns an altered Case that requires the code to throw an exception
// with the given reason. The reason supports special matcher values
// constructed by functions like ErrorWithMessage.
//
// If at least one frame is given, the stack trace of the exception must be
// equal to the given frames, innermost first. Otherwise the stack trace is not
// checked.
func (c Case) Throws(reason error, frames ...string) Case {
	c.want.Exception = exc{reason, frames}
	return c
}

// Test runs test cases. For each test case, a new Interpreter is created.
func Test(t *testing.T, tests ...Case) {
	t.Helper()
	for _, tc := range tests {
		t.Run(strings.Join(tc.codes, "\n"), func(t *testing.T) {
			t.Helper()
			r := evalAndCollect(tc)

			if !matchOut(tc.want.ValueOut, r.ValueOut) {
				t.Errorf("got value out (-want +got):\n%s",
					cmp.Diff(tc.want.ValueOut, r.ValueOut, cmpOpts...))
			}
			if tc.want.BytesOut != r.BytesOut {
				t.Errorf("got bytes out %q, want %q", r.BytesOut, tc.want.BytesOut)
			}
			if tc.want.Exited != r.Exited {
				t.Errorf("got exited %v, want %v", r.Exited, tc.want.Exited)
			}
			if tc.want.ParseError != r.ParseError {
				t.Errorf("got parse error %q, want %q", r.ParseError, tc.want.ParseError)
			}
			if !matchErr(tc.want.Exception, r.Exception) {
				t.Errorf("unexpected exception")
				if exc, ok := r.Exception.(*eval.Exception); ok {
					// For an *eval.Exception report the type of the underlying error.
					t.Logf("got: %T: %v", exc.Reason, exc)
					t.Logf("stack trace: %#v", exc.StackTrace)
				} else {
					t.Logf("got: %T: %v", r.Exception, r.Exception)
				}
				t.Errorf("want: %v", tc.want.Exception)
			}
		})
	}
}

var cmpOpts = []cmp.Option{
	cmp.Transformer("Repr", vals.Repr),
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

func evalAndCollect(tc Case) result {
	var r result
	var out strings.Builder
	cfg := eval.EvalCfg{
		Stdin:    strings.NewReader(tc.stdin),
		Stdout:   &out,
		PutValue: func(v vals.Value) { r.ValueOut = append(r.ValueOut, v) },
	}
	if tc.setup != nil {
		tc.setup(&cfg)
	}
	ip := eval.NewInterpreter(nil, cfg)

	for i, code := range tc.codes {
		src := parse.Source{Name: fmt.Sprintf("[test %d]", i+1), Code: code}
		prog, err := parse.Parse(src)
		if err != nil {
			// NOTE: Only the last parse error is kept.
			r.ParseError = parse.GetError(err).Message
			continue
		}
		err = ip.Eval(prog)
		if err == eval.ErrExit {
			r.Exited = true
			break
		} else if err != nil {
			// NOTE: If multiple code pieces throw exceptions, only the last one
			// is saved.
			r.Exception = err
		}
	}
	r.BytesOut = out.String()
	return r
}

func matchOut(want, got []any) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if !match(got[i], want[i]) {
			return false
		}
	}
	return true
}

func match(got, want any) bool {
	if m, ok := want.(ValueMatcher); ok {
		return m.matchValue(got)
	}
	gotValue, ok := got.(vals.Value)
	if !ok {
		return reflect.DeepEqual(got, want)
	}
	wantValue, ok := toValue(want)
	return ok && vals.Equal(gotValue, wantValue)
}

func toValue(v any) (vals.Value, bool) {
	switch v := v.(type) {
	case vals.Value:
		return v, true
	case nil:
		return vals.Nil, true
	case int:
		return vals.Num(float64(v)), true
	case float64:
		return vals.Num(v), true
	case string:
		return vals.Str(v), true
	case bool:
		return vals.Bool(v), true
	}
	return vals.Nil, false
}

func matchErr(want, got error) bool {
	if want == nil {
		return got == nil
	}
	if matcher, ok := want.(errorMatcher); ok {
		return matcher.matchError(got)
	}
	return reflect.DeepEqual(want, got) || errors.Is(got, want)
}
