package errs

import (
	"testing"
)

var errorMessageTests = []struct {
	err     error
	wantMsg string
}{
	{
		TypeError{Op: "add (+)", Operands: []string{"Double type", "String type"}},
		"add (+): cannot perform operation on Double type and String type",
	},
	{
		TypeError{Op: "negate (-)", Operands: []string{"List type"}},
		"negate (-): cannot perform operation on List type",
	},
	{
		DivisionByZero{Op: "divide (/)"},
		"divide (/): division by zero",
	},
	{
		ArityMismatch{What: "abs", ValidLow: 1, ValidHigh: 1, Actual: 3},
		"abs: expected 1 argument(s), got 3",
	},
	{
		ArityMismatch{What: "range", ValidLow: 1, ValidHigh: 3, Actual: 0},
		"range: expected 1 to 3 argument(s), got 0",
	},
	{
		ArityMismatch{What: "f", ValidLow: 2, ValidHigh: -1, Actual: 1},
		"f: expected at least 2 argument(s), got 1",
	},
	{
		ArgType{What: "split", Index: 2, Valid: "string", Actual: "Nil type"},
		"split: argument 2 must be string, got Nil type",
	},
	{
		BadValue{What: "argument of sqrt", Valid: "non-negative", Actual: "-1"},
		"bad value: argument of sqrt must be non-negative, but is -1",
	},
	{
		OutOfRange{What: "list index", ValidLow: "0", ValidHigh: "2", Actual: "3"},
		"out of range: list index must be from 0 to 2, but is 3",
	},
	{
		OutOfRange{What: "list index", ValidLow: "0", ValidHigh: "-1", Actual: "0"},
		"out of range: list index has no valid value, but is 0",
	},
	{
		BadIndex{Reason: "index must be an integer"},
		"index must be an integer",
	},
	{
		NotIndexable{Op: "indexing operator []", Valid: "lists and strings"},
		"indexing operator [] can only be applied to lists and strings",
	},
	{
		NoSuchVariable{Name: "x"},
		`variable "x" not found`,
	},
	{
		NotCallable{Callee: "5"},
		`"5" is not a function`,
	},
	{
		NotIterable{Value: "nil"},
		"for loop can only iterate over lists and strings, not nil",
	},
	{
		RecursionLimit{Limit: 1000},
		"stack overflow: maximum recursion depth of 1000 exceeded",
	},
}

func TestErrorMessages(t *testing.T) {
	for _, test := range errorMessageTests {
		if gotMsg := test.err.Error(); gotMsg != test.wantMsg {
			t.Errorf("got message %v, want %v", gotMsg, test.wantMsg)
		}
	}
}
