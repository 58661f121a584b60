// Package errs declares the error types raised by the ITMOScript runtime.
//
// The messages keep the form "operation: problem", so that a reader can tell
// which operator or builtin failed without a stack trace.
package errs

import (
	"fmt"
	"strconv"
	"strings"
)

// TypeError is raised when an operator is applied to operands of kinds it does
// not support.
type TypeError struct {
	// Name and symbol of the operator, like "add (+)".
	Op string
	// Type names of the operands, like "Double type".
	Operands []string
}

// Error implements the error interface.
func (e TypeError) Error() string {
	return fmt.Sprintf("%s: cannot perform operation on %s",
		e.Op, strings.Join(e.Operands, " and "))
}

// DivisionByZero is raised when dividing by zero.
type DivisionByZero struct {
	Op string
}

// Error implements the error interface.
func (e DivisionByZero) Error() string {
	return e.Op + ": division by zero"
}

// ArityMismatch is raised when a function is called with the wrong number of
// arguments.
type ArityMismatch struct {
	What string
	// A negative ValidHigh means there is no upper bound.
	ValidLow, ValidHigh int
	Actual              int
}

// Error implements the error interface.
func (e ArityMismatch) Error() string {
	switch {
	case e.ValidHigh == e.ValidLow:
		return fmt.Sprintf("%s: expected %d argument(s), got %d",
			e.What, e.ValidLow, e.Actual)
	case e.ValidHigh < 0:
		return fmt.Sprintf("%s: expected at least %d argument(s), got %d",
			e.What, e.ValidLow, e.Actual)
	default:
		return fmt.Sprintf("%s: expected %d to %d argument(s), got %d",
			e.What, e.ValidLow, e.ValidHigh, e.Actual)
	}
}

// ArgType is raised when a builtin receives an argument of the wrong kind.
type ArgType struct {
	What string
	// 1-based position of the argument.
	Index  int
	Valid  string
	Actual string
}

// Error implements the error interface.
func (e ArgType) Error() string {
	return fmt.Sprintf("%s: argument %d must be %s, got %s",
		e.What, e.Index, e.Valid, e.Actual)
}

// BadValue is raised when a value has the right kind but is otherwise
// unacceptable.
type BadValue struct {
	What   string
	Valid  string
	Actual string
}

// Error implements the error interface.
func (e BadValue) Error() string {
	return fmt.Sprintf("bad value: %v must be %v, but is %v",
		e.What, e.Valid, e.Actual)
}

// OutOfRange is raised when an index is outside of the valid range.
type OutOfRange struct {
	What      string
	ValidLow  string
	ValidHigh string
	Actual    string
}

// Error implements the error interface.
func (e OutOfRange) Error() string {
	if emptyRange(e.ValidLow, e.ValidHigh) {
		return fmt.Sprintf("out of range: %v has no valid value, but is %v",
			e.What, e.Actual)
	}
	return fmt.Sprintf("out of range: %s must be from %s to %s, but is %s",
		e.What, e.ValidLow, e.ValidHigh, e.Actual)
}

func emptyRange(low, high string) bool {
	l, errLow := strconv.Atoi(low)
	h, errHigh := strconv.Atoi(high)
	return errLow == nil && errHigh == nil && h < l
}

// BadIndex is raised when an index or slice bound is not an integral number.
type BadIndex struct {
	// Complete description, like "index must be an integer".
	Reason string
}

// Error implements the error interface.
func (e BadIndex) Error() string { return e.Reason }

// NotIndexable is raised when indexing or slicing a value that is neither a
// list nor a string.
type NotIndexable struct {
	// Operator, like "indexing operator []".
	Op string
	// Kinds that are acceptable, like "lists and strings".
	Valid string
}

// Error implements the error interface.
func (e NotIndexable) Error() string {
	return fmt.Sprintf("%s can only be applied to %s", e.Op, e.Valid)
}

// NoSuchVariable is raised when reading or updating a variable that is not
// defined in any enclosing scope.
type NoSuchVariable struct {
	Name string
}

// Error implements the error interface.
func (e NoSuchVariable) Error() string {
	return fmt.Sprintf("variable %q not found", e.Name)
}

// NotCallable is raised when calling a value that is not a function.
type NotCallable struct {
	// Display form of the callee.
	Callee string
}

// Error implements the error interface.
func (e NotCallable) Error() string {
	return fmt.Sprintf("%q is not a function", e.Callee)
}

// NotIterable is raised when a for loop is given a value that is neither a
// list nor a string.
type NotIterable struct {
	// Display form of the value.
	Value string
}

// Error implements the error interface.
func (e NotIterable) Error() string {
	return "for loop can only iterate over lists and strings, not " + e.Value
}

// RecursionLimit is raised when the depth of nested calls reaches the limit.
type RecursionLimit struct {
	Limit int
}

// Error implements the error interface.
func (e RecursionLimit) Error() string {
	return fmt.Sprintf("stack overflow: maximum recursion depth of %d exceeded", e.Limit)
}
