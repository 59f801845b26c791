// Package expect provides non-fatal expectations for tests declared with the interop package.
//
// Each function checks one condition. If the condition holds it does nothing and returns true.
// Otherwise it reports a failure at the caller's file and line, with a message that includes the
// source text of the operands and their values, and returns false. A failed expectation never
// stops the test:
//
//	expect.Eq(got.Len(), 3)
//	expect.True(got.Valid())
//
// Each operand is evaluated exactly once, as a normal function argument.
package expect

import (
	"cmp"
	"fmt"
	"runtime"

	"github.com/launchdarkly/test-interop/internal/srctext"
	"github.com/launchdarkly/test-interop/interop"
)

// Eq expects left == right.
func Eq[T comparable](left, right T) bool {
	if left == right {
		return true
	}
	failBinary("Eq", "==", "!=", left, right)
	return false
}

// Ne expects left != right.
func Ne[T comparable](left, right T) bool {
	if left != right {
		return true
	}
	failBinary("Ne", "!=", "==", left, right)
	return false
}

// Lt expects left < right.
func Lt[T cmp.Ordered](left, right T) bool {
	if left < right {
		return true
	}
	failBinary("Lt", "<", ">=", left, right)
	return false
}

// Le expects left <= right.
func Le[T cmp.Ordered](left, right T) bool {
	if left <= right {
		return true
	}
	failBinary("Le", "<=", ">", left, right)
	return false
}

// Gt expects left > right.
func Gt[T cmp.Ordered](left, right T) bool {
	if left > right {
		return true
	}
	failBinary("Gt", ">", "<=", left, right)
	return false
}

// Ge expects left >= right.
func Ge[T cmp.Ordered](left, right T) bool {
	if left >= right {
		return true
	}
	failBinary("Ge", ">=", "<", left, right)
	return false
}

// True expects condition to be true.
func True(condition bool) bool {
	if condition {
		return true
	}
	failBool("True", true)
	return false
}

// False expects condition to be false.
func False(condition bool) bool {
	if !condition {
		return true
	}
	failBool("False", false)
	return false
}

// failBinary and failBool must be called directly from the exported function, so that the
// caller two frames up is the test code.

func failBinary(funcName, op, negated string, left, right interface{}) {
	file, line := callerLocation(3)
	ops := operandText(file, line, funcName, "left", "right")
	interop.AddFailureAt(file, line, fmt.Sprintf("expected %s %s %s but found: %s %s %s",
		ops[0], op, ops[1], formatValue(left), negated, formatValue(right)))
}

func failBool(funcName string, want bool) {
	file, line := callerLocation(3)
	ops := operandText(file, line, funcName, "condition")
	interop.AddFailureAt(file, line, fmt.Sprintf("expected %s to be %t but found: %t",
		ops[0], want, !want))
}

func callerLocation(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", -1
	}
	return file, line
}

// operandText returns the source text of the call's arguments, or the fallback names if the
// source cannot be read.
func operandText(file string, line int, funcName string, fallback ...string) []string {
	if args, ok := srctext.CallArgs(file, line, funcName); ok && len(args) >= len(fallback) {
		return args
	}
	return fallback
}

func formatValue(v interface{}) string {
	switch v.(type) {
	case string, []byte:
		return fmt.Sprintf("%q", v)
	}
	return fmt.Sprintf("%v", v)
}
