package expect

import (
	"fmt"

	gocmp "github.com/google/go-cmp/cmp"

	"github.com/launchdarkly/test-interop/interop"
)

// DeepEq expects left and right to be structurally equal as determined by go-cmp, with the
// given options. The failure message includes a diff.
func DeepEq[T any](left, right T, opts ...gocmp.Option) bool {
	if gocmp.Equal(left, right, opts...) {
		return true
	}
	file, line := callerLocation(2)
	ops := operandText(file, line, "DeepEq", "left", "right")
	interop.AddFailureAt(file, line, fmt.Sprintf("expected %s and %s to be deeply equal, diff (-left +right):\n%s",
		ops[0], ops[1], gocmp.Diff(left, right, opts...)))
	return false
}
