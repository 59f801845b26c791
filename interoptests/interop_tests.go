package interoptests

import (
	"errors"
	"fmt"
	"strings"

	"github.com/launchdarkly/test-interop/expect"
	"github.com/launchdarkly/test-interop/interop"
)

type counterFixture struct {
	count int
}

func (f *counterFixture) SetUp() {
	f.count = 10
}

func init() {
	interop.Test("Test", "InTopLevel", func() {
		expect.True(true)
	})

	interop.Test("ExactSuite", "ExactTest", func() {
		expect.Eq("ExactSuite", "ExactSuite")
	})

	// Excluded by DefaultFilter; if it runs anyway, the pass count is wrong.
	interop.Test("ExactSuite", "NotSelected", func() {})

	interop.Test("Test", "AllComparisons", func() {
		expect.Eq(1, 1)
		expect.Ne(1, 2)
		expect.Lt(1, 2)
		expect.Le(2, 2)
		expect.Gt(3, 2)
		expect.Ge(3, 3)
		expect.False(false)
	})

	interop.Test("Test", "StringComparisons", func() {
		expect.Lt("abc", "abd")
		expect.Eq(strings.ToUpper("go"), "GO")
	})

	interop.Test("Test", "FloatComparisons", func() {
		expect.Gt(2.5, 2.25)
		expect.Le(-1.0, 0.0)
	})

	interop.Test("Test", "ReturnsNilError", func() error {
		expect.True(true)
		return nil
	})

	interop.Test("Test", "ReturnsNilAfterErrorCheck", func() error {
		err := errors.New("not returned")
		expect.Ne(err, nil)
		return nil
	})

	interop.Test("Test", "DeepEquality", func() {
		expect.DeepEq(map[string][]int{"a": {1, 2}}, map[string][]int{"a": {1, 2}})
	})

	interop.TestF[counterFixture]("Test", "WithFixture", func(f *counterFixture) {
		expect.Eq(f.count, 10)
	})

	interop.TestF[counterFixture]("Test", "WithFixtureReturningError", func(f *counterFixture) error {
		f.count++
		if !expect.Eq(f.count, 11) {
			return fmt.Errorf("fixture was not set up, count is %d", f.count)
		}
		return nil
	})
}
