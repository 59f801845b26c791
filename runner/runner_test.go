package runner

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	helpers "github.com/launchdarkly/go-test-helpers/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/launchdarkly/test-interop/framework"
)

func makeRegistry() *framework.Registry {
	r := framework.NewRegistry()
	r.AddTest(func() {}, "Good", "One", "good.go", 1)
	r.AddTest(func() {}, "Good", "Two", "good.go", 2)
	r.AddTest(func() { r.AddFailureAt("bad.go", 8, "expected 1 == 2 but found: 1 != 2") }, "Bad", "One", "bad.go", 7)
	return r
}

func execute(t *testing.T, opts Options, args ...string) (string, error) {
	cmd := NewCommand(opts)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String() + errOut.String(), err
}

func TestListGroupsBySuite(t *testing.T) {
	out, err := execute(t, Options{Registry: makeRegistry()}, "list")
	require.NoError(t, err)
	assert.Equal(t, "Good.\n  One\n  Two\nBad.\n  One\n", out)
}

func TestListHonorsFilter(t *testing.T) {
	out, err := execute(t, Options{Registry: makeRegistry()}, "list", "--filter", "*-Good.Two")
	require.NoError(t, err)
	assert.Equal(t, "Good.\n  One\nBad.\n  One\n", out)
}

func TestRunPassingTests(t *testing.T) {
	out, err := execute(t, Options{Registry: makeRegistry(), DefaultFilter: "Good.*", ExpectedPassCount: 2}, "run")
	require.NoError(t, err)
	assert.Contains(t, out, "[       OK ] Good.One")
	assert.Contains(t, out, "[  PASSED  ] 2 tests.")
	assert.NotContains(t, out, "Bad.One")
}

func TestRootCommandRunsTests(t *testing.T) {
	out, err := execute(t, Options{Registry: makeRegistry()}, "--filter", "Good.One")
	require.NoError(t, err)
	assert.Contains(t, out, "[  PASSED  ] 1 tests.")
}

func TestRunFailingTestsPrintsRerunCommand(t *testing.T) {
	out, err := execute(t, Options{Registry: makeRegistry()}, "run")
	assert.True(t, errors.Is(err, errTestsFailed))
	assert.Contains(t, out, "  bad.go:8: expected 1 == 2 but found: 1 != 2")
	assert.Contains(t, out, "[  FAILED  ] Bad.One")
	assert.Contains(t, out, "run --filter Bad.One")
}

func TestRunChecksExpectedPassCount(t *testing.T) {
	out, err := execute(t, Options{Registry: makeRegistry()}, "run", "--filter", "Good.*", "--expect-passed", "3")
	assert.True(t, errors.Is(err, errTestsFailed))
	assert.Contains(t, out, "***ERROR***: Expected 3 tests to pass, but saw: 2")
}

func TestRunRegexFilters(t *testing.T) {
	out, err := execute(t, Options{Registry: makeRegistry()}, "run", "--run", "^Good", "--skip", "Two$")
	require.NoError(t, err)
	assert.Contains(t, out, "Good.One")
	assert.NotContains(t, out, "Good.Two")
}

func TestRunWritesJSONReport(t *testing.T) {
	helpers.WithTempFile(func(path string) {
		_, err := execute(t, Options{Registry: makeRegistry()}, "run", "--json-output", path)
		require.True(t, errors.Is(err, errTestsFailed))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var doc ldvalue.Value
		require.NoError(t, json.Unmarshal(data, &doc))
		assert.Equal(t, 3, doc.GetByKey("tests").IntValue())
		assert.Equal(t, 2, doc.GetByKey("passed").IntValue())
		assert.Equal(t, 1, doc.GetByKey("failed").IntValue())
	})
}

func TestRerunCommandQuotesArguments(t *testing.T) {
	results := framework.Results{Failures: []framework.TestResult{
		{TestID: framework.TestID{Suite: "A", Name: "B"}},
		{TestID: framework.TestID{Suite: "C", Name: "D"}},
	}}
	assert.Equal(t, "'/tmp/my tests' run --filter A.B:C.D", rerunCommand("/tmp/my tests", results))
}

func makeSelfTestRegistry() *framework.Registry {
	r := framework.NewRegistry()
	r.AddTest(func() {}, "Test", "A", "self.go", 1)
	r.AddTest(func() {}, "Test", "B", "self.go", 2)
	return r
}

func TestDefaultPassCountIsNotCheckedForNarrowedSelection(t *testing.T) {
	opts := Options{Registry: makeSelfTestRegistry(), DefaultFilter: "Test.*", ExpectedPassCount: 2}

	out, err := execute(t, opts, "run", "--filter", "Test.A")
	require.NoError(t, err)
	assert.Contains(t, out, "[  PASSED  ] 1 tests.")
	assert.NotContains(t, out, "***ERROR***")

	out, err = execute(t, opts, "run", "--skip", "B$")
	require.NoError(t, err)
	assert.NotContains(t, out, "***ERROR***")
}

func TestDefaultPassCountIsCheckedForDefaultSelection(t *testing.T) {
	opts := Options{Registry: makeSelfTestRegistry(), DefaultFilter: "Test.*", ExpectedPassCount: 3}

	out, err := execute(t, opts, "run")
	assert.True(t, errors.Is(err, errTestsFailed))
	assert.Contains(t, out, "***ERROR***: Expected 3 tests to pass, but saw: 2")
}
