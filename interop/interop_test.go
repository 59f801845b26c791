package interop

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedTest struct {
	fn    func()
	suite string
	name  string
	file  string
	line  int32
}

type recordedFailure struct {
	File    string
	Line    int32
	Message string
}

type fakeRegistry struct {
	tests    []recordedTest
	failures []recordedFailure
}

func (f *fakeRegistry) AddTest(fn func(), suite, name, file string, line int32) {
	f.tests = append(f.tests, recordedTest{fn: fn, suite: suite, name: name, file: file, line: line})
}

func (f *fakeRegistry) AddFailureAt(file string, line int32, message string) {
	f.failures = append(f.failures, recordedFailure{File: file, Line: line, Message: message})
}

func withFakeRegistry(t *testing.T) *fakeRegistry {
	r := &fakeRegistry{}
	old := Bound()
	Bind(r)
	t.Cleanup(func() { Bind(old) })
	return r
}

func withSourceRoots(t *testing.T, roots ...string) {
	SetSourceRoots(roots...)
	t.Cleanup(func() { SetSourceRoots() })
}

func TestClampLine(t *testing.T) {
	tooBig := math.MaxInt32
	tooBig++
	assert.Equal(t, int32(1), ClampLine(1))
	assert.Equal(t, int32(math.MaxInt32), ClampLine(math.MaxInt32))
	assert.Equal(t, UnknownLine, ClampLine(tooBig))
	assert.Equal(t, UnknownLine, ClampLine(-3))
}

func TestRegisterTestAddsOneEntry(t *testing.T) {
	r := withFakeRegistry(t)
	called := false
	reg, err := NewTestRegistration(func() { called = true }, "Suite", "Name", "suite_test.go", 42)
	require.NoError(t, err)

	RegisterTest(reg)

	require.Len(t, r.tests, 1)
	assert.Equal(t, "Suite", r.tests[0].suite)
	assert.Equal(t, "Name", r.tests[0].name)
	assert.Equal(t, "suite_test.go", r.tests[0].file)
	assert.Equal(t, int32(42), r.tests[0].line)
	r.tests[0].fn()
	assert.True(t, called)
	assert.Empty(t, r.failures)
}

func TestRegisterTestClampsLine(t *testing.T) {
	r := withFakeRegistry(t)
	tooBig := math.MaxInt32
	tooBig++

	RegisterTest(TestRegistration{Func: func() {}, SuiteName: "S", TestName: "N", File: "f.go", Line: tooBig})

	require.Len(t, r.tests, 1)
	assert.Equal(t, UnknownLine, r.tests[0].line)
}

func TestNewTestRegistrationRejectsBadNames(t *testing.T) {
	for _, p := range []struct {
		suite, name string
	}{
		{"", "Name"},
		{"Suite", ""},
		{"Su\x00ite", "Name"},
		{"Suite", "Na\x00me"},
		{"Suite.Inner", "Name"},
		{"Suite", "Name.Inner"},
		{"Suite", "Foo-Bar"},
		{"Suite:Other", "Name"},
		{"Suite", "Any*"},
		{"Suite", "Na?e"},
	} {
		_, err := NewTestRegistration(func() {}, p.suite, p.name, "f.go", 1)
		assert.True(t, errors.Is(err, ErrInvalidName), "suite %q name %q: %v", p.suite, p.name, err)
	}

	_, err := NewTestRegistration(nil, "Suite", "Name", "f.go", 1)
	assert.Error(t, err)

	_, err = NewTestRegistration(func() {}, "Suite", "Name", "f\x00.go", 1)
	assert.Error(t, err)
}

func TestAddFailureAtNormalizesPathAndClampsLine(t *testing.T) {
	r := withFakeRegistry(t)
	withSourceRoots(t)
	tooBig := math.MaxInt32
	tooBig++

	AddFailureAt("../../base/strings_test.go", 12, "expected a == b but found: 1 != 2")
	AddFailureAt("./local_test.go", tooBig, "overflow")

	expected := []recordedFailure{
		{File: "base/strings_test.go", Line: 12, Message: "expected a == b but found: 1 != 2"},
		{File: "local_test.go", Line: UnknownLine, Message: "overflow"},
	}
	if diff := cmp.Diff(expected, r.failures); diff != "" {
		t.Errorf("unexpected failures (-want +got):\n%s", diff)
	}
}

func TestNormalizePathStripsLongestSourceRoot(t *testing.T) {
	withSourceRoots(t, "/src", "/src/project/")

	assert.Equal(t, "pkg/a.go", NormalizePath("/src/project/pkg/a.go"))
	assert.Equal(t, "other/b.go", NormalizePath("/src/other/b.go"))
	assert.Equal(t, "/elsewhere/c.go", NormalizePath("/elsewhere/c.go"))
	assert.Equal(t, "pkg/d.go", NormalizePath("/src/project/../../pkg/d.go"))
}

func TestAddSourceRoots(t *testing.T) {
	withSourceRoots(t, "/a")
	AddSourceRoots("/b/")

	assert.Equal(t, "x.go", NormalizePath("/a/x.go"))
	assert.Equal(t, "y.go", NormalizePath("/b/y.go"))
}
