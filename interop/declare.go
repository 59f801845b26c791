package interop

import (
	"fmt"
	"runtime"
)

// Body is the type of a test function without a fixture. A body that returns nothing can only
// fail through the expect package; one that returns an error also fails if the error is non-nil.
type Body interface {
	func() | func() error
}

// FixtureBody is the type of a test function that receives a fixture of type F.
type FixtureBody[F any] interface {
	func(*F) | func(*F) error
}

// SetUpper is implemented by fixtures that need to do something before the test body runs.
type SetUpper interface {
	SetUp()
}

// TearDowner is implemented by fixtures that need to do something after the test body returns.
type TearDowner interface {
	TearDown()
}

// Test declares a test in the given suite and registers it. The declaration's file and line
// are taken from the caller. It panics if the names are invalid, so a bad declaration stops the
// program during initialization rather than when the test runs.
func Test[B Body](suite, name string, body B) {
	file, line := callerLocation(2)
	RegisterTest(mustRegistration(suite, name, file, line, adaptBody(body)))
}

// TestF declares a test that runs with a fresh fixture of type F. If *F implements SetUpper or
// TearDowner, those methods are called around the body; TearDown is called even if the body
// panics.
func TestF[F any, B FixtureBody[F]](suite, name string, body B) {
	file, line := callerLocation(2)
	RegisterTest(mustRegistration(suite, name, file, line, adaptFixtureBody[F](body)))
}

// Registration returns the registration that Test would create for the given declaration,
// without registering it. The file and line are taken from the caller.
func Registration[B Body](suite, name string, body B) (TestRegistration, error) {
	file, line := callerLocation(2)
	return newWrappedRegistration(suite, name, file, line, adaptBody(body))
}

func mustRegistration(suite, name, file string, line int, run func() error) TestRegistration {
	r, err := newWrappedRegistration(suite, name, file, line, run)
	if err != nil {
		panic(fmt.Sprintf("interop: cannot declare test at %s:%d: %s", file, line, err))
	}
	return r
}

// newWrappedRegistration builds the registration whose function runs the body and adapts its
// result. The registration refers to itself so that a returned error is reported at the
// declaration's location.
func newWrappedRegistration(suite, name, file string, line int, run func() error) (TestRegistration, error) {
	var r TestRegistration
	entry := func() {
		OutcomeOf(run()).Report(r)
	}
	r, err := NewTestRegistration(entry, suite, name, file, line)
	return r, err
}

func adaptBody[B Body](body B) func() error {
	switch b := any(body).(type) {
	case func():
		return func() error {
			b()
			return nil
		}
	case func() error:
		return b
	}
	panic("unreachable")
}

func adaptFixtureBody[F any, B FixtureBody[F]](body B) func() error {
	var run func(*F) error
	switch b := any(body).(type) {
	case func(*F):
		run = func(f *F) error {
			b(f)
			return nil
		}
	case func(*F) error:
		run = b
	}
	return func() error {
		f := new(F)
		if s, ok := any(f).(SetUpper); ok {
			s.SetUp()
		}
		if t, ok := any(f).(TearDowner); ok {
			defer t.TearDown()
		}
		return run(f)
	}
}

func callerLocation(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", -1
	}
	return file, line
}
