package interop

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidName is wrapped by the errors returned from NewTestRegistration.
var ErrInvalidName = errors.New("invalid test name")

// reservedNameChars separate or match names in a full test name or a test filter.
const reservedNameChars = ".:-*?"

// TestRegistration is everything the registry needs to know about one test. It is created once
// per test while packages are initialized and is not modified afterward.
type TestRegistration struct {
	Func      func()
	SuiteName string
	TestName  string
	File      string
	Line      int
}

// NewTestRegistration validates the names and builds a TestRegistration. Suite and test names
// must be non-empty and must not contain NUL characters, the "." that separates them in a full
// test name, or any of the characters that have a meaning in a test filter (see
// framework.ParsePatternFilter).
func NewTestRegistration(fn func(), suite, name, file string, line int) (TestRegistration, error) {
	if fn == nil {
		return TestRegistration{}, fmt.Errorf("test %s.%s has no function", suite, name)
	}
	if err := validateName("suite", suite); err != nil {
		return TestRegistration{}, err
	}
	if err := validateName("test", name); err != nil {
		return TestRegistration{}, err
	}
	if strings.ContainsRune(file, 0) {
		return TestRegistration{}, fmt.Errorf("source file of %s.%s contains a NUL character", suite, name)
	}
	return TestRegistration{
		Func:      fn,
		SuiteName: suite,
		TestName:  name,
		File:      file,
		Line:      line,
	}, nil
}

func validateName(kind, name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty %s name", ErrInvalidName, kind)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: %s name %q contains a NUL character", ErrInvalidName, kind, name)
	case strings.ContainsAny(name, reservedNameChars):
		return fmt.Errorf("%w: %s name %q contains one of %q", ErrInvalidName, kind, name, reservedNameChars)
	}
	return nil
}

// RegisterTest hands a registration to the bound registry. It is called from package
// initialization and never fails: r must already be valid, and a line number that does not fit
// is passed as UnknownLine.
func RegisterTest(r TestRegistration) {
	Bound().AddTest(r.Func, r.SuiteName, r.TestName, r.File, ClampLine(r.Line))
}
