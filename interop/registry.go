package interop

import (
	"math"
	"sync"

	"github.com/launchdarkly/test-interop/framework"
)

// UnknownLine is passed to the registry in place of a line number that does not fit in an int32.
const UnknownLine int32 = -1

// Registry is the pair of entry points that a test registry exposes to this package.
//
// AddTest is only called while packages are being initialized, once per declared test.
// AddFailureAt is only called from the goroutine running a test body, while that test is
// running, and must not stop the test.
type Registry interface {
	AddTest(fn func(), suite, name, file string, line int32)
	AddFailureAt(file string, line int32, message string)
}

var (
	bound     Registry = framework.Default
	boundLock sync.RWMutex
)

// Bind replaces the registry that tests are registered with and failures are reported to. It
// must be called before any tests are declared that should go to the new registry, which
// normally means from an init function of a package that the test packages import.
func Bind(r Registry) {
	boundLock.Lock()
	bound = r
	boundLock.Unlock()
}

// Bound returns the registry currently in use.
func Bound() Registry {
	boundLock.RLock()
	defer boundLock.RUnlock()
	return bound
}

// ClampLine converts a line number to the registry's width. Values that are negative or do not
// fit become UnknownLine.
func ClampLine(line int) int32 {
	if line < 0 || line > math.MaxInt32 {
		return UnknownLine
	}
	return int32(line)
}
