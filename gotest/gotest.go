// Package gotest runs tests declared with the interop package as subtests of Go's own testing
// package, so they can be run by "go test".
//
// A test package binds a Registry before its tests are declared, and runs them from a normal Go
// test function:
//
//	var registry = gotest.New()
//
//	func init() { interop.Bind(registry) }
//
//	func TestInterop(t *testing.T) { registry.Run(t) }
//
// Since Go runs package-level variable initializers before init functions, and init functions
// in file name order, declarations in files that sort after the one containing the Bind call are
// registered with the Registry.
package gotest

import (
	"runtime/debug"
	"sync"
	"testing"

	"github.com/launchdarkly/test-interop/framework"
)

type registeredTest struct {
	id   framework.TestID
	file string
	line int32
	fn   func()
}

// Registry collects declared tests and reports their failures to the *testing.T of the subtest
// that is running them. Subtests are never run in parallel.
type Registry struct {
	tests   []registeredTest
	current *testing.T
	logger  framework.Logger
	lock    sync.Mutex
}

func New() *Registry {
	return &Registry{logger: framework.NullLogger()}
}

// SetDebugLogger sets the logger used for failures that were reported while no test was running.
func (r *Registry) SetDebugLogger(logger framework.Logger) {
	if logger == nil {
		logger = framework.NullLogger()
	}
	r.lock.Lock()
	r.logger = logger
	r.lock.Unlock()
}

func (r *Registry) AddTest(fn func(), suite, name, file string, line int32) {
	r.lock.Lock()
	r.tests = append(r.tests, registeredTest{
		id:   framework.TestID{Suite: suite, Name: name},
		file: file,
		line: line,
		fn:   fn,
	})
	r.lock.Unlock()
}

func (r *Registry) AddFailureAt(file string, line int32, message string) {
	failure := framework.Failure{File: file, Line: line, Message: message}
	r.lock.Lock()
	t, logger := r.current, r.logger
	r.lock.Unlock()
	if t == nil {
		logger.Printf("Failure reported while no test was running: %s", failure)
		return
	}
	t.Error(failure.Error())
}

// Len returns the number of registered tests.
func (r *Registry) Len() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.tests)
}

// Run runs every registered test as a subtest of t named "Suite/Name".
func (r *Registry) Run(t *testing.T) {
	r.lock.Lock()
	tests := append([]registeredTest(nil), r.tests...)
	r.lock.Unlock()

	for _, test := range tests {
		test := test
		t.Run(test.id.Suite+"/"+test.id.Name, func(t *testing.T) {
			r.setCurrent(t)
			defer r.setCurrent(nil)
			defer func() {
				if p := recover(); p != nil {
					t.Errorf("%s:%d: unexpected panic in test: %+v\n%s",
						test.file, test.line, p, string(debug.Stack()))
				}
			}()
			test.fn()
		})
	}
}

func (r *Registry) setCurrent(t *testing.T) {
	r.lock.Lock()
	r.current = t
	r.lock.Unlock()
}
