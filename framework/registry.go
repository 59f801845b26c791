package framework

import (
	"sync"
)

// TestInfo is one entry in a Registry's discovery list.
type TestInfo struct {
	ID   TestID
	File string
	Line int32
	Func func()
}

// Registry holds the list of discovered tests and tracks which of them is currently running.
//
// Tests are normally added during package initialization, before the runner starts. The zero
// value is not usable; call NewRegistry.
type Registry struct {
	tests   []TestInfo
	current *Context
	logger  Logger
	lock    sync.Mutex
}

// Default is the registry used by the package-level functions and by the interop package unless
// it has been bound to something else.
var Default = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{logger: NullLogger()}
}

// SetDebugLogger sets the logger for registry-level diagnostics, such as failures that were
// reported while no test was running.
func (r *Registry) SetDebugLogger(logger Logger) {
	if logger == nil {
		logger = NullLogger()
	}
	r.lock.Lock()
	r.logger = logger
	r.lock.Unlock()
}

// AddTest appends a test to the discovery list. The line may be UnknownLine.
func (r *Registry) AddTest(fn func(), suite, name, file string, line int32) {
	r.lock.Lock()
	r.tests = append(r.tests, TestInfo{
		ID:   TestID{Suite: suite, Name: name},
		File: file,
		Line: line,
		Func: fn,
	})
	r.lock.Unlock()
}

// Tests returns a copy of the discovery list in registration order.
func (r *Registry) Tests() []TestInfo {
	r.lock.Lock()
	ret := append([]TestInfo(nil), r.tests...)
	r.lock.Unlock()
	return ret
}

// AddFailureAt records a non-fatal failure against the test that is currently running. If no
// test is running, the failure is logged to the debug logger and otherwise ignored.
func (r *Registry) AddFailureAt(file string, line int32, message string) {
	r.lock.Lock()
	c, logger := r.current, r.logger
	r.lock.Unlock()
	if c == nil {
		logger.Printf("Failure reported while no test was running: %s",
			Failure{File: file, Line: line, Message: message})
		return
	}
	c.AddFailureAt(file, line, message)
}

// Current returns the context of the test that is currently running, or nil.
func (r *Registry) Current() *Context {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.current
}

func (r *Registry) setCurrent(c *Context) {
	r.lock.Lock()
	r.current = c
	r.lock.Unlock()
}

// RunAllTests runs every registered test accepted by the filter, sequentially and in
// registration order. A nil filter accepts every test.
func (r *Registry) RunAllTests(filter Filter, testLogger TestLogger) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	r.lock.Lock()
	logger := r.logger
	r.lock.Unlock()

	var results Results
	for _, t := range r.Tests() {
		if filter != nil && !filter(t.ID) {
			logger.Printf("Excluded by filter: %s", t.ID)
			continue
		}
		testLogger.TestStarted(t.ID)
		c := &Context{id: t.ID, testLogger: testLogger}
		r.setCurrent(c)
		c.run(t.Func)
		r.setCurrent(nil)

		result := TestResult{
			TestID:     t.ID,
			File:       t.File,
			Line:       t.Line,
			Failures:   c.failures,
			Skipped:    c.skipped,
			SkipReason: c.skipReason,
		}
		result.DebugOutput = c.debugLogger.Output()
		results.Tests = append(results.Tests, result)
		if c.Failed() {
			results.Failures = append(results.Failures, result)
		}
		if c.skipped {
			testLogger.TestSkipped(t.ID, c.skipReason)
		} else {
			testLogger.TestFinished(t.ID, c.Failed(), result.DebugOutput)
		}
	}
	return results
}

// RegisterTest adds a test to the Default registry.
func RegisterTest(fn func(), suite, name, file string, line int32) {
	Default.AddTest(fn, suite, name, file, line)
}

// AddFailureAt records a failure against the test currently running in the Default registry.
func AddFailureAt(file string, line int32, message string) {
	Default.AddFailureAt(file, line, message)
}

// RunAllTests runs the tests in the Default registry.
func RunAllTests(filter Filter, testLogger TestLogger) Results {
	return Default.RunAllTests(filter, testLogger)
}
