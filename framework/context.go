package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Context is the state of one running test. It is similar to Go's *testing.T, but only
// supports the operations the registry needs: recording failures, skipping, and capturing
// debug output.
type Context struct {
	id          TestID
	testLogger  TestLogger
	debugLogger CapturingLogger
	failures    []Failure
	skipped     bool
	skipReason  string
}

func (c *Context) run(action func()) {
	defer func() {
		if r := recover(); r != nil {
			if c.skipped {
				return
			}
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.failures) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.addFailure(Failure{Line: UnknownLine, Message: addError.Error()})
			}
		}
	}()

	action()
}

func (c *Context) ID() TestID {
	return c.id
}

// Failed returns true if any failures have been recorded for this test.
func (c *Context) Failed() bool {
	return len(c.failures) != 0
}

// Failures returns a copy of the failures recorded so far.
func (c *Context) Failures() []Failure {
	return append([]Failure(nil), c.failures...)
}

// AddFailureAt records a failure attributed to the given source location. The test keeps running.
func (c *Context) AddFailureAt(file string, line int32, message string) {
	c.addFailure(Failure{File: file, Line: line, Message: message})
}

// Errorf records a failure with no source location. The test keeps running.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.addFailure(Failure{Line: UnknownLine, Message: fmt.Sprintf(format, args...)})
}

func (c *Context) addFailure(f Failure) {
	c.failures = append(c.failures, f)
	c.testLogger.TestError(c.id, f)
}

// FailNow stops the test immediately. It is only meant for code that runs directly on a
// Context; tests registered through the interop package never stop early.
func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
