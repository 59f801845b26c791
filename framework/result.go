package framework

import (
	"fmt"
)

// UnknownLine is the line number recorded when the real line is not known or not representable.
const UnknownLine int32 = -1

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID     TestID
	File       string
	Line       int32
	Failures   []Failure
	Skipped    bool
	SkipReason string
	// DebugOutput is whatever the test logged through its Context.
	DebugOutput CapturedOutput
}

// Failure is one failure recorded against a test.
type Failure struct {
	File    string
	Line    int32
	Message string
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// PassedCount returns the number of tests that ran and did not fail.
func (r Results) PassedCount() int {
	n := 0
	for _, t := range r.Tests {
		if !t.Skipped && len(t.Failures) == 0 {
			n++
		}
	}
	return n
}

func (r TestResult) Failed() bool {
	return len(r.Failures) != 0
}

type TestID struct {
	Suite string
	Name  string
}

func (t TestID) String() string {
	return t.Suite + "." + t.Name
}

func (f Failure) Location() string {
	if f.Line == UnknownLine {
		return f.File
	}
	return fmt.Sprintf("%s:%d", f.File, f.Line)
}

func (f Failure) Error() string {
	if f.File == "" {
		return f.Message
	}
	return fmt.Sprintf("%s: %s", f.Location(), f.Message)
}
