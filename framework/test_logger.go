package framework

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(id TestID, failed bool, debugOutput CapturedOutput)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)                        {}
func (n nullTestLogger) TestError(TestID, error)                   {}
func (n nullTestLogger) TestFinished(TestID, bool, CapturedOutput) {}
func (n nullTestLogger) TestSkipped(TestID, string)                {}

// ConsoleTestLogger writes progress in a format similar to other xUnit-style runners.
type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

func (c ConsoleTestLogger) out() io.Writer {
	if c.Output == nil {
		return os.Stdout
	}
	return c.Output
}

func (c ConsoleTestLogger) TestStarted(id TestID) {
	fmt.Fprintf(c.out(), "%s %s\n", color.GreenString("[ RUN      ]"), id)
}

func (c ConsoleTestLogger) TestError(id TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(c.out(), "  %s\n", line)
	}
}

func (c ConsoleTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	if failed {
		fmt.Fprintf(c.out(), "%s %s\n", color.RedString("[  FAILED  ]"), id)
	} else {
		fmt.Fprintf(c.out(), "%s %s\n", color.GreenString("[       OK ]"), id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.out(), "    DEBUG ")
	}
}

func (c ConsoleTestLogger) TestSkipped(id TestID, reason string) {
	if reason == "" {
		fmt.Fprintf(c.out(), "%s %s\n", color.YellowString("[  SKIPPED ]"), id)
	} else {
		fmt.Fprintf(c.out(), "%s %s (%s)\n", color.YellowString("[  SKIPPED ]"), id, reason)
	}
}

// PrintResults writes a summary of the test run.
func PrintResults(out io.Writer, results Results) {
	skipped := 0
	for _, t := range results.Tests {
		if t.Skipped {
			skipped++
		}
	}
	fmt.Fprintf(out, "%s %d tests ran.\n", color.GreenString("[==========]"), len(results.Tests)-skipped)
	fmt.Fprintf(out, "%s %d tests.\n", color.GreenString("[  PASSED  ]"), results.PassedCount())
	if skipped > 0 {
		fmt.Fprintf(out, "%s %d tests.\n", color.YellowString("[  SKIPPED ]"), skipped)
	}
	if results.OK() {
		return
	}
	fmt.Fprintf(out, "%s %d tests, listed below:\n", color.RedString("[  FAILED  ]"), len(results.Failures))
	for _, f := range results.Failures {
		fmt.Fprintf(out, "%s %s\n", color.RedString("[  FAILED  ]"), f.TestID)
	}
}
