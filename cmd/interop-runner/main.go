// Command interop-runner runs the interop package's self-tests.
package main

import (
	"github.com/launchdarkly/test-interop/interoptests"
	"github.com/launchdarkly/test-interop/runner"
)

func main() {
	runner.Main(runner.Options{
		Use:               "interop-runner",
		DefaultFilter:     interoptests.DefaultFilter,
		ExpectedPassCount: interoptests.ExpectedPassCount,
	})
}
