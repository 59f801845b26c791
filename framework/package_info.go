// Package framework contains a small native test registry and runner.
//
// The general model is:
//
// 1. Tests are added to a Registry's discovery list before the runner starts, normally from
// package init functions. Each entry has a suite name, a test name, the source location of its
// declaration, and a function to run.
//
// 2. The runner executes every registered test that passes the filter, in registration order,
// one at a time. While a test is running it is the registry's current test, and failures
// reported through Registry.AddFailureAt are recorded against it. A failure never stops the
// test; a test is failed if any failures were recorded by the time it returns.
//
// 3. Results are reported as the tests run through a TestLogger, and at the end as a Results
// value that can be printed or written as a JSON report.
//
// Code that wants its own functions to run under this registry does not need to import it
// directly; see the interop package.
package framework
