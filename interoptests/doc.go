// Package interoptests declares tests that check the interop package from the inside: that
// declarations reach the registry under the exact suite and test names given, and that every
// kind of body and expectation can pass. Importing the package registers the tests.
//
// DefaultFilter selects every test that is expected to run, and ExpectedPassCount is how many
// of them there are. A runner that uses both can tell whether every declaration was registered
// and run.
package interoptests

// DefaultFilter selects the tests in this package that should run.
const DefaultFilter = "Test.*:ExactSuite.ExactTest"

// ExpectedPassCount must be updated when a test matching DefaultFilter is added.
const ExpectedPassCount = 10
