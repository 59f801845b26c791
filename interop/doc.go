// Package interop lets ordinary Go functions run as tests of a separate test registry, and
// report their failures through it.
//
// A test is declared from a package-level variable initializer or an init function, so it is
// registered before the runner's main function starts:
//
//	func init() {
//		interop.Test("Parser", "EmptyInput", func() {
//			expect.Eq(len(parse("")), 0)
//		})
//	}
//
// The declaration builds a TestRegistration and hands it to the bound Registry once. When the
// registry later runs the test, failures found by the expect package are relayed to the registry
// as non-fatal failures at the caller's file and line, and an error returned by the test body is
// relayed as one more failure at the declaration's file and line.
//
// By default tests are bound to framework.Default. Bind can be used to point them at a
// different registry, such as the one in the gotest package.
package interop
