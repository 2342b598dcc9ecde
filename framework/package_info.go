// Package framework contains a small test runner that works outside of "go test".
//
// The general model is:
//
// 1. A test procedure is a function taking a *Context. It is registered and run immediately
// with Context.Run, under a name that becomes part of its TestID.
//
// 2. A procedure fails by raising an assertion failure: Context.AssertEqual, Context.Assert,
// or any assert/require call from testify with the *Context passed as the TestingT. The
// failure is caught at the boundary of that procedure, so later procedures still run. Any
// other panic is not caught.
//
// 3. Every result is reported to a TestLogger as it happens, and collected into Results.
// A Session turns the collected failure count into a process exit status exactly once.
package framework
