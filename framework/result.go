package framework

import (
	"strings"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID  TestID
	Errors  []error
	Skipped bool
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// FailureCount is the number of tests that raised at least one assertion failure.
func (r Results) FailureCount() int {
	return len(r.Failures)
}

func (r *Results) add(other Results) {
	r.Tests = append(r.Tests, other.Tests...)
	r.Failures = append(r.Failures, other.Failures...)
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

func (t TestID) Plus(name string) TestID {
	p := make([]string, 0, len(t.Path)+1)
	p = append(p, t.Path...)
	return TestID{Path: append(p, name)}
}
