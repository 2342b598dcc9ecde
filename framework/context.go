package framework

import (
	"errors"
	"fmt"
	"strings"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is used similarly to *testing.T by test procedures. It implements require.TestingT,
// so the assert and require packages can be used with it directly.
type Context struct {
	env            *environment
	id             TestID
	debugLogger    CapturingLogger
	failed         bool
	failedSubtests int
	skipped        bool
	skipReason     string
	errors         []error
}

// Run executes action as the root of a test tree and returns the results of every test that
// action started with Context.Run. Tests run synchronously in the order they are started.
//
// Only assertion failures are caught. A test that panics with anything else aborts the whole
// run, and the panic propagates to the caller of Run.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if !c.catch(r) {
				panic(r)
			}
		}
		if len(c.id.Path) == 0 {
			return
		}
		result := TestResult{TestID: c.id, Errors: c.errors, Skipped: c.skipped}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

// catch returns false for anything that is not an assertion failure raised in this context.
func (c *Context) catch(r interface{}) bool {
	switch v := r.(type) {
	case *Context:
		if v != c {
			return false
		}
		if c.skipped {
			return true
		}
		c.failed = true
		if len(c.errors) == 0 {
			c.addError(errors.New("test failed with no failure message"))
		}
		return true
	case *AssertionError:
		c.failed = true
		c.addError(v)
		return true
	}
	return false
}

func (c *Context) addError(err error) {
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

func (c *Context) ID() TestID {
	return c.id
}

// Run registers the named test procedure and runs it immediately. It returns false if the
// procedure or any of its subtests failed.
func (c *Context) Run(name string, action func(*Context)) bool {
	id := c.id.Plus(name)

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return true
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
		return true
	}
	failed := c1.failed || c1.failedSubtests > 0
	if failed {
		c.failedSubtests++
	}
	c.env.testLogger.TestFinished(id, failed, c1.debugLogger.Output())
	return !failed
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	c.addError(&AssertionError{Message: reformatMessage(format, args...)})
}

// AssertEqual fails the test immediately if actual and expected are not equal.
func (c *Context) AssertEqual(actual, expected interface{}, hint string) {
	c.Require(AssertEqual(actual, expected, hint))
}

// Assert fails the test immediately if condition is false.
func (c *Context) Assert(condition bool, hint string) {
	c.Require(Assert(condition, hint))
}

// Require fails the test immediately if err is non-nil. err is recorded as the failure
// message, whether or not it is an *AssertionError.
func (c *Context) Require(err error) {
	if err == nil {
		return
	}
	c.failed = true
	c.addError(err)
	c.FailNow()
}

func (c *Context) Failed() bool {
	return c.failed
}

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

// testify's Errorf output starts with a newline and indents every line with a tab.
func reformatMessage(format string, args ...interface{}) string {
	lines := strings.Split(strings.TrimSpace(fmt.Sprintf(format, args...)), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(strings.ReplaceAll(line, "\t", " "))
	}
	return strings.Join(lines, "\n")
}
