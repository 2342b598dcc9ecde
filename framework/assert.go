package framework

import (
	"fmt"

	"github.com/stretchr/testify/assert"
)

// AssertionError is the only kind of failure that a test procedure can recover from. It
// carries a message describing the mismatch and the hint supplied by the caller.
type AssertionError struct {
	Message string
	Hint    string
}

func (e *AssertionError) Error() string {
	if e.Hint == "" {
		return e.Message
	}
	return fmt.Sprintf("%s hint: %s", e.Message, e.Hint)
}

// AssertEqual returns an *AssertionError if actual and expected are not equal, or nil if
// they are. Values are compared the same way as testify's assert.Equal.
func AssertEqual(actual, expected interface{}, hint string) error {
	if assert.ObjectsAreEqual(expected, actual) {
		return nil
	}
	return &AssertionError{
		Message: fmt.Sprintf("%v != %v", actual, expected),
		Hint:    hint,
	}
}

// Assert is AssertEqual(condition, true, hint).
func Assert(condition bool, hint string) error {
	return AssertEqual(condition, true, hint)
}
