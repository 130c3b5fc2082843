// Package fail converts panics into error returns. Library functions declare
// a named error result, defer fail.Around on it, and then state their
// preconditions with fail.On. Only failures created by this package are
// captured; everything else keeps panicking.
package fail

import "fmt"

type failure struct {
	message string
}

func (it *failure) Error() string {
	return it.message
}

// Around recovers a failure raised by On or Fast into the given error slot.
// Use as: defer fail.Around(&err)
func Around(err *error) {
	catch := recover()
	if catch == nil {
		return
	}
	wrapped, ok := catch.(*failure)
	if ok {
		*err = wrapped
		return
	}
	panic(catch)
}

// On raises a failure when the condition holds.
func On(condition bool, form string, details ...interface{}) {
	if condition {
		panic(&failure{fmt.Sprintf(form, details...)})
	}
}

// Fast raises the given error as a failure when it is not nil.
func Fast(err error) {
	if err != nil {
		panic(&failure{err.Error()})
	}
}
