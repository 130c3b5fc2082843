package hamlet

import (
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
)

// Hamlet is a terse assertion helper for tests. Specifications gives two of
// them: one that demands its claims to be true, and one that demands the
// opposite. "To be, or not to be."
type Hamlet struct {
	t  *testing.T
	be bool
}

func Specifications(t *testing.T) (tobe *Hamlet, notbe *Hamlet) {
	return &Hamlet{t, true}, &Hamlet{t, false}
}

func (it *Hamlet) location() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown:0"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

func (it *Hamlet) fail(form string, details ...interface{}) {
	it.t.Helper()
	it.t.Errorf(form, details...)
}

func (it *Hamlet) Equal(expected, actual interface{}) {
	it.t.Helper()
	state := reflect.DeepEqual(expected, actual)
	if state != it.be {
		it.fail("[%s] Equal expectation (be: %v) failed: %#v vs. %#v", it.location(), it.be, expected, actual)
	}
}

func (it *Hamlet) True(actual bool) {
	it.t.Helper()
	if actual != it.be {
		it.fail("[%s] True expectation (be: %v) failed with value %v", it.location(), it.be, actual)
	}
}

func (it *Hamlet) Nil(actual interface{}) {
	it.t.Helper()
	state := actual == nil
	if !state {
		value := reflect.ValueOf(actual)
		switch value.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
			state = value.IsNil()
		}
	}
	if state != it.be {
		it.fail("[%s] Nil expectation (be: %v) failed with value %#v", it.location(), it.be, actual)
	}
}

func (it *Hamlet) Panic(todo func()) {
	it.t.Helper()
	defer func() {
		recovered := recover()
		if (recovered != nil) != it.be {
			it.fail("[%s] Panic expectation (be: %v) failed with %v", it.location(), it.be, recovered)
		}
	}()
	todo()
}

func (it *Hamlet) Text(expected string, actual interface{}) {
	it.t.Helper()
	text := fmt.Sprintf("%v", actual)
	if (expected == text) != it.be {
		it.fail("[%s] Text expectation (be: %v) failed: %q vs. %q", it.location(), it.be, expected, text)
	}
}
