package common

import (
	"fmt"
	"time"
)

type (
	Duration time.Duration

	stopwatch struct {
		message string
		started time.Time
	}
)

func Stopwatch(form string, details ...interface{}) *stopwatch {
	return &stopwatch{
		message: fmt.Sprintf(form, details...),
		started: time.Now(),
	}
}

func (it Duration) String() string {
	return fmt.Sprintf("%5.3fs", float64(it)/float64(time.Second))
}

func (it *stopwatch) When() int64 {
	return it.started.Unix()
}

func (it *stopwatch) Elapsed() Duration {
	return Duration(time.Since(it.started))
}

func (it *stopwatch) Debug() Duration {
	elapsed := it.Elapsed()
	Debug("%v %v", it.message, elapsed)
	return elapsed
}

func (it *stopwatch) Log() Duration {
	elapsed := it.Elapsed()
	Log("%v %v", it.message, elapsed)
	return elapsed
}

func (it *stopwatch) Report() Duration {
	return it.Log()
}

func (it *stopwatch) Text() string {
	return it.Elapsed().String()
}
