package common

import (
	"fmt"
	"sync"
	"time"
)

type timevent struct {
	level int
	when  time.Duration
	what  string
}

var (
	TimelineEnabled bool

	timeline      []*timevent
	timelineLevel int
	timelineMutex sync.Mutex
	startpoint    = time.Now()
)

func init() {
	timeline = make([]*timevent, 0, 200)
}

func Timeline(form string, details ...interface{}) {
	timelineImpl(form, details...)
}

func TimelineBegin(form string, details ...interface{}) {
	timelineImpl(form, details...)
	timelineLevel += 1
}

func TimelineEnd() {
	timelineLevel -= 1
	timelineImpl("end.")
}

func timelineImpl(form string, details ...interface{}) {
	when := time.Since(startpoint)
	timelineMutex.Lock()
	defer timelineMutex.Unlock()
	timeline = append(timeline, &timevent{timelineLevel, when, fmt.Sprintf(form, details...)})
}

// EndOfTimeline prints the collected timeline as a percentage table.
// It is a no-op unless the --timeline flag enabled collection reporting.
func EndOfTimeline() {
	Timeline("Now.")
	if !TimelineEnabled {
		return
	}
	lifetime := time.Since(startpoint)
	asPercent := 100.0 / float64(lifetime)
	timelineMutex.Lock()
	defer timelineMutex.Unlock()
	Log("----  abom timeline  ----")
	for _, event := range timeline {
		percent := float64(event.when) * asPercent
		indent := ""
		for level := 0; level < event.level; level++ {
			indent += "  "
		}
		Log("%6.1f%%  %8s  %s%s", percent, Duration(event.when), indent, event.what)
	}
	Log("----  position/total = %v/%v  ----", len(timeline), Duration(lifetime))
}
