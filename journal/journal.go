package journal

import (
	"encoding/json"
	"strings"

	"github.com/nickboucher/abom/common"
	"github.com/nickboucher/abom/fail"
	"github.com/nickboucher/abom/pathlib"
	"github.com/nickboucher/abom/xviper"
)

const (
	lockTrials = 125
)

type (
	// Event is one journaled happening, stored as a JSON line inside the
	// event journal under the product home.
	Event struct {
		When       int64  `json:"when"`
		Controller string `json:"controller"`
		Event      string `json:"event"`
		Detail     string `json:"detail"`
		Comment    string `json:"comment,omitempty"`
	}
)

func init() {
	common.RunJournal = rememberEvent
}

func rememberEvent(event, detail, comment string) {
	err := Post(event, detail, comment)
	if err != nil {
		common.Debug("Journal trouble: %v", err)
	}
}

// Unify collapses all whitespace runs into single spaces, so that multiline
// details become greppable one liner entries.
func Unify(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// Post appends one event into the event journal. When the user has opted
// out of journaling, posting silently becomes a no-op.
func Post(event, detail, comment string) (err error) {
	defer fail.Around(&err)

	if !xviper.JournalEnabled() {
		return nil
	}
	blob, err := json.Marshal(Event{
		When:       common.When,
		Controller: common.ControllerIdentity(),
		Event:      Unify(event),
		Detail:     Unify(detail),
		Comment:    Unify(comment),
	})
	fail.On(err != nil, "Could not marshal event %q, reason: %v", event, err)
	return appendJournal(common.EventJournal(), blob)
}

// Events reads the full event journal back. Lines that do not parse are
// skipped with a debug note, so a torn write cannot poison history.
func Events() (events []Event, err error) {
	defer fail.Around(&err)

	events = make([]Event, 0, 100)
	location := common.EventJournal()
	if !pathlib.IsFile(location) {
		return events, nil
	}
	content, err := pathlib.ReadFile(location)
	fail.On(err != nil, "Could not read journal %q, reason: %v", location, err)
	for _, line := range strings.Split(string(content), "\n") {
		flat := strings.TrimSpace(line)
		if len(flat) == 0 {
			continue
		}
		event := Event{}
		err := json.Unmarshal([]byte(flat), &event)
		if err != nil {
			common.Debug("Skipping journal line %q, reason: %v", flat, err)
			continue
		}
		events = append(events, event)
	}
	return events, nil
}

func appendJournal(location string, blob []byte) (err error) {
	defer fail.Around(&err)

	fail.On(pathlib.IsDir(location), "Journal %q is a directory, not a file!", location)
	_, err = pathlib.EnsureParentDirectory(location)
	fail.On(err != nil, "Could not ensure journal directory for %q, reason: %v", location, err)
	completed := pathlib.LockWaitMessage(location, "Serialized journal access")
	locker, err := pathlib.Locker(location+".lck", lockTrials)
	completed()
	fail.On(err != nil, "Could not get lock for journal %q, reason: %v", location, err)
	defer locker.Release()
	return pathlib.AppendFile(location, append(blob, '\n'))
}
