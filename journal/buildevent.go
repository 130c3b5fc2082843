package journal

import (
	"encoding/json"
	"os"
	"strings"
	"sync"

	"github.com/nickboucher/abom/common"
	"github.com/nickboucher/abom/fail"
	"github.com/nickboucher/abom/pathlib"
	"github.com/nickboucher/abom/set"
	"github.com/nickboucher/abom/xviper"

	"github.com/mitchellh/go-ps"
)

const (
	ancestryLimit = 8
)

var (
	buildLock    sync.Mutex
	currentBuild *BuildEvent

	// shells get skipped when walking up the process tree, since build
	// tools commonly run their recipe lines through one.
	shellNames = []string{"sh", "bash", "dash", "zsh", "fish", "ksh", "cmd.exe", "powershell.exe", "pwsh"}
)

type (
	// BuildEvent is one structured record of a wrapped compiler or
	// archiver invocation, stored as a JSON line in the build journal.
	BuildEvent struct {
		Version      string `json:"version"`
		When         int64  `json:"when"`
		Controller   string `json:"controller"`
		BuildTool    string `json:"buildTool,omitempty"`
		Action       string `json:"action"`
		Tool         string `json:"tool"`
		Output       string `json:"output,omitempty"`
		Dependencies int    `json:"dependencies"`
		Linked       int    `json:"linked"`
		Filters      int    `json:"filters"`
		Ones         int    `json:"ones"`
		Sidecar      bool   `json:"sidecar,omitempty"`
		Assembly     bool   `json:"assembly,omitempty"`
		Warnings     int    `json:"warnings,omitempty"`
		Elapsed      string `json:"elapsed"`
	}
)

// CurrentBuildEvent gives the event describing this very process, creating
// it on first use. Operations fill it in as the wrapped build progresses.
func CurrentBuildEvent() *BuildEvent {
	buildLock.Lock()
	defer buildLock.Unlock()
	if currentBuild == nil {
		currentBuild = &BuildEvent{
			Version:    common.Version,
			When:       common.When,
			Controller: common.ControllerIdentity(),
		}
	}
	return currentBuild
}

// DetectBuildTool walks up the process tree and names the first ancestor
// that is not a shell, which for wrapped builds tends to be make, ninja,
// cmake, or whatever drives the compilation.
func DetectBuildTool() string {
	pid := os.Getppid()
	for hops := 0; hops < ancestryLimit; hops++ {
		process, err := ps.FindProcess(pid)
		if err != nil || process == nil {
			return ""
		}
		executable := process.Executable()
		if !set.Member(shellNames, strings.ToLower(executable)) {
			return executable
		}
		pid = process.PPid()
	}
	return ""
}

// Save appends the event into the build journal, filling in the build tool
// and elapsed time late so that detection cost is only paid on real builds.
func (it *BuildEvent) Save() (err error) {
	defer fail.Around(&err)

	if !xviper.JournalEnabled() {
		return nil
	}
	if len(it.BuildTool) == 0 {
		it.BuildTool = DetectBuildTool()
	}
	it.Elapsed = common.Clock.Elapsed().String()
	blob, err := json.Marshal(it)
	fail.On(err != nil, "Could not marshal build event, reason: %v", err)
	return appendJournal(common.BuildJournal(), blob)
}

// BuildEvents reads the whole build journal back, newest last.
func BuildEvents() (events []BuildEvent, err error) {
	defer fail.Around(&err)

	events = make([]BuildEvent, 0, 100)
	location := common.BuildJournal()
	if !pathlib.IsFile(location) {
		return events, nil
	}
	content, err := pathlib.ReadFile(location)
	fail.On(err != nil, "Could not read build journal %q, reason: %v", location, err)
	for _, line := range strings.Split(string(content), "\n") {
		flat := strings.TrimSpace(line)
		if len(flat) == 0 {
			continue
		}
		event := BuildEvent{}
		err := json.Unmarshal([]byte(flat), &event)
		if err != nil {
			common.Debug("Skipping build journal line %q, reason: %v", flat, err)
			continue
		}
		events = append(events, event)
	}
	return events, nil
}
