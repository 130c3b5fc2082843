//go:build windows

package pathlib

import (
	"fmt"
	"os"
	"time"

	"github.com/nickboucher/abom/common"

	"golang.org/x/sys/windows"
)

// Locker takes an exclusive range lock on the given file, creating it when
// needed. Trials is the total wait budget in milliseconds.
func Locker(filename string, trials int) (Releaser, error) {
	common.Trace("Wants lock on file: %v", filename)
	if _, err := EnsureParentDirectory(filename); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}
	deadline := time.Now().Add(time.Duration(trials) * time.Millisecond)
	flags := uint32(windows.LOCKFILE_EXCLUSIVE_LOCK | windows.LOCKFILE_FAIL_IMMEDIATELY)
	for {
		overlapped := new(windows.Overlapped)
		err = windows.LockFileEx(windows.Handle(file.Fd()), flags, 0, 1, 0, overlapped)
		if err == nil {
			common.Trace("Holds lock on file: %v", filename)
			return Locked{file}, nil
		}
		if time.Now().After(deadline) {
			file.Close()
			return nil, fmt.Errorf("Could not lock %v in %dms, reason: %v", filename, trials, err)
		}
		time.Sleep(25 * time.Millisecond)
	}
}

func unlockFile(file *os.File) error {
	return windows.UnlockFileEx(windows.Handle(file.Fd()), 0, 1, 0, new(windows.Overlapped))
}
