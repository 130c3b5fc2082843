package pathlib

import (
	"os"
	"time"

	"github.com/nickboucher/abom/common"
)

type Releaser interface {
	Release() error
}

type Locked struct {
	*os.File
}

func (it Locked) Release() error {
	defer it.Close()
	err := unlockFile(it.File)
	common.Trace("Released lock on file: %v", it.Name())
	return err
}

// LockWaitMessage mentions the given message if getting the lock takes
// visibly long. The returned function stops the notifier.
func LockWaitMessage(filename, message string) func() {
	signal := make(chan bool)
	go func() {
		select {
		case <-signal:
		case <-time.After(2 * time.Second):
			common.Log("#### Waiting for lock on %v: %q", filename, message)
		}
	}()
	return func() {
		close(signal)
	}
}
