package pathlib

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nickboucher/abom/common"
)

func Create(filename string) (*os.File, error) {
	_, err := EnsureParentDirectory(filename)
	if err != nil {
		return nil, err
	}
	return os.Create(filename)
}

func WriteFile(filename string, blob []byte, mode os.FileMode) error {
	_, err := EnsureParentDirectory(filename)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, blob, mode)
}

func ReadFile(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}

func AppendFile(filename string, blob []byte) error {
	_, err := EnsureParentDirectory(filename)
	if err != nil {
		return err
	}
	handle, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer handle.Close()
	_, err = handle.Write(blob)
	if err != nil {
		return err
	}
	return handle.Sync()
}

func CopyFile(source, target string, overwrite bool) error {
	if !overwrite && Exists(target) {
		return fmt.Errorf("Target file %q already exists.", target)
	}
	origin, err := os.Open(source)
	if err != nil {
		return err
	}
	defer origin.Close()
	sink, err := Create(target)
	if err != nil {
		return err
	}
	defer sink.Close()
	_, err = io.Copy(sink, origin)
	if err != nil {
		return err
	}
	return sink.Sync()
}

// TryRename retries once after a short delay, since network and virus
// scanned filesystems occasionally hold fresh files open.
func TryRename(context, source, target string) error {
	err := os.Rename(source, target)
	if err == nil {
		return nil
	}
	common.Debug("Rename of %q (%v -> %v) failed, retrying, reason: %v", context, source, target, err)
	time.Sleep(100 * time.Millisecond)
	return os.Rename(source, target)
}

func TryRemove(context, target string) (err error) {
	for delay := 0; delay < 5; delay += 1 {
		time.Sleep(time.Duration(delay*100) * time.Millisecond)
		err = os.Remove(target)
		if err == nil {
			return nil
		}
	}
	common.Debug("Failed to remove %q %v, reason: %v", context, target, err)
	return err
}

func TryRemoveAll(context, target string) (err error) {
	for delay := 0; delay < 5; delay += 1 {
		time.Sleep(time.Duration(delay*100) * time.Millisecond)
		err = os.RemoveAll(target)
		if err == nil {
			return nil
		}
	}
	common.Debug("Failed to remove all %q %v, reason: %v", context, target, err)
	return err
}
