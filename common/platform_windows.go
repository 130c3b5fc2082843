package common

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultProductLocation = "$LOCALAPPDATA/abom"
)

func ExpandPath(entry string) string {
	intermediate := os.ExpandEnv(entry)
	result, err := filepath.Abs(intermediate)
	if err != nil {
		return intermediate
	}
	return filepath.FromSlash(result)
}

func PlatformSyncDelay() {
	time.Sleep(300 * time.Millisecond)
}
