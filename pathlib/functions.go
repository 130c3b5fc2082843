package pathlib

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

func Abs(path string) (string, error) {
	fullpath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(fullpath), nil
}

func Exists(pathname string) bool {
	_, err := os.Stat(pathname)
	return !os.IsNotExist(err)
}

func IsFile(pathname string) bool {
	stat, err := os.Stat(pathname)
	return err == nil && stat.Mode().IsRegular()
}

func IsDir(pathname string) bool {
	stat, err := os.Stat(pathname)
	return err == nil && stat.IsDir()
}

func Size(pathname string) (int64, bool) {
	stat, err := os.Stat(pathname)
	if err != nil {
		return 0, false
	}
	return stat.Size(), true
}

func Modtime(pathname string) (time.Time, error) {
	stat, err := os.Stat(pathname)
	if err != nil {
		return time.Time{}, err
	}
	return stat.ModTime(), nil
}

func TempDir() string {
	candidate := os.TempDir()
	if IsDir(candidate) {
		return candidate
	}
	if err := os.MkdirAll(candidate, 0o755); err != nil {
		return "."
	}
	return candidate
}

func EnsureDirectory(directory string) (string, error) {
	fullpath, err := Abs(directory)
	if err != nil {
		return "", err
	}
	if IsDir(fullpath) {
		return fullpath, nil
	}
	err = os.MkdirAll(fullpath, 0o755)
	if err != nil {
		return "", err
	}
	return fullpath, nil
}

func EnsureDirectoryExists(directory string) error {
	_, err := EnsureDirectory(directory)
	return err
}

func EnsureParentDirectory(resource string) (string, error) {
	return EnsureDirectory(filepath.Dir(resource))
}

func Verify(pathname string) error {
	if !IsFile(pathname) {
		return fmt.Errorf("%q is not a file", pathname)
	}
	return nil
}
