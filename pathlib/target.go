package pathlib

import (
	"os"
	"path/filepath"
	"runtime"
)

type PathParts []string

func TargetPath() PathParts {
	return filepath.SplitList(os.Getenv("PATH"))
}

func Executables() []string {
	if runtime.GOOS == "windows" {
		return []string{".exe", ".cmd", ".bat", ""}
	}
	return []string{""}
}

func (it PathParts) Prepend(parts ...string) PathParts {
	return append(PathParts(parts), it...)
}

// Which finds the first matching executable from the path parts, trying
// the given filename extensions in order at every directory.
func (it PathParts) Which(application string, extensions []string) (string, bool) {
	if filepath.IsAbs(application) && IsFile(application) {
		return application, true
	}
	for _, directory := range it {
		for _, extension := range extensions {
			candidate := filepath.Join(directory, application+extension)
			if IsFile(candidate) {
				return candidate, true
			}
		}
	}
	return "", false
}
