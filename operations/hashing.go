package operations

import (
	"fmt"
	"sync"

	"github.com/nickboucher/abom/abom"
	"github.com/nickboucher/abom/anywork"
	"github.com/nickboucher/abom/cache"
	"github.com/nickboucher/abom/common"
	"github.com/nickboucher/abom/fail"
	"github.com/nickboucher/abom/pretty"
	"github.com/nickboucher/abom/settings"
)

// Builds with fewer dependencies than this finish too fast for a spinner
// to be anything but flicker.
const progressThreshold = 20

// HashDependencies digests every given file on the worker pool, consulting
// the digest cache so that headers shared across a build get hashed once.
func HashDependencies(files []string) (result map[string]abom.Hash, err error) {
	defer fail.Around(&err)
	defer common.Stopwatch("Hashing %d dependencies took", len(files)).Debug()

	var progress pretty.ProgressIndicator
	if pretty.Interactive && len(files) > progressThreshold {
		progress = pretty.NewSpinner(fmt.Sprintf("Hashing %d dependencies", len(files)))
		progress.Start()
	}

	caching := settings.Global.CacheDigests()
	digests := cache.SummonDigests()
	mutex := sync.Mutex{}
	result = make(map[string]abom.Hash, len(files))
	for _, file := range files {
		flat := file
		anywork.Backlog(func() {
			if caching {
				mutex.Lock()
				cached, ok := digests.Lookup(flat)
				mutex.Unlock()
				if ok {
					if hash, failure := abom.ParseHash(cached); failure == nil {
						mutex.Lock()
						result[flat] = hash
						mutex.Unlock()
						return
					}
				}
			}
			hash, failure := abom.HashFile(flat)
			anywork.OnErrPanicCloseAll(failure)
			mutex.Lock()
			result[flat] = hash
			if caching {
				digests.Remember(flat, hash.String())
			}
			mutex.Unlock()
		})
	}
	failure := anywork.Sync()
	if progress != nil {
		progress.Stop(failure == nil)
	}
	fail.Fast(failure)
	if caching {
		if failure := digests.Commit(); failure != nil {
			common.Debug("Digest cache commit failed, reason: %v", failure)
		}
	}
	return result, nil
}

// HashFiles prints the ABOM hash of each file. A single file prints the
// bare hash, multiple files get one "hash  pathname" line each.
func HashFiles(files []string) (err error) {
	defer fail.Around(&err)

	hashes, err := HashDependencies(files)
	fail.Fast(err)
	if len(files) == 1 {
		common.Stdout("%s\n", hashes[files[0]])
		return nil
	}
	for _, file := range files {
		common.Stdout("%s  %s\n", hashes[file], file)
	}
	return nil
}
