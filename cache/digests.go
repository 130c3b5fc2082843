package cache

import (
	"fmt"
	"strings"

	"github.com/nickboucher/abom/common"
	"github.com/nickboucher/abom/fail"
	"github.com/nickboucher/abom/pathlib"
	"github.com/nickboucher/abom/set"

	"github.com/dchest/siphash"
)

const (
	sipKeyLow  = 0x61626f6d2e763165
	sipKeyHigh = 0x646967657374732e

	lockTrials = 125
)

type (
	// Digests caches file content hashes between wrapped builds, keyed by
	// pathname, size and modification time. When any of those change, the
	// key changes and the stale digest just stops being found.
	Digests struct {
		location string
		loaded   map[uint64]string
		fresh    map[uint64]string
	}
)

// SummonDigests loads the digest cache from under the product home. A
// missing or unreadable cache is just treated as empty.
func SummonDigests() *Digests {
	location := common.DigestCacheFile()
	return &Digests{
		location: location,
		loaded:   loadEntries(location),
		fresh:    make(map[uint64]string),
	}
}

func loadEntries(location string) map[uint64]string {
	result := make(map[uint64]string, 1000)
	if !pathlib.IsFile(location) {
		return result
	}
	content, err := pathlib.ReadFile(location)
	if err != nil {
		common.Debug("Could not read digest cache %q, reason: %v", location, err)
		return result
	}
	for _, line := range strings.Split(string(content), "\n") {
		var key uint64
		var digest string
		scanned, err := fmt.Sscanf(line, "%x %s", &key, &digest)
		if err != nil || scanned != 2 {
			continue
		}
		result[key] = digest
	}
	return result
}

func fingerprint(pathname string) (uint64, bool) {
	size, ok := pathlib.Size(pathname)
	if !ok {
		return 0, false
	}
	modified, err := pathlib.Modtime(pathname)
	if err != nil {
		return 0, false
	}
	identity := fmt.Sprintf("%s|%d|%d", pathname, size, modified.UnixNano())
	return siphash.Hash(sipKeyLow, sipKeyHigh, []byte(identity)), true
}

// Lookup returns the remembered digest for the file as it is on disk right
// now. Any change to the file makes the lookup miss.
func (it *Digests) Lookup(pathname string) (string, bool) {
	key, ok := fingerprint(pathname)
	if !ok {
		return "", false
	}
	if digest, ok := it.fresh[key]; ok {
		return digest, true
	}
	digest, ok := it.loaded[key]
	return digest, ok
}

// Remember records the digest of the file as it is on disk right now. The
// record becomes durable only once Commit runs.
func (it *Digests) Remember(pathname, digest string) {
	key, ok := fingerprint(pathname)
	if !ok {
		return
	}
	it.fresh[key] = digest
}

// Commit merges fresh records into the cache file under a lock, keeping
// entries that other concurrent builds managed to add meanwhile.
func (it *Digests) Commit() (err error) {
	defer fail.Around(&err)

	if len(it.fresh) == 0 {
		return nil
	}
	completed := pathlib.LockWaitMessage(it.location, "Serialized digest cache access")
	locker, err := pathlib.Locker(it.location+".lck", lockTrials)
	completed()
	fail.On(err != nil, "Could not get lock for digest cache %q, reason: %v", it.location, err)
	defer locker.Release()

	merged := loadEntries(it.location)
	for key, digest := range it.loaded {
		merged[key] = digest
	}
	for key, digest := range it.fresh {
		merged[key] = digest
	}
	body := strings.Builder{}
	for _, key := range set.Keys(merged) {
		fmt.Fprintf(&body, "%016x %s\n", key, merged[key])
	}
	err = pathlib.WriteFile(it.location, []byte(body.String()), 0o644)
	fail.On(err != nil, "Could not write digest cache %q, reason: %v", it.location, err)
	it.loaded = merged
	it.fresh = make(map[uint64]string)
	return nil
}
