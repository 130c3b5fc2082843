package xviper

import (
	"crypto/sha256"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/nickboucher/abom/common"
)

const (
	instanceIdentityKey = `instance.identity`
	journalEnabledKey   = `journal.enabled`
)

var (
	guidSteps = []int{4, 2, 2, 2, 6}
)

func init() {
	rand.Seed(common.When)
}

func AsGuid(content []byte) string {
	result := make([]string, 0, len(guidSteps))
	for _, step := range guidSteps {
		result = append(result, fmt.Sprintf("%02x", content[:step]))
		content = content[step:]
	}
	return strings.Join(result, "-")
}

func generateRandomIdentity() string {
	now := time.Now()
	digester := sha256.New()
	content := fmt.Sprintf("ID: %v/%v/%v", now.Format(time.RFC3339Nano), rand.Uint64(), rand.Uint64())
	digester.Write([]byte(content))
	return AsGuid(digester.Sum(nil))
}

// InstanceIdentity returns the stable random identity of this installation,
// generating and persisting one on first use. The identity never leaves the
// machine; it only tells build journals from different homes apart.
func InstanceIdentity() string {
	identity := GetString(instanceIdentityKey)
	if len(identity) == 0 {
		identity = generateRandomIdentity()
		Set(instanceIdentityKey, identity)
		common.RunJournal("identity", identity, "new instance identity created")
	}
	return identity
}

// ConsentJournal turns local build journaling on or off.
func ConsentJournal(state bool) {
	Set(journalEnabledKey, state)
	common.RunJournal("consent", fmt.Sprintf("%s=%v", journalEnabledKey, state), "journal consent changed")
}

// JournalEnabled reports whether build events should be recorded. Journaling
// is local only and strictly opt-in: off until explicitly enabled.
func JournalEnabled() bool {
	return GetBool(journalEnabledKey)
}
