package common

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

const (
	VerboseEnvironmentVariable = `ABOM_VERBOSE`
	TraceEnvironmentVariable   = `ABOM_TRACE`
)

var (
	silentFlag bool
	debugFlag  bool
	traceFlag  bool

	LogLinenumbers  bool
	LogHides        []string
	NoOutputCapture bool

	// ControllerType names who is driving this process. Commands set it from
	// the --controller option, wrapped builds leave it as "user".
	ControllerType = `user`

	// Product gives locations and naming for this installation. Tests may
	// swap it to redirect the product home.
	Product ProductStrategy = AbomMode()

	// When is the moment this process started, as unix seconds.
	When = time.Now().Unix()

	// Clock measures elapsed wall time since process start.
	Clock = Stopwatch("Process lifetime")

	// Identities gives out process-unique suffixes for temporary filenames.
	Identities = make(chan string)
)

func init() {
	go identityProvider(Identities)
}

func identityProvider(sink chan string) {
	for counter := uint64(1); ; counter++ {
		sink <- fmt.Sprintf("%016x", counter)
	}
}

// DefineVerbosity locks in logging verbosity from command line options and
// the ABOM_VERBOSE/ABOM_TRACE environment variables. Trace implies debug,
// and both win over silence.
func DefineVerbosity(silent, debug, trace bool) {
	debug = debug || os.Getenv(VerboseEnvironmentVariable) == "1"
	trace = trace || len(os.Getenv(TraceEnvironmentVariable)) > 0
	silentFlag = silent && !debug && !trace
	debugFlag = debug
	traceFlag = trace
	Debug("Verbosity: silent=%v, debug=%v, trace=%v", silentFlag, debugFlag, traceFlag)
}

func Silent() bool {
	return silentFlag
}

func DebugFlag() bool {
	return debugFlag || traceFlag
}

func TraceFlag() bool {
	return traceFlag
}

func ControllerIdentity() string {
	return strings.ToLower(fmt.Sprintf("abom.%s", ControllerType))
}

func UserAgent() string {
	return fmt.Sprintf("abom/%s (%s %s) %s", Version, runtime.GOOS, runtime.GOARCH, ControllerIdentity())
}

func Platform() string {
	return strings.ToLower(fmt.Sprintf("%s_%s", runtime.GOOS, runtime.GOARCH))
}

// OptimalWorkerCount decides how many anywork workers to scale up. Hashing
// dependency trees is a mix of I/O and CPU, so one worker per CPU with a
// floor of two keeps small machines from serializing.
func OptimalWorkerCount() int {
	limit := runtime.NumCPU() - 1
	if limit < 2 {
		limit = 2
	}
	return limit
}

func ProductHome() string {
	return Product.Home()
}

func JournalLocation() string {
	return filepath.Join(Product.Home(), "journals")
}

func BuildJournal() string {
	return filepath.Join(JournalLocation(), "builds.log")
}

func EventJournal() string {
	return filepath.Join(Product.Home(), "event.log")
}

func CacheLocation() string {
	return filepath.Join(Product.Home(), "caches")
}

func DigestCacheFile() string {
	return filepath.Join(CacheLocation(), "digests.v1")
}

func SettingsFile() string {
	return filepath.Join(Product.Home(), "settings.yaml")
}

func ConfigFile() string {
	return filepath.Join(Product.Home(), "abom.yaml")
}
