package toolchain

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nickboucher/abom/common"
	"github.com/nickboucher/abom/fail"
	"github.com/nickboucher/abom/shell"
)

type (
	// Job is one planned toolchain invocation, parsed from a quoted
	// command line that "clang -###" printed on stderr.
	Job struct {
		Commandline string
		Argv        []string
	}

	// Plan is the ordered set of jobs the compiler intends to run for
	// one user-visible invocation.
	Plan struct {
		Tool string
		Jobs []*Job
	}
)

// NewPlan asks the compiler what it would run for the given arguments by
// adding -### and parsing the job lines from stderr. The compiler's own
// banner lines (version, target, install dir) are ignored.
func NewPlan(compiler string, args []string) (*Plan, error) {
	argv := append([]string{compiler, "-###"}, args...)
	task := shell.New(os.Environ(), ".", argv...)
	stderr, _, err := task.CaptureStderr()
	if err != nil && len(strings.TrimSpace(stderr)) == 0 {
		return nil, err
	}
	return ParsePlan(compiler, stderr)
}

// ParsePlan picks the planned jobs out of "-###" stderr output. Job lines
// are the ones opening with an indented quoted executable; everything else
// is banner or diagnostics.
func ParsePlan(compiler string, stderr string) (plan *Plan, err error) {
	defer fail.Around(&err)

	jobs := make([]*Job, 0, 5)
	for _, line := range strings.Split(stderr, "\n") {
		if !strings.HasPrefix(line, ` "`) {
			continue
		}
		flat := strings.TrimSpace(line)
		argv, err := shell.Split(flat)
		fail.On(err != nil, "Could not tokenize planned job %q, reason: %v", flat, err)
		if len(argv) == 0 {
			continue
		}
		jobs = append(jobs, &Job{Commandline: flat, Argv: argv})
	}
	fail.On(len(jobs) == 0, "No compiler jobs found, compiler said:\n%s", stderr)
	return &Plan{Tool: compiler, Jobs: jobs}, nil
}

// Final is the job that produces the user-visible output, by convention the
// last one the compiler plans.
func (it *Plan) Final() *Job {
	return it.Jobs[len(it.Jobs)-1]
}

// Linking tells whether this plan ends in a link step.
func (it *Plan) Linking() bool {
	return it.Final().Linking()
}

// Output gives the pathname the plan writes its result to. A plan without
// a detectable output file cannot be wrapped, so that is an error.
func (it *Plan) Output() (string, error) {
	output, ok := it.Final().Output()
	if !ok {
		return "", fmt.Errorf("Output file could not be determined.")
	}
	return output, nil
}

// Run executes the planned jobs in order, stopping at the first failure and
// reporting its exit code. Job stderr stays visible to the user.
func (it *Plan) Run() (int, error) {
	for _, job := range it.Jobs {
		code, err := job.Run()
		if code != 0 || err != nil {
			return code, err
		}
	}
	return 0, nil
}

func (it *Job) Tool() string {
	return it.Argv[0]
}

// Arguments are the job's argv without the executable itself.
func (it *Job) Arguments() []string {
	return it.Argv[1:]
}

// Linking tells whether this job invokes a linker. Linker executables carry
// "ld" in their basename (ld, ld64.lld, gold), compilers and assemblers do
// not.
func (it *Job) Linking() bool {
	return strings.Contains(filepath.Base(it.Argv[0]), "ld")
}

// Output finds the pathname following the job's first -o flag.
func (it *Job) Output() (string, bool) {
	for at, arg := range it.Argv {
		if arg == "-o" && at+1 < len(it.Argv) {
			return it.Argv[at+1], true
		}
	}
	return "", false
}

// Run executes the job with the caller's stderr and a swallowed stdout, the
// way the wrapped compiler would have run without the wrapper.
func (it *Job) Run() (int, error) {
	common.Debug("Running planned job: %v", it.Commandline)
	_, code, err := shell.New(os.Environ(), ".", it.Argv...).CaptureOutput()
	return code, err
}
