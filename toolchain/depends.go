package toolchain

import (
	"os"
	"strings"

	"github.com/nickboucher/abom/common"
	"github.com/nickboucher/abom/fail"
	"github.com/nickboucher/abom/set"
	"github.com/nickboucher/abom/shell"
)

var (
	// dependencyPairFlags consume the following argument as well.
	dependencyPairFlags = []string{"-MT", "-MQ", "-MJ", "-MF"}

	// dependencySoloFlags stand alone. All of these are stripped before
	// the wrapper asks the compiler for "-M" output, so that the user's
	// own dependency flags cannot fight the probe.
	dependencySoloFlags = []string{
		"-M", "--dependencies",
		"-MD", "--write-dependencies",
		"-MG", "--print-missing-file-dependencies",
		"-MM", "--user-dependencies",
		"-MMD", "--write-user-dependencies",
		"-MP",
		"-MV",
	}
)

// Dependencies asks the compiler which files the given compilation touches
// by running a separate "-M" probe, and returns them deduplicated in sorted
// order. Dependency generation flags and the output flag are stripped from
// the probe so it stays side effect free.
func Dependencies(compiler string, args []string) (dependencies []string, err error) {
	defer fail.Around(&err)

	probe := StripOutputFlag(StripDependencyFlags(args))
	argv := append([]string{compiler, "-M"}, probe...)
	stdout, code, failure := shell.New(os.Environ(), ".", argv...).CaptureOutput()
	fail.On(code != 0, "Dependency query %q exited %d.", strings.Join(argv, " "), code)
	fail.Fast(failure)
	return ParseMakeRules(stdout)
}

// StripDependencyFlags removes every dependency generation flag from the
// argument list, including the extra argument of the two-token forms.
func StripDependencyFlags(args []string) []string {
	result := make([]string, 0, len(args))
	for at := 0; at < len(args); at++ {
		switch {
		case set.Member(dependencyPairFlags, args[at]):
			at++
		case set.Member(dependencySoloFlags, args[at]):
		default:
			result = append(result, args[at])
		}
	}
	return result
}

// StripOutputFlag removes the first "-o <path>" pair from the argument list,
// so that a probe run cannot overwrite the real output.
func StripOutputFlag(args []string) []string {
	for at, arg := range args {
		if arg == "-o" && at+1 < len(args) {
			return append(append([]string{}, args[:at]...), args[at+2:]...)
		}
	}
	return args
}

// ParseMakeRules extracts the union of prerequisite files from make style
// dependency rules, the format "-M" emits. Rules continue over backslash
// newlines and filenames may carry escaped spaces.
func ParseMakeRules(stdout string) (dependencies []string, err error) {
	defer fail.Around(&err)

	found := make(map[string]bool, 100)
	for _, rule := range splitRules(stdout) {
		if len(strings.TrimSpace(rule)) == 0 {
			continue
		}
		pieces := strings.Split(rule, "\\\n  ")
		head := strings.SplitN(pieces[0], ":", 2)
		fail.On(len(head) != 2, "Malformed make rule: %q", pieces[0])
		pieces[0] = head[1]
		total := 0
		for _, piece := range pieces {
			files, failure := shell.Split(strings.TrimRight(piece, " "))
			fail.On(failure != nil, "Could not tokenize make rule piece %q, reason: %v", piece, failure)
			for _, file := range files {
				found[file] = true
			}
			total += len(files)
		}
		common.Debug("Object %q has %d dependencies.", strings.TrimSpace(head[0]), total)
	}
	return set.Keys(found), nil
}

// splitRules cuts "-M" output into individual rules. A rule spans as many
// physical lines as its trailing backslashes continue.
func splitRules(stdout string) []string {
	rules := make([]string, 0, 5)
	current := strings.Builder{}
	for _, line := range strings.Split(stdout, "\n") {
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
		if strings.HasSuffix(line, `\`) {
			continue
		}
		rules = append(rules, current.String())
		current.Reset()
	}
	if current.Len() > 0 {
		rules = append(rules, current.String())
	}
	return rules
}
