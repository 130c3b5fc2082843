package operations

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nickboucher/abom/abom"
	"github.com/nickboucher/abom/common"
	"github.com/nickboucher/abom/journal"
	"github.com/nickboucher/abom/pathlib"
	"github.com/nickboucher/abom/pretty"
	"github.com/nickboucher/abom/settings"
	"github.com/nickboucher/abom/shell"
	"github.com/nickboucher/abom/toolchain"
)

// WrapBuild dispatches one wrapped tool invocation, compiler or archiver.
// The tool's own exit code propagates when the wrapped build fails.
func WrapBuild(argv []string) {
	pretty.Guard(len(argv) > 0, 1, "Usage: abom <compiler/archiver command> [arguments]")
	tool, args := argv[0], argv[1:]
	switch {
	case toolchain.KnownCompiler(tool):
		WrapCompilation(tool, args)
	case toolchain.KnownArchiver(tool):
		WrapArchiving(tool, args)
	default:
		pretty.Exit(1, "Tool %q is not supported; configured tools are %s and %s.",
			tool,
			strings.Join(settings.Global.Compilers(), "/"),
			strings.Join(settings.Global.Archivers(), "/"))
	}
}

// WrapCompilation performs the wrapped compile: plan the jobs, collect and
// hash the dependencies, run the real build, and embed the manifest into
// its output.
func WrapCompilation(compiler string, args []string) {
	common.TimelineBegin("wrapped %s build", compiler)
	defer common.TimelineEnd()

	event := journal.CurrentBuildEvent()
	event.Action = "compile"
	event.Tool = compiler

	plan, err := toolchain.NewPlan(compiler, args)
	pretty.GuardError("Compilation planning failed", err)
	output, err := plan.Output()
	if err != nil {
		pretty.Exit(1, "Output file could not be determined.")
	}
	common.Debug("Output: %v", output)

	dependencies, err := toolchain.Dependencies(compiler, args)
	pretty.GuardError("Dependency query failed", err)
	common.Timeline("%d dependencies resolved", len(dependencies))

	hashes, err := HashDependencies(dependencies)
	pretty.GuardError("Dependency hashing failed", err)
	manifest := abom.New()
	for _, hash := range hashes {
		manifest.Insert(hash)
	}
	assembly := assemblyInput(dependencies)

	warnings := 0
	merged := 0
	if plan.Linking() {
		merged, warnings = unionCarried(manifest, plan.Final().Arguments(), output, "Linked")
		common.Timeline("%d linked manifests merged", merged)
	}

	common.Timeline("running %d planned jobs", len(plan.Jobs))
	var code int
	shell.WithInterrupt(func() {
		code, err = plan.Run()
	})
	if err != nil {
		pretty.Exit(1, "Build failed, reason: %v", err)
	}
	if code != 0 {
		pretty.Exit(code, "")
	}

	sidecar, embedWarnings := EmbedManifest(manifest, output, assembly)
	warnings += embedWarnings

	event.Output = output
	event.Dependencies = len(dependencies)
	event.Linked = merged
	event.Filters = manifest.Filters()
	event.Ones = manifest.Ones()
	event.Sidecar = sidecar
	event.Assembly = assembly
	event.Warnings = warnings
	if err := event.Save(); err != nil {
		common.Debug("Could not journal build event, reason: %v", err)
	}
	common.RunJournal("compile", fmt.Sprintf("tool=%s output=%s deps=%d filters=%d",
		compiler, output, len(dependencies), manifest.Filters()), "wrapped compile completed")
}

// WrapArchiving runs the archiver verbatim and unions the member manifests
// into a sidecar next to the archive. Archives never embed sections.
func WrapArchiving(archiver string, args []string) {
	common.TimelineBegin("wrapped %s archive", archiver)
	defer common.TimelineEnd()

	event := journal.CurrentBuildEvent()
	event.Action = "archive"
	event.Tool = archiver

	argv := append([]string{archiver}, args...)
	var code int
	var err error
	shell.WithInterrupt(func() {
		code, err = shell.New(os.Environ(), ".", argv...).Execute(false)
	})
	if err != nil {
		pretty.Exit(1, "Archiver failed, reason: %v", err)
	}
	if code != 0 {
		pretty.Exit(code, "Skipping ABOM generation due to archive error.")
	}

	archive, members, ok := archiveTarget(args)
	pretty.Guard(ok, 1, "Output file could not be determined.")
	common.Debug("Archive: %v", archive)

	manifest := abom.New()
	merged, warnings := unionCarried(manifest, members, archive, "Archived")
	pretty.Guard(writeSidecar(manifest, archive), 1, "Could not write archive manifest for %q.", archive)

	event.Output = archive
	event.Linked = merged
	event.Filters = manifest.Filters()
	event.Ones = manifest.Ones()
	event.Sidecar = true
	event.Warnings = warnings
	if err := event.Save(); err != nil {
		common.Debug("Could not journal build event, reason: %v", err)
	}
	common.RunJournal("archive", fmt.Sprintf("tool=%s output=%s members=%d",
		archiver, archive, merged), "wrapped archive completed")
}

// archiveTarget locates the produced archive on the archiver command line:
// the first argument naming an existing file, operation flags not being
// files. Arguments after it are the contributed members.
func archiveTarget(args []string) (string, []string, bool) {
	for at, arg := range args {
		if pathlib.IsFile(arg) {
			return arg, args[at+1:], true
		}
	}
	return "", nil, false
}

// assemblyInput tells whether any dependency is an assembly source, which
// forces sidecar carriage since the section tooling chokes on such builds.
func assemblyInput(files []string) bool {
	for _, file := range files {
		if strings.ToLower(filepath.Ext(file)) == ".s" {
			return true
		}
	}
	return false
}
