// Package toolchain talks to the host C/C++ toolchain: it plans compiler
// invocations, queries their dependencies, and rewrites binary sections
// through llvm-objcopy and ld. It never parses object files itself beyond
// sniffing magic numbers.
package toolchain

import (
	"path/filepath"

	"github.com/nickboucher/abom/pathlib"
	"github.com/nickboucher/abom/set"
	"github.com/nickboucher/abom/settings"
)

// KnownCompiler tells whether the command names one of the configured
// compiler frontends, so that "abom clang ..." and friends get wrapped.
func KnownCompiler(command string) bool {
	return set.Member(settings.Global.Compilers(), filepath.Base(command))
}

// KnownArchiver tells whether the command names one of the configured
// archivers, so that "abom ar ..." gets wrapped.
func KnownArchiver(command string) bool {
	return set.Member(settings.Global.Archivers(), filepath.Base(command))
}

// Objcopy names the configured section rewriting tool, llvm-objcopy by
// default.
func Objcopy() string {
	return settings.Global.ObjcopyTool()
}

// Linker names the configured linker used for relocatable section injection.
func Linker() string {
	return settings.Global.LinkerTool()
}

// HaveTool reports whether the named tool resolves to an executable, either
// as an absolute path or through PATH.
func HaveTool(command string) bool {
	_, ok := pathlib.TargetPath().Which(command, pathlib.Executables())
	return ok
}
