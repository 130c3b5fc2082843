package cmd

import (
	"github.com/nickboucher/abom/common"
	"github.com/nickboucher/abom/operations"
	"github.com/nickboucher/abom/toolchain"

	"github.com/spf13/cobra"
)

// Passthrough recognizes "abom clang ..." style invocations before cobra
// gets to parse anything, and runs the wrapped build directly. Verbosity
// comes purely from the environment here, since every argument belongs to
// the wrapped tool.
func Passthrough(arguments []string) bool {
	if len(arguments) == 0 {
		return false
	}
	tool := arguments[0]
	if !toolchain.KnownCompiler(tool) && !toolchain.KnownArchiver(tool) {
		return false
	}
	common.DefineVerbosity(false, false, false)
	operations.WrapBuild(arguments)
	return true
}

var wrapCmd = &cobra.Command{
	Use:   "wrap -- <compiler/archiver> [arguments]",
	Short: "Wrap a compiler or archiver invocation with manifest generation.",
	Long: `Wrap performs the given build command and embeds a dependency manifest
into its output. The bare form "abom clang ..." does the same thing; this
explicit subcommand exists for build systems that want the wrapper's own
flags too.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if common.DebugFlag() {
			defer common.Stopwatch("Wrapped build lasted").Report()
		}
		operations.WrapBuild(args)
	},
}

func init() {
	rootCmd.AddCommand(wrapCmd)
}
