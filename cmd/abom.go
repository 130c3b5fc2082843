package cmd

import (
	"os"

	"github.com/nickboucher/abom/common"
	"github.com/nickboucher/abom/pretty"

	"github.com/spf13/cobra"
)

var (
	silentFlag     bool
	debugFlag      bool
	traceFlag      bool
	timelineFlag   bool
	controllerFlag string
)

var rootCmd = &cobra.Command{
	Use:   "abom",
	Short: "abom wraps C/C++ builds and embeds a dependency manifest into their outputs.",
	Long: `abom is a drop-in wrapper around clang and ar. Prefixing a build command
with "abom" performs the normal build and additionally records every file
the compiler touched as a compact Bloom filter manifest, embedded into the
produced binary as a custom section (or written as a sidecar file next to
it). The companion checker answers later whether a dependency was built
into a binary, using nothing but the binary itself.`,
	SilenceUsage: true,
}

// ExitProtection turns pretty.Exit panics into clean process exits, with
// logs flushed either way.
func ExitProtection() {
	status := recover()
	if status != nil {
		exit, ok := status.(common.ExitCode)
		if ok {
			exit.ShowMessage()
			common.WaitLogs()
			os.Exit(exit.Code)
		}
		common.WaitLogs()
		panic(status)
	}
	common.WaitLogs()
}

// Execute runs one command line. Invocations that open with a configured
// compiler or archiver bypass cobra entirely, so that arbitrary build
// flags never collide with the wrapper's own options.
func Execute(arguments []string) {
	defer ExitProtection()
	pretty.Setup()
	if Passthrough(arguments) {
		common.EndOfTimeline()
		return
	}
	rootCmd.SetArgs(arguments)
	if err := rootCmd.Execute(); err != nil {
		common.WaitLogs()
		os.Exit(1)
	}
	common.EndOfTimeline()
}

func initCommand() {
	common.DefineVerbosity(silentFlag, debugFlag, traceFlag)
	common.TimelineEnabled = timelineFlag
	if len(controllerFlag) > 0 {
		common.ControllerType = controllerFlag
	}
	common.Timeline("Command line: %v", os.Args)
}

func init() {
	cobra.OnInitialize(initCommand)
	rootCmd.PersistentFlags().BoolVar(&silentFlag, "silent", false, "Be less verbose than normal.")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Turn on debug output; ABOM_VERBOSE=1 does the same.")
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "Turn on trace output, which implies debug.")
	rootCmd.PersistentFlags().BoolVar(&timelineFlag, "timeline", false, "Print an internal timeline at the end of the run.")
	rootCmd.PersistentFlags().StringVar(&controllerFlag, "controller", "", "Name of the tool driving this invocation, for journal records.")
}
