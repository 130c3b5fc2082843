package cmd

import (
	"github.com/nickboucher/abom/operations"

	"github.com/spf13/cobra"
)

var checkJsonFlag bool

var checkCmd = &cobra.Command{
	Use:     "check <binary> <dependency>",
	Aliases: []string{"c"},
	Short:   "Check whether a dependency is recorded in a binary's manifest.",
	Long: `Check answers whether the dependency was built into the binary, printing
exactly "Present" or "Absent". The dependency is an ABOM hash (10 hex
characters, the short 9 character form also accepted) or a path to an
existing file, which gets hashed on the fly.
The sidecar file "<binary>.abom" wins over an embedded section when both
exist. Membership never changes the exit code; a binary carrying no
manifest at all does.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		operations.CheckDependency(args[0], args[1], checkJsonFlag)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVarP(&checkJsonFlag, "json", "j", false, "Print a structured report instead of Present/Absent.")
}
