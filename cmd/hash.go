package cmd

import (
	"github.com/nickboucher/abom/operations"
	"github.com/nickboucher/abom/pretty"

	"github.com/spf13/cobra"
)

var hashCmd = &cobra.Command{
	Use:   "hash <file> ...",
	Short: "Print the ABOM hash of each given file.",
	Long: `Hash prints the ABOM dependency hash of each file: the SHAKE128 digest
of its contents, truncated to the width the Bloom filters probe with.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := operations.HashFiles(args)
		if err != nil {
			pretty.Exit(1, "Error: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)
}
