package cmd

import (
	"github.com/nickboucher/abom/operations"

	"github.com/spf13/cobra"
)

var mergeOutputFlag string

var mergeCmd = &cobra.Command{
	Use:   "merge -o <output.abom> <input> ...",
	Short: "Union manifests from arbitrary carriers into one sidecar file.",
	Long: `Merge unions the manifests of the given inputs, each a raw payload file,
a sidecar, or a binary with an embedded section, into one standalone
sidecar. Handy for tagging archives built without the wrapper.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		operations.MergeCarriers(mergeOutputFlag, args)
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().StringVarP(&mergeOutputFlag, "output", "o", "", "File to write the merged manifest into.")
	mergeCmd.MarkFlagRequired("output")
}
