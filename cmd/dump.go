package cmd

import (
	"github.com/nickboucher/abom/operations"

	"github.com/spf13/cobra"
)

var (
	dumpJsonFlag bool
	dumpRawFlag  string
)

var dumpCmd = &cobra.Command{
	Use:   "dump <binary>",
	Short: "Decode and describe the manifest carried by a binary.",
	Long: `Dump decodes the manifest carried by the binary and reports its header
fields, per-filter saturation, estimated false positive rate, and payload
sizes. Useful when deciding whether a long-lived archive manifest is
getting crowded.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		operations.DumpArtifact(args[0], dumpJsonFlag, dumpRawFlag)
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().BoolVarP(&dumpJsonFlag, "json", "j", false, "Print the report as JSON.")
	dumpCmd.Flags().StringVarP(&dumpRawFlag, "raw", "r", "", "Also write the raw serialized payload into this file.")
}
