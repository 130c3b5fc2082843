package cmd

import (
	"github.com/nickboucher/abom/common"
	"github.com/nickboucher/abom/operations"
	"github.com/nickboucher/abom/pretty"

	"github.com/spf13/cobra"
)

var (
	tuneSizesOption  []int
	tuneProbesOption []int
	tuneCountsOption []int
	tuneTopOption    int
	tuneJsonOption   string
)

var tuneCmd = &cobra.Command{
	Use:   "tune",
	Short: "Sweep Bloom filter configurations and report their cost. Experimental.",
	Long: `Tune measures Bloom filter configurations across filter sizes, probe
counts, and insertion counts: estimated and theoretical false positive
rates, bits set, and compressed payload sizes. This is the harness the
production parameters were picked with, kept around for revisiting them.`,
	Run: func(cmd *cobra.Command, args []string) {
		if common.DebugFlag() {
			defer common.Stopwatch("Tuning lasted").Report()
		}
		results, err := operations.TuneSweep(tuneSizesOption, tuneProbesOption, tuneCountsOption)
		if err != nil {
			pretty.Exit(1, "Error: %v", err)
		}
		operations.TuneReport(results, tuneTopOption, tuneJsonOption)
	},
}

func init() {
	rootCmd.AddCommand(tuneCmd)
	tuneCmd.Flags().IntSliceVarP(&tuneSizesOption, "sizes", "m", []int{1 << 16, 1 << 18, 1 << 20}, "Filter sizes in bits to sweep; powers of two.")
	tuneCmd.Flags().IntSliceVarP(&tuneProbesOption, "probes", "k", []int{1, 2, 4}, "Probe counts to sweep.")
	tuneCmd.Flags().IntSliceVarP(&tuneCountsOption, "counts", "n", []int{100, 1000, 10000}, "Insertion counts to sweep.")
	tuneCmd.Flags().IntVarP(&tuneTopOption, "top", "t", 5, "How many best configurations to highlight.")
	tuneCmd.Flags().StringVarP(&tuneJsonOption, "json", "j", "", "Also write full results as JSON into this file.")
}
