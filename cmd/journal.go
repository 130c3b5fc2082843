package cmd

import (
	"time"

	"github.com/nickboucher/abom/common"
	"github.com/nickboucher/abom/interactive"
	"github.com/nickboucher/abom/journal"
	"github.com/nickboucher/abom/pretty"
	"github.com/nickboucher/abom/xviper"

	"github.com/spf13/cobra"
)

var (
	journalUiFlag     bool
	journalEventsFlag bool
)

var journalCmd = &cobra.Command{
	Use:     "journal",
	Aliases: []string{"journals", "j"},
	Short:   "List wrapped build events recorded in the journal.",
	Long: `Journal lists the build events this machine has recorded: which tool ran,
what it produced, and how big the manifest came out. Recording is off by
default; "abom configuration identity --enable-journal" turns it on.`,
	Run: func(cmd *cobra.Command, args []string) {
		if journalEventsFlag {
			listGenericEvents()
			return
		}
		events, err := journal.BuildEvents()
		pretty.GuardError("Journal read failed", err)
		if journalUiFlag {
			pretty.Guard(pretty.Interactive, 1, "The journal viewer needs an interactive terminal.")
			err := interactive.ShowJournal(events)
			pretty.GuardError("Journal viewer failed", err)
			return
		}
		if len(events) == 0 {
			common.Log("No build events recorded. Journaling enabled: %v.", xviper.JournalEnabled())
			return
		}
		for _, event := range events {
			common.Stdout("%s  %-7s  %-10s  deps=%-5d filters=%d  %s\n",
				time.Unix(event.When, 0).Format(time.RFC3339),
				event.Action, event.Tool, event.Dependencies, event.Filters, event.Output)
		}
	},
}

func listGenericEvents() {
	events, err := journal.Events()
	pretty.GuardError("Journal read failed", err)
	if len(events) == 0 {
		common.Log("No events recorded. Journaling enabled: %v.", xviper.JournalEnabled())
		return
	}
	for _, event := range events {
		common.Stdout("%s  %-10s  %s  %s\n",
			time.Unix(event.When, 0).Format(time.RFC3339),
			event.Event, event.Detail, event.Comment)
	}
}

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.Flags().BoolVarP(&journalUiFlag, "ui", "u", false, "Browse events in an interactive viewer.")
	journalCmd.Flags().BoolVarP(&journalEventsFlag, "events", "e", false, "List generic configuration and wrap events instead of builds.")
}
