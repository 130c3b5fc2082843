package cmd

import (
	"github.com/nickboucher/abom/common"
	"github.com/nickboucher/abom/pretty"
	"github.com/nickboucher/abom/settings"
	"github.com/nickboucher/abom/xviper"

	"github.com/spf13/cobra"
)

var (
	settingsJsonFlag   bool
	enableJournalFlag  bool
	disableJournalFlag bool
)

var configureCmd = &cobra.Command{
	Use:     "configuration",
	Aliases: []string{"conf", "config", "configure"},
	Short:   "Manage abom settings and instance identity.",
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the effective settings, builtin defaults with overrides applied.",
	Long: `Show the effective settings. These are the builtin defaults, overridden
section by section from the file at $ABOM_HOME/settings.yaml when one
exists.`,
	Run: func(cmd *cobra.Command, args []string) {
		config, err := settings.SummonSettings()
		pretty.GuardError("Settings are broken", err)
		var content []byte
		if settingsJsonFlag {
			content, err = config.AsJson()
		} else {
			content, err = config.AsYaml()
		}
		pretty.GuardError("Settings rendering failed", err)
		common.Stdout("%s\n", content)
	},
}

var identityCmd = &cobra.Command{
	Use:     "identity",
	Aliases: []string{"i", "id"},
	Short:   "Manage abom instance identity and journal consent.",
	Run: func(cmd *cobra.Command, args []string) {
		if enableJournalFlag {
			xviper.ConsentJournal(true)
		}
		if disableJournalFlag {
			xviper.ConsentJournal(false)
		}
		common.Stdout("abom instance identity is: %v\n", xviper.InstanceIdentity())
		common.Stdout("and build journaling is enabled: %v\n", xviper.JournalEnabled())
	},
}

func init() {
	rootCmd.AddCommand(configureCmd)
	configureCmd.AddCommand(settingsCmd)
	configureCmd.AddCommand(identityCmd)
	settingsCmd.Flags().BoolVarP(&settingsJsonFlag, "json", "j", false, "Print the settings as JSON.")
	identityCmd.Flags().BoolVarP(&enableJournalFlag, "enable-journal", "e", false, "Enable recording of wrapped build events. (opt-in)")
	identityCmd.Flags().BoolVarP(&disableJournalFlag, "disable-journal", "d", false, "Disable recording of wrapped build events.")
}
