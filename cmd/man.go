package cmd

import (
	"fmt"
	"strings"

	"github.com/nickboucher/abom/blobs"
	"github.com/nickboucher/abom/common"
	"github.com/nickboucher/abom/pretty"

	"github.com/spf13/cobra"
)

func manTopics() []string {
	names := blobs.AssetNames("assets/man")
	topics := make([]string, 0, len(names))
	for _, name := range names {
		topics = append(topics, strings.TrimSuffix(name, ".txt"))
	}
	return topics
}

var manCmd = &cobra.Command{
	Use:     "man <topic>",
	Aliases: []string{"manual", "docs"},
	Short:   "Show built-in documentation.",
	Long:    "Show built-in documentation on the given topic. Without a topic, lists what is available.",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		topics := manTopics()
		if len(args) == 0 {
			common.Stdout("Available topics: %s\n", strings.Join(topics, ", "))
			return
		}
		topic := strings.ToLower(args[0])
		content, err := blobs.Asset(fmt.Sprintf("assets/man/%s.txt", topic))
		pretty.Guard(err == nil, 1, "No such topic %q; available ones are: %s.", topic, strings.Join(topics, ", "))
		common.Stdout("%s\n", content)
	},
}

func init() {
	rootCmd.AddCommand(manCmd)
}
