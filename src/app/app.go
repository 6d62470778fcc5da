package app

import (
	"github.com/spf13/cobra"
)

// RootCommand is the root of the campusqa CLI. Command packages attach
// themselves to it from their init functions.
var RootCommand = &cobra.Command{
	Use:   "campusqa",
	Short: "Campus Q&A backend",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}
