package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "almora",
	Short: "Almora - streaming PEG matcher",
	Long: `Almora matches parsing expression grammars against in-memory strings
or byte streams, keeping only a fixed-size window of the input in memory.`,
}

func init() {
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
