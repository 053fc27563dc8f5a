package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "Tools for trying text part rewrites against real messages",
}

func Execute() error {
	return rootCmd.Execute()
}
