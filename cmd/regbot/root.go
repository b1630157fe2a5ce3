package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "regbot",
	Short: "Customer-registration conversational agent",
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
