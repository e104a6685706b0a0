package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "blogql",
	Short: "GraphQL API for users, posts, and comments",
	Long: `
BlogQL serves a GraphQL API over an in-memory collection of users, posts,
and comments. Data lives for the lifetime of the process.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "",
		"Configuration file. Overridden by BLOGQL_ environment variables and flags.")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level, one of [debug, info, warn, error].")
	rootCmd.PersistentFlags().String("log-format", "json", "Log format, one of [json, console].")

	rootCmd.AddCommand(serveCmd, schemaCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
