// Package cmd implements the expense-tracker CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gontzess/expense-tracker/internal/config"
	"github.com/gontzess/expense-tracker/internal/store"
)

var flagDB string

var rootCmd = &cobra.Command{
	Use:   "expense-tracker",
	Short: "An expense recording system",
	Long:  "Track personal expenses in a relational store: add, list, search, and delete records from the command line.",
	// Unknown commands print help and exit 0 rather than failing.
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go. It is the only
// place an error becomes a printed message and a non-zero exit; errors
// with an empty message abort silently.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database URL (postgres:// DSN or SQLite file path)")
}

// openStore resolves the database URL (flag, then environment, then
// config file, then default) and opens the store.
func openStore() (*store.Store, error) {
	if flagDB != "" {
		return store.Open(flagDB)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	url, _ := config.DatabaseURL(cfg)
	return store.Open(url)
}
