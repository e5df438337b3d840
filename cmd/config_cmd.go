package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gontzess/expense-tracker/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	url, source := config.DatabaseURL(cfg)
	if flagDB != "" {
		url, source = flagDB, "flag"
	}
	fmt.Println("  [Database]")
	fmt.Printf("    URL:    %s\n", url)
	fmt.Printf("    Source: %s\n", source)
	fmt.Println()

	fmt.Println("  [Report]")
	fmt.Printf("    Default months: %d\n", cfg.Report.DefaultMonths)
	fmt.Println()

	fmt.Println("  Run `expense-tracker setup` to reconfigure.")
	return nil
}
