package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gontzess/expense-tracker/internal/cli"
	"github.com/gontzess/expense-tracker/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to expense-tracker!")
	fmt.Println()

	// 1. Database
	fmt.Println("  1. Database")
	fmt.Println("     A SQLite file path, or a postgres:// DSN.")
	current, source := config.DatabaseURL(cfg)
	fmt.Printf("     Current: %s (%s)\n", current, source)
	fmt.Print("     > ")
	url, _ := reader.ReadString('\n')
	url = strings.TrimSpace(url)
	if url != "" {
		cfg.Database.URL = url
	}
	fmt.Println()

	// 2. Report window
	fmt.Println("  2. Default report window")
	fmt.Println("     (1) 6 months")
	fmt.Println("     (2) 12 months [default]")
	fmt.Println("     (3) 24 months")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "1":
		cfg.Report.DefaultMonths = 6
	case "3":
		cfg.Report.DefaultMonths = 24
	default:
		cfg.Report.DefaultMonths = 12
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	// Open once so the schema exists before the first real command.
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	count, err := s.Count()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Printf("  Expenses on record: %s\n", cli.FormatNumber(int64(count)))
	fmt.Println("  Run `expense-tracker setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
