package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gontzess/expense-tracker/internal/cli"
	"github.com/gontzess/expense-tracker/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Write all expenses to a CSV or XLSX file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	path := args[0]
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" && ext != ".xlsx" {
		return fmt.Errorf("unsupported file type %q (want .csv or .xlsx)", filepath.Ext(path))
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	expenses, err := s.All()
	if err != nil {
		return err
	}
	if len(expenses) == 0 {
		return cli.ErrNoExpenses
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if ext == ".csv" {
		err = export.WriteCSV(f, expenses)
	} else {
		err = export.WriteXLSX(f, expenses)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported %s expenses to %s.\n", cli.FormatNumber(int64(len(expenses))), path)
	return nil
}
