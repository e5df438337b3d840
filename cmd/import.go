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

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Insert expenses from an exported CSV or XLSX file",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	path := args[0]
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" && ext != ".xlsx" {
		return fmt.Errorf("unsupported file type %q (want .csv or .xlsx)", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var rows []export.Row
	if ext == ".csv" {
		rows, err = export.ReadCSV(f)
	} else {
		rows, err = export.ReadXLSX(f)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	// Rows were fully validated above; ids are assigned by the store.
	for _, row := range rows {
		if err := s.Add(row.Amount, row.Memo, row.Date); err != nil {
			return err
		}
	}

	fmt.Printf("Imported %s expenses from %s.\n", cli.FormatNumber(int64(len(rows))), path)
	return nil
}
