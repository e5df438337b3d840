package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gontzess/expense-tracker/internal/cli"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all expenses",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	expenses, err := s.All()
	if err != nil {
		return err
	}

	out, err := cli.RenderLedger(expenses)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
