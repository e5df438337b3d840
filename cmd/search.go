package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gontzess/expense-tracker/internal/cli"
)

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "List expenses with a matching memo field",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	// The query is the first argument, matched anywhere in the memo
	// without case sensitivity.
	expenses, err := s.Search(args[0])
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
