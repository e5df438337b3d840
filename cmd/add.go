package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/gontzess/expense-tracker/internal/model"
)

var addCmd = &cobra.Command{
	Use:   "add AMOUNT MEMO [DATE]",
	Short: "Record a new expense",
	Args:  cobra.ArbitraryArgs,
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

var (
	errAmountMemoRequired = errors.New("You must provide an amount and memo.")
	errBadDate            = errors.New("You must provide the date in YYYY-MM-DD format.")
)

func runAdd(_ *cobra.Command, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return errAmountMemoRequired
	}

	amount, err := model.ParseAmount(args[0])
	if err != nil {
		return errAmountMemoRequired
	}
	if err := model.ValidateMemo(args[1]); err != nil {
		return errAmountMemoRequired
	}

	date := model.Today()
	if len(args) == 3 {
		date, err = model.ParseDate(args[2])
		if err != nil {
			return errBadDate
		}
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	return s.Add(amount, args[1], date)
}
