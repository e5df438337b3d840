package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gontzess/expense-tracker/internal/cli"
	"github.com/gontzess/expense-tracker/internal/model"
	"github.com/gontzess/expense-tracker/internal/store"
)

var deleteCmd = &cobra.Command{
	Use:   "delete NUMBER",
	Short: "Remove the expense with id NUMBER",
	Args:  cobra.ArbitraryArgs,
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

var errIntegerIDRequired = errors.New("You must provide an integer id.")

func runDelete(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errIntegerIDRequired
	}
	id, err := model.ParseID(args[0])
	if err != nil {
		return errIntegerIDRequired
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	deleted, err := s.DeleteByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("There is no expense with the id '%d'.", id)
	}
	if err != nil {
		return err
	}

	out, err := cli.RenderLedger([]model.Expense{deleted})
	if err != nil {
		return err
	}
	fmt.Print(out)
	fmt.Println("The expense has been deleted.")
	return nil
}
