package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all expenses",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(clearCmd)
}

// errDeclined carries no message: the process exits non-zero without
// printing anything.
var errDeclined = errors.New("")

func runClear(_ *cobra.Command, _ []string) error {
	if !flagYes {
		var confirmed bool
		prompt := huh.NewConfirm().
			Title("This will remove all expenses. Are you sure?").
			Affirmative("y").
			Negative("n").
			Value(&confirmed)

		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			return errDeclined
		}
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.DeleteAll(); err != nil {
		return err
	}

	fmt.Println("All expenses have been deleted.")
	return nil
}
