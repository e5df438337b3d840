package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/gontzess/expense-tracker/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse expenses interactively",
	Args:  cobra.NoArgs,
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	expenses, err := s.All()
	if err != nil {
		return err
	}

	// Force TrueColor profile so the selection background produces
	// ANSI codes; lipgloss may otherwise fall back to Ascii.
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(s, expenses)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browse error: %w", err)
	}
	return nil
}
