package cmd

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gontzess/expense-tracker/internal/model"
	"github.com/gontzess/expense-tracker/internal/store"
)

// useTempDB points the --db flag at a scratch SQLite file.
func useTempDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "expenses.db")
	flagDB = path
	t.Cleanup(func() { flagDB = "" })
	return path
}

func TestRunAddValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no args", nil, errAmountMemoRequired},
		{"missing memo", []string{"3.29"}, errAmountMemoRequired},
		{"too many args", []string{"3.29", "Coffee", "2021-06-09", "extra"}, errAmountMemoRequired},
		{"non-numeric amount", []string{"coffee", "3.29"}, errAmountMemoRequired},
		{"zero amount", []string{"0.00", "Coffee"}, errAmountMemoRequired},
		{"missing decimals", []string{"3", "Coffee"}, errAmountMemoRequired},
		{"five integer digits", []string{"10000.00", "Coffee"}, errAmountMemoRequired},
		{"whitespace memo", []string{"3.29", " Coffee"}, errAmountMemoRequired},
		{"malformed date", []string{"3.29", "Coffee", "June 9th"}, errBadDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := runAdd(nil, tt.args); !errors.Is(err, tt.want) {
				t.Errorf("runAdd(%v) = %v, want %v", tt.args, err, tt.want)
			}
		})
	}
}

func TestRunAddPersists(t *testing.T) {
	path := useTempDB(t)

	if err := runAdd(nil, []string{"3.29", "Coffee", "2021-06-09"}); err != nil {
		t.Fatalf("runAdd: %v", err)
	}

	s, err := store.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	expenses, err := s.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(expenses) != 1 {
		t.Fatalf("len = %d, want 1", len(expenses))
	}
	e := expenses[0]
	if e.Memo != "Coffee" {
		t.Errorf("Memo = %q, want Coffee", e.Memo)
	}
	if got := e.Amount.StringFixed(2); got != "3.29" {
		t.Errorf("Amount = %s, want 3.29", got)
	}
	if got := e.CreatedOn.Format(model.DateLayout); got != "2021-06-09" {
		t.Errorf("CreatedOn = %s, want 2021-06-09", got)
	}
}

func TestRunDeleteValidation(t *testing.T) {
	tests := [][]string{nil, {"abc"}, {"3.5"}, {"-2"}, {"1", "2"}}
	for _, args := range tests {
		if err := runDelete(nil, args); !errors.Is(err, errIntegerIDRequired) {
			t.Errorf("runDelete(%v) = %v, want integer id error", args, err)
		}
	}
}

func TestRunDeleteMissingIDNamesIt(t *testing.T) {
	useTempDB(t)
	if err := runAdd(nil, []string{"3.29", "Coffee"}); err != nil {
		t.Fatalf("runAdd: %v", err)
	}

	err := runDelete(nil, []string{"99"})
	if err == nil || !strings.Contains(err.Error(), "99") {
		t.Errorf("runDelete(99) error = %v, want message naming 99", err)
	}
}

func TestDeclinedClearIsSilent(t *testing.T) {
	if got := errDeclined.Error(); got != "" {
		t.Errorf("errDeclined message = %q, want empty", got)
	}
}

func TestUnknownCommandShowsHelp(t *testing.T) {
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"frobnicate"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Errorf("unknown command returned %v, want help and nil", err)
	}
}
