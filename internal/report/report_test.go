package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gontzess/expense-tracker/internal/model"
)

func expense(t *testing.T, amount, day string) model.Expense {
	t.Helper()
	a, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("parse amount %q: %v", amount, err)
	}
	d, err := time.Parse(model.DateLayout, day)
	if err != nil {
		t.Fatalf("parse date %q: %v", day, err)
	}
	return model.Expense{Amount: a, Memo: "memo", CreatedOn: d}
}

func TestMonthlyBucketsAndGapFill(t *testing.T) {
	expenses := []model.Expense{
		expense(t, "14.56", "2021-06-09"),
		expense(t, "3.29", "2021-06-10"),
		expense(t, "43.23", "2021-08-01"),
	}

	months := Monthly(expenses)
	if len(months) != 3 {
		t.Fatalf("len = %d, want 3 (June through August)", len(months))
	}

	tests := []struct {
		key   string
		count int
		total string
	}{
		{"2021-06", 2, "17.85"},
		{"2021-07", 0, "0.00"},
		{"2021-08", 1, "43.23"},
	}
	for i, tt := range tests {
		m := months[i]
		if m.Key() != tt.key {
			t.Errorf("months[%d].Key() = %q, want %q", i, m.Key(), tt.key)
		}
		if m.Count != tt.count {
			t.Errorf("months[%d].Count = %d, want %d", i, m.Count, tt.count)
		}
		if got := m.Total.StringFixed(2); got != tt.total {
			t.Errorf("months[%d].Total = %s, want %s", i, got, tt.total)
		}
	}
}

func TestMonthlyEmpty(t *testing.T) {
	if got := Monthly(nil); got != nil {
		t.Errorf("Monthly(nil) = %v, want nil", got)
	}
}

func TestLastN(t *testing.T) {
	months := Monthly([]model.Expense{
		expense(t, "1.00", "2021-01-05"),
		expense(t, "2.00", "2021-02-05"),
		expense(t, "3.00", "2021-03-05"),
	})

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"subset", 2, []string{"2021-02", "2021-03"}},
		{"zero keeps all", 0, []string{"2021-01", "2021-02", "2021-03"}},
		{"overshoot keeps all", 9, []string{"2021-01", "2021-02", "2021-03"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LastN(months, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i, key := range tt.want {
				if got[i].Key() != key {
					t.Errorf("got[%d].Key() = %q, want %q", i, got[i].Key(), key)
				}
			}
		})
	}
}
