// Package report aggregates expense rows into calendar buckets.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gontzess/expense-tracker/internal/model"
)

// MonthStats holds aggregate figures for one calendar month.
type MonthStats struct {
	Month time.Time // first day of the month, UTC
	Count int
	Total decimal.Decimal
}

// Key returns the YYYY-MM bucket key for the month.
func (m MonthStats) Key() string {
	return m.Month.Format("2006-01")
}

// Monthly groups expenses into per-month buckets, oldest first.
func Monthly(expenses []model.Expense) []MonthStats {
	if len(expenses) == 0 {
		return nil
	}

	buckets := make(map[string]*MonthStats)
	for _, e := range expenses {
		key := e.CreatedOn.Format("2006-01")
		ms, ok := buckets[key]
		if !ok {
			ms = &MonthStats{
				Month: time.Date(e.CreatedOn.Year(), e.CreatedOn.Month(), 1, 0, 0, 0, 0, time.UTC),
				Total: decimal.Zero,
			}
			buckets[key] = ms
		}
		ms.Count++
		ms.Total = ms.Total.Add(e.Amount)
	}

	// Fill in every month in the range so the trend shows gaps as zeros
	var first, last time.Time
	for _, ms := range buckets {
		if first.IsZero() || ms.Month.Before(first) {
			first = ms.Month
		}
		if ms.Month.After(last) {
			last = ms.Month
		}
	}
	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		key := m.Format("2006-01")
		if _, ok := buckets[key]; !ok {
			buckets[key] = &MonthStats{Month: m, Total: decimal.Zero}
		}
	}

	months := make([]MonthStats, 0, len(buckets))
	for _, ms := range buckets {
		months = append(months, *ms)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month.Before(months[j].Month)
	})

	return months
}

// LastN returns at most the final n buckets.
func LastN(months []MonthStats, n int) []MonthStats {
	if n <= 0 || n >= len(months) {
		return months
	}
	return months[len(months)-n:]
}
