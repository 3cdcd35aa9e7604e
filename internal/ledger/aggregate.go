// Package ledger derives period-bounded metrics from a transaction
// collection. Every function is pure: inputs are never mutated and results
// are recomputed on each call.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

// Window is an inclusive date range used to scope aggregation.
type Window struct {
	Start time.Time
	End   time.Time
}

// MonthWindow spans one calendar month, first day 00:00:00 through the last
// instant of the last day, in local time. This is a fixed design choice.
func MonthWindow(year, month int) Window {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	return Window{
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Nanosecond),
	}
}

// WindowForMonth is MonthWindow keyed by a core.Month.
func WindowForMonth(m core.Month) Window {
	return MonthWindow(m.Year, m.Month)
}

// Contains reports whether t falls within the window, inclusive on both ends.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// SumByType sums the amounts of all transactions of the given type whose
// date falls within the window. An empty input sums to zero.
func SumByType(txs []core.Transaction, typ core.TransactionType, w Window) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txs {
		if t.Type == typ && w.Contains(t.Date.Time) {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

// MonthTotal is one point of a trend series.
type MonthTotal struct {
	Label   string          `json:"label"`
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// MonthlyTotals computes income and expense sums for each of the most recent
// monthsBack calendar months including the month of now, oldest first.
func MonthlyTotals(txs []core.Transaction, monthsBack int, now time.Time) []MonthTotal {
	if monthsBack < 1 {
		return nil
	}
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	totals := make([]MonthTotal, 0, monthsBack)
	for i := monthsBack - 1; i >= 0; i-- {
		m := base.AddDate(0, -i, 0)
		w := MonthWindow(m.Year(), int(m.Month()))
		totals = append(totals, MonthTotal{
			Label:   m.Format("Jan 2006"),
			Year:    m.Year(),
			Month:   int(m.Month()),
			Income:  SumByType(txs, core.Income, w),
			Expense: SumByType(txs, core.Expense, w),
		})
	}
	return totals
}

// CategoryBreakdown groups expense transactions within the window by
// category name. Categories with no matching transactions are omitted.
func CategoryBreakdown(txs []core.Transaction, w Window) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, t := range txs {
		if t.Type != core.Expense || !w.Contains(t.Date.Time) {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}
	return totals
}

// SortedCategoryTotals flattens a breakdown into a slice ordered by amount
// descending, name ascending on ties.
func SortedCategoryTotals(breakdown map[string]decimal.Decimal) []core.CategoryTotal {
	out := make([]core.CategoryTotal, 0, len(breakdown))
	for name, amount := range breakdown {
		out = append(out, core.CategoryTotal{Name: name, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount.Equal(out[j].Amount) {
			return out[i].Name < out[j].Name
		}
		return out[i].Amount.GreaterThan(out[j].Amount)
	})
	return out
}

// TrendPercent is the month-over-month change of current against previous,
// in percent. A zero previous yields 0 rather than a division fault; flat
// history reads as no trend.
func TrendPercent(current, previous decimal.Decimal) float64 {
	if !previous.IsPositive() {
		return 0
	}
	percent := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100))
	f, _ := percent.Float64()
	return f
}

// Net is income minus expense for a period.
func Net(income, expense decimal.Decimal) decimal.Decimal {
	return income.Sub(expense)
}

// Recent returns up to limit transactions ordered by date descending. Ties
// keep the higher identifier first, matching most-recently-created.
func Recent(txs []core.Transaction, limit int) []core.Transaction {
	sorted := append([]core.Transaction(nil), txs...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Date.Equal(sorted[j].Date.Time) {
			return sorted[i].ID > sorted[j].ID
		}
		return sorted[i].Date.After(sorted[j].Date.Time)
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
