package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

func expense(id int, amount string, date core.Date) core.Transaction {
	return core.Transaction{
		ID:          id,
		Type:        core.Expense,
		Amount:      decimal.RequireFromString(amount),
		Category:    "Food & Dining",
		Description: "test expense",
		Date:        date,
	}
}

func income(id int, amount string, date core.Date) core.Transaction {
	t := expense(id, amount, date)
	t.Type = core.Income
	t.Category = "Salary"
	return t
}

func TestSumByTypeMonthWindow(t *testing.T) {
	txs := []core.Transaction{
		expense(1, "30", core.NewDate(2024, 3, 5)),
		expense(2, "20", core.NewDate(2024, 3, 20)),
		expense(3, "99", core.NewDate(2024, 4, 1)),  // outside window
		income(4, "500", core.NewDate(2024, 3, 10)), // wrong type
	}

	got := SumByType(txs, core.Expense, MonthWindow(2024, 3))
	if !got.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected 50, got %v", got)
	}
}

func TestSumByTypeEmptyInput(t *testing.T) {
	got := SumByType(nil, core.Expense, MonthWindow(2024, 3))
	if !got.IsZero() {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestMonthWindowBoundariesInclusive(t *testing.T) {
	w := MonthWindow(2024, 3)

	first := core.NewDate(2024, 3, 1)
	last := core.NewDate(2024, 3, 31)
	if !w.Contains(first.Time) {
		t.Fatal("first day must be inside the window")
	}
	if !w.Contains(last.Time) {
		t.Fatal("last day must be inside the window")
	}
	if w.Contains(core.NewDate(2024, 4, 1).Time) {
		t.Fatal("first day of next month must be outside")
	}
	if w.Contains(core.NewDate(2024, 2, 29).Time) {
		t.Fatal("last day of previous month must be outside")
	}
}

func TestMonthlyTotals(t *testing.T) {
	now := time.Date(2024, 4, 15, 12, 0, 0, 0, time.Local)
	txs := []core.Transaction{
		income(1, "1000", core.NewDate(2024, 2, 1)),
		expense(2, "200", core.NewDate(2024, 3, 10)),
		income(3, "1100", core.NewDate(2024, 4, 1)),
		expense(4, "50", core.NewDate(2024, 4, 2)),
	}

	totals := MonthlyTotals(txs, 3, now)
	if len(totals) != 3 {
		t.Fatalf("expected 3 months, got %d", len(totals))
	}

	// Oldest first, current month included.
	if totals[0].Label != "Feb 2024" || totals[1].Label != "Mar 2024" || totals[2].Label != "Apr 2024" {
		t.Fatalf("unexpected labels: %q %q %q", totals[0].Label, totals[1].Label, totals[2].Label)
	}
	if !totals[0].Income.Equal(decimal.NewFromInt(1000)) || !totals[0].Expense.IsZero() {
		t.Fatalf("feb mismatch: %+v", totals[0])
	}
	if !totals[1].Expense.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("mar mismatch: %+v", totals[1])
	}
	if !totals[2].Income.Equal(decimal.NewFromInt(1100)) || !totals[2].Expense.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("apr mismatch: %+v", totals[2])
	}
}

func TestMonthlyTotalsYearRollover(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local)
	totals := MonthlyTotals(nil, 2, now)
	if totals[0].Label != "Dec 2023" || totals[1].Label != "Jan 2024" {
		t.Fatalf("unexpected labels: %q %q", totals[0].Label, totals[1].Label)
	}
}

func TestCategoryBreakdownOmitsZeroCategories(t *testing.T) {
	w := MonthWindow(2024, 3)
	a := expense(1, "30", core.NewDate(2024, 3, 5))
	b := expense(2, "20", core.NewDate(2024, 3, 6))
	b.Category = "Transportation"
	outside := expense(3, "99", core.NewDate(2024, 5, 1))
	outside.Category = "Shopping"
	inc := income(4, "500", core.NewDate(2024, 3, 1))

	got := CategoryBreakdown([]core.Transaction{a, b, outside, inc}, w)
	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %d: %v", len(got), got)
	}
	if !got["Food & Dining"].Equal(decimal.NewFromInt(30)) {
		t.Fatalf("food mismatch: %v", got["Food & Dining"])
	}
	if !got["Transportation"].Equal(decimal.NewFromInt(20)) {
		t.Fatalf("transport mismatch: %v", got["Transportation"])
	}
	if _, ok := got["Shopping"]; ok {
		t.Fatal("category outside the window must be omitted, not zero-filled")
	}
}

func TestSortedCategoryTotals(t *testing.T) {
	breakdown := map[string]decimal.Decimal{
		"Transportation": decimal.NewFromInt(20),
		"Food & Dining":  decimal.NewFromInt(30),
		"Entertainment":  decimal.NewFromInt(20),
	}
	got := SortedCategoryTotals(breakdown)
	if got[0].Name != "Food & Dining" {
		t.Fatalf("expected largest first, got %q", got[0].Name)
	}
	if got[1].Name != "Entertainment" || got[2].Name != "Transportation" {
		t.Fatalf("ties must sort by name: %q %q", got[1].Name, got[2].Name)
	}
}

func TestTrendPercent(t *testing.T) {
	cases := []struct {
		current, previous string
		want              float64
	}{
		{"120", "100", 20},
		{"80", "100", -20},
		{"100", "100", 0},
		{"50", "0", 0}, // divide-by-zero policy: flat, not a fault
		{"0", "0", 0},
	}
	for _, tc := range cases {
		got := TrendPercent(decimal.RequireFromString(tc.current), decimal.RequireFromString(tc.previous))
		if got != tc.want {
			t.Fatalf("TrendPercent(%s, %s) = %v, want %v", tc.current, tc.previous, got, tc.want)
		}
	}
}

func TestNet(t *testing.T) {
	got := Net(decimal.NewFromInt(1000), decimal.NewFromInt(300))
	if !got.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("expected 700, got %v", got)
	}
}

func TestRecent(t *testing.T) {
	txs := []core.Transaction{
		expense(1, "10", core.NewDate(2024, 3, 1)),
		expense(2, "20", core.NewDate(2024, 3, 15)),
		expense(3, "30", core.NewDate(2024, 3, 10)),
	}

	got := Recent(txs, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2, got %d", len(got))
	}
	if got[0].ID != 2 || got[1].ID != 3 {
		t.Fatalf("unexpected order: %d, %d", got[0].ID, got[1].ID)
	}
	// Input order must be untouched.
	if txs[0].ID != 1 {
		t.Fatal("Recent must not mutate its input")
	}
}
