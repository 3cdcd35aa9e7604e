package budget

import (
	"testing"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

func mkBudget(amount, spent string) core.Budget {
	return core.Budget{
		ID:       1,
		Category: "Food & Dining",
		Amount:   decimal.RequireFromString(amount),
		Spent:    decimal.RequireFromString(spent),
		Month:    core.Month{Year: 2024, Month: 3},
	}
}

func TestAlertAtNinetyPercent(t *testing.T) {
	b := mkBudget("200", "180")

	if got := Utilization(b); got != 0.9 {
		t.Fatalf("expected utilization 0.9, got %v", got)
	}
	if !IsAlertThreshold(b) {
		t.Fatal("expected alert at 90% utilization")
	}
	if IsOverBudget(b) {
		t.Fatal("90% utilization is not over budget")
	}
}

func TestAlertThresholdIsStrict(t *testing.T) {
	exact := mkBudget("200", "160") // exactly 80%
	if IsAlertThreshold(exact) {
		t.Fatal("exactly 80% must not flag")
	}
	over := mkBudget("200", "160.01")
	if !IsAlertThreshold(over) {
		t.Fatal("just above 80% must flag")
	}
}

func TestRemainingNeverNegative(t *testing.T) {
	cases := []struct {
		budget core.Budget
		want   string
	}{
		{mkBudget("200", "50"), "150"},
		{mkBudget("200", "200"), "0"},
		{mkBudget("200", "350"), "0"},
	}
	for i, tc := range cases {
		got := Remaining(tc.budget)
		if !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Fatalf("case %d: expected %s, got %v", i, tc.want, got)
		}
		if got.IsNegative() {
			t.Fatalf("case %d: remaining went negative", i)
		}
	}
}

func TestUtilizationZeroAmount(t *testing.T) {
	b := mkBudget("200", "100")
	b.Amount = decimal.Zero
	if got := Utilization(b); got != 0 {
		t.Fatalf("expected 0 for zero allotment, got %v", got)
	}
	if IsAlertThreshold(b) {
		t.Fatal("zero allotment must not flag")
	}
}

func TestIsOverBudget(t *testing.T) {
	if !IsOverBudget(mkBudget("200", "200.01")) {
		t.Fatal("expected over budget")
	}
	if IsOverBudget(mkBudget("200", "200")) {
		t.Fatal("spent equal to amount is not over budget")
	}
}

func TestAlerts(t *testing.T) {
	budgets := []core.Budget{
		mkBudget("200", "180"),
		mkBudget("100", "10"),
		mkBudget("50", "49"),
	}
	got := Alerts(budgets)
	if len(got) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(got))
	}
}

func TestStatusOf(t *testing.T) {
	st := StatusOf(mkBudget("200", "180"))
	if !st.Alert || st.OverBudget {
		t.Fatalf("unexpected status: %+v", st)
	}
	if !st.Remaining.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected remaining 20, got %v", st.Remaining)
	}
}

func TestTotals(t *testing.T) {
	budgets := []core.Budget{mkBudget("200", "180"), mkBudget("100", "25")}
	if got := TotalAllotted(budgets); !got.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected 300, got %v", got)
	}
	if got := TotalSpent(budgets); !got.Equal(decimal.NewFromInt(205)) {
		t.Fatalf("expected 205, got %v", got)
	}
}
