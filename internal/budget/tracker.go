// Package budget relates a budget's target to actual spend and flags risk.
// Spent is read as stored; reconciliation against the ledger happens in the
// transaction service, not here.
package budget

import (
	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

// alertRatio is the utilization above which a budget needs attention.
var alertRatio = decimal.RequireFromString("0.8")

// Remaining is the unspent part of the allotment, floored at zero.
func Remaining(b core.Budget) decimal.Decimal {
	r := b.Amount.Sub(b.Spent)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

// Utilization is spent/allotted, or 0 when the allotment is not positive.
func Utilization(b core.Budget) float64 {
	if !b.Amount.IsPositive() {
		return 0
	}
	f, _ := b.Spent.Div(b.Amount).Float64()
	return f
}

func IsOverBudget(b core.Budget) bool {
	return b.Spent.GreaterThan(b.Amount)
}

// IsAlertThreshold reports utilization strictly above 80%. Compared on exact
// decimals so a budget sitting exactly at the threshold does not flag.
func IsAlertThreshold(b core.Budget) bool {
	if !b.Amount.IsPositive() {
		return false
	}
	return b.Spent.GreaterThan(b.Amount.Mul(alertRatio))
}

// Alerts returns the budgets needing attention, in input order.
func Alerts(budgets []core.Budget) []core.Budget {
	var out []core.Budget
	for _, b := range budgets {
		if IsAlertThreshold(b) {
			out = append(out, b)
		}
	}
	return out
}

// StatusOf derives the full tracking view for one budget.
func StatusOf(b core.Budget) core.BudgetStatus {
	return core.BudgetStatus{
		Budget:      b,
		Remaining:   Remaining(b),
		Utilization: Utilization(b),
		OverBudget:  IsOverBudget(b),
		Alert:       IsAlertThreshold(b),
	}
}

// TotalAllotted sums the targets of all budgets.
func TotalAllotted(budgets []core.Budget) decimal.Decimal {
	sum := decimal.Zero
	for _, b := range budgets {
		sum = sum.Add(b.Amount)
	}
	return sum
}

// TotalSpent sums the stored spend of all budgets.
func TotalSpent(budgets []core.Budget) decimal.Decimal {
	sum := decimal.Zero
	for _, b := range budgets {
		sum = sum.Add(b.Spent)
	}
	return sum
}
