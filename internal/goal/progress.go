// Package goal computes savings-goal completion and applies contributions.
package goal

import (
	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

var hundred = decimal.NewFromInt(100)

// PercentComplete is current/target in percent, capped at 100. A goal with a
// non-positive target reads as 0% rather than faulting.
func PercentComplete(g core.SavingsGoal) float64 {
	if !g.TargetAmount.IsPositive() {
		return 0
	}
	pct := g.CurrentAmount.Div(g.TargetAmount).Mul(hundred)
	if pct.GreaterThan(hundred) {
		pct = hundred
	}
	f, _ := pct.Float64()
	return f
}

// Remaining is the amount still to save, floored at zero.
func Remaining(g core.SavingsGoal) decimal.Decimal {
	r := g.TargetAmount.Sub(g.CurrentAmount)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

// Contribute returns a copy of the goal with the amount added. Contributions
// are unconditionally additive: the current amount is never clamped at the
// target, so a goal can be over-achieved. A non-positive amount fails with
// core.ErrInvalidAmount and leaves the goal untouched.
func Contribute(g core.SavingsGoal, amount decimal.Decimal) (core.SavingsGoal, error) {
	if !amount.IsPositive() {
		return g, core.ErrInvalidAmount
	}
	g.CurrentAmount = g.CurrentAmount.Add(amount)
	return g, nil
}

// IsAchieved reports whether the goal has reached its target. There is no
// reverse transition: no withdrawal operation exists.
func IsAchieved(g core.SavingsGoal) bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// ProgressOf derives the full completion view for one goal.
func ProgressOf(g core.SavingsGoal) core.GoalProgress {
	return core.GoalProgress{
		Goal:            g,
		PercentComplete: PercentComplete(g),
		Remaining:       Remaining(g),
		Achieved:        IsAchieved(g),
	}
}

// TotalSaved sums the current amounts across all goals.
func TotalSaved(goals []core.SavingsGoal) decimal.Decimal {
	sum := decimal.Zero
	for _, g := range goals {
		sum = sum.Add(g.CurrentAmount)
	}
	return sum
}
