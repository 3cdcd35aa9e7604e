package services

import (
	"context"
	"time"

	"fintrack/internal/budget"
	"fintrack/internal/core"
	"fintrack/internal/goal"
	"fintrack/internal/ledger"
	"fintrack/internal/store"
)

// DashboardService composes the pure calculators into display-ready
// aggregates. Every value is recomputed from the stores on each call; no
// derived metric is cached.
type DashboardService struct {
	transactions *store.Store[core.Transaction]
	budgets      *store.Store[core.Budget]
	goals        *store.Store[core.SavingsGoal]
	recentLimit  int
	trendMonths  int
}

func NewDashboardService(
	transactions *store.Store[core.Transaction],
	budgets *store.Store[core.Budget],
	goals *store.Store[core.SavingsGoal],
	recentLimit, trendMonths int,
) *DashboardService {
	if recentLimit < 1 {
		recentLimit = 5
	}
	if trendMonths < 1 {
		trendMonths = 6
	}
	return &DashboardService{
		transactions: transactions,
		budgets:      budgets,
		goals:        goals,
		recentLimit:  recentLimit,
		trendMonths:  trendMonths,
	}
}

// Overview summarizes the month containing now: income, expense, net, the
// expense trend against the previous month, total savings across goals, the
// budget alert count, and the most recent transactions.
func (s *DashboardService) Overview(ctx context.Context, now time.Time) core.Overview {
	txs := s.transactions.GetAll(ctx)

	current := ledger.MonthWindow(now.Year(), int(now.Month()))
	prevMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, -1, 0)
	previous := ledger.MonthWindow(prevMonth.Year(), int(prevMonth.Month()))

	income := ledger.SumByType(txs, core.Income, current)
	expense := ledger.SumByType(txs, core.Expense, current)
	prevExpense := ledger.SumByType(txs, core.Expense, previous)

	return core.Overview{
		Month:        core.MonthOf(now),
		Income:       income,
		Expense:      expense,
		Net:          ledger.Net(income, expense),
		ExpenseTrend: ledger.TrendPercent(expense, prevExpense),
		TotalSavings: goal.TotalSaved(s.goals.GetAll(ctx)),
		AlertCount:   len(budget.Alerts(s.budgets.GetAll(ctx))),
		Recent:       ledger.Recent(txs, s.recentLimit),
	}
}

// MonthlyReport is the income/expense trend series for the most recent
// months, oldest first. A non-positive months falls back to the configured
// default.
func (s *DashboardService) MonthlyReport(ctx context.Context, months int, now time.Time) []ledger.MonthTotal {
	if months < 1 {
		months = s.trendMonths
	}
	return ledger.MonthlyTotals(s.transactions.GetAll(ctx), months, now)
}

// CategoryReport is the expense breakdown for one calendar month, largest
// total first. Categories without spend are omitted.
func (s *DashboardService) CategoryReport(ctx context.Context, year, month int) []core.CategoryTotal {
	breakdown := ledger.CategoryBreakdown(s.transactions.GetAll(ctx), ledger.MonthWindow(year, month))
	return ledger.SortedCategoryTotals(breakdown)
}
