package core

import "github.com/shopspring/decimal"

// CategoryTotal is an amount aggregated by category name.
type CategoryTotal struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// BudgetStatus is a budget plus its derived tracking metrics.
type BudgetStatus struct {
	Budget      Budget          `json:"budget"`
	Remaining   decimal.Decimal `json:"remaining"`
	Utilization float64         `json:"utilization"`
	OverBudget  bool            `json:"overBudget"`
	Alert       bool            `json:"alert"`
}

// GoalProgress is a savings goal plus its derived completion metrics.
type GoalProgress struct {
	Goal            SavingsGoal     `json:"goal"`
	PercentComplete float64         `json:"percentComplete"`
	Remaining       decimal.Decimal `json:"remaining"`
	Achieved        bool            `json:"achieved"`
}

// Overview is the display-ready summary for the current month.
type Overview struct {
	Month        Month           `json:"month"`
	Income       decimal.Decimal `json:"income"`
	Expense      decimal.Decimal `json:"expense"`
	Net          decimal.Decimal `json:"net"`
	ExpenseTrend float64         `json:"expenseTrend"`
	TotalSavings decimal.Decimal `json:"totalSavings"`
	AlertCount   int             `json:"alertCount"`
	Recent       []Transaction   `json:"recent"`
}
