package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"fintrack/internal/budget"
	"fintrack/internal/core"
	"fintrack/internal/events"
	"fintrack/internal/ledger"
	"fintrack/internal/store"
)

// BudgetService enforces the creation workflow rules the store deliberately
// does not: one budget per (category, month), expense categories only, and a
// spent figure seeded from the ledger rather than trusted from the caller.
type BudgetService struct {
	budgets      *store.Store[core.Budget]
	categories   *store.Store[core.Category]
	transactions *store.Store[core.Transaction]
	events       *events.Client
}

func NewBudgetService(
	budgets *store.Store[core.Budget],
	categories *store.Store[core.Category],
	transactions *store.Store[core.Transaction],
	eventsClient *events.Client,
) *BudgetService {
	return &BudgetService{
		budgets:      budgets,
		categories:   categories,
		transactions: transactions,
		events:       eventsClient,
	}
}

func (s *BudgetService) List(ctx context.Context) []core.Budget {
	return s.budgets.GetAll(ctx)
}

func (s *BudgetService) Get(ctx context.Context, id int) (core.Budget, error) {
	return s.budgets.GetByID(ctx, id)
}

func (s *BudgetService) ByMonth(ctx context.Context, month core.Month) []core.Budget {
	return s.budgets.Filter(ctx, func(b core.Budget) bool {
		return b.Month == month
	})
}

func (s *BudgetService) ByCategory(ctx context.Context, category string) []core.Budget {
	return s.budgets.Filter(ctx, func(b core.Budget) bool {
		return b.Category == category
	})
}

func (s *BudgetService) Create(ctx context.Context, b core.Budget) (core.Budget, error) {
	// Spent is derived, never taken from the caller.
	b.Spent = s.spentFromLedger(ctx, b.Category, b.Month)

	if err := b.Validate(); err != nil {
		return core.Budget{}, err
	}
	if _, err := findCategory(ctx, s.categories, b.Category, core.Expense); err != nil {
		return core.Budget{}, err
	}
	if s.exists(ctx, b.Category, b.Month, 0) {
		return core.Budget{}, core.ErrDuplicateBudget
	}

	created, err := s.budgets.Create(ctx, b)
	if err != nil {
		return core.Budget{}, fmt.Errorf("create budget: %w", err)
	}

	slog.InfoContext(ctx, "Budget created",
		"id", created.ID, "category", created.Category,
		"month", created.Month.String(), "amount", created.Amount)
	publishChange(ctx, s.events, "budget", created.ID, events.ActionCreated)
	return created, nil
}

func (s *BudgetService) Update(ctx context.Context, id int, patch core.BudgetPatch) (core.Budget, error) {
	prev, err := s.budgets.GetByID(ctx, id)
	if err != nil {
		return core.Budget{}, err
	}

	merged := patch.Apply(prev)
	if err := merged.Validate(); err != nil {
		return core.Budget{}, err
	}
	if _, err := findCategory(ctx, s.categories, merged.Category, core.Expense); err != nil {
		return core.Budget{}, err
	}
	if s.exists(ctx, merged.Category, merged.Month, id) {
		return core.Budget{}, core.ErrDuplicateBudget
	}

	scopeChanged := merged.Category != prev.Category || merged.Month != prev.Month
	updated, err := s.budgets.Update(ctx, id, func(b core.Budget) core.Budget {
		b = patch.Apply(b)
		if scopeChanged {
			b.Spent = s.spentFromLedger(ctx, b.Category, b.Month)
		}
		return b
	})
	if err != nil {
		return core.Budget{}, err
	}

	slog.InfoContext(ctx, "Budget updated", "id", updated.ID)
	publishChange(ctx, s.events, "budget", updated.ID, events.ActionUpdated)
	return updated, nil
}

func (s *BudgetService) Delete(ctx context.Context, id int) error {
	if _, err := s.budgets.Delete(ctx, id); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Budget deleted", "id", id)
	publishChange(ctx, s.events, "budget", id, events.ActionDeleted)
	return nil
}

// Statuses derives the tracking view for every budget.
func (s *BudgetService) Statuses(ctx context.Context) []core.BudgetStatus {
	all := s.budgets.GetAll(ctx)
	out := make([]core.BudgetStatus, 0, len(all))
	for _, b := range all {
		out = append(out, budget.StatusOf(b))
	}
	return out
}

// AlertCount is the number of budgets above the attention threshold.
func (s *BudgetService) AlertCount(ctx context.Context) int {
	return len(budget.Alerts(s.budgets.GetAll(ctx)))
}

// exists reports whether another budget already covers (category, month).
func (s *BudgetService) exists(ctx context.Context, category string, month core.Month, excludeID int) bool {
	matches := s.budgets.Filter(ctx, func(b core.Budget) bool {
		return b.Category == category && b.Month == month && b.ID != excludeID
	})
	return len(matches) > 0
}

func (s *BudgetService) spentFromLedger(ctx context.Context, category string, month core.Month) decimal.Decimal {
	scoped := s.transactions.Filter(ctx, func(t core.Transaction) bool {
		return t.Category == category
	})
	return ledger.SumByType(scoped, core.Expense, ledger.WindowForMonth(month))
}
