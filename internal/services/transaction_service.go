package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/events"
	"fintrack/internal/ledger"
	"fintrack/internal/store"
)

// TransactionService owns the ledger's write path. Besides CRUD it keeps the
// matching budget's spent in sync: after every expense mutation the affected
// (category, month) budget is recomputed from the ledger, so spent never
// drifts from actual transaction sums.
type TransactionService struct {
	transactions *store.Store[core.Transaction]
	budgets      *store.Store[core.Budget]
	categories   *store.Store[core.Category]
	events       *events.Client
}

func NewTransactionService(
	transactions *store.Store[core.Transaction],
	budgets *store.Store[core.Budget],
	categories *store.Store[core.Category],
	eventsClient *events.Client,
) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		budgets:      budgets,
		categories:   categories,
		events:       eventsClient,
	}
}

func (s *TransactionService) List(ctx context.Context) []core.Transaction {
	return s.transactions.GetAll(ctx)
}

func (s *TransactionService) Get(ctx context.Context, id int) (core.Transaction, error) {
	return s.transactions.GetByID(ctx, id)
}

func (s *TransactionService) ByCategory(ctx context.Context, category string) []core.Transaction {
	return s.transactions.Filter(ctx, func(t core.Transaction) bool {
		return t.Category == category
	})
}

func (s *TransactionService) ByType(ctx context.Context, typ core.TransactionType) []core.Transaction {
	return s.transactions.Filter(ctx, func(t core.Transaction) bool {
		return t.Type == typ
	})
}

// ByDateRange returns transactions within [start, end], inclusive.
func (s *TransactionService) ByDateRange(ctx context.Context, start, end core.Date) []core.Transaction {
	w := ledger.Window{Start: start.Time, End: end.Time}
	return s.transactions.Filter(ctx, func(t core.Transaction) bool {
		return w.Contains(t.Date.Time)
	})
}

func (s *TransactionService) Create(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	if _, err := findCategory(ctx, s.categories, t.Category, t.Type); err != nil {
		return core.Transaction{}, err
	}

	created, err := s.transactions.Create(ctx, t)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	s.reconcileBudget(ctx, created.Category, core.MonthOf(created.Date.Time))

	slog.InfoContext(ctx, "Transaction created",
		"id", created.ID, "type", created.Type,
		"category", created.Category, "amount", created.Amount)
	publishChange(ctx, s.events, "transaction", created.ID, events.ActionCreated)
	return created, nil
}

func (s *TransactionService) Update(ctx context.Context, id int, patch core.TransactionPatch) (core.Transaction, error) {
	prev, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return core.Transaction{}, err
	}

	merged := patch.Apply(prev)
	if err := merged.Validate(); err != nil {
		return core.Transaction{}, err
	}
	if _, err := findCategory(ctx, s.categories, merged.Category, merged.Type); err != nil {
		return core.Transaction{}, err
	}

	updated, err := s.transactions.Update(ctx, id, patch.Apply)
	if err != nil {
		return core.Transaction{}, err
	}

	// Both the previous and the new scope may have changed totals.
	s.reconcileBudget(ctx, prev.Category, core.MonthOf(prev.Date.Time))
	if updated.Category != prev.Category || core.MonthOf(updated.Date.Time) != core.MonthOf(prev.Date.Time) {
		s.reconcileBudget(ctx, updated.Category, core.MonthOf(updated.Date.Time))
	}

	slog.InfoContext(ctx, "Transaction updated", "id", updated.ID)
	publishChange(ctx, s.events, "transaction", updated.ID, events.ActionUpdated)
	return updated, nil
}

func (s *TransactionService) Delete(ctx context.Context, id int) error {
	prev, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.transactions.Delete(ctx, id); err != nil {
		return err
	}

	s.reconcileBudget(ctx, prev.Category, core.MonthOf(prev.Date.Time))

	slog.InfoContext(ctx, "Transaction deleted", "id", id)
	publishChange(ctx, s.events, "transaction", id, events.ActionDeleted)
	return nil
}

// reconcileBudget recomputes the stored spent of the budget covering the
// given category and month from the ledger. A missing budget is a no-op.
func (s *TransactionService) reconcileBudget(ctx context.Context, category string, month core.Month) {
	targets := s.budgets.Filter(ctx, func(b core.Budget) bool {
		return b.Category == category && b.Month == month
	})
	if len(targets) == 0 {
		return
	}

	scoped := s.transactions.Filter(ctx, func(t core.Transaction) bool {
		return t.Category == category
	})
	spent := ledger.SumByType(scoped, core.Expense, ledger.WindowForMonth(month))

	for _, target := range targets {
		if _, err := s.budgets.Update(ctx, target.ID, func(b core.Budget) core.Budget {
			b.Spent = spent
			return b
		}); err != nil {
			slog.ErrorContext(ctx, "Budget reconciliation failed",
				"budget_id", target.ID, "category", category,
				"month", month.String(), "error", err)
			continue
		}
		slog.DebugContext(ctx, "Budget reconciled",
			"budget_id", target.ID, "category", category,
			"month", month.String(), "spent", spent)
	}
}
