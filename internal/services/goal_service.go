package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
	"fintrack/internal/events"
	"fintrack/internal/goal"
	"fintrack/internal/store"
)

// GoalService orchestrates savings goals. The current amount only ever moves
// through Contribute, so a goal's Open → Achieved transition is one-way.
type GoalService struct {
	goals  *store.Store[core.SavingsGoal]
	events *events.Client
}

func NewGoalService(goals *store.Store[core.SavingsGoal], eventsClient *events.Client) *GoalService {
	return &GoalService{goals: goals, events: eventsClient}
}

func (s *GoalService) List(ctx context.Context) []core.SavingsGoal {
	return s.goals.GetAll(ctx)
}

func (s *GoalService) Get(ctx context.Context, id int) (core.SavingsGoal, error) {
	return s.goals.GetByID(ctx, id)
}

func (s *GoalService) Create(ctx context.Context, g core.SavingsGoal) (core.SavingsGoal, error) {
	g.CurrentAmount = decimal.Zero
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now()
	}
	if err := g.Validate(); err != nil {
		return core.SavingsGoal{}, err
	}

	created, err := s.goals.Create(ctx, g)
	if err != nil {
		return core.SavingsGoal{}, fmt.Errorf("create savings goal: %w", err)
	}

	slog.InfoContext(ctx, "Savings goal created",
		"id", created.ID, "name", created.Name, "target", created.TargetAmount)
	publishChange(ctx, s.events, "goal", created.ID, events.ActionCreated)
	return created, nil
}

func (s *GoalService) Update(ctx context.Context, id int, patch core.SavingsGoalPatch) (core.SavingsGoal, error) {
	prev, err := s.goals.GetByID(ctx, id)
	if err != nil {
		return core.SavingsGoal{}, err
	}
	if err := patch.Apply(prev).Validate(); err != nil {
		return core.SavingsGoal{}, err
	}

	updated, err := s.goals.Update(ctx, id, patch.Apply)
	if err != nil {
		return core.SavingsGoal{}, err
	}

	slog.InfoContext(ctx, "Savings goal updated", "id", updated.ID)
	publishChange(ctx, s.events, "goal", updated.ID, events.ActionUpdated)
	return updated, nil
}

func (s *GoalService) Delete(ctx context.Context, id int) error {
	if _, err := s.goals.Delete(ctx, id); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Savings goal deleted", "id", id)
	publishChange(ctx, s.events, "goal", id, events.ActionDeleted)
	return nil
}

// Contribute adds amount to the goal's current total. A non-positive amount
// fails with core.ErrInvalidAmount and leaves the stored goal unchanged.
func (s *GoalService) Contribute(ctx context.Context, id int, amount decimal.Decimal) (core.SavingsGoal, error) {
	prev, err := s.goals.GetByID(ctx, id)
	if err != nil {
		return core.SavingsGoal{}, err
	}

	next, err := goal.Contribute(prev, amount)
	if err != nil {
		return core.SavingsGoal{}, err
	}

	updated, err := s.goals.Update(ctx, id, func(g core.SavingsGoal) core.SavingsGoal {
		g.CurrentAmount = next.CurrentAmount
		return g
	})
	if err != nil {
		return core.SavingsGoal{}, err
	}

	slog.InfoContext(ctx, "Contribution applied",
		"id", updated.ID, "amount", amount,
		"current", updated.CurrentAmount, "achieved", goal.IsAchieved(updated))
	publishChange(ctx, s.events, "goal", updated.ID, events.ActionContributed)
	return updated, nil
}

// Progress derives the completion view for every goal.
func (s *GoalService) Progress(ctx context.Context) []core.GoalProgress {
	all := s.goals.GetAll(ctx)
	out := make([]core.GoalProgress, 0, len(all))
	for _, g := range all {
		out = append(out, goal.ProgressOf(g))
	}
	return out
}
