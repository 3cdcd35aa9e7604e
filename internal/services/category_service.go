package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"fintrack/internal/core"
	"fintrack/internal/events"
	"fintrack/internal/store"
)

// CategoryService keeps category names unique within each type.
type CategoryService struct {
	categories *store.Store[core.Category]
	events     *events.Client
}

func NewCategoryService(categories *store.Store[core.Category], eventsClient *events.Client) *CategoryService {
	return &CategoryService{categories: categories, events: eventsClient}
}

func (s *CategoryService) List(ctx context.Context) []core.Category {
	return s.categories.GetAll(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int) (core.Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *CategoryService) ByType(ctx context.Context, typ core.TransactionType) []core.Category {
	return s.categories.Filter(ctx, func(c core.Category) bool {
		return c.Type == typ
	})
}

func (s *CategoryService) Create(ctx context.Context, c core.Category) (core.Category, error) {
	if err := c.Validate(); err != nil {
		return core.Category{}, err
	}
	if s.exists(ctx, c.Name, c.Type, 0) {
		return core.Category{}, core.ErrDuplicateCategory
	}

	created, err := s.categories.Create(ctx, c)
	if err != nil {
		return core.Category{}, fmt.Errorf("create category: %w", err)
	}

	slog.InfoContext(ctx, "Category created",
		"id", created.ID, "name", created.Name, "type", created.Type)
	publishChange(ctx, s.events, "category", created.ID, events.ActionCreated)
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, id int, patch core.CategoryPatch) (core.Category, error) {
	prev, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return core.Category{}, err
	}

	merged := patch.Apply(prev)
	if err := merged.Validate(); err != nil {
		return core.Category{}, err
	}
	if s.exists(ctx, merged.Name, merged.Type, id) {
		return core.Category{}, core.ErrDuplicateCategory
	}

	updated, err := s.categories.Update(ctx, id, patch.Apply)
	if err != nil {
		return core.Category{}, err
	}

	slog.InfoContext(ctx, "Category updated", "id", updated.ID)
	publishChange(ctx, s.events, "category", updated.ID, events.ActionUpdated)
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int) error {
	if _, err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Category deleted", "id", id)
	publishChange(ctx, s.events, "category", id, events.ActionDeleted)
	return nil
}

func (s *CategoryService) exists(ctx context.Context, name string, typ core.TransactionType, excludeID int) bool {
	matches := s.categories.Filter(ctx, func(c core.Category) bool {
		return c.Type == typ && strings.EqualFold(c.Name, name) && c.ID != excludeID
	})
	return len(matches) > 0
}
