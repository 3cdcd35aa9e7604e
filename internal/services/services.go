// Package services orchestrates store operations, caller-side validation,
// and event publishing. Stores stay generic: every required-field check and
// cross-entity rule lives here.
package services

import (
	"context"
	"log/slog"
	"strings"

	"fintrack/internal/core"
	"fintrack/internal/events"
	"fintrack/internal/store"
)

// publishChange sends a record-change event when a client is wired. Event
// failure never fails the originating request.
func publishChange(ctx context.Context, client *events.Client, entity string, id int, action events.Action) {
	if client == nil {
		return
	}
	if err := client.PublishRecordChange(ctx, entity, id, action); err != nil {
		slog.ErrorContext(ctx, "Failed to publish record change",
			"entity", entity, "id", id, "action", action, "error", err)
	}
}

// findCategory resolves a category by name and checks that its type allows
// the referencing record. Category type partitions the ledger: income
// records may only reference income categories, expense records expense
// categories.
func findCategory(ctx context.Context, cats *store.Store[core.Category], name string, typ core.TransactionType) (core.Category, error) {
	matches := cats.Filter(ctx, func(c core.Category) bool {
		return strings.EqualFold(c.Name, name)
	})
	if len(matches) == 0 {
		return core.Category{}, core.ErrUnknownCategory
	}
	if matches[0].Type != typ {
		return core.Category{}, core.ErrCategoryTypeMismatch
	}
	return matches[0], nil
}
