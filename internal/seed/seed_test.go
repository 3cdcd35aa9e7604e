package seed

import (
	"testing"

	"fintrack/internal/core"
)

func TestLoad(t *testing.T) {
	d, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Transactions) == 0 || len(d.Budgets) == 0 || len(d.Goals) == 0 || len(d.Categories) == 0 {
		t.Fatalf("expected every collection populated: %d/%d/%d/%d",
			len(d.Transactions), len(d.Budgets), len(d.Goals), len(d.Categories))
	}
}

func TestFixturesValidate(t *testing.T) {
	d, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, tx := range d.Transactions {
		if err := tx.Validate(); err != nil {
			t.Errorf("transaction %d: %v", tx.ID, err)
		}
	}
	for _, b := range d.Budgets {
		if err := b.Validate(); err != nil {
			t.Errorf("budget %d: %v", b.ID, err)
		}
	}
	for _, g := range d.Goals {
		if err := g.Validate(); err != nil {
			t.Errorf("goal %d: %v", g.ID, err)
		}
	}
	for _, c := range d.Categories {
		if err := c.Validate(); err != nil {
			t.Errorf("category %d: %v", c.ID, err)
		}
	}
}

func TestFixturesReferenceKnownCategories(t *testing.T) {
	d, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byName := make(map[string]core.TransactionType, len(d.Categories))
	for _, c := range d.Categories {
		byName[c.Name] = c.Type
	}

	for _, tx := range d.Transactions {
		typ, ok := byName[tx.Category]
		if !ok {
			t.Errorf("transaction %d references unknown category %q", tx.ID, tx.Category)
			continue
		}
		if typ != tx.Type {
			t.Errorf("transaction %d: category %q is %s, record is %s", tx.ID, tx.Category, typ, tx.Type)
		}
	}
	for _, b := range d.Budgets {
		if typ, ok := byName[b.Category]; !ok || typ != core.Expense {
			t.Errorf("budget %d references %q, which is not an expense category", b.ID, b.Category)
		}
	}
}

func TestBudgetScopesAreUnique(t *testing.T) {
	d, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := make(map[string]bool)
	for _, b := range d.Budgets {
		key := b.Category + "|" + b.Month.String()
		if seen[key] {
			t.Errorf("duplicate budget scope %s", key)
		}
		seen[key] = true
	}
}

func TestLoadReturnsFreshSlices(t *testing.T) {
	first, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first.Transactions[0].Description = "mutated"

	second, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Transactions[0].Description == "mutated" {
		t.Fatal("Load must decode fresh slices on every call")
	}
}
