// Package seed bootstraps the record stores from bundled fixture data. The
// fixtures are decoded into fresh slices on every Load, so mutations in a
// store never reach the seed source.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"

	"fintrack/internal/core"
)

//go:embed data/*.json
var fixtures embed.FS

// Data holds one seed collection per record kind.
type Data struct {
	Transactions []core.Transaction
	Budgets      []core.Budget
	Goals        []core.SavingsGoal
	Categories   []core.Category
}

// Load decodes all bundled fixtures.
func Load() (Data, error) {
	var d Data
	if err := load("data/transactions.json", &d.Transactions); err != nil {
		return Data{}, err
	}
	if err := load("data/budgets.json", &d.Budgets); err != nil {
		return Data{}, err
	}
	if err := load("data/savings_goals.json", &d.Goals); err != nil {
		return Data{}, err
	}
	if err := load("data/categories.json", &d.Categories); err != nil {
		return Data{}, err
	}
	return d, nil
}

func load(name string, out any) error {
	raw, err := fixtures.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return nil
}
