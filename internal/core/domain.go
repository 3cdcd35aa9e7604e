package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type (
	// TransactionType partitions transactions and categories into the two
	// sides of the ledger.
	TransactionType string

	// Transaction is a single dated ledger record. Amount is always a
	// non-negative magnitude; the sign is derived from Type.
	Transaction struct {
		ID          int             `json:"Id"`
		Type        TransactionType `json:"type"`
		Amount      decimal.Decimal `json:"amount"`
		Category    string          `json:"category"`
		Description string          `json:"description"`
		Date        Date            `json:"date"`
		CreatedAt   time.Time       `json:"createdAt"`
	}

	// Budget is a spending ceiling for one category in one month. Spent is
	// stored alongside the target and reconciled against the ledger by the
	// transaction service.
	Budget struct {
		ID       int             `json:"Id"`
		Category string          `json:"category"`
		Amount   decimal.Decimal `json:"amount"`
		Spent    decimal.Decimal `json:"spent"`
		Month    Month           `json:"month"`
	}

	// SavingsGoal tracks progress toward a target amount. CurrentAmount only
	// grows, via contributions, and may exceed TargetAmount.
	SavingsGoal struct {
		ID            int             `json:"Id"`
		Name          string          `json:"name"`
		TargetAmount  decimal.Decimal `json:"targetAmount"`
		CurrentAmount decimal.Decimal `json:"currentAmount"`
		Deadline      Date            `json:"deadline"`
		CreatedAt     time.Time       `json:"createdAt"`
	}

	Category struct {
		ID   int             `json:"Id"`
		Name string          `json:"name"`
		Type TransactionType `json:"type"`
	}
)

func init() {
	// Amounts travel as bare JSON numbers at the store boundary.
	decimal.MarshalJSONWithoutQuotes = true
}

var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrValidation    = errors.New("validation failed")

	ErrEmptyDescription     = fmt.Errorf("%w: empty description", ErrValidation)
	ErrEmptyCategory        = fmt.Errorf("%w: empty category", ErrValidation)
	ErrEmptyName            = fmt.Errorf("%w: empty name", ErrValidation)
	ErrInvalidType          = fmt.Errorf("%w: type must be income or expense", ErrValidation)
	ErrZeroDate             = fmt.Errorf("%w: date is required", ErrValidation)
	ErrZeroMonth            = fmt.Errorf("%w: month is required", ErrValidation)
	ErrUnknownCategory      = fmt.Errorf("%w: unknown category", ErrValidation)
	ErrCategoryTypeMismatch = fmt.Errorf("%w: category type does not match", ErrValidation)
	ErrDuplicateBudget      = fmt.Errorf("%w: budget already exists for category and month", ErrValidation)
	ErrDuplicateCategory    = fmt.Errorf("%w: category name already exists for type", ErrValidation)
)

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: transaction amount must be positive", ErrValidation)
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}
	if t.Date.IsZero() {
		return ErrZeroDate
	}
	return nil
}

func (b Budget) Validate() error {
	if strings.TrimSpace(b.Category) == "" {
		return ErrEmptyCategory
	}
	if !b.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if b.Spent.IsNegative() {
		return fmt.Errorf("%w: spent cannot be negative", ErrValidation)
	}
	if b.Month.IsZero() {
		return ErrZeroMonth
	}
	return nil
}

func (g SavingsGoal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyName
	}
	if !g.TargetAmount.IsPositive() {
		return ErrInvalidAmount
	}
	if g.CurrentAmount.IsNegative() {
		return fmt.Errorf("%w: current amount cannot be negative", ErrValidation)
	}
	if g.Deadline.IsZero() {
		return ErrZeroDate
	}
	return nil
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if !c.Type.Valid() {
		return ErrInvalidType
	}
	return nil
}

// EntityID and WithID implement store.Entity for each record kind.

func (t Transaction) EntityID() int { return t.ID }
func (t Transaction) WithID(id int) Transaction {
	t.ID = id
	return t
}

func (b Budget) EntityID() int { return b.ID }
func (b Budget) WithID(id int) Budget {
	b.ID = id
	return b
}

func (g SavingsGoal) EntityID() int { return g.ID }
func (g SavingsGoal) WithID(id int) SavingsGoal {
	g.ID = id
	return g
}

func (c Category) EntityID() int { return c.ID }
func (c Category) WithID(id int) Category {
	c.ID = id
	return c
}
