// Package events publishes changes of budgets to a message broker.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type is the kind of change.
type Type string

const (
	TotalSet        Type = "budget.total_set"
	DataReplaced    Type = "budget.data_replaced"
	CategoryAdded   Type = "category.added"
	CategoryDeleted Type = "category.deleted"
	ExpenseAdded    Type = "expense.added"
	ExpenseDeleted  Type = "expense.deleted"
	ReceiptScanned  Type = "receipt.scanned"
)

// Event describes a change of a budget.
type Event struct {
	Type       Type             `json:"type"`
	UserID     uuid.UUID        `json:"userId"`
	Period     string           `json:"period,omitempty"`
	CategoryID *uuid.UUID       `json:"categoryId,omitempty"`
	ExpenseID  *uuid.UUID       `json:"expenseId,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Timestamp  time.Time        `json:"timestamp"`
}

// New returns an event of the type for the user at the current time.
func New(t Type, userID uuid.UUID) Event {
	return Event{
		Type:      t,
		UserID:    userID,
		Timestamp: time.Now().In(time.UTC),
	}
}

// WithCategory sets the category of the event.
func (e Event) WithCategory(id uuid.UUID) Event {
	e.CategoryID = &id
	return e
}

// WithExpense sets the expense of the event.
func (e Event) WithExpense(id uuid.UUID) Event {
	e.ExpenseID = &id
	return e
}

// WithAmount sets the amount of the event.
func (e Event) WithAmount(amount decimal.Decimal) Event {
	e.Amount = &amount
	return e
}

// WithPeriod sets the period key of the event.
func (e Event) WithPeriod(key string) Event {
	e.Period = key
	return e
}

// ToJSON converts the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher publishes events.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Noop discards all events.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close() error { return nil }
