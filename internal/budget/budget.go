// Package budget holds the domain of Cash Stuffing: period budgets, their
// categories (envelopes) and the expenses recorded against them.
//
// All functions in this package are pure. They never modify the budget
// that is passed in, but return an updated copy instead.
package budget

import (
	"github.com/google/uuid"
	"github.com/kdennisod/cash-stuffing/internal/types"
	"github.com/shopspring/decimal"
)

// Expense is a single amount spent from a category.
type Expense struct {
	ID          uuid.UUID       `json:"id" example:"c4d7a5e4-7b65-4a1e-9d8e-4b2f1d5e8a11"`
	Description string          `json:"description" example:"Rent"`
	Amount      decimal.Decimal `json:"amount" example:"500" swaggertype:"string"`
}

// Category is an envelope that a part of the period total is allocated to.
type Category struct {
	ID              uuid.UUID       `json:"id" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	Name            string          `json:"name" example:"Miete"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount" example:"500" swaggertype:"string"`
	SpentAmount     decimal.Decimal `json:"spent_amount" example:"120.5" swaggertype:"string"`
	Icon            string          `json:"icon" example:"fas fa-home"`
	Expenses        []Expense       `json:"expenses"`
}

// Remaining is the part of the allocation that has not been spent yet.
//
// It is not clamped, a category can be overspent if its allocation is
// reduced after expenses have been recorded.
func (c Category) Remaining() decimal.Decimal {
	return c.AllocatedAmount.Sub(c.SpentAmount)
}

// Expense returns the expense with the ID.
func (c Category) Expense(id uuid.UUID) (Expense, bool) {
	for _, e := range c.Expenses {
		if e.ID == id {
			return e, true
		}
	}

	return Expense{}, false
}

func (c Category) clone() Category {
	if c.Expenses != nil {
		c.Expenses = append(make([]Expense, 0, len(c.Expenses)), c.Expenses...)
	}

	return c
}

// PeriodBudget is the budget for one period.
type PeriodBudget struct {
	ID              uuid.UUID       `json:"id" example:"8d2e7bd1-4f2e-4a65-9d8c-34a1c7d2e0f4"`
	TotalAmount     decimal.Decimal `json:"totalAmount" example:"1000" swaggertype:"string"`
	AllocatedAmount decimal.Decimal `json:"allocatedAmount" example:"500" swaggertype:"string"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses" example:"120.5" swaggertype:"string"`
	Categories      []Category      `json:"categories"`
}

// EmptyPeriod returns the zeroed budget used for periods that have never
// been written.
func EmptyPeriod() PeriodBudget {
	return PeriodBudget{
		TotalAmount:     decimal.Zero,
		AllocatedAmount: decimal.Zero,
		TotalExpenses:   decimal.Zero,
		Categories:      []Category{},
	}
}

// Headroom is the part of the total that is not allocated to any category.
func (b PeriodBudget) Headroom() decimal.Decimal {
	return b.TotalAmount.Sub(b.AllocatedAmount)
}

// Spendable is the part of the total that has not been spent yet.
func (b PeriodBudget) Spendable() decimal.Decimal {
	return b.TotalAmount.Sub(b.TotalExpenses)
}

// Category returns the category with the ID.
func (b PeriodBudget) Category(id uuid.UUID) (Category, bool) {
	_, c, ok := b.find(id)
	return c, ok
}

func (b PeriodBudget) find(id uuid.UUID) (int, Category, bool) {
	for i, c := range b.Categories {
		if c.ID == id {
			return i, c, true
		}
	}

	return -1, Category{}, false
}

// Clone returns a deep copy of the budget.
func (b PeriodBudget) Clone() PeriodBudget {
	categories := make([]Category, 0, len(b.Categories))
	for _, c := range b.Categories {
		categories = append(categories, c.clone())
	}

	b.Categories = categories
	return b
}

// Data is the mapping of periods to their budgets.
type Data map[types.Period]PeriodBudget

// Get returns the budget for a period. For periods without data, an
// empty budget is returned.
func (d Data) Get(p types.Period) PeriodBudget {
	b, ok := d[p]
	if !ok {
		return EmptyPeriod()
	}

	return Recalculate(b)
}

// Clone returns a deep copy of the data.
func (d Data) Clone() Data {
	out := make(Data, len(d))
	for p, b := range d {
		out[p] = b.Clone()
	}

	return out
}
