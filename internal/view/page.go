// Package view maps the state of a budget to declarative view models and
// renders them.
package view

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/kdennisod/cash-stuffing/internal/budget"
	"github.com/kdennisod/cash-stuffing/internal/types"
)

// Summary shows the figures of the whole period.
type Summary struct {
	Total     string
	Allocated string
	Expenses  string

	// Remaining is the part of the total not allocated to any category.
	Remaining string

	// Spendable is the part of the total not spent yet.
	Spendable string
}

// ExpenseItem is one expense in the list of a category.
type ExpenseItem struct {
	ID          uuid.UUID
	Description string
	Amount      string
}

// ExpenseForm holds the values of the add-expense form of a category.
type ExpenseForm struct {
	Description string
	Amount      string
}

// Forms maps category IDs to their pre-filled expense forms.
type Forms map[uuid.UUID]ExpenseForm

// CategoryItem is one category in the list.
type CategoryItem struct {
	ID        uuid.UUID
	Name      string
	Icon      string
	Allocated string
	Spent     string
	Remaining string
	Overspent bool
	Expenses  []ExpenseItem
	Form      ExpenseForm
}

// Page is the complete view of a period.
type Page struct {
	Period     types.Period
	Title      string
	Summary    Summary
	Categories []CategoryItem
	Presets    []budget.Preset
	Busy       bool
}

// Build maps a period budget to its page. Derived amounts are recalculated
// from the expenses before they are displayed.
func Build(f *Formatter, period types.Period, b budget.PeriodBudget, forms Forms, busy bool) Page {
	b = budget.Recalculate(b)

	page := Page{
		Period: period,
		Title:  fmt.Sprintf("%s %d", MonthName(period.Month), period.Year),
		Summary: Summary{
			Total:     f.Money(b.TotalAmount),
			Allocated: f.Money(b.AllocatedAmount),
			Expenses:  f.Money(b.TotalExpenses),
			Remaining: f.Money(b.Headroom()),
			Spendable: f.Money(b.Spendable()),
		},
		Categories: make([]CategoryItem, 0, len(b.Categories)),
		Presets:    budget.Presets(),
		Busy:       busy,
	}

	for _, c := range b.Categories {
		item := CategoryItem{
			ID:        c.ID,
			Name:      c.Name,
			Icon:      c.Icon,
			Allocated: f.Money(c.AllocatedAmount),
			Spent:     f.Money(c.SpentAmount),
			Remaining: f.Money(c.Remaining()),
			Overspent: c.Remaining().IsNegative(),
			Expenses:  make([]ExpenseItem, 0, len(c.Expenses)),
			Form:      forms[c.ID],
		}

		for _, e := range c.Expenses {
			item.Expenses = append(item.Expenses, ExpenseItem{
				ID:          e.ID,
				Description: e.Description,
				Amount:      f.Money(e.Amount),
			})
		}

		page.Categories = append(page.Categories, item)
	}

	return page
}
