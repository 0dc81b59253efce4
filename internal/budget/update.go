package budget

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// ParseAmount parses a positive amount as entered by a user.
//
// Both "." and "," are accepted as decimal separator. The result is
// rounded to cents.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := parse(s)
	if err != nil {
		return decimal.Zero, err
	}

	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: '%s'", ErrInvalidAmount, strings.TrimSpace(s))
	}

	return d, nil
}

// ParseTotal parses a period total. Zero is a valid total.
func ParseTotal(s string) (decimal.Decimal, error) {
	d, err := parse(s)
	if err != nil {
		return decimal.Zero, err
	}

	if d.IsNegative() {
		return decimal.Zero, ErrNegativeTotal
	}

	return d, nil
}

func parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: '%s'", ErrInvalidAmount, s)
	}

	return d.Round(2), nil
}

// ResolveName returns the name for a new category. Free text wins over
// the preset.
func ResolveName(name, preset string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}

	return strings.TrimSpace(preset)
}

// Recalculate recomputes all derived amounts of a budget.
func Recalculate(b PeriodBudget) PeriodBudget {
	b = b.Clone()

	b.AllocatedAmount = decimal.Zero
	b.TotalExpenses = decimal.Zero

	for i, c := range b.Categories {
		c.SpentAmount = decimal.Zero
		for _, e := range c.Expenses {
			c.SpentAmount = c.SpentAmount.Add(e.Amount)
		}

		if c.Expenses == nil {
			c.Expenses = []Expense{}
		}

		b.AllocatedAmount = b.AllocatedAmount.Add(c.AllocatedAmount)
		b.TotalExpenses = b.TotalExpenses.Add(c.SpentAmount)
		b.Categories[i] = c
	}

	return b
}

// SetTotal sets the total amount of the budget.
//
// The total can not be lowered below the amount already allocated to
// categories.
func SetTotal(b PeriodBudget, total decimal.Decimal) (PeriodBudget, error) {
	if total.IsNegative() {
		return b, ErrNegativeTotal
	}

	r := Recalculate(b)
	if total.LessThan(r.AllocatedAmount) {
		return b, fmt.Errorf("%w: %s are allocated", ErrBelowAllocated, r.AllocatedAmount.StringFixed(2))
	}

	r.TotalAmount = total
	return r, nil
}

// ValidateCategory checks if a category with the name and allocation can be
// added to the budget.
func ValidateCategory(b PeriodBudget, name string, amount decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return ErrMissingName
	}

	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	allocated := Recalculate(b).AllocatedAmount
	if allocated.Add(amount).GreaterThan(b.TotalAmount) {
		return fmt.Errorf("%w: %s of %s are already allocated", ErrExceedsTotal, allocated.StringFixed(2), b.TotalAmount.StringFixed(2))
	}

	return nil
}

// AddCategory appends a category to the budget.
//
// The category starts without expenses. If it has no icon, the icon is
// looked up by its name.
func AddCategory(b PeriodBudget, c Category) (PeriodBudget, error) {
	c.Name = strings.TrimSpace(c.Name)
	if err := ValidateCategory(b, c.Name, c.AllocatedAmount); err != nil {
		return b, err
	}

	if c.Icon == "" {
		c.Icon = IconFor(c.Name)
	}

	c.Expenses = []Expense{}
	c.SpentAmount = decimal.Zero

	b = b.Clone()
	b.Categories = append(b.Categories, c)
	return Recalculate(b), nil
}

// RemoveCategory removes a category together with all its expenses.
func RemoveCategory(b PeriodBudget, id uuid.UUID) (PeriodBudget, error) {
	i, _, ok := b.find(id)
	if !ok {
		return b, ErrCategoryNotFound
	}

	b = b.Clone()
	b.Categories = slices.Delete(b.Categories, i, i+1)
	return Recalculate(b), nil
}

// ValidateExpense checks if an expense can be recorded for a category.
func ValidateExpense(b PeriodBudget, categoryID uuid.UUID, description string, amount decimal.Decimal) error {
	if strings.TrimSpace(description) == "" {
		return ErrMissingDescription
	}

	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	_, c, ok := Recalculate(b).find(categoryID)
	if !ok {
		return ErrCategoryNotFound
	}

	if c.SpentAmount.Add(amount).GreaterThan(c.AllocatedAmount) {
		return fmt.Errorf("%w: %s of %s remaining in %s", ErrExceedsAllocation, c.Remaining().StringFixed(2), c.AllocatedAmount.StringFixed(2), c.Name)
	}

	return nil
}

// AddExpense appends an expense to a category.
func AddExpense(b PeriodBudget, categoryID uuid.UUID, e Expense) (PeriodBudget, error) {
	e.Description = strings.TrimSpace(e.Description)
	if err := ValidateExpense(b, categoryID, e.Description, e.Amount); err != nil {
		return b, err
	}

	b = b.Clone()
	i, c, _ := b.find(categoryID)
	c.Expenses = append(c.Expenses, e)
	b.Categories[i] = c

	return Recalculate(b), nil
}

// RemoveExpense removes an expense from a category.
func RemoveExpense(b PeriodBudget, categoryID, expenseID uuid.UUID) (PeriodBudget, error) {
	i, c, ok := b.find(categoryID)
	if !ok {
		return b, ErrCategoryNotFound
	}

	j := slices.IndexFunc(c.Expenses, func(e Expense) bool { return e.ID == expenseID })
	if j < 0 {
		return b, ErrExpenseNotFound
	}

	b = b.Clone()
	c = b.Categories[i]
	c.Expenses = slices.Delete(c.Expenses, j, j+1)
	b.Categories[i] = c

	return Recalculate(b), nil
}
