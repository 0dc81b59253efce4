package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/kdennisod/cash-stuffing/internal/budget"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is an amount spent from a category.
type Expense struct {
	DefaultModel
	CategoryID  uuid.UUID       `gorm:"index"`
	Description string          `example:"Rent"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Position    int
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	return nil
}

// BeforeCreate checks that the expense fits into the remaining allocation
// of its category and appends it at the end.
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if err := e.DefaultModel.BeforeCreate(tx); err != nil {
		return err
	}

	var c Category
	err := tx.First(&c, "id = ?", e.CategoryID).Error
	if err != nil {
		return err
	}

	b, err := LoadBudget(tx, c.PeriodID)
	if err != nil {
		return err
	}

	err = budget.ValidateExpense(b, e.CategoryID, e.Description, e.Amount)
	if err != nil {
		return err
	}

	e.Position, err = nextPosition(tx, &Expense{}, "category_id", e.CategoryID)
	return err
}

// Domain converts the expense.
func (e Expense) Domain() budget.Expense {
	return budget.Expense{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
	}
}

// DeleteExpense deletes the expense from the category of the user.
func DeleteExpense(db *gorm.DB, userID, categoryID, id uuid.UUID) (Expense, Period, error) {
	c, p, err := FindCategory(db, userID, categoryID)
	if err != nil {
		return Expense{}, Period{}, err
	}

	for _, e := range c.Expenses {
		if e.ID == id {
			return e, p, db.Delete(&e).Error
		}
	}

	return Expense{}, Period{}, budget.ErrExpenseNotFound
}
