package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/kdennisod/cash-stuffing/internal/budget"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Category is an envelope of a period.
type Category struct {
	DefaultModel
	PeriodID  uuid.UUID       `gorm:"index"`
	Name      string          `example:"Miete"`
	Allocated decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Icon      string          `example:"fas fa-home"`
	Position  int
	Expenses  []Expense
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Icon == "" {
		c.Icon = budget.IconFor(c.Name)
	}

	return nil
}

// BeforeCreate checks that the allocation fits into the total of the period
// and appends the category at the end.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if err := c.DefaultModel.BeforeCreate(tx); err != nil {
		return err
	}

	b, err := LoadBudget(tx, c.PeriodID)
	if err != nil {
		return err
	}

	err = budget.ValidateCategory(b, c.Name, c.Allocated)
	if err != nil {
		return err
	}

	c.Position, err = nextPosition(tx, &Category{}, "period_id", c.PeriodID)
	return err
}

// Domain converts the category with its preloaded expenses.
func (c Category) Domain() budget.Category {
	out := budget.Category{
		ID:              c.ID,
		Name:            c.Name,
		AllocatedAmount: c.Allocated,
		SpentAmount:     decimal.Zero,
		Icon:            c.Icon,
		Expenses:        make([]budget.Expense, 0, len(c.Expenses)),
	}

	for _, e := range c.Expenses {
		out.Expenses = append(out.Expenses, e.Domain())
		out.SpentAmount = out.SpentAmount.Add(e.Amount)
	}

	return out
}

// FindCategory returns the category with the ID if it belongs to a period of the user.
func FindCategory(db *gorm.DB, userID, id uuid.UUID) (Category, Period, error) {
	var c Category
	err := db.Preload("Expenses").First(&c, "id = ?", id).Error
	if err != nil {
		return Category{}, Period{}, err
	}

	var p Period
	err = db.First(&p, "id = ? AND user_id = ?", c.PeriodID, userID).Error
	if err != nil {
		// Categories of other users do not exist for this user
		return Category{}, Period{}, budget.ErrCategoryNotFound
	}

	return c, p, nil
}

// DeleteCategory deletes the category of the user together with its expenses.
func DeleteCategory(db *gorm.DB, userID, id uuid.UUID) (Category, Period, error) {
	c, p, err := FindCategory(db, userID, id)
	if err != nil {
		return Category{}, Period{}, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(&Expense{CategoryID: c.ID}).Delete(&Expense{}).Error; err != nil {
			return err
		}

		return tx.Delete(&c).Error
	})

	return c, p, err
}
