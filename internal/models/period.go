package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kdennisod/cash-stuffing/internal/budget"
	"github.com/kdennisod/cash-stuffing/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Period is the budget of one user for one month.
type Period struct {
	DefaultModel
	UserID     uuid.UUID       `gorm:"uniqueIndex:period_user_month"`
	User       User            `json:"-"`
	Year       int             `gorm:"uniqueIndex:period_user_month"`
	Month      time.Month      `gorm:"uniqueIndex:period_user_month"`
	Total      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Categories []Category
}

func (p *Period) BeforeSave(_ *gorm.DB) error {
	if p.Total.IsNegative() {
		return budget.ErrNegativeTotal
	}

	if !p.Key().Valid() {
		return types.ErrInvalidPeriod
	}

	return nil
}

// Key returns the period the budget is for.
func (p Period) Key() types.Period {
	return types.NewPeriod(p.Year, p.Month)
}

// Domain converts the period with its preloaded categories and expenses.
func (p Period) Domain() budget.PeriodBudget {
	b := budget.PeriodBudget{
		ID:          p.ID,
		TotalAmount: p.Total,
		Categories:  make([]budget.Category, 0, len(p.Categories)),
	}

	for _, c := range p.Categories {
		b.Categories = append(b.Categories, c.Domain())
	}

	return budget.Recalculate(b)
}

func preloadBudget(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("position, created_at") }).
		Preload("Categories.Expenses", func(db *gorm.DB) *gorm.DB { return db.Order("position, created_at") })
}

// FindPeriod returns the period of the user with categories and expenses.
func FindPeriod(db *gorm.DB, userID uuid.UUID, key types.Period) (Period, error) {
	var p Period
	err := preloadBudget(db).
		Where(&Period{UserID: userID, Year: key.Year, Month: key.Month}).
		First(&p).Error

	return p, err
}

// FindOrCreatePeriod returns the period of the user. If it does not exist yet,
// it is created with a total of zero.
func FindOrCreatePeriod(db *gorm.DB, userID uuid.UUID, key types.Period) (Period, error) {
	p, err := FindPeriod(db, userID, key)
	if err == nil {
		return p, nil
	}

	if !errors.Is(err, ErrResourceNotFound) {
		return Period{}, err
	}

	p = Period{
		UserID:     userID,
		Year:       key.Year,
		Month:      key.Month,
		Total:      decimal.Zero,
		Categories: []Category{},
	}

	err = db.Create(&p).Error
	return p, err
}

// LoadBudget returns the budget of the period with the ID.
func LoadBudget(db *gorm.DB, periodID uuid.UUID) (budget.PeriodBudget, error) {
	var p Period
	err := preloadBudget(db).First(&p, "id = ?", periodID).Error
	if err != nil {
		return budget.PeriodBudget{}, err
	}

	return p.Domain(), nil
}

// SetTotal sets the total of a period. The total can not be lower than the
// amount already allocated.
func SetTotal(db *gorm.DB, userID uuid.UUID, key types.Period, total decimal.Decimal) (Period, error) {
	var p Period
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		p, err = FindOrCreatePeriod(tx, userID, key)
		if err != nil {
			return err
		}

		_, err = budget.SetTotal(p.Domain(), total)
		if err != nil {
			return err
		}

		p.Total = total
		return tx.Model(&p).Update("total", total).Error
	})

	return p, err
}
