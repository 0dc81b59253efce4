package models

import (
	"sort"

	"github.com/google/uuid"
	"github.com/kdennisod/cash-stuffing/internal/budget"
	"github.com/kdennisod/cash-stuffing/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UserData returns the budgets of all periods of the user.
func UserData(db *gorm.DB, userID uuid.UUID) (budget.Data, error) {
	var periods []Period
	err := preloadBudget(db).Where(&Period{UserID: userID}).Find(&periods).Error
	if err != nil {
		return nil, err
	}

	data := make(budget.Data, len(periods))
	for _, p := range periods {
		data[p.Key()] = p.Domain()
	}

	return data, nil
}

// ReplaceUserData replaces all budgets of the user with the data.
//
// All invariants are checked while the data is written. If any of them
// does not hold, nothing is changed.
func ReplaceUserData(db *gorm.DB, userID uuid.UUID, data budget.Data) error {
	keys := make([]types.Period, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	return db.Transaction(func(tx *gorm.DB) error {
		if err := deleteUserData(tx, userID); err != nil {
			return err
		}

		for _, key := range keys {
			b := data[key]

			p := Period{
				DefaultModel: DefaultModel{ID: freeID(tx, &Period{}, b.ID)},
				UserID:       userID,
				Year:         key.Year,
				Month:        key.Month,
				Total:        b.TotalAmount,
			}

			if err := tx.Omit("Categories").Create(&p).Error; err != nil {
				return err
			}

			for _, c := range b.Categories {
				category := Category{
					DefaultModel: DefaultModel{ID: freeID(tx, &Category{}, c.ID)},
					PeriodID:     p.ID,
					Name:         c.Name,
					Allocated:    c.AllocatedAmount,
					Icon:         c.Icon,
				}

				if err := tx.Omit("Expenses").Create(&category).Error; err != nil {
					return err
				}

				for _, e := range c.Expenses {
					expense := Expense{
						DefaultModel: DefaultModel{ID: freeID(tx, &Expense{}, e.ID)},
						CategoryID:   category.ID,
						Description:  e.Description,
						Amount:       e.Amount,
					}

					if err := tx.Create(&expense).Error; err != nil {
						return err
					}
				}
			}
		}

		return nil
	})
}

func deleteUserData(tx *gorm.DB, userID uuid.UUID) error {
	periods := tx.Model(&Period{}).Select("id").Where(&Period{UserID: userID})
	categories := tx.Model(&Category{}).Select("id").Where("period_id IN (?)", periods)

	if err := tx.Where("category_id IN (?)", categories).Delete(&Expense{}).Error; err != nil {
		return err
	}

	if err := tx.Where("period_id IN (?)", periods).Delete(&Category{}).Error; err != nil {
		return err
	}

	return tx.Where(&Period{UserID: userID}).Delete(&Period{}).Error
}

// freeID returns the ID if no resource of the model uses it yet. Otherwise,
// a new ID is generated.
func freeID(tx *gorm.DB, model any, id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}

	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil || count > 0 {
		return uuid.New()
	}

	return id
}

// AddCategory creates a category in the period of the user. The period is
// created if it does not exist yet.
func AddCategory(db *gorm.DB, userID uuid.UUID, key types.Period, name string, allocated decimal.Decimal, icon string) (Category, error) {
	var c Category
	err := db.Transaction(func(tx *gorm.DB) error {
		p, err := FindOrCreatePeriod(tx, userID, key)
		if err != nil {
			return err
		}

		c = Category{
			PeriodID:  p.ID,
			Name:      name,
			Allocated: allocated,
			Icon:      icon,
			Expenses:  []Expense{},
		}

		return tx.Create(&c).Error
	})

	return c, err
}

// AddExpense records an expense in a category of the user.
func AddExpense(db *gorm.DB, userID, categoryID uuid.UUID, description string, amount decimal.Decimal) (Expense, Period, error) {
	var (
		e Expense
		p Period
	)

	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		_, p, err = FindCategory(tx, userID, categoryID)
		if err != nil {
			return err
		}

		e = Expense{
			CategoryID:  categoryID,
			Description: description,
			Amount:      amount,
		}

		return tx.Create(&e).Error
	})

	return e, p, err
}
