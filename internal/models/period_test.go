package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/kdennisod/cash-stuffing/internal/budget"
	"github.com/kdennisod/cash-stuffing/internal/models"
	"github.com/kdennisod/cash-stuffing/internal/types"
)

var march = types.NewPeriod(2024, time.March)

func (suite *TestSuiteStandard) TestFindOrCreatePeriod() {
	user := suite.createTestUser("anna")

	p, err := models.FindOrCreatePeriod(models.DB, user.ID, march)
	suite.Require().Nil(err)
	suite.Assert().True(p.Total.IsZero())
	suite.Assert().Equal(march, p.Key())

	again, err := models.FindOrCreatePeriod(models.DB, user.ID, march)
	suite.Require().Nil(err)
	suite.Assert().Equal(p.ID, again.ID)

	_, err = models.FindPeriod(models.DB, user.ID, march.AddMonths(1))
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "there is no period matching your query")
}

func (suite *TestSuiteStandard) TestPeriodUnique() {
	user := suite.createTestUser("anna")

	_, err := models.FindOrCreatePeriod(models.DB, user.ID, march)
	suite.Require().Nil(err)

	err = models.DB.Create(&models.Period{UserID: user.ID, Year: march.Year, Month: march.Month}).Error
	suite.Assert().ErrorIs(err, models.ErrPeriodNotUnique)
}

func (suite *TestSuiteStandard) TestPeriodInvalid() {
	user := suite.createTestUser("anna")

	err := models.DB.Create(&models.Period{UserID: user.ID, Year: 2024, Month: 13}).Error
	suite.Assert().ErrorIs(err, types.ErrInvalidPeriod)

	err = models.DB.Create(&models.Period{UserID: user.ID, Year: 2024, Month: time.May, Total: d("-1")}).Error
	suite.Assert().ErrorIs(err, budget.ErrNegativeTotal)
}

func (suite *TestSuiteStandard) TestSetTotal() {
	user := suite.createTestUser("anna")

	p, err := models.SetTotal(models.DB, user.ID, march, d("1000"))
	suite.Require().Nil(err)
	suite.Assert().Equal("1000", p.Total.String())

	_, err = models.AddCategory(models.DB, user.ID, march, "Miete", d("600"), "")
	suite.Require().Nil(err)

	_, err = models.SetTotal(models.DB, user.ID, march, d("599.99"))
	suite.Assert().ErrorIs(err, budget.ErrBelowAllocated)

	_, err = models.SetTotal(models.DB, user.ID, march, d("-1"))
	suite.Assert().ErrorIs(err, budget.ErrNegativeTotal)

	loaded, err := models.FindPeriod(models.DB, user.ID, march)
	suite.Require().Nil(err)
	suite.Assert().Equal("1000.00", loaded.Total.StringFixed(2))
}

func (suite *TestSuiteStandard) TestAddCategory() {
	user := suite.createTestUser("anna")

	_, err := models.AddCategory(models.DB, user.ID, march, "Miete", d("1"), "")
	suite.Assert().ErrorIs(err, budget.ErrExceedsTotal, "the total of a new period is zero")

	_, err = models.SetTotal(models.DB, user.ID, march, d("1000"))
	suite.Require().Nil(err)

	rent, err := models.AddCategory(models.DB, user.ID, march, " Miete ", d("500"), "")
	suite.Require().Nil(err)
	suite.Assert().Equal("Miete", rent.Name)
	suite.Assert().Equal("fas fa-home", rent.Icon)
	suite.Assert().Equal(0, rent.Position)

	other, err := models.AddCategory(models.DB, user.ID, march, "Urlaub", d("500"), "fas fa-plane")
	suite.Require().Nil(err)
	suite.Assert().Equal("fas fa-plane", other.Icon)
	suite.Assert().Equal(1, other.Position)

	_, err = models.AddCategory(models.DB, user.ID, march, "Sonstiges", d("0.01"), "")
	suite.Assert().ErrorIs(err, budget.ErrExceedsTotal)

	_, err = models.AddCategory(models.DB, user.ID, march, "", d("0.01"), "")
	suite.Assert().ErrorIs(err, budget.ErrMissingName)

	p, err := models.FindPeriod(models.DB, user.ID, march)
	suite.Require().Nil(err)

	b := p.Domain()
	suite.Assert().Equal("1000.00", b.AllocatedAmount.StringFixed(2))
	suite.Assert().Equal("0.00", b.Headroom().StringFixed(2))
	suite.Require().Len(b.Categories, 2)
	suite.Assert().Equal(rent.ID, b.Categories[0].ID)
	suite.Assert().Equal(other.ID, b.Categories[1].ID)
}

func (suite *TestSuiteStandard) TestAddExpense() {
	user := suite.createTestUser("anna")

	_, err := models.SetTotal(models.DB, user.ID, march, d("1000"))
	suite.Require().Nil(err)
	rent, err := models.AddCategory(models.DB, user.ID, march, "Miete", d("500"), "")
	suite.Require().Nil(err)

	e, p, err := models.AddExpense(models.DB, user.ID, rent.ID, " Rent ", d("500"))
	suite.Require().Nil(err)
	suite.Assert().Equal("Rent", e.Description)
	suite.Assert().Equal(march, p.Key())

	_, _, err = models.AddExpense(models.DB, user.ID, rent.ID, "More", d("0.01"))
	suite.Assert().ErrorIs(err, budget.ErrExceedsAllocation)

	_, _, err = models.AddExpense(models.DB, user.ID, rent.ID, "", d("0.01"))
	suite.Assert().ErrorIs(err, budget.ErrMissingDescription)

	_, _, err = models.AddExpense(models.DB, user.ID, uuid.New(), "Rent", d("1"))
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	b, err := models.LoadBudget(models.DB, p.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("500.00", b.TotalExpenses.StringFixed(2))
	suite.Assert().Equal("0.00", b.Categories[0].Remaining().StringFixed(2))
	suite.Assert().Len(b.Categories[0].Expenses, 1)
}

func (suite *TestSuiteStandard) TestOtherUsersCategory() {
	anna := suite.createTestUser("anna")
	ben := suite.createTestUser("ben")

	_, err := models.SetTotal(models.DB, anna.ID, march, d("100"))
	suite.Require().Nil(err)
	food, err := models.AddCategory(models.DB, anna.ID, march, "Lebensmittel", d("100"), "")
	suite.Require().Nil(err)

	_, _, err = models.AddExpense(models.DB, ben.ID, food.ID, "Bread", d("2"))
	suite.Assert().ErrorIs(err, budget.ErrCategoryNotFound)

	_, _, err = models.DeleteCategory(models.DB, ben.ID, food.ID)
	suite.Assert().ErrorIs(err, budget.ErrCategoryNotFound)
}

func (suite *TestSuiteStandard) TestDeleteCategory() {
	user := suite.createTestUser("anna")

	_, err := models.SetTotal(models.DB, user.ID, march, d("100"))
	suite.Require().Nil(err)
	food, err := models.AddCategory(models.DB, user.ID, march, "Lebensmittel", d("60"), "")
	suite.Require().Nil(err)
	car, err := models.AddCategory(models.DB, user.ID, march, "Transport", d("40"), "")
	suite.Require().Nil(err)

	_, _, err = models.AddExpense(models.DB, user.ID, food.ID, "Bread", d("2.5"))
	suite.Require().Nil(err)
	_, _, err = models.AddExpense(models.DB, user.ID, car.ID, "Bus", d("3"))
	suite.Require().Nil(err)

	deleted, p, err := models.DeleteCategory(models.DB, user.ID, food.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(food.ID, deleted.ID)

	b, err := models.LoadBudget(models.DB, p.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("40.00", b.AllocatedAmount.StringFixed(2))
	suite.Assert().Equal("3.00", b.TotalExpenses.StringFixed(2))
	suite.Assert().Len(b.Categories, 1)

	var count int64
	models.DB.Model(&models.Expense{}).Where("category_id = ?", food.ID).Count(&count)
	suite.Assert().Equal(int64(0), count)

	_, _, err = models.DeleteCategory(models.DB, user.ID, food.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	user := suite.createTestUser("anna")

	_, err := models.SetTotal(models.DB, user.ID, march, d("100"))
	suite.Require().Nil(err)
	food, err := models.AddCategory(models.DB, user.ID, march, "Lebensmittel", d("60"), "")
	suite.Require().Nil(err)
	bread, _, err := models.AddExpense(models.DB, user.ID, food.ID, "Bread", d("2.5"))
	suite.Require().Nil(err)

	_, _, err = models.DeleteExpense(models.DB, user.ID, food.ID, uuid.New())
	suite.Assert().ErrorIs(err, budget.ErrExpenseNotFound)

	deleted, p, err := models.DeleteExpense(models.DB, user.ID, food.ID, bread.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("Bread", deleted.Description)

	b, err := models.LoadBudget(models.DB, p.ID)
	suite.Require().Nil(err)
	suite.Assert().True(b.TotalExpenses.IsZero())
}

func (suite *TestSuiteStandard) TestAddCategoryAfterDelete() {
	user := suite.createTestUser("anna")

	_, err := models.SetTotal(models.DB, user.ID, march, d("1000"))
	suite.Require().Nil(err)

	var ids []uuid.UUID
	for _, name := range []string{"A", "B", "C"} {
		c, err := models.AddCategory(models.DB, user.ID, march, name, d("100"), "")
		suite.Require().Nil(err)
		ids = append(ids, c.ID)
	}

	for _, id := range ids[:2] {
		_, _, err := models.DeleteCategory(models.DB, user.ID, id)
		suite.Require().Nil(err)
	}

	added, err := models.AddCategory(models.DB, user.ID, march, "D", d("100"), "")
	suite.Require().Nil(err)
	suite.Assert().Equal(3, added.Position)

	p, err := models.FindPeriod(models.DB, user.ID, march)
	suite.Require().Nil(err)

	b := p.Domain()
	suite.Require().Len(b.Categories, 2)
	suite.Assert().Equal("C", b.Categories[0].Name)
	suite.Assert().Equal("D", b.Categories[1].Name)
}

func (suite *TestSuiteStandard) TestAddExpenseAfterDelete() {
	user := suite.createTestUser("anna")

	_, err := models.SetTotal(models.DB, user.ID, march, d("1000"))
	suite.Require().Nil(err)
	food, err := models.AddCategory(models.DB, user.ID, march, "Lebensmittel", d("100"), "")
	suite.Require().Nil(err)

	var ids []uuid.UUID
	for _, description := range []string{"Bread", "Milk", "Cheese"} {
		e, _, err := models.AddExpense(models.DB, user.ID, food.ID, description, d("1"))
		suite.Require().Nil(err)
		ids = append(ids, e.ID)
	}

	for _, id := range ids[:2] {
		_, _, err := models.DeleteExpense(models.DB, user.ID, food.ID, id)
		suite.Require().Nil(err)
	}

	added, p, err := models.AddExpense(models.DB, user.ID, food.ID, "Apples", d("1"))
	suite.Require().Nil(err)
	suite.Assert().Equal(3, added.Position)

	b, err := models.LoadBudget(models.DB, p.ID)
	suite.Require().Nil(err)

	expenses := b.Categories[0].Expenses
	suite.Require().Len(expenses, 2)
	suite.Assert().Equal("Cheese", expenses[0].Description)
	suite.Assert().Equal("Apples", expenses[1].Description)
}
