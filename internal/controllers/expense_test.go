package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/kdennisod/cash-stuffing/internal/budget"
	"github.com/kdennisod/cash-stuffing/internal/events"
	"github.com/kdennisod/cash-stuffing/internal/httputil"
	"github.com/kdennisod/cash-stuffing/internal/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAddExpenseFails() {
	session := suite.login("anna")
	suite.setTotal(session, january, "1000")
	category := suite.addCategory(session, january, "Lebensmittel", "100")
	suite.addExpense(session, category.ID, "Markt", "60")

	tests := []struct {
		name   string
		body   map[string]string
		status int
		err    error
	}{
		{"Exceeds allocation", map[string]string{"category_id": category.ID.String(), "description": "Feier", "amount": "40.01"}, http.StatusBadRequest, budget.ErrExceedsAllocation},
		{"No description", map[string]string{"category_id": category.ID.String(), "description": "  ", "amount": "1"}, http.StatusBadRequest, budget.ErrMissingDescription},
		{"Zero", map[string]string{"category_id": category.ID.String(), "description": "Nichts", "amount": "0"}, http.StatusBadRequest, budget.ErrInvalidAmount},
		{"Unknown category", map[string]string{"category_id": uuid.New().String(), "description": "Markt", "amount": "1"}, http.StatusNotFound, budget.ErrCategoryNotFound},
		{"Invalid category ID", map[string]string{"category_id": "17", "description": "Markt", "amount": "1"}, http.StatusBadRequest, httputil.ErrInvalidBody},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(session, http.MethodPost, "/add_expense", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response httputil.Response
			test.DecodeResponse(t, &r, &response)
			assert.Contains(t, response.Message, tt.err.Error())
		})
	}

	suite.Assert().Equal("60", suite.getData(session).Get(january).TotalExpenses.String())
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	session := suite.login("anna")
	suite.setTotal(session, january, "1000")
	category := suite.addCategory(session, january, "Lebensmittel", "100")
	first := suite.addExpense(session, category.ID, "Markt", "10")
	second := suite.addExpense(session, category.ID, "Bäcker", "5")

	// Both methods delete
	for _, tt := range []struct {
		method  string
		expense budget.Expense
	}{
		{http.MethodDelete, first},
		{http.MethodGet, second},
	} {
		r := suite.request(session, tt.method, fmt.Sprintf("/delete_expense/%s/%s", category.ID, tt.expense.ID), "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	}

	b := suite.getData(session).Get(january)
	suite.Assert().Empty(b.Categories[0].Expenses)
	suite.Assert().True(b.Categories[0].SpentAmount.IsZero())
	suite.Assert().True(b.TotalExpenses.IsZero())

	suite.Assert().Equal([]events.Type{
		events.TotalSet,
		events.CategoryAdded,
		events.ExpenseAdded,
		events.ExpenseAdded,
		events.ExpenseDeleted,
		events.ExpenseDeleted,
	}, suite.published.types())
}

func (suite *TestSuiteStandard) TestDeleteExpenseFails() {
	session := suite.login("anna")
	suite.setTotal(session, january, "1000")
	category := suite.addCategory(session, january, "Lebensmittel", "100")
	other := suite.addCategory(session, january, "Transport", "100")
	expense := suite.addExpense(session, category.ID, "Markt", "10")

	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"Unknown expense", fmt.Sprintf("/delete_expense/%s/%s", category.ID, uuid.New()), http.StatusNotFound},
		{"Wrong category", fmt.Sprintf("/delete_expense/%s/%s", other.ID, expense.ID), http.StatusNotFound},
		{"Unknown category", fmt.Sprintf("/delete_expense/%s/%s", uuid.New(), expense.ID), http.StatusNotFound},
		{"Invalid category ID", fmt.Sprintf("/delete_expense/0/%s", expense.ID), http.StatusBadRequest},
		{"Invalid expense ID", fmt.Sprintf("/delete_expense/%s/0", category.ID), http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(session, http.MethodDelete, tt.url, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	suite.Assert().Equal("10", suite.getData(session).Get(january).TotalExpenses.String())
}
