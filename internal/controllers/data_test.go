package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kdennisod/cash-stuffing/internal/budget"
	"github.com/kdennisod/cash-stuffing/internal/controllers"
	"github.com/kdennisod/cash-stuffing/internal/events"
	"github.com/kdennisod/cash-stuffing/internal/httputil"
	"github.com/kdennisod/cash-stuffing/internal/test"
	"github.com/kdennisod/cash-stuffing/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var january = types.NewPeriod(2024, time.January)

func (suite *TestSuiteStandard) setTotal(session string, key types.Period, total string) controllers.PeriodResponse {
	r := suite.request(session, http.MethodPost, "/set_total", map[string]string{"period": key.String(), "total_amount": total})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.PeriodResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response
}

func (suite *TestSuiteStandard) getData(session string) budget.Data {
	r := suite.request(session, http.MethodGet, "/get_data", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.DataResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().True(response.Success)
	return response.Data
}

func (suite *TestSuiteStandard) TestGetDataEmpty() {
	session := suite.login("anna")

	r := suite.request(session, http.MethodGet, "/get_data", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{"success": true, "data": {}}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestSetTotal() {
	session := suite.login("anna")

	response := suite.setTotal(session, january, "1500")
	suite.Assert().True(response.Success)
	suite.Assert().Equal(january, response.Key)
	suite.Assert().Equal("1500", response.Period.TotalAmount.String())
	suite.Assert().NotEqual(uuid.Nil, response.Period.ID)

	// Setting it again updates the same period
	again := suite.setTotal(session, january, "1200.50")
	suite.Assert().Equal(response.Period.ID, again.Period.ID)
	suite.Assert().Equal("1200.5", again.Period.TotalAmount.String())

	suite.Assert().Equal([]events.Type{events.TotalSet, events.TotalSet}, suite.published.types())
}

func (suite *TestSuiteStandard) TestSetTotalFails() {
	session := suite.login("anna")
	suite.setTotal(session, january, "1000")
	suite.addCategory(session, january, "Miete", "800")

	tests := []struct {
		name   string
		body   any
		status int
		err    error
	}{
		{"Negative", map[string]string{"period": "2024-0", "total_amount": "-1"}, http.StatusBadRequest, budget.ErrNegativeTotal},
		{"Below allocation", map[string]string{"period": "2024-0", "total_amount": "700"}, http.StatusBadRequest, budget.ErrBelowAllocated},
		{"Invalid period", map[string]string{"period": "2024-12", "total_amount": "10"}, http.StatusBadRequest, httputil.ErrInvalidBody},
		{"Missing period", map[string]string{"total_amount": "10"}, http.StatusBadRequest, types.ErrInvalidPeriod},
		{"Invalid amount", map[string]string{"period": "2024-0", "total_amount": "viel"}, http.StatusBadRequest, httputil.ErrInvalidBody},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(session, http.MethodPost, "/set_total", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response httputil.Response
			test.DecodeResponse(t, &r, &response)
			assert.False(t, response.Success)
			assert.Contains(t, response.Message, tt.err.Error())
		})
	}

	suite.Assert().Equal("1000", suite.getData(session).Get(january).TotalAmount.String())
}

func (suite *TestSuiteStandard) TestGetPeriod() {
	session := suite.login("anna")

	r := suite.request(session, http.MethodGet, "/periods/2024-5", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.PeriodResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(types.NewPeriod(2024, time.June), response.Key)
	suite.Assert().True(response.Period.TotalAmount.IsZero())
	suite.Assert().Empty(response.Period.Categories)

	suite.setTotal(session, january, "300")
	category := suite.addCategory(session, january, "Lebensmittel", "200")
	suite.addExpense(session, category.ID, "Wocheneinkauf", "42.50")

	r = suite.request(session, http.MethodGet, "/periods/2024-0", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("200", response.Period.AllocatedAmount.String())
	suite.Assert().Equal("42.5", response.Period.TotalExpenses.String())
	suite.Assert().Equal("fas fa-apple-alt", response.Period.Categories[0].Icon)

	r = suite.request(session, http.MethodGet, "/periods/January", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSaveData() {
	session := suite.login("anna")
	categoryID := uuid.New()

	data := budget.Data{
		january: {
			TotalAmount: decimal.NewFromInt(1000),
			Categories: []budget.Category{
				{
					ID:              categoryID,
					Name:            "Miete",
					AllocatedAmount: decimal.NewFromInt(500),
					Icon:            "fas fa-home",
					Expenses: []budget.Expense{
						{ID: uuid.New(), Description: "Januar", Amount: decimal.NewFromInt(500)},
					},
				},
			},
		},
		types.NewPeriod(2024, time.February): {TotalAmount: decimal.NewFromInt(900), Categories: []budget.Category{}},
	}

	r := suite.request(session, http.MethodPost, "/save_data", map[string]any{"data": data})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{"success": true}`, r.Body.String())

	saved := suite.getData(session)
	suite.Require().Len(saved, 2)

	b := saved.Get(january)
	suite.Assert().Equal("500", b.AllocatedAmount.String())
	suite.Assert().Equal("500", b.TotalExpenses.String())
	suite.Assert().Equal(categoryID, b.Categories[0].ID, "client IDs are kept")
	suite.Assert().Equal("500", b.Categories[0].SpentAmount.String())

	suite.Assert().Equal([]events.Type{events.DataReplaced}, suite.published.types())
}

func (suite *TestSuiteStandard) TestSaveDataInvalid() {
	session := suite.login("anna")
	suite.setTotal(session, january, "100")

	invalid := budget.Data{
		january: {
			TotalAmount: decimal.NewFromInt(100),
			Categories: []budget.Category{
				{ID: uuid.New(), Name: "Miete", AllocatedAmount: decimal.NewFromInt(500)},
			},
		},
	}

	r := suite.request(session, http.MethodPost, "/save_data", map[string]any{"data": invalid})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response httputil.Response
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Contains(response.Message, budget.ErrExceedsTotal.Error())

	// Nothing changed
	b := suite.getData(session).Get(january)
	suite.Assert().Equal("100", b.TotalAmount.String())
	suite.Assert().Empty(b.Categories)

	r = suite.request(session, http.MethodPost, "/save_data", `{"data": null}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(session, http.MethodPost, "/save_data", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUsersAreSeparated() {
	anna := suite.login("anna")
	berta := suite.login("berta")

	suite.setTotal(anna, january, "1000")
	category := suite.addCategory(anna, january, "Miete", "500")

	suite.Assert().Empty(suite.getData(berta))

	r := suite.request(berta, http.MethodDelete, fmt.Sprintf("/delete_category/%s", category.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(berta, http.MethodPost, "/add_expense", map[string]string{"category_id": category.ID.String(), "description": "Fremd", "amount": "1"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	suite.Assert().Len(suite.getData(anna).Get(january).Categories, 1)
}

func (suite *TestSuiteStandard) TestDatabaseError() {
	session := suite.login("anna")
	suite.CloseDB()

	r := suite.request(session, http.MethodGet, "/get_data", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response httputil.Response
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Contains(response.Message, "an error occurred on the server during your request")
}
