package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kdennisod/cash-stuffing/internal/events"
	"github.com/kdennisod/cash-stuffing/internal/httputil"
	"github.com/kdennisod/cash-stuffing/internal/models"
)

// @Summary		Add expense
// @Description	Records an expense in a category. The amount must not exceed what is left of the allocation.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	httputil.Response
// @Failure		401		{object}	httputil.Response
// @Failure		404		{object}	httputil.Response
// @Failure		500		{object}	httputil.Response
// @Param			expense	body		AddExpenseRequest	true	"Expense"
// @Router			/add_expense [post]
func (co Controller) AddExpense(c *gin.Context) {
	var request AddExpenseRequest
	if err := httputil.BindData(c, &request); err != nil {
		return
	}

	user := userID(c)
	expense, p, err := models.AddExpense(models.DB, user, request.CategoryID, request.Description, request.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	co.changed(c, events.New(events.ExpenseAdded, user).
		WithPeriod(p.Key().String()).
		WithCategory(expense.CategoryID).
		WithExpense(expense.ID).
		WithAmount(expense.Amount))

	c.JSON(http.StatusCreated, ExpenseResponse{Success: true, Expense: expense.Domain()})
}

// @Summary		Delete expense
// @Description	Deletes an expense of a category
// @Tags			Expenses
// @Produce		json
// @Success		200			{object}	httputil.Response
// @Failure		400			{object}	httputil.Response
// @Failure		401			{object}	httputil.Response
// @Failure		404			{object}	httputil.Response
// @Failure		500			{object}	httputil.Response
// @Param			category_id	path		string	true	"ID of the category"
// @Param			expense_id	path		string	true	"ID of the expense"
// @Router			/delete_expense/{category_id}/{expense_id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	categoryID, err := httputil.ParseUUID(c, "category_id")
	if err != nil {
		return
	}

	expenseID, err := httputil.ParseUUID(c, "expense_id")
	if err != nil {
		return
	}

	user := userID(c)
	expense, p, err := models.DeleteExpense(models.DB, user, categoryID, expenseID)
	if err != nil {
		respondError(c, err)
		return
	}

	co.changed(c, events.New(events.ExpenseDeleted, user).
		WithPeriod(p.Key().String()).
		WithCategory(categoryID).
		WithExpense(expense.ID).
		WithAmount(expense.Amount))

	c.JSON(http.StatusOK, httputil.Response{Success: true})
}
