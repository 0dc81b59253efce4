package controller

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/kdennisod/cash-stuffing/internal/budget"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// AddExpense records an expense in a category of the active period.
func (c *Controller) AddExpense(ctx context.Context, categoryID uuid.UUID, description, amount string) error {
	if strings.TrimSpace(description) == "" {
		return c.fail("add expense", budget.ErrMissingDescription)
	}

	a, err := budget.ParseAmount(amount)
	if err != nil {
		return c.fail("add expense", err)
	}

	return c.addExpense(ctx, categoryID, description, a)
}

func (c *Controller) addExpense(ctx context.Context, categoryID uuid.UUID, description string, amount decimal.Decimal) error {
	description = strings.TrimSpace(description)

	c.mu.Lock()
	period := c.state.Period
	err := budget.ValidateExpense(c.state.Budget, categoryID, description, amount)
	c.mu.Unlock()

	if err != nil {
		return c.fail("add expense", err)
	}

	expense, err := c.api.AddExpense(ctx, categoryID, description, amount)
	if err != nil {
		return c.fail("add expense", err)
	}

	c.mu.Lock()
	b, err := budget.AddExpense(c.state.Data.Get(period), categoryID, expense)
	if err != nil {
		c.mu.Unlock()

		log.Warn().Err(err).Str("expense", expense.ID.String()).Msg("local state diverged, reloading")
		return c.LoadData(ctx)
	}

	if period == c.state.Period {
		delete(c.state.Forms, categoryID)
	}
	c.store(period, b)
	c.mu.Unlock()
	return nil
}

// DeleteExpense deletes an expense of a category in the active period.
func (c *Controller) DeleteExpense(ctx context.Context, categoryID, expenseID uuid.UUID) error {
	c.mu.Lock()
	period := c.state.Period
	category, ok := c.state.Budget.Category(categoryID)
	c.mu.Unlock()

	if !ok {
		return c.fail("delete expense", budget.ErrCategoryNotFound)
	}

	if _, ok := category.Expense(expenseID); !ok {
		return c.fail("delete expense", budget.ErrExpenseNotFound)
	}

	if err := c.api.DeleteExpense(ctx, categoryID, expenseID); err != nil {
		return c.fail("delete expense", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	b, err := budget.RemoveExpense(c.state.Data.Get(period), categoryID, expenseID)
	if err != nil {
		log.Debug().Err(err).Str("expense", expenseID.String()).Msg("expense already removed")
		return nil
	}

	c.store(period, b)
	return nil
}
