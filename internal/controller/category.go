package controller

import (
	"context"

	"github.com/google/uuid"
	"github.com/kdennisod/cash-stuffing/internal/budget"
	"github.com/rs/zerolog/log"
)

// CategoryInput is what the user entered to create a category.
type CategoryInput struct {
	// Name is free text. It takes precedence over Preset.
	Name string

	// Preset is the name of a predefined category.
	Preset string

	// Amount to allocate, with "." or "," as decimal separator.
	Amount string
}

// AddCategory creates a category in the active period.
func (c *Controller) AddCategory(ctx context.Context, input CategoryInput) error {
	name := budget.ResolveName(input.Name, input.Preset)
	if name == "" {
		return c.fail("add category", budget.ErrMissingName)
	}

	amount, err := budget.ParseAmount(input.Amount)
	if err != nil {
		return c.fail("add category", err)
	}

	c.mu.Lock()
	period := c.state.Period
	err = budget.ValidateCategory(c.state.Budget, name, amount)
	c.mu.Unlock()

	if err != nil {
		return c.fail("add category", err)
	}

	category, err := c.api.AddCategory(ctx, period, name, amount, budget.IconFor(name))
	if err != nil {
		return c.fail("add category", err)
	}

	c.mu.Lock()
	b, err := budget.AddCategory(c.state.Data.Get(period), category)
	if err != nil {
		c.mu.Unlock()

		// The server accepted what the local state rejects, so the local
		// state is outdated
		log.Warn().Err(err).Str("category", category.ID.String()).Msg("local state diverged, reloading")
		return c.LoadData(ctx)
	}

	c.store(period, b)
	c.mu.Unlock()
	return nil
}

// DeleteCategory deletes a category of the active period with all its
// expenses.
func (c *Controller) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	period := c.state.Period
	_, ok := c.state.Budget.Category(id)
	c.mu.Unlock()

	if !ok {
		return c.fail("delete category", budget.ErrCategoryNotFound)
	}

	if err := c.api.DeleteCategory(ctx, id); err != nil {
		return c.fail("delete category", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	b, err := budget.RemoveCategory(c.state.Data.Get(period), id)
	if err != nil {
		log.Debug().Err(err).Str("category", id.String()).Msg("category already removed")
		return nil
	}

	delete(c.state.Forms, id)
	c.store(period, b)
	return nil
}
