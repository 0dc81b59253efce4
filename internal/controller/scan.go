package controller

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/kdennisod/cash-stuffing/internal/budget"
	"github.com/kdennisod/cash-stuffing/internal/view"
)

// ScanReceipt uploads the image of a receipt and records the scanned
// amount as an expense of the category.
//
// If the amount does not fit into the category, the expense form of the
// category is pre-filled with the scanned values instead. Only one receipt
// is processed at a time.
func (c *Controller) ScanReceipt(ctx context.Context, categoryID uuid.UUID, filename string, image io.Reader) error {
	c.mu.Lock()
	if c.scanning {
		c.mu.Unlock()
		return c.fail("scan receipt", ErrScanInProgress)
	}

	if _, ok := c.state.Budget.Category(categoryID); !ok {
		c.mu.Unlock()
		return c.fail("scan receipt", budget.ErrCategoryNotFound)
	}

	period := c.state.Period
	c.scanning = true
	c.state.Busy = true
	c.render()
	c.mu.Unlock()

	scan, err := c.api.ScanReceipt(ctx, filename, image)

	c.mu.Lock()
	c.scanning = false
	c.state.Busy = false
	c.render()
	active := period == c.state.Period
	c.mu.Unlock()

	if err != nil {
		return c.fail("scan receipt", err)
	}

	if !active {
		return c.fail("scan receipt", ErrPeriodChanged)
	}

	description := scan.StoreName
	if description == "" {
		description = budget.ReceiptDescription
	}

	c.mu.Lock()
	err = budget.ValidateExpense(c.state.Budget, categoryID, description, scan.Amount)
	if errors.Is(err, budget.ErrExceedsAllocation) || errors.Is(err, budget.ErrInvalidAmount) {
		c.state.Forms[categoryID] = view.ExpenseForm{
			Description: description,
			Amount:      scan.Amount.StringFixed(2),
		}
		c.render()
	}
	c.mu.Unlock()

	if err != nil {
		return c.fail("scan receipt", err)
	}

	return c.addExpense(ctx, categoryID, description, scan.Amount)
}
