package client

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/kdennisod/cash-stuffing/internal/budget"
	"github.com/kdennisod/cash-stuffing/internal/types"
	"github.com/shopspring/decimal"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a user.
func (c *Client) Register(ctx context.Context, username, password string) error {
	return c.post(ctx, "/register", credentials{username, password}, nil)
}

// Login starts a session.
func (c *Client) Login(ctx context.Context, username, password string) error {
	return c.post(ctx, "/login", credentials{username, password}, nil)
}

// Logout ends the session.
func (c *Client) Logout(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/logout"), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET /logout: %w", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		return &ServerError{Status: resp.StatusCode}
	}

	return nil
}

// GetData returns the budgets of all periods.
func (c *Client) GetData(ctx context.Context) (budget.Data, error) {
	var response struct {
		Data budget.Data `json:"data"`
	}

	if err := c.get(ctx, "/get_data", &response); err != nil {
		return nil, err
	}

	if response.Data == nil {
		response.Data = budget.Data{}
	}

	return response.Data, nil
}

// SaveData replaces the budgets of all periods.
func (c *Client) SaveData(ctx context.Context, data budget.Data) error {
	return c.post(ctx, "/save_data", struct {
		Data budget.Data `json:"data"`
	}{data}, nil)
}

type periodResponse struct {
	Period budget.PeriodBudget `json:"period"`
}

// SetTotal sets the total of a period and returns the updated budget.
func (c *Client) SetTotal(ctx context.Context, period types.Period, total decimal.Decimal) (budget.PeriodBudget, error) {
	var response periodResponse
	err := c.post(ctx, "/set_total", struct {
		Period      types.Period    `json:"period"`
		TotalAmount decimal.Decimal `json:"total_amount"`
	}{period, total}, &response)

	return response.Period, err
}

// GetPeriod returns the budget of a single period.
func (c *Client) GetPeriod(ctx context.Context, period types.Period) (budget.PeriodBudget, error) {
	var response periodResponse
	err := c.get(ctx, "/periods/"+period.String(), &response)
	return response.Period, err
}

// AddCategory creates a category and returns it as created by the server.
func (c *Client) AddCategory(ctx context.Context, period types.Period, name string, allocated decimal.Decimal, icon string) (budget.Category, error) {
	var response struct {
		Category budget.Category `json:"category"`
	}

	err := c.post(ctx, "/add_category", struct {
		Period          types.Period    `json:"period"`
		Name            string          `json:"name"`
		AllocatedAmount decimal.Decimal `json:"allocated_amount"`
		Icon            string          `json:"icon"`
	}{period, name, allocated, icon}, &response)

	return response.Category, err
}

// DeleteCategory deletes a category with its expenses.
func (c *Client) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return c.delete(ctx, fmt.Sprintf("/delete_category/%s", id))
}

// AddExpense records an expense and returns it as created by the server.
func (c *Client) AddExpense(ctx context.Context, categoryID uuid.UUID, description string, amount decimal.Decimal) (budget.Expense, error) {
	var response struct {
		Expense budget.Expense `json:"expense"`
	}

	err := c.post(ctx, "/add_expense", struct {
		CategoryID  uuid.UUID       `json:"category_id"`
		Description string          `json:"description"`
		Amount      decimal.Decimal `json:"amount"`
	}{categoryID, description, amount}, &response)

	return response.Expense, err
}

// DeleteExpense deletes an expense.
func (c *Client) DeleteExpense(ctx context.Context, categoryID, expenseID uuid.UUID) error {
	return c.delete(ctx, fmt.Sprintf("/delete_expense/%s/%s", categoryID, expenseID))
}

// Scan is what the server could read from a receipt.
type Scan struct {
	Amount    decimal.Decimal `json:"amount"`
	StoreName string          `json:"storeName"`
}

// ScanReceipt uploads the image of a receipt.
//
// If nothing could be read, a ServerError with the server's message is
// returned.
func (c *Client) ScanReceipt(ctx context.Context, filename string, image io.Reader) (Scan, error) {
	var scan Scan
	err := c.upload(ctx, "/ocr", "receipt", filename, image, &scan)
	return scan, err
}
