package controllers

import (
	"github.com/google/uuid"
	"github.com/kdennisod/cash-stuffing/internal/budget"
	"github.com/kdennisod/cash-stuffing/internal/models"
	"github.com/kdennisod/cash-stuffing/internal/types"
	"github.com/shopspring/decimal"
)

// Credentials are sent to register and log in.
type Credentials struct {
	Username string `json:"username" form:"username" example:"anna"`
	Password string `json:"password" form:"password" example:"correct horse battery"`
}

type UserResponse struct {
	Success bool        `json:"success" example:"true"`
	User    models.User `json:"user"`
}

type DataRequest struct {
	Data budget.Data `json:"data"`
}

type DataResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    budget.Data `json:"data"`
}

type SetTotalRequest struct {
	Period      types.Period    `json:"period" swaggertype:"string" example:"2024-0"`
	TotalAmount decimal.Decimal `json:"total_amount" swaggertype:"string" example:"1500.00"`
}

type PeriodResponse struct {
	Success bool                `json:"success" example:"true"`
	Key     types.Period        `json:"key" swaggertype:"string" example:"2024-0"`
	Period  budget.PeriodBudget `json:"period"`
}

type AddCategoryRequest struct {
	Period          types.Period    `json:"period" swaggertype:"string" example:"2024-0"`
	Name            string          `json:"name" example:"Miete"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount" swaggertype:"string" example:"500.00"`
	Icon            string          `json:"icon" example:"fas fa-home"`
}

type CategoryResponse struct {
	Success  bool            `json:"success" example:"true"`
	Category budget.Category `json:"category"`
}

type AddExpenseRequest struct {
	CategoryID  uuid.UUID       `json:"category_id" example:"7f4e2b0a-7a1c-4b8e-9d3f-2a3c0e5a9b11"`
	Description string          `json:"description" example:"Wocheneinkauf"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"42.50"`
}

type ExpenseResponse struct {
	Success bool           `json:"success" example:"true"`
	Expense budget.Expense `json:"expense"`
}

type OCRResponse struct {
	Success   bool             `json:"success" example:"true"`
	Amount    *decimal.Decimal `json:"amount,omitempty" swaggertype:"string" example:"42.50"`
	StoreName string           `json:"storeName,omitempty" example:"SUPERMARKT MÜLLER"`
	Message   string           `json:"message,omitempty" example:"no valid amount found on the receipt"`
}
