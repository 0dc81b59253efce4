package budget

import "errors"

var (
	ErrInvalidAmount      = errors.New("the amount must be a positive number")
	ErrNegativeTotal      = errors.New("the total amount must not be negative")
	ErrBelowAllocated     = errors.New("the total amount must not be lower than the amount already allocated")
	ErrMissingName        = errors.New("please enter a name or choose a category")
	ErrMissingDescription = errors.New("please enter a description for the expense")
	ErrExceedsTotal       = errors.New("the allocated amount exceeds the total budget")
	ErrExceedsAllocation  = errors.New("the expense exceeds the amount allocated to the category")
	ErrCategoryNotFound   = errors.New("there is no category matching your query")
	ErrExpenseNotFound    = errors.New("there is no expense matching your query")
)
