package controller_test

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/kdennisod/cash-stuffing/internal/budget"
	"github.com/kdennisod/cash-stuffing/internal/client"
	"github.com/kdennisod/cash-stuffing/internal/types"
	"github.com/shopspring/decimal"
)

// fakeAPI keeps the data in memory and counts the calls per method.
type fakeAPI struct {
	mu    sync.Mutex
	data  budget.Data
	calls map[string]int

	// err is returned by all methods if set
	err error

	// scan is the result of ScanReceipt
	scan client.Scan

	// scanStarted and scanRelease block ScanReceipt if set
	scanStarted chan struct{}
	scanRelease chan struct{}

	// loadHook is called at the start of GetData
	loadHook func()
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		data:  budget.Data{},
		calls: map[string]int{},
	}
}

func (f *fakeAPI) called(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeAPI) call(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[method]++
	return f.err
}

func (f *fakeAPI) GetData(context.Context) (budget.Data, error) {
	if f.loadHook != nil {
		f.loadHook()
	}

	if err := f.call("GetData"); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data.Clone(), nil
}

func (f *fakeAPI) GetPeriod(_ context.Context, period types.Period) (budget.PeriodBudget, error) {
	if err := f.call("GetPeriod"); err != nil {
		return budget.PeriodBudget{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data.Get(period).Clone(), nil
}

func (f *fakeAPI) SaveData(_ context.Context, data budget.Data) error {
	if err := f.call("SaveData"); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = data.Clone()
	return nil
}

func (f *fakeAPI) SetTotal(_ context.Context, period types.Period, total decimal.Decimal) (budget.PeriodBudget, error) {
	if err := f.call("SetTotal"); err != nil {
		return budget.PeriodBudget{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	b, err := budget.SetTotal(f.data.Get(period), total)
	if err != nil {
		return budget.PeriodBudget{}, &client.ServerError{Status: 400, Message: err.Error()}
	}

	f.data[period] = b
	return b, nil
}

func (f *fakeAPI) AddCategory(_ context.Context, period types.Period, name string, allocated decimal.Decimal, icon string) (budget.Category, error) {
	if err := f.call("AddCategory"); err != nil {
		return budget.Category{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	c := budget.Category{ID: uuid.New(), Name: name, AllocatedAmount: allocated, Icon: icon}
	b, err := budget.AddCategory(f.data.Get(period), c)
	if err != nil {
		return budget.Category{}, &client.ServerError{Status: 400, Message: err.Error()}
	}

	f.data[period] = b
	return c, nil
}

func (f *fakeAPI) DeleteCategory(_ context.Context, id uuid.UUID) error {
	if err := f.call("DeleteCategory"); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for p, b := range f.data {
		if r, err := budget.RemoveCategory(b, id); err == nil {
			f.data[p] = r
			return nil
		}
	}

	return &client.ServerError{Status: 404, Message: budget.ErrCategoryNotFound.Error()}
}

func (f *fakeAPI) AddExpense(_ context.Context, categoryID uuid.UUID, description string, amount decimal.Decimal) (budget.Expense, error) {
	if err := f.call("AddExpense"); err != nil {
		return budget.Expense{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	e := budget.Expense{ID: uuid.New(), Description: description, Amount: amount}
	for p, b := range f.data {
		if _, ok := b.Category(categoryID); !ok {
			continue
		}

		r, err := budget.AddExpense(b, categoryID, e)
		if err != nil {
			return budget.Expense{}, &client.ServerError{Status: 400, Message: err.Error()}
		}

		f.data[p] = r
		return e, nil
	}

	return budget.Expense{}, &client.ServerError{Status: 404, Message: budget.ErrCategoryNotFound.Error()}
}

func (f *fakeAPI) DeleteExpense(_ context.Context, categoryID, expenseID uuid.UUID) error {
	if err := f.call("DeleteExpense"); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for p, b := range f.data {
		if r, err := budget.RemoveExpense(b, categoryID, expenseID); err == nil {
			f.data[p] = r
			return nil
		}
	}

	return &client.ServerError{Status: 404, Message: budget.ErrExpenseNotFound.Error()}
}

func (f *fakeAPI) ScanReceipt(_ context.Context, _ string, image io.Reader) (client.Scan, error) {
	_, _ = io.Copy(io.Discard, image)

	if f.scanStarted != nil {
		f.scanStarted <- struct{}{}
		<-f.scanRelease
	}

	if err := f.call("ScanReceipt"); err != nil {
		return client.Scan{}, err
	}

	return f.scan, nil
}

// alerts records the alerts shown to the user.
type alerts struct {
	mu       sync.Mutex
	messages []string
}

func (a *alerts) Alert(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = append(a.messages, message)
}

func (a *alerts) all() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.messages...)
}

// output is a concurrency safe buffer.
type output struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (o *output) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.buf.Write(p)
}

func (o *output) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.buf.String()
}

func (o *output) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.buf.Reset()
}
