// Package controller is the budget view controller. It holds the state of
// the active period, validates user input, talks to the API and renders
// the state after every change.
//
// Network calls are made without holding the lock. Their results are only
// applied if the period they were made for is still active.
package controller

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kdennisod/cash-stuffing/internal/budget"
	"github.com/kdennisod/cash-stuffing/internal/client"
	"github.com/kdennisod/cash-stuffing/internal/types"
	"github.com/kdennisod/cash-stuffing/internal/view"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrPeriodNotSelectable = errors.New("the period can not be selected")
	ErrScanInProgress      = errors.New("a receipt is already being processed")
	ErrPeriodChanged       = errors.New("the period was changed while the request was running")
)

// API is the part of the budget API the controller uses. It is
// implemented by *client.Client.
type API interface {
	GetData(ctx context.Context) (budget.Data, error)
	SaveData(ctx context.Context, data budget.Data) error
	GetPeriod(ctx context.Context, period types.Period) (budget.PeriodBudget, error)
	SetTotal(ctx context.Context, period types.Period, total decimal.Decimal) (budget.PeriodBudget, error)
	AddCategory(ctx context.Context, period types.Period, name string, allocated decimal.Decimal, icon string) (budget.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	AddExpense(ctx context.Context, categoryID uuid.UUID, description string, amount decimal.Decimal) (budget.Expense, error)
	DeleteExpense(ctx context.Context, categoryID, expenseID uuid.UUID) error
	ScanReceipt(ctx context.Context, filename string, image io.Reader) (client.Scan, error)
}

var _ API = (*client.Client)(nil)

// Alerter shows errors to the user.
type Alerter interface {
	Alert(message string)
}

// AlertFunc adapts a function to the Alerter interface.
type AlertFunc func(message string)

func (f AlertFunc) Alert(message string) { f(message) }

// State is a snapshot of the controller state.
type State struct {
	Period   types.Period
	Selector view.PeriodSelector
	Data     budget.Data
	Budget   budget.PeriodBudget
	Forms    view.Forms
	Busy     bool
}

// Controller drives the budget view.
type Controller struct {
	api       API
	alerter   Alerter
	formatter *view.Formatter
	renderer  *view.Renderer
	out       io.Writer

	mu         sync.Mutex
	state      State
	generation uint64
	scanning   bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithFormatter sets the formatter for amounts.
func WithFormatter(f *view.Formatter) Option {
	return func(c *Controller) { c.formatter = f }
}

// New returns a controller that renders to out.
func New(api API, alerter Alerter, out io.Writer, opts ...Option) *Controller {
	c := &Controller{
		api:       api,
		alerter:   alerter,
		formatter: view.DefaultFormatter(),
		renderer:  view.NewRenderer(),
		out:       out,
		state: State{
			Data:   budget.Data{},
			Budget: budget.EmptyPeriod(),
			Forms:  view.Forms{},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	forms := make(view.Forms, len(c.state.Forms))
	for id, f := range c.state.Forms {
		forms[id] = f
	}

	return State{
		Period:   c.state.Period,
		Selector: c.state.Selector,
		Data:     c.state.Data.Clone(),
		Budget:   c.state.Budget.Clone(),
		Forms:    forms,
		Busy:     c.state.Busy,
	}
}

// Page returns the view model of the current state.
func (c *Controller) Page() view.Page {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.page()
}

func (c *Controller) page() view.Page {
	return view.Build(c.formatter, c.state.Period, c.state.Budget, c.state.Forms, c.state.Busy)
}

// Render writes the current state.
func (c *Controller) Render() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.render()
}

// render must be called with the lock held.
func (c *Controller) render() {
	if err := c.renderer.Render(c.out, c.page()); err != nil {
		log.Error().Err(err).Msg("render")
	}
}

// fail alerts the user and returns err.
func (c *Controller) fail(op string, err error) error {
	log.Warn().Str("operation", op).Err(err).Msg("operation failed")
	c.alerter.Alert(err.Error())
	return err
}

// Init selects the current period and loads the data.
func (c *Controller) Init(ctx context.Context, now time.Time) error {
	c.mu.Lock()
	c.state.Selector = view.PeriodOptions(now)
	c.state.Period = c.state.Selector.Default()
	c.mu.Unlock()

	return c.LoadData(ctx)
}

// ChangePeriod activates another period and reloads the data.
func (c *Controller) ChangePeriod(ctx context.Context, period types.Period) error {
	c.mu.Lock()
	if !c.state.Selector.Contains(period) {
		c.mu.Unlock()
		return c.fail("change period", ErrPeriodNotSelectable)
	}

	c.state.Selector = c.state.Selector.Select(period)
	c.state.Period = period
	c.state.Budget = c.state.Data.Get(period)
	c.state.Forms = view.Forms{}
	c.mu.Unlock()

	return c.LoadData(ctx)
}

// LoadData fetches all data and shows the active period.
//
// If another load was started or the period was changed while the
// request was running, the response is discarded.
func (c *Controller) LoadData(ctx context.Context) error {
	c.mu.Lock()
	c.generation++
	generation := c.generation
	c.mu.Unlock()

	data, err := c.api.GetData(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		log.Debug().Uint64("generation", generation).Msg("discarding stale data")
		return nil
	}

	if err != nil {
		return c.fail("load data", err)
	}

	if data == nil {
		data = budget.Data{}
	}

	c.state.Data = data
	c.state.Budget = data.Get(c.state.Period)
	c.render()
	return nil
}

// RefreshPeriod fetches only the budget of the active period.
func (c *Controller) RefreshPeriod(ctx context.Context) error {
	c.mu.Lock()
	period := c.state.Period
	c.mu.Unlock()

	b, err := c.api.GetPeriod(ctx, period)
	if err != nil {
		return c.fail("refresh period", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store(period, budget.Recalculate(b))
	return nil
}

// SaveData writes the data of all periods.
func (c *Controller) SaveData(ctx context.Context) error {
	c.mu.Lock()
	data := c.state.Data.Clone()
	data[c.state.Period] = c.state.Budget.Clone()
	c.mu.Unlock()

	if err := c.api.SaveData(ctx, data); err != nil {
		return c.fail("save data", err)
	}

	return nil
}

// SetTotal sets the total amount of the active period.
func (c *Controller) SetTotal(ctx context.Context, input string) error {
	total, err := budget.ParseTotal(input)
	if err != nil {
		return c.fail("set total", err)
	}

	c.mu.Lock()
	period := c.state.Period
	_, err = budget.SetTotal(c.state.Budget, total)
	c.mu.Unlock()

	if err != nil {
		return c.fail("set total", err)
	}

	b, err := c.api.SetTotal(ctx, period, total)
	if err != nil {
		return c.fail("set total", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store(period, budget.Recalculate(b))
	return nil
}

// store replaces the budget of the period and renders if it is active.
// It must be called with the lock held.
func (c *Controller) store(period types.Period, b budget.PeriodBudget) {
	c.state.Data[period] = b
	if period != c.state.Period {
		return
	}

	c.state.Budget = b
	c.render()
}
