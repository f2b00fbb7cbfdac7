// Package form validates and submits the dashboard's create/edit modals.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/straye-as/sales-dashboard/internal/dashboard/gateway"
	"github.com/straye-as/sales-dashboard/internal/dashboard/refresh"
	"github.com/straye-as/sales-dashboard/internal/dashboard/ui"
	"go.uber.org/zap"
)

var (
	// ErrSubmitInFlight rejects a submit while the same form is still submitting
	ErrSubmitInFlight = errors.New("submit already in progress")
	ErrUnknownForm    = errors.New("unknown form")
)

// IDField is the hidden field that switches a submit from create to update
const IDField = "id"

var validate = validator.New()

// Field is one input of a form
type Field struct {
	Name     string // wire name
	Label    string
	Required bool
	// Numeric fields are sent as decimals; empty means 0
	Numeric bool
}

// Target is the collection a form writes to
type Target interface {
	Create(ctx context.Context, payload gateway.Payload) (gateway.Result, error)
	Update(ctx context.Context, id string, payload gateway.Payload) (gateway.Result, error)
}

// Refresher reloads the views a mutation affects
type Refresher interface {
	AfterMutation(ctx context.Context, m refresh.Mutation, modal refresh.Closer) error
}

// Form describes one modal form
type Form struct {
	Name     string
	Mutation refresh.Mutation
	Fields   []Field
	Target   Target
}

type entry struct {
	form    Form
	trigger ui.Trigger
}

// Controller submits registered forms
type Controller struct {
	mu        sync.RWMutex
	forms     map[string]*entry
	modal     *ui.Modal
	loading   *ui.Loading
	notifier  *ui.Notifier
	refresher Refresher
	logger    *zap.Logger
}

// NewController creates a form controller
func NewController(modal *ui.Modal, loading *ui.Loading, notifier *ui.Notifier, refresher Refresher, logger *zap.Logger) *Controller {
	return &Controller{
		forms:     make(map[string]*entry),
		modal:     modal,
		loading:   loading,
		notifier:  notifier,
		refresher: refresher,
		logger:    logger,
	}
}

// Register adds f, replacing any form with the same name
func (c *Controller) Register(f Form) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.forms[f.Name] = &entry{form: f}
}

// Form returns the registered form name
func (c *Controller) Form(name string) (Form, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.forms[name]
	if !ok {
		return Form{}, false
	}
	return e.form, true
}

// Busy reports whether form name has a submit in flight
func (c *Controller) Busy(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.forms[name]
	return ok && e.trigger.Disabled()
}

// Submit validates values and creates or updates the record. Validation
// failures return a *gateway.ValidationError without any request being sent.
func (c *Controller) Submit(ctx context.Context, name string, values map[string]string) (gateway.Result, error) {
	c.mu.RLock()
	e, ok := c.forms[name]
	c.mu.RUnlock()
	if !ok {
		return gateway.Result{}, fmt.Errorf("%w: %s", ErrUnknownForm, name)
	}

	if !e.trigger.TryAcquire() {
		return gateway.Result{}, ErrSubmitInFlight
	}
	defer e.trigger.Release()

	payload, err := Validate(e.form.Fields, values)
	if err != nil {
		c.notifier.Error(err.Error())
		c.modal.SetValues(values)
		return gateway.Result{}, err
	}

	id := strings.TrimSpace(values[IDField])
	var result gateway.Result
	err = c.loading.Track(func() error {
		var err error
		if id != "" {
			result, err = e.form.Target.Update(ctx, id, payload)
		} else {
			result, err = e.form.Target.Create(ctx, payload)
		}
		return err
	})
	if err != nil {
		c.logger.Warn("form submit failed",
			zap.String("form", name),
			zap.Bool("update", id != ""),
			zap.Error(err),
		)
		c.modal.SetValues(values)
		c.notifier.Error(fmt.Sprintf("Failed to save %s: %v", e.form.Name, err))
		return gateway.Result{}, err
	}

	c.modal.Reset()
	// Refresh failures are reported per kind by the coordinator; the save
	// itself succeeded.
	_ = c.loading.Track(func() error {
		return c.refresher.AfterMutation(ctx, e.form.Mutation, c.modal)
	})

	message := result.Message
	if message == "" {
		message = "Saved successfully"
	}
	c.notifier.Success(message)
	return result, nil
}

// Validate checks values against fields in field order and builds the
// request payload. Empty optional fields are left out.
func Validate(fields []Field, values map[string]string) (gateway.Payload, error) {
	payload := make(gateway.Payload, len(fields))
	for _, f := range fields {
		raw := strings.TrimSpace(values[f.Name])

		if f.Required {
			if err := validate.Var(raw, "required"); err != nil {
				return nil, &gateway.ValidationError{Field: f.Name, Message: f.Label + " is required"}
			}
		}

		if f.Numeric {
			amount, err := parseAmount(f, raw)
			if err != nil {
				return nil, err
			}
			payload[f.Name] = amount
			continue
		}

		if raw != "" {
			payload[f.Name] = raw
		}
	}
	return payload, nil
}

func parseAmount(f Field, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	if err := validate.Var(raw, "numeric"); err != nil {
		return decimal.Zero, &gateway.ValidationError{Field: f.Name, Message: f.Label + " must be a number"}
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &gateway.ValidationError{Field: f.Name, Message: f.Label + " must be a number"}
	}
	if amount.IsNegative() {
		return decimal.Zero, &gateway.ValidationError{Field: f.Name, Message: f.Label + " cannot be negative"}
	}
	return amount, nil
}
