package ui

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Params are the data attributes of the clicked control
type Params map[string]string

// Handler runs one delegated action
type Handler func(ctx context.Context, params Params) error

// ErrUnknownAction is wrapped by Dispatch for unregistered names
var ErrUnknownAction = errors.New("unknown action")

// ActionTable maps data-action names to handlers. It is filled once at
// startup and read-only afterwards.
type ActionTable struct {
	handlers map[string]Handler
}

// NewActionTable creates an empty table
func NewActionTable() *ActionTable {
	return &ActionTable{handlers: make(map[string]Handler)}
}

// Register binds name to h. Registering a name twice panics.
func (t *ActionTable) Register(name string, h Handler) {
	if _, exists := t.handlers[name]; exists {
		panic("action registered twice: " + name)
	}
	t.handlers[name] = h
}

// Dispatch runs the handler for name
func (t *ActionTable) Dispatch(ctx context.Context, name string, params Params) error {
	h, ok := t.handlers[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}
	return h(ctx, params)
}

// Has reports whether name is registered
func (t *ActionTable) Has(name string) bool {
	_, ok := t.handlers[name]
	return ok
}

// Names lists registered actions, sorted
func (t *ActionTable) Names() []string {
	names := make([]string, 0, len(t.handlers))
	for name := range t.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
