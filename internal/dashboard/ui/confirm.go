package ui

import (
	"context"
	"errors"
	"sync"
)

// ErrConfirmPending is returned when a question is asked while another is open
var ErrConfirmPending = errors.New("another confirmation is pending")

// ConfirmDialog asks one yes/no question at a time. Ask blocks until the
// question is resolved or ctx is done.
type ConfirmDialog struct {
	mu      sync.Mutex
	prompt  string
	answer  chan bool
	opened  chan string
	pending bool
}

// NewConfirmDialog creates a closed dialog
func NewConfirmDialog() *ConfirmDialog {
	return &ConfirmDialog{opened: make(chan string, 1)}
}

// Ask shows prompt and waits for Resolve
func (c *ConfirmDialog) Ask(ctx context.Context, prompt string) (bool, error) {
	c.mu.Lock()
	if c.pending {
		c.mu.Unlock()
		return false, ErrConfirmPending
	}
	answer := make(chan bool, 1)
	c.prompt = prompt
	c.answer = answer
	c.pending = true
	c.mu.Unlock()

	select {
	case c.opened <- prompt:
	default:
	}

	defer c.clear(answer)

	select {
	case ok := <-answer:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Resolve answers the open question. It reports false when nothing is pending.
func (c *ConfirmDialog) Resolve(ok bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.pending {
		return false
	}
	c.answer <- ok
	c.pending = false
	return true
}

// Pending returns the open prompt
func (c *ConfirmDialog) Pending() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prompt, c.pending
}

// Opened delivers each prompt as it is shown
func (c *ConfirmDialog) Opened() <-chan string {
	return c.opened
}

func (c *ConfirmDialog) clear(answer chan bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.answer == answer {
		c.pending = false
		c.prompt = ""
		c.answer = nil
	}
}
