package ui

import "sync"

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Toast is a transient notification
type Toast struct {
	Level   Level
	Message string
}

// Notifier queues toasts until the page drains them
type Notifier struct {
	mu     sync.Mutex
	toasts []Toast
}

func (n *Notifier) Success(message string) { n.push(LevelSuccess, message) }
func (n *Notifier) Error(message string)   { n.push(LevelError, message) }
func (n *Notifier) Info(message string)    { n.push(LevelInfo, message) }

func (n *Notifier) push(level Level, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, Toast{Level: level, Message: message})
}

// Pending returns queued toasts without removing them
func (n *Notifier) Pending() []Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Toast(nil), n.toasts...)
}

// Drain returns and clears queued toasts
func (n *Notifier) Drain() []Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.toasts
	n.toasts = nil
	return out
}
