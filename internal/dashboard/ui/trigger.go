package ui

import "sync/atomic"

// Trigger is a submit control that stays disabled while its request runs
type Trigger struct {
	busy atomic.Bool
}

// TryAcquire disables the trigger; false means a submit is already in flight
func (t *Trigger) TryAcquire() bool {
	return t.busy.CompareAndSwap(false, true)
}

// Release enables the trigger again
func (t *Trigger) Release() {
	t.busy.Store(false)
}

// Disabled reports whether a submit is in flight
func (t *Trigger) Disabled() bool {
	return t.busy.Load()
}
