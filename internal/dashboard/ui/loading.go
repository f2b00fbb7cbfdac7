package ui

import "sync"

// Loading is the global busy indicator. Overlapping calls nest.
type Loading struct {
	mu     sync.Mutex
	active int
}

func (l *Loading) Show() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.active++
}

func (l *Loading) Hide() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.active > 0 {
		l.active--
	}
}

// Active reports whether any operation holds the indicator
func (l *Loading) Active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active > 0
}

// Track shows the indicator for the duration of fn, whatever fn returns
func (l *Loading) Track(fn func() error) error {
	l.Show()
	defer l.Hide()
	return fn()
}
