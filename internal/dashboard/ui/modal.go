package ui

import "sync"

// Modal is the single dialog that hosts entity forms. Values holds the
// form fields so a failed submit keeps what the user typed.
type Modal struct {
	mu     sync.Mutex
	name   string
	open   bool
	values map[string]string
}

// Open shows form name prefilled with values
func (m *Modal) Open(name string, values map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.name = name
	m.open = true
	m.values = copyValues(values)
}

// SetValues replaces the form values without changing visibility
func (m *Modal) SetValues(values map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = copyValues(values)
}

// Reset clears the form values
func (m *Modal) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = map[string]string{}
}

func (m *Modal) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = false
}

// State returns the form name, its values and whether the modal is open
func (m *Modal) State() (string, map[string]string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.name, copyValues(m.values), m.open
}

// IsOpen reports whether form name is showing
func (m *Modal) IsOpen(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open && m.name == name
}

func copyValues(values map[string]string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}
