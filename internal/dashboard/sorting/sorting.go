// Package sorting re-orders a table's cached rows on header clicks without
// touching the network.
package sorting

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// ColumnType selects the comparison used for a column
type ColumnType int

const (
	Text ColumnType = iota
	Number
	Date
)

// Header arrows
const (
	IndicatorAsc  = "▲"
	IndicatorDesc = "▼"
)

// Column describes one sortable column of rows of type T
type Column[T any] struct {
	Key   string
	Type  ColumnType
	Value func(T) string
}

// State is the active sort column and direction
type State struct {
	Key  string
	Desc bool
}

// Toggle flips direction on the same key and starts ascending on a new one
func (s State) Toggle(key string) State {
	if s.Key == key {
		return State{Key: key, Desc: !s.Desc}
	}
	return State{Key: key}
}

// Indicator returns the arrow for key, empty when key is not the sort column
func (s State) Indicator(key string) string {
	switch {
	case s.Key != key:
		return ""
	case s.Desc:
		return IndicatorDesc
	default:
		return IndicatorAsc
	}
}

// Sort returns a new slice ordered by col. Equal keys keep their prior
// order. Missing numbers and dates go last in either direction.
func Sort[T any](items []T, col Column[T], desc bool) []T {
	out := make([]T, len(items))
	copy(out, items)

	keys := make([]sortKey, len(out))
	for i, item := range out {
		keys[i] = makeKey(col.Type, col.Value(item))
	}

	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return less(keys[idx[a]], keys[idx[b]], col.Type, desc)
	})

	sorted := make([]T, len(out))
	for i, j := range idx {
		sorted[i] = out[j]
	}
	return sorted
}

type sortKey struct {
	missing bool
	text    string
	number  decimal.Decimal
	when    time.Time
}

func makeKey(t ColumnType, raw string) sortKey {
	raw = strings.TrimSpace(raw)
	switch t {
	case Number:
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return sortKey{missing: true}
		}
		return sortKey{number: d}
	case Date:
		when, ok := parseDate(raw)
		if !ok {
			return sortKey{missing: true}
		}
		return sortKey{when: when}
	default:
		return sortKey{text: strings.ToLower(raw)}
	}
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05Z", "2006-01-02 15:04:05"}

func parseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func less(a, b sortKey, t ColumnType, desc bool) bool {
	if a.missing || b.missing {
		// missing values sink regardless of direction
		return !a.missing && b.missing
	}
	var c int
	switch t {
	case Number:
		c = a.number.Cmp(b.number)
	case Date:
		c = a.when.Compare(b.when)
	default:
		c = strings.Compare(a.text, b.text)
	}
	if desc {
		return c > 0
	}
	return c < 0
}

// Controller owns the sort state of one table and re-renders it on every
// sort. It never fetches.
type Controller[T any] struct {
	mu      sync.Mutex
	columns map[string]Column[T]
	state   State
	render  func([]T, State)
}

// NewController creates a controller over columns. render is called
// synchronously with the sorted rows.
func NewController[T any](columns []Column[T], render func([]T, State)) *Controller[T] {
	byKey := make(map[string]Column[T], len(columns))
	for _, c := range columns {
		byKey[c.Key] = c
	}
	return &Controller[T]{columns: byKey, render: render}
}

// State returns the current sort state
func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Click handles a header click on key and renders items in the new order
func (c *Controller[T]) Click(key string, items []T) bool {
	c.mu.Lock()
	if _, ok := c.columns[key]; !ok {
		c.mu.Unlock()
		return false
	}
	c.state = c.state.Toggle(key)
	c.mu.Unlock()

	c.Render(items)
	return true
}

// Apply orders items by the current state; unsorted tables keep their order
func (c *Controller[T]) Apply(items []T) []T {
	c.mu.Lock()
	state := c.state
	col, ok := c.columns[state.Key]
	c.mu.Unlock()

	if !ok {
		return append([]T(nil), items...)
	}
	return Sort(items, col, state.Desc)
}

// Render draws items in the current order
func (c *Controller[T]) Render(items []T) {
	c.render(c.Apply(items), c.State())
}
