// Package ui holds the stateful primitives the dashboard views are drawn on:
// a document of named containers, the loading indicator, modals, toasts,
// confirmation dialogs and the delegated action table.
package ui

import (
	"sort"
	"sync"
)

// Action is a clickable control carried by a row. Name is dispatched
// through the ActionTable with Params.
type Action struct {
	Name   string
	Label  string
	Params map[string]string
}

// Row is one rendered line of a container
type Row struct {
	Key     string
	Cells   []string
	Actions []Action
	// Placeholder marks the "no data" row of an empty view
	Placeholder bool
}

// Content is the full state of a container. Renderers always replace it whole.
type Content struct {
	Title   string
	Headers []string
	// Indicators carries the sort arrow per header, parallel to Headers
	Indicators []string
	// SortKeys names the sort column per header; empty for fixed columns
	SortKeys []string
	Rows     []Row
	Footer   []string
	// Data carries structured payloads for adapters such as charts
	Data interface{}
}

// Document is the set of named containers views draw into
type Document struct {
	mu         sync.RWMutex
	containers map[string]Content
	revisions  map[string]uint64
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{
		containers: make(map[string]Content),
		revisions:  make(map[string]uint64),
	}
}

// Replace clears container id and sets its content
func (d *Document) Replace(id string, content Content) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.containers[id] = cloneContent(content)
	d.revisions[id]++
}

// Content returns a copy of container id
func (d *Document) Content(id string) (Content, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.containers[id]
	if !ok {
		return Content{}, false
	}
	return cloneContent(c), true
}

// Revision counts replacements of container id
func (d *Document) Revision(id string) uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.revisions[id]
}

// IDs lists every container id, sorted
func (d *Document) IDs() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	ids := make([]string, 0, len(d.containers))
	for id := range d.containers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func cloneContent(c Content) Content {
	out := c
	out.Headers = append([]string(nil), c.Headers...)
	out.Indicators = append([]string(nil), c.Indicators...)
	out.SortKeys = append([]string(nil), c.SortKeys...)
	out.Footer = append([]string(nil), c.Footer...)
	out.Rows = make([]Row, len(c.Rows))
	for i, r := range c.Rows {
		row := r
		row.Cells = append([]string(nil), r.Cells...)
		row.Actions = append([]Action(nil), r.Actions...)
		out.Rows[i] = row
	}
	return out
}
