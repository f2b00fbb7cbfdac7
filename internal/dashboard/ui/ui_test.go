package ui_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/straye-as/sales-dashboard/internal/dashboard/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_ReplaceIsWholesale(t *testing.T) {
	doc := ui.NewDocument()
	doc.Replace("leads-table", ui.Content{Headers: []string{"Name"}, Rows: []ui.Row{{Cells: []string{"a"}}, {Cells: []string{"b"}}}})
	doc.Replace("leads-table", ui.Content{Headers: []string{"Name"}, Rows: []ui.Row{{Cells: []string{"c"}}}})

	content, ok := doc.Content("leads-table")
	require.True(t, ok)
	require.Len(t, content.Rows, 1)
	assert.Equal(t, "c", content.Rows[0].Cells[0])
	assert.Equal(t, uint64(2), doc.Revision("leads-table"))
	assert.Equal(t, []string{"leads-table"}, doc.IDs())

	content.Rows[0].Cells[0] = "mutated"
	again, _ := doc.Content("leads-table")
	assert.Equal(t, "c", again.Rows[0].Cells[0])

	_, ok = doc.Content("missing")
	assert.False(t, ok)
}

func TestLoading_Nests(t *testing.T) {
	var l ui.Loading
	assert.False(t, l.Active())

	l.Show()
	l.Show()
	l.Hide()
	assert.True(t, l.Active())
	l.Hide()
	l.Hide()
	assert.False(t, l.Active())

	err := l.Track(func() error {
		assert.True(t, l.Active())
		return errors.New("failed")
	})
	assert.Error(t, err)
	assert.False(t, l.Active(), "hidden even when fn fails")
}

func TestModal_KeepsValues(t *testing.T) {
	var m ui.Modal
	values := map[string]string{"firstName": "Ama"}
	m.Open("lead", values)
	values["firstName"] = "changed"

	name, got, open := m.State()
	assert.Equal(t, "lead", name)
	assert.True(t, open)
	assert.Equal(t, "Ama", got["firstName"])
	assert.True(t, m.IsOpen("lead"))
	assert.False(t, m.IsOpen("calendar_event"))

	m.SetValues(map[string]string{"firstName": "Kofi"})
	m.Close()
	_, got, open = m.State()
	assert.False(t, open)
	assert.Equal(t, "Kofi", got["firstName"])

	m.Reset()
	_, got, _ = m.State()
	assert.Empty(t, got)
}

func TestNotifier_Drain(t *testing.T) {
	var n ui.Notifier
	n.Success("saved")
	n.Error("failed")
	n.Info("fyi")

	assert.Len(t, n.Pending(), 3)
	toasts := n.Drain()
	assert.Equal(t, []ui.Toast{
		{Level: ui.LevelSuccess, Message: "saved"},
		{Level: ui.LevelError, Message: "failed"},
		{Level: ui.LevelInfo, Message: "fyi"},
	}, toasts)
	assert.Empty(t, n.Drain())
}

func TestTrigger(t *testing.T) {
	var tr ui.Trigger
	assert.True(t, tr.TryAcquire())
	assert.True(t, tr.Disabled())
	assert.False(t, tr.TryAcquire())
	tr.Release()
	assert.True(t, tr.TryAcquire())
}

func TestActionTable(t *testing.T) {
	table := ui.NewActionTable()
	var got ui.Params
	table.Register("view_lead", func(ctx context.Context, params ui.Params) error {
		got = params
		return nil
	})

	require.NoError(t, table.Dispatch(context.Background(), "view_lead", ui.Params{"id": "1"}))
	assert.Equal(t, "1", got["id"])
	assert.True(t, table.Has("view_lead"))
	assert.Equal(t, []string{"view_lead"}, table.Names())

	err := table.Dispatch(context.Background(), "nope", nil)
	assert.ErrorIs(t, err, ui.ErrUnknownAction)

	assert.Panics(t, func() {
		table.Register("view_lead", func(context.Context, ui.Params) error { return nil })
	})
}

func TestConfirmDialog(t *testing.T) {
	c := ui.NewConfirmDialog()
	assert.False(t, c.Resolve(true), "nothing pending")

	result := make(chan bool, 1)
	go func() {
		ok, err := c.Ask(context.Background(), "Delete?")
		assert.NoError(t, err)
		result <- ok
	}()

	select {
	case prompt := <-c.Opened():
		assert.Equal(t, "Delete?", prompt)
	case <-time.After(2 * time.Second):
		t.Fatal("dialog did not open")
	}
	prompt, pending := c.Pending()
	assert.True(t, pending)
	assert.Equal(t, "Delete?", prompt)

	_, err := c.Ask(context.Background(), "Another?")
	assert.ErrorIs(t, err, ui.ErrConfirmPending)

	require.True(t, c.Resolve(true))
	assert.True(t, <-result)
}

func TestConfirmDialog_ContextCancel(t *testing.T) {
	c := ui.NewConfirmDialog()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := c.Ask(ctx, "Delete?")
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)

	_, pending := c.Pending()
	assert.False(t, pending)
}
