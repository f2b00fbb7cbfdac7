package sorting_test

import (
	"testing"

	"github.com/straye-as/sales-dashboard/internal/dashboard/sorting"
	"github.com/stretchr/testify/assert"
)

type row struct {
	name   string
	amount string
	date   string
}

func names(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.name
	}
	return out
}

var (
	nameCol   = sorting.Column[row]{Key: "name", Type: sorting.Text, Value: func(r row) string { return r.name }}
	amountCol = sorting.Column[row]{Key: "amount", Type: sorting.Number, Value: func(r row) string { return r.amount }}
	dateCol   = sorting.Column[row]{Key: "date", Type: sorting.Date, Value: func(r row) string { return r.date }}
)

func TestSort_Text(t *testing.T) {
	rows := []row{{name: "charlie"}, {name: "Alpha"}, {name: "bravo"}}

	assert.Equal(t, []string{"Alpha", "bravo", "charlie"}, names(sorting.Sort(rows, nameCol, false)))
	assert.Equal(t, []string{"charlie", "bravo", "Alpha"}, names(sorting.Sort(rows, nameCol, true)))
	assert.Equal(t, []string{"charlie", "Alpha", "bravo"}, names(rows), "input is not modified")
}

func TestSort_NumbersNumerically(t *testing.T) {
	rows := []row{{name: "a", amount: "100"}, {name: "b", amount: "9.5"}, {name: "c", amount: "20"}}

	assert.Equal(t, []string{"b", "c", "a"}, names(sorting.Sort(rows, amountCol, false)))
	assert.Equal(t, []string{"a", "c", "b"}, names(sorting.Sort(rows, amountCol, true)))
}

func TestSort_MissingValuesLast(t *testing.T) {
	rows := []row{
		{name: "none", date: ""},
		{name: "march", date: "2024-03-01"},
		{name: "bad", date: "N/A"},
		{name: "jan", date: "2024-01-01"},
	}

	assert.Equal(t, []string{"jan", "march", "none", "bad"}, names(sorting.Sort(rows, dateCol, false)))
	assert.Equal(t, []string{"march", "jan", "none", "bad"}, names(sorting.Sort(rows, dateCol, true)))
}

func TestSort_Stable(t *testing.T) {
	rows := []row{
		{name: "first", amount: "5"},
		{name: "second", amount: "1"},
		{name: "third", amount: "5"},
		{name: "fourth", amount: "1"},
	}

	assert.Equal(t, []string{"second", "fourth", "first", "third"}, names(sorting.Sort(rows, amountCol, false)))
	assert.Equal(t, []string{"first", "third", "second", "fourth"}, names(sorting.Sort(rows, amountCol, true)))
}

func TestState_ToggleAndIndicator(t *testing.T) {
	var s sorting.State
	assert.Empty(t, s.Indicator("name"))

	s = s.Toggle("name")
	assert.Equal(t, sorting.State{Key: "name"}, s)
	assert.Equal(t, sorting.IndicatorAsc, s.Indicator("name"))
	assert.Empty(t, s.Indicator("amount"))

	s = s.Toggle("name")
	assert.True(t, s.Desc)
	assert.Equal(t, sorting.IndicatorDesc, s.Indicator("name"))

	s = s.Toggle("amount")
	assert.Equal(t, sorting.State{Key: "amount"}, s, "a new column starts ascending")
}

func TestController_Click(t *testing.T) {
	var rendered [][]string
	var states []sorting.State
	c := sorting.NewController([]sorting.Column[row]{nameCol, amountCol}, func(rows []row, s sorting.State) {
		rendered = append(rendered, names(rows))
		states = append(states, s)
	})
	rows := []row{{name: "b", amount: "2"}, {name: "a", amount: "3"}, {name: "c", amount: "1"}}

	c.Render(rows)
	assert.Equal(t, []string{"b", "a", "c"}, rendered[0], "unsorted tables keep server order")

	assert.True(t, c.Click("name", rows))
	assert.Equal(t, []string{"a", "b", "c"}, rendered[1])

	assert.True(t, c.Click("name", rows))
	assert.Equal(t, []string{"c", "b", "a"}, rendered[2])
	assert.True(t, states[2].Desc)

	assert.False(t, c.Click("missing", rows))
	assert.Len(t, rendered, 3)
	assert.Equal(t, sorting.State{Key: "name", Desc: true}, c.State())

	assert.Equal(t, []string{"c", "b", "a"}, names(c.Apply(rows)), "the order survives new data")
}
