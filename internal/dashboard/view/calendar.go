package view

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/straye-as/sales-dashboard/internal/dashboard/sorting"
	"github.com/straye-as/sales-dashboard/internal/dashboard/ui"
	"github.com/straye-as/sales-dashboard/internal/domain"
)

// CalendarEntry is one item on the calendar widget
type CalendarEntry struct {
	ID     string
	Title  string
	Start  domain.Date
	End    *domain.Date
	Kind   string
	Amount decimal.Decimal
	Action ui.Action
}

// CalendarAdapter hides the calendar widget
type CalendarAdapter interface {
	SetEntries(entries []CalendarEntry)
}

// CalendarEntries composes events, activities and general expenses into
// calendar entries ordered by start date
func CalendarEntries(
	events []domain.CalendarEventDTO,
	activities []domain.LeadActivityDTO,
	expenses []domain.GeneralExpenseDTO,
	leadNames map[string]string,
) []CalendarEntry {
	entries := make([]CalendarEntry, 0, len(events)+len(activities)+len(expenses))

	for _, e := range events {
		id := e.ID.String()
		title := string(e.Type)
		if e.LeadName != "" {
			title += ": " + e.LeadName
		}
		if e.Description != "" {
			title += " - " + e.Description
		}
		entries = append(entries, CalendarEntry{
			ID: id, Title: title, Start: e.Date, End: e.EndDate,
			Kind: "calendar_event", Amount: e.Amount,
			Action: ui.Action{Name: "edit_calendar_event", Label: "Edit", Params: idParams(id)},
		})
	}

	for _, a := range activities {
		id := a.ID.String()
		title := string(a.ActivityType)
		if name := leadNames[a.LeadID.String()]; name != "" {
			title += ": " + name
		}
		entries = append(entries, CalendarEntry{
			ID: id, Title: title, Start: a.ActivityDate,
			Kind: "lead_activity", Amount: a.Expenditure,
			Action: ui.Action{Name: "edit_lead_activity", Label: "Edit", Params: idParams(id)},
		})
	}

	for _, x := range expenses {
		id := x.ID.String()
		entries = append(entries, CalendarEntry{
			ID: id, Title: "Expense: " + x.Description, Start: x.Date,
			Kind: "general_expense", Amount: x.Amount,
			Action: ui.Action{Name: "edit_general_expense", Label: "Edit", Params: idParams(id)},
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Start.Before(entries[j].Start)
	})
	return entries
}

// LeadNames maps lead id to display name
func LeadNames(leads []domain.LeadDTO) map[string]string {
	names := make(map[string]string, len(leads))
	for _, l := range leads {
		names[l.ID.String()] = l.FullName()
	}
	return names
}

// DocumentCalendar draws calendar entries into a document container
type DocumentCalendar struct {
	doc *ui.Document
	id  string
}

func NewDocumentCalendar(doc *ui.Document, id string) *DocumentCalendar {
	return &DocumentCalendar{doc: doc, id: id}
}

func (c *DocumentCalendar) SetEntries(entries []CalendarEntry) {
	rows := make([]ui.Row, 0, len(entries))
	for _, e := range entries {
		end := ""
		if e.End != nil {
			end = e.End.String()
		}
		rows = append(rows, ui.Row{
			Key:     e.Kind + ":" + e.ID,
			Cells:   []string{e.Start.String(), end, e.Title, money(e.Amount)},
			Actions: []ui.Action{e.Action},
		})
	}
	if len(rows) == 0 {
		rows = []ui.Row{{Cells: []string{"Nothing scheduled"}, Placeholder: true}}
	}
	c.doc.Replace(c.id, ui.Content{
		Title:   "Calendar",
		Headers: []string{"Start", "End", "Title", "Amount"},
		Rows:    rows,
		Data:    append([]CalendarEntry(nil), entries...),
	})
}

// RenderLeadDetail draws one lead and the activities recorded against it
func RenderLeadDetail(doc *ui.Document, lead domain.LeadDTO, activities []domain.LeadActivityDTO, state sorting.State) {
	own := make([]domain.LeadActivityDTO, 0, len(activities))
	total := decimal.Zero
	for _, a := range activities {
		if a.LeadID == lead.ID {
			own = append(own, a)
			total = total.Add(a.Expenditure)
		}
	}

	fields := [][2]string{
		{"Name", lead.FullName()},
		{"Title", orNA(lead.Title)},
		{"Company", lead.Company},
		{"Email", orNA(lead.Email)},
		{"Phone", orNA(lead.Phone)},
		{"Product", orNA(lead.Product)},
		{"Stage", string(lead.Stage)},
		{"Date of Contact", lead.DateOfContact.String()},
		{"Follow Up", dateCell(lead.FollowUp)},
		{"Notes", orNA(lead.Notes)},
	}
	rows := make([]ui.Row, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, ui.Row{Key: f[0], Cells: []string{f[0], f[1]}})
	}
	id := lead.ID.String()
	doc.Replace(LeadDetailPanel, ui.Content{
		Title:  lead.FullName(),
		Rows:   rows,
		Footer: []string{"Total Expenditure", money(total)},
		Data:   lead,
	})
	RenderActivities(doc, LeadActivitiesTable, own, map[string]string{id: lead.FullName()}, state)
}
