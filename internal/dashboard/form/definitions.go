package form

import "github.com/straye-as/sales-dashboard/internal/dashboard/refresh"

// Form names double as their mutation names
const (
	Lead           = string(refresh.MutationLead)
	LeadActivity   = string(refresh.MutationLeadActivity)
	GeneralExpense = string(refresh.MutationGeneralExpense)
	CalendarEvent  = string(refresh.MutationCalendarEvent)
)

// LeadForm is the add/edit lead modal
func LeadForm(target Target) Form {
	return Form{
		Name:     Lead,
		Mutation: refresh.MutationLead,
		Target:   target,
		Fields: []Field{
			{Name: "firstName", Label: "First name", Required: true},
			{Name: "lastName", Label: "Last name"},
			{Name: "title", Label: "Title"},
			{Name: "company", Label: "Company", Required: true},
			{Name: "email", Label: "Email"},
			{Name: "phone", Label: "Phone"},
			{Name: "product", Label: "Product"},
			{Name: "stage", Label: "Stage"},
			{Name: "dateOfContact", Label: "Date of contact", Required: true},
			{Name: "followUp", Label: "Follow up"},
			{Name: "notes", Label: "Notes"},
		},
	}
}

// LeadActivityForm is the add/edit activity modal
func LeadActivityForm(target Target) Form {
	return Form{
		Name:     LeadActivity,
		Mutation: refresh.MutationLeadActivity,
		Target:   target,
		Fields: []Field{
			{Name: "lead_id", Label: "Lead", Required: true},
			{Name: "activity_type", Label: "Activity type", Required: true},
			{Name: "activity_date", Label: "Activity date", Required: true},
			{Name: "description", Label: "Description"},
			{Name: "expenditure", Label: "Expenditure", Numeric: true},
		},
	}
}

// GeneralExpenseForm is the add/edit general expense modal
func GeneralExpenseForm(target Target) Form {
	return Form{
		Name:     GeneralExpense,
		Mutation: refresh.MutationGeneralExpense,
		Target:   target,
		Fields: []Field{
			{Name: "date", Label: "Date", Required: true},
			{Name: "description", Label: "Description", Required: true},
			{Name: "amount", Label: "Amount", Numeric: true},
		},
	}
}

// CalendarEventForm is the add/edit calendar event modal
func CalendarEventForm(target Target) Form {
	return Form{
		Name:     CalendarEvent,
		Mutation: refresh.MutationCalendarEvent,
		Target:   target,
		Fields: []Field{
			{Name: "date", Label: "Date", Required: true},
			{Name: "end_date", Label: "End date"},
			{Name: "type", Label: "Type", Required: true},
			{Name: "description", Label: "Description"},
			{Name: "amount", Label: "Amount", Numeric: true},
			{Name: "lead_id", Label: "Lead"},
		},
	}
}
