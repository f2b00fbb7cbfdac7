package web

import (
	"github.com/straye-as/sales-dashboard/internal/dashboard"
	"github.com/straye-as/sales-dashboard/internal/dashboard/view"
)

var containerTables = map[string]string{
	view.LeadsTable:             dashboard.TableLeads,
	view.LeadActivitiesTable:    dashboard.TableActivities,
	view.GeneralExpensesTable:   dashboard.TableGeneralExpenses,
	view.CalendarEventsTable:    dashboard.TableCalendarEvents,
	view.ExpenditureReportTable: dashboard.TableExpenditureReport,
}
