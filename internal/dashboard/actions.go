package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/straye-as/sales-dashboard/internal/dashboard/form"
	"github.com/straye-as/sales-dashboard/internal/dashboard/gateway"
	"github.com/straye-as/sales-dashboard/internal/dashboard/refresh"
	"github.com/straye-as/sales-dashboard/internal/dashboard/store"
	"github.com/straye-as/sales-dashboard/internal/dashboard/ui"
	"github.com/straye-as/sales-dashboard/internal/domain"
	"go.uber.org/zap"
)

// Action names
const (
	ActionNavigate          = "navigate"
	ActionViewLead          = "view_lead"
	ActionOpenForm          = "open_form"
	ActionCloseModal        = "close_modal"
	ActionConfirm           = "confirm"
	ActionSort              = "sort"
	ActionFilterReport      = "filter_report"
	ActionClearReportFilter = "clear_report_filter"
	ActionRefresh           = "refresh"
)

// entity binds a form to the resource it edits and deletes
type entity struct {
	name     string // form and mutation name
	label    string
	mutation refresh.Mutation
	get      func(ctx context.Context, id string) (interface{}, error)
	remove   func(ctx context.Context, id string) (gateway.Result, error)
}

func (a *App) entities() []entity {
	return []entity{
		{
			name: form.Lead, label: "lead", mutation: refresh.MutationLead,
			get:    func(ctx context.Context, id string) (interface{}, error) { return a.gw.Leads.GetByID(ctx, id) },
			remove: a.gw.Leads.Remove,
		},
		{
			name: form.LeadActivity, label: "activity", mutation: refresh.MutationLeadActivity,
			get:    func(ctx context.Context, id string) (interface{}, error) { return a.gw.LeadActivities.GetByID(ctx, id) },
			remove: a.gw.LeadActivities.Remove,
		},
		{
			name: form.GeneralExpense, label: "expense", mutation: refresh.MutationGeneralExpense,
			get: func(ctx context.Context, id string) (interface{}, error) {
				return a.gw.GeneralExpenses.GetByID(ctx, id)
			},
			remove: a.gw.GeneralExpenses.Remove,
		},
		{
			name: form.CalendarEvent, label: "event", mutation: refresh.MutationCalendarEvent,
			get:    func(ctx context.Context, id string) (interface{}, error) { return a.gw.CalendarEvents.GetByID(ctx, id) },
			remove: a.gw.CalendarEvents.Remove,
		},
	}
}

func (a *App) registerActions() {
	a.actions.Register(ActionNavigate, func(ctx context.Context, p ui.Params) error {
		return a.Navigate(ctx, View(p["view"]), p["id"])
	})
	a.actions.Register(ActionViewLead, func(ctx context.Context, p ui.Params) error {
		return a.Navigate(ctx, ViewLeadDetail, p["id"])
	})
	a.actions.Register(ActionOpenForm, a.openForm)
	a.actions.Register(ActionCloseModal, func(context.Context, ui.Params) error {
		a.modal.Close()
		return nil
	})
	a.actions.Register(ActionConfirm, func(_ context.Context, p ui.Params) error {
		a.confirm.Resolve(p["answer"] == "yes")
		return nil
	})
	a.actions.Register(ActionSort, a.sort)
	a.actions.Register(ActionFilterReport, a.filterReport)
	a.actions.Register(ActionClearReportFilter, func(ctx context.Context, _ ui.Params) error {
		return a.refreshReport(ctx, domain.DateRange{})
	})
	a.actions.Register(ActionRefresh, func(ctx context.Context, _ ui.Params) error {
		v, _ := a.Active()
		var errs []error
		for _, kind := range viewKinds[v] {
			a.store.Invalidate(kind)
			if err := a.loading.Track(func() error { return a.store.RefreshCurrent(ctx, kind) }); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})

	for _, e := range a.entities() {
		a.actions.Register("edit_"+e.name, a.editHandler(e))
		a.actions.Register("delete_"+e.name, a.deleteHandler(e))
	}
}

// Dispatch runs the handler registered for action
func (a *App) Dispatch(ctx context.Context, action string, params map[string]string) error {
	err := a.actions.Dispatch(ctx, action, params)
	if errors.Is(err, ui.ErrUnknownAction) {
		a.logger.Warn("unknown action", zap.String("action", action))
	}
	return err
}

// HasAction reports whether action is registered
func (a *App) HasAction(action string) bool {
	return a.actions.Has(action)
}

// SubmitForm submits the modal form name with values
func (a *App) SubmitForm(ctx context.Context, name string, values map[string]string) (gateway.Result, error) {
	return a.forms.Submit(ctx, name, values)
}

// openForm opens an empty modal; any params besides "form" prefill it
func (a *App) openForm(_ context.Context, p ui.Params) error {
	name := p["form"]
	if _, ok := a.forms.Form(name); !ok {
		return fmt.Errorf("%w: %s", form.ErrUnknownForm, name)
	}
	values := make(map[string]string, len(p))
	for k, v := range p {
		if k != "form" {
			values[k] = v
		}
	}
	a.modal.Open(name, values)
	return nil
}

// editHandler loads the record fresh from the backend and opens its form
func (a *App) editHandler(e entity) ui.Handler {
	return func(ctx context.Context, p ui.Params) error {
		var record interface{}
		err := a.loading.Track(func() error {
			var err error
			record, err = e.get(ctx, p["id"])
			return err
		})
		if err != nil {
			if gateway.IsNotFound(err) {
				a.notifier.Error(fmt.Sprintf("This %s no longer exists", e.label))
				return a.coordinator.AfterMutation(ctx, e.mutation, nil)
			}
			a.notifier.Error(fmt.Sprintf("Failed to load %s: %v", e.label, err))
			return err
		}

		values, err := recordValues(record)
		if err != nil {
			return err
		}
		a.modal.Open(e.name, values)
		return nil
	}
}

// deleteHandler asks for confirmation and deletes. Deleting a record that is
// already gone still refreshes the views that may show it.
func (a *App) deleteHandler(e entity) ui.Handler {
	return func(ctx context.Context, p ui.Params) error {
		ok, err := a.confirm.Ask(ctx, fmt.Sprintf("Are you sure you want to delete this %s?", e.label))
		if err != nil || !ok {
			return err
		}

		var result gateway.Result
		err = a.loading.Track(func() error {
			var err error
			result, err = e.remove(ctx, p["id"])
			return err
		})
		switch {
		case gateway.IsNotFound(err):
			a.notifier.Error(fmt.Sprintf("This %s was already deleted", e.label))
		case err != nil:
			a.logger.Warn("delete failed", zap.String("entity", e.name), zap.String("id", p["id"]), zap.Error(err))
			a.notifier.Error(fmt.Sprintf("Failed to delete %s: %v", e.label, err))
			return err
		default:
			a.notifier.Success(result.Message)
		}

		return a.loading.Track(func() error {
			return a.coordinator.AfterMutation(ctx, e.mutation, nil)
		})
	}
}

// Sortable tables
const (
	TableLeads             = "leads"
	TableActivities        = "activities"
	TableGeneralExpenses   = "general_expenses"
	TableCalendarEvents    = "calendar_events"
	TableExpenditureReport = "expenditure_report"
)

func (a *App) sort(_ context.Context, p ui.Params) error {
	key := p["key"]
	var ok bool
	switch p["table"] {
	case TableLeads:
		ok = a.leadSort.Click(key, a.store.Leads().Get())
	case TableActivities:
		_, arg := a.Active()
		ok = a.activitySort.Click(key, a.leadActivities(arg))
	case TableGeneralExpenses:
		ok = a.expenseSort.Click(key, a.store.GeneralExpenses().Get())
	case TableCalendarEvents:
		ok = a.eventSort.Click(key, a.store.CalendarEvents().Get())
	case TableExpenditureReport:
		ok = a.reportSort.Click(key, a.store.ExpenditureReport().Get())
	default:
		return fmt.Errorf("unknown table: %s", p["table"])
	}
	if !ok {
		return fmt.Errorf("column %q of %s is not sortable", key, p["table"])
	}
	return nil
}

func (a *App) filterReport(ctx context.Context, p ui.Params) error {
	if p["start_date"] == "" || p["end_date"] == "" {
		err := &gateway.ValidationError{Field: "start_date", Message: "Please select both start and end dates"}
		a.notifier.Error(err.Message)
		return err
	}
	start, err := domain.ParseDate(p["start_date"])
	if err != nil {
		a.notifier.Error("Invalid start date")
		return &gateway.ValidationError{Field: "start_date", Message: err.Error()}
	}
	end, err := domain.ParseDate(p["end_date"])
	if err != nil {
		a.notifier.Error("Invalid end date")
		return &gateway.ValidationError{Field: "end_date", Message: err.Error()}
	}
	if end.Before(start) {
		err := &gateway.ValidationError{Field: "end_date", Message: "End date must not be before start date"}
		a.notifier.Error(err.Message)
		return err
	}
	return a.refreshReport(ctx, domain.DateRange{StartDate: &start, EndDate: &end})
}

func (a *App) refreshReport(ctx context.Context, filter domain.DateRange) error {
	err := a.loading.Track(func() error {
		return a.store.Refresh(ctx, store.KindExpenditureReport, filter)
	})
	if err != nil {
		a.notifier.Error(fmt.Sprintf("Failed to load expenditure report: %v", err))
	}
	return err
}

// recordValues flattens a wire record into form values keyed by JSON name
func recordValues(record interface{}) (map[string]string, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var fields map[string]interface{}
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}

	values := make(map[string]string, len(fields))
	for k, v := range fields {
		switch t := v.(type) {
		case nil:
			values[k] = ""
		case string:
			values[k] = t
		default:
			values[k] = fmt.Sprint(t)
		}
	}
	return values, nil
}

// NeedsConfirmation reports whether action blocks on the confirmation dialog
func NeedsConfirmation(action string) bool {
	return strings.HasPrefix(action, "delete_")
}
