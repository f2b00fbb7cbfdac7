package dashboard_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/sales-dashboard/internal/dashboard"
	"github.com/straye-as/sales-dashboard/internal/dashboard/form"
	"github.com/straye-as/sales-dashboard/internal/dashboard/gateway"
	"github.com/straye-as/sales-dashboard/internal/dashboard/store"
	"github.com/straye-as/sales-dashboard/internal/dashboard/ui"
	"github.com/straye-as/sales-dashboard/internal/dashboard/view"
	"github.com/straye-as/sales-dashboard/internal/domain"
	"github.com/straye-as/sales-dashboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// gate holds requests to one API path until released
type gate struct {
	path    string
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGate(path string) *gate {
	return &gate{path: path, started: make(chan struct{}, 8), release: make(chan struct{})}
}

func (g *gate) open() { g.once.Do(func() { close(g.release) }) }

func (g *gate) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.TrimSuffix(r.URL.Path, "/") == g.path && r.Method == http.MethodGet {
			g.started <- struct{}{}
			<-g.release
		}
		next.ServeHTTP(w, r)
	})
}

var today = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

func newApp(t *testing.T, g *gate) (*dashboard.App, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	var h http.Handler = testutil.NewAPIRouter(t, db, testutil.TestConfig())
	if g != nil {
		h = g.wrap(h)
	}
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	if g != nil {
		// registered after srv.Close so it runs first
		t.Cleanup(g.open)
	}

	gw := gateway.New(gateway.NewClientWithHTTP(srv.URL, "", srv.Client(), zap.NewNop()))
	app := dashboard.New(gw, zap.NewNop(), dashboard.WithClock(func() time.Time { return today }))
	return app, db
}

func rowKeys(t *testing.T, doc *ui.Document, id string) []string {
	t.Helper()
	c, ok := doc.Content(id)
	require.True(t, ok, "container %s not painted", id)
	var keys []string
	for _, r := range c.Rows {
		if !r.Placeholder {
			keys = append(keys, r.Key)
		}
	}
	return keys
}

func messages(toasts []ui.Toast, level ui.Level) []string {
	var out []string
	for _, t := range toasts {
		if t.Level == level {
			out = append(out, t.Message)
		}
	}
	return out
}

// confirmAsync dispatches action and answers its confirmation dialog
func confirmAsync(t *testing.T, app *dashboard.App, action, id string, yes bool) error {
	t.Helper()
	done := make(chan error, 1)
	go func() {
		done <- app.Dispatch(context.Background(), action, map[string]string{"id": id})
	}()

	select {
	case prompt := <-app.Confirm().Opened():
		assert.Contains(t, prompt, "Are you sure")
	case <-time.After(5 * time.Second):
		t.Fatal("confirmation never opened")
	}
	require.True(t, app.Confirm().Resolve(yes))

	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("action did not finish")
		return nil
	}
}

func TestApp_InitPaintsLeadsView(t *testing.T) {
	app, db := newApp(t, nil)
	lead := testutil.CreateTestLead(t, db, "Ama", "Mensah Farms", domain.LeadStageQualified)

	require.NoError(t, app.Init(context.Background()))

	v, arg := app.Active()
	assert.Equal(t, dashboard.ViewLeads, v)
	assert.Empty(t, arg)
	assert.Equal(t, []string{lead.ID.String()}, rowKeys(t, app.Document(), view.LeadsTable))
	for _, id := range dashboard.Containers(dashboard.ViewLeads) {
		_, ok := app.Document().Content(id)
		assert.True(t, ok, "container %s", id)
	}
	assert.True(t, app.Store().Loaded(store.KindLeads))
	assert.False(t, app.Store().Loaded(store.KindGeneralExpenses), "only the landing view's data is fetched")
	assert.False(t, app.Loading().Active())
}

func TestApp_NavigateUnknownView(t *testing.T) {
	app, _ := newApp(t, nil)

	err := app.Navigate(context.Background(), dashboard.View("reports"), "")
	assert.ErrorIs(t, err, dashboard.ErrUnknownView)

	v, _ := app.Active()
	assert.Equal(t, dashboard.ViewLeads, v)
}

func TestApp_StaleViewIsNotPainted(t *testing.T) {
	g := newGate("/api/general_expenses")
	app, db := newApp(t, g)
	testutil.CreateTestExpense(t, db, testutil.Day(2024, 5, 1), "Printer ink", "35.00")
	ctx := context.Background()

	slow := make(chan error, 1)
	go func() { slow <- app.Navigate(ctx, dashboard.ViewGeneralExpenses, "") }()

	select {
	case <-g.started:
	case <-time.After(5 * time.Second):
		t.Fatal("general expenses were never requested")
	}

	require.NoError(t, app.Navigate(ctx, dashboard.ViewLeads, ""))
	g.open()
	require.NoError(t, <-slow)

	v, _ := app.Active()
	assert.Equal(t, dashboard.ViewLeads, v)
	_, painted := app.Document().Content(view.GeneralExpensesTable)
	assert.False(t, painted, "a view the user left must not paint")
	assert.True(t, app.Store().Loaded(store.KindGeneralExpenses), "the data is still cached")

	require.NoError(t, app.Navigate(ctx, dashboard.ViewGeneralExpenses, ""))
	assert.Len(t, rowKeys(t, app.Document(), view.GeneralExpensesTable), 1)
}

func TestApp_CreateLeadThenList(t *testing.T) {
	app, _ := newApp(t, nil)
	ctx := context.Background()
	require.NoError(t, app.Init(ctx))
	assert.Empty(t, rowKeys(t, app.Document(), view.LeadsTable))

	require.NoError(t, app.Dispatch(ctx, dashboard.ActionOpenForm, map[string]string{"form": form.Lead}))
	assert.True(t, app.Modal().IsOpen(form.Lead))

	result, err := app.SubmitForm(ctx, form.Lead, map[string]string{
		"firstName":     "Kwame",
		"company":       "Asante Logistics",
		"dateOfContact": "2024-05-02",
		"followUp":      "2024-05-12",
	})
	require.NoError(t, err)
	assert.Equal(t, "Lead added successfully", result.Message)

	assert.Equal(t, []string{result.ID}, rowKeys(t, app.Document(), view.LeadsTable))
	assert.False(t, app.Modal().IsOpen(form.Lead), "a successful save closes the modal")
	assert.Contains(t, messages(app.Notifier().Drain(), ui.LevelSuccess), "Lead added successfully")

	leads := app.Store().Leads().Get()
	require.Len(t, leads, 1)
	assert.Equal(t, domain.LeadStageNew, leads[0].Stage)

	followUps, ok := app.Document().Content(view.UpcomingFollowUpsList)
	require.True(t, ok)
	require.Len(t, followUps.Rows, 1)
	assert.False(t, followUps.Rows[0].Placeholder)
}

func TestApp_EditLoadsRecordIntoModal(t *testing.T) {
	app, db := newApp(t, nil)
	ctx := context.Background()
	lead := testutil.CreateTestLead(t, db, "Ama", "Mensah Farms", domain.LeadStageProposal)
	require.NoError(t, app.Init(ctx))

	require.NoError(t, app.Dispatch(ctx, "edit_lead", map[string]string{"id": lead.ID.String()}))

	name, values, open := app.Modal().State()
	require.True(t, open)
	assert.Equal(t, form.Lead, name)
	assert.Equal(t, lead.ID.String(), values["id"])
	assert.Equal(t, "Mensah Farms", values["company"])
	assert.Equal(t, string(domain.LeadStageProposal), values["stage"])

	values["company"] = "Mensah Farms Ltd"
	_, err := app.SubmitForm(ctx, form.Lead, values)
	require.NoError(t, err)

	leads := app.Store().Leads().Get()
	require.Len(t, leads, 1, "an edit never creates a second record")
	assert.Equal(t, "Mensah Farms Ltd", leads[0].Company)
}

func TestApp_EditMissingRecordRefreshes(t *testing.T) {
	app, db := newApp(t, nil)
	ctx := context.Background()
	require.NoError(t, app.Init(ctx))
	lead := testutil.CreateTestLead(t, db, "Yaw", "Boateng Agro", domain.LeadStageNew)

	err := app.Dispatch(ctx, "edit_lead", map[string]string{"id": uuid.NewString()})
	require.NoError(t, err)

	assert.False(t, app.Modal().IsOpen(form.Lead))
	assert.Contains(t, messages(app.Notifier().Drain(), ui.LevelError), "This lead no longer exists")
	assert.Equal(t, []string{lead.ID.String()}, rowKeys(t, app.Document(), view.LeadsTable))

	err = app.Dispatch(ctx, "edit_lead", map[string]string{"id": "lead-42"})
	require.NoError(t, err)
	toasts := app.Notifier().Drain()
	assert.Contains(t, messages(toasts, ui.LevelError), "This lead no longer exists")
	assert.False(t, app.Modal().IsOpen(form.Lead))
}

func TestApp_DeleteConfirmed(t *testing.T) {
	app, db := newApp(t, nil)
	ctx := context.Background()
	lead := testutil.CreateTestLead(t, db, "Esi", "Owusu Textiles", domain.LeadStageNew)
	require.NoError(t, app.Init(ctx))
	require.Len(t, rowKeys(t, app.Document(), view.LeadsTable), 1)

	require.NoError(t, confirmAsync(t, app, "delete_lead", lead.ID.String(), true))

	assert.Empty(t, rowKeys(t, app.Document(), view.LeadsTable))
	assert.Contains(t, messages(app.Notifier().Drain(), ui.LevelSuccess), "Lead deleted successfully")
	_, pending := app.Confirm().Pending()
	assert.False(t, pending)
}

func TestApp_DeleteDeclinedKeepsRecord(t *testing.T) {
	app, db := newApp(t, nil)
	ctx := context.Background()
	lead := testutil.CreateTestLead(t, db, "Esi", "Owusu Textiles", domain.LeadStageNew)
	require.NoError(t, app.Init(ctx))

	require.NoError(t, confirmAsync(t, app, "delete_lead", lead.ID.String(), false))

	assert.Equal(t, []string{lead.ID.String()}, rowKeys(t, app.Document(), view.LeadsTable))
	assert.Empty(t, app.Notifier().Drain())

	var count int64
	require.NoError(t, db.Model(&domain.Lead{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestApp_DeleteMissingRecordStillRefreshes(t *testing.T) {
	app, db := newApp(t, nil)
	ctx := context.Background()
	require.NoError(t, app.Init(ctx))
	require.NoError(t, app.Navigate(ctx, dashboard.ViewGeneralExpenses, ""))
	assert.Empty(t, rowKeys(t, app.Document(), view.GeneralExpensesTable))

	// Created behind the cache's back; the refresh after the delete picks it up
	expense := testutil.CreateTestExpense(t, db, testutil.Day(2024, 5, 3), "Courier", "12.00")

	err := confirmAsync(t, app, "delete_general_expense", uuid.NewString(), true)
	require.NoError(t, err, "deleting a record that is already gone is not fatal")

	assert.Contains(t, messages(app.Notifier().Drain(), ui.LevelError), "This expense was already deleted")
	assert.Equal(t, []string{expense.ID.String()}, rowKeys(t, app.Document(), view.GeneralExpensesTable))
}

func TestApp_FilterReportValidation(t *testing.T) {
	app, _ := newApp(t, nil)
	ctx := context.Background()
	require.NoError(t, app.Navigate(ctx, dashboard.ViewExpenditureReport, ""))

	tests := []struct {
		name    string
		params  map[string]string
		message string
	}{
		{"missing end", map[string]string{"start_date": "2024-05-01"}, "Please select both start and end dates"},
		{"missing both", map[string]string{}, "Please select both start and end dates"},
		{"bad start", map[string]string{"start_date": "01/05/2024", "end_date": "2024-05-31"}, "Invalid start date"},
		{"end before start", map[string]string{"start_date": "2024-05-31", "end_date": "2024-05-01"}, "End date must not be before start date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := app.Dispatch(ctx, dashboard.ActionFilterReport, tt.params)
			var ve *gateway.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, []string{tt.message}, messages(app.Notifier().Drain(), ui.LevelError))
			assert.Nil(t, app.Store().ExpenditureReport().Filter().StartDate, "filter is unchanged")
		})
	}
}

func TestApp_FilterReport(t *testing.T) {
	app, db := newApp(t, nil)
	ctx := context.Background()
	testutil.CreateTestExpense(t, db, testutil.Day(2024, 4, 20), "April rent", "500.00")
	testutil.CreateTestExpense(t, db, testutil.Day(2024, 5, 4), "May fuel", "40.00")
	require.NoError(t, app.Navigate(ctx, dashboard.ViewExpenditureReport, ""))
	assert.Len(t, app.Store().ExpenditureReport().Get(), 2)

	require.NoError(t, app.Dispatch(ctx, dashboard.ActionFilterReport, map[string]string{
		"start_date": "2024-05-01",
		"end_date":   "2024-05-31",
	}))
	rows := app.Store().ExpenditureReport().Get()
	require.Len(t, rows, 1)
	assert.Equal(t, "May fuel", rows[0].Description)

	c, ok := app.Document().Content(view.ExpenditureReportTable)
	require.True(t, ok)
	assert.Contains(t, c.Title, "2024-05-01")

	require.NoError(t, app.Dispatch(ctx, dashboard.ActionClearReportFilter, nil))
	assert.Len(t, app.Store().ExpenditureReport().Get(), 2)
	assert.Nil(t, app.Store().ExpenditureReport().Filter().StartDate)
}

func TestApp_SortAction(t *testing.T) {
	app, db := newApp(t, nil)
	ctx := context.Background()
	b := testutil.CreateTestLead(t, db, "Kojo", "Baobab Foods", domain.LeadStageNew)
	a := testutil.CreateTestLead(t, db, "Abena", "Akoma Crafts", domain.LeadStageNew)
	require.NoError(t, app.Init(ctx))

	require.NoError(t, app.Dispatch(ctx, dashboard.ActionSort, map[string]string{"table": dashboard.TableLeads, "key": "company"}))
	assert.Equal(t, []string{a.ID.String(), b.ID.String()}, rowKeys(t, app.Document(), view.LeadsTable))

	require.NoError(t, app.Dispatch(ctx, dashboard.ActionSort, map[string]string{"table": dashboard.TableLeads, "key": "company"}))
	assert.Equal(t, []string{b.ID.String(), a.ID.String()}, rowKeys(t, app.Document(), view.LeadsTable))

	err := app.Dispatch(ctx, dashboard.ActionSort, map[string]string{"table": dashboard.TableLeads, "key": "nope"})
	assert.Error(t, err)
	err = app.Dispatch(ctx, dashboard.ActionSort, map[string]string{"table": "widgets", "key": "company"})
	assert.Error(t, err)
}

func TestApp_LeadDetail(t *testing.T) {
	app, db := newApp(t, nil)
	ctx := context.Background()
	lead := testutil.CreateTestLead(t, db, "Ama", "Mensah Farms", domain.LeadStageNew)
	other := testutil.CreateTestLead(t, db, "Kofi", "Kente Co", domain.LeadStageNew)
	own := testutil.CreateTestActivity(t, db, lead.ID, testutil.Day(2024, 5, 2), "20.00")
	testutil.CreateTestActivity(t, db, other.ID, testutil.Day(2024, 5, 3), "5.00")

	require.NoError(t, app.Dispatch(ctx, dashboard.ActionViewLead, map[string]string{"id": lead.ID.String()}))

	v, arg := app.Active()
	assert.Equal(t, dashboard.ViewLeadDetail, v)
	assert.Equal(t, lead.ID.String(), arg)
	assert.Equal(t, []string{own.ID.String()}, rowKeys(t, app.Document(), view.LeadActivitiesTable))

	require.NoError(t, app.Navigate(ctx, dashboard.ViewLeadDetail, uuid.NewString()))
	panel, ok := app.Document().Content(view.LeadDetailPanel)
	require.True(t, ok)
	require.Len(t, panel.Rows, 1)
	assert.Equal(t, []string{"Lead not found"}, panel.Rows[0].Cells)
}

func TestApp_UnknownAction(t *testing.T) {
	app, _ := newApp(t, nil)

	err := app.Dispatch(context.Background(), "launch_rockets", nil)
	assert.True(t, errors.Is(err, ui.ErrUnknownAction))
	assert.False(t, app.HasAction("launch_rockets"))
	assert.True(t, app.HasAction("delete_calendar_event"))
	assert.True(t, dashboard.NeedsConfirmation("delete_lead"))
	assert.False(t, dashboard.NeedsConfirmation("edit_lead"))
}
