// Package dashboard ties the store, renderers, forms and actions into the
// single-page sales dashboard.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/straye-as/sales-dashboard/internal/dashboard/form"
	"github.com/straye-as/sales-dashboard/internal/dashboard/gateway"
	"github.com/straye-as/sales-dashboard/internal/dashboard/refresh"
	"github.com/straye-as/sales-dashboard/internal/dashboard/sorting"
	"github.com/straye-as/sales-dashboard/internal/dashboard/store"
	"github.com/straye-as/sales-dashboard/internal/dashboard/ui"
	"github.com/straye-as/sales-dashboard/internal/dashboard/view"
	"github.com/straye-as/sales-dashboard/internal/domain"
	"go.uber.org/zap"
)

// View names a page of the dashboard
type View string

const (
	ViewLeads             View = "leads"
	ViewLeadDetail        View = "lead_detail"
	ViewGeneralExpenses   View = "general_expenses"
	ViewCalendar          View = "calendar"
	ViewExpenditureReport View = "expenditure_report"
)

// Views lists every view in menu order
var Views = []View{ViewLeads, ViewGeneralExpenses, ViewCalendar, ViewExpenditureReport, ViewLeadDetail}

var ErrUnknownView = errors.New("unknown view")

// viewKinds are the kinds a view draws from
var viewKinds = map[View][]store.Kind{
	ViewLeads:             {store.KindLeads},
	ViewLeadDetail:        {store.KindLeads, store.KindLeadActivities},
	ViewGeneralExpenses:   {store.KindGeneralExpenses},
	ViewCalendar:          {store.KindCalendarEvents, store.KindLeadActivities, store.KindGeneralExpenses, store.KindLeads},
	ViewExpenditureReport: {store.KindExpenditureReport},
}

// viewContainers are the document containers a view shows, top to bottom
var viewContainers = map[View][]string{
	ViewLeads:             {view.LeadStatsCards, view.LeadStageChart, view.UpcomingFollowUpsList, view.LeadsTable},
	ViewLeadDetail:        {view.LeadDetailPanel, view.LeadActivitiesTable},
	ViewGeneralExpenses:   {view.GeneralExpensesTable},
	ViewCalendar:          {view.CalendarGrid, view.CalendarEventsTable},
	ViewExpenditureReport: {view.ExpenditureReportTable},
}

// Containers lists the containers of v
func Containers(v View) []string {
	return append([]string(nil), viewContainers[v]...)
}

// App is one dashboard session
type App struct {
	gw          *gateway.Gateway
	store       *store.Store
	doc         *ui.Document
	loading     *ui.Loading
	modal       *ui.Modal
	notifier    *ui.Notifier
	confirm     *ui.ConfirmDialog
	actions     *ui.ActionTable
	forms       *form.Controller
	coordinator *refresh.Coordinator
	chart       view.ChartAdapter
	calendar    view.CalendarAdapter
	logger      *zap.Logger
	now         func() time.Time

	leadSort     *sorting.Controller[domain.LeadDTO]
	activitySort *sorting.Controller[domain.LeadActivityDTO]
	expenseSort  *sorting.Controller[domain.GeneralExpenseDTO]
	eventSort    *sorting.Controller[domain.CalendarEventDTO]
	reportSort   *sorting.Controller[domain.ExpenditureReportRowDTO]

	mu         sync.Mutex
	active     View
	arg        string
	generation uint64

	// paintMu serializes read-then-draw so an older paint never lands last
	paintMu sync.Mutex
}

// Option customizes an App
type Option func(*App)

// WithClock replaces time.Now for the follow-up list
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// New creates a dashboard session over gw
func New(gw *gateway.Gateway, logger *zap.Logger, opts ...Option) *App {
	a := &App{
		gw:       gw,
		store:    store.New(store.GatewayFetchers(gw), logger),
		doc:      ui.NewDocument(),
		loading:  &ui.Loading{},
		modal:    &ui.Modal{},
		notifier: &ui.Notifier{},
		confirm:  ui.NewConfirmDialog(),
		actions:  ui.NewActionTable(),
		logger:   logger,
		now:      time.Now,
		active:   ViewLeads,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.chart = view.NewDocumentChart(a.doc, view.LeadStageChart)
	a.calendar = view.NewDocumentCalendar(a.doc, view.CalendarGrid)
	a.coordinator = refresh.NewCoordinator(a.store, a.notifier, logger)

	a.forms = form.NewController(a.modal, a.loading, a.notifier, a.coordinator, logger)
	a.forms.Register(form.LeadForm(gw.Leads))
	a.forms.Register(form.LeadActivityForm(gw.LeadActivities))
	a.forms.Register(form.GeneralExpenseForm(gw.GeneralExpenses))
	a.forms.Register(form.CalendarEventForm(gw.CalendarEvents))

	a.leadSort = sorting.NewController(view.LeadColumns, func(items []domain.LeadDTO, st sorting.State) {
		view.RenderLeads(a.doc, items, st)
	})
	a.activitySort = sorting.NewController(view.ActivityColumns, func(items []domain.LeadActivityDTO, st sorting.State) {
		view.RenderActivities(a.doc, view.LeadActivitiesTable, items, view.LeadNames(a.store.Leads().Get()), st)
	})
	a.expenseSort = sorting.NewController(view.ExpenseColumns, func(items []domain.GeneralExpenseDTO, st sorting.State) {
		view.RenderGeneralExpenses(a.doc, items, st)
	})
	a.eventSort = sorting.NewController(view.EventColumns, func(items []domain.CalendarEventDTO, st sorting.State) {
		view.RenderCalendarEvents(a.doc, items, st)
	})
	a.reportSort = sorting.NewController(view.ReportColumns, func(items []domain.ExpenditureReportRowDTO, st sorting.State) {
		view.RenderExpenditureReport(a.doc, items, a.store.ExpenditureReport().Filter(), st)
	})

	a.subscribe()
	a.registerActions()
	return a
}

func (a *App) Document() *ui.Document            { return a.doc }
func (a *App) Store() *store.Store               { return a.store }
func (a *App) Modal() *ui.Modal                  { return a.modal }
func (a *App) Notifier() *ui.Notifier            { return a.notifier }
func (a *App) Loading() *ui.Loading              { return a.loading }
func (a *App) Confirm() *ui.ConfirmDialog        { return a.confirm }
func (a *App) Forms() *form.Controller           { return a.forms }
func (a *App) Gateway() *gateway.Gateway         { return a.gw }
func (a *App) Coordinator() *refresh.Coordinator { return a.coordinator }

// Active returns the current view and its argument
func (a *App) Active() (View, string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active, a.arg
}

// Init loads the data of the landing view and paints it
func (a *App) Init(ctx context.Context) error {
	return a.Navigate(ctx, ViewLeads, "")
}

// Navigate switches the active view, fetching the kinds it needs the first
// time. A fetch that resolves after the user moved on paints nothing.
func (a *App) Navigate(ctx context.Context, v View, arg string) error {
	kinds, ok := viewKinds[v]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownView, v)
	}

	a.mu.Lock()
	a.generation++
	gen := a.generation
	a.active = v
	a.arg = arg
	a.mu.Unlock()

	var missing []store.Kind
	for _, kind := range kinds {
		if !a.store.Loaded(kind) {
			missing = append(missing, kind)
		}
	}

	var fetchErr error
	if len(missing) > 0 {
		fetchErr = a.loading.Track(func() error {
			return a.store.Init(context.WithoutCancel(ctx), missing...)
		})
		if fetchErr != nil {
			a.logger.Warn("view data load failed", zap.String("view", string(v)), zap.Error(fetchErr))
			a.notifier.Error(fmt.Sprintf("Failed to load %s: %v", v, fetchErr))
		}
	}

	if !a.isCurrent(gen) {
		a.logger.Debug("skipping paint of stale view", zap.String("view", string(v)))
		return fetchErr
	}
	a.paint(v, arg)
	return fetchErr
}

func (a *App) isCurrent(gen uint64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.generation == gen
}

// subscribe repaints the active view whenever a kind it shows is replaced
func (a *App) subscribe() {
	a.store.Leads().Subscribe(func([]domain.LeadDTO) { a.onChange(store.KindLeads) })
	a.store.LeadActivities().Subscribe(func([]domain.LeadActivityDTO) { a.onChange(store.KindLeadActivities) })
	a.store.GeneralExpenses().Subscribe(func([]domain.GeneralExpenseDTO) { a.onChange(store.KindGeneralExpenses) })
	a.store.CalendarEvents().Subscribe(func([]domain.CalendarEventDTO) { a.onChange(store.KindCalendarEvents) })
	a.store.ExpenditureReport().Subscribe(func([]domain.ExpenditureReportRowDTO) { a.onChange(store.KindExpenditureReport) })
}

func (a *App) onChange(kind store.Kind) {
	v, arg := a.Active()
	for _, k := range viewKinds[v] {
		if k == kind {
			a.paint(v, arg)
			return
		}
	}
}

// Repaint redraws the active view from the cache
func (a *App) Repaint() {
	v, arg := a.Active()
	a.paint(v, arg)
}

func (a *App) paint(v View, arg string) {
	a.paintMu.Lock()
	defer a.paintMu.Unlock()

	switch v {
	case ViewLeads:
		leads := a.store.Leads().Get()
		a.leadSort.Render(leads)
		view.RenderLeadDashboard(a.doc, a.chart, leads, a.now())
	case ViewLeadDetail:
		a.paintLeadDetail(arg)
	case ViewGeneralExpenses:
		a.expenseSort.Render(a.store.GeneralExpenses().Get())
	case ViewCalendar:
		events := a.store.CalendarEvents().Get()
		a.eventSort.Render(events)
		a.calendar.SetEntries(view.CalendarEntries(
			events,
			a.store.LeadActivities().Get(),
			a.store.GeneralExpenses().Get(),
			view.LeadNames(a.store.Leads().Get()),
		))
	case ViewExpenditureReport:
		a.reportSort.Render(a.store.ExpenditureReport().Get())
	}
}

func (a *App) paintLeadDetail(id string) {
	lead, ok := a.findLead(id)
	if !ok {
		a.doc.Replace(view.LeadDetailPanel, ui.Content{
			Title: "Lead",
			Rows:  []ui.Row{{Cells: []string{"Lead not found"}, Placeholder: true}},
		})
		view.RenderActivities(a.doc, view.LeadActivitiesTable, nil, nil, a.activitySort.State())
		return
	}
	own := a.leadActivities(lead.ID.String())
	view.RenderLeadDetail(a.doc, lead, a.activitySort.Apply(own), a.activitySort.State())
}

func (a *App) findLead(id string) (domain.LeadDTO, bool) {
	for _, l := range a.store.Leads().Get() {
		if l.ID.String() == id {
			return l, true
		}
	}
	return domain.LeadDTO{}, false
}

func (a *App) leadActivities(leadID string) []domain.LeadActivityDTO {
	var own []domain.LeadActivityDTO
	for _, act := range a.store.LeadActivities().Get() {
		if act.LeadID.String() == leadID {
			own = append(own, act)
		}
	}
	return own
}
