package refresh_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/straye-as/sales-dashboard/internal/dashboard/refresh"
	"github.com/straye-as/sales-dashboard/internal/dashboard/store"
	"github.com/straye-as/sales-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeModal struct{ closed int }

func (m *fakeModal) Close() { m.closed++ }

type fakeNotifier struct {
	mu     sync.Mutex
	errors []string
}

func (n *fakeNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

type counters struct {
	leads, activities, expenses, events, report atomic.Int32
	eventsErr                                   error
}

func (c *counters) store() *store.Store {
	return store.New(store.Fetchers{
		Leads: func(ctx context.Context, _ domain.DateRange) ([]domain.LeadDTO, error) {
			c.leads.Add(1)
			return nil, nil
		},
		LeadActivities: func(ctx context.Context, _ domain.DateRange) ([]domain.LeadActivityDTO, error) {
			c.activities.Add(1)
			return nil, nil
		},
		GeneralExpenses: func(ctx context.Context, _ domain.DateRange) ([]domain.GeneralExpenseDTO, error) {
			c.expenses.Add(1)
			return nil, nil
		},
		CalendarEvents: func(ctx context.Context, _ domain.DateRange) ([]domain.CalendarEventDTO, error) {
			c.events.Add(1)
			if c.events.Load() > 1 {
				return nil, c.eventsErr
			}
			return nil, nil
		},
		ExpenditureReport: func(ctx context.Context, _ domain.DateRange) ([]domain.ExpenditureReportRowDTO, error) {
			c.report.Add(1)
			return nil, nil
		},
	}, zap.NewNop())
}

func TestKinds(t *testing.T) {
	assert.ElementsMatch(t,
		[]store.Kind{store.KindLeads, store.KindLeadActivities, store.KindCalendarEvents, store.KindExpenditureReport},
		refresh.Kinds(refresh.MutationLead))
	assert.Contains(t, refresh.Kinds(refresh.MutationCalendarEvent), store.KindLeads)
	assert.Contains(t, refresh.Kinds(refresh.MutationGeneralExpense), store.KindExpenditureReport)
	assert.Empty(t, refresh.Kinds("deal"))
}

func TestAfterMutation_RefreshesOnlyLoadedKinds(t *testing.T) {
	c := &counters{}
	s := c.store()
	ctx := context.Background()
	require.NoError(t, s.Init(ctx, store.KindLeads, store.KindGeneralExpenses))

	modal := &fakeModal{}
	notifier := &fakeNotifier{}
	coordinator := refresh.NewCoordinator(s, notifier, zap.NewNop())

	require.NoError(t, coordinator.AfterMutation(ctx, refresh.MutationLead, modal))

	assert.Equal(t, 1, modal.closed)
	assert.Equal(t, int32(2), c.leads.Load(), "leads refetched")
	assert.Equal(t, int32(1), c.expenses.Load(), "general expenses are not affected by lead mutations")
	assert.Zero(t, c.activities.Load(), "unloaded kinds wait for navigation")
	assert.Zero(t, c.report.Load())
	assert.Empty(t, notifier.errors)
}

func TestAfterMutation_FailureDoesNotStopSiblings(t *testing.T) {
	c := &counters{eventsErr: errors.New("backend down")}
	s := c.store()
	ctx := context.Background()
	require.NoError(t, s.Init(ctx, store.KindLeads, store.KindCalendarEvents, store.KindExpenditureReport))

	notifier := &fakeNotifier{}
	coordinator := refresh.NewCoordinator(s, notifier, zap.NewNop())

	err := coordinator.AfterMutation(ctx, refresh.MutationCalendarEvent, &fakeModal{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "calendar_events")

	assert.Equal(t, int32(2), c.leads.Load())
	assert.Equal(t, int32(2), c.report.Load())
	require.Len(t, notifier.errors, 1)
	assert.Contains(t, notifier.errors[0], "Could not refresh calendar")
}

func TestAfterMutation_NilModalAndUnknownMutation(t *testing.T) {
	c := &counters{}
	coordinator := refresh.NewCoordinator(c.store(), &fakeNotifier{}, zap.NewNop())

	assert.NoError(t, coordinator.AfterMutation(context.Background(), refresh.MutationGeneralExpense, nil))

	modal := &fakeModal{}
	assert.Error(t, coordinator.AfterMutation(context.Background(), "deal", modal))
	assert.Zero(t, modal.closed)
}

func TestAfterMutation_RefetchesKindStillLoading(t *testing.T) {
	var backend, calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	none := func(ctx context.Context, _ domain.DateRange) ([]domain.LeadDTO, error) { return nil, nil }

	s := store.New(store.Fetchers{
		Leads: none,
		CalendarEvents: func(ctx context.Context, _ domain.DateRange) ([]domain.CalendarEventDTO, error) {
			n := calls.Add(1)
			events := make([]domain.CalendarEventDTO, backend.Load())
			if n == 1 {
				close(started)
				<-release
			}
			return events, nil
		},
		ExpenditureReport: func(ctx context.Context, _ domain.DateRange) ([]domain.ExpenditureReportRowDTO, error) {
			return nil, nil
		},
	}, zap.NewNop())
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- s.Refresh(ctx, store.KindCalendarEvents, domain.DateRange{}) }()
	<-started
	require.False(t, s.Loaded(store.KindCalendarEvents))
	require.True(t, s.Pending(store.KindCalendarEvents))

	// the event is created after the first fetch read the backend
	backend.Add(1)
	coordinator := refresh.NewCoordinator(s, &fakeNotifier{}, zap.NewNop())
	require.NoError(t, coordinator.AfterMutation(ctx, refresh.MutationCalendarEvent, nil))

	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, int32(2), calls.Load())
	assert.True(t, s.Loaded(store.KindCalendarEvents))
	assert.Len(t, s.CalendarEvents().Get(), 1, "the pre-mutation result is discarded")
	assert.False(t, s.Loaded(store.KindLeads), "kinds never requested stay unloaded")
}
