package store_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/straye-as/sales-dashboard/internal/dashboard/store"
	"github.com/straye-as/sales-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBackend struct {
	leadCalls   atomic.Int32
	reportCalls atomic.Int32
	reportRange atomic.Value
	eventsErr   error
}

func (b *fakeBackend) fetchers() store.Fetchers {
	return store.Fetchers{
		Leads: func(ctx context.Context, _ domain.DateRange) ([]domain.LeadDTO, error) {
			b.leadCalls.Add(1)
			return []domain.LeadDTO{{FirstName: "Ama"}}, nil
		},
		LeadActivities: func(ctx context.Context, _ domain.DateRange) ([]domain.LeadActivityDTO, error) {
			return nil, nil
		},
		GeneralExpenses: func(ctx context.Context, _ domain.DateRange) ([]domain.GeneralExpenseDTO, error) {
			return []domain.GeneralExpenseDTO{{Description: "Fuel"}}, nil
		},
		CalendarEvents: func(ctx context.Context, _ domain.DateRange) ([]domain.CalendarEventDTO, error) {
			return nil, b.eventsErr
		},
		ExpenditureReport: func(ctx context.Context, r domain.DateRange) ([]domain.ExpenditureReportRowDTO, error) {
			b.reportCalls.Add(1)
			b.reportRange.Store(r)
			return []domain.ExpenditureReportRowDTO{}, nil
		},
	}
}

func TestStore_Init(t *testing.T) {
	backend := &fakeBackend{}
	s := store.New(backend.fetchers(), zap.NewNop())

	require.NoError(t, s.Init(context.Background(), store.KindLeads, store.KindGeneralExpenses))
	assert.True(t, s.Loaded(store.KindLeads))
	assert.True(t, s.Loaded(store.KindGeneralExpenses))
	assert.False(t, s.Loaded(store.KindCalendarEvents))
	assert.Len(t, s.Leads().Get(), 1)
	assert.Equal(t, "Fuel", s.GeneralExpenses().Get()[0].Description)
}

func TestStore_InitReportsFailure(t *testing.T) {
	backend := &fakeBackend{eventsErr: errors.New("boom")}
	s := store.New(backend.fetchers(), zap.NewNop())

	err := s.Init(context.Background(), store.KindLeads, store.KindCalendarEvents)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "calendar_events")
	assert.False(t, s.Loaded(store.KindCalendarEvents))
}

func TestStore_UnknownKind(t *testing.T) {
	s := store.New((&fakeBackend{}).fetchers(), zap.NewNop())

	assert.Error(t, s.Refresh(context.Background(), "deals", domain.DateRange{}))
	assert.Error(t, s.RefreshCurrent(context.Background(), "deals"))
	assert.Error(t, s.Init(context.Background(), "deals"))
	assert.False(t, s.Loaded("deals"))
	s.Invalidate("deals")
}

func TestStore_RefreshCurrentKeepsFilter(t *testing.T) {
	backend := &fakeBackend{}
	s := store.New(backend.fetchers(), zap.NewNop())
	ctx := context.Background()

	start := domain.NewDate(2024, time.March, 1)
	end := domain.NewDate(2024, time.March, 31)
	require.NoError(t, s.Refresh(ctx, store.KindExpenditureReport, domain.DateRange{StartDate: &start, EndDate: &end}))

	s.Invalidate(store.KindExpenditureReport)
	require.NoError(t, s.RefreshCurrent(ctx, store.KindExpenditureReport))

	assert.Equal(t, int32(2), backend.reportCalls.Load())
	last := backend.reportRange.Load().(domain.DateRange)
	require.NotNil(t, last.StartDate)
	assert.Equal(t, "2024-03-01", last.StartDate.String())
}

func TestStore_RefreshCurrentUsesRequestedFilter(t *testing.T) {
	var blocked atomic.Bool
	started := make(chan struct{})
	release := make(chan struct{})

	fetchers := (&fakeBackend{}).fetchers()
	fetchers.ExpenditureReport = func(ctx context.Context, r domain.DateRange) ([]domain.ExpenditureReportRowDTO, error) {
		if r.StartDate == nil {
			return []domain.ExpenditureReportRowDTO{{Description: "all time"}}, nil
		}
		if blocked.CompareAndSwap(false, true) {
			close(started)
			<-release
		}
		return []domain.ExpenditureReportRowDTO{{Description: "january"}}, nil
	}
	s := store.New(fetchers, zap.NewNop())
	ctx := context.Background()
	require.NoError(t, s.Refresh(ctx, store.KindExpenditureReport, domain.DateRange{}))

	start := domain.NewDate(2024, time.January, 1)
	end := domain.NewDate(2024, time.January, 31)
	done := make(chan error, 1)
	go func() {
		done <- s.Refresh(ctx, store.KindExpenditureReport, domain.DateRange{StartDate: &start, EndDate: &end})
	}()
	<-started

	report := s.ExpenditureReport()
	assert.True(t, report.Pending())
	assert.Nil(t, report.Filter().StartDate, "applied filter is still the unfiltered one")
	require.NotNil(t, report.Requested().StartDate)

	s.Invalidate(store.KindExpenditureReport)
	require.NoError(t, s.RefreshCurrent(ctx, store.KindExpenditureReport))
	close(release)
	require.NoError(t, <-done)

	assert.False(t, report.Pending())
	require.NotNil(t, report.Filter().StartDate)
	assert.Equal(t, "2024-01-01", report.Filter().StartDate.String())
	rows := report.Get()
	require.Len(t, rows, 1)
	assert.Equal(t, "january", rows[0].Description)
}
