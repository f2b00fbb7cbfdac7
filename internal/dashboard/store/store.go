// Package store is the dashboard's in-memory cache of backend collections and
// the single source of truth for every view.
package store

import (
	"context"
	"fmt"

	"github.com/straye-as/sales-dashboard/internal/dashboard/gateway"
	"github.com/straye-as/sales-dashboard/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Kind names a cached collection
type Kind string

const (
	KindLeads             Kind = "leads"
	KindLeadActivities    Kind = "lead_activities"
	KindGeneralExpenses   Kind = "general_expenses"
	KindCalendarEvents    Kind = "calendar_events"
	KindExpenditureReport Kind = "expenditure_report"
)

// Kinds lists every kind in a fixed order
var Kinds = []Kind{
	KindLeads, KindLeadActivities, KindGeneralExpenses, KindCalendarEvents, KindExpenditureReport,
}

// refresher is the kind-agnostic face of a Cache
type refresher interface {
	Kind() Kind
	Loaded() bool
	Pending() bool
	Requested() domain.DateRange
	Invalidate()
	refresh(ctx context.Context, filter domain.DateRange) error
}

func (c *Cache[T]) refresh(ctx context.Context, filter domain.DateRange) error {
	_, err := c.Refresh(ctx, filter)
	return err
}

// Store owns one cache per kind
type Store struct {
	leads      *Cache[domain.LeadDTO]
	activities *Cache[domain.LeadActivityDTO]
	expenses   *Cache[domain.GeneralExpenseDTO]
	events     *Cache[domain.CalendarEventDTO]
	report     *Cache[domain.ExpenditureReportRowDTO]
	byKind     map[Kind]refresher
}

// Fetchers supplies the list call of every kind
type Fetchers struct {
	Leads             Fetcher[domain.LeadDTO]
	LeadActivities    Fetcher[domain.LeadActivityDTO]
	GeneralExpenses   Fetcher[domain.GeneralExpenseDTO]
	CalendarEvents    Fetcher[domain.CalendarEventDTO]
	ExpenditureReport Fetcher[domain.ExpenditureReportRowDTO]
}

// GatewayFetchers lists every kind through gw
func GatewayFetchers(gw *gateway.Gateway) Fetchers {
	return Fetchers{
		Leads: func(ctx context.Context, _ domain.DateRange) ([]domain.LeadDTO, error) {
			return gw.Leads.List(ctx, nil)
		},
		LeadActivities: func(ctx context.Context, _ domain.DateRange) ([]domain.LeadActivityDTO, error) {
			return gw.LeadActivities.List(ctx, nil)
		},
		GeneralExpenses: func(ctx context.Context, _ domain.DateRange) ([]domain.GeneralExpenseDTO, error) {
			return gw.GeneralExpenses.List(ctx, nil)
		},
		CalendarEvents: func(ctx context.Context, _ domain.DateRange) ([]domain.CalendarEventDTO, error) {
			return gw.CalendarEvents.List(ctx, nil)
		},
		ExpenditureReport: gw.ExpenditureReport,
	}
}

// New creates a store with empty caches
func New(f Fetchers, logger *zap.Logger) *Store {
	s := &Store{
		leads:      NewCache(KindLeads, f.Leads, logger),
		activities: NewCache(KindLeadActivities, f.LeadActivities, logger),
		expenses:   NewCache(KindGeneralExpenses, f.GeneralExpenses, logger),
		events:     NewCache(KindCalendarEvents, f.CalendarEvents, logger),
		report:     NewCache(KindExpenditureReport, f.ExpenditureReport, logger),
	}
	s.byKind = map[Kind]refresher{
		KindLeads:             s.leads,
		KindLeadActivities:    s.activities,
		KindGeneralExpenses:   s.expenses,
		KindCalendarEvents:    s.events,
		KindExpenditureReport: s.report,
	}
	return s
}

func (s *Store) Leads() *Cache[domain.LeadDTO]                             { return s.leads }
func (s *Store) LeadActivities() *Cache[domain.LeadActivityDTO]            { return s.activities }
func (s *Store) GeneralExpenses() *Cache[domain.GeneralExpenseDTO]         { return s.expenses }
func (s *Store) CalendarEvents() *Cache[domain.CalendarEventDTO]           { return s.events }
func (s *Store) ExpenditureReport() *Cache[domain.ExpenditureReportRowDTO] { return s.report }

func (s *Store) lookup(kind Kind) (refresher, error) {
	r, ok := s.byKind[kind]
	if !ok {
		return nil, fmt.Errorf("unknown kind: %s", kind)
	}
	return r, nil
}

// Refresh refreshes kind with filter
func (s *Store) Refresh(ctx context.Context, kind Kind, filter domain.DateRange) error {
	r, err := s.lookup(kind)
	if err != nil {
		return err
	}
	return r.refresh(ctx, filter)
}

// RefreshCurrent refreshes kind with the filter last requested for it, so a
// filter still in flight is not replaced by the one currently shown
func (s *Store) RefreshCurrent(ctx context.Context, kind Kind) error {
	r, err := s.lookup(kind)
	if err != nil {
		return err
	}
	return r.refresh(ctx, r.Requested())
}

// Invalidate detaches future refreshes of kind from in-flight ones
func (s *Store) Invalidate(kind Kind) {
	if r, err := s.lookup(kind); err == nil {
		r.Invalidate()
	}
}

// Loaded reports whether kind has been fetched at least once
func (s *Store) Loaded(kind Kind) bool {
	r, err := s.lookup(kind)
	return err == nil && r.Loaded()
}

// Pending reports whether a refresh of kind is in flight
func (s *Store) Pending(kind Kind) bool {
	r, err := s.lookup(kind)
	return err == nil && r.Pending()
}

// Init loads kinds concurrently and returns the first error
func (s *Store) Init(ctx context.Context, kinds ...Kind) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, kind := range kinds {
		r, err := s.lookup(kind)
		if err != nil {
			return err
		}
		g.Go(func() error {
			if err := r.refresh(ctx, domain.DateRange{}); err != nil {
				return fmt.Errorf("failed to load %s: %w", r.Kind(), err)
			}
			return nil
		})
	}
	return g.Wait()
}
