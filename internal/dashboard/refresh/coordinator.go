// Package refresh decides which cached kinds a mutation makes stale and
// refreshes them.
package refresh

import (
	"context"
	"errors"
	"fmt"

	"github.com/straye-as/sales-dashboard/internal/dashboard/store"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Mutation is the entity a successful create, update or delete touched
type Mutation string

const (
	MutationLead           Mutation = "lead"
	MutationLeadActivity   Mutation = "lead_activity"
	MutationGeneralExpense Mutation = "general_expense"
	MutationCalendarEvent  Mutation = "calendar_event"
)

// affected lists the kinds each mutation denormalizes into
var affected = map[Mutation][]store.Kind{
	// lead deletes cascade to activities and events
	MutationLead: {
		store.KindLeads, store.KindLeadActivities, store.KindCalendarEvents, store.KindExpenditureReport,
	},
	MutationLeadActivity: {
		store.KindLeadActivities, store.KindCalendarEvents, store.KindExpenditureReport, store.KindLeads,
	},
	MutationGeneralExpense: {
		store.KindGeneralExpenses, store.KindExpenditureReport, store.KindCalendarEvents,
	},
	// follow_up events move the linked lead's follow-up date
	MutationCalendarEvent: {
		store.KindCalendarEvents, store.KindExpenditureReport, store.KindLeads,
	},
}

// Kinds returns the kinds refreshed after m
func Kinds(m Mutation) []store.Kind {
	return append([]store.Kind(nil), affected[m]...)
}

// Closer is the dialog hosting the mutating form
type Closer interface {
	Close()
}

// Notifier surfaces refresh failures to the user
type Notifier interface {
	Error(message string)
}

// Coordinator runs the refresh cascade after a mutation
type Coordinator struct {
	store    *store.Store
	notifier Notifier
	logger   *zap.Logger
}

func NewCoordinator(s *store.Store, notifier Notifier, logger *zap.Logger) *Coordinator {
	return &Coordinator{store: s, notifier: notifier, logger: logger}
}

// AfterMutation must be called only once the mutation request succeeded.
// It closes modal, invalidates every affected kind and refreshes the loaded
// or loading ones concurrently, each with the filter last requested for it.
// A first fetch still in flight may predate the mutation, so it is refetched
// too. Kinds never requested are fetched on first navigation. A failing kind is reported and
// does not stop its siblings; the joined errors are returned.
func (c *Coordinator) AfterMutation(ctx context.Context, m Mutation, modal Closer) error {
	kinds, ok := affected[m]
	if !ok {
		return fmt.Errorf("unknown mutation: %s", m)
	}

	if modal != nil {
		modal.Close()
	}

	for _, kind := range kinds {
		c.store.Invalidate(kind)
	}

	errs := make([]error, len(kinds))
	var g errgroup.Group
	for i, kind := range kinds {
		if !c.store.Loaded(kind) && !c.store.Pending(kind) {
			continue
		}
		g.Go(func() error {
			if err := c.store.RefreshCurrent(ctx, kind); err != nil {
				c.logger.Warn("refresh after mutation failed",
					zap.String("mutation", string(m)),
					zap.String("kind", string(kind)),
					zap.Error(err),
				)
				c.notifier.Error(fmt.Sprintf("Could not refresh %s: %v", label(kind), err))
				errs[i] = fmt.Errorf("refresh %s: %w", kind, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

func label(kind store.Kind) string {
	switch kind {
	case store.KindLeads:
		return "leads"
	case store.KindLeadActivities:
		return "activities"
	case store.KindGeneralExpenses:
		return "general expenses"
	case store.KindCalendarEvents:
		return "calendar"
	case store.KindExpenditureReport:
		return "expenditure report"
	default:
		return string(kind)
	}
}
