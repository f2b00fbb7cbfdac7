package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/straye-as/sales-dashboard/internal/domain"
	"github.com/straye-as/sales-dashboard/internal/service"
	"github.com/straye-as/sales-dashboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarEventService_FollowUpMovesLeadFollowUp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewServices(db)
	ctx := context.Background()
	lead := testutil.CreateTestLead(t, db, "Joy", "Mara Tours", domain.LeadStageContacted)

	event, err := svc.Events.Create(ctx, &domain.CreateCalendarEventRequest{
		Date:   testutil.DayPtr(2024, time.August, 20),
		Type:   domain.EventTypeFollowUp,
		LeadID: lead.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Joy Tester", event.LeadName)

	updated, err := svc.Leads.GetByID(ctx, lead.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.FollowUp)
	assert.Equal(t, "2024-08-20", updated.FollowUp.String())
}

func TestCalendarEventService_OtherTypesLeaveFollowUp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewServices(db)
	ctx := context.Background()
	lead := testutil.CreateTestLead(t, db, "Ken", "Mara Tours", domain.LeadStageContacted)

	_, err := svc.Events.Create(ctx, &domain.CreateCalendarEventRequest{
		Date:   testutil.DayPtr(2024, time.August, 20),
		Type:   domain.EventTypeVisit,
		LeadID: lead.ID.String(),
	})
	require.NoError(t, err)

	unchanged, err := svc.Leads.GetByID(ctx, lead.ID)
	require.NoError(t, err)
	assert.Nil(t, unchanged.FollowUp)
}

func TestCalendarEventService_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewServices(db)
	ctx := context.Background()

	tests := []struct {
		name string
		req  domain.CreateCalendarEventRequest
		want error
	}{
		{
			name: "unknown type",
			req:  domain.CreateCalendarEventRequest{Date: testutil.DayPtr(2024, time.May, 1), Type: "party"},
			want: service.ErrInvalidEventType,
		},
		{
			name: "negative amount",
			req: domain.CreateCalendarEventRequest{
				Date: testutil.DayPtr(2024, time.May, 1), Type: domain.EventTypeOther,
				Amount: decimal.NewFromInt(-1),
			},
			want: service.ErrNegativeAmount,
		},
		{
			name: "end before start",
			req: domain.CreateCalendarEventRequest{
				Date: testutil.DayPtr(2024, time.May, 2), EndDate: testutil.DayPtr(2024, time.May, 1),
				Type: domain.EventTypeOther,
			},
			want: service.ErrInvalidDateRange,
		},
		{
			name: "unknown lead",
			req: domain.CreateCalendarEventRequest{
				Date: testutil.DayPtr(2024, time.May, 1), Type: domain.EventTypeOther,
				LeadID: "6f1c7f1e-5b7a-4a3f-9a59-3b9d3c1f0a11",
			},
			want: service.ErrUnknownLead,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Events.Create(ctx, &tt.req)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, service.ErrInvalidInput)
		})
	}
}

func TestLeadActivityService_RequiresExistingLead(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewServices(db)

	_, err := svc.Activities.Create(context.Background(), &domain.CreateLeadActivityRequest{
		LeadID:       "6f1c7f1e-5b7a-4a3f-9a59-3b9d3c1f0a11",
		ActivityType: domain.ActivityTypeCall,
		ActivityDate: testutil.DayPtr(2024, time.May, 1),
	})
	assert.ErrorIs(t, err, service.ErrUnknownLead)
}
