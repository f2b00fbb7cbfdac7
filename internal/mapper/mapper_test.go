package mapper_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/straye-as/sales-dashboard/internal/domain"
	"github.com/straye-as/sales-dashboard/internal/mapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLeadDTO(t *testing.T) {
	followUp := domain.NewDate(2024, time.May, 20)
	lead := &domain.Lead{
		BaseModel: domain.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Date(2024, time.May, 6, 9, 30, 0, 0, time.UTC),
		},
		FirstName:     "Wanjiru",
		LastName:      "Kamau",
		Company:       "Acme",
		Stage:         domain.LeadStageProposal,
		DateOfContact: domain.NewDate(2024, time.May, 6),
		FollowUp:      &followUp,
	}

	dto := mapper.ToLeadDTO(lead)
	assert.Equal(t, lead.ID, dto.ID)
	assert.Equal(t, "Wanjiru Kamau", dto.FullName())
	assert.Equal(t, "2024-05-06T09:30:00Z", dto.CreatedAt)

	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	var wire map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &wire))
	assert.Equal(t, "Wanjiru", wire["firstName"])
	assert.Equal(t, "Proposal", wire["stage"])
	assert.Equal(t, "2024-05-06", wire["dateOfContact"])
	assert.Equal(t, "2024-05-20", wire["followUp"])
}

func TestToCalendarEventDTO_SnakeCase(t *testing.T) {
	leadID := uuid.New()
	event := &domain.CalendarEvent{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Date:      domain.NewDate(2024, time.June, 1),
		Type:      domain.EventTypeFollowUp,
		Amount:    decimal.NewFromInt(15),
		LeadID:    &leadID,
		LeadName:  "Wanjiru Kamau",
	}

	raw, err := json.Marshal(mapper.ToCalendarEventDTO(event))
	require.NoError(t, err)
	var wire map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &wire))
	assert.Equal(t, leadID.String(), wire["lead_id"])
	assert.Equal(t, "Wanjiru Kamau", wire["lead_name"])
	assert.Equal(t, "follow_up", wire["type"])
	assert.NotContains(t, wire, "end_date")
}

func TestToReportRowDTOs(t *testing.T) {
	rows := []domain.ExpenditureReportRow{
		{ID: uuid.New(), Date: domain.NewDate(2024, time.June, 1), Description: "Fuel", Amount: decimal.NewFromInt(60), SourceTable: domain.ReportSourceGeneralExpenses},
		{ID: uuid.New(), Date: domain.NewDate(2024, time.June, 1), Description: "Lunch", Amount: decimal.NewFromInt(20), SourceTable: domain.ReportSourceLeadActivities, LeadName: "Wanjiru Kamau"},
	}

	dtos := mapper.ToReportRowDTOs(rows)
	require.Len(t, dtos, 2)
	assert.Equal(t, domain.ReportSourceGeneralExpenses, dtos[0].SourceTable)
	assert.Equal(t, "Wanjiru Kamau", dtos[1].LeadName)
}

func TestApplyLeadRequest(t *testing.T) {
	contact := domain.NewDate(2024, time.May, 6)
	req := &domain.CreateLeadRequest{FirstName: "Wanjiru", Company: "Acme", DateOfContact: &contact}

	var lead domain.Lead
	mapper.ApplyLeadRequest(&lead, req)
	assert.Equal(t, domain.LeadStageNew, lead.Stage, "empty stage defaults to New")
	assert.Equal(t, "2024-05-06", lead.DateOfContact.String())
	assert.Nil(t, lead.FollowUp)

	req.Stage = domain.LeadStageClosedWon
	mapper.ApplyLeadRequest(&lead, req)
	assert.Equal(t, domain.LeadStageClosedWon, lead.Stage)
}
