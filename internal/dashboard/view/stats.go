package view

import (
	"sort"
	"strconv"
	"time"

	"github.com/straye-as/sales-dashboard/internal/dashboard/ui"
	"github.com/straye-as/sales-dashboard/internal/domain"
)

// LeadStats is the stage tally shown on the stat cards
type LeadStats struct {
	Total      int
	New        int
	Qualified  int
	ClosedWon  int
	ClosedLost int
	ByStage    map[domain.LeadStage]int
}

// ComputeLeadStats tallies leads by stage
func ComputeLeadStats(leads []domain.LeadDTO) LeadStats {
	stats := LeadStats{Total: len(leads), ByStage: make(map[domain.LeadStage]int)}
	for _, l := range leads {
		stats.ByStage[l.Stage]++
	}
	stats.New = stats.ByStage[domain.LeadStageNew]
	stats.Qualified = stats.ByStage[domain.LeadStageQualified]
	stats.ClosedWon = stats.ByStage[domain.LeadStageClosedWon]
	stats.ClosedLost = stats.ByStage[domain.LeadStageClosedLost]
	return stats
}

// RenderLeadStats draws the stat cards
func RenderLeadStats(doc *ui.Document, stats LeadStats) {
	cards := []struct {
		label string
		value int
	}{
		{"Total Leads", stats.Total},
		{"New", stats.New},
		{"Qualified", stats.Qualified},
		{"Closed Won", stats.ClosedWon},
		{"Closed Lost", stats.ClosedLost},
	}
	rows := make([]ui.Row, 0, len(cards))
	for _, c := range cards {
		rows = append(rows, ui.Row{Key: c.label, Cells: []string{c.label, strconv.Itoa(c.value)}})
	}
	doc.Replace(LeadStatsCards, ui.Content{Title: "Lead Statistics", Rows: rows, Data: stats})
}

// ChartPoint is one bar of the stage chart
type ChartPoint struct {
	Label string
	Value int
}

// ChartAdapter hides the chart widget. Implementations decide whether to
// update in place or rebuild.
type ChartAdapter interface {
	SetData(points []ChartPoint)
}

// ChartPoints maps a tally to bars in pipeline order
func ChartPoints(stats LeadStats) []ChartPoint {
	points := make([]ChartPoint, 0, len(domain.LeadStages))
	for _, stage := range domain.LeadStages {
		points = append(points, ChartPoint{Label: string(stage), Value: stats.ByStage[stage]})
	}
	return points
}

// UpcomingFollowUps keeps leads whose follow-up is today or later, soonest
// first. today is truncated to midnight in its location.
func UpcomingFollowUps(leads []domain.LeadDTO, today time.Time) []domain.LeadDTO {
	midnight := domain.DateOf(today)
	out := make([]domain.LeadDTO, 0)
	for _, l := range leads {
		if l.FollowUp == nil || l.FollowUp.IsZero() || l.FollowUp.Before(midnight) {
			continue
		}
		out = append(out, l)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FollowUp.Before(*out[j].FollowUp)
	})
	return out
}

// RenderUpcomingFollowUps draws the follow-up list
func RenderUpcomingFollowUps(doc *ui.Document, leads []domain.LeadDTO, today time.Time) {
	upcoming := UpcomingFollowUps(leads, today)
	rows := make([]ui.Row, 0, len(upcoming))
	for _, l := range upcoming {
		id := l.ID.String()
		rows = append(rows, ui.Row{
			Key:     id,
			Cells:   []string{l.FollowUp.String(), l.FullName(), l.Company, string(l.Stage)},
			Actions: []ui.Action{{Name: "view_lead", Label: "View", Params: idParams(id)}},
		})
	}
	if len(rows) == 0 {
		rows = []ui.Row{{Cells: []string{"No upcoming follow-ups"}, Placeholder: true}}
	}
	doc.Replace(UpcomingFollowUpsList, ui.Content{Title: "Upcoming Follow-ups", Rows: rows})
}

// DocumentChart draws chart bars into a document container
type DocumentChart struct {
	doc *ui.Document
	id  string
}

func NewDocumentChart(doc *ui.Document, id string) *DocumentChart {
	return &DocumentChart{doc: doc, id: id}
}

func (c *DocumentChart) SetData(points []ChartPoint) {
	rows := make([]ui.Row, 0, len(points))
	for _, p := range points {
		rows = append(rows, ui.Row{Key: p.Label, Cells: []string{p.Label, strconv.Itoa(p.Value)}})
	}
	c.doc.Replace(c.id, ui.Content{
		Title:   "Leads by Stage",
		Headers: []string{"Stage", "Leads"},
		Rows:    rows,
		Data:    append([]ChartPoint(nil), points...),
	})
}

// RenderLeadDashboard draws every lead-derived view from one slice
func RenderLeadDashboard(doc *ui.Document, chart ChartAdapter, leads []domain.LeadDTO, today time.Time) {
	stats := ComputeLeadStats(leads)
	RenderLeadStats(doc, stats)
	chart.SetData(ChartPoints(stats))
	RenderUpcomingFollowUps(doc, leads, today)
}
