package jobs

import (
	"context"
	"time"

	"github.com/straye-as/sales-dashboard/internal/domain"
	"go.uber.org/zap"
)

// FollowUpDigestJobName is the name of the daily follow-up digest job
const FollowUpDigestJobName = "follow_up_digest"

// FollowUpSource lists leads by follow-up date
type FollowUpSource interface {
	DueFollowUps(ctx context.Context, from, to domain.Date) ([]domain.LeadDTO, error)
}

// FollowUpDigestJob logs the leads whose follow-up falls due today
type FollowUpDigestJob struct {
	leads   FollowUpSource
	logger  *zap.Logger
	timeout time.Duration
	now     func() time.Time
}

func NewFollowUpDigestJob(leads FollowUpSource, logger *zap.Logger, timeout time.Duration) *FollowUpDigestJob {
	return &FollowUpDigestJob{
		leads:   leads,
		logger:  logger,
		timeout: timeout,
		now:     time.Now,
	}
}

// SetClock replaces the time source used to date the run
func (j *FollowUpDigestJob) SetClock(now func() time.Time) {
	j.now = now
}

// Run is called by the scheduler
func (j *FollowUpDigestJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if _, err := j.Digest(ctx); err != nil {
		j.logger.Error("follow-up digest failed", zap.Error(err))
	}
}

// Digest logs today's follow-ups and returns them
func (j *FollowUpDigestJob) Digest(ctx context.Context) ([]domain.LeadDTO, error) {
	today := domain.DateOf(j.now())
	due, err := j.leads.DueFollowUps(ctx, today, today)
	if err != nil {
		return nil, err
	}

	j.logger.Info("follow-ups due today",
		zap.String("date", today.String()),
		zap.Int("count", len(due)))
	for _, lead := range due {
		j.logger.Info("follow-up due",
			zap.String("lead_id", lead.ID.String()),
			zap.String("name", lead.FullName()),
			zap.String("company", lead.Company),
			zap.String("stage", string(lead.Stage)))
	}
	return due, nil
}

// RegisterFollowUpDigestJob registers the digest job with the scheduler
func RegisterFollowUpDigestJob(scheduler *Scheduler, leads FollowUpSource, logger *zap.Logger, cronExpr string, timeout time.Duration) error {
	job := NewFollowUpDigestJob(leads, logger, timeout)
	return scheduler.AddJob(FollowUpDigestJobName, cronExpr, job.Run)
}
