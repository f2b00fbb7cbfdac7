package jobs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/straye-as/sales-dashboard/internal/domain"
	"github.com/straye-as/sales-dashboard/internal/export"
	"github.com/straye-as/sales-dashboard/internal/storage"
	"go.uber.org/zap"
)

// ReportArchiveJobName is the name of the expenditure report archive job
const ReportArchiveJobName = "report_archive"

// ReportArchivePrefix is the storage prefix all archives are written under
const ReportArchivePrefix = "expenditure-report/"

// ReportExporter renders the expenditure report export.
// This interface lets the job run without importing the service package.
type ReportExporter interface {
	ExportExpenditureReport(ctx context.Context, dateRange domain.DateRange, format export.Format, w io.Writer) (int, error)
}

// ReportArchiveJob writes a dated snapshot of the full expenditure report
// export to storage and prunes snapshots beyond the retention count.
type ReportArchiveJob struct {
	exporter  ReportExporter
	store     storage.Storage
	logger    *zap.Logger
	timeout   time.Duration
	retention int
	now       func() time.Time
}

// NewReportArchiveJob creates the job. retention <= 0 keeps every archive.
func NewReportArchiveJob(exporter ReportExporter, store storage.Storage, logger *zap.Logger, timeout time.Duration, retention int) *ReportArchiveJob {
	return &ReportArchiveJob{
		exporter:  exporter,
		store:     store,
		logger:    logger,
		timeout:   timeout,
		retention: retention,
		now:       time.Now,
	}
}

// SetClock replaces the time source used to date the run
func (j *ReportArchiveJob) SetClock(now func() time.Time) {
	j.now = now
}

// Run is called by the scheduler
func (j *ReportArchiveJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	key, rows, err := j.Archive(ctx)
	if err != nil {
		j.logger.Error("expenditure report archive failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return
	}

	j.logger.Info("expenditure report archived",
		zap.String("key", key),
		zap.Int("rows", rows),
		zap.Duration("duration", time.Since(start)))
}

// Archive writes today's snapshot and prunes old ones, returning the key written
func (j *ReportArchiveJob) Archive(ctx context.Context) (string, int, error) {
	var buf bytes.Buffer
	rows, err := j.exporter.ExportExpenditureReport(ctx, domain.DateRange{}, export.FormatCSV, &buf)
	if err != nil {
		return "", 0, fmt.Errorf("failed to export report: %w", err)
	}

	key := path.Join(ReportArchivePrefix, export.FormatCSV.Filename(j.now().UTC().Format(domain.DateLayout)))
	if _, err := j.store.Put(ctx, key, export.FormatCSV.ContentType(), &buf); err != nil {
		return "", 0, fmt.Errorf("failed to store archive: %w", err)
	}

	if err := j.prune(ctx); err != nil {
		// The snapshot itself is stored; pruning is retried on the next run
		j.logger.Warn("failed to prune old archives", zap.Error(err))
	}
	return key, rows, nil
}

func (j *ReportArchiveJob) prune(ctx context.Context) error {
	if j.retention <= 0 {
		return nil
	}
	keys, err := j.store.List(ctx, ReportArchivePrefix)
	if err != nil {
		return err
	}
	// Keys are date-named, so ascending order is oldest first
	for len(keys) > j.retention {
		if err := j.store.Remove(ctx, keys[0]); err != nil {
			return err
		}
		j.logger.Debug("pruned archive", zap.String("key", keys[0]))
		keys = keys[1:]
	}
	return nil
}

// RegisterReportArchiveJob registers the archive job with the scheduler
func RegisterReportArchiveJob(scheduler *Scheduler, exporter ReportExporter, store storage.Storage, logger *zap.Logger, cronExpr string, timeout time.Duration, retention int) error {
	job := NewReportArchiveJob(exporter, store, logger, timeout, retention)
	return scheduler.AddJob(ReportArchiveJobName, cronExpr, job.Run)
}
