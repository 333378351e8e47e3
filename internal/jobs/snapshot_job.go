package jobs

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/partnerdesk/partner-api/internal/archive"
	"go.uber.org/zap"
)

// SnapshotJobName is the name of the register snapshot job
const SnapshotJobName = "register_snapshot"

// SnapshotSource exports the full register document as JSON
type SnapshotSource interface {
	Snapshot(ctx context.Context) ([]byte, error)
}

// SnapshotJob archives timestamped copies of the register document
type SnapshotJob struct {
	source   SnapshotSource
	archiver archive.Archiver
	logger   *zap.Logger
	timeout  time.Duration
	now      func() time.Time
}

// NewSnapshotJob creates a new register snapshot job
func NewSnapshotJob(source SnapshotSource, archiver archive.Archiver, logger *zap.Logger, timeout time.Duration) *SnapshotJob {
	return &SnapshotJob{
		source:   source,
		archiver: archiver,
		logger:   logger,
		timeout:  timeout,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Run exports the register and stores it under a timestamped name.
// Called by the scheduler according to the cron expression.
func (j *SnapshotJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()

	data, err := j.source.Snapshot(ctx)
	if err != nil {
		j.logger.Error("register snapshot export failed", zap.Error(err))
		return
	}

	name := fmt.Sprintf("register-%s.json", j.now().Format("20060102-150405"))

	size, err := j.archiver.Store(ctx, name, bytes.NewReader(data))
	if err != nil {
		j.logger.Error("register snapshot upload failed",
			zap.String("snapshot_name", name),
			zap.Error(err))
		return
	}

	j.logger.Info("register snapshot archived",
		zap.String("snapshot_name", name),
		zap.Int64("size", size),
		zap.Duration("duration", time.Since(start)))
}

// RegisterSnapshotJob registers the snapshot job with the scheduler.
func RegisterSnapshotJob(scheduler *Scheduler, source SnapshotSource, archiver archive.Archiver, logger *zap.Logger, cronExpr string, timeout time.Duration) error {
	job := NewSnapshotJob(source, archiver, logger, timeout)
	return scheduler.AddJob(SnapshotJobName, cronExpr, job.Run)
}
