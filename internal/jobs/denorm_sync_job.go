package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// DenormSyncJobName is the name of the denormalized field repair job
const DenormSyncJobName = "denorm_sync"

// DenormSyncService repairs denormalized partner fields on personnel and
// deliverable records. The interface keeps the job from importing the
// service package directly.
type DenormSyncService interface {
	// SyncDenormalizedFields rewrites stale partner name and status copies.
	// Returns the number of records updated.
	SyncDenormalizedFields(ctx context.Context) (updated int, err error)
}

// DenormSyncJob periodically repairs denormalized fields that drifted, for
// example after a partial failure during a partner rename.
type DenormSyncJob struct {
	service DenormSyncService
	logger  *zap.Logger
	timeout time.Duration
}

// NewDenormSyncJob creates a new denormalized field repair job.
// The timeout bounds a single repair pass.
func NewDenormSyncJob(service DenormSyncService, logger *zap.Logger, timeout time.Duration) *DenormSyncJob {
	return &DenormSyncJob{
		service: service,
		logger:  logger,
		timeout: timeout,
	}
}

// Run executes one repair pass. Called by the scheduler according to the
// cron expression.
func (j *DenormSyncJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()

	updated, err := j.service.SyncDenormalizedFields(ctx)
	if err != nil {
		j.logger.Error("denormalized field sync failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return
	}

	if updated > 0 {
		j.logger.Warn("repaired drifted denormalized fields",
			zap.Int("records_updated", updated),
			zap.Duration("duration", time.Since(start)))
		return
	}

	j.logger.Info("denormalized fields in sync",
		zap.Duration("duration", time.Since(start)))
}

// RegisterDenormSyncJob registers the repair job with the scheduler.
// If runOnStartup is true a repair pass also runs immediately in a
// background goroutine so startup is not blocked.
func RegisterDenormSyncJob(scheduler *Scheduler, service DenormSyncService, logger *zap.Logger, cronExpr string, timeout time.Duration, runOnStartup bool) error {
	job := NewDenormSyncJob(service, logger, timeout)

	if runOnStartup {
		go job.Run()
	}

	return scheduler.AddJob(DenormSyncJobName, cronExpr, job.Run)
}
