// Package jobs runs the background work of the API on a cron schedule.
package jobs

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"rentfolio/internal/logger"
	"rentfolio/internal/metrics"
	"rentfolio/internal/services"
)

// SnapshotJob records the monthly summary snapshot.
type SnapshotJob struct {
	snapshotService services.SnapshotServicer
	metrics         *metrics.Metrics
	now             func() time.Time
	log             *zap.SugaredLogger
}

// NewSnapshotJob creates a SnapshotJob. m may be nil.
func NewSnapshotJob(snapshotService services.SnapshotServicer, m *metrics.Metrics) *SnapshotJob {
	return &SnapshotJob{
		snapshotService: snapshotService,
		metrics:         m,
		now:             time.Now,
		log:             logger.For("jobs"),
	}
}

// Run implements cron.Job. Failures are logged and counted, never returned.
func (j *SnapshotJob) Run() {
	snapshot, err := j.snapshotService.RecordSnapshot(j.now())
	if err != nil {
		j.observe("error")
		j.log.Errorw("Failed to record summary snapshot", "error", err)
		return
	}

	j.observe("ok")
	if j.metrics != nil {
		// NaN marks a portfolio without units.
		rate := math.NaN()
		if snapshot.OccupancyRate != nil {
			rate = *snapshot.OccupancyRate
		}
		j.metrics.OccupancyRate.Set(rate)
	}
	j.log.Infow("Recorded summary snapshot",
		"recorded_at", snapshot.RecordedAt,
		"properties", snapshot.TotalProperties,
		"tenants", snapshot.TotalTenants,
		"net_income", snapshot.NetIncome,
	)
}

func (j *SnapshotJob) observe(result string) {
	if j.metrics != nil {
		j.metrics.SnapshotsTotal.WithLabelValues(result).Inc()
	}
}

// Scheduler owns the cron runner of the API process.
type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler schedules job on the standard five-field cron spec.
// Panics inside a job are recovered and logged.
func NewScheduler(spec string, job cron.Job) (*Scheduler, error) {
	c := cron.New(cron.WithChain(
		cron.Recover(cronLogger{logger.For("cron")}),
		cron.SkipIfStillRunning(cronLogger{logger.For("cron")}),
	))
	if _, err := c.AddJob(spec, job); err != nil {
		return nil, fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}
	return &Scheduler{cron: c}, nil
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// Next returns the next activation time, or the zero time before Start.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

// cronLogger adapts the zap logger to cron.Logger.
type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
