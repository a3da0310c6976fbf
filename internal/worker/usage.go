package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"

	"scanguard/internal/account"
)

// UsageResetArgs are the arguments of the periodic usage reset job.
type UsageResetArgs struct{}

// Kind returns the River job kind used to register and dispatch the usage reset worker.
func (UsageResetArgs) Kind() string { return "UsageResetJob" }

// InsertOpts keeps at most one reset job queued at a time.
func (UsageResetArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		UniqueOpts: river.UniqueOpts{ByArgs: true, ByPeriod: time.Hour},
	}
}

// UsageResetWorker starts a new usage period for every account whose period
// ended. It is safe to run more than once per period.
type UsageResetWorker struct {
	river.WorkerDefaults[UsageResetArgs]

	registry account.Registry
	now      func() time.Time
}

// NewUsageResetWorker constructs a UsageResetWorker using the provided registry.
func NewUsageResetWorker(registry account.Registry) *UsageResetWorker {
	return &UsageResetWorker{registry: registry, now: time.Now}
}

func (w *UsageResetWorker) Work(ctx context.Context, _ *river.Job[UsageResetArgs]) error {
	if _, err := w.registry.ResetUsage(ctx, w.now()); err != nil {
		return fmt.Errorf("could not reset usage: %w", err)
	}

	return nil
}

// MonthlySchedule fires at the start of every month in UTC.
type MonthlySchedule struct{}

// Next returns the first instant of the month after current.
func (MonthlySchedule) Next(current time.Time) time.Time {
	current = current.UTC()

	return time.Date(current.Year(), current.Month()+1, 1, 0, 0, 0, 0, time.UTC)
}

// UsageResetPeriodicJob runs UsageResetArgs monthly and once on start so a
// boundary missed while the service was down is caught up.
func UsageResetPeriodicJob() *river.PeriodicJob {
	return river.NewPeriodicJob(
		MonthlySchedule{},
		func() (river.JobArgs, *river.InsertOpts) {
			return UsageResetArgs{}, nil
		},
		&river.PeriodicJobOpts{RunOnStart: true},
	)
}
