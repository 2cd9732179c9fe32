package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/usecase"
)

const jobName = "contest-lifecycle-sync"

// LifecycleScheduler runs the contest lifecycle sync on a fixed interval.
// A run that is still going when the next one is due makes the next one wait.
type LifecycleScheduler struct {
	lifecycle usecase.LifecycleUseCase
	interval  time.Duration
	logger    coreport.Logger
	scheduler gocron.Scheduler
}

// NewLifecycleScheduler creates a scheduler; nothing runs until Start
func NewLifecycleScheduler(lifecycle usecase.LifecycleUseCase, interval time.Duration, logger coreport.Logger) (*LifecycleScheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("scheduler interval must be positive, got %s", interval)
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	return &LifecycleScheduler{
		lifecycle: lifecycle,
		interval:  interval,
		logger:    logger,
		scheduler: s,
	}, nil
}

// Start registers the job and starts the scheduler. The first run happens immediately.
func (s *LifecycleScheduler) Start(ctx context.Context) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() { s.RunOnce(ctx) }),
		gocron.WithName(jobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("register %s job: %w", jobName, err)
	}

	s.scheduler.Start()
	s.logger.Info("Lifecycle scheduler started", map[string]any{
		"interval": s.interval.String(),
	})
	return nil
}

// RunOnce performs a single sync and logs its outcome
func (s *LifecycleScheduler) RunOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	report, err := s.lifecycle.SyncWithMatches(ctx)
	if err != nil {
		s.logger.Error("Lifecycle sync failed", map[string]any{
			"error": err.Error(),
		})
	}
	if report == nil {
		return
	}

	if report.MatchesStarted+report.ContestsLive+report.ContestsCompleted+report.ContestsCancelled == 0 {
		s.logger.Debug("Lifecycle sync found nothing to do", nil)
		return
	}
	s.logger.Info("Lifecycle sync applied", map[string]any{
		"matches_started":    report.MatchesStarted,
		"contests_live":      report.ContestsLive,
		"contests_completed": report.ContestsCompleted,
		"contests_cancelled": report.ContestsCancelled,
	})
}

// Stop waits for a running sync to finish and stops the scheduler
func (s *LifecycleScheduler) Stop() error {
	if err := s.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("stop scheduler: %w", err)
	}
	s.logger.Info("Lifecycle scheduler stopped", nil)
	return nil
}
