package contest

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/usecase"
)

// Lifecycle moves contests along with the matches they belong to.
// It is safe to run repeatedly: every move is conditional on the current status.
type Lifecycle struct {
	uow          persistence.UnitOfWork
	registry     *Registry
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewLifecycle creates a new Lifecycle
func NewLifecycle(
	uow persistence.UnitOfWork,
	registry *Registry,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Lifecycle {
	return &Lifecycle{
		uow:          uow,
		registry:     registry,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// SyncWithMatches runs one pass:
//   - upcoming matches past their start time go live
//   - contests of live matches stop accepting joins
//   - contests of completed matches complete
//   - contests of cancelled matches are cancelled and refunded
//
// A failure on one contest does not stop the pass; all failures are returned joined.
func (l *Lifecycle) SyncWithMatches(ctx context.Context) (*usecase.SyncReport, error) {
	report := &usecase.SyncReport{}
	var failures []error

	matches := l.uow.GetMatchRepository(ctx)
	contests := l.uow.GetContestRepository(ctx)

	due, err := matches.ListDueToStart(ctx, l.timeProvider.Now())
	if err != nil {
		return nil, err
	}
	for _, m := range due {
		moved, err := matches.UpdateStatus(ctx, m.ID, entity.MatchLive, entity.MatchUpcoming)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		if moved {
			report.MatchesStarted++
			l.logger.Info("Match started", map[string]any{"match_id": m.ID, "slug": m.Slug})
		}
	}

	live, err := matches.List(ctx, entity.MatchLive)
	if err != nil {
		return nil, err
	}
	for _, m := range live {
		list, err := contests.ListByMatch(ctx, m.ID, entity.ContestOpen, entity.ContestFull)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		for _, c := range list {
			moved, err := l.registry.MoveStatus(ctx, c.ID, entity.ContestLive, entity.ContestOpen, entity.ContestFull)
			if err != nil {
				failures = append(failures, err)
				continue
			}
			if moved {
				report.ContestsLive++
			}
		}
	}

	completed, err := matches.List(ctx, entity.MatchCompleted)
	if err != nil {
		return nil, err
	}
	for _, m := range completed {
		list, err := contests.ListByMatch(ctx, m.ID, entity.ContestOpen, entity.ContestFull, entity.ContestLive)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		for _, c := range list {
			if c.Status != entity.ContestLive {
				if _, err := l.registry.MoveStatus(ctx, c.ID, entity.ContestLive, entity.ContestOpen, entity.ContestFull); err != nil {
					failures = append(failures, err)
					continue
				}
			}
			moved, err := l.registry.MoveStatus(ctx, c.ID, entity.ContestCompleted, entity.ContestLive)
			if err != nil {
				failures = append(failures, err)
				continue
			}
			if moved {
				report.ContestsCompleted++
			}
		}
	}

	cancelled, err := matches.List(ctx, entity.MatchCancelled)
	if err != nil {
		return nil, err
	}
	for _, m := range cancelled {
		list, err := contests.ListByMatch(ctx, m.ID, entity.ContestOpen, entity.ContestFull, entity.ContestLive)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		for _, c := range list {
			if _, err := l.registry.CancelContest(ctx, c.ID); err != nil {
				failures = append(failures, err)
				continue
			}
			report.ContestsCancelled++
		}
	}

	if len(failures) > 0 {
		l.logger.Error("Contest lifecycle pass had failures", map[string]any{
			"failures": len(failures),
			"error":    errors.Join(failures...).Error(),
		})
	}
	return report, errors.Join(failures...)
}
