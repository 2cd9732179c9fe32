package contest

import (
	"context"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/usecase/wallet"
)

// Service implements the ContestUseCase interface
type Service struct {
	*Registry
	join *JoinOrchestrator
}

// NewService creates a new contest service
func NewService(
	uow persistence.UnitOfWork,
	ledger *wallet.Ledger,
	cache persistence.LeaderboardCache,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		Registry: NewRegistry(uow, ledger, cache, idGenerator, timeProvider, logger),
		join:     NewJoinOrchestrator(uow, ledger, cache, idGenerator, timeProvider, logger),
	}
}

// JoinContest enters the user's team into the contest
func (s *Service) JoinContest(ctx context.Context, userID, contestID, teamID string) (*entity.ContestEntry, error) {
	return s.join.Join(ctx, userID, contestID, teamID)
}

// Ensure Service implements ContestUseCase
var _ usecase.ContestUseCase = (*Service)(nil)

// Ensure Lifecycle implements LifecycleUseCase
var _ usecase.LifecycleUseCase = (*Lifecycle)(nil)
