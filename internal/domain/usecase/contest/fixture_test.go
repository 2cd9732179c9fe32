package contest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/usecase/wallet"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/repository/memory"
	clock "github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/time"
)

var start = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type contestFixture struct {
	store   *memory.Store
	clock   *clock.ManualClock
	service *Service
	log     *logger.RecordingLogger
}

func newContestFixture(t *testing.T, lc persistence.LeaderboardCache) *contestFixture {
	t.Helper()
	if lc == nil {
		lc = cache.NoopLeaderboardCache{}
	}
	tp := clock.NewManualClock(start)
	tp.Step = time.Second
	log := logger.NewRecordingLogger()
	store := memory.NewStore(tp, log)
	ids := idgen.NewUUIDGenerator()
	ledger := wallet.NewLedger(store, ids, tp, log)

	return &contestFixture{
		store:   store,
		clock:   tp,
		service: NewService(store, ledger, lc, ids, tp, log),
		log:     log,
	}
}

func (f *contestFixture) seedUser(t *testing.T, id string, balance int64) {
	t.Helper()
	ctx := context.Background()
	user, err := entity.NewUser(id, "user_"+id, id+"@example.com", "hash", entity.RoleUser, f.clock)
	require.NoError(t, err)
	require.NoError(t, f.store.GetUserRepository(ctx).Create(ctx, user))
	if balance > 0 {
		_, err = f.store.GetUserRepository(ctx).Credit(ctx, id, balance)
		require.NoError(t, err)
	}
}

func (f *contestFixture) seedMatch(t *testing.T, id string, startsIn time.Duration) {
	t.Helper()
	ctx := context.Background()
	match, err := entity.NewMatch(id, "Final "+id, "India", "Australia", "MCG", entity.FormatT20, start.Add(startsIn), start)
	require.NoError(t, err)
	require.NoError(t, f.store.GetMatchRepository(ctx).Create(ctx, match))
}

// seedTeam stores a team directly; roster validation is covered by the team package.
func (f *contestFixture) seedTeam(t *testing.T, id, userID, matchID string) {
	t.Helper()
	ctx := context.Background()
	team := &entity.Team{
		ID:        id,
		UserID:    userID,
		MatchID:   matchID,
		TeamName:  "Team " + id,
		Players:   []entity.TeamPlayer{{PlayerID: "p1", IsCaptain: true}, {PlayerID: "p2", IsViceCaptain: true}},
		CreatedAt: f.clock.Now(),
	}
	require.NoError(t, f.store.GetTeamRepository(ctx).Create(ctx, team))
}

func (f *contestFixture) seedContest(t *testing.T, id, matchID string, fee int64, maxUsers int) {
	t.Helper()
	ctx := context.Background()
	contest, err := entity.NewContest(id, matchID, "Contest "+id, fee, maxUsers, nil, f.clock.Now())
	require.NoError(t, err)
	require.NoError(t, f.store.GetContestRepository(ctx).Create(ctx, contest))
}

func (f *contestFixture) balance(t *testing.T, userID string) int64 {
	t.Helper()
	ctx := context.Background()
	user, err := f.store.GetUserRepository(ctx).GetByID(ctx, userID)
	require.NoError(t, err)
	return user.WalletBalance()
}

func (f *contestFixture) contest(t *testing.T, id string) *entity.Contest {
	t.Helper()
	c, err := f.service.GetContest(context.Background(), id)
	require.NoError(t, err)
	return c
}
