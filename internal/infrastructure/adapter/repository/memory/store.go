// Package memory keeps every record in process memory. It backs the API when no
// database is configured and gives use case tests real storage semantics.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/persistence"
)

var errTxFinished = errors.New("transaction already committed or rolled back")

// state is the full data set. Values are stored by copy so callers never share memory with the store.
type state struct {
	users        map[string]entity.User
	transactions []entity.Transaction
	matches      map[string]entity.Match
	players      map[string]entity.Player
	teams        map[string]entity.Team
	contests     map[string]entity.Contest
	entries      map[string]entity.ContestEntry
}

func newState() *state {
	return &state{
		users:    make(map[string]entity.User),
		matches:  make(map[string]entity.Match),
		players:  make(map[string]entity.Player),
		teams:    make(map[string]entity.Team),
		contests: make(map[string]entity.Contest),
		entries:  make(map[string]entity.ContestEntry),
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.users {
		c.users[k] = v
	}
	c.transactions = append([]entity.Transaction(nil), s.transactions...)
	for k, v := range s.matches {
		c.matches[k] = v
	}
	for k, v := range s.players {
		c.players[k] = v
	}
	for k, v := range s.teams {
		c.teams[k] = copyTeam(v)
	}
	for k, v := range s.contests {
		c.contests[k] = copyContest(v)
	}
	for k, v := range s.entries {
		c.entries[k] = copyEntry(v)
	}
	return c
}

func copyTeam(t entity.Team) entity.Team {
	t.Players = append([]entity.TeamPlayer(nil), t.Players...)
	return t
}

func copyContest(c entity.Contest) entity.Contest {
	c.PrizeDistribution = append(entity.PrizeDistribution(nil), c.PrizeDistribution...)
	return c
}

func copyEntry(e entity.ContestEntry) entity.ContestEntry {
	if e.Rank != nil {
		rank := *e.Rank
		e.Rank = &rank
	}
	return e
}

type txKey struct{}

// memTx is the marker stored in a transactional context
type memTx struct {
	store    *Store
	snapshot *state
	done     bool
}

// Store is an in-memory implementation of persistence.UnitOfWork.
//
// Transactions are serialized: a transaction holds txMu from Begin until Commit or
// Rollback, and rollback restores a snapshot taken at Begin. Calls made outside a
// transaction take txMu for the single operation, so they never observe or interleave
// with uncommitted writes.
type Store struct {
	txMu         sync.Mutex
	dataMu       sync.Mutex
	data         *state
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ persistence.UnitOfWork = (*Store)(nil)

// NewStore creates an empty store
func NewStore(timeProvider coreport.TimeProvider, logger coreport.Logger) *Store {
	return &Store{
		data:         newState(),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (s *Store) txFrom(ctx context.Context) *memTx {
	tx, ok := ctx.Value(txKey{}).(*memTx)
	if !ok || tx.store != s || tx.done {
		return nil
	}
	return tx
}

// run runs fn as part of the caller's transaction, or as its own one-step transaction
func (s *Store) run(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.txFrom(ctx) == nil {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}

	s.dataMu.Lock()
	defer s.dataMu.Unlock()
	return fn(s.data)
}

// Begin starts a transaction. It blocks while another transaction is open.
func (s *Store) Begin(ctx context.Context) (context.Context, error) {
	if err := ctx.Err(); err != nil {
		return ctx, err
	}
	if tx := s.txFrom(ctx); tx != nil {
		return ctx, nil
	}

	s.txMu.Lock()
	s.dataMu.Lock()
	snapshot := s.data.clone()
	s.dataMu.Unlock()

	return context.WithValue(ctx, txKey{}, &memTx{store: s, snapshot: snapshot}), nil
}

// Commit makes the transaction's writes permanent
func (s *Store) Commit(ctx context.Context) error {
	tx := s.txFrom(ctx)
	if tx == nil {
		return errTxFinished
	}
	tx.done = true
	tx.snapshot = nil
	s.txMu.Unlock()
	return nil
}

// Rollback restores the data to what it was at Begin
func (s *Store) Rollback(ctx context.Context) error {
	tx := s.txFrom(ctx)
	if tx == nil {
		return errTxFinished
	}

	s.dataMu.Lock()
	s.data = tx.snapshot
	s.dataMu.Unlock()

	tx.done = true
	tx.snapshot = nil
	s.txMu.Unlock()
	return nil
}

// WithinTransaction runs fn in a transaction. A call made inside another transaction joins it.
func (s *Store) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) (err error) {
	if s.txFrom(ctx) != nil {
		return fn(ctx)
	}

	txCtx, err := s.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = s.Rollback(txCtx)
			s.logger.Error("Panic in memory transaction, rolled back", map[string]any{"panic": r})
			panic(r)
		}
	}()

	if err = fn(txCtx); err != nil {
		if rbErr := s.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back memory transaction", map[string]any{"error": rbErr.Error()})
		}
		return err
	}
	return s.Commit(txCtx)
}

func (s *Store) GetUserRepository(context.Context) persistence.UserRepository {
	return &userRepository{store: s}
}

func (s *Store) GetTransactionRepository(context.Context) persistence.TransactionRepository {
	return &transactionRepository{store: s}
}

func (s *Store) GetMatchRepository(context.Context) persistence.MatchRepository {
	return &matchRepository{store: s}
}

func (s *Store) GetPlayerRepository(context.Context) persistence.PlayerRepository {
	return &playerRepository{store: s}
}

func (s *Store) GetTeamRepository(context.Context) persistence.TeamRepository {
	return &teamRepository{store: s}
}

func (s *Store) GetContestRepository(context.Context) persistence.ContestRepository {
	return &contestRepository{store: s}
}

func (s *Store) GetContestEntryRepository(context.Context) persistence.ContestEntryRepository {
	return &contestEntryRepository{store: s}
}
