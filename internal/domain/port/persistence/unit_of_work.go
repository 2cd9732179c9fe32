package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// WithinTransaction runs fn in a new transaction and commits when it returns nil.
	// Any error or panic rolls the transaction back. Conflicts reported as ErrConcurrentUpdate
	// are retried with backoff by the implementation.
	WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetMatchRepository returns a match repository bound to the current transaction
	GetMatchRepository(ctx context.Context) MatchRepository

	// GetPlayerRepository returns a player repository bound to the current transaction
	GetPlayerRepository(ctx context.Context) PlayerRepository

	// GetTeamRepository returns a team repository bound to the current transaction
	GetTeamRepository(ctx context.Context) TeamRepository

	// GetContestRepository returns a contest repository bound to the current transaction
	GetContestRepository(ctx context.Context) ContestRepository

	// GetContestEntryRepository returns a contest entry repository bound to the current transaction
	GetContestEntryRepository(ctx context.Context) ContestEntryRepository
}
