package memory

import (
	"context"
	"sort"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
)

type userRepository struct {
	store *Store
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.store.run(ctx, func(st *state) error {
		for _, u := range st.users {
			if u.ID == user.ID || u.Username == user.Username || u.Email == user.Email {
				return errs.ErrDuplicateUser
			}
		}
		st.users[user.ID] = *user
		return nil
	})
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var out *entity.User
	err := r.store.run(ctx, func(st *state) error {
		u, ok := st.users[id]
		if !ok {
			return errs.ErrUserNotFound
		}
		out = &u
		return nil
	})
	return out, err
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var out *entity.User
	err := r.store.run(ctx, func(st *state) error {
		for _, u := range st.users {
			if u.Username == username {
				out = &u
				return nil
			}
		}
		return errs.ErrUserNotFound
	})
	return out, err
}

func (r *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := r.store.run(ctx, func(st *state) error {
		for _, u := range st.users {
			if u.Username == username || u.Email == email {
				exists = true
				break
			}
		}
		return nil
	})
	return exists, err
}

// Debit checks and subtracts under the store lock, which makes it a single conditional step
func (r *userRepository) Debit(ctx context.Context, userID string, amount int64) (int64, error) {
	var balance int64
	err := r.store.run(ctx, func(st *state) error {
		u, ok := st.users[userID]
		if !ok {
			return errs.ErrUserNotFound
		}
		if !u.CanAfford(amount) {
			return errs.NewInsufficientFundsError(userID, entity.FormatAmount(amount), u.FormattedBalance())
		}
		balance = u.WalletBalance() - amount
		u.SetWalletBalance(balance)
		u.UpdatedAt = r.store.timeProvider.Now()
		st.users[userID] = u
		return nil
	})
	return balance, err
}

func (r *userRepository) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	var balance int64
	err := r.store.run(ctx, func(st *state) error {
		u, ok := st.users[userID]
		if !ok {
			return errs.ErrUserNotFound
		}
		balance = u.WalletBalance() + amount
		u.SetWalletBalance(balance)
		u.UpdatedAt = r.store.timeProvider.Now()
		st.users[userID] = u
		return nil
	})
	return balance, err
}

type transactionRepository struct {
	store *Store
}

func (r *transactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	return r.store.run(ctx, func(st *state) error {
		if txn.IdempotencyKey != "" {
			for _, t := range st.transactions {
				if t.UserID == txn.UserID && t.IdempotencyKey == txn.IdempotencyKey {
					return errs.ErrDuplicateIdempotency
				}
			}
		}
		st.transactions = append(st.transactions, *txn)
		return nil
	})
}

func (r *transactionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	err := r.store.run(ctx, func(st *state) error {
		for i := range st.transactions {
			if st.transactions[i].UserID == userID {
				t := st.transactions[i]
				out = append(out, &t)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *transactionRepository) FindByIdempotencyKey(ctx context.Context, userID, key string) (*entity.Transaction, error) {
	var out *entity.Transaction
	err := r.store.run(ctx, func(st *state) error {
		for i := range st.transactions {
			t := st.transactions[i]
			if t.UserID == userID && t.IdempotencyKey != "" && t.IdempotencyKey == key {
				out = &t
				break
			}
		}
		return nil
	})
	return out, err
}
