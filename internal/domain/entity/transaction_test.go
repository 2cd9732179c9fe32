package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/fantasy-cricket/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid transaction creation", func(t *testing.T) {
		tx, err := NewTransaction("tx-1", "u-1", TypeContestEntry, 5000, "c-1", "Entry fee for contest: Mega", 5000, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "tx-1", tx.ID)
		assert.Equal(t, "u-1", tx.UserID)
		assert.Equal(t, TypeContestEntry, tx.Type)
		assert.Equal(t, int64(5000), tx.Amount)
		assert.Equal(t, "50.00", tx.FormattedAmount())
		assert.Equal(t, StatusCompleted, tx.Status)
		assert.Equal(t, "c-1", tx.ReferenceID)
		assert.Equal(t, int64(5000), tx.BalanceAfter)
		assert.Equal(t, fixedTime, tx.CreatedAt)
		assert.Empty(t, tx.IdempotencyKey)
	})

	t.Run("With options", func(t *testing.T) {
		tx, err := NewTransaction("tx-2", "u-1", TypeDeposit, 1000, "stripe_sim_1", "Wallet deposit via Stripe", 1000, mockTime,
			WithIdempotencyKey("key-1"), WithStatus(StatusPending))

		require.NoError(t, err)
		assert.Equal(t, "key-1", tx.IdempotencyKey)
		assert.Equal(t, StatusPending, tx.Status)
	})

	t.Run("Invalid input", func(t *testing.T) {
		testCases := []struct {
			name    string
			id      string
			txType  TransactionType
			amount  int64
			balance int64
			want    error
		}{
			{"Empty ID", "", TypeDeposit, 100, 100, errs.ErrInvalidRequest},
			{"Unknown type", "tx", TransactionType("bonus"), 100, 100, errs.ErrInvalidRequest},
			{"Zero amount", "tx", TypeDeposit, 0, 100, errs.ErrNegativeAmount},
			{"Negative amount", "tx", TypeDeposit, -1, 100, errs.ErrNegativeAmount},
			{"Negative balance", "tx", TypeContestEntry, 100, -1, errs.ErrInvalidAmount},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				tx, err := NewTransaction(tc.id, "u-1", tc.txType, tc.amount, "", "", tc.balance, mockTime)
				assert.ErrorIs(t, err, tc.want)
				assert.Nil(t, tx)
			})
		}
	})
}

func TestTransactionDirection(t *testing.T) {
	testCases := []struct {
		txType   TransactionType
		isCredit bool
	}{
		{TypeDeposit, true},
		{TypeContestRefund, true},
		{TypeWinning, true},
		{TypeContestEntry, false},
		{TypeWithdrawal, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.txType), func(t *testing.T) {
			tx := &Transaction{Type: tc.txType}
			assert.Equal(t, tc.isCredit, tx.IsCredit())
			assert.Equal(t, !tc.isCredit, tx.IsDebit())
		})
	}
}
