package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/logger"
	mockusecase "github.com/amirhossein-jamali/fantasy-cricket/mocks/port/usecase"
)

var created = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type apiFixture struct {
	router        *gin.Engine
	authenticator *mockusecase.MockAuthenticator
	auth          *mockusecase.MockAuthUseCase
	wallet        *mockusecase.MockWalletUseCase
	match         *mockusecase.MockMatchUseCase
	team          *mockusecase.MockTeamUseCase
	contest       *mockusecase.MockContestUseCase
	leaderboard   *mockusecase.MockLeaderboardUseCase
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &apiFixture{
		router:        gin.New(),
		authenticator: mockusecase.NewMockAuthenticator(t),
		auth:          mockusecase.NewMockAuthUseCase(t),
		wallet:        mockusecase.NewMockWalletUseCase(t),
		match:         mockusecase.NewMockMatchUseCase(t),
		team:          mockusecase.NewMockTeamUseCase(t),
		contest:       mockusecase.NewMockContestUseCase(t),
		leaderboard:   mockusecase.NewMockLeaderboardUseCase(t),
	}

	log := logger.NewNoopLogger()
	SetupMiddlewares(f.router, log, []string{"http://localhost:3000"})
	SetupRoutes(f.router, Handlers{
		User:        handler.NewUserHandler(f.auth, log),
		Transaction: handler.NewTransactionHandler(f.wallet, log),
		Match:       handler.NewMatchHandler(f.match, log),
		Team:        handler.NewTeamHandler(f.team, log),
		Contest:     handler.NewContestHandler(f.contest, f.leaderboard, log),
		Health:      handler.NewHealthHandler(nil, log),
	}, f.authenticator)
	return f
}

// signIn makes the token resolve to a user with role
func (f *apiFixture) signIn(token, userID string, role entity.UserRole) {
	f.authenticator.EXPECT().Authenticate(mock.Anything, token).Return(&entity.User{
		ID:        userID,
		Username:  "user_" + userID,
		Email:     userID + "@example.com",
		Role:      role,
		CreatedAt: created,
	}, nil).Maybe()
}

func (f *apiFixture) do(method, path, token, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthRoute(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/api/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","database":"memory"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestAuthRoutes(t *testing.T) {
	t.Run("should register and return a token", func(t *testing.T) {
		// Arrange
		f := newAPIFixture(t)
		f.auth.EXPECT().Register(mock.Anything, "alice", "alice@example.com", "secret123").Return(&usecase.AuthResult{
			AccessToken: "jwt",
			TokenType:   "Bearer",
			ExpiresAt:   created.Add(time.Hour),
			User:        &entity.User{ID: "u1", Username: "alice", Email: "alice@example.com", Role: entity.RoleUser, CreatedAt: created},
		}, nil).Once()

		// Act
		rec := f.do(http.MethodPost, "/api/auth/register", "",
			`{"username":"alice","email":"alice@example.com","password":"secret123"}`)

		// Assert
		require.Equal(t, http.StatusOK, rec.Code)
		var body dto.TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "jwt", body.AccessToken)
		assert.Equal(t, "alice", body.User.Username)
		assert.Equal(t, "0.00", body.User.WalletBalance)
	})

	t.Run("should reject a malformed body before the use case", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/auth/login", "", `{"username":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInvalidRequest, decodeError(t, rec).Code)
	})

	t.Run("should map bad credentials to 401", func(t *testing.T) {
		f := newAPIFixture(t)
		f.auth.EXPECT().Login(mock.Anything, "alice", "wrong").Return(nil, errs.ErrInvalidCredentials).Once()

		rec := f.do(http.MethodPost, "/api/auth/login", "", `{"username":"alice","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, errs.CodeInvalidCredentials, decodeError(t, rec).Code)
	})
}

func TestAuthenticationMiddleware(t *testing.T) {
	t.Run("should reject requests without a token", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodGet, "/api/wallet/balance", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, errs.CodeUnauthenticated, decodeError(t, rec).Code)
	})

	t.Run("should reject an invalid token", func(t *testing.T) {
		f := newAPIFixture(t)
		f.authenticator.EXPECT().Authenticate(mock.Anything, "expired").Return(nil, errs.ErrInvalidToken).Once()

		rec := f.do(http.MethodGet, "/api/wallet/balance", "expired", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, errs.CodeInvalidToken, decodeError(t, rec).Code)
	})

	t.Run("should keep regular users out of admin routes", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signIn("user-token", "u1", entity.RoleUser)

		rec := f.do(http.MethodPost, "/api/contests", "user-token",
			`{"match_id":"m1","name":"Mega","entry_fee":10,"max_users":2}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, errs.CodeForbidden, decodeError(t, rec).Code)
	})

	t.Run("should let admins create contests", func(t *testing.T) {
		// Arrange
		f := newAPIFixture(t)
		f.signIn("admin-token", "admin", entity.RoleAdmin)
		f.contest.EXPECT().CreateContest(mock.Anything, usecase.CreateContestInput{
			MatchID:  "m1",
			Name:     "Mega",
			EntryFee: "10",
			MaxUsers: 2,
			PrizeDistribution: []usecase.PayoutInput{
				{Type: "single", Rank: 1, Amount: "20"},
			},
		}).Return(&entity.Contest{
			ID: "c1", MatchID: "m1", Name: "Mega", EntryFee: 1000, PrizePool: 2000,
			MaxUsers: 2, Status: entity.ContestOpen, CreatedAt: created,
			PrizeDistribution: entity.PrizeDistribution{entity.NewSinglePayout(1, 2000)},
		}, nil).Once()

		// Act
		rec := f.do(http.MethodPost, "/api/contests", "admin-token",
			`{"match_id":"m1","name":"Mega","entry_fee":10,"max_users":2,
			  "prize_distribution":[{"type":"single","rank":1,"amount":"20"}]}`)

		// Assert
		require.Equal(t, http.StatusOK, rec.Code)
		var body dto.ContestResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "c1", body.ID)
		assert.Equal(t, "10.00", body.EntryFee)
		assert.Equal(t, "20.00", body.PrizePool)
	})
}

func TestWalletRoutes(t *testing.T) {
	t.Run("should return the balance as a decimal string", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signIn("token", "u1", entity.RoleUser)
		f.wallet.EXPECT().GetBalance(mock.Anything, "u1").Return(int64(12345), nil).Once()

		rec := f.do(http.MethodGet, "/api/wallet/balance", "token", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"balance":"123.45"}`, rec.Body.String())
	})

	t.Run("should prefer the idempotency header over the body key", func(t *testing.T) {
		// Arrange
		f := newAPIFixture(t)
		f.signIn("token", "u1", entity.RoleUser)
		f.wallet.EXPECT().AddFunds(mock.Anything, "u1", usecase.AddFundsInput{
			Amount:          "50",
			PaymentMethodID: "pm_card_visa",
			IdempotencyKey:  "from-header",
		}).Return(&usecase.AddFundsResult{NewBalance: 5000, TransactionID: "txn-1", Replayed: true}, nil).Once()

		// Act
		rec := f.do(http.MethodPost, "/api/wallet/add-funds", "token",
			`{"amount":50,"payment_method_id":"pm_card_visa","idempotency_key":"from-body"}`,
			handler.IdempotencyKeyHeader, "from-header")

		// Assert
		require.Equal(t, http.StatusOK, rec.Code)
		var body dto.AddFundsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.True(t, body.Replayed)
		assert.Equal(t, "50.00", body.NewBalance)
		assert.Equal(t, "txn-1", body.TransactionID)
	})

	t.Run("should map validation failures to 400", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signIn("token", "u1", entity.RoleUser)
		f.wallet.EXPECT().AddFunds(mock.Anything, "u1", mock.Anything).Return(nil, errs.ErrDepositOutOfRange).Once()

		rec := f.do(http.MethodPost, "/api/wallet/add-funds", "token", `{"amount":"5","payment_method_id":"pm"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeDepositOutOfRange, decodeError(t, rec).Code)
	})

	t.Run("should hide internal failures", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signIn("token", "u1", entity.RoleUser)
		f.wallet.EXPECT().ListTransactions(mock.Anything, "u1", 20).Return(nil, errors.New("connection reset")).Once()

		rec := f.do(http.MethodGet, "/api/transactions?limit=20", "token", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "Internal server error", body.Message)
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})
}

func TestContestRoutes(t *testing.T) {
	t.Run("should join with the path contest id", func(t *testing.T) {
		// Arrange
		f := newAPIFixture(t)
		f.signIn("token", "u1", entity.RoleUser)
		f.contest.EXPECT().JoinContest(mock.Anything, "u1", "c1", "t1").Return(&entity.ContestEntry{
			ID: "e1", ContestID: "c1", UserID: "u1", TeamID: "t1", CreatedAt: created,
		}, nil).Once()

		// Act
		rec := f.do(http.MethodPost, "/api/contests/c1/join", "token", `{"contest_id":"c1","team_id":"t1"}`)

		// Assert
		require.Equal(t, http.StatusOK, rec.Code)
		var body dto.JoinContestResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "Successfully joined contest", body.Message)
		assert.Equal(t, "e1", body.Entry.ID)
	})

	t.Run("should reject a body contest id that differs from the path", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signIn("token", "u1", entity.RoleUser)

		rec := f.do(http.MethodPost, "/api/contests/c1/join", "token", `{"contest_id":"c2","team_id":"t1"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInvalidRequest, decodeError(t, rec).Code)
	})

	t.Run("should report join conflicts as 400", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signIn("token", "u1", entity.RoleUser)
		f.contest.EXPECT().JoinContest(mock.Anything, "u1", "c1", "t1").
			Return(nil, errs.NewInsufficientFundsError("u1", "10.00", "5.00")).Once()

		rec := f.do(http.MethodPost, "/api/contests/c1/join", "token", `{"team_id":"t1"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Insufficient wallet balance", decodeError(t, rec).Message)
	})

	t.Run("should serve the leaderboard publicly", func(t *testing.T) {
		// Arrange
		f := newAPIFixture(t)
		f.leaderboard.EXPECT().GetLeaderboard(mock.Anything, "c1").Return(&entity.Leaderboard{
			ContestID: "c1",
			MatchID:   "m1",
			Entries: []entity.LeaderboardEntry{
				{Rank: 1, UserID: "u2", Username: "bob", TeamID: "t2", TeamName: "Bobs", TotalPoints: decimal.RequireFromString("50.5")},
			},
			TotalEntries: 1,
			PrizePool:    2000,
		}, nil).Once()

		// Act
		rec := f.do(http.MethodGet, "/api/contests/c1/leaderboard", "", "")

		// Assert
		require.Equal(t, http.StatusOK, rec.Code)
		var body dto.LeaderboardResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Entries, 1)
		assert.Equal(t, "50.5", body.Entries[0].TotalPoints)
		assert.Equal(t, "20.00", body.PrizePool)
	})

	t.Run("should map a missing contest to 404", func(t *testing.T) {
		f := newAPIFixture(t)
		f.contest.EXPECT().GetContest(mock.Anything, "nope").Return(nil, errs.ErrContestNotFound).Once()

		rec := f.do(http.MethodGet, "/api/contests/nope", "", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, errs.CodeContestNotFound, decodeError(t, rec).Code)
	})

	t.Run("should pass list filters through", func(t *testing.T) {
		f := newAPIFixture(t)
		f.contest.EXPECT().ListContests(mock.Anything, usecase.ContestListFilter{MatchID: "m1", Status: "open"}).
			Return([]*entity.Contest{}, nil).Once()

		rec := f.do(http.MethodGet, "/api/contests?match_id=m1&status=open", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"contests":[]}`, rec.Body.String())
	})
}
