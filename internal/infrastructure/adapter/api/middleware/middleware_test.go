package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/logger"
)

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{"Not found", errs.ErrTeamNotFound, http.StatusNotFound},
		{"Wrapped not found", fmt.Errorf("load: %w", errs.ErrMatchNotFound), http.StatusNotFound},
		{"Missing token", errs.ErrMissingToken, http.StatusUnauthorized},
		{"Admin only", errs.ErrAdminOnly, http.StatusForbidden},
		{"Concurrent update", errs.ErrConcurrentUpdate, http.StatusConflict},
		{"Validation", errs.ErrTeamSize, http.StatusBadRequest},
		{"Budget", errs.NewBudgetExceededError("100.5", "100"), http.StatusBadRequest},
		{"State conflict", errs.ErrContestNotOpen, http.StatusBadRequest},
		{"Insufficient funds", errs.NewInsufficientFundsError("u1", "10.00", "1.00"), http.StatusBadRequest},
		{"Duplicate user", errs.ErrDuplicateUser, http.StatusBadRequest},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusCode(tc.err))
		})
	}
}

func TestBearerToken(t *testing.T) {
	testCases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer   abc  ", "abc", true},
		{"Basic abc", "", false},
		{"Bearer", "", false},
		{"Bearer  ", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.header, func(t *testing.T) {
			token, ok := bearerToken(tc.header)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.token, token)
		})
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("should keep the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, "req-42", rec.Body.String())
		assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
	})

	t.Run("should replace a missing or oversized id", func(t *testing.T) {
		for _, incoming := range []string{"", strings.Repeat("x", 129)} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(RequestIDHeader, incoming)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Len(t, rec.Body.String(), 36)
			assert.Equal(t, rec.Body.String(), rec.Header().Get(RequestIDHeader))
		}
	})
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	serve := func(user *entity.User) int {
		router := gin.New()
		router.Use(func(c *gin.Context) {
			if user != nil {
				c.Set(currentUserKey, user)
			}
		})
		router.GET("/", RequireRole(entity.RoleAdmin), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, serve(&entity.User{ID: "a", Role: entity.RoleAdmin}))
	assert.Equal(t, http.StatusForbidden, serve(&entity.User{ID: "u", Role: entity.RoleUser}))
	assert.Equal(t, http.StatusUnauthorized, serve(nil))
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logger.NewRecordingLogger()
	router := gin.New()
	router.Use(ErrorHandler(log))
	router.GET("/", func(c *gin.Context) {
		panic("unexpected")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"code":%d,"message":"Internal server error"}`, errs.CodeInternalServer), rec.Body.String())
	assert.Len(t, log.Entries(), 1)
}

func TestLoggerLevels(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		status int
		level  coreport.LogLevel
	}{
		{http.StatusOK, coreport.LogLevelInfo},
		{http.StatusNotFound, coreport.LogLevelWarn},
		{http.StatusServiceUnavailable, coreport.LogLevelError},
	}

	for _, tc := range testCases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			log := logger.NewRecordingLogger()
			router := gin.New()
			router.Use(Logger(log))
			router.GET("/contests/:id", func(c *gin.Context) {
				c.Status(tc.status)
			})

			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/contests/c1", nil))

			entries := log.Entries()
			assert.Len(t, entries, 1)
			assert.Equal(t, tc.level, entries[0].Level)
			assert.Equal(t, "/contests/:id", entries[0].Fields["route"])
		})
	}
}
