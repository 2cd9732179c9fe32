package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainErrorCategories(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		kind error
	}{
		{"ContestNotFound", ErrContestNotFound, ErrNotFound},
		{"TeamNotOwned", ErrTeamNotOwned, ErrNotFound},
		{"TeamSize", ErrTeamSize, ErrValidation},
		{"MissingWicketKeeper", ErrMissingWicketKeeper, ErrValidation},
		{"ContestFull", ErrContestFull, ErrStateConflict},
		{"AlreadyJoined", ErrAlreadyJoined, ErrStateConflict},
		{"InsufficientBalance", ErrInsufficientBalance, ErrInsufficientFunds},
		{"InvalidToken", ErrInvalidToken, ErrUnauthenticated},
		{"AdminOnly", ErrAdminOnly, ErrForbidden},
		{"DuplicateUser", ErrDuplicateUser, ErrConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.kind) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tc.err, tc.kind)
			}

			wrapped := fmt.Errorf("join failed: %w", tc.err)
			if !errors.Is(wrapped, tc.kind) {
				t.Errorf("wrapped error lost its category %v", tc.kind)
			}
			if !errors.Is(wrapped, tc.err) {
				t.Errorf("wrapped error lost its identity %v", tc.err)
			}
		})
	}
}

func TestDomainErrorsAreDistinct(t *testing.T) {
	if errors.Is(ErrContestFull, ErrContestNotOpen) {
		t.Error("ErrContestFull must not match ErrContestNotOpen")
	}
	if errors.Is(ErrNotEnoughBatsmen, ErrMissingBowler) {
		t.Error("ErrNotEnoughBatsmen must not match ErrMissingBowler")
	}
	if errors.Is(ErrContestNotFound, ErrValidation) {
		t.Error("not found errors must not be validation errors")
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientBalance", ErrInsufficientBalance, CodeInsufficientFunds},
		{"DetailedInsufficientFunds", NewInsufficientFundsError("u1", "50.00", "10.00"), CodeInsufficientFunds},
		{"ContestNotFound", ErrContestNotFound, CodeContestNotFound},
		{"BudgetExceeded", NewBudgetExceededError("101", "100"), CodeBudgetExceeded},
		{"WrappedContestFull", fmt.Errorf("wrapped: %w", ErrContestFull), CodeContestFull},
		{"DatabaseConnection", fmt.Errorf("%w: dial tcp", ErrDatabaseConnection), CodeDatabaseConnection},
		{"UnknownError", errors.New("unknown error"), CodeInternalServer},
		{"Nil", nil, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestBudgetExceededError(t *testing.T) {
	err := NewBudgetExceededError("100.01", "100")

	expected := "Team exceeds budget. Total: 100.01, Max: 100"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrBudgetExceeded) {
		t.Error("BudgetExceededError should match ErrBudgetExceeded")
	}
	if !IsValidationError(err) {
		t.Error("BudgetExceededError should be a validation error")
	}
	if PublicMessage(err) != expected {
		t.Errorf("PublicMessage() = %s, want %s", PublicMessage(err), expected)
	}
}

func TestInsufficientFundsError(t *testing.T) {
	err := NewInsufficientFundsError("user-1", "50.00", "10.00")

	if !IsInsufficientFundsError(err) {
		t.Error("InsufficientFundsError should match ErrInsufficientFunds")
	}
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Error("InsufficientFundsError should match ErrInsufficientBalance")
	}
	if PublicMessage(err) != "Insufficient wallet balance" {
		t.Errorf("unexpected public message: %s", PublicMessage(err))
	}

	fields := LogFields(err)
	if fields["user_id"] != "user-1" || fields["required"] != "50.00" {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestPublicMessageHidesInternalErrors(t *testing.T) {
	err := fmt.Errorf("%w: pq: password authentication failed", ErrDatabaseConnection)
	if PublicMessage(err) != "Internal server error" {
		t.Errorf("PublicMessage leaked internal error: %s", PublicMessage(err))
	}
}

func TestPublicMessageKeepsValidationDetail(t *testing.T) {
	err := fmt.Errorf("%w: username must be between 3 and 50 characters", ErrInvalidRequest)
	expected := "Invalid request: username must be between 3 and 50 characters"
	if PublicMessage(err) != expected {
		t.Errorf("PublicMessage() = %s, want %s", PublicMessage(err), expected)
	}

	wrapped := fmt.Errorf("join: %w", ErrContestFull)
	if PublicMessage(wrapped) != "Contest is full" {
		t.Errorf("PublicMessage() = %s, want the domain message", PublicMessage(wrapped))
	}
}

func TestIsRetryableError(t *testing.T) {
	if !IsRetryableError(fmt.Errorf("commit: %w", ErrConcurrentUpdate)) {
		t.Error("ErrConcurrentUpdate should be retryable")
	}
	if IsRetryableError(ErrContestFull) {
		t.Error("domain rejections must not be retryable")
	}
}
