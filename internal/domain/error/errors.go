package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientFunds = 4001
	CodeInvalidAmount     = 4002
	CodeInvalidRequest    = 4003
	CodeValidation        = 4004

	CodeUnauthenticated    = 4010
	CodeInvalidToken       = 4011
	CodeInvalidCredentials = 4012
	CodeForbidden          = 4030

	CodeNotFound         = 4040
	CodeUserNotFound     = 4041
	CodeMatchNotFound    = 4042
	CodePlayerNotFound   = 4043
	CodeTeamNotFound     = 4044
	CodeContestNotFound  = 4045
	CodeDuplicateUser    = 4090
	CodeConcurrentUpdate = 4091
	CodeDuplicateMatch   = 4092

	// 41xx - Team composition
	CodeTeamSize             = 4101
	CodeDuplicatePlayer      = 4102
	CodeInvalidPlayers       = 4103
	CodeCaptainCount         = 4104
	CodeViceCaptainCount     = 4105
	CodeCaptainIsViceCaptain = 4106
	CodeBudgetExceeded       = 4107
	CodeMissingWicketKeeper  = 4108
	CodeNotEnoughBatsmen     = 4109
	CodeMissingBowler        = 4110
	CodeMissingAllRounder    = 4111
	CodeInvalidTeamName      = 4112

	// 42xx - Contest state
	CodeContestNotOpen           = 4201
	CodeContestFull              = 4202
	CodeAlreadyJoined            = 4203
	CodeTeamWrongMatch           = 4204
	CodeInvalidContestState      = 4205
	CodeInvalidPrizeDistribution = 4206
	CodeMatchNotUpcoming         = 4207

	// 43xx - Wallet
	CodeDepositOutOfRange    = 4301
	CodeMissingPaymentMethod = 4302

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5001
)

// Error categories. Every specific domain error belongs to exactly one of them.
var (
	// ErrNotFound is returned when a referenced resource does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrValidation is returned when input breaks a composition or format rule
	ErrValidation = errors.New("validation failed")

	// ErrStateConflict is returned when the current state of a resource forbids the operation
	ErrStateConflict = errors.New("state conflict")

	// ErrInsufficientFunds is returned when a wallet cannot cover a debit
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUnauthenticated is returned when no valid identity is attached to the request
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden is returned when the identity lacks the required role
	ErrForbidden = errors.New("forbidden")

	// ErrConflict is returned for uniqueness violations and lost concurrent updates
	ErrConflict = errors.New("conflict")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")
)

// DomainError is a specific, user-facing error that belongs to a category
type DomainError struct {
	Kind    error
	Code    int
	Message string
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target is the category of this error
func (e *DomainError) Is(target error) bool {
	return target == e.Kind
}

// LogFields returns a map of fields for structured logging
func (e *DomainError) LogFields() map[string]any {
	return map[string]any{
		"error_type": e.Kind.Error(),
		"error":      e.Message,
		"error_code": e.Code,
	}
}

func newError(kind error, code int, message string) *DomainError {
	return &DomainError{Kind: kind, Code: code, Message: message}
}

// Not found
var (
	ErrUserNotFound    = newError(ErrNotFound, CodeUserNotFound, "User not found")
	ErrMatchNotFound   = newError(ErrNotFound, CodeMatchNotFound, "Match not found")
	ErrPlayerNotFound  = newError(ErrNotFound, CodePlayerNotFound, "Player not found")
	ErrTeamNotFound    = newError(ErrNotFound, CodeTeamNotFound, "Team not found")
	ErrContestNotFound = newError(ErrNotFound, CodeContestNotFound, "Contest not found")

	// ErrTeamNotOwned hides whether the team exists when it belongs to someone else
	ErrTeamNotOwned = newError(ErrNotFound, CodeTeamNotFound, "Team not found or does not belong to you")
)

// Validation
var (
	ErrInvalidRequest = newError(ErrValidation, CodeInvalidRequest, "Invalid request")
	ErrInvalidAmount  = newError(ErrValidation, CodeInvalidAmount, "Invalid amount format")
	ErrNegativeAmount = newError(ErrValidation, CodeInvalidAmount, "Amount must be positive")

	ErrTeamSize             = newError(ErrValidation, CodeTeamSize, "Team must have exactly 11 players")
	ErrDuplicatePlayer      = newError(ErrValidation, CodeDuplicatePlayer, "Team cannot contain the same player twice")
	ErrInvalidPlayers       = newError(ErrValidation, CodeInvalidPlayers, "Some players are invalid or do not belong to this match")
	ErrCaptainCount         = newError(ErrValidation, CodeCaptainCount, "Team must have exactly 1 captain")
	ErrViceCaptainCount     = newError(ErrValidation, CodeViceCaptainCount, "Team must have exactly 1 vice captain")
	ErrCaptainIsViceCaptain = newError(ErrValidation, CodeCaptainIsViceCaptain, "Captain and vice captain must be different players")
	ErrBudgetExceeded       = newError(ErrValidation, CodeBudgetExceeded, "Team exceeds budget")
	ErrMissingWicketKeeper  = newError(ErrValidation, CodeMissingWicketKeeper, "Team must have at least 1 wicket keeper")
	ErrNotEnoughBatsmen     = newError(ErrValidation, CodeNotEnoughBatsmen, "Team must have at least 3 batsmen")
	ErrMissingBowler        = newError(ErrValidation, CodeMissingBowler, "Team must have at least 1 bowler")
	ErrMissingAllRounder    = newError(ErrValidation, CodeMissingAllRounder, "Team must have at least 1 all-rounder")
	ErrInvalidTeamName      = newError(ErrValidation, CodeInvalidTeamName, "Team name is required and must be at most 100 characters")

	ErrInvalidPrizeDistribution = newError(ErrValidation, CodeInvalidPrizeDistribution, "Invalid prize distribution")
	ErrDepositOutOfRange        = newError(ErrValidation, CodeDepositOutOfRange, "Deposit amount must be between 10 and 10000")
	ErrMissingPaymentMethod     = newError(ErrValidation, CodeMissingPaymentMethod, "Payment method is required")
)

// State conflicts
var (
	ErrContestNotOpen       = newError(ErrStateConflict, CodeContestNotOpen, "Contest is not open for joining")
	ErrContestFull          = newError(ErrStateConflict, CodeContestFull, "Contest is full")
	ErrAlreadyJoined        = newError(ErrStateConflict, CodeAlreadyJoined, "You have already joined this contest")
	ErrTeamWrongMatch       = newError(ErrStateConflict, CodeTeamWrongMatch, "Team is not for this match")
	ErrInvalidContestState  = newError(ErrStateConflict, CodeInvalidContestState, "Contest cannot transition from its current status")
	ErrMatchNotUpcoming     = newError(ErrStateConflict, CodeMatchNotUpcoming, "Match has already started")
	ErrInsufficientBalance  = newError(ErrInsufficientFunds, CodeInsufficientFunds, "Insufficient wallet balance")
	ErrDuplicateUser        = newError(ErrConflict, CodeDuplicateUser, "Username or email already exists")
	ErrDuplicateMatch       = newError(ErrConflict, CodeDuplicateMatch, "A match with this title already exists on that date")
	ErrConcurrentUpdate     = newError(ErrConflict, CodeConcurrentUpdate, "Request could not be completed due to concurrent updates, please retry")
	ErrDuplicateIdempotency = newError(ErrConflict, CodeConcurrentUpdate, "A request with this idempotency key is already being processed")
)

// Authentication
var (
	ErrMissingToken       = newError(ErrUnauthenticated, CodeUnauthenticated, "Not authenticated")
	ErrInvalidToken       = newError(ErrUnauthenticated, CodeInvalidToken, "Invalid or expired token")
	ErrInvalidCredentials = newError(ErrUnauthenticated, CodeInvalidCredentials, "Invalid username or password")
	ErrAdminOnly          = newError(ErrForbidden, CodeForbidden, "Admin privileges required")
)

// BudgetExceededError carries the computed credit total of a rejected team
type BudgetExceededError struct {
	Total string
	Max   string
}

// Error implements the error interface
func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("Team exceeds budget. Total: %s, Max: %s", e.Total, e.Max)
}

// Is matches both the budget rule and its category
func (e *BudgetExceededError) Is(target error) bool {
	return target == ErrBudgetExceeded || target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *BudgetExceededError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "budget_exceeded",
		"total":      e.Total,
		"max":        e.Max,
		"error_code": CodeBudgetExceeded,
	}
}

// NewBudgetExceededError creates a new detailed budget error
func NewBudgetExceededError(total, max string) error {
	return &BudgetExceededError{Total: total, Max: max}
}

// InsufficientFundsError provides detailed error information for a rejected debit
type InsufficientFundsError struct {
	UserID    string
	Required  string
	Available string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient balance for user %s: required %s, available %s",
		e.UserID, e.Required, e.Available)
}

// Is matches the insufficient balance error and its category
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientBalance || target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"user_id":    e.UserID,
		"required":   e.Required,
		"available":  e.Available,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(userID, required, available string) error {
	return &InsufficientFundsError{
		UserID:    userID,
		Required:  required,
		Available: available,
	}
}

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	var domainErr *DomainError
	var budgetErr *BudgetExceededError
	var fundsErr *InsufficientFundsError

	switch {
	case err == nil:
		return 0
	case errors.As(err, &budgetErr):
		return CodeBudgetExceeded
	case errors.As(err, &fundsErr):
		return CodeInsufficientFunds
	case errors.As(err, &domainErr):
		return domainErr.Code
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// PublicMessage returns the text that may be shown to an API client
func PublicMessage(err error) string {
	var budgetErr *BudgetExceededError
	var domainErr *DomainError

	switch {
	case errors.As(err, &budgetErr):
		return budgetErr.Error()
	case errors.Is(err, ErrInsufficientBalance):
		return ErrInsufficientBalance.Message
	case errors.As(err, &domainErr):
		// Validation errors may carry the offending field after the category message
		if errors.Is(err, ErrValidation) {
			return err.Error()
		}
		return domainErr.Message
	default:
		return "Internal server error"
	}
}

// LogFields extracts structured fields from err when it carries them
func LogFields(err error) map[string]any {
	var carrier interface{ LogFields() map[string]any }
	if errors.As(err, &carrier) {
		return carrier.LogFields()
	}
	return map[string]any{"error": err.Error()}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if the error is a rule or format violation
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsStateConflictError checks if the error is a state conflict
func IsStateConflictError(err error) bool {
	return errors.Is(err, ErrStateConflict)
}

// IsInsufficientFundsError checks if the error is related to insufficient balance
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsUnauthenticatedError checks if the error is an authentication failure
func IsUnauthenticatedError(err error) bool {
	return errors.Is(err, ErrUnauthenticated)
}

// IsForbiddenError checks if the error is an authorization failure
func IsForbiddenError(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsConflictError checks if the error is a uniqueness or concurrency conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsRetryableError checks if the operation may succeed when attempted again
func IsRetryableError(err error) bool {
	return errors.Is(err, ErrConcurrentUpdate)
}
