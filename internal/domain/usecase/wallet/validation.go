package wallet

import (
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
)

// Deposit limits in cents
const (
	MinDeposit int64 = 10_00
	MaxDeposit int64 = 10_000_00
)

// MaxIdempotencyKeyLength bounds client supplied idempotency keys
const MaxIdempotencyKeyLength = 255

// DepositValidator provides validation for deposit requests
type DepositValidator struct{}

// NewDepositValidator creates a new DepositValidator
func NewDepositValidator() *DepositValidator {
	return &DepositValidator{}
}

// ValidateDeposit validates all deposit fields and returns the amount in cents
func (v *DepositValidator) ValidateDeposit(amount, paymentMethodID, idempotencyKey string) (int64, error) {
	cents, err := v.validateAmount(amount)
	if err != nil {
		return 0, err
	}

	if err := v.validatePaymentMethod(paymentMethodID); err != nil {
		return 0, err
	}

	if len(idempotencyKey) > MaxIdempotencyKeyLength {
		return 0, fmt.Errorf("%w: idempotency key must be at most %d characters", errs.ErrInvalidRequest, MaxIdempotencyKeyLength)
	}

	return cents, nil
}

// validateAmount checks the format and the allowed deposit range
func (v *DepositValidator) validateAmount(amount string) (int64, error) {
	cents, err := entity.ParseAmount(amount)
	if err != nil {
		return 0, err
	}

	if cents < MinDeposit || cents > MaxDeposit {
		return 0, errs.ErrDepositOutOfRange
	}

	return cents, nil
}

// validatePaymentMethod checks that a payment method was supplied
func (v *DepositValidator) validatePaymentMethod(paymentMethodID string) error {
	if strings.TrimSpace(paymentMethodID) == "" {
		return errs.ErrMissingPaymentMethod
	}
	return nil
}
