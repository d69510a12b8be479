package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")
	ErrInvalidInput   = errors.New("invalid input")

	ErrAuctionEnded      = errors.New("auction has ended")
	ErrNotVerified       = errors.New("listing has not been verified by AI yet")
	ErrSelfBid           = errors.New("cannot bid on own listing")
	ErrBidTooLow         = errors.New("bid amount must be higher than current price")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrOwnerConflict     = errors.New("owner conflict")
	ErrAlreadyVerified   = errors.New("listing verification already started")

	ErrUpstreamUnavailable        = errors.New("verification service unavailable")
	ErrUpstreamUnexpectedResponse = errors.New("unexpected verification service response")
)

// InsufficientFundsError содержит сумму, которая должна быть на балансе для совершения операции.
type InsufficientFundsError struct {
	Required decimal.Decimal
}

func NewInsufficientFundsError(required decimal.Decimal) error {
	return &InsufficientFundsError{Required: required}
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("You need at least $%s in your wallet to place this bid", e.Required.StringFixed(2))
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// ValidationError ошибка валидации конкретного поля запроса.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
