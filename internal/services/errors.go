package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidPIN         = errors.New("incorrect pin")
	ErrLocked             = errors.New("session is locked")
	ErrResetTokenInvalid  = errors.New("reset link is invalid or expired")
	ErrCustomerRequired   = errors.New("a customer must be resolved before continuing")
	ErrCustomerNotFound   = errors.New("no customer with this mobile number")
	ErrNoItemsSelected    = errors.New("select at least one item to order")
)

// ValidationError marks operator-correctable input problems; handlers map it
// to 400 with the message inline.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// SettlementRequiredError is returned when an order is marked Delivered
// while a balance is outstanding and the operator has not confirmed
// collecting it.
type SettlementRequiredError struct {
	BalanceDue float64
}

func (e *SettlementRequiredError) Error() string {
	return fmt.Sprintf("outstanding balance of %.0f must be confirmed before delivery", e.BalanceDue)
}
