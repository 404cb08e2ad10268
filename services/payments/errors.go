package payments

import "errors"

var (
	// ErrTransactionNotFound is returned when no transaction matches the id
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidAmount is returned when a payment amount is zero or negative
	ErrInvalidAmount = errors.New("payment amount must be positive")

	// ErrInvalidCurrency is returned when a currency code is malformed
	ErrInvalidCurrency = errors.New("invalid currency code")
)
