package merchants

import "errors"

var (
	// ErrMerchantNotFound is returned when no merchant matches the lookup
	ErrMerchantNotFound = errors.New("merchant not found")

	// ErrEmailTaken is returned when a registration reuses an email
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on a failed login
	ErrInvalidCredentials = errors.New("invalid credentials")
)
