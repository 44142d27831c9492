package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Posting errors
	ErrPostingNotFound = errors.New("posting not found")
	ErrPackageNotFound = errors.New("package not found")
	ErrAddonNotFound   = errors.New("add-on not found")
	ErrStatusTerminal  = errors.New("posting status has no next step")
	ErrInvalidStatus   = errors.New("invalid posting status")

	// Client errors
	ErrClientNotFound = errors.New("client not found")

	// Invoice / ledger errors
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrEntryNotFound   = errors.New("ledger entry not found")

	// Bio-link errors
	ErrPageNotFound = errors.New("bio-link page not found")
	ErrLinkNotFound = errors.New("bio-link not found")

	// Auth errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)
