package repository

import creditdomain "sellshot-backend/internal/credits/domain"

// CreditRepository defines the interface for credit balance persistence
type CreditRepository interface {
	// GetBalance returns the user's balance, applying defaults for users
	// that have never been stored.
	GetBalance(userID string) (creditdomain.Balance, error)

	// SetBalance writes the balance through to the store.
	SetBalance(userID string, balance creditdomain.Balance) error
}
