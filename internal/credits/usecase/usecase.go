package usecase

import creditdomain "sellshot-backend/internal/credits/domain"

// CreditGate guards every AI call and accounts for consumed credits.
type CreditGate interface {
	// Allow reports whether a gated action may proceed. A denial returns
	// ErrInsufficientCredits and touches no credit.
	Allow(userID string) error

	// Consume deducts one credit after a successful AI call. Premium
	// accounts are not charged; the balance never goes below zero.
	Consume(userID string) error

	// Upgrade simulates the premium purchase.
	Upgrade(userID string) (creditdomain.Balance, error)

	// Balance returns the current account state.
	Balance(userID string) (creditdomain.Balance, error)
}
