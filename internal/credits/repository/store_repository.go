package repository

import (
	creditdomain "sellshot-backend/internal/credits/domain"
	"sellshot-backend/pkg/store"
)

// Store slot keys, one per persisted value.
const (
	creditsKey = "credits"
	premiumKey = "premium"
)

// storeCreditRepository implements CreditRepository on the key-value store.
type storeCreditRepository struct {
	store          store.Store
	defaultCredits int
}

// NewStoreCreditRepository creates a store-backed CreditRepository. New users
// start with defaultCredits and no premium flag.
func NewStoreCreditRepository(s store.Store, defaultCredits int) CreditRepository {
	return &storeCreditRepository{
		store:          s,
		defaultCredits: defaultCredits,
	}
}

func (r *storeCreditRepository) GetBalance(userID string) (creditdomain.Balance, error) {
	balance := creditdomain.Balance{Credits: r.defaultCredits}

	var credits int
	found, err := r.store.Get(userID, creditsKey, &credits)
	if err != nil {
		return creditdomain.Balance{}, err
	}
	if found {
		balance.Credits = credits
	}

	var premium bool
	found, err = r.store.Get(userID, premiumKey, &premium)
	if err != nil {
		return creditdomain.Balance{}, err
	}
	if found {
		balance.Premium = premium
	}

	return balance, nil
}

func (r *storeCreditRepository) SetBalance(userID string, balance creditdomain.Balance) error {
	if err := r.store.Set(userID, creditsKey, balance.Credits); err != nil {
		return err
	}
	return r.store.Set(userID, premiumKey, balance.Premium)
}
