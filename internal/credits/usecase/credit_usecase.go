package usecase

import (
	creditdomain "sellshot-backend/internal/credits/domain"
	"sellshot-backend/internal/credits/repository"
)

// creditUsecase implements CreditGate
type creditUsecase struct {
	creditRepo repository.CreditRepository
}

// NewCreditUsecase creates a new instance of creditUsecase
func NewCreditUsecase(creditRepo repository.CreditRepository) CreditGate {
	return &creditUsecase{
		creditRepo: creditRepo,
	}
}

func (u *creditUsecase) Allow(userID string) error {
	balance, err := u.creditRepo.GetBalance(userID)
	if err != nil {
		return err
	}

	if balance.Premium || balance.Credits > 0 {
		return nil
	}
	return creditdomain.ErrInsufficientCredits
}

func (u *creditUsecase) Consume(userID string) error {
	balance, err := u.creditRepo.GetBalance(userID)
	if err != nil {
		return err
	}

	if balance.Premium || balance.Credits <= 0 {
		return nil
	}

	balance.Credits--
	return u.creditRepo.SetBalance(userID, balance)
}

func (u *creditUsecase) Upgrade(userID string) (creditdomain.Balance, error) {
	balance := creditdomain.Balance{
		Credits: creditdomain.UnlimitedCredits,
		Premium: true,
	}
	if err := u.creditRepo.SetBalance(userID, balance); err != nil {
		return creditdomain.Balance{}, err
	}
	return balance, nil
}

func (u *creditUsecase) Balance(userID string) (creditdomain.Balance, error) {
	return u.creditRepo.GetBalance(userID)
}
