package domain

import "errors"

// UnlimitedCredits is the sentinel balance set by the simulated upgrade.
const UnlimitedCredits = 9999

// ErrInsufficientCredits denies a gated action. The client reacts with the
// upgrade prompt rather than an error banner.
var ErrInsufficientCredits = errors.New("insufficient credits")

// Balance is a user's credit account state.
type Balance struct {
	Credits int  `json:"credits"`
	Premium bool `json:"premium"`
}
