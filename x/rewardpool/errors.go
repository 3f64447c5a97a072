package rewardpool

import "github.com/beehive-network/beehive/errors"

var (
	// ErrDistributionPaused is returned when distribution is attempted
	// while the pool is paused.
	ErrDistributionPaused = errors.Register(1100, "Distribution is paused")

	// ErrInsufficientFunds is returned when the pool cannot cover a
	// distribution, including when the distributed total would overflow.
	ErrInsufficientFunds = errors.Register(1101, "Insufficient funds in the reward pool.")

	// ErrTransfer is returned when the underlying ledger refuses to move
	// the funds.
	ErrTransfer = errors.Register(1102, "transfer failed")

	// ErrAlreadyInitialized is returned when the pool records exist
	// already.
	ErrAlreadyInitialized = errors.Register(1103, "reward pool already initialized")
)
