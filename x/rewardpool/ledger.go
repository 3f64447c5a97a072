package rewardpool

import (
	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/errors"
	"github.com/beehive-network/beehive/x/cash"
)

// Ledger keeps the pool accounting in line with the holding account.
type Ledger struct {
	bank  cash.Controller
	pools PoolBucket
}

// NewLedger returns a ledger moving funds through the given controller.
func NewLedger(bank cash.Controller) Ledger {
	return Ledger{bank: bank, pools: NewPoolBucket()}
}

// Balance returns the live balance of the pool holding account.
func (l Ledger) Balance(db beehive.ReadOnlyKVStore) (uint64, error) {
	return l.bank.Balance(db, PoolAddress)
}

// Deposit moves the amount from the depositor into the pool. Any refusal
// of the transfer fails with ErrTransfer and leaves both wallets intact.
func (l Ledger) Deposit(db beehive.KVStore, depositor beehive.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "deposit must be positive")
	}
	if err := l.bank.MoveCoins(db, depositor, PoolAddress, amount); err != nil {
		return errors.Wrapf(ErrTransfer, "deposit: %s", err)
	}
	return nil
}

// Distribute pays the amount to the recipient and returns the new total
// distributed. The balance and the total are checked before anything is
// written.
func (l Ledger) Distribute(db beehive.KVStore, recipient beehive.Address, amount uint64) (uint64, error) {
	if amount == 0 {
		return 0, errors.Wrap(errors.ErrAmount, "distribution must be positive")
	}
	balance, err := l.Balance(db)
	if err != nil {
		return 0, errors.Wrap(err, "pool balance")
	}
	if balance < amount {
		return 0, errors.Wrapf(ErrInsufficientFunds, "balance %d, requested %d", balance, amount)
	}

	pool, err := l.pools.Get(db)
	if err != nil {
		return 0, err
	}
	total := pool.TotalDistributed + amount
	if total < pool.TotalDistributed {
		return 0, errors.Wrap(ErrInsufficientFunds, "total distributed overflow")
	}

	if err := l.bank.MoveCoins(db, PoolAddress, recipient, amount); err != nil {
		return 0, errors.Wrapf(ErrTransfer, "distribute: %s", err)
	}
	pool.TotalDistributed = total
	if err := l.pools.Save(db, pool); err != nil {
		return 0, errors.Wrap(err, "save pool")
	}
	return total, nil
}
