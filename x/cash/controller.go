package cash

import (
	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/errors"
)

// Controller is the functionality needed by cash.Handler and other
// extensions that move value.
type Controller interface {
	// Balance returns the live balance of the address. Addresses without
	// a wallet hold zero.
	Balance(db beehive.ReadOnlyKVStore, addr beehive.Address) (uint64, error)
	// MoveCoins moves the given amount from src to dest. Nothing is
	// written unless the whole transfer succeeds.
	MoveCoins(db beehive.KVStore, src, dest beehive.Address, amount uint64) error
	// IssueCoins adds new value to the destination wallet.
	IssueCoins(db beehive.KVStore, dest beehive.Address, amount uint64) error
}

// BaseController is a simple implementation of controller
// wallet must return something that supports AsWallet
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a basic controller implementation
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

func (c BaseController) Balance(db beehive.ReadOnlyKVStore, addr beehive.Address) (uint64, error) {
	w, err := c.bucket.Get(db, addr)
	if err != nil || w == nil {
		return 0, err
	}
	return w.Balance, nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(db beehive.KVStore, src, dest beehive.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}

	sender, err := c.bucket.Get(db, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrNotFound, "empty account %s", src)
	}
	if err := sender.Subtract(amount); err != nil {
		return err
	}
	if src.Equals(dest) {
		// Funds stay where they are, nothing to write.
		return nil
	}

	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}

	if err := c.bucket.Save(db, src, sender); err != nil {
		return err
	}
	return c.bucket.Save(db, dest, recipient)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
func (c BaseController) IssueCoins(db beehive.KVStore, dest beehive.Address, amount uint64) error {
	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return c.bucket.Save(db, dest, recipient)
}
