package utils

import (
	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ beehive.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (Recovery) Check(ctx beehive.Context, store beehive.KVStore, tx beehive.Tx, next beehive.Checker) (_ *beehive.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (Recovery) Deliver(ctx beehive.Context, store beehive.KVStore, tx beehive.Tx, next beehive.Deliverer) (_ *beehive.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
