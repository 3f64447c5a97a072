package rewardpool

import (
	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/errors"
)

const optKey = "rewardpool"

// Genesis is the optional "rewardpool" section of the genesis file.
type Genesis struct {
	Owner beehive.Address `json:"owner"`
}

// Initializer creates the pool records from genesis when an owner is
// configured. Without the section the pool waits for an InitializeMsg.
type Initializer struct{}

var _ beehive.Initializer = Initializer{}

func (Initializer) FromGenesis(opts beehive.Options, kv beehive.KVStore) error {
	var gen Genesis
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return err
	}
	if gen.Owner == nil {
		return nil
	}
	if err := gen.Owner.Validate(); err != nil {
		return errors.Wrap(err, "rewardpool owner")
	}
	return initialize(kv, NewStateBucket(), NewPoolBucket(), gen.Owner)
}
