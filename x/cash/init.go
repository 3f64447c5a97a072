package cash

import (
	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
// use beehive.Address, so address in hex, not base64
type GenesisAccount struct {
	Address beehive.Address `json:"address"`
	Balance uint64          `json:"balance"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ beehive.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts beehive.Options, kv beehive.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	bucket := NewBucket()
	for i, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		if err := bucket.Insert(kv, acct.Address, &Wallet{Balance: acct.Balance}); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
