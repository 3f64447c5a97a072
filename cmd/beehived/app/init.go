package beehived

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/commands/server"
	"github.com/beehive-network/beehive/errors"
	"github.com/beehive-network/beehive/x/cash"
	"github.com/beehive-network/beehive/x/rewardpool"
)

// DefaultBalance is the genesis balance of the development account.
const DefaultBalance = 123456789

// genesisState is the app_state written by GenInitOptions.
type genesisState struct {
	Cash       []cash.GenesisAccount `json:"cash"`
	RewardPool rewardpool.Genesis    `json:"rewardpool"`
}

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode. The account also owns the reward pool.
//
// Arguments are an optional address and an optional balance. Without an
// address a key is generated and printed.
func GenInitOptions(args []string) (json.RawMessage, error) {
	var addr beehive.Address
	if len(args) > 0 {
		var err error
		if addr, err = beehive.ParseAddress(args[0]); err != nil {
			return nil, errors.Wrapf(err, "address %q", args[0])
		}
		if err := addr.Validate(); err != nil {
			return nil, err
		}
	} else {
		// if no address provided, auto-generate one
		// and print out the key to recover it
		generated, key := server.GenerateCoinKey()
		raw, err := key.Marshal()
		if err != nil {
			return nil, err
		}
		addr = generated
		fmt.Printf("Generated owner %s\nPrivate key %s\n", addr.Bech32(), hex.EncodeToString(raw))
	}

	balance := uint64(DefaultBalance)
	if len(args) > 1 {
		var err error
		if balance, err = strconv.ParseUint(args[1], 10, 64); err != nil {
			return nil, errors.Wrapf(errors.ErrAmount, "balance %q", args[1])
		}
	}

	return json.MarshalIndent(genesisState{
		Cash:       []cash.GenesisAccount{{Address: addr, Balance: balance}},
		RewardPool: rewardpool.Genesis{Owner: addr},
	}, "", "  ")
}
