package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/beehive-network/beehive"
)

func cmdQuery(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Query the node and print the result as JSON. The first argument selects what
is queried:

  state    owner and pause flag of the reward pool
  pool     total distributed and the pool balance
  wallet   balance of -addr
  nonce    next signature sequence of -addr
`)
		fl.PrintDefaults()
	}
	var (
		nodeFl = fl.String("node", defaultNode(),
			"Tendermint RPC address. You can use BEEHIVECLI_NODE environment variable to set it.")
		addrFl = flAddress(fl, "addr", "", "Account address for the wallet and nonce queries.")
	)
	if len(args) == 0 {
		flagDie("query requires one of: state, pool, wallet, nonce")
	}
	what := args[0]
	fl.Parse(args[1:])

	c := newClient(*nodeFl)
	var result interface{}
	switch what {
	case "state":
		state, err := c.State()
		if err != nil {
			return fmt.Errorf("cannot query state: %s", err)
		}
		result = struct {
			Owner  beehive.Address `json:"owner"`
			Paused bool            `json:"paused"`
		}{state.Owner, state.Paused}
	case "pool":
		pool, err := c.Pool()
		if err != nil {
			return fmt.Errorf("cannot query pool: %s", err)
		}
		balance, err := c.PoolBalance()
		if err != nil {
			return fmt.Errorf("cannot query pool balance: %s", err)
		}
		result = struct {
			TotalDistributed uint64 `json:"total_distributed"`
			Balance          uint64 `json:"balance"`
		}{pool.TotalDistributed, balance}
	case "wallet":
		if err := addrFl.Validate(); err != nil {
			flagDie("invalid -addr: %s", err)
		}
		balance, err := c.Balance(*addrFl)
		if err != nil {
			return fmt.Errorf("cannot query wallet: %s", err)
		}
		result = struct {
			Address beehive.Address `json:"address"`
			Balance uint64          `json:"balance"`
		}{*addrFl, balance}
	case "nonce":
		if err := addrFl.Validate(); err != nil {
			flagDie("invalid -addr: %s", err)
		}
		nonce, err := c.Nonce(*addrFl)
		if err != nil {
			return fmt.Errorf("cannot query nonce: %s", err)
		}
		result = struct {
			Address beehive.Address `json:"address"`
			Nonce   int64           `json:"nonce"`
		}{*addrFl, nonce}
	default:
		flagDie("unknown query %q, use one of: state, pool, wallet, nonce", what)
	}

	enc := json.NewEncoder(output)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
