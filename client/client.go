/*
Package client talks to a running beehived node through the tendermint
RPC. It submits signed transactions and decodes the results of the
application queries into their models.
*/
package client

import (
	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/app"
	"github.com/beehive-network/beehive/errors"
	"github.com/beehive-network/beehive/x/cash"
	"github.com/beehive-network/beehive/x/rewardpool"
	"github.com/beehive-network/beehive/x/sigs"
	cmn "github.com/tendermint/tendermint/libs/common"
	rpcclient "github.com/tendermint/tendermint/rpc/client"
)

// TransactionID is the hash used to identify the transaction
type TransactionID = cmn.HexBytes

// CommitResult is returned once a transaction is included in a block.
type CommitResult struct {
	ID     TransactionID
	Height int64
	Result *beehive.DeliverResult
}

// Client is a tendermint client wrapped to provide
// simple access to the beehive data structures.
type Client struct {
	conn rpcclient.ABCIClient
}

// NewClient wraps a Client around an existing tendermint client connection.
func NewClient(conn rpcclient.ABCIClient) *Client {
	return &Client{conn: conn}
}

// NewHTTPClient connects to the tendermint RPC at the given address,
// for example "tcp://localhost:26657".
func NewHTTPClient(remote string) *Client {
	return NewClient(rpcclient.NewHTTP(remote, "/websocket"))
}

// BroadcastTx submits the transaction and waits until it is committed.
// A rejection by either CheckTx or DeliverTx is returned as an error,
// carrying the registered error of the returned code.
func (c *Client) BroadcastTx(tx beehive.Tx) (*CommitResult, error) {
	bz, err := tx.Marshal()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrMsg, "marshaling: %s", err.Error())
	}
	res, err := c.conn.BroadcastTxCommit(bz)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNetwork, "broadcast tx: %s", err.Error())
	}
	// a checktx error is handled like any other error... didn't make it into mempool... will not make it into block
	if res.CheckTx.Code != errors.SuccessABCICode {
		return nil, errors.ABCIError(res.CheckTx.Code, res.CheckTx.Log)
	}
	result, err := beehive.ParseDeliverOrError(res.DeliverTx)
	if err != nil {
		return nil, err
	}
	return &CommitResult{
		ID:     res.Hash,
		Height: res.Height,
		Result: result,
	}, nil
}

// Query runs an application query and returns the matching models.
func (c *Client) Query(path string, data []byte) ([]beehive.Model, error) {
	res, err := c.conn.ABCIQuery(path, data)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNetwork, "query %s: %s", path, err.Error())
	}
	resp := res.Response
	if resp.Code != errors.SuccessABCICode {
		return nil, errors.ABCIError(resp.Code, resp.Log)
	}

	var keys, values app.ResultSet
	if err := keys.Unmarshal(resp.Key); err != nil {
		return nil, errors.Wrap(err, "keys")
	}
	if err := values.Unmarshal(resp.Value); err != nil {
		return nil, errors.Wrap(err, "values")
	}
	return app.JoinResults(&keys, &values)
}

// queryOne loads the single model returned by the query into dest.
// It returns false when nothing is stored.
func (c *Client) queryOne(path string, data []byte, dest beehive.Persistent) (bool, error) {
	models, err := c.Query(path, data)
	if err != nil {
		return false, err
	}
	if len(models) == 0 {
		return false, nil
	}
	if err := dest.Unmarshal(models[0].Value); err != nil {
		return false, errors.Wrapf(errors.ErrModel, "cannot unmarshal %T: %s", dest, err)
	}
	return true, nil
}

// State returns the owner and pause flag of the reward pool.
func (c *Client) State() (*rewardpool.State, error) {
	var state rewardpool.State
	ok, err := c.queryOne("/rewardpool/state", nil, &state)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrap(errors.ErrNotFound, "reward pool not initialized")
	}
	return &state, nil
}

// Pool returns the distribution record of the reward pool.
func (c *Client) Pool() (*rewardpool.RewardPool, error) {
	var pool rewardpool.RewardPool
	ok, err := c.queryOne("/rewardpool/pool", nil, &pool)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrap(errors.ErrNotFound, "reward pool not initialized")
	}
	return &pool, nil
}

// Balance returns the wallet balance of the address. An address without a
// wallet has a zero balance.
func (c *Client) Balance(addr beehive.Address) (uint64, error) {
	var w cash.Wallet
	if _, err := c.queryOne("/wallets", addr, &w); err != nil {
		return 0, err
	}
	return w.Balance, nil
}

// PoolBalance returns the balance held by the reward pool.
func (c *Client) PoolBalance() (uint64, error) {
	return c.Balance(rewardpool.PoolAddress)
}

// Nonce returns the sequence the next signature of the address must use.
func (c *Client) Nonce(addr beehive.Address) (int64, error) {
	var user sigs.UserData
	if _, err := c.queryOne("/auth", addr, &user); err != nil {
		return 0, err
	}
	return user.Sequence, nil
}
