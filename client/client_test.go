package client

import (
	"testing"

	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/app"
	beehived "github.com/beehive-network/beehive/cmd/beehived/app"
	"github.com/beehive-network/beehive/crypto"
	"github.com/beehive-network/beehive/errors"
	"github.com/beehive-network/beehive/store/iavl"
	"github.com/beehive-network/beehive/x/rewardpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/tendermint/tendermint/rpc/client/mock"
)

const chainID = "beehive-client-test"

// node runs an in process application behind a mock RPC connection. The
// mock does not produce blocks, so every broadcast is wrapped in one.
type node struct {
	t      *testing.T
	app    app.BaseApp
	client *Client
	height int64
}

func newNode(t *testing.T, appState string) *node {
	t.Helper()
	bapp := beehived.Application(beehived.Stack(rewardpool.NopObserver{}), iavl.NewMemCommitStore(), log.NewNopLogger(), false)
	bapp.InitChain(abci.RequestInitChain{ChainId: chainID, AppStateBytes: []byte(appState)})
	bapp.Commit()
	return &node{t: t, app: bapp, client: NewClient(mock.ABCIApp{App: bapp})}
}

func (n *node) broadcast(key *crypto.PrivateKey, msg beehive.Msg) (*CommitResult, error) {
	n.t.Helper()
	nonce, err := n.client.Nonce(key.PublicKey().Address())
	require.NoError(n.t, err)
	tx := &beehived.Tx{Msg: msg}
	require.NoError(n.t, tx.Sign(key, chainID, nonce))

	n.height++
	n.app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: n.height, ChainID: chainID}})
	defer n.app.Commit()
	return n.client.BroadcastTx(tx)
}

func TestClientRoundTrip(t *testing.T) {
	owner := crypto.PrivKeyEd25519FromSeed(append(make([]byte, 31), 1))
	user := crypto.PrivKeyEd25519FromSeed(append(make([]byte, 31), 2))
	ownerAddr, userAddr := owner.PublicKey().Address(), user.PublicKey().Address()

	n := newNode(t, `{"cash": [
		{"address": "`+ownerAddr.String()+`", "balance": 100},
		{"address": "`+userAddr.String()+`", "balance": 40}
	]}`)
	c := n.client

	_, err := c.State()
	assert.True(t, errors.ErrNotFound.Is(err), "got %v", err)

	res, err := n.broadcast(owner, &rewardpool.InitializeMsg{Owner: ownerAddr})
	require.NoError(t, err)
	require.Len(t, res.Result.Tags, 1)
	assert.Equal(t, []byte("rewardpool/initialize"), res.Result.Tags[0].Value)

	state, err := c.State()
	require.NoError(t, err)
	assert.Equal(t, ownerAddr, state.Owner)
	assert.False(t, state.Paused)

	_, err = n.broadcast(user, &rewardpool.DepositMsg{Amount: 30})
	require.NoError(t, err)
	_, err = n.broadcast(owner, &rewardpool.DistributeMsg{Recipient: userAddr, Amount: 12})
	require.NoError(t, err)

	pool, err := c.Pool()
	require.NoError(t, err)
	assert.Equal(t, uint64(12), pool.TotalDistributed)

	bal, err := c.PoolBalance()
	require.NoError(t, err)
	assert.Equal(t, uint64(18), bal)
	bal, err = c.Balance(userAddr)
	require.NoError(t, err)
	assert.Equal(t, uint64(22), bal)

	nonce, err := c.Nonce(ownerAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(2), nonce)

	unknown := crypto.PrivKeyEd25519FromSeed(append(make([]byte, 31), 3)).PublicKey().Address()
	bal, err = c.Balance(unknown)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), bal)
	nonce, err = c.Nonce(unknown)
	require.NoError(t, err)
	assert.Equal(t, int64(0), nonce)
}

func TestClientErrors(t *testing.T) {
	owner := crypto.PrivKeyEd25519FromSeed(append(make([]byte, 31), 1))
	stranger := crypto.PrivKeyEd25519FromSeed(append(make([]byte, 31), 2))
	ownerAddr := owner.PublicKey().Address()

	n := newNode(t, `{
		"cash": [{"address": "`+ownerAddr.String()+`", "balance": 5}],
		"rewardpool": {"owner": "`+ownerAddr.String()+`"}
	}`)

	// rejected by the pool record
	_, err := n.broadcast(owner, &rewardpool.DistributeMsg{Recipient: ownerAddr, Amount: 1})
	assert.True(t, rewardpool.ErrInsufficientFunds.Is(err), "got %v", err)

	// rejected in CheckTx already
	_, err = n.broadcast(stranger, &rewardpool.PauseMsg{})
	assert.True(t, errors.ErrUnauthorized.Is(err), "got %v", err)

	_, err = n.broadcast(owner, &rewardpool.DepositMsg{Amount: 50})
	assert.True(t, rewardpool.ErrTransfer.Is(err), "got %v", err)

	_, err = n.client.Query("/nothing", nil)
	assert.True(t, errors.ErrNotFound.Is(err), "got %v", err)
}
