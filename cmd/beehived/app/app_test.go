package beehived

import (
	"encoding/json"
	"io/ioutil"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/app"
	"github.com/beehive-network/beehive/audit"
	"github.com/beehive-network/beehive/commands/server"
	"github.com/beehive-network/beehive/crypto"
	"github.com/beehive-network/beehive/errors"
	"github.com/beehive-network/beehive/metrics"
	"github.com/beehive-network/beehive/store/iavl"
	"github.com/beehive-network/beehive/x/cash"
	"github.com/beehive-network/beehive/x/rewardpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const testChainID = "beehive-test-chain"

func testKey(seed byte) *crypto.PrivateKey {
	return crypto.PrivKeyEd25519FromSeed(append(make([]byte, 31), seed))
}

// chain drives the application one transaction per block.
type chain struct {
	t      *testing.T
	app    *App
	height int64
	nonces map[string]int64
}

func newChain(t *testing.T, conf server.Config, reg prometheus.Registerer, state interface{}) *chain {
	t.Helper()
	appState, err := json.Marshal(state)
	require.NoError(t, err)

	generated, err := GenerateApp(conf, log.NewNopLogger(), reg)
	require.NoError(t, err)
	a := generated.(*App)
	a.InitChain(abci.RequestInitChain{ChainId: testChainID, AppStateBytes: appState})
	a.Commit()
	return &chain{t: t, app: a, nonces: make(map[string]int64)}
}

// exec signs the message with the given keys, checks and delivers it in a
// new block and commits.
func (c *chain) exec(msg beehive.Msg, keys ...*crypto.PrivateKey) abci.ResponseDeliverTx {
	c.t.Helper()
	tx := &Tx{Msg: msg}
	for _, k := range keys {
		addr := k.PublicKey().Address().String()
		require.NoError(c.t, tx.Sign(k, testChainID, c.nonces[addr]))
		c.nonces[addr]++
	}
	raw, err := tx.Marshal()
	require.NoError(c.t, err)

	c.height++
	c.app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: c.height, ChainID: testChainID}})
	check := c.app.CheckTx(raw)
	res := c.app.DeliverTx(raw)
	if check.Code != errors.SuccessABCICode {
		require.Equal(c.t, check.Code, res.Code, "check and deliver disagree: %s", check.Log)
	}
	c.app.EndBlock(abci.RequestEndBlock{Height: c.height})
	c.app.Commit()
	return res
}

func (c *chain) query(path string, data []byte, dest beehive.Persistent) bool {
	c.t.Helper()
	res := c.app.Query(abci.RequestQuery{Path: path, Data: data})
	require.Equal(c.t, errors.SuccessABCICode, res.Code, res.Log)
	var values app.ResultSet
	require.NoError(c.t, values.Unmarshal(res.Value))
	if len(values.Results) == 0 {
		return false
	}
	require.NoError(c.t, dest.Unmarshal(values.Results[0]))
	return true
}

func (c *chain) balance(addr beehive.Address) uint64 {
	c.t.Helper()
	var w cash.Wallet
	if !c.query("/wallets", addr, &w) {
		return 0
	}
	return w.Balance
}

func TestRewardPoolLifecycle(t *testing.T) {
	home, err := ioutil.TempDir("", "beehived")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	owner, user, stranger := testKey(1), testKey(2), testKey(3)
	ownerAddr, userAddr := owner.PublicKey().Address(), user.PublicKey().Address()

	reg := prometheus.NewRegistry()
	conf := server.Config{AuditPath: filepath.Join(home, "audit.db")}
	c := newChain(t, conf, reg, genesisState{
		Cash: []cash.GenesisAccount{
			{Address: ownerAddr, Balance: 1000},
			{Address: userAddr, Balance: 500},
		},
		RewardPool: rewardpool.Genesis{Owner: ownerAddr},
	})

	res := c.exec(&rewardpool.DepositMsg{Amount: 200}, user)
	require.Equal(t, errors.SuccessABCICode, res.Code, res.Log)
	assert.Equal(t, uint64(200), c.balance(rewardpool.PoolAddress))
	assert.Equal(t, uint64(300), c.balance(userAddr))

	res = c.exec(&rewardpool.DistributeMsg{Recipient: userAddr, Amount: 50}, owner)
	require.Equal(t, errors.SuccessABCICode, res.Code, res.Log)

	res = c.exec(&rewardpool.DistributeMsg{Recipient: userAddr, Amount: 50}, stranger)
	assert.Equal(t, errors.ErrUnauthorized.ABCICode(), res.Code)
	assert.Contains(t, res.Log, "Unauthorized access")

	res = c.exec(&rewardpool.DistributeMsg{Recipient: userAddr, Amount: 1000}, owner)
	assert.Equal(t, rewardpool.ErrInsufficientFunds.ABCICode(), res.Code)

	res = c.exec(&rewardpool.PauseMsg{}, owner)
	require.Equal(t, errors.SuccessABCICode, res.Code, res.Log)
	res = c.exec(&rewardpool.DistributeMsg{Recipient: userAddr, Amount: 10}, owner)
	assert.Equal(t, rewardpool.ErrDistributionPaused.ABCICode(), res.Code)

	var state rewardpool.State
	require.True(t, c.query("/rewardpool/state", nil, &state))
	assert.True(t, state.Paused)
	assert.Equal(t, ownerAddr, state.Owner)

	var pool rewardpool.RewardPool
	require.True(t, c.query("/rewardpool/pool", nil, &pool))
	assert.Equal(t, uint64(50), pool.TotalDistributed)
	assert.Equal(t, uint64(150), c.balance(rewardpool.PoolAddress))
	assert.Equal(t, uint64(350), c.balance(userAddr))

	srv := httptest.NewServer(metrics.Handler(reg))
	defer srv.Close()
	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	body, err := ioutil.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "beehive_rewardpool_distributed_total 50"), string(body))

	require.NoError(t, c.app.Close())
	journal, err := audit.Open(conf.AuditPath)
	require.NoError(t, err)
	defer journal.Close()
	entries, err := journal.Entries(0, 10)
	require.NoError(t, err)
	kinds := make([]rewardpool.EventKind, len(entries))
	for i, e := range entries {
		kinds[i] = e.Event.Kind
	}
	assert.Equal(t, []rewardpool.EventKind{
		rewardpool.EventDeposited,
		rewardpool.EventDistributed,
		rewardpool.EventPaused,
	}, kinds)
}

func TestInitializeThroughTransaction(t *testing.T) {
	owner, next := testKey(1), testKey(2)
	ownerAddr, nextAddr := owner.PublicKey().Address(), next.PublicKey().Address()
	c := newChain(t, server.Config{}, prometheus.NewRegistry(), genesisState{
		Cash: []cash.GenesisAccount{{Address: ownerAddr, Balance: 10}},
	})
	defer c.app.Close()

	var state rewardpool.State
	assert.False(t, c.query("/rewardpool/state", nil, &state))

	res := c.exec(&rewardpool.InitializeMsg{Owner: ownerAddr}, owner)
	require.Equal(t, errors.SuccessABCICode, res.Code, res.Log)
	res = c.exec(&rewardpool.InitializeMsg{Owner: nextAddr}, next)
	assert.Equal(t, rewardpool.ErrAlreadyInitialized.ABCICode(), res.Code)

	res = c.exec(&rewardpool.TransferOwnershipMsg{NewOwner: nextAddr}, owner)
	require.Equal(t, errors.SuccessABCICode, res.Code, res.Log)
	require.True(t, c.query("/rewardpool/state", nil, &state))
	assert.Equal(t, nextAddr, state.Owner)

	// the old owner lost control
	res = c.exec(&rewardpool.PauseMsg{}, owner)
	assert.Equal(t, errors.ErrUnauthorized.ABCICode(), res.Code)
	res = c.exec(&rewardpool.PauseMsg{}, next)
	assert.Equal(t, errors.SuccessABCICode, res.Code, res.Log)
	res = c.exec(&rewardpool.UnpauseMsg{}, next)
	assert.Equal(t, errors.SuccessABCICode, res.Code, res.Log)
}

func TestSendThroughTransaction(t *testing.T) {
	alice, bob := testKey(1), testKey(2)
	aliceAddr, bobAddr := alice.PublicKey().Address(), bob.PublicKey().Address()
	c := newChain(t, server.Config{}, prometheus.NewRegistry(), genesisState{
		Cash: []cash.GenesisAccount{{Address: aliceAddr, Balance: 100}},
	})
	defer c.app.Close()

	res := c.exec(&cash.SendMsg{Source: aliceAddr, Destination: bobAddr, Amount: 40}, alice)
	require.Equal(t, errors.SuccessABCICode, res.Code, res.Log)
	assert.Equal(t, uint64(60), c.balance(aliceAddr))
	assert.Equal(t, uint64(40), c.balance(bobAddr))

	// unsigned transfers are rejected
	res = c.exec(&cash.SendMsg{Source: aliceAddr, Destination: bobAddr, Amount: 40})
	assert.Equal(t, errors.ErrUnauthorized.ABCICode(), res.Code)
}

func TestGenInitOptions(t *testing.T) {
	addr := testKey(9).PublicKey().Address()
	raw, err := GenInitOptions([]string{addr.String(), "77"})
	require.NoError(t, err)
	require.NoError(t, server.ValidateAppState(Initializers(), raw))

	var state genesisState
	require.NoError(t, json.Unmarshal(raw, &state))
	assert.Equal(t, []cash.GenesisAccount{{Address: addr, Balance: 77}}, state.Cash)
	assert.Equal(t, addr, state.RewardPool.Owner)

	_, err = GenInitOptions([]string{"zz"})
	assert.Error(t, err)
	_, err = GenInitOptions([]string{addr.String(), "-1"})
	assert.True(t, errors.ErrAmount.Is(err))
}

func TestJournalFollowsCommits(t *testing.T) {
	home, err := ioutil.TempDir("", "beehived")
	require.NoError(t, err)
	defer os.RemoveAll(home)
	journal, err := audit.Open(filepath.Join(home, "audit.db"))
	require.NoError(t, err)
	defer journal.Close()

	user := testKey(2)
	userAddr := user.PublicKey().Address()
	appState, err := json.Marshal(genesisState{
		Cash:       []cash.GenesisAccount{{Address: userAddr, Balance: 10}},
		RewardPool: rewardpool.Genesis{Owner: userAddr},
	})
	require.NoError(t, err)

	base := Application(Stack(journal), iavl.NewMemCommitStore(), log.NewNopLogger(), false)
	a := &App{BaseApp: base, flushers: []func() error{journal.Flush}}
	a.InitChain(abci.RequestInitChain{ChainId: testChainID, AppStateBytes: appState})
	a.Commit()

	tx := &Tx{Msg: &rewardpool.DepositMsg{Amount: 4}}
	require.NoError(t, tx.Sign(user, testChainID, 0))
	raw, err := tx.Marshal()
	require.NoError(t, err)

	a.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1, ChainID: testChainID}})
	res := a.DeliverTx(raw)
	require.Equal(t, errors.SuccessABCICode, res.Code, res.Log)
	a.EndBlock(abci.RequestEndBlock{Height: 1})

	n, err := journal.Len()
	require.NoError(t, err)
	assert.Equal(t, 0, n, "recorded before commit")

	a.Commit()
	entries, err := journal.Entries(0, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, rewardpool.EventDeposited, entries[0].Event.Kind)
	assert.Equal(t, uint64(4), entries[0].Event.Amount)
}
