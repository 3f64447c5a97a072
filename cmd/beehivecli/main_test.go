package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/beehive-network/beehive/app"
	"github.com/beehive-network/beehive/client"
	beehived "github.com/beehive-network/beehive/cmd/beehived/app"
	"github.com/beehive-network/beehive/store/iavl"
	"github.com/beehive-network/beehive/x/rewardpool"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/tendermint/tendermint/rpc/client/mock"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
	tmtypes "github.com/tendermint/tendermint/types"
)

const testChainID = "beehive-cli-test"

// blockNode runs every broadcast transaction in its own block, as the mock
// connection does not produce blocks.
type blockNode struct {
	mock.ABCIApp
	base   app.BaseApp
	height int64
}

func (n *blockNode) BroadcastTxCommit(tx tmtypes.Tx) (*ctypes.ResultBroadcastTxCommit, error) {
	n.height++
	n.base.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: n.height, ChainID: testChainID}})
	defer n.base.Commit()
	res, err := n.ABCIApp.BroadcastTxCommit(tx)
	if res != nil {
		res.Height = n.height
	}
	return res, err
}

// withNode makes all commands talk to a fresh in process application
// initialized with the given app state.
func withNode(t *testing.T, appState string) func() {
	t.Helper()
	base := beehived.Application(beehived.Stack(rewardpool.NopObserver{}), iavl.NewMemCommitStore(), log.NewNopLogger(), false)
	base.InitChain(abci.RequestInitChain{ChainId: testChainID, AppStateBytes: []byte(appState)})
	base.Commit()

	node := &blockNode{ABCIApp: mock.ABCIApp{App: base}, base: base}
	prev := newClient
	newClient = func(string) *client.Client { return client.NewClient(node) }
	return func() { newClient = prev }
}

// tempKey writes a new private key into a temporary directory.
func tempKey(t *testing.T) (string, func()) {
	t.Helper()
	dir, err := ioutil.TempDir("", "beehivecli")
	if err != nil {
		t.Fatalf("cannot create temp dir: %s", err)
	}
	path := filepath.Join(dir, "priv.key")
	if err := cmdKeygen(nil, ioutil.Discard, []string{"-key", path}); err != nil {
		t.Fatalf("cannot generate key: %s", err)
	}
	return path, func() { os.RemoveAll(dir) }
}

// pipe runs the commands in order, each reading the previous output.
func pipe(t *testing.T, steps ...func(in *bytes.Buffer, out *bytes.Buffer) error) *bytes.Buffer {
	t.Helper()
	in := &bytes.Buffer{}
	for i, step := range steps {
		out := &bytes.Buffer{}
		if err := step(in, out); err != nil {
			t.Fatalf("step %d failed: %s", i, err)
		}
		in = out
	}
	return in
}
