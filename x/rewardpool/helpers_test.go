package rewardpool

import (
	"context"
	"testing"

	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/hivetest"
	"github.com/beehive-network/beehive/store"
	"github.com/beehive-network/beehive/x/cash"
	"github.com/beehive-network/beehive/x/utils"
	"github.com/stretchr/testify/require"
)

// recorder keeps every event it is notified about.
type recorder struct {
	events []Event
	err    error
}

func (r *recorder) Notify(ctx beehive.Context, ev Event) error {
	r.events = append(r.events, ev)
	return r.err
}

func (r *recorder) kinds() []EventKind {
	var kinds []EventKind
	for _, ev := range r.events {
		kinds = append(kinds, ev.Kind)
	}
	return kinds
}

// registry is the minimal beehive.Registry needed to collect handlers.
type registry map[string]beehive.Handler

func (r registry) Handle(path string, h beehive.Handler) {
	r[path] = h
}

type fixture struct {
	t        testing.TB
	db       store.CacheableKVStore
	auth     *hivetest.CtxAuth
	bank     cash.BaseController
	handlers registry
	obs      *recorder
}

func newFixture(t testing.TB) *fixture {
	f := &fixture{
		t:        t,
		db:       store.MemStore(),
		auth:     &hivetest.CtxAuth{Key: "rewardpool-test"},
		bank:     cash.NewController(cash.NewBucket()),
		handlers: registry{},
		obs:      &recorder{},
	}
	RegisterRoutes(f.handlers, f.auth, f.bank, f.obs)
	return f
}

func (f *fixture) ctx(signer beehive.Condition) beehive.Context {
	ctx := beehive.WithHeight(context.Background(), 7)
	if signer == nil {
		return ctx
	}
	return f.auth.SetConditions(ctx, signer)
}

func (f *fixture) handler(msg beehive.Msg) beehive.Handler {
	h, ok := f.handlers[msg.Path()]
	if !ok {
		f.t.Fatalf("no handler for %q", msg.Path())
	}
	return h
}

// check runs CheckTx against a throw-away cache.
func (f *fixture) check(signer beehive.Condition, msg beehive.Msg) error {
	cache := f.db.CacheWrap()
	defer cache.Discard()
	_, err := f.handler(msg).Check(f.ctx(signer), cache, &hivetest.Tx{Msg: msg})
	return err
}

// deliver runs DeliverTx inside a savepoint, the way the application does.
func (f *fixture) deliver(signer beehive.Condition, msg beehive.Msg) error {
	_, err := utils.NewSavepoint().OnDeliver().Deliver(f.ctx(signer), f.db, &hivetest.Tx{Msg: msg}, f.handler(msg))
	return err
}

func (f *fixture) mustDeliver(signer beehive.Condition, msg beehive.Msg) {
	f.t.Helper()
	require.NoError(f.t, f.deliver(signer, msg))
}

func (f *fixture) fund(addr beehive.Address, amount uint64) {
	f.t.Helper()
	require.NoError(f.t, f.bank.IssueCoins(f.db, addr, amount))
}

func (f *fixture) balance(addr beehive.Address) uint64 {
	f.t.Helper()
	b, err := f.bank.Balance(f.db, addr)
	require.NoError(f.t, err)
	return b
}

func (f *fixture) state() *State {
	f.t.Helper()
	s, err := NewStateBucket().Get(f.db)
	require.NoError(f.t, err)
	return s
}

func (f *fixture) pool() *RewardPool {
	f.t.Helper()
	p, err := NewPoolBucket().Get(f.db)
	require.NoError(f.t, err)
	return p
}
