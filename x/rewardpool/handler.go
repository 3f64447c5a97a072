package rewardpool

import (
	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/errors"
	"github.com/beehive-network/beehive/x"
	"github.com/beehive-network/beehive/x/cash"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	initializeCost int64 = 100
	ownershipCost  int64 = 50
	pauseCost      int64 = 10
	depositCost    int64 = 100
	distributeCost int64 = 100
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r beehive.Registry, auth x.Authenticator, bank cash.Controller, obs Observer) {
	if obs == nil {
		obs = NopObserver{}
	}
	base := baseHandler{
		auth:     auth,
		states:   NewStateBucket(),
		ledger:   NewLedger(bank),
		observer: obs,
	}
	r.Handle(pathInitializeMsg, InitializeHandler{base})
	r.Handle(pathTransferOwnershipMsg, TransferOwnershipHandler{base})
	r.Handle(pathPauseMsg, PauseHandler{baseHandler: base, pause: true})
	r.Handle(pathUnpauseMsg, PauseHandler{baseHandler: base, pause: false})
	r.Handle(pathDepositMsg, DepositHandler{base})
	r.Handle(pathDistributeMsg, DistributeHandler{base})
}

// RegisterQuery exposes the pool records as "/rewardpool/state" and
// "/rewardpool/pool".
func RegisterQuery(qr beehive.QueryRouter) {
	qr.Register("/rewardpool/state", singletonQuery{bucket: NewStateBucket().ModelBucket, key: stateKey})
	qr.Register("/rewardpool/pool", singletonQuery{bucket: NewPoolBucket().ModelBucket, key: poolKey})
}

type baseHandler struct {
	auth     x.Authenticator
	states   StateBucket
	ledger   Ledger
	observer Observer
}

// authorize loads the state and makes sure the main signer owns the pool.
func (h baseHandler) authorize(ctx beehive.Context, db beehive.ReadOnlyKVStore) (*State, beehive.Address, error) {
	state, err := h.states.Get(db)
	if err != nil {
		return nil, nil, err
	}
	signer := caller(ctx, h.auth)
	if err := RequireIdentity(signer, state.Owner); err != nil {
		return nil, nil, err
	}
	return state, signer, nil
}

func (h baseHandler) deliverResult(path string) *beehive.DeliverResult {
	return &beehive.DeliverResult{
		Tags: []common.KVPair{beehive.ActionTag(path)},
	}
}

// InitializeHandler creates the pool records. It requires no signature,
// the first successful call decides the owner.
type InitializeHandler struct {
	baseHandler
}

var _ beehive.Handler = InitializeHandler{}

func (h InitializeHandler) Check(ctx beehive.Context, db beehive.KVStore, tx beehive.Tx) (*beehive.CheckResult, error) {
	if _, err := h.validate(db, tx); err != nil {
		return nil, err
	}
	res := beehive.NewCheck(initializeCost, "")
	return &res, nil
}

func (h InitializeHandler) Deliver(ctx beehive.Context, db beehive.KVStore, tx beehive.Tx) (*beehive.DeliverResult, error) {
	msg, err := h.validate(db, tx)
	if err != nil {
		return nil, err
	}
	if err := initialize(db, h.states, h.ledger.pools, msg.Owner); err != nil {
		return nil, err
	}
	notify(ctx, h.observer, Event{
		Kind:    EventInitialized,
		Actor:   caller(ctx, h.auth),
		Subject: msg.Owner,
	})
	return h.deliverResult(pathInitializeMsg), nil
}

func (h InitializeHandler) validate(db beehive.ReadOnlyKVStore, tx beehive.Tx) (*InitializeMsg, error) {
	var msg InitializeMsg
	if err := beehive.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	exists, err := h.states.Has(db, stateKey)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.Wrap(ErrAlreadyInitialized, "state exists")
	}
	return &msg, nil
}

// initialize creates both records. It fails with ErrAlreadyInitialized if
// either of them exists.
func initialize(db beehive.KVStore, states StateBucket, pools PoolBucket, owner beehive.Address) error {
	if err := states.Create(db, &State{Owner: owner}); err != nil {
		return errors.Wrap(err, "create state")
	}
	if err := pools.Create(db, &RewardPool{}); err != nil {
		return errors.Wrap(err, "create pool")
	}
	return nil
}

// TransferOwnershipHandler replaces the owner. Only the current owner may
// do that.
type TransferOwnershipHandler struct {
	baseHandler
}

var _ beehive.Handler = TransferOwnershipHandler{}

func (h TransferOwnershipHandler) Check(ctx beehive.Context, db beehive.KVStore, tx beehive.Tx) (*beehive.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	res := beehive.NewCheck(ownershipCost, "")
	return &res, nil
}

func (h TransferOwnershipHandler) Deliver(ctx beehive.Context, db beehive.KVStore, tx beehive.Tx) (*beehive.DeliverResult, error) {
	msg, state, signer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	state.Owner = msg.NewOwner
	if err := h.states.Save(db, state); err != nil {
		return nil, errors.Wrap(err, "save state")
	}
	notify(ctx, h.observer, Event{
		Kind:    EventOwnershipTransferred,
		Actor:   signer,
		Subject: msg.NewOwner,
	})
	return h.deliverResult(pathTransferOwnershipMsg), nil
}

func (h TransferOwnershipHandler) validate(ctx beehive.Context, db beehive.ReadOnlyKVStore, tx beehive.Tx) (*TransferOwnershipMsg, *State, beehive.Address, error) {
	var msg TransferOwnershipMsg
	if err := beehive.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	state, signer, err := h.authorize(ctx, db)
	if err != nil {
		return nil, nil, nil, err
	}
	return &msg, state, signer, nil
}

// PauseHandler sets the pause switch. It serves both PauseMsg and
// UnpauseMsg. Setting the switch to its current value is accepted.
type PauseHandler struct {
	baseHandler
	pause bool
}

var _ beehive.Handler = PauseHandler{}

func (h PauseHandler) Check(ctx beehive.Context, db beehive.KVStore, tx beehive.Tx) (*beehive.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	res := beehive.NewCheck(pauseCost, "")
	return &res, nil
}

func (h PauseHandler) Deliver(ctx beehive.Context, db beehive.KVStore, tx beehive.Tx) (*beehive.DeliverResult, error) {
	state, signer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	state.Paused = h.pause
	if err := h.states.Save(db, state); err != nil {
		return nil, errors.Wrap(err, "save state")
	}

	kind, path := EventUnpaused, pathUnpauseMsg
	if h.pause {
		kind, path = EventPaused, pathPauseMsg
	}
	notify(ctx, h.observer, Event{Kind: kind, Actor: signer})
	return h.deliverResult(path), nil
}

func (h PauseHandler) validate(ctx beehive.Context, db beehive.ReadOnlyKVStore, tx beehive.Tx) (*State, beehive.Address, error) {
	var err error
	if h.pause {
		err = beehive.LoadMsg(tx, &PauseMsg{})
	} else {
		err = beehive.LoadMsg(tx, &UnpauseMsg{})
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	return h.authorize(ctx, db)
}

// DepositHandler moves funds of the signer into the pool. Anybody may
// deposit.
type DepositHandler struct {
	baseHandler
}

var _ beehive.Handler = DepositHandler{}

func (h DepositHandler) Check(ctx beehive.Context, db beehive.KVStore, tx beehive.Tx) (*beehive.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	res := beehive.NewCheck(depositCost, "")
	return &res, nil
}

func (h DepositHandler) Deliver(ctx beehive.Context, db beehive.KVStore, tx beehive.Tx) (*beehive.DeliverResult, error) {
	msg, depositor, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ledger.Deposit(db, depositor, msg.Amount); err != nil {
		return nil, err
	}
	balance, err := h.ledger.Balance(db)
	if err != nil {
		return nil, errors.Wrap(err, "pool balance")
	}
	notify(ctx, h.observer, Event{
		Kind:    EventDeposited,
		Actor:   depositor,
		Amount:  msg.Amount,
		Balance: balance,
	})
	return h.deliverResult(pathDepositMsg), nil
}

func (h DepositHandler) validate(ctx beehive.Context, db beehive.ReadOnlyKVStore, tx beehive.Tx) (*DepositMsg, beehive.Address, error) {
	var msg DepositMsg
	if err := beehive.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.states.Get(db); err != nil {
		return nil, nil, err
	}
	depositor := caller(ctx, h.auth)
	if depositor == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "deposit requires a signer")
	}
	return &msg, depositor, nil
}

// DistributeHandler pays out of the pool. Only the owner may distribute
// and only while the pool is not paused.
type DistributeHandler struct {
	baseHandler
}

var _ beehive.Handler = DistributeHandler{}

func (h DistributeHandler) Check(ctx beehive.Context, db beehive.KVStore, tx beehive.Tx) (*beehive.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	res := beehive.NewCheck(distributeCost, "")
	return &res, nil
}

func (h DistributeHandler) Deliver(ctx beehive.Context, db beehive.KVStore, tx beehive.Tx) (*beehive.DeliverResult, error) {
	msg, signer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	total, err := h.ledger.Distribute(db, msg.Recipient, msg.Amount)
	if err != nil {
		return nil, err
	}
	balance, err := h.ledger.Balance(db)
	if err != nil {
		return nil, errors.Wrap(err, "pool balance")
	}
	notify(ctx, h.observer, Event{
		Kind:             EventDistributed,
		Actor:            signer,
		Subject:          msg.Recipient,
		Amount:           msg.Amount,
		Balance:          balance,
		TotalDistributed: total,
	})
	return h.deliverResult(pathDistributeMsg), nil
}

// validate checks the owner first and the pause switch second.
func (h DistributeHandler) validate(ctx beehive.Context, db beehive.ReadOnlyKVStore, tx beehive.Tx) (*DistributeMsg, beehive.Address, error) {
	var msg DistributeMsg
	if err := beehive.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	state, signer, err := h.authorize(ctx, db)
	if err != nil {
		return nil, nil, err
	}
	if state.Paused {
		return nil, nil, errors.Wrap(ErrDistributionPaused, "distribute")
	}
	return &msg, signer, nil
}
