package hivetest

import (
	"context"
	"testing"

	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/errors"
	"github.com/beehive-network/beehive/hivetest/assert"
	"github.com/beehive-network/beehive/store"
)

func TestSuccessfulDecorator(t *testing.T) {
	var (
		d Decorator
		h Handler
	)

	_, _ = d.Check(nil, nil, nil, &h)
	assert.Equal(t, 1, h.CheckCallCount())
	assert.Equal(t, 0, h.DeliverCallCount())

	_, _ = d.Deliver(nil, nil, nil, &h)
	assert.Equal(t, 1, h.DeliverCallCount())
	assert.Equal(t, 2, d.CallCount())
}

func TestDecoratorWithError(t *testing.T) {
	d := Decorator{
		CheckErr:   errors.ErrUnauthorized,
		DeliverErr: errors.ErrNotFound,
	}

	// When using an error returning decorator, handler is never called.
	// Otherwise using nil would panic.
	var handler beehive.Handler

	_, err := d.Check(nil, nil, nil, handler)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	_, err = d.Deliver(nil, nil, nil, handler)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestDecorateAndWrite(t *testing.T) {
	db := store.MemStore()
	h := &Handler{WriteKey: []byte("k"), WriteValue: []byte("v"), DeliverErr: errors.ErrState}
	d := &Decorator{}
	dh := Decorate(h, d)

	_, err := dh.Deliver(context.Background(), db, &Tx{})
	assert.IsErr(t, errors.ErrState, err)
	assert.Equal(t, 1, d.DeliverCallCount())

	got, err := db.Get([]byte("k"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestAuth(t *testing.T) {
	a, b := NewCondition(), NewCondition()

	auth := &Auth{Signer: a, Signers: []beehive.Condition{b}}
	assert.Equal(t, true, auth.HasAddress(nil, a.Address()))
	assert.Equal(t, true, auth.HasAddress(nil, b.Address()))
	assert.Equal(t, false, auth.HasAddress(nil, NewCondition().Address()))

	ctxAuth := &CtxAuth{Key: "test"}
	ctx := ctxAuth.SetConditions(context.Background(), a)
	assert.Equal(t, []beehive.Condition{a}, ctxAuth.GetConditions(ctx))
	assert.Equal(t, false, ctxAuth.HasAddress(ctx, b.Address()))
	assert.Nil(t, ctxAuth.GetConditions(context.Background()))
}

func TestParseAddress(t *testing.T) {
	addr := NewCondition().Address()
	assert.Equal(t, addr, ParseAddress(t, addr.String()))
}
