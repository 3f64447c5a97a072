package app

import (
	"context"
	"testing"

	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/errors"
	"github.com/beehive-network/beehive/hivetest"
	"github.com/beehive-network/beehive/x/utils"
	"github.com/stretchr/testify/assert"
)

func TestChain(t *testing.T) {
	c1 := &hivetest.Decorator{}
	c2 := &hivetest.Decorator{}
	c3 := &hivetest.Decorator{}
	h := &hivetest.Handler{}

	stack := ChainDecorators(
		c1,
		utils.NewLogging(),
		utils.NewRecovery(),
		c2,
		panicAtHeight(6),
		c3,
	).WithHandler(h)

	bg := context.Background()

	_, err := stack.Check(bg, nil, &hivetest.Tx{})
	assert.NoError(t, err)
	ctx := beehive.WithHeight(bg, 4)
	_, err = stack.Deliver(ctx, nil, &hivetest.Tx{})
	assert.NoError(t, err)

	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())

	// now, let's trigger a panic
	ctx = beehive.WithHeight(bg, 8)
	_, err = stack.Check(ctx, nil, &hivetest.Tx{})
	assert.True(t, errors.ErrPanic.Is(err))
	_, err = stack.Deliver(ctx, nil, &hivetest.Tx{})
	assert.True(t, errors.ErrPanic.Is(err))

	assert.Equal(t, 4, c1.CallCount())
	assert.Equal(t, 4, c2.CallCount())
	// the panic happens before c3
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())
}

func TestChainSkipsNil(t *testing.T) {
	var nilDecorator *hivetest.Decorator
	h := &hivetest.Handler{}
	stack := ChainDecorators(nil, nilDecorator).Chain(nil).WithHandler(h)
	_, err := stack.Deliver(context.Background(), nil, &hivetest.Tx{})
	assert.NoError(t, err)
	assert.Equal(t, 1, h.CallCount())
}

// panicAtHeight panics if the context height is above the limit
type panicAtHeight int64

func (p panicAtHeight) Check(ctx beehive.Context, store beehive.KVStore, tx beehive.Tx, next beehive.Checker) (*beehive.CheckResult, error) {
	if val, _ := beehive.GetHeight(ctx); val > int64(p) {
		panic("too high")
	}
	return next.Check(ctx, store, tx)
}

func (p panicAtHeight) Deliver(ctx beehive.Context, store beehive.KVStore, tx beehive.Tx, next beehive.Deliverer) (*beehive.DeliverResult, error) {
	if val, _ := beehive.GetHeight(ctx); val > int64(p) {
		panic("too high")
	}
	return next.Deliver(ctx, store, tx)
}
