package hivetest

import "github.com/beehive-network/beehive"

// Decorator is a mock implementation of the beehive.Decorator interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding method.
// If error attributes are not set then wrapped handler method is called and
// its result returned.
// Each method call is counted. Regardless of the method call result the
// counter is incremented.
type Decorator struct {
	checkCall int
	// CheckErr if set is returned by the Check method before calling
	// the wrapped handler.
	CheckErr error

	deliverCall int
	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error
}

var _ beehive.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx beehive.Context, db beehive.KVStore, tx beehive.Tx, next beehive.Checker) (*beehive.CheckResult, error) {
	d.checkCall++

	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx beehive.Context, db beehive.KVStore, tx beehive.Tx, next beehive.Deliverer) (*beehive.DeliverResult, error) {
	d.deliverCall++

	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}

// Decorate wraps the handler with one decorator and returns it
// as a single handler.
func Decorate(h beehive.Handler, d beehive.Decorator) beehive.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn beehive.Handler
	dc beehive.Decorator
}

var _ beehive.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Check(ctx beehive.Context, db beehive.KVStore, tx beehive.Tx) (*beehive.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx beehive.Context, db beehive.KVStore, tx beehive.Tx) (*beehive.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
