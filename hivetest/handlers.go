package hivetest

import "github.com/beehive-network/beehive"

// Handler is a mock implementation of the beehive.Handler interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding
// method. When WriteKey is set, Deliver stores WriteValue under it before
// returning.
type Handler struct {
	checkCall   int
	CheckResult beehive.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult beehive.DeliverResult
	DeliverErr    error

	WriteKey   []byte
	WriteValue []byte
}

var _ beehive.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx beehive.Context, db beehive.KVStore, tx beehive.Tx) (*beehive.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx beehive.Context, db beehive.KVStore, tx beehive.Tx) (*beehive.DeliverResult, error) {
	h.deliverCall++
	if h.WriteKey != nil {
		if err := db.Set(h.WriteKey, h.WriteValue); err != nil {
			return nil, err
		}
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
