package sigs

import (
	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/hivetest"
)

// stdTx is a minimal signed transaction carrying raw payload bytes.
type stdTx struct {
	hivetest.Tx
	Signatures []*StdSignature
}

var _ SignedTx = (*stdTx)(nil)

func newStdTx(payload []byte) *stdTx {
	return &stdTx{Tx: hivetest.Tx{Msg: &hivetest.Msg{Serialized: payload}}}
}

func (tx *stdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx *stdTx) GetSignBytes() ([]byte, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	return msg.Marshal()
}

// sigCheckHandler stores the seen signers on each call
type sigCheckHandler struct {
	Signers []beehive.Condition
}

var _ beehive.Handler = (*sigCheckHandler)(nil)

func (s *sigCheckHandler) Check(ctx beehive.Context, store beehive.KVStore, tx beehive.Tx) (*beehive.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &beehive.CheckResult{}, nil
}

func (s *sigCheckHandler) Deliver(ctx beehive.Context, store beehive.KVStore, tx beehive.Tx) (*beehive.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &beehive.DeliverResult{}, nil
}
