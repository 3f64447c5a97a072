package beehived

import (
	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/crypto"
	"github.com/beehive-network/beehive/errors"
	"github.com/beehive-network/beehive/x/cash"
	"github.com/beehive-network/beehive/x/rewardpool"
	"github.com/beehive-network/beehive/x/sigs"
	"github.com/gogo/protobuf/proto"
)

// Tx is the transaction format accepted by beehived. It carries exactly one
// message and any number of signatures.
type Tx struct {
	Signatures []*sigs.StdSignature
	Msg        beehive.Msg
}

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (beehive.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, err
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ beehive.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// GetMsg returns the single message of this transaction.
func (tx *Tx) GetMsg() (beehive.Msg, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "transaction without message")
	}
	return tx.Msg, nil
}

// GetSignatures returns the signatures of this transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes
	// should only come from the data itself, not previous signatures
	sigs := tx.Signatures
	tx.Signatures = nil

	bz, err := tx.Marshal()

	// reset the signatures after calculating the bytes
	tx.Signatures = sigs
	return bz, err
}

// Sign appends the signature of the given key. All signers sign the same
// bytes, the transaction without any signature.
func (tx *Tx) Sign(key crypto.Signer, chainID string, nonce int64) error {
	sig, err := sigs.SignTx(key, tx, chainID, nonce)
	if err != nil {
		return err
	}
	tx.Signatures = append(tx.Signatures, sig)
	return nil
}

func (tx *Tx) Marshal() ([]byte, error) {
	wire := txMsg{Signatures: tx.Signatures}
	switch msg := tx.Msg.(type) {
	case nil:
	case *rewardpool.InitializeMsg:
		wire.InitializeMsg = msg
	case *rewardpool.TransferOwnershipMsg:
		wire.TransferOwnershipMsg = msg
	case *rewardpool.PauseMsg:
		wire.PauseMsg = msg
	case *rewardpool.UnpauseMsg:
		wire.UnpauseMsg = msg
	case *rewardpool.DepositMsg:
		wire.DepositMsg = msg
	case *rewardpool.DistributeMsg:
		wire.DistributeMsg = msg
	case *cash.SendMsg:
		wire.SendMsg = msg
	default:
		return nil, errors.Wrapf(errors.ErrType, "unsupported message %T", msg)
	}
	return proto.Marshal(&wire)
}

func (tx *Tx) Unmarshal(raw []byte) error {
	var wire txMsg
	if err := proto.Unmarshal(raw, &wire); err != nil {
		return err
	}
	*tx = Tx{Signatures: wire.Signatures}
	for _, msg := range wire.msgs() {
		if tx.Msg != nil {
			return errors.Wrap(errors.ErrMsg, "more than one message")
		}
		tx.Msg = msg
	}
	return nil
}

// txMsg is the wire form of Tx. At most one message field is set.
type txMsg struct {
	Signatures           []*sigs.StdSignature             `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`
	InitializeMsg        *rewardpool.InitializeMsg        `protobuf:"bytes,2,opt,name=initialize_msg,json=initializeMsg,proto3" json:"initialize_msg,omitempty"`
	TransferOwnershipMsg *rewardpool.TransferOwnershipMsg `protobuf:"bytes,3,opt,name=transfer_ownership_msg,json=transferOwnershipMsg,proto3" json:"transfer_ownership_msg,omitempty"`
	PauseMsg             *rewardpool.PauseMsg             `protobuf:"bytes,4,opt,name=pause_msg,json=pauseMsg,proto3" json:"pause_msg,omitempty"`
	UnpauseMsg           *rewardpool.UnpauseMsg           `protobuf:"bytes,5,opt,name=unpause_msg,json=unpauseMsg,proto3" json:"unpause_msg,omitempty"`
	DepositMsg           *rewardpool.DepositMsg           `protobuf:"bytes,6,opt,name=deposit_msg,json=depositMsg,proto3" json:"deposit_msg,omitempty"`
	DistributeMsg        *rewardpool.DistributeMsg        `protobuf:"bytes,7,opt,name=distribute_msg,json=distributeMsg,proto3" json:"distribute_msg,omitempty"`
	SendMsg              *cash.SendMsg                    `protobuf:"bytes,8,opt,name=send_msg,json=sendMsg,proto3" json:"send_msg,omitempty"`
}

func (m *txMsg) Reset()         { *m = txMsg{} }
func (m *txMsg) String() string { return proto.CompactTextString(m) }
func (*txMsg) ProtoMessage()    {}

// msgs returns every message field that is set.
func (m *txMsg) msgs() []beehive.Msg {
	var set []beehive.Msg
	if m.InitializeMsg != nil {
		set = append(set, m.InitializeMsg)
	}
	if m.TransferOwnershipMsg != nil {
		set = append(set, m.TransferOwnershipMsg)
	}
	if m.PauseMsg != nil {
		set = append(set, m.PauseMsg)
	}
	if m.UnpauseMsg != nil {
		set = append(set, m.UnpauseMsg)
	}
	if m.DepositMsg != nil {
		set = append(set, m.DepositMsg)
	}
	if m.DistributeMsg != nil {
		set = append(set, m.DistributeMsg)
	}
	if m.SendMsg != nil {
		set = append(set, m.SendMsg)
	}
	return set
}
