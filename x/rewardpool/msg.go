package rewardpool

import (
	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/errors"
	"github.com/gogo/protobuf/proto"
)

const (
	pathInitializeMsg        = "rewardpool/initialize"
	pathTransferOwnershipMsg = "rewardpool/transfer_ownership"
	pathPauseMsg             = "rewardpool/pause"
	pathUnpauseMsg           = "rewardpool/unpause"
	pathDepositMsg           = "rewardpool/deposit"
	pathDistributeMsg        = "rewardpool/distribute"
)

var (
	_ beehive.Msg = (*InitializeMsg)(nil)
	_ beehive.Msg = (*TransferOwnershipMsg)(nil)
	_ beehive.Msg = (*PauseMsg)(nil)
	_ beehive.Msg = (*UnpauseMsg)(nil)
	_ beehive.Msg = (*DepositMsg)(nil)
	_ beehive.Msg = (*DistributeMsg)(nil)
)

// InitializeMsg creates the pool records with the given owner.
type InitializeMsg struct {
	Owner beehive.Address `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
}

func (InitializeMsg) Path() string {
	return pathInitializeMsg
}

func (m *InitializeMsg) Validate() error {
	return errors.Wrap(m.Owner.Validate(), "owner")
}

func (m *InitializeMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*initializeMsg)(m))
}

func (m *InitializeMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*initializeMsg)(m))
}

type initializeMsg InitializeMsg

func (m *initializeMsg) Reset()         { *m = initializeMsg{} }
func (m *initializeMsg) String() string { return proto.CompactTextString(m) }
func (*initializeMsg) ProtoMessage()    {}

// TransferOwnershipMsg hands the pool over to a new owner.
type TransferOwnershipMsg struct {
	NewOwner beehive.Address `protobuf:"bytes,1,opt,name=new_owner,json=newOwner,proto3" json:"new_owner,omitempty"`
}

func (TransferOwnershipMsg) Path() string {
	return pathTransferOwnershipMsg
}

func (m *TransferOwnershipMsg) Validate() error {
	return errors.Wrap(m.NewOwner.Validate(), "new owner")
}

func (m *TransferOwnershipMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*transferOwnershipMsg)(m))
}

func (m *TransferOwnershipMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*transferOwnershipMsg)(m))
}

type transferOwnershipMsg TransferOwnershipMsg

func (m *transferOwnershipMsg) Reset()         { *m = transferOwnershipMsg{} }
func (m *transferOwnershipMsg) String() string { return proto.CompactTextString(m) }
func (*transferOwnershipMsg) ProtoMessage()    {}

// PauseMsg stops distribution.
type PauseMsg struct{}

func (PauseMsg) Path() string {
	return pathPauseMsg
}

func (*PauseMsg) Validate() error {
	return nil
}

func (m *PauseMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*pauseMsg)(m))
}

func (m *PauseMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*pauseMsg)(m))
}

type pauseMsg PauseMsg

func (m *pauseMsg) Reset()         { *m = pauseMsg{} }
func (m *pauseMsg) String() string { return proto.CompactTextString(m) }
func (*pauseMsg) ProtoMessage()    {}

// UnpauseMsg resumes distribution.
type UnpauseMsg struct{}

func (UnpauseMsg) Path() string {
	return pathUnpauseMsg
}

func (*UnpauseMsg) Validate() error {
	return nil
}

func (m *UnpauseMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*unpauseMsg)(m))
}

func (m *UnpauseMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*unpauseMsg)(m))
}

type unpauseMsg UnpauseMsg

func (m *unpauseMsg) Reset()         { *m = unpauseMsg{} }
func (m *unpauseMsg) String() string { return proto.CompactTextString(m) }
func (*unpauseMsg) ProtoMessage()    {}

// DepositMsg moves funds from the signer into the pool.
type DepositMsg struct {
	Amount uint64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (DepositMsg) Path() string {
	return pathDepositMsg
}

func (m *DepositMsg) Validate() error {
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrAmount, "deposit must be positive")
	}
	return nil
}

func (m *DepositMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*depositMsg)(m))
}

func (m *DepositMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*depositMsg)(m))
}

type depositMsg DepositMsg

func (m *depositMsg) Reset()         { *m = depositMsg{} }
func (m *depositMsg) String() string { return proto.CompactTextString(m) }
func (*depositMsg) ProtoMessage()    {}

// DistributeMsg pays the recipient out of the pool.
type DistributeMsg struct {
	Recipient beehive.Address `protobuf:"bytes,1,opt,name=recipient,proto3" json:"recipient,omitempty"`
	Amount    uint64          `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (DistributeMsg) Path() string {
	return pathDistributeMsg
}

func (m *DistributeMsg) Validate() error {
	if err := m.Recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if m.Recipient.Equals(PoolAddress) {
		return errors.Wrap(errors.ErrInput, "recipient cannot be the pool")
	}
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrAmount, "distribution must be positive")
	}
	return nil
}

func (m *DistributeMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*distributeMsg)(m))
}

func (m *DistributeMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*distributeMsg)(m))
}

type distributeMsg DistributeMsg

func (m *distributeMsg) Reset()         { *m = distributeMsg{} }
func (m *distributeMsg) String() string { return proto.CompactTextString(m) }
func (*distributeMsg) ProtoMessage()    {}
