package cash

import (
	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/errors"
	"github.com/gogo/protobuf/proto"
)

const (
	pathSendMsg = "cash/send"

	maxMemoSize = 128
)

// SendMsg moves tokens between two wallets. The source must sign.
type SendMsg struct {
	Source      beehive.Address `protobuf:"bytes,1,opt,name=source,proto3" json:"source,omitempty"`
	Destination beehive.Address `protobuf:"bytes,2,opt,name=destination,proto3" json:"destination,omitempty"`
	Amount      uint64          `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	Memo        string          `protobuf:"bytes,4,opt,name=memo,proto3" json:"memo,omitempty"`
}

var _ beehive.Msg = (*SendMsg)(nil)

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return pathSendMsg
}

// Validate makes sure that this is sensible
func (s *SendMsg) Validate() error {
	if s.Amount == 0 {
		return errors.Wrap(errors.ErrAmount, "non-positive SendMsg")
	}
	if err := s.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := s.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if len(s.Memo) > maxMemoSize {
		return errors.Wrapf(errors.ErrInput, "memo too long: %d", len(s.Memo))
	}
	return nil
}

func (s *SendMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*sendMsg)(s))
}

func (s *SendMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*sendMsg)(s))
}

type sendMsg SendMsg

func (m *sendMsg) Reset()         { *m = sendMsg{} }
func (m *sendMsg) String() string { return proto.CompactTextString(m) }
func (*sendMsg) ProtoMessage()    {}
