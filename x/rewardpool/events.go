package rewardpool

import (
	"github.com/beehive-network/beehive"
	"github.com/gogo/protobuf/proto"
)

// EventKind names the operation that produced an Event.
type EventKind string

const (
	EventInitialized          EventKind = "initialized"
	EventOwnershipTransferred EventKind = "ownership_transferred"
	EventPaused               EventKind = "paused"
	EventUnpaused             EventKind = "unpaused"
	EventDeposited            EventKind = "deposited"
	EventDistributed          EventKind = "distributed"
)

// Event describes the outcome of a successful operation.
type Event struct {
	Kind   EventKind `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	Height int64     `protobuf:"varint,2,opt,name=height,proto3" json:"height,omitempty"`
	// Actor is the signer of the operation, empty for genesis.
	Actor beehive.Address `protobuf:"bytes,3,opt,name=actor,proto3" json:"actor,omitempty"`
	// Subject is the new owner or the distribution recipient.
	Subject          beehive.Address `protobuf:"bytes,4,opt,name=subject,proto3" json:"subject,omitempty"`
	Amount           uint64          `protobuf:"varint,5,opt,name=amount,proto3" json:"amount,omitempty"`
	Balance          uint64          `protobuf:"varint,6,opt,name=balance,proto3" json:"balance,omitempty"`
	TotalDistributed uint64          `protobuf:"varint,7,opt,name=total_distributed,json=totalDistributed,proto3" json:"total_distributed,omitempty"`
}

func (e *Event) Marshal() ([]byte, error) {
	return proto.Marshal((*eventMsg)(e))
}

func (e *Event) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*eventMsg)(e))
}

type eventMsg Event

func (m *eventMsg) Reset()         { *m = eventMsg{} }
func (m *eventMsg) String() string { return proto.CompactTextString(m) }
func (*eventMsg) ProtoMessage()    {}

// Observer receives a notification for every successful operation.
// Returned errors are logged and otherwise ignored.
type Observer interface {
	Notify(ctx beehive.Context, ev Event) error
}

// NopObserver drops all notifications.
type NopObserver struct{}

var _ Observer = NopObserver{}

func (NopObserver) Notify(beehive.Context, Event) error {
	return nil
}

// LogObserver writes every notification to the context logger.
type LogObserver struct{}

var _ Observer = LogObserver{}

func (LogObserver) Notify(ctx beehive.Context, ev Event) error {
	keyvals := []interface{}{
		"kind", string(ev.Kind),
		"height", ev.Height,
		"amount", ev.Amount,
		"balance", ev.Balance,
		"total_distributed", ev.TotalDistributed,
	}
	if len(ev.Actor) != 0 {
		keyvals = append(keyvals, "actor", ev.Actor.String())
	}
	if len(ev.Subject) != 0 {
		keyvals = append(keyvals, "subject", ev.Subject.String())
	}
	beehive.GetLogger(ctx).With("module", "rewardpool").Info("reward pool event", keyvals...)
	return nil
}

// Observers fans a notification out to all of its members. Every member
// is notified even if an earlier one fails; the first error is returned.
type Observers []Observer

var _ Observer = Observers(nil)

func (o Observers) Notify(ctx beehive.Context, ev Event) error {
	var first error
	for _, obs := range o {
		if err := obs.Notify(ctx, ev); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// notify delivers the event and swallows any failure.
func notify(ctx beehive.Context, obs Observer, ev Event) {
	if obs == nil {
		return
	}
	if h, ok := beehive.GetHeight(ctx); ok {
		ev.Height = h
	}
	if err := obs.Notify(ctx, ev); err != nil {
		beehive.GetLogger(ctx).Error("reward pool notification failed",
			"kind", string(ev.Kind), "err", err)
	}
}
