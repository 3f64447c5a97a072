package rewardpool

import (
	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/errors"
	"github.com/beehive-network/beehive/orm"
	"github.com/gogo/protobuf/proto"
)

var (
	// PoolCondition is the condition owning the pool holding account.
	// Nobody can sign for it, funds leave it only through Distribute.
	PoolCondition = beehive.NewCondition("rewardpool", "pool", []byte("reward_pool"))
	// PoolAddress is the cash wallet holding the pooled balance.
	PoolAddress = PoolCondition.Address()

	stateKey = []byte("state")
	poolKey  = []byte("reward_pool")
)

// State holds the owner of the pool and the pause switch.
type State struct {
	Owner  beehive.Address `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Paused bool            `protobuf:"varint,2,opt,name=paused,proto3" json:"paused,omitempty"`
}

var _ orm.Model = (*State)(nil)

func (s *State) Validate() error {
	if err := s.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return nil
}

func (s *State) Marshal() ([]byte, error) {
	return proto.Marshal((*stateMsg)(s))
}

func (s *State) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*stateMsg)(s))
}

// stateMsg is the protobuf message of State. It has no Marshal method so
// that proto encodes it from the field tags.
type stateMsg State

func (m *stateMsg) Reset()         { *m = stateMsg{} }
func (m *stateMsg) String() string { return proto.CompactTextString(m) }
func (*stateMsg) ProtoMessage()    {}

// RewardPool tracks the amount distributed over the lifetime of the pool.
// The balance is not part of it, see Ledger.Balance.
type RewardPool struct {
	TotalDistributed uint64 `protobuf:"varint,1,opt,name=total_distributed,json=totalDistributed,proto3" json:"total_distributed,omitempty"`
}

var _ orm.Model = (*RewardPool)(nil)

func (*RewardPool) Validate() error {
	return nil
}

func (p *RewardPool) Marshal() ([]byte, error) {
	return proto.Marshal((*rewardPoolMsg)(p))
}

func (p *RewardPool) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rewardPoolMsg)(p))
}

type rewardPoolMsg RewardPool

func (m *rewardPoolMsg) Reset()         { *m = rewardPoolMsg{} }
func (m *rewardPoolMsg) String() string { return proto.CompactTextString(m) }
func (*rewardPoolMsg) ProtoMessage()    {}

// StateBucket stores the State singleton.
type StateBucket struct {
	orm.ModelBucket
}

// NewStateBucket returns a bucket for the State record.
func NewStateBucket() StateBucket {
	return StateBucket{orm.NewModelBucket("rpstate", &State{})}
}

// Get loads the state. ErrNotFound means the pool was not initialized.
func (b StateBucket) Get(db beehive.ReadOnlyKVStore) (*State, error) {
	var s State
	if err := b.One(db, stateKey, &s); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, errors.Wrap(err, "reward pool not initialized")
		}
		return nil, err
	}
	return &s, nil
}

// Save overwrites the state.
func (b StateBucket) Save(db beehive.KVStore, s *State) error {
	return b.Put(db, stateKey, s)
}

// Create stores the state, failing if it exists already.
func (b StateBucket) Create(db beehive.KVStore, s *State) error {
	return initErr(b.Insert(db, stateKey, s))
}

// PoolBucket stores the RewardPool singleton.
type PoolBucket struct {
	orm.ModelBucket
}

// NewPoolBucket returns a bucket for the RewardPool record.
func NewPoolBucket() PoolBucket {
	return PoolBucket{orm.NewModelBucket("rpool", &RewardPool{})}
}

// Get loads the pool record. ErrNotFound means the pool was not
// initialized.
func (b PoolBucket) Get(db beehive.ReadOnlyKVStore) (*RewardPool, error) {
	var p RewardPool
	if err := b.One(db, poolKey, &p); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, errors.Wrap(err, "reward pool not initialized")
		}
		return nil, err
	}
	return &p, nil
}

// Save overwrites the pool record.
func (b PoolBucket) Save(db beehive.KVStore, p *RewardPool) error {
	return b.Put(db, poolKey, p)
}

// Create stores the pool record, failing if it exists already.
func (b PoolBucket) Create(db beehive.KVStore, p *RewardPool) error {
	return initErr(b.Insert(db, poolKey, p))
}

func initErr(err error) error {
	if errors.ErrDuplicate.Is(err) {
		return errors.Wrap(ErrAlreadyInitialized, err.Error())
	}
	return err
}

// singletonQuery serves a record stored under a fixed key, ignoring the
// query data.
type singletonQuery struct {
	bucket orm.ModelBucket
	key    []byte
}

func (q singletonQuery) Query(db beehive.ReadOnlyKVStore, _ []byte) ([]beehive.Model, error) {
	return q.bucket.Query(db, q.key)
}
