package cash

import (
	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/errors"
	"github.com/beehive-network/beehive/orm"
	"github.com/gogo/protobuf/proto"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Wallet holds the balance of a single address.
type Wallet struct {
	Balance uint64 `protobuf:"varint,1,opt,name=balance,proto3" json:"balance,omitempty"`
}

var _ orm.Model = (*Wallet)(nil)

// Validate never fails, every uint64 is a valid balance.
func (w *Wallet) Validate() error {
	return nil
}

func (w *Wallet) Marshal() ([]byte, error) {
	return proto.Marshal((*walletMsg)(w))
}

func (w *Wallet) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*walletMsg)(w))
}

type walletMsg Wallet

func (m *walletMsg) Reset()         { *m = walletMsg{} }
func (m *walletMsg) String() string { return proto.CompactTextString(m) }
func (*walletMsg) ProtoMessage()    {}

// Add increases the balance, failing on overflow.
func (w *Wallet) Add(amount uint64) error {
	sum := w.Balance + amount
	if sum < w.Balance {
		return errors.Wrapf(errors.ErrOverflow, "%d + %d", w.Balance, amount)
	}
	w.Balance = sum
	return nil
}

// Subtract decreases the balance, failing if the balance is too low.
func (w *Wallet) Subtract(amount uint64) error {
	if w.Balance < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "balance %d, need %d", w.Balance, amount)
	}
	w.Balance -= amount
	return nil
}

// Bucket stores wallets by address.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket initializes a cash.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket(BucketName, &Wallet{}),
	}
}

// Get loads the wallet of the address, or nil if there is none.
func (b Bucket) Get(db beehive.ReadOnlyKVStore, addr beehive.Address) (*Wallet, error) {
	var w Wallet
	err := b.One(db, addr, &w)
	switch {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, err
	}
}

// GetOrCreate loads the wallet of the address, or returns an empty one.
func (b Bucket) GetOrCreate(db beehive.ReadOnlyKVStore, addr beehive.Address) (*Wallet, error) {
	w, err := b.Get(db, addr)
	if err != nil || w != nil {
		return w, err
	}
	return &Wallet{}, nil
}

// Save stores the wallet under the given address.
func (b Bucket) Save(db beehive.KVStore, addr beehive.Address, w *Wallet) error {
	if err := addr.Validate(); err != nil {
		return errors.Wrap(err, "wallet address")
	}
	return b.Put(db, addr, w)
}
