package orm

import (
	"testing"

	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/errors"
	"github.com/beehive-network/beehive/hivetest/assert"
	"github.com/beehive-network/beehive/store"
	"github.com/gogo/protobuf/proto"
)

type counter struct {
	Count uint64 `protobuf:"varint,1,opt,name=count,proto3"`
}

func (c *counter) Marshal() ([]byte, error) {
	return proto.Marshal((*counterMsg)(c))
}

func (c *counter) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*counterMsg)(c))
}

type counterMsg counter

func (m *counterMsg) Reset()         { *m = counterMsg{} }
func (m *counterMsg) String() string { return proto.CompactTextString(m) }
func (*counterMsg) ProtoMessage()    {}

func (c *counter) Validate() error {
	if c.Count > 1000 {
		return errors.Wrap(errors.ErrState, "too big")
	}
	return nil
}

type other struct{ counter }

func TestModelBucket(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	if err := b.Put(db, []byte("c1"), &counter{Count: 1}); err != nil {
		t.Fatalf("cannot save counter instance: %s", err)
	}

	var c1 counter
	if err := b.One(db, []byte("c1"), &c1); err != nil {
		t.Fatalf("cannot get c1 counter: %s", err)
	}
	if c1.Count != 1 {
		t.Fatalf("unexpected counter state: %d", c1.Count)
	}

	if err := b.One(db, []byte("c1"), &other{}); !errors.ErrType.Is(err) {
		t.Fatalf("unexpected error for a wrong destination: %s", err)
	}
	if err := b.Put(db, []byte("c2"), &counter{Count: 5000}); !errors.ErrState.Is(err) {
		t.Fatalf("unexpected error for an invalid model: %s", err)
	}
	if err := b.Put(db, nil, &counter{}); !errors.ErrEmpty.Is(err) {
		t.Fatalf("unexpected error for an empty key: %s", err)
	}

	if err := b.Delete(db, []byte("c1")); err != nil {
		t.Fatalf("cannot delete c1 counter: %s", err)
	}
	if err := b.Delete(db, []byte("unknown")); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error when deleting unexisting instance: %s", err)
	}
	if err := b.One(db, []byte("c1"), &c1); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error for an unknown model get: %s", err)
	}
}

func TestModelBucketInsert(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	assert.Nil(t, b.Insert(db, []byte("once"), &counter{Count: 1}))
	assert.IsErr(t, errors.ErrDuplicate, b.Insert(db, []byte("once"), &counter{Count: 2}))

	var c counter
	assert.Nil(t, b.One(db, []byte("once"), &c))
	assert.Equal(t, uint64(1), c.Count)

	has, err := b.Has(db, []byte("once"))
	assert.Nil(t, err)
	assert.Equal(t, true, has)
}

func TestModelBucketPrefix(t *testing.T) {
	db := store.MemStore()
	a := NewModelBucket("first", &counter{})
	b := NewModelBucket("second", &counter{})

	assert.Nil(t, a.Put(db, []byte("k"), &counter{Count: 7}))
	has, err := b.Has(db, []byte("k"))
	assert.Nil(t, err)
	assert.Equal(t, false, has)

	raw, err := db.Get([]byte("first:k"))
	assert.Nil(t, err)
	if raw == nil {
		t.Fatal("model not stored under the prefixed key")
	}
}

func TestModelBucketQuery(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})
	assert.Nil(t, b.Put(db, []byte("k"), &counter{Count: 3}))

	qr := beehive.NewQueryRouter()
	b.Register("counters", qr)
	h := qr.Handler("/counters")
	if h == nil {
		t.Fatal("query handler not registered")
	}

	res, err := h.Query(db, []byte("k"))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res))
	assert.Equal(t, []byte("cnts:k"), res[0].Key)
	var c counter
	assert.Nil(t, c.Unmarshal(res[0].Value))
	assert.Equal(t, uint64(3), c.Count)

	res, err = h.Query(db, []byte("missing"))
	assert.Nil(t, err)
	assert.Equal(t, 0, len(res))
}

func TestBucketNames(t *testing.T) {
	assert.Panics(t, func() { NewModelBucket("no", &counter{}) })
	assert.Panics(t, func() { NewModelBucket("UPPER", &counter{}) })
	assert.Panics(t, func() { NewModelBucket("valid", nil) })
}

func TestEmptyModelIsStored(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})
	assert.Nil(t, b.Insert(db, []byte("zero"), &counter{}))

	var c counter
	assert.Nil(t, b.One(db, []byte("zero"), &c))
	assert.Equal(t, uint64(0), c.Count)

	assert.Nil(t, db.Set(b.DBKey([]byte("bad")), []byte{9, 9}))
	assert.IsErr(t, errors.ErrModel, b.One(db, []byte("bad"), &c))
}
