/*
Package orm stores typed models in prefixed sections of the KVStore called
buckets.

Every key written through a ModelBucket is prefixed with the bucket name and
a colon, so different buckets never collide. Models validate themselves
before they are written and are serialized with their own Marshal method.
*/
package orm

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// schemaV1 prefixes every stored value. It keeps values of empty models
// distinguishable from missing keys.
const schemaV1 byte = 1

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	beehive.Persistent
	Validate() error
}

// ModelBucket stores models of a single type under a common prefix.
type ModelBucket struct {
	name   string
	prefix []byte
	model  reflect.Type
}

var _ beehive.QueryHandler = ModelBucket{}

// NewModelBucket returns a bucket for the given name, storing values of the
// same type as the example model. Panics on an invalid name.
func NewModelBucket(name string, example Model) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	t := reflect.TypeOf(example)
	if t == nil || t.Kind() != reflect.Ptr {
		panic(fmt.Sprintf("bucket %s requires a pointer model, got %T", name, example))
	}
	return ModelBucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		model:  t,
	}
}

// Name returns the name of this bucket.
func (b ModelBucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including prefix
func (b ModelBucket) DBKey(key []byte) []byte {
	// append(b.prefix, key...) could write into the shared backing array of
	// the prefix, so always copy
	out := make([]byte, len(b.prefix)+len(key))
	copy(out, b.prefix)
	copy(out[len(b.prefix):], key)
	return out
}

// One query the database for a single model instance. Lookup is done
// by the primary key. Result is loaded into given destination model.
// This method returns ErrNotFound if the entity does not exist in the
// database. If given model type cannot be used to contain stored entity,
// ErrType is returned.
func (b ModelBucket) One(db beehive.ReadOnlyKVStore, key []byte, dest Model) error {
	if reflect.TypeOf(dest) != b.model {
		return errors.Wrapf(errors.ErrType, "%s bucket holds %s, got %T", b.name, b.model, dest)
	}
	raw, err := db.Get(b.DBKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot read from the database")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	raw, err = unwrapSchema(raw)
	if err != nil {
		return err
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot unmarshal %T: %s", dest, err)
	}
	return nil
}

// Has returns true if a model is stored under the given key.
func (b ModelBucket) Has(db beehive.ReadOnlyKVStore, key []byte) (bool, error) {
	ok, err := db.Has(b.DBKey(key))
	if err != nil {
		return false, errors.Wrap(err, "cannot read from the database")
	}
	return ok, nil
}

// Put saves given model in the database, replacing any previous value.
func (b ModelBucket) Put(db beehive.KVStore, key []byte, m Model) error {
	if reflect.TypeOf(m) != b.model {
		return errors.Wrapf(errors.ErrType, "%s bucket holds %s, got %T", b.name, b.model, m)
	}
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot marshal %T: %s", m, err)
	}
	if err := db.Set(b.DBKey(key), append([]byte{schemaV1}, raw...)); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

// Insert saves given model only if no entity is stored under the key yet.
// It returns ErrDuplicate otherwise.
func (b ModelBucket) Insert(db beehive.KVStore, key []byte, m Model) error {
	exists, err := b.Has(db, key)
	if err != nil {
		return err
	}
	if exists {
		return errors.Wrapf(errors.ErrDuplicate, "%s %X", b.name, key)
	}
	return b.Put(db, key, m)
}

// Delete removes an entity with given primary key from the database.
// It returns ErrNotFound if an entity with given key does not exist.
func (b ModelBucket) Delete(db beehive.KVStore, key []byte) error {
	exists, err := b.Has(db, key)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Wrapf(errors.ErrNotFound, "%s %X", b.name, key)
	}
	return db.Delete(b.DBKey(key))
}

// Query returns the serialized model stored under the given key, if any.
func (b ModelBucket) Query(db beehive.ReadOnlyKVStore, data []byte) ([]beehive.Model, error) {
	key := b.DBKey(data)
	raw, err := db.Get(key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	raw, err = unwrapSchema(raw)
	if err != nil {
		return nil, err
	}
	return []beehive.Model{beehive.Pair(key, raw)}, nil
}

func unwrapSchema(raw []byte) ([]byte, error) {
	if len(raw) == 0 || raw[0] != schemaV1 {
		return nil, errors.Wrap(errors.ErrModel, "unknown schema version")
	}
	return raw[1:], nil
}

// Register adds this bucket as a query handler under /<name>.
func (b ModelBucket) Register(name string, r beehive.QueryRouter) {
	r.Register("/"+name, b)
}
