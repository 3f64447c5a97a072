/*
Package audit keeps an append-only journal of reward pool notifications in a
bbolt database next to the chain data.

The journal is an observer. It never takes part in consensus, so losing it
does not affect the application state. Events are buffered in memory and
written by Flush, which the daemon calls once the block is committed. A block
that is never committed leaves no entries behind, and a block replayed after
a crash is not recorded twice.
*/
package audit

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/errors"
	"github.com/beehive-network/beehive/x/rewardpool"
	"go.etcd.io/bbolt"
)

var bucketEvents = []byte("events")

// Entry is a single journal record.
type Entry struct {
	Seq   uint64
	Event rewardpool.Event
}

// Journal appends every event it is notified about.
type Journal struct {
	db *bbolt.DB

	mu      sync.Mutex
	pending [][]byte
}

var _ rewardpool.Observer = (*Journal)(nil)

// Open opens or creates the journal at path. The parent directory is
// created when missing.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "create directory: %s", err)
	}
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "open journal: %s", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketEvents)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(errors.ErrDatabase, "create bucket: %s", err)
	}
	return &Journal{db: db}, nil
}

// Close releases the database file.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Notify buffers the event until the next Flush.
func (j *Journal) Notify(ctx beehive.Context, ev rewardpool.Event) error {
	raw, err := ev.Marshal()
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	j.mu.Lock()
	j.pending = append(j.pending, raw)
	j.mu.Unlock()
	return nil
}

// Flush appends all buffered events in a single transaction, each under
// the next sequence number. On failure the events stay buffered.
func (j *Journal) Flush() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if len(j.pending) == 0 {
		return nil
	}
	err := j.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketEvents)
		for _, raw := range j.pending {
			seq, err := b.NextSequence()
			if err != nil {
				return err
			}
			if err := b.Put(seqKey(seq), raw); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Wrapf(errors.ErrDatabase, "append events: %s", err)
	}
	j.pending = nil
	return nil
}

// Entries returns up to limit entries with a sequence greater than after,
// in order. A zero limit returns everything.
func (j *Journal) Entries(after uint64, limit int) ([]Entry, error) {
	var entries []Entry
	err := j.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketEvents).Cursor()
		for k, v := c.Seek(seqKey(after + 1)); k != nil; k, v = c.Next() {
			if limit > 0 && len(entries) == limit {
				break
			}
			var ev rewardpool.Event
			if err := ev.Unmarshal(v); err != nil {
				return errors.Wrapf(err, "entry %x", k)
			}
			entries = append(entries, Entry{
				Seq:   binary.BigEndian.Uint64(k),
				Event: ev,
			})
		}
		return nil
	})
	return entries, err
}

// Len returns the number of entries in the journal.
func (j *Journal) Len() (int, error) {
	var n int
	err := j.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket(bucketEvents).Stats().KeyN
		return nil
	})
	return n, err
}

func seqKey(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)
	return k
}
