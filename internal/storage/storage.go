package storage

import (
	"errors"
	"sync"
	"time"

	"github.com/cockroachdb/pebble"
)

const (
	// DefaultSyncInterval is the default interval between WAL syncs.
	DefaultSyncInterval = 100 * time.Millisecond
)

// Op is one write of an atomic batch: a put, or a delete when Delete is set.
type Op struct {
	Key    []byte
	Value  []byte
	Delete bool
}

// Reader is the read side shared by the live store and its views.
type Reader interface {
	// Get returns nil for a missing key.
	Get(key []byte) ([]byte, error)
	IteratePrefix(prefix []byte, fn func(key, value []byte) error) error
}

// Storage is the chain state key-value store backed by Pebble.
// Writes are non-blocking (NoSync) and a background goroutine
// periodically syncs the WAL to disk.
type Storage struct {
	db       *pebble.DB    // db is the underlying Pebble database
	interval time.Duration // interval is the WAL sync period
	stopSync chan struct{} // stopSync signals the sync goroutine to stop
	wg       sync.WaitGroup
}

// Open opens or creates the store at path, syncing the WAL every interval
// (DefaultSyncInterval when interval <= 0).
func Open(path string, interval time.Duration) (*Storage, error) {
	opts := &pebble.Options{
		Cache:                       pebble.NewCache(32 << 20), // 32 MB cache
		MemTableSize:                16 << 20,                  // 16 MB memtable
		MemTableStopWritesThreshold: 2,
	}

	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, err
	}

	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	s := &Storage{
		db:       db,
		interval: interval,
		stopSync: make(chan struct{}),
	}

	s.startSyncLoop()

	return s, nil
}

// Get implements Reader.
func (s *Storage) Get(key []byte) ([]byte, error) {
	return get(s.db, key)
}

// IteratePrefix implements Reader.
func (s *Storage) IteratePrefix(prefix []byte, fn func(key, value []byte) error) error {
	return iteratePrefix(s.db, prefix, fn)
}

// Set stores a single key-value pair.
func (s *Storage) Set(key, value []byte) error {
	return s.db.Set(key, value, pebble.NoSync)
}

// Write applies ops atomically: either all are written or none.
func (s *Storage) Write(ops []Op) error {
	batch := s.db.NewBatch()
	defer batch.Close()

	for _, op := range ops {
		var err error
		if op.Delete {
			err = batch.Delete(op.Key, nil)
		} else {
			err = batch.Set(op.Key, op.Value, nil)
		}

		if err != nil {
			return err
		}
	}

	return batch.Commit(pebble.NoSync)
}

// View returns a consistent read-only view of the store as of now.
// Later writes are not visible through it. The caller must Close it.
func (s *Storage) View() *View {
	return &View{snap: s.db.NewSnapshot()}
}

// Close stops the sync goroutine, syncs a last time and closes the database.
func (s *Storage) Close() error {
	close(s.stopSync)
	s.wg.Wait()

	if err := s.db.LogData(nil, pebble.Sync); err != nil {
		return err
	}

	return s.db.Close()
}

// startSyncLoop starts the background goroutine that periodically syncs the WAL.
func (s *Storage) startSyncLoop() {
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				_ = s.db.LogData(nil, pebble.Sync)
			case <-s.stopSync:
				return
			}
		}
	}()
}

// View is a point-in-time read-only view backed by a Pebble snapshot.
// It is safe for concurrent readers.
type View struct {
	snap *pebble.Snapshot
}

// Get implements Reader.
func (v *View) Get(key []byte) ([]byte, error) {
	return get(v.snap, key)
}

// IteratePrefix implements Reader.
func (v *View) IteratePrefix(prefix []byte, fn func(key, value []byte) error) error {
	return iteratePrefix(v.snap, prefix, fn)
}

// Close releases the snapshot.
func (v *View) Close() error {
	return v.snap.Close()
}

// get copies the value out, since Pebble invalidates it on close.
func get(r pebble.Reader, key []byte) ([]byte, error) {
	value, closer, err := r.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	return append([]byte(nil), value...), nil
}

// iteratePrefix visits keys with the given prefix in lexicographic order.
// An empty prefix visits everything. Stops at the first error from fn.
func iteratePrefix(r pebble.Reader, prefix []byte, fn func(key, value []byte) error) error {
	opts := &pebble.IterOptions{}
	if len(prefix) > 0 {
		opts.LowerBound = prefix
		opts.UpperBound = prefixUpperBound(prefix)
	}

	iter, err := r.NewIter(opts)
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		value, err := iter.ValueAndErr()
		if err != nil {
			return err
		}

		if err := fn(iter.Key(), value); err != nil {
			return err
		}
	}

	return iter.Error()
}

// prefixUpperBound computes the exclusive upper bound for a prefix scan.
// Returns nil (unbounded) if prefix is all 0xFF.
func prefixUpperBound(prefix []byte) []byte {
	upper := append([]byte(nil), prefix...)

	for i := len(upper) - 1; i >= 0; i-- {
		upper[i]++
		if upper[i] != 0 {
			return upper[:i+1]
		}
	}

	return nil
}
