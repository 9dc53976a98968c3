package state

import (
	"encoding/binary"
	"errors"
	"fmt"
	"iter"

	"VoteChain/internal/chain"
	"VoteChain/internal/protocol"
	"VoteChain/internal/storage"
)

// Key prefixes of the chain state. Vote keys sort by content then voter,
// which is the canonical vote order.
var (
	prefixContent = []byte("c:")
	prefixVote    = []byte("v:")
	prefixFund    = []byte("f:")
	keyProps      = []byte("g:props")
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// errStop ends an iteration early when the consumer stops pulling.
var errStop = errors.New("stop iteration")

// Props are the chain-wide properties the engine reads.
type Props struct {
	Price    protocol.Price     // Price is the median SBD/STEEM feed
	Fork     protocol.ForkState // Fork is the curation fork state
	HeadTime int64              // HeadTime is the unix time of the head block
}

// contentKey returns c:<id BE>.
func contentKey(id chain.ContentID) []byte {
	key := make([]byte, 0, len(prefixContent)+8)
	key = append(key, prefixContent...)
	return binary.BigEndian.AppendUint64(key, uint64(id))
}

// votePrefix returns v:<id BE>, the prefix of all votes on a content.
func votePrefix(id chain.ContentID) []byte {
	key := make([]byte, 0, len(prefixVote)+8)
	key = append(key, prefixVote...)
	return binary.BigEndian.AppendUint64(key, uint64(id))
}

// voteKey returns v:<id BE><voter>.
func voteKey(id chain.ContentID, voter string) []byte {
	return append(votePrefix(id), voter...)
}

// fundKey returns f:<name>.
func fundKey(name string) []byte {
	return append(append([]byte(nil), prefixFund...), name...)
}

// Reader reads typed chain records from a store or a view of it.
// It implements chain.VoteSource.
type Reader struct {
	db storage.Reader
}

// NewReader wraps a store or view.
func NewReader(db storage.Reader) *Reader {
	return &Reader{db: db}
}

// Content returns the content with the given ID, or ErrNotFound.
func (r *Reader) Content(id chain.ContentID) (chain.Content, error) {
	data, err := r.db.Get(contentKey(id))
	if err != nil {
		return chain.Content{}, fmt.Errorf("get content %d:\n%w", id, err)
	}

	if data == nil {
		return chain.Content{}, fmt.Errorf("content %d: %w", id, ErrNotFound)
	}

	return decodeContent(data)
}

// Contents returns every content in ID order.
func (r *Reader) Contents() ([]chain.Content, error) {
	var contents []chain.Content

	err := r.db.IteratePrefix(prefixContent, func(key, value []byte) error {
		c, err := decodeContent(value)
		if err != nil {
			return fmt.Errorf("decode %x:\n%w", key, err)
		}

		contents = append(contents, c)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return contents, nil
}

// Fund returns the named reward fund, or ErrNotFound.
func (r *Reader) Fund(name string) (chain.RewardFund, error) {
	data, err := r.db.Get(fundKey(name))
	if err != nil {
		return chain.RewardFund{}, fmt.Errorf("get fund %s:\n%w", name, err)
	}

	if data == nil {
		return chain.RewardFund{}, fmt.Errorf("fund %s: %w", name, ErrNotFound)
	}

	return decodeFund(data)
}

// Props returns the global properties, or ErrNotFound before they are first written.
func (r *Reader) Props() (Props, error) {
	data, err := r.db.Get(keyProps)
	if err != nil {
		return Props{}, fmt.Errorf("get props:\n%w", err)
	}

	if data == nil {
		return Props{}, fmt.Errorf("global props: %w", ErrNotFound)
	}

	return decodeProps(data)
}

// Votes implements chain.VoteSource. Votes come in key order, which is canonical.
func (r *Reader) Votes(id chain.ContentID) iter.Seq2[chain.Vote, error] {
	return func(yield func(chain.Vote, error) bool) {
		err := r.db.IteratePrefix(votePrefix(id), func(key, value []byte) error {
			v, err := decodeVote(value)
			if err != nil {
				return fmt.Errorf("decode %x:\n%w", key, err)
			}

			if !yield(v, nil) {
				return errStop
			}

			return nil
		})

		if err != nil && !errors.Is(err, errStop) {
			yield(chain.Vote{}, err)
		}
	}
}

// State is the writable chain state backed by Pebble.
type State struct {
	*Reader
	db *storage.Storage
}

// New creates a State over the given store.
func New(db *storage.Storage) *State {
	return &State{
		Reader: NewReader(db),
		db:     db,
	}
}

// PutContent stores or replaces a content record.
func (s *State) PutContent(c *chain.Content) error {
	return s.db.Set(contentKey(c.ID), encodeContent(c))
}

// PutVotes stores votes atomically.
func (s *State) PutVotes(votes []chain.Vote) error {
	ops := make([]storage.Op, len(votes))
	for i := range votes {
		ops[i] = storage.Op{
			Key:   voteKey(votes[i].Comment, votes[i].Voter),
			Value: encodeVote(&votes[i]),
		}
	}

	return s.db.Write(ops)
}

// DeleteVote removes a vote, as done when a removal-marked vote is purged.
func (s *State) DeleteVote(id chain.ContentID, voter string) error {
	return s.db.Write([]storage.Op{{Key: voteKey(id, voter), Delete: true}})
}

// PutFund stores or replaces a reward fund.
func (s *State) PutFund(f *chain.RewardFund) error {
	return s.db.Set(fundKey(f.Name), encodeFund(f))
}

// PutProps stores the global properties.
func (s *State) PutProps(p *Props) error {
	return s.db.Set(keyProps, encodeProps(p))
}

// Snapshot returns a Reader over a point-in-time view of the state.
// Later writes are not visible through it. Call the returned close func when done.
func (s *State) Snapshot() (*Reader, func() error) {
	view := s.db.View()
	return NewReader(view), view.Close
}
