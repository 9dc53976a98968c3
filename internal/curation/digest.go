package curation

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// Digest is the blake3 hash of a curation result.
type Digest [32]byte

// Digest hashes the result in a fixed binary layout:
// content ID, curve, vote count, then (voter length, voter, weight) per vote
// and the four totals. All integers are big-endian.
// Equal results from any node hash identically.
func (r *Result) Digest() Digest {
	h := blake3.New()

	var buf [8]byte

	writeU64 := func(v uint64) {
		binary.BigEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}

	writeU64(uint64(r.ContentID))
	h.Write([]byte{byte(r.Curve)})
	writeU64(uint64(len(r.Votes)))

	for _, vw := range r.Votes {
		binary.BigEndian.PutUint16(buf[:2], uint16(len(vw.Vote.Voter)))
		h.Write(buf[:2])
		h.Write([]byte(vw.Vote.Voter))
		writeU64(vw.Weight)
	}

	writeU64(r.TotalVoteWeight)
	writeU64(r.AuctionWindowWeight)
	writeU64(r.VotesInAuctionWindowWeight)
	writeU64(r.VotesAfterAuctionWindowWeight)

	var d Digest
	h.Sum(d[:0])

	return d
}
