package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/klauspost/compress/zstd"
	"github.com/zeebo/blake3"

	"VoteChain/internal/storage"
	"VoteChain/internal/types"
)

const (
	// Version is the current snapshot format version.
	Version = 1
)

// statePrefixes are the chain-state key prefixes carried by a snapshot.
var statePrefixes = [][]byte{
	[]byte("c:"),
	[]byte("f:"),
	[]byte("g:"),
	[]byte("v:"),
}

// entry holds a copied key-value pair.
type entry struct {
	key   []byte
	value []byte
}

// Create exports every chain-state record readable through r.
// Pass a storage.View to export a consistent point in time.
func Create(r storage.Reader) ([]byte, error) {
	var entries []entry

	// Prefixes are visited in sorted order, so entries come out sorted by key
	for _, prefix := range statePrefixes {
		err := r.IteratePrefix(prefix, func(key, value []byte) error {
			entries = append(entries, entry{
				key:   append([]byte(nil), key...),
				value: append([]byte(nil), value...),
			})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("collect %s entries:\n%w", prefix, err)
		}
	}

	return build(entries), nil
}

// build encodes entries and their checksum as a FlatBuffers Snapshot.
func build(entries []entry) []byte {
	checksum := computeChecksum(Version, entries)

	builder := flatbuffers.NewBuilder(1024)

	offsets := make([]flatbuffers.UOffsetT, len(entries))
	for i, e := range entries {
		keyOffset := builder.CreateByteVector(e.key)
		valueOffset := builder.CreateByteVector(e.value)

		types.SnapshotEntryStart(builder)
		types.SnapshotEntryAddKey(builder, keyOffset)
		types.SnapshotEntryAddValue(builder, valueOffset)
		offsets[i] = types.SnapshotEntryEnd(builder)
	}

	types.SnapshotStartEntriesVector(builder, len(offsets))
	for i := len(offsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(offsets[i])
	}
	entriesVector := builder.EndVector(len(offsets))

	checksumOffset := builder.CreateByteVector(checksum[:])

	types.SnapshotStart(builder)
	types.SnapshotAddVersion(builder, Version)
	types.SnapshotAddEntries(builder, entriesVector)
	types.SnapshotAddChecksum(builder, checksumOffset)
	builder.Finish(types.SnapshotEnd(builder))

	return builder.FinishedBytes()
}

// computeChecksum hashes the version then each (key length, key, value length, value).
func computeChecksum(version uint32, entries []entry) [32]byte {
	hasher := blake3.New()

	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], version)
	hasher.Write(buf[:])

	for _, e := range entries {
		binary.BigEndian.PutUint32(buf[:], uint32(len(e.key)))
		hasher.Write(buf[:])
		hasher.Write(e.key)

		binary.BigEndian.PutUint32(buf[:], uint32(len(e.value)))
		hasher.Write(buf[:])
		hasher.Write(e.value)
	}

	var checksum [32]byte
	hasher.Sum(checksum[:0])

	return checksum
}

// Compress compresses snapshot data using zstd.
func Compress(data []byte) ([]byte, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create encoder:\n%w", err)
	}
	defer encoder.Close()

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses zstd-compressed snapshot data.
func Decompress(data []byte) ([]byte, error) {
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create decoder:\n%w", err)
	}
	defer decoder.Close()

	return decoder.DecodeAll(data, nil)
}

// Apply verifies a snapshot and writes its records to db atomically.
// Existing records with other keys are kept. Returns the number of records written.
func Apply(db *storage.Storage, data []byte) (int, error) {
	if len(data) < 8 {
		return 0, fmt.Errorf("snapshot too short: %d bytes", len(data))
	}

	snap := types.GetRootAsSnapshot(data, 0)

	if v := snap.Version(); v != Version {
		return 0, fmt.Errorf("unsupported snapshot version %d", v)
	}

	entries, err := readEntries(snap)
	if err != nil {
		return 0, err
	}

	computed := computeChecksum(snap.Version(), entries)
	if !bytes.Equal(computed[:], snap.ChecksumBytes()) {
		return 0, fmt.Errorf("checksum mismatch")
	}

	ops := make([]storage.Op, len(entries))
	for i, e := range entries {
		ops[i] = storage.Op{Key: e.key, Value: e.value}
	}

	if err := db.Write(ops); err != nil {
		return 0, fmt.Errorf("write entries:\n%w", err)
	}

	return len(entries), nil
}

// readEntries extracts the entries of a snapshot.
func readEntries(snap *types.Snapshot) ([]entry, error) {
	entries := make([]entry, snap.EntriesLength())

	var e types.SnapshotEntry
	for i := range entries {
		if !snap.Entries(&e, i) {
			return nil, fmt.Errorf("read entry %d", i)
		}

		entries[i] = entry{key: e.KeyBytes(), value: e.ValueBytes()}
	}

	return entries, nil
}
