//go:build ignore

// Compares the curation results of two chain state databases, content by content.
// Usage: go run scripts/compare_state.go <db1_path> <db2_path>
package main

import (
	"fmt"
	"os"
	"slices"

	"VoteChain/internal/chain"
	"VoteChain/internal/curation"
	"VoteChain/internal/protocol"
	"VoteChain/internal/state"
	"VoteChain/internal/storage"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <db1_path> <db2_path>\n", os.Args[0])
		os.Exit(1)
	}

	db1Path := os.Args[1]
	db2Path := os.Args[2]

	digests1, err := collectDigests(db1Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "db1: %v\n", err)
		os.Exit(1)
	}

	digests2, err := collectDigests(db2Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "db2: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("DB1 (%s): %d contents\n", db1Path, len(digests1))
	fmt.Printf("DB2 (%s): %d contents\n", db2Path, len(digests2))

	missing1, missing2, different := compare(digests1, digests2)

	if len(missing1) == 0 && len(missing2) == 0 && len(different) == 0 {
		fmt.Println("\nCuration results are identical")
		os.Exit(0)
	}

	fmt.Println("\nCuration results differ:")
	report("Contents in DB1 but not in DB2", missing1)
	report("Contents in DB2 but not in DB1", missing2)
	report("Contents with different results", different)

	os.Exit(1)
}

// collectDigests builds the curation result of every content in the database.
func collectDigests(path string) (map[chain.ContentID]curation.Digest, error) {
	db, err := storage.Open(path, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	reader, closeSnap := state.New(db).Snapshot()
	defer closeSnap()

	props, err := reader.Props()
	if err != nil {
		return nil, fmt.Errorf("props: %w", err)
	}

	fund, err := reader.Fund(protocol.PostRewardFundName)
	if err != nil {
		return nil, fmt.Errorf("fund: %w", err)
	}

	contents, err := reader.Contents()
	if err != nil {
		return nil, fmt.Errorf("contents: %w", err)
	}

	env := curation.Env{Fork: props.Fork, FundCurve: fund.CurationCurve, ContentConstant: fund.ContentConstant}
	digests := make(map[chain.ContentID]curation.Digest, len(contents))

	for i := range contents {
		res, err := curation.Build(&contents[i], reader, env, true)
		if err != nil {
			return nil, fmt.Errorf("content %d: %w", contents[i].ID, err)
		}

		digests[contents[i].ID] = res.Digest()
	}

	return digests, nil
}

func compare(d1, d2 map[chain.ContentID]curation.Digest) (missing1, missing2, different []chain.ContentID) {
	for id, a := range d1 {
		b, ok := d2[id]
		if !ok {
			missing1 = append(missing1, id)
		} else if a != b {
			different = append(different, id)
		}
	}

	for id := range d2 {
		if _, ok := d1[id]; !ok {
			missing2 = append(missing2, id)
		}
	}

	slices.Sort(missing1)
	slices.Sort(missing2)
	slices.Sort(different)

	return
}

func report(title string, ids []chain.ContentID) {
	if len(ids) == 0 {
		return
	}

	fmt.Printf("  - %s: %d\n", title, len(ids))
	for _, id := range ids {
		fmt.Printf("      %d\n", id)
	}
}
