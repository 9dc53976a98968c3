package chain

import (
	"iter"
	"slices"
)

// SliceVotes is an in-memory VoteSource. Votes are sorted canonically on construction.
type SliceVotes struct {
	byContent map[ContentID][]Vote
}

// NewSliceVotes groups and sorts the given votes.
func NewSliceVotes(votes []Vote) *SliceVotes {
	s := &SliceVotes{byContent: make(map[ContentID][]Vote)}

	for _, v := range votes {
		s.byContent[v.Comment] = append(s.byContent[v.Comment], v)
	}

	for _, list := range s.byContent {
		slices.SortFunc(list, func(a, b Vote) int {
			switch {
			case a.Before(&b):
				return -1
			case b.Before(&a):
				return 1
			default:
				return 0
			}
		})
	}

	return s
}

// Votes implements VoteSource.
func (s *SliceVotes) Votes(id ContentID) iter.Seq2[Vote, error] {
	list := s.byContent[id]

	return func(yield func(Vote, error) bool) {
		for _, v := range list {
			if !yield(v, nil) {
				return
			}
		}
	}
}
