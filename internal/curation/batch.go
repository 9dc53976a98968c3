package curation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"VoteChain/internal/chain"
	"VoteChain/internal/logger"
)

// BuildAll builds the curation result of each content in parallel, at most workers at a time
// (unbounded when workers <= 0). Results keep the order of contents.
// votes must be safe for concurrent reads. The first failure cancels pending builds.
func BuildAll(ctx context.Context, contents []chain.Content, votes chain.VoteSource, env Env, full bool, workers int) ([]*Result, error) {
	results := make([]*Result, len(contents))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i := range contents {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := Build(&contents[i], votes, env, full)
			if err != nil {
				logger.Error("curation build failed", "content", contents[i].ID, "error", err)
				return fmt.Errorf("build curation of content %d:\n%w", contents[i].ID, err)
			}

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
