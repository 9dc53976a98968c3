package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"VoteChain/internal/cashout"
	"VoteChain/internal/chain"
	"VoteChain/internal/curation"
	"VoteChain/internal/logger"
	"VoteChain/internal/protocol"
	"VoteChain/internal/snapshot"
)

// fullCuration is the --full flag of the curation command.
var fullCuration bool

// importcmd verifies a compressed snapshot and writes it into the database.
func importcmd(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	compressed, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read snapshot:\n%w", err)
	}

	data, err := snapshot.Decompress(compressed)
	if err != nil {
		return fmt.Errorf("decompress snapshot:\n%w", err)
	}

	n, err := snapshot.Apply(e.db, data)
	if err != nil {
		return fmt.Errorf("apply snapshot:\n%w", err)
	}

	logger.Info("snapshot imported", "file", args[0], "records", n)

	return nil
}

// exportcmd writes a compressed snapshot of the current state.
func exportcmd(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	view := e.db.View()
	defer view.Close()

	data, err := snapshot.Create(view)
	if err != nil {
		return fmt.Errorf("create snapshot:\n%w", err)
	}

	compressed, err := snapshot.Compress(data)
	if err != nil {
		return fmt.Errorf("compress snapshot:\n%w", err)
	}

	if err := os.WriteFile(args[0], compressed, 0o644); err != nil {
		return fmt.Errorf("write snapshot:\n%w", err)
	}

	logger.Info("snapshot exported", "file", args[0], "raw", len(data), "compressed", len(compressed))

	return nil
}

// curationcmd prints the weighted votes and totals of one content.
func curationcmd(cmd *cobra.Command, args []string) error {
	id, err := parseContentID(args[0])
	if err != nil {
		return err
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	reader, closeSnap := e.state.Snapshot()
	defer closeSnap()

	params, err := e.loadParams(reader)
	if err != nil {
		return err
	}

	content, err := reader.Content(id)
	if err != nil {
		return err
	}

	res, err := curation.Build(&content, reader, params.curationEnv(), fullCuration)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printCuration(out, res)

	return nil
}

// payoutcmd prints how the reward of one content divides.
func payoutcmd(cmd *cobra.Command, args []string) error {
	id, err := parseContentID(args[0])
	if err != nil {
		return err
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	reader, closeSnap := e.state.Snapshot()
	defer closeSnap()

	params, err := e.loadParams(reader)
	if err != nil {
		return err
	}

	content, err := reader.Content(id)
	if err != nil {
		return err
	}

	rep, err := cashout.Compute(cashout.Input{
		Content: &content,
		Votes:   reader,
		Fund:    params.fund,
		Price:   params.props.Price,
		Fork:    params.props.Fork,
	})
	if err != nil {
		return err
	}

	pending, err := cashout.ContentPendingPayout(&content, params.fund, params.props.Price)
	if err != nil {
		return err
	}

	totalPending, err := cashout.TotalPendingPayout(content.ChildrenRshares2, params.fund, params.props.Price)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "content %d by %s/%s\n", content.ID, content.Author, content.Permlink)
	fmt.Fprintf(out, "reward      %s (%s)\n", protocol.Steem(rep.RewardTokens), rep.PayoutValue)
	fmt.Fprintf(out, "curation    %s\n", protocol.Steem(rep.CurationTokens))
	fmt.Fprintf(out, "author      %s\n", protocol.Steem(rep.AuthorTokens))
	fmt.Fprintf(out, "fund        %s\n", protocol.Steem(rep.FundTokens))
	fmt.Fprintf(out, "pending     %s (subtree %s)\n", pending, totalPending)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, b := range rep.Beneficiaries {
		fmt.Fprintf(tw, "beneficiary\t%s\t%s\n", b.Account, protocol.Steem(b.Tokens))
	}
	for _, c := range rep.Curators {
		fmt.Fprintf(tw, "curator\t%s\t%s\t%d\n", c.Voter, protocol.Steem(c.Tokens), c.Weight)
	}

	return tw.Flush()
}

// replaycmd builds every content's curation in parallel and prints the digests.
func replaycmd(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	reader, closeSnap := e.state.Snapshot()
	defer closeSnap()

	params, err := e.loadParams(reader)
	if err != nil {
		return err
	}

	contents, err := reader.Contents()
	if err != nil {
		return fmt.Errorf("list contents:\n%w", err)
	}

	start := time.Now()

	results, err := curation.BuildAll(cmd.Context(), contents, reader, params.curationEnv(), false, e.cfg.Workers)
	if err != nil {
		return err
	}

	logger.Info("replay done", "contents", len(results), "workers", e.cfg.Workers, logger.Timed(start))

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, res := range results {
		d := res.Digest()
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\n", res.ContentID, res.Curve, res.TotalVoteWeight, len(res.Votes), hex.EncodeToString(d[:]))
	}

	return tw.Flush()
}

// printCuration writes the totals then one line per weighted vote.
func printCuration(out io.Writer, res *curation.Result) {
	d := res.Digest()

	fmt.Fprintf(out, "content %d, curve %s\n", res.ContentID, res.Curve)
	fmt.Fprintf(out, "total          %d\n", res.TotalVoteWeight)
	fmt.Fprintf(out, "auction window %d\n", res.AuctionWindowWeight)
	fmt.Fprintf(out, "in window      %d\n", res.VotesInAuctionWindowWeight)
	fmt.Fprintf(out, "after window   %d\n", res.VotesAfterAuctionWindowWeight)
	fmt.Fprintf(out, "digest         %s\n", hex.EncodeToString(d[:]))

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, vw := range res.Votes {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", vw.Vote.Voter, vw.Weight, vw.Vote.OrigRshares, vw.Vote.AuctionTime)
	}
	tw.Flush()
}

// parseContentID parses a decimal content ID.
func parseContentID(s string) (chain.ContentID, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid content id %q:\n%w", s, err)
	}

	return chain.ContentID(id), nil
}
