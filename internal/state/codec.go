package state

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"VoteChain/internal/chain"
	"VoteChain/internal/protocol"
	"VoteChain/internal/types"
	"VoteChain/internal/widemath"
)

// minRecordSize is the smallest valid FlatBuffers table (root offset + vtable offset).
const minRecordSize = 8

// checkRecord rejects buffers too short to hold a root table.
func checkRecord(kind string, data []byte) error {
	if len(data) < minRecordSize {
		return fmt.Errorf("%s record too short: %d bytes", kind, len(data))
	}

	return nil
}

// encodeContent serializes a content record.
// Child tables and vectors must be built before ContentStart.
func encodeContent(c *chain.Content) []byte {
	builder := flatbuffers.NewBuilder(256)

	benOffsets := make([]flatbuffers.UOffsetT, len(c.Beneficiaries))
	for i, b := range c.Beneficiaries {
		account := builder.CreateString(b.Account)

		types.BeneficiaryStart(builder)
		types.BeneficiaryAddAccount(builder, account)
		types.BeneficiaryAddWeight(builder, b.Weight)
		benOffsets[i] = types.BeneficiaryEnd(builder)
	}

	types.ContentStartBeneficiariesVector(builder, len(benOffsets))
	for i := len(benOffsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(benOffsets[i])
	}
	beneficiaries := builder.EndVector(len(benOffsets))

	author := builder.CreateString(c.Author)
	permlink := builder.CreateString(c.Permlink)
	rs2 := c.ChildrenRshares2.Bytes()
	children := builder.CreateByteVector(rs2[:])

	types.ContentStart(builder)
	types.ContentAddId(builder, uint64(c.ID))
	types.ContentAddAuthor(builder, author)
	types.ContentAddPermlink(builder, permlink)
	types.ContentAddNetRshares(builder, c.NetRshares)
	types.ContentAddChildrenRshares2(builder, children)
	types.ContentAddAuctionWindowSize(builder, c.AuctionWindowSize)
	types.ContentAddCurationCurve(builder, byte(c.CurationCurve))
	types.ContentAddTotalVotes(builder, c.TotalVotes)
	types.ContentAddLastPayout(builder, c.LastPayout)
	types.ContentAddCashoutTime(builder, c.CashoutTime)
	types.ContentAddAllowCurationRewards(builder, c.AllowCurationRewards)
	types.ContentAddCurationRewardsPercent(builder, c.CurationRewardsPercent)
	types.ContentAddRewardWeight(builder, c.RewardWeight)
	types.ContentAddMaxAcceptedPayout(builder, c.MaxAcceptedPayout.Amount)
	types.ContentAddAuctionDestination(builder, byte(c.AuctionDestination))
	types.ContentAddBeneficiaries(builder, beneficiaries)
	builder.Finish(types.ContentEnd(builder))

	return builder.FinishedBytes()
}

// decodeContent copies a content record out of its FlatBuffers form.
func decodeContent(data []byte) (chain.Content, error) {
	if err := checkRecord("content", data); err != nil {
		return chain.Content{}, err
	}

	fb := types.GetRootAsContent(data, 0)

	c := chain.Content{
		ID:                     chain.ContentID(fb.Id()),
		Author:                 string(fb.Author()),
		Permlink:               string(fb.Permlink()),
		NetRshares:             fb.NetRshares(),
		ChildrenRshares2:       widemath.FromBytes(fb.ChildrenRshares2Bytes()),
		AuctionWindowSize:      fb.AuctionWindowSize(),
		CurationCurve:          protocol.CurveKind(fb.CurationCurve()),
		TotalVotes:             fb.TotalVotes(),
		LastPayout:             fb.LastPayout(),
		CashoutTime:            fb.CashoutTime(),
		AllowCurationRewards:   fb.AllowCurationRewards(),
		CurationRewardsPercent: fb.CurationRewardsPercent(),
		RewardWeight:           fb.RewardWeight(),
		MaxAcceptedPayout:      protocol.SBD(fb.MaxAcceptedPayout()),
		AuctionDestination:     protocol.AuctionDestination(fb.AuctionDestination()),
	}

	var b types.Beneficiary
	for i := 0; i < fb.BeneficiariesLength(); i++ {
		if !fb.Beneficiaries(&b, i) {
			return chain.Content{}, fmt.Errorf("read beneficiary %d", i)
		}

		c.Beneficiaries = append(c.Beneficiaries, chain.Beneficiary{
			Account: string(b.Account()),
			Weight:  b.Weight(),
		})
	}

	return c, nil
}

// encodeVote serializes a vote record.
func encodeVote(v *chain.Vote) []byte {
	builder := flatbuffers.NewBuilder(128)

	voter := builder.CreateString(v.Voter)

	types.VoteStart(builder)
	types.VoteAddComment(builder, uint64(v.Comment))
	types.VoteAddVoter(builder, voter)
	types.VoteAddOrigRshares(builder, v.OrigRshares)
	types.VoteAddRshares(builder, v.Rshares)
	types.VoteAddVotePercent(builder, v.VotePercent)
	types.VoteAddAuctionTime(builder, v.AuctionTime)
	types.VoteAddNumChanges(builder, v.NumChanges)
	types.VoteAddLastUpdate(builder, v.LastUpdate)
	builder.Finish(types.VoteEnd(builder))

	return builder.FinishedBytes()
}

// decodeVote copies a vote record out of its FlatBuffers form.
func decodeVote(data []byte) (chain.Vote, error) {
	if err := checkRecord("vote", data); err != nil {
		return chain.Vote{}, err
	}

	fb := types.GetRootAsVote(data, 0)

	return chain.Vote{
		Comment:     chain.ContentID(fb.Comment()),
		Voter:       string(fb.Voter()),
		OrigRshares: fb.OrigRshares(),
		Rshares:     fb.Rshares(),
		VotePercent: fb.VotePercent(),
		AuctionTime: fb.AuctionTime(),
		NumChanges:  fb.NumChanges(),
		LastUpdate:  fb.LastUpdate(),
	}, nil
}

// encodeFund serializes a reward fund record.
func encodeFund(f *chain.RewardFund) []byte {
	builder := flatbuffers.NewBuilder(128)

	name := builder.CreateString(f.Name)
	cc := f.ContentConstant.Bytes()
	contentConstant := builder.CreateByteVector(cc[:])
	trs2 := f.TotalRewardShares2.Bytes()
	totalRewardShares2 := builder.CreateByteVector(trs2[:])

	types.RewardFundStart(builder)
	types.RewardFundAddName(builder, name)
	types.RewardFundAddContentConstant(builder, contentConstant)
	types.RewardFundAddTotalRewardShares2(builder, totalRewardShares2)
	types.RewardFundAddRewardBalance(builder, f.RewardBalance.Amount)
	types.RewardFundAddAuthorCurve(builder, byte(f.AuthorCurve))
	types.RewardFundAddCurationCurve(builder, byte(f.CurationCurve))
	builder.Finish(types.RewardFundEnd(builder))

	return builder.FinishedBytes()
}

// decodeFund copies a reward fund record, resolving its kind from the name.
func decodeFund(data []byte) (chain.RewardFund, error) {
	if err := checkRecord("reward fund", data); err != nil {
		return chain.RewardFund{}, err
	}

	fb := types.GetRootAsRewardFund(data, 0)

	f := chain.NewRewardFund(
		string(fb.Name()),
		widemath.FromBytes(fb.ContentConstantBytes()),
		widemath.FromBytes(fb.TotalRewardShares2Bytes()),
		protocol.Steem(fb.RewardBalance()),
	)
	f.AuthorCurve = protocol.CurveKind(fb.AuthorCurve())
	f.CurationCurve = protocol.CurveKind(fb.CurationCurve())

	return f, nil
}

// encodeProps serializes the global properties.
func encodeProps(p *Props) []byte {
	builder := flatbuffers.NewBuilder(64)

	types.GlobalPropsStart(builder)
	types.GlobalPropsAddPriceBase(builder, p.Price.Base.Amount)
	types.GlobalPropsAddPriceQuote(builder, p.Price.Quote.Amount)
	types.GlobalPropsAddCurationForkActive(builder, p.Fork.CurationForkActive)
	types.GlobalPropsAddWitnessCurationCurve(builder, byte(p.Fork.WitnessCurationCurve))
	types.GlobalPropsAddHeadTime(builder, p.HeadTime)
	builder.Finish(types.GlobalPropsEnd(builder))

	return builder.FinishedBytes()
}

// decodeProps copies the global properties out of their FlatBuffers form.
func decodeProps(data []byte) (Props, error) {
	if err := checkRecord("global props", data); err != nil {
		return Props{}, err
	}

	fb := types.GetRootAsGlobalProps(data, 0)

	return Props{
		Price: protocol.Price{
			Base:  protocol.SBD(fb.PriceBase()),
			Quote: protocol.Steem(fb.PriceQuote()),
		},
		Fork: protocol.ForkState{
			CurationForkActive:   fb.CurationForkActive(),
			WitnessCurationCurve: protocol.CurveKind(fb.WitnessCurationCurve()),
		},
		HeadTime: fb.HeadTime(),
	}, nil
}
