package bft

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordVoteEvidence(t *testing.T) {
	// pre-define conflicting proposals by one proposer in one view
	propX := NewProposal("X", "GENESIS", 1, "A")
	propY := NewProposal("Y", "GENESIS", 1, "A")
	// define test cases
	tests := []struct {
		name     string
		detail   string
		votes    []*Vote
		expected []Evidence
	}{
		{
			name:   "equivocation detected",
			detail: "one voter endorsing two blocks by the same proposer in the same view is flagged",
			votes: []*Vote{
				NewVote("B", propX),
				NewVote("B", propY),
			},
			expected: []Evidence{NewEvidence("B", "X@v1", "Y@v1")},
		},
		{
			name:   "detection is ingestion order independent",
			detail: "the same evidence tuple is derived when the conflicting votes arrive reversed",
			votes: []*Vote{
				NewVote("B", propY),
				NewVote("B", propX),
			},
			expected: []Evidence{NewEvidence("B", "X@v1", "Y@v1")},
		},
		{
			name:   "no false evidence across views",
			detail: "a voter may endorse different blocks in different views",
			votes: []*Vote{
				NewVote("B", propX),
				NewVote("B", NewProposal("Y", "GENESIS", 2, "A")),
			},
		},
		{
			name:   "no false evidence across proposers",
			detail: "the same block identifiers by different proposers in one view do not conflict",
			votes: []*Vote{
				NewVote("B", propX),
				NewVote("B", NewProposal("Y", "GENESIS", 1, "C")),
			},
		},
		{
			name:   "no false evidence across voters",
			detail: "two different voters endorsing the two conflicting blocks is not equivocation",
			votes: []*Vote{
				NewVote("B", propX),
				NewVote("C", propY),
			},
		},
		{
			name:   "three way equivocation",
			detail: "a third conflicting block yields a tuple against each previously endorsed block",
			votes: []*Vote{
				NewVote("B", propX),
				NewVote("B", propY),
				NewVote("B", NewProposal("W", "GENESIS", 1, "A")),
			},
			expected: []Evidence{
				NewEvidence("B", "X@v1", "Y@v1"),
				NewEvidence("B", "W@v1", "X@v1"),
				NewEvidence("B", "W@v1", "Y@v1"),
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// initialize a node state to test with
			node := NewNodeState("A")
			// ingest every vote
			for _, v := range test.votes {
				_, err := node.RecordVote(v)
				require.NoError(t, err)
			}
			// ensure exactly the expected evidence was derived
			require.Len(t, node.Evidence(), len(test.expected))
			for _, ev := range test.expected {
				require.True(t, node.HasEvidence(ev), ev)
			}
		})
	}
}

func TestRecordVoteDuplicates(t *testing.T) {
	// initialize a node state to test with
	node := NewNodeState("A")
	prop := NewProposal("X", "GENESIS", 1, "A")
	// ingest the same vote three times
	for i := 0; i < 3; i++ {
		_, err := node.RecordVote(NewVote("B", prop))
		require.NoError(t, err)
	}
	// a voter counts at most once toward quorum
	require.Equal(t, 1, node.VoteCount("X@v1"))
	// duplicates alone can never certify
	require.Nil(t, node.TryFormQC(prop, 2))
	// a nil vote is rejected
	_, err := node.RecordVote(nil)
	require.ErrorContains(t, err, "empty vote")
}

func TestTryFormQC(t *testing.T) {
	// pre-define a proposal and a quorum of five
	prop := NewProposal("X", "GENESIS", 1, "A")
	quorum := 5
	// define test cases
	tests := []struct {
		name     string
		detail   string
		voters   []string
		expected []string // nil means no certificate
	}{
		{
			name:   "below quorum",
			detail: "four of five required votes is an expected no-quorum outcome, not an error",
			voters: []string{"A", "B", "C", "D"},
		},
		{
			name:     "exact quorum",
			detail:   "five votes certify with the full sorted voter set",
			voters:   []string{"E", "C", "A", "D", "B"},
			expected: []string{"A", "B", "C", "D", "E"},
		},
		{
			name:     "above quorum truncates",
			detail:   "the certificate carries the first Q voter ids in ascending order",
			voters:   []string{"G", "F", "E", "D", "C", "B", "A"},
			expected: []string{"A", "B", "C", "D", "E"},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// initialize a node state to test with
			node := NewNodeState("A")
			// ingest one vote per voter
			for _, voter := range test.voters {
				_, err := node.RecordVote(NewVote(voter, prop))
				require.NoError(t, err)
			}
			// execute the function call
			qc := node.TryFormQC(prop, quorum)
			// validate the outcome
			if test.expected == nil {
				require.Nil(t, qc)
				require.Nil(t, node.HighQC())
				return
			}
			require.NotNil(t, qc)
			require.Equal(t, test.expected, qc.Voters)
			require.NoError(t, qc.CheckBasic(quorum))
			// repeated formation over a stable vote list is deterministic
			require.True(t, qc.Equals(node.TryFormQC(prop, quorum)))
		})
	}
}

func TestHighQCMonotonicity(t *testing.T) {
	// initialize a node state to test with
	node := NewNodeState("A")
	quorum := 1
	// certify a proposal at view 2
	propV2 := NewProposal("X", "GENESIS", 2, "A")
	_, err := node.RecordVote(NewVote("B", propV2))
	require.NoError(t, err)
	require.NotNil(t, node.TryFormQC(propV2, quorum))
	require.Equal(t, uint64(2), node.HighQC().Proposal.View)
	// a certificate at a lower view never regresses the stored one
	propV1 := NewProposal("Y", "GENESIS", 1, "A")
	_, err = node.RecordVote(NewVote("B", propV1))
	require.NoError(t, err)
	require.NotNil(t, node.TryFormQC(propV1, quorum))
	require.Equal(t, uint64(2), node.HighQC().Proposal.View)
	// an equal view does not advance it either: only strictly greater views do
	propV2b := NewProposal("W", "GENESIS", 2, "A")
	_, err = node.RecordVote(NewVote("B", propV2b))
	require.NoError(t, err)
	require.NotNil(t, node.TryFormQC(propV2b, quorum))
	require.Equal(t, "X", node.HighQC().Proposal.BlockID)
	// a strictly greater view advances it
	propV3 := NewProposal("V", "GENESIS", 3, "A")
	_, err = node.RecordVote(NewVote("B", propV3))
	require.NoError(t, err)
	require.NotNil(t, node.TryFormQC(propV3, quorum))
	require.Equal(t, uint64(3), node.HighQC().Proposal.View)
}

func TestApplyCommit(t *testing.T) {
	// initialize a node state to test with
	node := NewNodeState("A")
	prop := NewProposal("Z", "GENESIS", 2, "B")
	qc := &QuorumCertificate{Proposal: prop, Voters: []string{"A", "B", "C"}}
	// the first application commits the block
	require.NoError(t, node.ApplyCommit(qc))
	require.Equal(t, []string{"Z"}, node.Committed())
	// the second application is idempotent
	require.NoError(t, node.ApplyCommit(qc))
	require.Equal(t, []string{"Z"}, node.Committed())
	// a different block appends in commit order
	other := &QuorumCertificate{Proposal: NewProposal("W", "Z", 3, "C"), Voters: []string{"A", "B", "C"}}
	require.NoError(t, node.ApplyCommit(other))
	require.Equal(t, []string{"Z", "W"}, node.Committed())
	// an empty certificate is rejected
	require.ErrorContains(t, node.ApplyCommit(nil), "empty quorum certificate")
	// the returned list is a copy
	committed := node.Committed()
	committed[0] = "corrupted"
	require.Equal(t, []string{"Z", "W"}, node.Committed())
}

func TestQuorumSafetyUnderSplitVote(t *testing.T) {
	// N=7, f=2, Q=5: the leader splits the set into groups of three and four
	quorum := 5
	propX := NewProposal("X", "GENESIS", 1, "A")
	propY := NewProposal("Y", "GENESIS", 1, "A")
	validators := []string{"A", "B", "C", "D", "E", "F", "G"}
	// initialize a node state observing all gossip
	node := NewNodeState("A")
	for i, voter := range validators {
		prop := propX
		if i >= 3 {
			prop = propY
		}
		_, err := node.RecordVote(NewVote(voter, prop))
		require.NoError(t, err)
	}
	// neither side reaches five votes
	require.Equal(t, 3, node.VoteCount("X@v1"))
	require.Equal(t, 4, node.VoteCount("Y@v1"))
	require.Nil(t, node.TryFormQC(propX, quorum))
	require.Nil(t, node.TryFormQC(propY, quorum))
	// each voter voted once, so no node-local equivocation evidence exists
	require.Empty(t, node.Evidence())
}
