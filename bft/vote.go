package bft

import (
	"github.com/hotsim-network/hotsim/lib/crypto"
)

// Vote is a signed endorsement binding a voter to a specific proposal in that
// proposal's view; the signature is an opaque deterministic token, never verified
type Vote struct {
	VoterID   string    `json:"voterID"`   // the validator casting the vote
	Proposal  *Proposal `json:"proposal"`  // the proposal being endorsed
	Signature string    `json:"signature"` // the opaque token tagging vote provenance
}

// NewVote() signs the proposal identity on behalf of the voter and wraps it in a vote
func NewVote(voterID string, p *Proposal) *Vote {
	return &Vote{
		VoterID:   voterID,
		Proposal:  p,
		Signature: crypto.SignToken(voterID, p.ID()),
	}
}

// proposalVotes holds the votes a node has received for a single proposal identity
// a voter appears at most once: exact duplicate votes are accepted and dropped so
// repeated votes cannot inflate the apparent quorum count
type proposalVotes struct {
	proposal *Proposal
	votes    []*Vote             // receipt order
	voters   map[string]struct{} // the voter ids already counted
}

func newProposalVotes(p *Proposal) *proposalVotes {
	return &proposalVotes{
		proposal: p,
		voters:   make(map[string]struct{}),
	}
}

// add() appends a vote unless the voter already endorsed this proposal
func (pv *proposalVotes) add(v *Vote) (added bool) {
	if _, ok := pv.voters[v.VoterID]; ok {
		return false
	}
	pv.votes = append(pv.votes, v)
	pv.voters[v.VoterID] = struct{}{}
	return true
}
