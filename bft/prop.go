package bft

import "fmt"

// Proposal is an immutable record of a candidate block proposed by a leader in a view
// identity is (BlockID, View): two proposals sharing both are the same proposal, while
// one proposer issuing distinct blocks in the same view is the equivocation condition
type Proposal struct {
	BlockID    string `json:"blockID"`    // the identifier of the candidate block
	ParentID   string `json:"parentID"`   // the identifier of the parent block this proposal extends
	View       uint64 `json:"view"`       // the view during which the proposal was issued
	ProposerID string `json:"proposerID"` // the validator that authored the proposal
}

// NewProposal() constructs an immutable proposal value
func NewProposal(blockID, parentID string, view uint64, proposerID string) *Proposal {
	return &Proposal{
		BlockID:    blockID,
		ParentID:   parentID,
		View:       view,
		ProposerID: proposerID,
	}
}

// ID() returns the proposal identity string in '<block>@v<view>' form
func (p *Proposal) ID() string { return fmt.Sprintf("%s@v%d", p.BlockID, p.View) }

// Equals() compares two proposals by identity
func (p *Proposal) Equals(other *Proposal) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.BlockID == other.BlockID && p.View == other.View
}
