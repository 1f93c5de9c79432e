package bft

import (
	"sort"

	"github.com/hotsim-network/hotsim/lib"
)

// NodeState is the protocol state one validator accumulates over a run: the votes it
// has observed keyed by proposal identity, the equivocation evidence it has derived,
// its committed block identifiers in commit order, and the highest-view quorum
// certificate it has formed. The scenario driver owns one NodeState per validator and
// mutates it synchronously; nothing here is safe for concurrent use
type NodeState struct {
	ID string // the validator this state belongs to

	// conflicts indexes endorsed blocks by (voter, view, proposer) -> blockID -> proposal identity
	conflicts map[conflictKey]map[string]string
	votes     map[string]*proposalVotes // proposal identity -> received votes
	evidence  Evidences                 // equivocation evidence derived from own observations
	committed []string                  // committed block identifiers, in commit order
	highQC    *QuorumCertificate        // the highest-view QC observed, advances on strictly greater view
}

// conflictKey indexes votes by the triple that defines the equivocation condition,
// so conflict lookup on ingestion is constant time rather than a scan of every
// recorded proposal
type conflictKey struct {
	voter    string
	view     uint64
	proposer string
}

// NewNodeState() creates the empty protocol state for one validator
func NewNodeState(id string) *NodeState {
	return &NodeState{
		ID:        id,
		votes:     make(map[string]*proposalVotes),
		conflicts: make(map[conflictKey]map[string]string),
		evidence:  NewEvidences(),
	}
}

// RecordVote() ingests a vote observed by this node and returns any equivocation
// evidence newly derived from it. A second vote by the same voter for the same
// proposal is accepted and has no effect. Signatures are not validated; evidence is
// derived whenever the same voter endorsed a different block by the same proposer in
// the same view, regardless of ingestion order
func (n *NodeState) RecordVote(v *Vote) (derived []Evidence, err lib.ErrorI) {
	if v == nil || v.Proposal == nil {
		return nil, ErrEmptyVote()
	}
	pid := v.Proposal.ID()
	pv, ok := n.votes[pid]
	if !ok {
		pv = newProposalVotes(v.Proposal)
		n.votes[pid] = pv
	}
	if !pv.add(v) {
		// duplicate (voter, proposal): idempotent in effect
		return nil, nil
	}
	// flag a conflict for every distinct block this voter already endorsed from the
	// same proposer in the same view
	key := conflictKey{voter: v.VoterID, view: v.Proposal.View, proposer: v.Proposal.ProposerID}
	seen, ok := n.conflicts[key]
	if !ok {
		seen = make(map[string]string)
		n.conflicts[key] = seen
	}
	for blockID, otherPid := range seen {
		if blockID == v.Proposal.BlockID {
			continue
		}
		ev := NewEvidence(v.VoterID, otherPid, pid)
		if n.evidence.Add(ev) {
			derived = append(derived, ev)
		}
	}
	seen[v.Proposal.BlockID] = pid
	return derived, nil
}

// TryFormQC() attempts quorum certificate formation for a proposal. It returns nil
// when the vote count is below the threshold: no quorum is an expected outcome, not
// an error. On success the certificate carries the first 'quorum' voter identifiers
// in ascending order, so repeated calls over a stable vote list are deterministic.
// The node's highest QC advances only when the new certificate's view strictly
// exceeds the stored one
func (n *NodeState) TryFormQC(p *Proposal, quorum int) *QuorumCertificate {
	if p == nil {
		return nil
	}
	pv, ok := n.votes[p.ID()]
	if !ok || len(pv.votes) < quorum {
		return nil
	}
	voters := make([]string, 0, len(pv.votes))
	for _, v := range pv.votes {
		voters = append(voters, v.VoterID)
	}
	sort.Strings(voters)
	qc := &QuorumCertificate{Proposal: p, Voters: voters[:quorum]}
	if n.highQC == nil || p.View > n.highQC.Proposal.View {
		n.highQC = qc
	}
	return qc
}

// ApplyCommit() appends the certificate's block identifier to the committed list
// unless already present. No parent-chain validation is performed: the simulation
// commits directly off a formed QC
func (n *NodeState) ApplyCommit(qc *QuorumCertificate) lib.ErrorI {
	if qc == nil || qc.Proposal == nil {
		return ErrEmptyQC()
	}
	blockID := qc.Proposal.BlockID
	for _, b := range n.committed {
		if b == blockID {
			return nil
		}
	}
	n.committed = append(n.committed, blockID)
	return nil
}

// VoteCount() returns the number of distinct voters recorded for a proposal identity
func (n *NodeState) VoteCount(proposalID string) int {
	pv, ok := n.votes[proposalID]
	if !ok {
		return 0
	}
	return len(pv.votes)
}

// Evidence() returns the node's derived equivocation evidence in derivation order
func (n *NodeState) Evidence() []Evidence { return n.evidence.List() }

// HasEvidence() reports whether the node derived the exact evidence tuple
func (n *NodeState) HasEvidence(ev Evidence) bool { return n.evidence.Contains(ev) }

// Committed() returns a copy of the committed block identifiers in commit order
func (n *NodeState) Committed() []string {
	out := make([]string, len(n.committed))
	copy(out, n.committed)
	return out
}

// HighQC() returns the highest-view quorum certificate this node has observed
func (n *NodeState) HighQC() *QuorumCertificate { return n.highQC }
