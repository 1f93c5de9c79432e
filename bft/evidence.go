package bft

// Evidence is a derived fact that a voter signed two distinct proposals authored by
// the same proposer in the same view; the two proposal identities are held in
// canonical order so deduplication is independent of discovery order
type Evidence struct {
	VoterID   string `json:"voterID"`   // the accused equivocating voter
	ProposalA string `json:"proposalA"` // the lexicographically lesser conflicting proposal identity
	ProposalB string `json:"proposalB"` // the lexicographically greater conflicting proposal identity
}

// NewEvidence() constructs an evidence value with the conflicting identities canonicalized
func NewEvidence(voterID, proposalID1, proposalID2 string) Evidence {
	if proposalID2 < proposalID1 {
		proposalID1, proposalID2 = proposalID2, proposalID1
	}
	return Evidence{
		VoterID:   voterID,
		ProposalA: proposalID1,
		ProposalB: proposalID2,
	}
}

// key() is the deduplication identity of the evidence tuple
func (e Evidence) key() string { return e.VoterID + "|" + e.ProposalA + "|" + e.ProposalB }

// Evidences is an append-only list of equivocation evidence with a built-in DeDuplicator
// evidence once derived is never retracted or reordered
type Evidences struct {
	Evidence     []Evidence      `json:"evidence"` // the evidence entries, in derivation order
	DeDuplicator map[string]bool `json:"-"`        // prevents exact tuple repeats
}

// NewEvidences() creates an empty evidence list with its de-duplicator initialized
func NewEvidences() Evidences {
	return Evidences{
		Evidence:     make([]Evidence, 0),
		DeDuplicator: make(map[string]bool),
	}
}

// Add() appends the evidence unless its exact tuple was already recorded
func (e *Evidences) Add(ev Evidence) (added bool) {
	if e.DeDuplicator == nil {
		e.DeDuplicator = make(map[string]bool)
	}
	key := ev.key()
	if e.DeDuplicator[key] {
		return false
	}
	e.Evidence = append(e.Evidence, ev)
	e.DeDuplicator[key] = true
	return true
}

// Contains() reports whether the exact evidence tuple was recorded
func (e *Evidences) Contains(ev Evidence) bool {
	return e.DeDuplicator[ev.key()]
}

// List() returns a copy of the evidence entries in derivation order
func (e *Evidences) List() []Evidence {
	out := make([]Evidence, len(e.Evidence))
	copy(out, e.Evidence)
	return out
}
