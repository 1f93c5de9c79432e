package bft

import "github.com/hotsim-network/hotsim/lib"

// QuorumCertificate is a witness that a proposal received at least Q = 2f+1 votes;
// the voter set is sorted ascending and truncated to exactly Q entries so repeated
// formation over a stable vote list yields an identical certificate
type QuorumCertificate struct {
	Proposal *Proposal `json:"proposal"` // the certified proposal
	Voters   []string  `json:"voters"`   // the sorted voter id subset of size Q
}

// CheckBasic() executes sanity checks on the certificate shape
func (qc *QuorumCertificate) CheckBasic(quorum int) lib.ErrorI {
	if qc == nil || qc.Proposal == nil {
		return ErrEmptyQC()
	}
	if len(qc.Voters) < quorum {
		return ErrInvalidQCVoteLen(len(qc.Voters), quorum)
	}
	return nil
}

// Equals() compares two certificates by proposal identity and voter subset
func (qc *QuorumCertificate) Equals(other *QuorumCertificate) bool {
	if qc == nil || other == nil {
		return qc == other
	}
	if !qc.Proposal.Equals(other.Proposal) || len(qc.Voters) != len(other.Voters) {
		return false
	}
	for i, v := range qc.Voters {
		if other.Voters[i] != v {
			return false
		}
	}
	return true
}
