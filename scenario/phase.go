package scenario

// Phase enumerates the strictly sequential stages of a simulated run: one faulty
// round followed by one honest recovery round, with no branching back
type Phase uint8

const (
	ProposalPhase Phase = iota // the leader is selected and proposals are dispatched
	VotingPhase                // targeted validators sign and broadcast exactly one vote each
	QCFormationPhase           // every node attempts certificate formation for every proposal
	EvidenceReportPhase        // equivocation evidence is aggregated across all nodes
	ViewChangePhase            // the view increments and leadership rotates
	SafeRoundPhase             // the new leader proposes one block, every validator votes
	CommitPhase                // nodes form the certificate and apply the commit
	Complete                   // the run finished
)

// phaseToString() maps a phase to its wire name
func phaseToString(p Phase) string {
	switch p {
	case ProposalPhase:
		return "PROPOSAL"
	case VotingPhase:
		return "VOTING"
	case QCFormationPhase:
		return "QC_FORMATION"
	case EvidenceReportPhase:
		return "EVIDENCE_REPORT"
	case ViewChangePhase:
		return "VIEW_CHANGE"
	case SafeRoundPhase:
		return "SAFE_ROUND"
	case CommitPhase:
		return "COMMIT"
	case Complete:
		return "COMPLETE"
	}
	return "UNKNOWN"
}

// String() implements fmt.Stringer
func (p Phase) String() string { return phaseToString(p) }
