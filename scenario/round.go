package scenario

import "strconv"

// RoundSpec is a declarative description of one protocol round: who leads, what is
// proposed, and who is shown each proposal. Attack scripts compile into round specs
// so new byzantine behaviors are added as data rather than new control flow
type RoundSpec struct {
	Leader       string         // the validator leading the round
	LeaderFaulty bool           // whether the leader was selected as the byzantine one
	Proposals    []ProposalSpec // the proposal set dispatched during the round
	ExpectQuorum bool           // whether the driver expects a certificate to form
	Commit       bool           // apply commits on formed certificates (recovery round)
}

// ProposalSpec describes one proposal and its target partition
type ProposalSpec struct {
	BlockID  string   // the candidate block identifier
	ParentID string   // the parent block the proposal extends
	Targets  []string // the validators shown this proposal; each casts exactly one vote
}

// genValidatorIDs() generates the deterministic validator identifier set:
// single letters A..Z, then NodeN beyond that
func genValidatorIDs(n int) []string {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if i < 26 {
			ids = append(ids, string(rune('A'+i)))
		} else {
			ids = append(ids, "Node"+strconv.Itoa(i))
		}
	}
	return ids
}
