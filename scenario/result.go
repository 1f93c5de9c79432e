package scenario

import (
	"github.com/hotsim-network/hotsim/bft"
	"github.com/hotsim-network/hotsim/lib"
)

// RunResult is the aggregated global outcome of a run, exposed to presentation as
// structured data
type RunResult struct {
	Events         []*lib.Event             `json:"events"`         // the ordered structured event stream
	Evidence       []bft.Evidence           `json:"evidence"`       // equivocation evidence aggregated across all nodes
	QCs            []*bft.QuorumCertificate `json:"qcs"`            // every certificate formed during the run, deduplicated
	Commits        map[string][]string      `json:"commits"`        // validator id -> committed block ids in commit order
	SafetyViolated bool                     `json:"safetyViolated"` // certificates formed for conflicting proposals in one view
	NotImplemented bool                     `json:"notImplemented"` // the selected attack has no round script
	Completed      bool                     `json:"completed"`      // the run executed every phase
}

// newNotImplementedResult() is the explicit outcome for attacks with no round script:
// no events, no commits, no fabricated evidence
func newNotImplementedResult() *RunResult {
	return &RunResult{
		Commits:        make(map[string][]string),
		NotImplemented: true,
	}
}
