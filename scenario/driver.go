package scenario

import (
	"github.com/hotsim-network/hotsim/bft"
	"github.com/hotsim-network/hotsim/lib"
)

// Driver orchestrates a simulated run: it owns one NodeState per validator, compiles
// the configured attack into a declarative round script, executes the phases in
// strict sequence, and aggregates the global outcome. Execution is single threaded;
// every vote is delivered to every node before the next vote is delivered, so
// results are independent of any hypothetical parallel delivery order
type Driver struct {
	config     lib.ScenarioConfig        // the validated protocol parameters
	validators []string                  // the fixed validator ordering (also the leader rotation order)
	nodes      map[string]*bft.NodeState // validator id -> owned protocol state
	tracker    *lib.EventsTracker        // the structured event stream of the current run
	view       uint64                    // the current view counter
	leaderIdx  int                       // rotation cursor into the validator ordering
	log        lib.LoggerI
}

// New() builds a Driver from configuration, rejecting invalid parameters before any
// round starts
func New(config lib.ScenarioConfig, log lib.LoggerI) (*Driver, lib.ErrorI) {
	validators := genValidatorIDs(config.Validators)
	if err := config.Check(validators); err != nil {
		return nil, err
	}
	d := &Driver{
		config:     config,
		validators: validators,
		log:        log,
	}
	d.reset()
	return d, nil
}

// reset() recreates every node's protocol state for a fresh run
func (d *Driver) reset() {
	d.nodes = make(map[string]*bft.NodeState, len(d.validators))
	for _, id := range d.validators {
		d.nodes[id] = bft.NewNodeState(id)
	}
	d.tracker = &lib.EventsTracker{}
	d.view = 1
	d.leaderIdx = 0
}

// Validators() exposes the validator id set to topology rendering
func (d *Driver) Validators() []string {
	out := make([]string, len(d.validators))
	copy(out, d.validators)
	return out
}

// FaultyLeader() exposes the selected byzantine leader id, or "" when none
func (d *Driver) FaultyLeader() string {
	if d.config.FaultyLeader == lib.NoFaultyLeader {
		return ""
	}
	return d.config.FaultyLeader
}

// Node() returns the protocol state owned by a validator id
func (d *Driver) Node(id string) *bft.NodeState { return d.nodes[id] }

// Run() executes the configured scenario from a fresh state and returns the global
// outcome. Attacks without a round script produce an explicit not-implemented
// result; a run is never partially reported
func (d *Driver) Run() (*RunResult, lib.ErrorI) {
	d.reset()
	script, err := d.compileScript()
	if err != nil {
		d.log.Warnf("attack %q is not implemented, refusing to run", d.config.Attack)
		return newNotImplementedResult(), nil
	}
	result := &RunResult{Commits: make(map[string][]string)}
	for i, round := range script {
		if len(round.Proposals) == 0 {
			return nil, ErrEmptyRound()
		}
		if i > 0 {
			d.viewChange(round.Leader)
		}
		if err = d.runRound(round, result); err != nil {
			return nil, err
		}
	}
	d.advance(Complete)
	d.snapshotCommits(result)
	d.tracker.Add(lib.EventTypeRunComplete, d.view, nil)
	result.Events = d.tracker.Events
	result.Completed = true
	return result, nil
}

// compileScript() turns the configured attack into a declarative round script
func (d *Driver) compileScript() ([]RoundSpec, lib.ErrorI) {
	switch d.config.Attack {
	case lib.AttackEquivocation:
		return d.equivocationScript(), nil
	default:
		// withhold-qc and drop-messages are recognized configuration values with no
		// round sequencing logic
		return nil, ErrUnimplementedAttack(d.config.Attack)
	}
}

// runRound() executes one declarative round: proposal dispatch, vote fan-out,
// certificate formation, then either evidence aggregation or commit application
func (d *Driver) runRound(round RoundSpec, result *RunResult) lib.ErrorI {
	// ProposalPhase: announce the leader and dispatch each proposal to its targets
	// (the recovery round's proposal and voting both belong to SafeRoundPhase)
	if round.Commit {
		d.advance(SafeRoundPhase)
	} else {
		d.advance(ProposalPhase)
	}
	d.tracker.Add(lib.EventTypeLeader, d.view, &lib.LeaderMsg{Leader: round.Leader, Faulty: round.LeaderFaulty})
	d.log.Infof("view %d: leader is %s", d.view, round.Leader)
	proposals := make([]*bft.Proposal, 0, len(round.Proposals))
	for _, spec := range round.Proposals {
		p := bft.NewProposal(spec.BlockID, spec.ParentID, d.view, round.Leader)
		proposals = append(proposals, p)
		d.tracker.Add(lib.EventTypeProposal, d.view, &lib.ProposalMsg{
			ProposalID: p.ID(),
			BlockID:    p.BlockID,
			ParentID:   p.ParentID,
			Proposer:   p.ProposerID,
			Recipients: spec.Targets,
		})
		d.log.Infof("%s dispatched %s to %d validators", round.Leader, p.ID(), len(spec.Targets))
	}

	// VotingPhase: each targeted validator signs exactly one vote for the proposal it
	// was shown; the vote is broadcast to every node before the next vote is cast
	if !round.Commit {
		d.advance(VotingPhase)
	}
	for i, spec := range round.Proposals {
		for _, voter := range spec.Targets {
			d.broadcastVote(bft.NewVote(voter, proposals[i]))
		}
	}

	// QCFormationPhase: every node attempts formation for every proposal of the round
	if round.Commit {
		d.advance(CommitPhase)
	} else {
		d.advance(QCFormationPhase)
	}
	formed := d.formQCs(proposals, round, result)

	if round.Commit {
		d.applyCommits(formed)
		return nil
	}
	// EvidenceReportPhase: aggregate equivocation evidence across all nodes
	d.advance(EvidenceReportPhase)
	d.aggregateEvidence(result)
	return nil
}

// broadcastVote() delivers one vote to every node's protocol state, simulating
// honest nodes observing all gossip for evidence purposes
func (d *Driver) broadcastVote(vote *bft.Vote) {
	d.tracker.Add(lib.EventTypeVote, d.view, &lib.VoteMsg{
		Voter:      vote.VoterID,
		ProposalID: vote.Proposal.ID(),
		Signature:  vote.Signature,
	})
	d.log.Debugf("%s voted for %s", vote.VoterID, vote.Proposal.ID())
	for _, id := range d.validators {
		if _, err := d.nodes[id].RecordVote(vote); err != nil {
			d.log.Errorf("vote delivery to %s failed: %s", id, err.Error())
		}
	}
}

// formQCs() polls every node for certificate formation over every proposal of the
// round and reports the per-proposal outcome. A certificate in a round that expected
// none is surfaced as a prominent warning, never silently ignored; certificates for
// two conflicting proposals in one view raise a safety alert
func (d *Driver) formQCs(proposals []*bft.Proposal, round RoundSpec, result *RunResult) map[string]*bft.QuorumCertificate {
	quorum := d.config.Quorum()
	formed := make(map[string]*bft.QuorumCertificate) // proposal identity -> representative QC
	for _, p := range proposals {
		for _, id := range d.validators {
			if qc := d.nodes[id].TryFormQC(p, quorum); qc != nil {
				if _, ok := formed[p.ID()]; !ok {
					formed[p.ID()] = qc
					result.QCs = append(result.QCs, qc)
				}
			}
		}
	}
	for _, p := range proposals {
		qc, ok := formed[p.ID()]
		unexpected := ok && !round.ExpectQuorum
		msg := &lib.QCOutcomeMsg{ProposalID: p.ID(), Formed: ok, Unexpected: unexpected}
		if ok {
			msg.Voters = qc.Voters
		}
		d.tracker.Add(lib.EventTypeQCOutcome, d.view, msg)
		switch {
		case unexpected:
			d.log.Warnf("unexpected certificate formed for %s with voters %v", p.ID(), qc.Voters)
		case !ok && !round.ExpectQuorum:
			// an expected no-quorum outcome is success, not failure
			d.tracker.Add(lib.EventTypeNoQuorum, d.view, &lib.QCOutcomeMsg{ProposalID: p.ID()})
			d.log.Infof("no certificate formed for %s, safety preserved", p.ID())
		case !ok:
			d.log.Errorf("no certificate formed for %s despite full participation", p.ID())
		}
	}
	// conflicting certificates within one view break protocol safety under correct
	// quorum math, surface loudly
	if len(formed) > 1 {
		ids := make([]string, 0, len(formed))
		for _, p := range proposals {
			if _, ok := formed[p.ID()]; ok {
				ids = append(ids, p.ID())
			}
		}
		result.SafetyViolated = true
		d.tracker.Add(lib.EventTypeSafetyAlert, d.view, &lib.QCOutcomeMsg{ProposalID: ids[0], Formed: true, Unexpected: true})
		d.log.Error(ErrSafetyViolation(d.view, ids[0], ids[1]).Error())
	}
	return formed
}

// aggregateEvidence() merges every node's derived equivocation evidence into the
// global report, deduplicated by tuple identity
func (d *Driver) aggregateEvidence(result *RunResult) {
	merged := bft.NewEvidences()
	for _, id := range d.validators {
		for _, ev := range d.nodes[id].Evidence() {
			merged.Add(ev)
		}
	}
	result.Evidence = append(result.Evidence, merged.List()...)
	for _, ev := range merged.List() {
		d.tracker.Add(lib.EventTypeEvidence, d.view, &lib.EvidenceMsg{
			Voter:     ev.VoterID,
			ProposalA: ev.ProposalA,
			ProposalB: ev.ProposalB,
		})
		d.log.Warnf("%s signed conflicting proposals: %s vs %s", ev.VoterID, ev.ProposalA, ev.ProposalB)
	}
	if len(result.Evidence) == 0 {
		d.log.Info("no equivocation evidence found")
	}
}

// applyCommits() lets every node apply the commit for each certificate formed during
// a commit round
func (d *Driver) applyCommits(formed map[string]*bft.QuorumCertificate) {
	for _, qc := range formed {
		for _, id := range d.validators {
			if err := d.nodes[id].ApplyCommit(qc); err != nil {
				d.log.Errorf("commit on %s failed: %s", id, err.Error())
			}
		}
		d.log.Infof("certificate formed for %s, all nodes commit %s", qc.Proposal.ID(), qc.Proposal.BlockID)
	}
}

// viewChange() increments the view counter and rotates leadership to the next
// validator in the fixed ordering
func (d *Driver) viewChange(newLeader string) {
	d.advance(ViewChangePhase)
	d.view++
	d.tracker.Add(lib.EventTypeViewChange, d.view, &lib.ViewChangeMsg{NewView: d.view, NewLeader: newLeader})
	d.log.Infof("view change: new view %d, new leader %s", d.view, newLeader)
}

// snapshotCommits() records the final committed block list of every node
func (d *Driver) snapshotCommits(result *RunResult) {
	for _, id := range d.validators {
		committed := d.nodes[id].Committed()
		result.Commits[id] = committed
		d.tracker.Add(lib.EventTypeCommit, d.view, &lib.CommitMsg{NodeID: id, Committed: committed})
	}
}

// advance() emits the phase transition marker into the event stream
func (d *Driver) advance(p Phase) {
	d.tracker.Add(lib.EventTypePhaseAdvance, d.view, &lib.PhaseMsg{Phase: p.String()})
}
