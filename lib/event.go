package lib

import "encoding/json"

/*
	This file implements the structured event stream the scenario driver emits toward
	presentation: each event is a kind plus a typed payload, never formatted text,
	so rendering remains a pure presentation concern
*/

type EventType string

const (
	EventTypeLeader       EventType = "leader"        // a leader was selected for a view
	EventTypeProposal     EventType = "proposal"      // a proposal was dispatched to a recipient set
	EventTypeVote         EventType = "vote"          // a validator cast a vote
	EventTypeQCOutcome    EventType = "qc-outcome"    // the result of quorum certificate formation for one proposal
	EventTypeEvidence     EventType = "evidence"      // the aggregated equivocation evidence report
	EventTypeViewChange   EventType = "view-change"   // the view advanced and the leader rotated
	EventTypeCommit       EventType = "commit"        // the final per-node commit log snapshot
	EventTypeRunComplete  EventType = "run-complete"  // the run finished every phase
	EventTypeSafetyAlert  EventType = "safety-alert"  // a QC formed where quorum math should have prevented it
	EventTypeNoQuorum     EventType = "no-quorum"     // an expected, successful failure to reach quorum
	EventTypePhaseAdvance EventType = "phase-advance" // the driver moved to the next phase
)

// Event couples an event kind with its view and typed payload
type Event struct {
	Type EventType `json:"eventType"`     // the kind of event
	View uint64    `json:"view"`          // the view during which the event occurred
	Msg  any       `json:"msg,omitempty"` // the typed payload, one of the *Msg structs below
}

// LeaderMsg announces the leader of a view and whether it was chosen as faulty
type LeaderMsg struct {
	Leader string `json:"leader"`
	Faulty bool   `json:"faulty"`
}

// ProposalMsg records a proposal dispatch and its recipient set
type ProposalMsg struct {
	ProposalID string   `json:"proposalID"`
	BlockID    string   `json:"blockID"`
	ParentID   string   `json:"parentID"`
	Proposer   string   `json:"proposer"`
	Recipients []string `json:"recipients"`
}

// VoteMsg records a single vote cast
type VoteMsg struct {
	Voter      string `json:"voter"`
	ProposalID string `json:"proposalID"`
	Signature  string `json:"signature"`
}

// QCOutcomeMsg records the global QC-formation result for one proposal
type QCOutcomeMsg struct {
	ProposalID string   `json:"proposalID"`
	Formed     bool     `json:"formed"`
	Voters     []string `json:"voters,omitempty"` // the sorted voter subset when a QC formed
	Unexpected bool     `json:"unexpected"`       // true when quorum math should have prevented formation
}

// EvidenceMsg carries one aggregated equivocation evidence entry
type EvidenceMsg struct {
	Voter     string `json:"voter"`
	ProposalA string `json:"proposalA"`
	ProposalB string `json:"proposalB"`
}

// ViewChangeMsg announces the new view and rotated leader
type ViewChangeMsg struct {
	NewView   uint64 `json:"newView"`
	NewLeader string `json:"newLeader"`
}

// CommitMsg is the final committed block list of a single node
type CommitMsg struct {
	NodeID    string   `json:"nodeID"`
	Committed []string `json:"committed"`
}

// PhaseMsg names the phase the driver advanced to
type PhaseMsg struct {
	Phase string `json:"phase"`
}

// EventsTracker accumulates the ordered event stream of a run
type EventsTracker struct {
	Events []*Event // the captured events, in emission order
}

// Add() appends an event to the tracker
func (t *EventsTracker) Add(eventType EventType, view uint64, msg any) {
	if t == nil {
		return
	}
	t.Events = append(t.Events, &Event{Type: eventType, View: view, Msg: msg})
}

// Reset() resets the event tracker and returns the captured events
func (t *EventsTracker) Reset() (e []*Event) {
	if t == nil {
		return
	}
	e = t.Events
	t.Events = nil
	return
}

// FilterByType() returns the captured events of a single kind, in emission order
func (t *EventsTracker) FilterByType(eventType EventType) (filtered []*Event) {
	if t == nil {
		return
	}
	for _, e := range t.Events {
		if e.Type == eventType {
			filtered = append(filtered, e)
		}
	}
	return
}

// MarshalJSON() renders the tracker as the raw event list
func (t *EventsTracker) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Events)
}
