package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/hotsim-network/hotsim/lib"
	"github.com/hotsim-network/hotsim/scenario"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// renderResult turns the structured event stream into terminal output. Rendering is
// a pure presentation concern: the pacing delay between phases lives here, never in
// the driver
func renderResult(result *scenario.RunResult, sc lib.ScenarioConfig, out io.Writer) {
	if result.NotImplemented {
		color.New(color.FgYellow).Fprintf(out, "attack %q is not implemented; try %q\n", sc.Attack, lib.AttackEquivocation)
		return
	}
	pacing := time.Duration(sc.PacingMS) * time.Millisecond
	for _, e := range result.Events {
		renderEvent(e, out)
		if e.Type == lib.EventTypePhaseAdvance && pacing > 0 {
			time.Sleep(pacing)
		}
	}
	renderSummary(result, out)
}

// renderEvent writes one event as a human readable line
func renderEvent(e *lib.Event, out io.Writer) {
	switch msg := e.Msg.(type) {
	case *lib.PhaseMsg:
		color.New(color.FgHiBlack).Fprintf(out, "--- %s ---\n", msg.Phase)
	case *lib.LeaderMsg:
		tag := ""
		if msg.Faulty {
			tag = color.RedString(" (byzantine)")
		}
		fmt.Fprintf(out, "view %d: leader is %s%s\n", e.View, msg.Leader, tag)
	case *lib.ProposalMsg:
		fmt.Fprintf(out, "%s sends %s to [%s]\n", msg.Proposer, msg.ProposalID, strings.Join(msg.Recipients, " "))
	case *lib.VoteMsg:
		fmt.Fprintf(out, "%s voted for %s %s\n", msg.Voter, msg.ProposalID, color.HiBlackString(msg.Signature))
	case *lib.QCOutcomeMsg:
		switch {
		case e.Type == lib.EventTypeSafetyAlert:
			color.New(color.FgRed).Fprintf(out, "SAFETY ALERT: conflicting certificates in view %d\n", e.View)
		case msg.Formed && msg.Unexpected:
			color.New(color.FgYellow).Fprintf(out, "unexpected QC for %s: %v\n", msg.ProposalID, msg.Voters)
		case msg.Formed:
			color.New(color.FgGreen).Fprintf(out, "QC formed for %s with voters %v\n", msg.ProposalID, msg.Voters)
		case e.Type == lib.EventTypeNoQuorum:
			color.New(color.FgGreen).Fprintf(out, "no QC for %s: quorum not reached, safety preserved\n", msg.ProposalID)
		}
	case *lib.EvidenceMsg:
		color.New(color.FgYellow).Fprintf(out, "evidence: %s signed conflicting proposals %s vs %s\n", msg.Voter, msg.ProposalA, msg.ProposalB)
	case *lib.ViewChangeMsg:
		fmt.Fprintf(out, "view-change -> view %d, new leader %s\n", msg.NewView, msg.NewLeader)
	case *lib.CommitMsg:
		fmt.Fprintf(out, "  %s: %v\n", msg.NodeID, msg.Committed)
	default:
		if e.Type == lib.EventTypeRunComplete {
			fmt.Fprintln(out, "simulation complete")
		}
	}
}

// renderSummary prints the aggregate counts of the run
func renderSummary(result *scenario.RunResult, out io.Writer) {
	p := message.NewPrinter(language.English)
	votes := 0
	for _, e := range result.Events {
		if e.Type == lib.EventTypeVote {
			votes++
		}
	}
	p.Fprintf(out, "votes cast: %d | certificates: %d | evidence entries: %d\n",
		votes, len(result.QCs), len(result.Evidence))
	if result.SafetyViolated {
		color.New(color.FgRed).Fprintln(out, "safety was violated: check quorum parameters")
	}
}
