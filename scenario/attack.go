package scenario

import "github.com/hotsim-network/hotsim/lib"

// genesisID is the parent every proposal extends: the simulation tracks no real
// chain state, so both rounds build directly on genesis
const genesisID = "GENESIS"

// equivocationScript() compiles the equivocation attack into its two-round script:
// a faulty round where the leader shows two conflicting blocks to two disjoint
// halves of the validator set, then an honest recovery round where the next leader
// in rotation proposes a single block to everyone
func (d *Driver) equivocationScript() []RoundSpec {
	leader := d.config.FaultyLeader
	faulty := leader != lib.NoFaultyLeader && leader != ""
	if !faulty {
		leader = d.validators[d.leaderIdx%len(d.validators)]
	}
	half := len(d.validators) / 2
	// rotation advances by the fixed ordering regardless of which validator was
	// selected as faulty
	recoveryLeader := d.validators[(d.leaderIdx+1)%len(d.validators)]
	return []RoundSpec{
		{
			Leader:       leader,
			LeaderFaulty: faulty,
			Proposals: []ProposalSpec{
				{BlockID: "X", ParentID: genesisID, Targets: d.validators[:half]},
				{BlockID: "Y", ParentID: genesisID, Targets: d.validators[half:]},
			},
			// both halves are smaller than Q = 2f+1, neither side should certify
			ExpectQuorum: false,
		},
		{
			Leader: recoveryLeader,
			Proposals: []ProposalSpec{
				{BlockID: "Z", ParentID: genesisID, Targets: d.validators},
			},
			ExpectQuorum: true,
			Commit:       true,
		},
	}
}
