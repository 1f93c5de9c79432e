package bft

/*
	STRUCTURE
		- A Leader issues Proposals for a View, Replicas endorse them with Votes
		- Each validator's NodeState independently records every vote it observes,
		  derives equivocation Evidence, forms QuorumCertificates, and applies commits

	SAFETY
		- Quorum is Q = 2f+1 of N = 3f+1 validators: two conflicting proposals in one
		  view cannot both gather Q votes from distinct voters, so at most one QC can
		  form per view. The package never hardcodes this; it falls out of the math
		- A voter counts at most once toward quorum no matter how often it re-sends
		  the same vote
		- Evidence is derived whenever one voter signs two distinct blocks by the same
		  proposer in the same view; it is append-only and deduplicated by tuple

	SIMPLIFICATIONS (intentional, this is a safety simulation)
		- Signatures are opaque deterministic tokens with no verification step
		- Commit applies directly off a formed QC without parent-chain validation
		- No chained QC extension: one proposal is formed and committed per view
*/
