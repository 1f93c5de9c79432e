package bft

import (
	"fmt"

	"github.com/hotsim-network/hotsim/lib"
)

func ErrEmptyVote() lib.ErrorI {
	return lib.NewError(lib.CodeEmptyVote, lib.ConsensusModule, "empty vote")
}

func ErrEmptyProposal() lib.ErrorI {
	return lib.NewError(lib.CodeEmptyProposal, lib.ConsensusModule, "empty proposal")
}

func ErrEmptyQC() lib.ErrorI {
	return lib.NewError(lib.CodeEmptyQC, lib.ConsensusModule, "empty quorum certificate")
}

func ErrInvalidQCVoteLen(got, quorum int) lib.ErrorI {
	return lib.NewError(lib.CodeInvalidQCVoteLen, lib.ConsensusModule, fmt.Sprintf("quorum certificate carries %d voters, quorum is %d", got, quorum))
}
