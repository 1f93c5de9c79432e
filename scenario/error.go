package scenario

import (
	"fmt"

	"github.com/hotsim-network/hotsim/lib"
)

func ErrUnimplementedAttack(attack lib.AttackType) lib.ErrorI {
	return lib.NewError(lib.CodeUnimplementedAttack, lib.ScenarioModule, fmt.Sprintf("attack type %q has no round script implemented", attack))
}

func ErrEmptyRound() lib.ErrorI {
	return lib.NewError(lib.CodeEmptyRound, lib.ScenarioModule, "round spec carries no proposals")
}

func ErrSafetyViolation(view uint64, proposalA, proposalB string) lib.ErrorI {
	return lib.NewError(lib.CodeSafetyViolation, lib.ScenarioModule, fmt.Sprintf("certificates formed for conflicting proposals %s and %s in view %d", proposalA, proposalB, view))
}
