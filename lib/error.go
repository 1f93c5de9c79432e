package lib

import (
	"fmt"
)

type ErrorI interface {
	Code() ErrorCode     // Returns the error code
	Module() ErrorModule // Returns the error module
	error                // Implements the built-in error interface
}

var _ ErrorI = &Error{} // Ensures *Error implements ErrorI

type ErrorCode uint32 // Defines a type for error codes

type ErrorModule string // Defines a type for error modules

type Error struct {
	ECode   ErrorCode   `json:"code"`   // Error code
	EModule ErrorModule `json:"module"` // Error module
	Msg     string      `json:"msg"`    // Error message
}

func NewError(code ErrorCode, module ErrorModule, msg string) *Error {
	// Constructs a new Error instance
	return &Error{ECode: code, EModule: module, Msg: msg}
}

// Code() returns the associated error code
func (p *Error) Code() ErrorCode { return p.ECode }

// Module() returns module field
func (p *Error) Module() ErrorModule { return p.EModule }

// String() calls Error()
func (p *Error) String() string { return p.Error() }

// Error() returns a formatted string including module, code, and message
func (p *Error) Error() string {
	return fmt.Sprintf("\nModule:  %s\nCode:    %d\nMessage: %s", p.EModule, p.ECode, p.Msg)
}

const (
	// Main Module
	MainModule ErrorModule = "main"

	// Main Module Error Codes
	CodeJSONMarshal   ErrorCode = 1
	CodeJSONUnmarshal ErrorCode = 2
	CodeWriteFile     ErrorCode = 3
	CodeReadFile      ErrorCode = 4
	CodeLogWrite      ErrorCode = 5

	// Config Module
	ConfigModule ErrorModule = "config"

	// Config Module Error Codes
	CodeInvalidValidatorCount ErrorCode = 1
	CodeInvalidFaultBound     ErrorCode = 2
	CodeInvalidQuorum         ErrorCode = 3
	CodeUnknownFaultyLeader   ErrorCode = 4
	CodeUnknownAttackType     ErrorCode = 5

	// Consensus Module
	ConsensusModule ErrorModule = "consensus"

	// Consensus Module Error Codes
	CodeEmptyVote        ErrorCode = 1
	CodeEmptyProposal    ErrorCode = 2
	CodeEmptyQC          ErrorCode = 3
	CodeInvalidQCVoteLen ErrorCode = 4

	// Scenario Module
	ScenarioModule ErrorModule = "scenario"

	// Scenario Module Error Codes
	CodeUnimplementedAttack ErrorCode = 1
	CodeEmptyRound          ErrorCode = 2
	CodeSafetyViolation     ErrorCode = 3
)

func ErrJSONMarshal(err error) ErrorI {
	return NewError(CodeJSONMarshal, MainModule, fmt.Sprintf("json.Marshal() failed with err: %s", err.Error()))
}

func ErrJSONUnmarshal(err error) ErrorI {
	return NewError(CodeJSONUnmarshal, MainModule, fmt.Sprintf("json.Unmarshal() failed with err: %s", err.Error()))
}

func ErrWriteFile(err error) ErrorI {
	return NewError(CodeWriteFile, MainModule, fmt.Sprintf("os.WriteFile() failed with err: %s", err.Error()))
}

func ErrReadFile(err error) ErrorI {
	return NewError(CodeReadFile, MainModule, fmt.Sprintf("os.ReadFile() failed with err: %s", err.Error()))
}

func newLogError(err error) ErrorI {
	return NewError(CodeLogWrite, MainModule, fmt.Sprintf("log write failed with err: %s", err.Error()))
}

func ErrInvalidValidatorCount(n, min, max int) ErrorI {
	return NewError(CodeInvalidValidatorCount, ConfigModule, fmt.Sprintf("validator count %d outside bounds [%d, %d]", n, min, max))
}

func ErrInvalidFaultBound(f, maxF int) ErrorI {
	return NewError(CodeInvalidFaultBound, ConfigModule, fmt.Sprintf("fault bound %d exceeds floor((N-1)/3) = %d", f, maxF))
}

func ErrInvalidQuorum(q, n int) ErrorI {
	return NewError(CodeInvalidQuorum, ConfigModule, fmt.Sprintf("quorum %d exceeds validator count %d", q, n))
}

func ErrUnknownFaultyLeader(id string) ErrorI {
	return NewError(CodeUnknownFaultyLeader, ConfigModule, fmt.Sprintf("faulty leader %q is not in the validator set", id))
}

func ErrUnknownAttackType(s string) ErrorI {
	return NewError(CodeUnknownAttackType, ConfigModule, fmt.Sprintf("unknown attack type %q", s))
}
