package lib

import (
	"encoding/json"
	"os"
	"path/filepath"
)

/* This file implements the 'user controlled' configuration of a simulation run */

const (
	// FILE NAMES in the 'data directory'
	ConfigFilePath = "config.json" // the file path for the simulator configuration

	// VALIDATOR SET BOUNDS
	MinValidators = 4  // fewest validators a run may be configured with (N = 3f+1 with f = 1)
	MaxValidators = 13 // most validators a run may be configured with

	// NoFaultyLeader is the sentinel for an honest, rotation-selected leader
	NoFaultyLeader = "none"
)

// AttackType selects the byzantine behavior injected into the faulty round
type AttackType string

const (
	AttackEquivocation AttackType = "equivocation"  // the leader sends two conflicting proposals to two halves of the set
	AttackWithholdQC   AttackType = "withhold-qc"   // named but not implemented as a round script
	AttackDropMessages AttackType = "drop-messages" // named but not implemented as a round script
)

// Config is the structure of the user configuration options for a simulation run
type Config struct {
	MainConfig     // main options spanning over all modules
	ScenarioConfig // scenario driver options
}

// MainConfig holds options that span every module
type MainConfig struct {
	LogLevel    string `json:"logLevel"`    // any level includes the levels above it: debug < info < warning < error
	DataDirPath string `json:"dataDirPath"` // the directory holding the config file and rotating logs
}

// ScenarioConfig holds the protocol parameters for a simulated run
type ScenarioConfig struct {
	Validators   int        `json:"validators"`   // validator count N, bounded [4, 13]
	Faults       int        `json:"faults"`       // fault bound f, 0 <= f <= floor((N-1)/3)
	FaultyLeader string     `json:"faultyLeader"` // the validator chosen as the byzantine leader, or "none"
	Attack       AttackType `json:"attack"`       // the byzantine behavior injected into the first round
	PacingMS     uint64     `json:"pacingMS"`     // cosmetic delay between phases, consumed by presentation only
}

// Quorum() returns the quorum threshold Q = 2f+1
func (s *ScenarioConfig) Quorum() int { return 2*s.Faults + 1 }

// MaxFaults() returns the largest tolerable fault bound floor((N-1)/3)
func (s *ScenarioConfig) MaxFaults() int { return (s.Validators - 1) / 3 }

// Check() validates the scenario parameters against a generated validator id set
// configuration errors reject a run before it starts
func (s *ScenarioConfig) Check(validatorIDs []string) ErrorI {
	if s.Validators < MinValidators || s.Validators > MaxValidators {
		return ErrInvalidValidatorCount(s.Validators, MinValidators, MaxValidators)
	}
	if s.Faults < 0 || s.Faults > s.MaxFaults() {
		return ErrInvalidFaultBound(s.Faults, s.MaxFaults())
	}
	if q := s.Quorum(); q > s.Validators {
		return ErrInvalidQuorum(q, s.Validators)
	}
	switch s.Attack {
	case AttackEquivocation, AttackWithholdQC, AttackDropMessages:
	default:
		return ErrUnknownAttackType(string(s.Attack))
	}
	if s.FaultyLeader != NoFaultyLeader && s.FaultyLeader != "" {
		found := false
		for _, id := range validatorIDs {
			if id == s.FaultyLeader {
				found = true
				break
			}
		}
		if !found {
			return ErrUnknownFaultyLeader(s.FaultyLeader)
		}
	}
	return nil
}

// DefaultConfig() returns a Config with developer set options
func DefaultConfig() Config {
	return Config{
		MainConfig:     DefaultMainConfig(),
		ScenarioConfig: DefaultScenarioConfig(),
	}
}

// DefaultMainConfig() sets log level to 'info'
func DefaultMainConfig() MainConfig {
	return MainConfig{
		LogLevel:    "info",
		DataDirPath: DefaultDataDirPath(),
	}
}

// DefaultScenarioConfig() is the N=7, f=2 equivocation demonstration
func DefaultScenarioConfig() ScenarioConfig {
	return ScenarioConfig{
		Validators:   7,
		Faults:       2,
		FaultyLeader: "A",
		Attack:       AttackEquivocation,
		PacingMS:     900,
	}
}

// GetLogLevel() parses the log string in the config file into a logger level
func (m *MainConfig) GetLogLevel() int32 { return StringToLogLevel(m.LogLevel) }

// DefaultDataDirPath() is $USERHOME/.hotsim
func DefaultDataDirPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return filepath.Join(home, ".hotsim")
}

// WriteToFile() saves the Config object to a JSON file
func (c Config) WriteToFile(filePath string) ErrorI {
	jsonBytes, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return ErrJSONMarshal(err)
	}
	if err = os.WriteFile(filePath, jsonBytes, os.ModePerm); err != nil {
		return ErrWriteFile(err)
	}
	return nil
}

// NewConfigFromFile() populates a default config with the contents of a JSON file
func NewConfigFromFile(filePath string) (Config, ErrorI) {
	fileBytes, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, ErrReadFile(err)
	}
	c := DefaultConfig()
	if err = json.Unmarshal(fileBytes, &c); err != nil {
		return Config{}, ErrJSONUnmarshal(err)
	}
	return c, nil
}
