package lib

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	// calculate expected
	expected := Config{
		MainConfig:     DefaultMainConfig(),
		ScenarioConfig: DefaultScenarioConfig(),
	}
	// execute the function call
	got := DefaultConfig()
	// compare got vs expected
	require.Equal(t, expected, got)
}

func TestFileConfig(t *testing.T) {
	filePath := "./test_config"
	// define a variable to test upon
	config := DefaultConfig()
	// write to file
	require.NoError(t, config.WriteToFile(filePath))
	defer os.RemoveAll(filePath)
	// read from file
	got, err := NewConfigFromFile(filePath)
	require.NoError(t, err)
	// compare got vs expected
	require.Equal(t, config, got)
}

func TestScenarioConfigCheck(t *testing.T) {
	// a validator id set matching the default seven validator configuration
	validators := []string{"A", "B", "C", "D", "E", "F", "G"}
	// define test cases
	tests := []struct {
		name   string
		detail string
		config ScenarioConfig
		error  string
	}{
		{
			name:   "default config",
			detail: "the default N=7 f=2 equivocation parameters are valid",
			config: DefaultScenarioConfig(),
		},
		{
			name:   "validator count below bounds",
			detail: "fewer than four validators cannot tolerate a single fault",
			config: ScenarioConfig{Validators: 3, Faults: 0, FaultyLeader: NoFaultyLeader, Attack: AttackEquivocation},
			error:  "outside bounds",
		},
		{
			name:   "validator count above bounds",
			detail: "the simulator caps the validator set at thirteen",
			config: ScenarioConfig{Validators: 14, Faults: 2, FaultyLeader: NoFaultyLeader, Attack: AttackEquivocation},
			error:  "outside bounds",
		},
		{
			name:   "fault bound exceeds the byzantine threshold",
			detail: "f above floor((N-1)/3) violates the 3f+1 assumption",
			config: ScenarioConfig{Validators: 7, Faults: 3, FaultyLeader: NoFaultyLeader, Attack: AttackEquivocation},
			error:  "exceeds floor((N-1)/3)",
		},
		{
			name:   "negative fault bound",
			detail: "f must be non-negative",
			config: ScenarioConfig{Validators: 7, Faults: -1, FaultyLeader: NoFaultyLeader, Attack: AttackEquivocation},
			error:  "exceeds floor((N-1)/3)",
		},
		{
			name:   "unknown attack type",
			detail: "an unrecognized attack selector is a configuration error",
			config: ScenarioConfig{Validators: 7, Faults: 2, FaultyLeader: NoFaultyLeader, Attack: "grinding"},
			error:  "unknown attack type",
		},
		{
			name:   "unknown faulty leader",
			detail: "the chosen byzantine leader must be a member of the validator set",
			config: ScenarioConfig{Validators: 7, Faults: 2, FaultyLeader: "Z", Attack: AttackEquivocation},
			error:  "not in the validator set",
		},
		{
			name:   "named but unimplemented attacks pass validation",
			detail: "withhold-qc is a recognized configuration value; rejection happens at run time",
			config: ScenarioConfig{Validators: 7, Faults: 2, FaultyLeader: NoFaultyLeader, Attack: AttackWithholdQC},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// execute the function call
			err := test.config.Check(validators)
			// validate if an error is expected
			require.Equal(t, err != nil, test.error != "", err)
			// validate actual error if any
			if err != nil {
				require.ErrorContains(t, err, test.error, err)
			}
		})
	}
}

func TestQuorum(t *testing.T) {
	// quorum is always 2f+1 regardless of the validator count
	for f := 0; f <= 4; f++ {
		sc := ScenarioConfig{Faults: f}
		require.Equal(t, 2*f+1, sc.Quorum())
	}
}
