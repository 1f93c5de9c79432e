package cli

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/hotsim-network/hotsim/lib"
	"github.com/hotsim-network/hotsim/scenario"
	"github.com/spf13/cobra"
)

const SoftwareVersion = "0.2.0"

var rootCmd = &cobra.Command{
	Use:   "hotsim",
	Short: "an educational HotStuff BFT safety simulator",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(SoftwareVersion)
	},
}

var (
	config  = lib.Config{}
	l       = lib.LoggerI(nil)
	DataDir = ""

	// flag overrides for the scenario parameters
	flagValidators int
	flagFaults     int
	flagLeader     string
	flagAttack     string
)

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.PersistentFlags().StringVar(&DataDir, "data-dir", lib.DefaultDataDirPath(), "custom data directory location")
	startCmd.Flags().IntVar(&flagValidators, "validators", 0, "override the configured validator count N")
	startCmd.Flags().IntVar(&flagFaults, "faults", -1, "override the configured fault bound f")
	startCmd.Flags().StringVar(&flagLeader, "faulty-leader", "", "override the configured faulty leader id (or 'none')")
	startCmd.Flags().StringVar(&flagAttack, "attack", "", "override the configured attack type")
}

func Execute() {
	config = InitializeDataDirectory(DataDir, lib.NewDefaultLogger())
	l = lib.NewLogger(lib.LoggerConfig{
		Level: config.GetLogLevel(),
	}, config.DataDirPath)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "run the configured simulation scenario",
	Run: func(cmd *cobra.Command, args []string) {
		Start()
	},
}

// Start() is the entrypoint of the simulator: it builds a driver from the effective
// configuration, executes the run, and renders the structured event stream
func Start() {
	sc := config.ScenarioConfig
	if flagValidators != 0 {
		sc.Validators = flagValidators
	}
	if flagFaults >= 0 {
		sc.Faults = flagFaults
	}
	if flagLeader != "" {
		sc.FaultyLeader = flagLeader
	}
	if flagAttack != "" {
		sc.Attack = lib.AttackType(flagAttack)
	}
	driver, err := scenario.New(sc, l)
	if err != nil {
		l.Fatal(err.Error())
	}
	l.Infof("Validators: %v | quorum (2f+1) = %d", driver.Validators(), sc.Quorum())
	result, err := driver.Run()
	if err != nil {
		l.Fatal(err.Error())
	}
	renderResult(result, sc, os.Stdout)
}

// InitializeDataDirectory() ensures the data directory and config file exist and
// loads the effective configuration
func InitializeDataDirectory(dataDirPath string, log lib.LoggerI) (c lib.Config) {
	if dataDirPath == "" {
		dataDirPath = lib.DefaultDataDirPath()
	}
	if err := os.MkdirAll(dataDirPath, os.ModePerm); err != nil {
		panic(err)
	}
	configFilePath := filepath.Join(dataDirPath, lib.ConfigFilePath)
	if _, err := os.Stat(configFilePath); errors.Is(err, os.ErrNotExist) {
		log.Infof("Creating %s file", lib.ConfigFilePath)
		if err := lib.DefaultConfig().WriteToFile(configFilePath); err != nil {
			panic(err)
		}
	}
	c, err := lib.NewConfigFromFile(configFilePath)
	if err != nil {
		panic(err)
	}
	c.DataDirPath = dataDirPath
	return
}
