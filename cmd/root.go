package cmd

import (
	"fmt"

	"github.com/Gthulhu/scenario-controller/config"
	"github.com/spf13/cobra"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// NewRootCmd builds the scenario-controller command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "scenario-controller",
		Short: "Simulation scenario controller",
		Long: `scenario-controller drives synthetic load on simulated VirtualMachine
resources. It watches SimulationScenario resources and, for each one, runs
task generators on a compressed virtual clock, writing per-VM utilization
and scenario progress back to the cluster.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("scenario-controller version %s\nCommit: %s\nBuilt: %s\n", Version, Commit, BuildTime))

	root.PersistentFlags().String("config-name", "controller_config", "Config file name without extension")
	root.PersistentFlags().String("config-dir", "", "Directory containing the config file")
	root.PersistentFlags().String("log-level", "", "Override the configured log level")

	root.AddCommand(newControllerCmd())
	root.AddCommand(newRunCmd())
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func loadConfig(cmd *cobra.Command) (config.ControllerConfig, error) {
	name, _ := cmd.Flags().GetString("config-name")
	dir, _ := cmd.Flags().GetString("config-dir")
	cfg, err := config.InitControllerConfig(name, dir)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", name, err)
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	return cfg, nil
}
