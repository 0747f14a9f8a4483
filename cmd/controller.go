package cmd

import (
	"github.com/Gthulhu/scenario-controller/app"
	"github.com/Gthulhu/scenario-controller/pkg/logger"
	"github.com/spf13/cobra"
)

func newControllerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "controller",
		Short: "Watch SimulationScenario resources and execute them",
		Long: `Start the scenario controller. Every SimulationScenario created in the
configured namespace is executed until it completes or is deleted. Progress
is written to the resource status and served over the REST status API.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger.InitLogger(cfg.Logging.Level, cfg.Logging.JSON)

			fxApp, err := app.NewControllerApp(cfg)
			if err != nil {
				return err
			}
			// Run blocks until SIGINT or SIGTERM
			fxApp.Run()
			return fxApp.Err()
		},
	}
}
