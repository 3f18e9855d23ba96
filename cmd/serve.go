package cmd

import (
	"github.com/markusressel/temp2go/internal"
	"github.com/markusressel/temp2go/internal/configuration"
	"github.com/markusressel/temp2go/internal/ui"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve lookups via REST API, MQTT and prometheus metrics",
	Long: `Starts all interfaces enabled in the configuration
and serves lookups until interrupted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printHeader()

		registry, err := configuration.LoadRegistry()
		if err != nil {
			return err
		}
		ui.Info("Loaded %d sensors", len(registry.Ids()))

		return internal.RunServer(&configuration.CurrentConfig, registry)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
