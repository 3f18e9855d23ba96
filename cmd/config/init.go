package config

import (
	"github.com/markusressel/temp2go/internal/configuration"
	"github.com/markusressel/temp2go/internal/ui"
	"github.com/markusressel/temp2go/internal/util"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	force      bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Writes an example configuration file",
	Long: `Writes an annotated example configuration to the given path.
The calibration tables it contains are placeholders, replace them
with the values of your sensors.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := util.WriteFileAtomic(outputPath, configuration.ExampleConfig, force); err != nil {
			return err
		}
		ui.Success("Example configuration written to %s", outputPath)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVarP(&outputPath, "output", "o", "temp2go.yaml", "Path of the configuration file to write")
	initCmd.Flags().BoolVarP(&force, "force", "", false, "Overwrite an existing file")
	Command.AddCommand(initCmd)
}
