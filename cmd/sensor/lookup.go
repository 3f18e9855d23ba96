package sensor

import (
	"github.com/markusressel/temp2go/cmd/global"
	"github.com/markusressel/temp2go/internal/configuration"
	"github.com/markusressel/temp2go/internal/sensors"
	"github.com/markusressel/temp2go/internal/ui"
	"github.com/spf13/cobra"
)

var digit int

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Convert a raw ADC digit into a temperature",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := configuration.LoadRegistry()
		if err != nil {
			return err
		}

		id, err := findSensor(registry, sensorId)
		if err != nil {
			return err
		}

		printReading(id, registry.Read(digit, id), global.Verbose)
		return nil
	},
}

func printReading(id sensors.SensorId, reading sensors.Reading, verbose bool) {
	if verbose {
		ui.Debug("Sensor %s (%d): digit %d -> %s (%s)", reading.Sensor, id, reading.Digit, reading.Formatted, reading.Outcome)
	}
	ui.Printfln("%.2f", reading.Celsius)
}

func init() {
	lookupCmd.Flags().IntVarP(&digit, "digit", "d", 0, "Raw ADC digit to convert")
	_ = lookupCmd.MarkFlagRequired("digit")
	Command.AddCommand(lookupCmd)
}
