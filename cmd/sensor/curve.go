package sensor

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/markusressel/temp2go/internal/configuration"
	"github.com/markusressel/temp2go/internal/sensors"
	"github.com/markusressel/temp2go/internal/ui"
	"github.com/markusressel/temp2go/internal/util"
	"github.com/spf13/cobra"
)

const curveSamples = 100

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Plot the digit to temperature curve of a sensor",
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

		digits, values := sampleCurve(registry, id, curveSamples)
		if len(values) < 2 {
			return fmt.Errorf("sensor %s has too few table entries to plot", sensorId)
		}

		caption := fmt.Sprintf("°C for digits %d .. %d", digits[0], digits[len(digits)-1])
		graph := asciigraph.Plot(values, asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption(caption))
		ui.Printfln("%s", graph)
		return nil
	},
}

// sampleCurve evaluates the sensor across its table, from the coldest to the hottest entry
func sampleCurve(registry *sensors.Registry, id sensors.SensorId, count int) ([]int, []float64) {
	sensor := registry.Resolve(id)
	if sensor.TableSize() <= 0 {
		return nil, nil
	}

	first := int(sensor.Table[0])
	last := int(sensor.Table[sensor.TableSize()-1])
	digits := util.SampleRange(first, last, count)

	values := make([]float64, 0, len(digits))
	for _, digit := range digits {
		values = append(values, registry.Lookup(digit, id))
	}
	return digits, values
}

func init() {
	Command.AddCommand(curveCmd)
}
