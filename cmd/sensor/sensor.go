package sensor

import (
	"fmt"

	"github.com/markusressel/temp2go/internal/sensors"
	"github.com/spf13/cobra"
)

var sensorId string

var Command = &cobra.Command{
	Use:              "sensor",
	Short:            "Sensor related commands",
	Long:             ``,
	TraverseChildren: true,
}

func init() {
	Command.PersistentFlags().StringVarP(
		&sensorId,
		"id", "i",
		"",
		"Sensor ID (name or number) as specified in the config",
	)
}

// findSensor resolves a sensor by its configured name or its numeric id
func findSensor(registry *sensors.Registry, id string) (sensors.SensorId, error) {
	if len(id) <= 0 {
		return 0, fmt.Errorf("missing sensor id, use --id")
	}
	if result, ok := registry.ParseId(id); ok {
		return result, nil
	}

	var options []string
	for _, sid := range registry.Ids() {
		name, _ := registry.Name(sid)
		options = append(options, name)
	}
	return 0, fmt.Errorf("no sensor with id found: %s, options: %s", id, options)
}
