package configuration

import (
	"fmt"

	"github.com/markusressel/temp2go/internal/sensors"
)

type SensorConfig struct {
	ID string `json:"id"`
	// Variant references a known sensor from the catalog, its metadata is
	// used for every field that is not set explicitly
	Variant  string            `json:"variant,omitempty"`
	Group    *sensors.Group    `json:"group,omitempty"`
	Polarity *sensors.Polarity `json:"polarity,omitempty"`
	TempMin  *int16            `json:"tempMin,omitempty"`
	TempMax  *int16            `json:"tempMax,omitempty"`
	Step     *uint8            `json:"step,omitempty"`
	Table    []uint16          `json:"table"`
}

// Descriptor merges the variant metadata with the explicit fields of this config.
func (c SensorConfig) Descriptor() (sensors.Descriptor, sensors.Group, error) {
	var variant sensors.Variant
	if len(c.Variant) > 0 {
		v, err := sensors.FindVariant(c.Variant)
		if err != nil {
			return sensors.Descriptor{}, 0, err
		}
		variant = v
	} else {
		var missing []string
		if c.Group == nil {
			missing = append(missing, "group")
		}
		if c.Polarity == nil {
			missing = append(missing, "polarity")
		}
		if c.TempMin == nil {
			missing = append(missing, "tempMin")
		}
		if c.TempMax == nil {
			missing = append(missing, "tempMax")
		}
		if c.Step == nil {
			missing = append(missing, "step")
		}
		if len(missing) > 0 {
			return sensors.Descriptor{}, 0, fmt.Errorf("missing %v, either set them or use a variant", missing)
		}
	}

	if c.Group != nil {
		variant.Group = *c.Group
	}
	if c.Polarity != nil {
		variant.Polarity = *c.Polarity
	}
	if c.TempMin != nil {
		variant.TempMin = *c.TempMin
	}
	if c.TempMax != nil {
		variant.TempMax = *c.TempMax
	}
	if c.Step != nil {
		variant.Step = *c.Step
	}

	return variant.Descriptor(c.ID, c.Table), variant.Group, nil
}

// BuildRegistry creates the sensor registry described by the given configuration.
// Sensors keep their configuration order within their group.
func BuildRegistry(config *Configuration) (*sensors.Registry, error) {
	var heatsink, motor []sensors.Descriptor
	for _, sensorConfig := range config.Sensors {
		descriptor, group, err := sensorConfig.Descriptor()
		if err != nil {
			return nil, fmt.Errorf("sensor %s: %w", sensorConfig.ID, err)
		}
		if group == sensors.Motor {
			motor = append(motor, descriptor)
		} else {
			heatsink = append(heatsink, descriptor)
		}
	}

	firstMotorSensor := len(heatsink)
	if config.FirstMotorSensor != nil {
		firstMotorSensor = *config.FirstMotorSensor
	}
	if firstMotorSensor < 0 || firstMotorSensor > 255 {
		return nil, fmt.Errorf("firstMotorSensor %d is out of range, must be in [0..255]", firstMotorSensor)
	}

	return sensors.NewRegistry(sensors.SensorId(firstMotorSensor), heatsink, motor)
}
