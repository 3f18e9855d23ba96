package configuration

import (
	"fmt"

	"github.com/markusressel/temp2go/internal/ui"
)

func Validate() error {
	return validateConfig(&CurrentConfig)
}

func validateConfig(config *Configuration) error {
	err := validateSensors(config)
	if err != nil {
		return err
	}

	_, err = BuildRegistry(config)
	if err != nil {
		return err
	}

	err = validateMqtt(config)
	return err
}

func validateSensors(config *Configuration) error {
	if len(config.Sensors) <= 0 {
		ui.Warning("No sensors configured")
	}

	ids := map[string]bool{}
	for _, sensorConfig := range config.Sensors {
		if len(sensorConfig.ID) <= 0 {
			return fmt.Errorf("sensor id must not be empty")
		}
		if ids[sensorConfig.ID] {
			return fmt.Errorf("duplicate sensor id detected: %s", sensorConfig.ID)
		}
		ids[sensorConfig.ID] = true

		descriptor, _, err := sensorConfig.Descriptor()
		if err != nil {
			return fmt.Errorf("sensor %s: %w", sensorConfig.ID, err)
		}

		if err := descriptor.Validate(); err != nil {
			return fmt.Errorf("sensor %s: %w", sensorConfig.ID, err)
		}

		expectedMax := int(descriptor.TempMin) + int(descriptor.Step)*(descriptor.TableSize()-1)
		if expectedMax > int(descriptor.TempMax) {
			ui.Warning("Sensor %s: table reaches %d°C, which is above tempMax %d°C", sensorConfig.ID, expectedMax, descriptor.TempMax)
		}
	}

	return nil
}

func validateMqtt(config *Configuration) error {
	mqttConfig := config.Mqtt
	if !mqttConfig.Enabled {
		return nil
	}
	if len(mqttConfig.Server) <= 0 {
		return fmt.Errorf("mqtt: server must not be empty")
	}
	if len(mqttConfig.TopicPrefix) <= 0 {
		return fmt.Errorf("mqtt: topicPrefix must not be empty")
	}
	if mqttConfig.Qos > 2 {
		return fmt.Errorf("mqtt: invalid qos %d, must be one of: 0 | 1 | 2", mqttConfig.Qos)
	}
	return nil
}
