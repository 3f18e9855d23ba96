package configuration

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/markusressel/temp2go/internal/sensors"
	"github.com/markusressel/temp2go/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Configuration struct {
	// FirstMotorSensor is the sensor id of the first motor sensor,
	// defaults to the number of heatsink sensors
	FirstMotorSensor *int `json:"firstMotorSensor"`

	Sensors []SensorConfig `json:"sensors"`

	Api        ApiConfig        `json:"api"`
	Statistics StatisticsConfig `json:"statistics"`
	Profiling  ProfilingConfig  `json:"profiling"`
	Mqtt       MqttConfig       `json:"mqtt"`
}

var CurrentConfig Configuration

//go:embed temp2go.example.yaml
var ExampleConfig []byte

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("temp2go")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/temp2go/")
	}

	viper.SetEnvPrefix("temp2go")
	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("sensors", []SensorConfig{})

	viper.SetDefault("api.enabled", false)
	viper.SetDefault("api.host", "localhost")
	viper.SetDefault("api.port", 9001)

	viper.SetDefault("statistics.enabled", false)
	viper.SetDefault("statistics.port", 9000)

	viper.SetDefault("profiling.enabled", false)
	viper.SetDefault("profiling.host", "localhost")
	viper.SetDefault("profiling.port", 6060)

	viper.SetDefault("mqtt.enabled", false)
	viper.SetDefault("mqtt.server", "tcp://localhost:1883")
	viper.SetDefault("mqtt.clientId", "temp2go")
	viper.SetDefault("mqtt.topicPrefix", "temp2go")
	viper.SetDefault("mqtt.qos", 0)
}

// DetectConfigFile reads the config file and returns its path.
// Exits the program if no config file can be read.
func DetectConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		// config file is required, so we fail here
		ui.FatalWithoutStacktrace("Error reading config file, %s", err)
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed()
}

// LoadConfig decodes the configuration read by viper into CurrentConfig.
func LoadConfig() {
	config, err := decodeConfig(viper.GetViper())
	if err != nil {
		ui.FatalWithoutStacktrace("unable to decode into struct, %v", err)
	}
	CurrentConfig = config
}

func decodeConfig(v *viper.Viper) (Configuration, error) {
	var config Configuration
	err := v.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			PolarityHookFunc(),
			GroupHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return config, fmt.Errorf("decoding configuration: %w", err)
	}
	return config, nil
}

// LoadRegistry reads and validates the configuration file and builds the
// sensor registry from it.
func LoadRegistry() (*sensors.Registry, error) {
	configPath := DetectConfigFile()
	ui.Debug("Using configuration file at: %s", configPath)
	LoadConfig()

	if err := Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", configPath, err)
	}

	return BuildRegistry(&CurrentConfig)
}
