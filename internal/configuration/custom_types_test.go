package configuration

import (
	"reflect"
	"testing"

	"github.com/markusressel/temp2go/internal/sensors"
	"github.com/mitchellh/mapstructure"
)

func TestPolarityAndGroupHookFunc(t *testing.T) {
	type TestConfig struct {
		Polarity sensors.Polarity  `mapstructure:"polarity"`
		Optional *sensors.Polarity `mapstructure:"optional"`
		Group    sensors.Group     `mapstructure:"group"`
	}

	tests := []struct {
		name             string
		inputMap         map[string]interface{}
		expectedPolarity sensors.Polarity
		expectedOptional *sensors.Polarity
		expectedGroup    sensors.Group
		expectError      bool
	}{
		{
			name:             "lower case",
			inputMap:         map[string]interface{}{"polarity": "ntc", "group": "motor"},
			expectedPolarity: sensors.NegativeCoefficient,
			expectedGroup:    sensors.Motor,
		},
		{
			name:             "upper case and pointer",
			inputMap:         map[string]interface{}{"polarity": "PTC", "optional": "NTC", "group": "Heatsink"},
			expectedPolarity: sensors.PositiveCoefficient,
			expectedOptional: func() *sensors.Polarity { p := sensors.NegativeCoefficient; return &p }(),
			expectedGroup:    sensors.Heatsink,
		},
		{
			name:        "unknown polarity",
			inputMap:    map[string]interface{}{"polarity": "xtc"},
			expectError: true,
		},
		{
			name:        "unknown group",
			inputMap:    map[string]interface{}{"group": "fan"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg TestConfig

			decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
				DecodeHook: mapstructure.ComposeDecodeHookFunc(PolarityHookFunc(), GroupHookFunc()),
				Result:     &cfg,
			})
			if err != nil {
				t.Fatalf("failed to create decoder: %v", err)
			}

			err = decoder.Decode(tt.inputMap)
			if tt.expectError {
				if err == nil {
					t.Fatalf("expected decoding to fail")
				}
				return
			}
			if err != nil {
				t.Fatalf("decoding failed: %v", err)
			}

			if cfg.Polarity != tt.expectedPolarity {
				t.Errorf("Polarity = %v, want %v", cfg.Polarity, tt.expectedPolarity)
			}
			if !reflect.DeepEqual(cfg.Optional, tt.expectedOptional) {
				t.Errorf("Optional = %v, want %v", cfg.Optional, tt.expectedOptional)
			}
			if cfg.Group != tt.expectedGroup {
				t.Errorf("Group = %v, want %v", cfg.Group, tt.expectedGroup)
			}
		})
	}
}

func TestHookSkipsUnrelatedTypes(t *testing.T) {
	hook := PolarityHookFunc()

	f := reflect.TypeOf("string")
	tTarget := reflect.TypeOf(123)
	data := "some string"

	res, err := hook(f, tTarget, data)

	if err != nil {
		t.Errorf("Hook returned error on unrelated type: %v", err)
	}
	if res != data {
		t.Errorf("Hook modified data for unrelated type. Got %v, want %v", res, data)
	}
}
