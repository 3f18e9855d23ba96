package configuration

import (
	"reflect"

	"github.com/markusressel/temp2go/internal/sensors"
	"github.com/mitchellh/mapstructure"
)

// PolarityHookFunc returns a mapstructure decode hook that parses
// "ptc" / "ntc" strings into a sensors.Polarity.
func PolarityHookFunc() mapstructure.DecodeHookFuncType {
	polarityType := reflect.TypeOf(sensors.Polarity(0))

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != polarityType {
			return data, nil
		}
		s, ok := data.(string)
		if !ok {
			return data, nil
		}
		return sensors.ParsePolarity(s)
	}
}

// GroupHookFunc returns a mapstructure decode hook that parses
// "heatsink" / "motor" strings into a sensors.Group.
func GroupHookFunc() mapstructure.DecodeHookFuncType {
	groupType := reflect.TypeOf(sensors.Group(0))

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != groupType {
			return data, nil
		}
		s, ok := data.(string)
		if !ok {
			return data, nil
		}
		return sensors.ParseGroup(s)
	}
}
