package sensors

import (
	"math"

	"periph.io/x/conn/v3/physic"
)

// Reading is the result of a single lookup, as reported by the CLI, the
// REST API and the MQTT bridge.
type Reading struct {
	Sensor      string             `json:"sensor"`
	Digit       int                `json:"digit"`
	Celsius     float64            `json:"celsius"`
	Outcome     Outcome            `json:"outcome"`
	Temperature physic.Temperature `json:"-"`
	Formatted   string             `json:"formatted"`
}

// Read performs a lookup and wraps the result into a Reading.
func (r *Registry) Read(digit int, id SensorId) Reading {
	celsius, outcome := r.LookupWithOutcome(digit, id)
	temp := CelsiusToTemperature(celsius)
	name, _ := r.Name(id)
	return Reading{
		Sensor:      name,
		Digit:       digit,
		Celsius:     celsius,
		Outcome:     outcome,
		Temperature: temp,
		Formatted:   temp.String(),
	}
}

// Name returns the configured name of the sensor with the given id.
func (r *Registry) Name(id SensorId) (string, bool) {
	if !r.Valid(id) {
		return "", false
	}
	return r.Resolve(id).Name, true
}

// CelsiusToTemperature converts a lookup result into a physic.Temperature,
// rounded to the millikelvin.
func CelsiusToTemperature(celsius float64) physic.Temperature {
	if math.IsNaN(celsius) || math.IsInf(celsius, 0) {
		return physic.ZeroCelsius
	}
	milli := math.Round(celsius * 1000)
	return physic.ZeroCelsius + physic.Temperature(milli)*physic.MilliKelvin
}
