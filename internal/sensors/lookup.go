package sensors

type Outcome int

const (
	// Interpolated means the digit was inside the calibrated table range
	Interpolated Outcome = iota
	// ClampedMin means the digit matched the first table entry or lies beyond it
	ClampedMin
	// ClampedMax means the digit lies beyond the last table entry
	ClampedMax
	// InvalidSensor means the sensor id is outside of the registry
	InvalidSensor
)

func (o Outcome) String() string {
	switch o {
	case Interpolated:
		return "interpolated"
	case ClampedMin:
		return "clamped_min"
	case ClampedMax:
		return "clamped_max"
	case InvalidSensor:
		return "invalid_sensor"
	}
	return "unknown"
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Lookup converts a raw ADC digit of the given sensor into degrees Celsius.
//
// Unknown sensors yield 0, digits outside of the calibrated range are clamped
// to TempMin or TempMax. Use LookupWithOutcome to tell these cases apart from
// a real reading.
func (r *Registry) Lookup(digit int, id SensorId) float64 {
	value, _ := r.LookupWithOutcome(digit, id)
	return value
}

// LookupWithOutcome works like Lookup and additionally reports how the
// value was obtained.
func (r *Registry) LookupWithOutcome(digit int, id SensorId) (float64, Outcome) {
	sensor := r.Resolve(id)
	if sensor == nil {
		return 0, InvalidSensor
	}
	ntc := sensor.Polarity == NegativeCoefficient
	var last int

	for i, entry := range sensor.Table {
		cur := int(entry)
		if (ntc && cur >= digit) || (!ntc && cur <= digit) {
			if i == 0 {
				return float64(sensor.TempMin), ClampedMin
			}

			var a, b float64
			if ntc {
				a = float64(cur - digit)
				b = float64(cur - last)
			} else {
				a = float64(digit - cur)
				b = float64(last - cur)
			}
			// b is zero only for tables that fail Descriptor.Validate
			c := float64(sensor.Step) * a / b
			d := float64(int(sensor.Step)*i + int(sensor.TempMin))
			return d - c, Interpolated
		}
		last = cur
	}

	return float64(sensor.TempMax), ClampedMax
}
