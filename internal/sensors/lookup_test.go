package sensors

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ntcSensor = Descriptor{
		Name:     "ntc",
		TempMin:  -50,
		TempMax:  150,
		Step:     10,
		Polarity: NegativeCoefficient,
		Table:    []uint16{200, 400, 600, 800, 1000},
	}
	ptcSensor = Descriptor{
		Name:     "ptc",
		TempMin:  0,
		TempMax:  100,
		Step:     5,
		Polarity: PositiveCoefficient,
		Table:    []uint16{3000, 2500, 2100, 1800, 1600, 1450},
	}
)

func createRegistry(t *testing.T) *Registry {
	r, err := NewRegistry(1, []Descriptor{ntcSensor}, []Descriptor{ptcSensor})
	require.NoError(t, err)
	return r
}

func TestLookup_NtcScenario(t *testing.T) {
	// GIVEN
	r := createRegistry(t)
	expectedInputOutput := map[int]float64{
		200:  -50,
		1000: -10,
		1100: 150,
	}

	for digit, expected := range expectedInputOutput {
		// WHEN
		result := r.Lookup(digit, 0)

		// THEN
		assert.Equal(t, expected, result, "digit %d", digit)
	}
}

func TestLookup_NtcInterpolation(t *testing.T) {
	// GIVEN
	r := createRegistry(t)

	// WHEN
	result, outcome := r.LookupWithOutcome(500, 0)

	// THEN
	// between 400 (-40°C) and 600 (-30°C)
	assert.InDelta(t, -35.0, result, 1e-9)
	assert.Equal(t, Interpolated, outcome)
}

func TestLookup_PtcInterpolation(t *testing.T) {
	// GIVEN
	r := createRegistry(t)

	// WHEN
	result, outcome := r.LookupWithOutcome(2300, 1)

	// THEN
	// between 2500 (5°C) and 2100 (10°C)
	assert.InDelta(t, 7.5, result, 1e-9)
	assert.Equal(t, Interpolated, outcome)
}

func TestLookup_PtcBoundaries(t *testing.T) {
	// GIVEN
	r := createRegistry(t)

	// WHEN
	atFirst, firstOutcome := r.LookupWithOutcome(3000, 1)
	beyondFirst, beyondFirstOutcome := r.LookupWithOutcome(3500, 1)
	beyondLast, beyondLastOutcome := r.LookupWithOutcome(1000, 1)

	// THEN
	assert.Equal(t, 0.0, atFirst)
	assert.Equal(t, ClampedMin, firstOutcome)
	assert.Equal(t, 0.0, beyondFirst)
	assert.Equal(t, ClampedMin, beyondFirstOutcome)
	assert.Equal(t, 100.0, beyondLast)
	assert.Equal(t, ClampedMax, beyondLastOutcome)
}

func TestLookup_ExactEntries(t *testing.T) {
	// GIVEN
	r := createRegistry(t)

	for _, id := range r.Ids() {
		sensor := r.Resolve(id)
		for i, entry := range sensor.Table {
			// WHEN
			result := r.Lookup(int(entry), id)

			// THEN
			expected := float64(int(sensor.TempMin) + int(sensor.Step)*i)
			assert.InDelta(t, expected, result, 1e-9, "sensor %s entry %d", sensor.Name, i)
		}
	}
}

func TestLookup_InvalidSensor(t *testing.T) {
	// GIVEN
	r := createRegistry(t)

	for _, digit := range []int{-1, 0, 200, 1000, math.MaxUint16 + 1} {
		for id := r.Count(); id < r.Count()+5; id++ {
			// WHEN
			result, outcome := r.LookupWithOutcome(digit, SensorId(id))

			// THEN
			assert.Equal(t, 0.0, result)
			assert.Equal(t, InvalidSensor, outcome)
		}
	}
}

func TestLookup_GapBetweenGroupsIsInvalid(t *testing.T) {
	// GIVEN
	r, err := NewRegistry(12, []Descriptor{ntcSensor}, []Descriptor{ptcSensor})
	require.NoError(t, err)

	for id := SensorId(1); id < 12; id++ {
		// WHEN
		result, outcome := r.LookupWithOutcome(500, id)

		// THEN
		assert.Equal(t, 0.0, result, "id %d", id)
		assert.Equal(t, InvalidSensor, outcome, "id %d", id)
		assert.Nil(t, r.Resolve(id), "id %d", id)
	}

	heatsink, heatsinkOutcome := r.LookupWithOutcome(500, 0)
	motor, motorOutcome := r.LookupWithOutcome(1450, 12)
	assert.InDelta(t, -35.0, heatsink, 1e-9)
	assert.Equal(t, Interpolated, heatsinkOutcome)
	assert.Equal(t, 25.0, motor)
	assert.Equal(t, Interpolated, motorOutcome)
}

func TestLookup_LastPossibleId(t *testing.T) {
	// GIVEN
	r, err := NewRegistry(255, nil, []Descriptor{ntcSensor})
	require.NoError(t, err)

	// WHEN
	result, outcome := r.LookupWithOutcome(500, 255)

	// THEN
	assert.Equal(t, 256, r.Count())
	assert.Equal(t, []SensorId{255}, r.Ids())
	assert.True(t, r.Valid(255))
	assert.False(t, r.Valid(254))
	assert.InDelta(t, -35.0, result, 1e-9)
	assert.Equal(t, Interpolated, outcome)
}

func TestLookup_RangeAndMonotonicity(t *testing.T) {
	// GIVEN
	r := createRegistry(t)

	for _, id := range r.Ids() {
		sensor := r.Resolve(id)
		ntc := sensor.Polarity == NegativeCoefficient

		previous := math.Inf(-1)
		for step := 0; step <= 4000; step++ {
			// walk the digits from cold to hot
			digit := step
			if !ntc {
				digit = 4000 - step
			}

			// WHEN
			result := r.Lookup(digit, id)

			// THEN
			assert.GreaterOrEqual(t, result, float64(sensor.TempMin))
			assert.LessOrEqual(t, result, float64(sensor.TempMax))
			assert.GreaterOrEqual(t, result, previous, "sensor %s digit %d", sensor.Name, digit)
			previous = result
		}
	}
}

func TestLookup_EmptyTableReturnsTempMax(t *testing.T) {
	// GIVEN
	r, err := NewRegistry(0, nil, []Descriptor{{TempMin: -10, TempMax: 90, Step: 10}})
	require.NoError(t, err)

	// WHEN
	result, outcome := r.LookupWithOutcome(100, 0)

	// THEN
	assert.Equal(t, 90.0, result)
	assert.Equal(t, ClampedMax, outcome)
}

func TestRead(t *testing.T) {
	// GIVEN
	r := createRegistry(t)

	// WHEN
	reading := r.Read(500, 0)

	// THEN
	assert.Equal(t, "ntc", reading.Sensor)
	assert.Equal(t, 500, reading.Digit)
	assert.InDelta(t, -35.0, reading.Celsius, 1e-9)
	assert.Equal(t, Interpolated, reading.Outcome)
	assert.Equal(t, reading.Temperature.String(), reading.Formatted)
	assert.Contains(t, reading.Formatted, "°C")
}

func TestCelsiusToTemperature(t *testing.T) {
	// WHEN
	result := CelsiusToTemperature(21.5)

	// THEN
	assert.InDelta(t, 21.5, result.Celsius(), 1e-9)
	assert.Contains(t, result.String(), "°C")
}

func BenchmarkLookup(b *testing.B) {
	r, _ := NewRegistry(1, []Descriptor{ntcSensor}, []Descriptor{ptcSensor})
	for i := 0; i < b.N; i++ {
		_ = r.Lookup(1750, 1)
	}
}
