package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/temp2go/internal/sensors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	readings []sensors.Reading
}

func (o *recordingObserver) Observe(reading sensors.Reading) {
	o.readings = append(o.readings, reading)
}

func createService(t *testing.T) (*echo.Echo, *recordingObserver) {
	registry, err := sensors.NewRegistry(12,
		[]sensors.Descriptor{{
			Name: "heatsink", TempMin: -50, TempMax: 150, Step: 10,
			Polarity: sensors.NegativeCoefficient, Table: []uint16{200, 400, 600, 800, 1000},
		}},
		[]sensors.Descriptor{{
			Name: "motor", TempMin: 0, TempMax: 100, Step: 5,
			Polarity: sensors.PositiveCoefficient, Table: []uint16{900, 800, 700},
		}},
	)
	require.NoError(t, err)

	observer := &recordingObserver{}
	return CreateRestService(registry, observer, prometheus.NewRegistry()), observer
}

func serve(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAlive(t *testing.T) {
	// GIVEN
	e, _ := createService(t)

	// WHEN
	rec := serve(e, "/alive")

	// THEN
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetSensors(t *testing.T) {
	// GIVEN
	e, _ := createService(t)

	// WHEN
	rec := serve(e, "/sensor/")

	// THEN
	require.Equal(t, http.StatusOK, rec.Code)
	var result []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result, 2)
	assert.Equal(t, 0.0, result[0]["id"])
	assert.Equal(t, "heatsink", result[0]["group"])
	assert.Equal(t, 12.0, result[1]["id"])
	assert.Equal(t, "motor", result[1]["group"])

	descriptor := result[1]["descriptor"].(map[string]interface{})
	assert.Equal(t, "motor", descriptor["name"])
	assert.Equal(t, "ptc", descriptor["polarity"])
	assert.Equal(t, []interface{}{900.0, 800.0, 700.0}, descriptor["table"])
}

func TestGetSensorByNameAndId(t *testing.T) {
	// GIVEN
	e, _ := createService(t)

	for _, target := range []string{"/sensor/motor/", "/sensor/12"} {
		// WHEN
		rec := serve(e, target)

		// THEN
		require.Equal(t, http.StatusOK, rec.Code, target)
		var result SensorInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, sensors.SensorId(12), result.Id)
	}
}

func TestGetSensorNotFound(t *testing.T) {
	// GIVEN
	e, _ := createService(t)

	for _, target := range []string{"/sensor/unknown/", "/sensor/1/", "/sensor/5/", "/sensor/11/", "/sensor/13/", "/sensor/300/", "/sensor/5/lookup/?digit=500"} {
		// WHEN
		rec := serve(e, target)

		// THEN
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
	}
}

func TestLookup(t *testing.T) {
	// GIVEN
	e, observer := createService(t)

	// WHEN
	rec := serve(e, "/sensor/heatsink/lookup/?digit=500")

	// THEN
	require.Equal(t, http.StatusOK, rec.Code)
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "heatsink", result["sensor"])
	assert.Equal(t, 500.0, result["digit"])
	assert.InDelta(t, -35.0, result["celsius"], 1e-9)
	assert.Equal(t, "interpolated", result["outcome"])

	require.Len(t, observer.readings, 1)
	assert.Equal(t, sensors.Interpolated, observer.readings[0].Outcome)
}

func TestLookupClamped(t *testing.T) {
	// GIVEN
	e, _ := createService(t)

	// WHEN
	rec := serve(e, "/sensor/12/lookup?digit=500")

	// THEN
	require.Equal(t, http.StatusOK, rec.Code)
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 100.0, result["celsius"])
	assert.Equal(t, "clamped_max", result["outcome"])
}

func TestLookupBadDigit(t *testing.T) {
	// GIVEN
	e, observer := createService(t)

	for _, target := range []string{"/sensor/heatsink/lookup/", "/sensor/heatsink/lookup/?digit=abc"} {
		// WHEN
		rec := serve(e, target)

		// THEN
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
	assert.Empty(t, observer.readings)
}

func TestSensorInfoIsDetachedFromRegistry(t *testing.T) {
	// GIVEN
	registry, err := sensors.NewRegistry(0, nil, []sensors.Descriptor{{
		Name: "motor", TempMin: 0, TempMax: 100, Step: 5,
		Polarity: sensors.PositiveCoefficient, Table: []uint16{900, 800, 700},
	}})
	require.NoError(t, err)
	handler := &sensorHandler{registry: registry}

	// WHEN
	info := handler.info(0)
	info.Descriptor.Table[0] = 1
	info.Descriptor.Name = "changed"

	// THEN
	assert.Equal(t, uint16(900), registry.Resolve(0).Table[0])
	assert.Equal(t, "motor", registry.Resolve(0).Name)
	assert.Equal(t, 0.0, registry.Lookup(950, 0))
}
