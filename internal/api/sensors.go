package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/temp2go/internal/sensors"
	"github.com/qdm12/reprint"
)

type SensorInfo struct {
	Id         sensors.SensorId   `json:"id"`
	Group      sensors.Group      `json:"group"`
	Descriptor sensors.Descriptor `json:"descriptor"`
}

type sensorHandler struct {
	registry *sensors.Registry
	observer Observer
}

func registerSensorEndpoints(rest *echo.Echo, h *sensorHandler) {
	group := rest.Group("/sensor")

	group.GET("/", h.getSensors)
	group.GET("/:"+urlParamId+"/", h.getSensor)
	group.GET("/:"+urlParamId+"/lookup/", h.lookup)
}

func (h *sensorHandler) info(id sensors.SensorId) SensorInfo {
	// the registry is shared, never hand out its tables
	descriptor := reprint.This(*h.registry.Resolve(id)).(sensors.Descriptor)
	return SensorInfo{
		Id:         id,
		Group:      h.registry.Group(id),
		Descriptor: descriptor,
	}
}

func (h *sensorHandler) getSensors(c echo.Context) error {
	var data []SensorInfo
	for _, id := range h.registry.Ids() {
		data = append(data, h.info(id))
	}
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func (h *sensorHandler) getSensor(c echo.Context) error {
	param := c.Param(urlParamId)

	id, exists := h.registry.ParseId(param)
	if !exists {
		return returnNotFound(c, param)
	}
	return c.JSONPretty(http.StatusOK, h.info(id), indentationChar)
}

func (h *sensorHandler) lookup(c echo.Context) error {
	param := c.Param(urlParamId)

	id, exists := h.registry.ParseId(param)
	if !exists {
		return returnNotFound(c, param)
	}

	rawDigit := c.QueryParam(queryParamDigit)
	if len(rawDigit) <= 0 {
		return returnBadRequest(c, errors.New("missing query parameter: "+queryParamDigit))
	}
	digit, err := strconv.Atoi(rawDigit)
	if err != nil {
		return returnBadRequest(c, fmt.Errorf("invalid digit '%s': %w", rawDigit, err))
	}

	reading := h.registry.Read(digit, id)
	if h.observer != nil {
		h.observer.Observe(reading)
	}
	return c.JSONPretty(http.StatusOK, reading, indentationChar)
}
