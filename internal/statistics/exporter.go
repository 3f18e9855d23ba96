package statistics

import (
	"strconv"

	"github.com/markusressel/temp2go/internal/sensors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "temp2go"
)

func Register(collector prometheus.Collector) {
	prometheus.MustRegister(collector)
}

func sensorIdLabel(id sensors.SensorId) string {
	return strconv.Itoa(int(id))
}
