package statistics

import (
	"github.com/markusressel/temp2go/internal/sensors"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystemSensor = "sensor"

// RegistryCollector exposes the calibration metadata of every registered sensor.
type RegistryCollector struct {
	registry  *sensors.Registry
	tableSize *prometheus.Desc
	tempMin   *prometheus.Desc
	tempMax   *prometheus.Desc
}

func NewRegistryCollector(registry *sensors.Registry) *RegistryCollector {
	labels := []string{"id", "sensor", "group", "polarity"}
	return &RegistryCollector{
		registry: registry,
		tableSize: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "table_size"),
			"Number of entries in the calibration table of the sensor",
			labels, nil,
		),
		tempMin: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "temp_min_celsius"),
			"Lower bound of the calibrated range of the sensor",
			labels, nil,
		),
		tempMax: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "temp_max_celsius"),
			"Upper bound of the calibrated range of the sensor",
			labels, nil,
		),
	}
}

func (collector *RegistryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.tableSize
	ch <- collector.tempMin
	ch <- collector.tempMax
}

// Collect implements required collect function for all prometheus collectors
func (collector *RegistryCollector) Collect(ch chan<- prometheus.Metric) {
	for _, id := range collector.registry.Ids() {
		sensor := collector.registry.Resolve(id)
		labels := []string{
			sensorIdLabel(id),
			sensor.Name,
			collector.registry.Group(id).String(),
			sensor.Polarity.String(),
		}
		ch <- prometheus.MustNewConstMetric(collector.tableSize, prometheus.GaugeValue, float64(sensor.TableSize()), labels...)
		ch <- prometheus.MustNewConstMetric(collector.tempMin, prometheus.GaugeValue, float64(sensor.TempMin), labels...)
		ch <- prometheus.MustNewConstMetric(collector.tempMax, prometheus.GaugeValue, float64(sensor.TempMax), labels...)
	}
}
