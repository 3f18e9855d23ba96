package statistics

import (
	"github.com/markusressel/temp2go/internal/sensors"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystemLookup = "lookup"

// LookupCounter counts the lookups done on behalf of the API and the MQTT bridge,
// partitioned by sensor and outcome.
type LookupCounter struct {
	total *prometheus.CounterVec
}

func NewLookupCounter() *LookupCounter {
	return &LookupCounter{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemLookup,
			Name:      "total",
			Help:      "Number of digit to temperature lookups",
		}, []string{"sensor", "outcome"}),
	}
}

func (c *LookupCounter) Observe(reading sensors.Reading) {
	c.total.WithLabelValues(reading.Sensor, reading.Outcome.String()).Inc()
}

func (c *LookupCounter) Describe(ch chan<- *prometheus.Desc) {
	c.total.Describe(ch)
}

func (c *LookupCounter) Collect(ch chan<- prometheus.Metric) {
	c.total.Collect(ch)
}
