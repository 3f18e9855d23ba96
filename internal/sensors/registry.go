package sensors

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/slices"
)

// Registry is the ordered set of sensor descriptors, heatsink group first.
// It is never modified after NewRegistry returns and can be shared freely.
type Registry struct {
	firstMotorSensor SensorId
	heatsinkCount    int
	descriptors      []Descriptor
	names            map[string]SensorId
}

// NewRegistry builds a registry from the heatsink and motor descriptors.
// Motor sensors are addressed starting at firstMotorSensor.
func NewRegistry(firstMotorSensor SensorId, heatsink []Descriptor, motor []Descriptor) (*Registry, error) {
	if int(firstMotorSensor) < len(heatsink) {
		return nil, fmt.Errorf("first motor sensor %d overlaps %d heatsink sensors", firstMotorSensor, len(heatsink))
	}
	// ids are uint8, so the last motor sensor can be 255 at most
	if int(firstMotorSensor)+len(motor) > math.MaxUint8+1 {
		return nil, fmt.Errorf("too many motor sensors: %d starting at %d", len(motor), firstMotorSensor)
	}

	r := &Registry{
		firstMotorSensor: firstMotorSensor,
		heatsinkCount:    len(heatsink),
		descriptors:      make([]Descriptor, 0, len(heatsink)+len(motor)),
		names:            map[string]SensorId{},
	}

	for i, d := range heatsink {
		if err := r.add(SensorId(i), d); err != nil {
			return nil, err
		}
	}
	for i, d := range motor {
		if err := r.add(firstMotorSensor+SensorId(i), d); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Registry) add(id SensorId, d Descriptor) error {
	if len(d.Name) > 0 {
		if _, exists := r.names[d.Name]; exists {
			return fmt.Errorf("duplicate sensor name: %s", d.Name)
		}
		r.names[d.Name] = id
	}
	d.Table = slices.Clone(d.Table)
	r.descriptors = append(r.descriptors, d)
	return nil
}

// FirstMotorSensor returns the identifier of the first motor sensor.
func (r *Registry) FirstMotorSensor() SensorId {
	return r.firstMotorSensor
}

// Count returns the end of the identifier space. Identifiers at or beyond
// this value are invalid. It can be 256 when the last motor sensor uses id 255.
func (r *Registry) Count() int {
	return int(r.firstMotorSensor) + len(r.descriptors) - r.heatsinkCount
}

// Valid reports whether id addresses a registered descriptor. Besides
// identifiers at or beyond Count it rejects the identifiers between the last
// heatsink sensor and the first motor sensor.
func (r *Registry) Valid(id SensorId) bool {
	if int(id) >= r.Count() {
		return false
	}
	return int(id) < r.heatsinkCount || id >= r.firstMotorSensor
}

// ParseId resolves a configured sensor name or a numeric sensor id.
func (r *Registry) ParseId(s string) (SensorId, bool) {
	if id, ok := r.names[s]; ok {
		return id, true
	}
	value, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, false
	}
	id := SensorId(value)
	return id, r.Valid(id)
}

func (r *Registry) index(id SensorId) int {
	if id >= r.firstMotorSensor {
		return int(id-r.firstMotorSensor) + r.heatsinkCount
	}
	return int(id)
}

// Resolve returns the descriptor for id, or nil if id is not Valid.
// The descriptor is shared with the registry and must not be modified,
// copy it before handing it out.
func (r *Registry) Resolve(id SensorId) *Descriptor {
	if !r.Valid(id) {
		return nil
	}
	return &r.descriptors[r.index(id)]
}

func (r *Registry) Group(id SensorId) Group {
	if id >= r.firstMotorSensor {
		return Motor
	}
	return Heatsink
}

func (r *Registry) IdByName(name string) (SensorId, bool) {
	id, ok := r.names[name]
	return id, ok
}

// Ids returns all valid identifiers in registry order.
func (r *Registry) Ids() []SensorId {
	result := make([]SensorId, 0, len(r.descriptors))
	for i := 0; i < r.heatsinkCount; i++ {
		result = append(result, SensorId(i))
	}
	for i := r.heatsinkCount; i < len(r.descriptors); i++ {
		result = append(result, r.firstMotorSensor+SensorId(i-r.heatsinkCount))
	}
	return result
}
