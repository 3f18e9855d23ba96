package sensors

import (
	"errors"
	"fmt"
	"strings"
)

// SensorId identifies a sensor hardware variant. Identifiers below the number of
// heatsink sensors address the heatsink group, identifiers at or above the
// registry's first motor sensor address the motor group.
type SensorId uint8

type Polarity int

const (
	// PositiveCoefficient table values decrease as the temperature rises
	PositiveCoefficient Polarity = iota
	// NegativeCoefficient table values increase as the temperature rises
	NegativeCoefficient
)

func (p Polarity) String() string {
	switch p {
	case PositiveCoefficient:
		return "ptc"
	case NegativeCoefficient:
		return "ntc"
	}
	return fmt.Sprintf("Polarity(%d)", int(p))
}

func ParsePolarity(s string) (Polarity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ptc", "positive":
		return PositiveCoefficient, nil
	case "ntc", "negative":
		return NegativeCoefficient, nil
	}
	return 0, fmt.Errorf("unknown polarity '%s', use one of: ptc | ntc", s)
}

func (p Polarity) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Polarity) UnmarshalText(text []byte) error {
	parsed, err := ParsePolarity(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

type Group int

const (
	Heatsink Group = iota
	Motor
)

func (g Group) String() string {
	switch g {
	case Heatsink:
		return "heatsink"
	case Motor:
		return "motor"
	}
	return fmt.Sprintf("Group(%d)", int(g))
}

func ParseGroup(s string) (Group, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "heatsink", "hs":
		return Heatsink, nil
	case "motor":
		return Motor, nil
	}
	return 0, fmt.Errorf("unknown sensor group '%s', use one of: heatsink | motor", s)
}

func (g Group) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *Group) UnmarshalText(text []byte) error {
	parsed, err := ParseGroup(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// MaxTableSize is the largest calibration table a descriptor can hold.
const MaxTableSize = 255

// Descriptor binds a calibration table to the metadata needed to interpret it.
// Table[i] is the reading at TempMin + i*Step.
type Descriptor struct {
	Name     string   `json:"name"`
	TempMin  int16    `json:"tempMin"`
	TempMax  int16    `json:"tempMax"`
	Step     uint8    `json:"step"`
	Polarity Polarity `json:"polarity"`
	Table    []uint16 `json:"table"`
}

func (d *Descriptor) TableSize() int {
	return len(d.Table)
}

var (
	ErrEmptyTable    = errors.New("calibration table is empty")
	ErrNotMonotonic  = errors.New("calibration table is not strictly monotonic")
	ErrInvalidRange  = errors.New("tempMin must be lower than tempMax")
	ErrInvalidStep   = errors.New("step must be greater than zero")
	ErrTableTooLarge = fmt.Errorf("calibration table exceeds %d entries", MaxTableSize)
)

// Validate checks the calibration data preconditions that Lookup relies on
// without checking them itself. Lookup never calls this.
func (d *Descriptor) Validate() error {
	if len(d.Table) == 0 {
		return ErrEmptyTable
	}
	if len(d.Table) > MaxTableSize {
		return ErrTableTooLarge
	}
	if d.TempMin >= d.TempMax {
		return ErrInvalidRange
	}
	if d.Step == 0 {
		return ErrInvalidStep
	}

	for i := 1; i < len(d.Table); i++ {
		last := d.Table[i-1]
		cur := d.Table[i]
		if (d.Polarity == NegativeCoefficient && cur <= last) ||
			(d.Polarity == PositiveCoefficient && cur >= last) {
			return fmt.Errorf("%w: entry %d (%d) after %d for %s sensor", ErrNotMonotonic, i, cur, last, d.Polarity)
		}
	}

	return nil
}
