package sensors

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Variant holds the metadata of a known sensor hardware variant. The
// calibration table depends on the measurement circuit and is supplied by
// the configuration.
type Variant struct {
	Name        string
	Description string
	Group       Group
	TempMin     int16
	TempMax     int16
	Step        uint8
	Polarity    Polarity
}

// Descriptor combines the variant metadata with a calibration table.
func (v Variant) Descriptor(name string, table []uint16) Descriptor {
	if len(name) <= 0 {
		name = v.Name
	}
	return Descriptor{
		Name:     name,
		TempMin:  v.TempMin,
		TempMax:  v.TempMax,
		Step:     v.Step,
		Polarity: v.Polarity,
		Table:    table,
	}
}

// Catalog lists the supported variants in firmware order, heatsink sensors first.
var Catalog = []Variant{
	{"jcurve", "Temp sensor with JCurve", Heatsink, -25, 105, 5, NegativeCoefficient},
	{"semikron", "Temp sensor in Semikron Skiip82 module", Heatsink, 0, 100, 5, PositiveCoefficient},
	{"mbb600", "Temp sensor in MBB600 IGBT module", Heatsink, -5, 100, 5, PositiveCoefficient},
	{"kty81hs", "KTY81-121 heatsink sensor", Heatsink, -50, 150, 10, NegativeCoefficient},
	{"pt1000", "PT1000", Heatsink, -50, 150, 10, PositiveCoefficient},
	{"ntck45", "NTC K45 2k2 with parallel 2k", Heatsink, -50, 150, 5, NegativeCoefficient},
	{"leafhs", "Nissan Leaf Gen 2 inverter heatsink", Heatsink, -10, 160, 10, NegativeCoefficient},
	{"fs800", "Temp sensor in FS800 IGBT module", Heatsink, -25, 105, 5, PositiveCoefficient},

	{"kty83", "KTY83-110", Motor, -50, 170, 10, PositiveCoefficient},
	{"kty84", "KTY84-130", Motor, -40, 300, 10, PositiveCoefficient},
	{"leaf", "Nissan Leaf motor", Motor, -20, 150, 10, NegativeCoefficient},
	{"kty81m", "KTY81 motor sensor", Motor, -50, 150, 10, PositiveCoefficient},
	{"toyota", "Toyota motor", Motor, -20, 200, 5, PositiveCoefficient},
	{"tesla100k", "Tesla rear motor", Motor, -20, 200, 5, PositiveCoefficient},
	{"tesla52k", "Tesla rear heatsink (52k)", Motor, 0, 100, 10, PositiveCoefficient},
	{"teslafluid", "Tesla LDU coolant fluid", Motor, 5, 100, 5, PositiveCoefficient},
	{"tesla10k", "Tesla rear heatsink (10k)", Motor, -20, 190, 5, PositiveCoefficient},
	{"outlanderfront", "Outlander front motor (47k, 1.2k series, 2.2k R2)", Motor, -40, 300, 10, NegativeCoefficient},
	{"epcosb57861", "EPCOS B57861-S 103-F40", Motor, -50, 150, 10, NegativeCoefficient},
	{"toyotagen2", "Toyota motor (Gen2 controller)", Motor, -20, 200, 5, NegativeCoefficient},
}

var catalogIndex = func() map[string]int {
	result := make(map[string]int, len(Catalog))
	for i, v := range Catalog {
		result[v.Name] = i
	}
	return result
}()

func FindVariant(name string) (Variant, error) {
	idx, ok := catalogIndex[name]
	if !ok {
		return Variant{}, fmt.Errorf("unknown sensor variant '%s', options: %v", name, VariantNames())
	}
	return Catalog[idx], nil
}

func VariantNames() []string {
	result := make([]string, 0, len(Catalog))
	for _, v := range Catalog {
		result = append(result, v.Name)
	}
	slices.Sort(result)
	return result
}
