package reporting

// The database stores CO2e values in tonnes. Conversion to kilograms happens
// in exactly one place so the scale factor cannot drift between call sites.

const kilogramsPerTonne = 1000

type MassUnit string

const (
	Tonnes    MassUnit = "tCO2e"
	Kilograms MassUnit = "kgCO2e"
)

// Mass is a unit-tagged CO2e quantity. Carrying the unit alongside the value
// makes the conversion direction a type-level fact instead of a convention.
type Mass struct {
	Value float64  `json:"value"`
	Unit  MassUnit `json:"unit"`
}

func TonnesCO2e(v float64) Mass {
	return Mass{Value: v, Unit: Tonnes}
}

func KilogramsCO2e(v float64) Mass {
	return Mass{Value: v, Unit: Kilograms}
}

func (m Mass) Kilograms() float64 {
	if m.Unit == Kilograms {
		return m.Value
	}
	return ToKilograms(m.Value)
}

func (m Mass) Tonnes() float64 {
	if m.Unit == Tonnes {
		return m.Value
	}
	return m.Value / kilogramsPerTonne
}

// ToKilograms converts a tonnes CO2e value to kilograms.
func ToKilograms(tonnes float64) float64 {
	return tonnes * kilogramsPerTonne
}
