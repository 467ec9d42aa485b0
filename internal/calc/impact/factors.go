package impact

import (
	"fmt"
	"strings"
)

// Vector is a per-unit impact: kg CO2-eq, m³ water, MJ energy, kg SO2-eq.
type Vector struct {
	CO2    float64 `json:"co2"`
	Water  float64 `json:"water"`
	Energy float64 `json:"energy"`
	Acid   float64 `json:"acid"`
}

type Material string

const (
	Ethylene     Material = "ethylene"
	Ammonia      Material = "ammonia"
	Polyethylene Material = "polyethylene"
	SulfuricAcid Material = "sulfuric_acid"
	Hydrogen     Material = "hydrogen"
)

type EnergySource string

const (
	NaturalGas      EnergySource = "natural_gas"
	Coal            EnergySource = "coal"
	GridElectricity EnergySource = "grid_electricity"
	Renewables      EnergySource = "renewables"
	Solar           EnergySource = "solar"
	Wind            EnergySource = "wind"
)

// per kg of material
var materialFactors = map[Material]Vector{
	Ethylene:     {CO2: 1.75, Water: 1.2, Energy: 78.0, Acid: 0.015},
	Ammonia:      {CO2: 2.38, Water: 1.8, Energy: 38.0, Acid: 0.022},
	Polyethylene: {CO2: 2.1, Water: 0.8, Energy: 85.0, Acid: 0.012},
	SulfuricAcid: {CO2: 0.35, Water: 0.3, Energy: 2.5, Acid: 0.045},
	Hydrogen:     {CO2: 10.4, Water: 1.5, Energy: 55.0, Acid: 0.008},
}

// per kWh of energy
var energyFactors = map[EnergySource]Vector{
	NaturalGas:      {CO2: 0.49, Water: 0.002, Energy: 3.6, Acid: 0.0003},
	Coal:            {CO2: 1.02, Water: 0.004, Energy: 3.6, Acid: 0.0012},
	GridElectricity: {CO2: 0.68, Water: 0.003, Energy: 3.6, Acid: 0.0008},
	Renewables:      {CO2: 0.05, Water: 0.001, Energy: 3.6, Acid: 0.0001},
	Solar:           {CO2: 0.04, Water: 0.001, Energy: 3.6, Acid: 0.0001},
	Wind:            {CO2: 0.03, Water: 0.001, Energy: 3.6, Acid: 0.0001},
}

var materialOrder = []Material{Ethylene, Ammonia, Polyethylene, SulfuricAcid, Hydrogen}

var energyOrder = []EnergySource{NaturalGas, Coal, GridElectricity, Renewables, Solar, Wind}

// Materials returns the material catalog in display order.
func Materials() []Material {
	out := make([]Material, len(materialOrder))
	copy(out, materialOrder)
	return out
}

// EnergySources returns the energy catalog in display order.
func EnergySources() []EnergySource {
	out := make([]EnergySource, len(energyOrder))
	copy(out, energyOrder)
	return out
}

// MaterialFactor returns the per-kg vector for m.
func MaterialFactor(m Material) (Vector, bool) {
	v, ok := materialFactors[m]
	return v, ok
}

// EnergyFactor returns the per-kWh vector for e.
func EnergyFactor(e EnergySource) (Vector, bool) {
	v, ok := energyFactors[e]
	return v, ok
}

func (m Material) Valid() bool {
	_, ok := materialFactors[m]
	return ok
}

func (m Material) String() string { return string(m) }

// Label turns "sulfuric_acid" into "Sulfuric acid".
func (m Material) Label() string { return label(string(m)) }

func (e EnergySource) Valid() bool {
	_, ok := energyFactors[e]
	return ok
}

func (e EnergySource) String() string { return string(e) }

func (e EnergySource) Label() string { return label(string(e)) }

func ParseMaterial(s string) (Material, error) {
	m := Material(normalizeID(s))
	if !m.Valid() {
		return "", fmt.Errorf("%w: material %q", ErrInvalidIdentifier, s)
	}
	return m, nil
}

func ParseEnergySource(s string) (EnergySource, error) {
	e := EnergySource(normalizeID(s))
	if !e.Valid() {
		return "", fmt.Errorf("%w: energy source %q", ErrInvalidIdentifier, s)
	}
	return e, nil
}

func label(id string) string {
	s := strings.ReplaceAll(id, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func normalizeID(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
