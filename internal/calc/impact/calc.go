package impact

import (
	"fmt"
	"math"

	"LCA/internal/calc/decimal"
)

// DefaultMaxAmount bounds both amounts when no limit is configured.
const DefaultMaxAmount = 10000.0

const (
	LabelCO2    = "CO2 Emissions (kg)"
	LabelWater  = "Water Usage (m³)"
	LabelEnergy = "Energy Usage (MJ)"
	LabelAcid   = "Acidification (kg SO2 eq)"
)

type Input struct {
	Material         Material     `json:"material"`
	MaterialAmountKg float64      `json:"material_amount_kg"`
	EnergySource     EnergySource `json:"energy_source"`
	EnergyAmountKWh  float64      `json:"energy_amount_kwh"`
}

type Result struct {
	CO2Kg     float64 `json:"co2_kg"`
	WaterM3   float64 `json:"water_m3"`
	EnergyMJ  float64 `json:"energy_mj"`
	AcidKgSO2 float64 `json:"acid_kg_so2_eq"`
}

type Entry struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Entries lists the four results in report order.
func (r Result) Entries() []Entry {
	return []Entry{
		{Label: LabelCO2, Value: r.CO2Kg},
		{Label: LabelWater, Value: r.WaterM3},
		{Label: LabelEnergy, Value: r.EnergyMJ},
		{Label: LabelAcid, Value: r.AcidKgSO2},
	}
}

// Normalize trims and lower-cases both identifiers, so "Ethylene " and
// "ethylene" name the same material.
func (in Input) Normalize() Input {
	in.Material = Material(normalizeID(string(in.Material)))
	in.EnergySource = EnergySource(normalizeID(string(in.EnergySource)))
	return in
}

func Calculate(in Input) (Result, error) {
	return CalculateWithLimit(in, DefaultMaxAmount)
}

// CalculateWithLimit combines the material and energy vectors linearly and
// rounds every component to two decimals. Both amounts must lie in [0, limit].
func CalculateWithLimit(in Input, limit float64) (Result, error) {
	in = in.Normalize()
	if err := Validate(in, limit); err != nil {
		return Result{}, err
	}
	m := materialFactors[in.Material]
	e := energyFactors[in.EnergySource]
	return Result{
		CO2Kg:     Round2(in.MaterialAmountKg*m.CO2 + in.EnergyAmountKWh*e.CO2),
		WaterM3:   Round2(in.MaterialAmountKg*m.Water + in.EnergyAmountKWh*e.Water),
		EnergyMJ:  Round2(in.MaterialAmountKg*m.Energy + in.EnergyAmountKWh*e.Energy),
		AcidKgSO2: Round2(in.MaterialAmountKg*m.Acid + in.EnergyAmountKWh*e.Acid),
	}, nil
}

// Validate checks identifiers against the catalog and amounts against [0, limit].
func Validate(in Input, limit float64) error {
	if !in.Material.Valid() {
		return fmt.Errorf("%w: material %q", ErrInvalidIdentifier, in.Material)
	}
	if !in.EnergySource.Valid() {
		return fmt.Errorf("%w: energy source %q", ErrInvalidIdentifier, in.EnergySource)
	}
	if err := CheckAmount("material amount", in.MaterialAmountKg, limit); err != nil {
		return err
	}
	return CheckAmount("energy amount", in.EnergyAmountKWh, limit)
}

func CheckAmount(field string, v, limit float64) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return fmt.Errorf("%w: %s is not finite", ErrInvalidAmount, field)
	case v < 0:
		return fmt.Errorf("%w: %s %g is negative", ErrInvalidAmount, field, v)
	case v > limit:
		return fmt.Errorf("%w: %s %g exceeds %g", ErrInvalidAmount, field, v, limit)
	}
	return nil
}

// Round2 rounds half away from zero at the second decimal of the decimal
// value: 0.125 -> 0.13, 1.005 -> 1.01.
func Round2(v float64) float64 {
	return decimal.Round(v, 2)
}
