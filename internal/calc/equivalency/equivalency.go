// Package equivalency translates kg CO2-eq into everyday quantities for the report.
package equivalency

import (
	"fmt"
	"math"

	"LCA/internal/calc/decimal"
)

// EPA greenhouse gas equivalency divisors (2024 edition), kg CO2-eq per unit.
const (
	MilesDrivenFactor      = 0.192
	SmartphoneChargeFactor = 0.00822
	TreeSeedlingFactor     = 60.0
)

// MinThresholdKg is the smallest input that produces equivalencies.
const MinThresholdKg = 1.0

type constError string

func (e constError) Error() string { return string(e) }

var (
	ErrNegativeValue       = constError("negative carbon value")
	ErrCalculationOverflow = constError("calculation overflow")
)

type Result struct {
	Label          string
	Value          float64
	FormattedValue string
}

type Output struct {
	InputKg     float64
	Results     []Result
	DisplayText string
	IsEmpty     bool
}

// Calculate returns miles driven, smartphones charged and tree seedlings
// equivalent to kg of CO2-eq. Inputs below MinThresholdKg yield an empty output.
func Calculate(kg float64) (Output, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return Output{IsEmpty: true}, ErrCalculationOverflow
	}
	if kg < 0 {
		return Output{IsEmpty: true}, ErrNegativeValue
	}
	if kg < MinThresholdKg {
		return Output{InputKg: kg, IsEmpty: true}, nil
	}

	miles := kg / MilesDrivenFactor
	phones := kg / SmartphoneChargeFactor
	trees := kg / TreeSeedlingFactor

	results := []Result{
		{Label: "miles driven", Value: miles, FormattedValue: formatValue(miles)},
		{Label: "smartphones charged", Value: phones, FormattedValue: formatValue(phones)},
		{Label: "tree seedlings grown for 10 years", Value: trees, FormattedValue: formatValue(trees)},
	}
	return Output{
		InputKg: kg,
		Results: results,
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones",
			results[0].FormattedValue, results[1].FormattedValue),
	}, nil
}

func formatValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(decimal.Round(v, 0)))
}
