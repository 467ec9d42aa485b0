package impact

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want Result
	}{
		{
			name: "ethylene with natural gas",
			in:   Input{Material: Ethylene, MaterialAmountKg: 100, EnergySource: NaturalGas, EnergyAmountKWh: 50},
			want: Result{CO2Kg: 199.50, WaterM3: 120.10, EnergyMJ: 7980.00, AcidKgSO2: 1.52},
		},
		{
			name: "wind energy only",
			in:   Input{Material: Hydrogen, MaterialAmountKg: 0, EnergySource: Wind, EnergyAmountKWh: 200},
			want: Result{CO2Kg: 6.00, WaterM3: 0.20, EnergyMJ: 720.00, AcidKgSO2: 0.02},
		},
		{
			name: "upper bound on both amounts",
			in:   Input{Material: Hydrogen, MaterialAmountKg: 10000, EnergySource: Coal, EnergyAmountKWh: 10000},
			want: Result{CO2Kg: 114200.00, WaterM3: 15040.00, EnergyMJ: 586000.00, AcidKgSO2: 92.00},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.CO2Kg, got.CO2Kg, 1e-9)
			assert.InDelta(t, tt.want.WaterM3, got.WaterM3, 1e-9)
			assert.InDelta(t, tt.want.EnergyMJ, got.EnergyMJ, 1e-9)
			assert.InDelta(t, tt.want.AcidKgSO2, got.AcidKgSO2, 1e-9)
		})
	}
}

func TestCalculate_LinearFormulaForEveryPair(t *testing.T) {
	const matKg, energyKWh = 123.4, 567.8
	for _, m := range Materials() {
		for _, e := range EnergySources() {
			mv, _ := MaterialFactor(m)
			ev, _ := EnergyFactor(e)
			got, err := Calculate(Input{Material: m, MaterialAmountKg: matKg, EnergySource: e, EnergyAmountKWh: energyKWh})
			require.NoError(t, err, "%s/%s", m, e)

			assert.InDelta(t, matKg*mv.CO2+energyKWh*ev.CO2, got.CO2Kg, 0.005+1e-9, "%s/%s co2", m, e)
			assert.InDelta(t, matKg*mv.Water+energyKWh*ev.Water, got.WaterM3, 0.005+1e-9, "%s/%s water", m, e)
			assert.InDelta(t, matKg*mv.Energy+energyKWh*ev.Energy, got.EnergyMJ, 0.005+1e-9, "%s/%s energy", m, e)
			assert.InDelta(t, matKg*mv.Acid+energyKWh*ev.Acid, got.AcidKgSO2, 0.005+1e-9, "%s/%s acid", m, e)

			for _, entry := range got.Entries() {
				assert.Equal(t, entry.Value, Round2(entry.Value), "%s not rounded to 2 decimals", entry.Label)
			}
		}
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	in := Input{Material: Ammonia, MaterialAmountKg: 3.333, EnergySource: GridElectricity, EnergyAmountKWh: 77.7}
	first, err := Calculate(in)
	require.NoError(t, err)
	second, err := Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCalculate_ZeroAmounts(t *testing.T) {
	got, err := Calculate(Input{Material: Polyethylene, EnergySource: Solar})
	require.NoError(t, err)
	assert.Equal(t, Result{}, got)
}

func TestCalculate_LinearInMaterialAmount(t *testing.T) {
	const base, energyKWh = 40.0, 250.0
	materialOnly, err := Calculate(Input{Material: SulfuricAcid, MaterialAmountKg: base, EnergySource: Renewables})
	require.NoError(t, err)
	energyOnly, err := Calculate(Input{Material: SulfuricAcid, EnergySource: Renewables, EnergyAmountKWh: energyKWh})
	require.NoError(t, err)

	for _, k := range []float64{0, 0.5, 1, 2, 10, 250} {
		got, err := Calculate(Input{Material: SulfuricAcid, MaterialAmountKg: k * base, EnergySource: Renewables, EnergyAmountKWh: energyKWh})
		require.NoError(t, err)
		// each rounded term is off by at most half a cent
		tol := 0.005*(k+2) + 1e-9
		assert.InDelta(t, k*materialOnly.CO2Kg+energyOnly.CO2Kg, got.CO2Kg, tol, "k=%v", k)
		assert.InDelta(t, k*materialOnly.WaterM3+energyOnly.WaterM3, got.WaterM3, tol, "k=%v", k)
		assert.InDelta(t, k*materialOnly.EnergyMJ+energyOnly.EnergyMJ, got.EnergyMJ, tol, "k=%v", k)
		assert.InDelta(t, k*materialOnly.AcidKgSO2+energyOnly.AcidKgSO2, got.AcidKgSO2, tol, "k=%v", k)
	}
}

func TestCalculate_InvalidIdentifier(t *testing.T) {
	_, err := Calculate(Input{Material: "unobtainium", MaterialAmountKg: 1, EnergySource: Coal, EnergyAmountKWh: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidIdentifier))
	assert.Contains(t, err.Error(), "unobtainium")

	_, err = Calculate(Input{Material: Ethylene, EnergySource: "fusion"})
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestCalculate_InvalidAmount(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{"negative energy", Input{Material: Ethylene, EnergySource: NaturalGas, EnergyAmountKWh: -5}},
		{"negative material", Input{Material: Ethylene, MaterialAmountKg: -0.01, EnergySource: NaturalGas}},
		{"NaN material", Input{Material: Ethylene, MaterialAmountKg: math.NaN(), EnergySource: NaturalGas}},
		{"infinite energy", Input{Material: Ethylene, EnergySource: NaturalGas, EnergyAmountKWh: math.Inf(1)}},
		{"above bound", Input{Material: Ethylene, MaterialAmountKg: 10000.01, EnergySource: NaturalGas}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Calculate(tt.in)
			assert.ErrorIs(t, err, ErrInvalidAmount)
			assert.Equal(t, Result{}, res)
		})
	}
}

func TestCalculateWithLimit(t *testing.T) {
	in := Input{Material: Ethylene, MaterialAmountKg: 600, EnergySource: Coal}
	_, err := CalculateWithLimit(in, 500)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = CalculateWithLimit(in, 600)
	assert.NoError(t, err)
}

func TestRound2_HalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.125, 0.13},
		{-0.125, -0.13},
		{0.375, 0.38},
		{2.5, 2.5},
		{1.234, 1.23},
		{0.004, 0},
		{1.005, 1.01},
		{2.675, 2.68},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in), "Round2(%v)", tt.in)
	}
}

func TestResult_EntriesOrder(t *testing.T) {
	entries := Result{CO2Kg: 1, WaterM3: 2, EnergyMJ: 3, AcidKgSO2: 4}.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, []Entry{
		{Label: "CO2 Emissions (kg)", Value: 1},
		{Label: "Water Usage (m³)", Value: 2},
		{Label: "Energy Usage (MJ)", Value: 3},
		{Label: "Acidification (kg SO2 eq)", Value: 4},
	}, entries)
}

func TestCalculate_DecimalTies(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want Result
	}{
		{
			// 0.7 * 1.75 is stored as 1.2249999999999999
			name: "co2 tie below in binary",
			in:   Input{Material: Ethylene, MaterialAmountKg: 0.7, EnergySource: NaturalGas},
			want: Result{CO2Kg: 1.23, WaterM3: 0.84, EnergyMJ: 54.6, AcidKgSO2: 0.01},
		},
		{
			name: "acid tie below in binary",
			in:   Input{Material: Ammonia, MaterialAmountKg: 2.5, EnergySource: Solar},
			want: Result{CO2Kg: 5.95, WaterM3: 4.5, EnergyMJ: 95, AcidKgSO2: 0.06},
		},
		{
			name: "third decimal below five",
			in:   Input{Material: Ethylene, MaterialAmountKg: 0.67, EnergySource: NaturalGas},
			want: Result{CO2Kg: 1.17, WaterM3: 0.8, EnergyMJ: 52.26, AcidKgSO2: 0.01},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculate_NormalizesIdentifiers(t *testing.T) {
	in := Input{Material: " Hydrogen ", MaterialAmountKg: 1, EnergySource: "Wind", EnergyAmountKWh: 1}
	assert.Equal(t, Input{Material: Hydrogen, MaterialAmountKg: 1, EnergySource: Wind, EnergyAmountKWh: 1}, in.Normalize())

	got, err := Calculate(in)
	require.NoError(t, err)
	want, err := Calculate(in.Normalize())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
