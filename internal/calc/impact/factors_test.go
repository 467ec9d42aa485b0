package impact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_EveryEntryHasFactor(t *testing.T) {
	require.Len(t, Materials(), 5)
	require.Len(t, EnergySources(), 6)
	for _, m := range Materials() {
		_, ok := MaterialFactor(m)
		assert.True(t, ok, "missing factor for %s", m)
	}
	for _, e := range EnergySources() {
		_, ok := EnergyFactor(e)
		assert.True(t, ok, "missing factor for %s", e)
	}
}

func TestMaterials_ReturnsCopy(t *testing.T) {
	ms := Materials()
	ms[0] = "mutated"
	assert.Equal(t, Ethylene, Materials()[0])
}

func TestFactorLookups(t *testing.T) {
	v, ok := MaterialFactor(Ethylene)
	require.True(t, ok)
	assert.Equal(t, Vector{CO2: 1.75, Water: 1.2, Energy: 78.0, Acid: 0.015}, v)

	v, ok = EnergyFactor(NaturalGas)
	require.True(t, ok)
	assert.Equal(t, Vector{CO2: 0.49, Water: 0.002, Energy: 3.6, Acid: 0.0003}, v)

	_, ok = MaterialFactor("unobtainium")
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	m, err := ParseMaterial("  Sulfuric_Acid ")
	require.NoError(t, err)
	assert.Equal(t, SulfuricAcid, m)

	e, err := ParseEnergySource("GRID_ELECTRICITY")
	require.NoError(t, err)
	assert.Equal(t, GridElectricity, e)

	_, err = ParseMaterial("unobtainium")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
	_, err = ParseEnergySource("")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Sulfuric acid", SulfuricAcid.Label())
	assert.Equal(t, "Grid electricity", GridElectricity.Label())
	assert.Equal(t, "Wind", Wind.Label())
}
