package auth

import (
	"testing"
	"time"

	"LCA/internal/calc/impact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportSigner_RoundTrip(t *testing.T) {
	s := &ReportSigner{Key: []byte("test-key"), TTL: time.Minute}
	in := impact.Input{Material: impact.Hydrogen, MaterialAmountKg: 12.5, EnergySource: impact.Wind, EnergyAmountKWh: 200}

	token, ref, err := s.Sign(in)
	require.NoError(t, err)
	require.NotEmpty(t, ref)

	got, gotRef, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, in, got)
	assert.Equal(t, ref, gotRef)
}

func TestReportSigner_Expired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := &ReportSigner{Key: []byte("k"), TTL: time.Minute, Now: func() time.Time { return now }}
	token, _, err := s.Sign(impact.Input{Material: impact.Ethylene, EnergySource: impact.Coal})
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, _, err = s.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidLink)
}

func TestReportSigner_WrongKey(t *testing.T) {
	a := &ReportSigner{Key: []byte("a"), TTL: time.Minute}
	b := &ReportSigner{Key: []byte("b"), TTL: time.Minute}
	token, _, err := a.Sign(impact.Input{Material: impact.Ethylene, EnergySource: impact.Coal})
	require.NoError(t, err)

	_, _, err = b.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidLink)

	_, _, err = a.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidLink)
}

func TestReportSigner_EmptyKey(t *testing.T) {
	_, _, err := (&ReportSigner{TTL: time.Minute}).Sign(impact.Input{})
	assert.Error(t, err)
}
