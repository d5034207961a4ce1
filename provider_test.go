package cellulose

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider(t *testing.T) {
	for _, p := range Phases {
		d, err := StaticProvider{}.PhaseData(p)
		require.NoError(t, err)
		assert.Equal(t, p, d.Phase)
		assert.NoError(t, d.Cell.Check(p.String()))
		assert.Len(t, d.FibrilSites, 18)
		assert.Equal(t, 2, d.MonomersPerCell)
	}
	_, err := StaticProvider{}.PhaseData(Phase(4))
	var up *UnknownPhaseError
	require.ErrorAs(t, err, &up)
}

const cellOverrides = `
[cell]
Ib = [7.80, 8.20, 10.40, 90.0, 90.0, 97.0]
III = [4.45, 7.85, 10.31, 90.0, 90.0, 105.5]
`

func TestTOMLProvider(t *testing.T) {
	tp, err := NewTOMLProvider(strings.NewReader(cellOverrides), nil)
	require.NoError(t, err)
	assert.Equal(t, []Phase{IBeta, III}, tp.Overrides())
	d, err := tp.PhaseData(IBeta)
	require.NoError(t, err)
	assert.Equal(t, UnitCell{A: 7.80, B: 8.20, C: 10.40, Alpha: 90, Beta: 90, Gamma: 97}, d.Cell)
	assert.Equal(t, 7.784, phaseTable[IBeta].Cell.A, "the built-in table is not modified")
	d, err = tp.PhaseData(II)
	require.NoError(t, err)
	assert.Same(t, &phaseTable[II], d)

	b := NewBuilder(tp)
	c, err := b.Build(Options{Phase: "Ib", Monomers: 6})
	require.NoError(t, err)
	assert.InDelta(t, 3*10.40, c.Lattice[2][2], 1e-9)
	assert.Equal(t, 6, c.Monomers(0))
	assert.InDelta(t, 1.43, SpliceGeometry(c.Chains[0]).Mean, 0.05)
}

func TestTOMLProviderFromFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "cells.toml")
	require.NoError(t, os.WriteFile(name, []byte(cellOverrides), 0o644))
	tp, err := TOMLProviderFromFile(name, StaticProvider{})
	require.NoError(t, err)
	d, err := tp.PhaseData(III)
	require.NoError(t, err)
	assert.Equal(t, 105.5, d.Cell.Gamma)
	_, err = TOMLProviderFromFile(filepath.Join(t.TempDir(), "missing.toml"), nil)
	assert.Error(t, err)
}

func TestTOMLProviderErrors(t *testing.T) {
	_, err := NewTOMLProvider(strings.NewReader("[cell]\nIV = [1.0, 1.0, 1.0, 90.0, 90.0, 90.0]\n"), nil)
	var up *UnknownPhaseError
	require.ErrorAs(t, err, &up)

	_, err = NewTOMLProvider(strings.NewReader("[cell]\nII = [1.0, 1.0, 1.0]\n"), nil)
	var ide *InvalidDimensionError
	require.ErrorAs(t, err, &ide)

	_, err = NewTOMLProvider(strings.NewReader("[cell]\nII = [8.1, 9.03, 10.31, 90.0, 90.0, 180.0]\n"), nil)
	var de *DegenerateCellError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "II", de.Phase)

	_, err = NewTOMLProvider(strings.NewReader("[cell\n"), nil)
	assert.Error(t, err)
}
