/*
 * config_test.go, part of cellulose.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/cellulose"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settings = `
verbose = true

[build]
phase = "II"
monomers = 8
structure = "monolayer"
chains = 4
layer = "edge"
pbc = [6, 2, 5]

[output]
file = "crystal.pdb.zst"
plot = "layer.png"
`

func TestFromViper(t *testing.T) {
	v := viper.New()
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(strings.NewReader(settings)))
	c, err := FromViper(v)
	require.NoError(t, err)
	assert.True(t, c.Verbose)
	assert.Equal(t, "II", c.Build.Phase)
	assert.Equal(t, 8, c.Build.Monomers)
	assert.Equal(t, []int{6, 2, 5}, c.Build.PBC)
	assert.Equal(t, "crystal.pdb.zst", c.Output.File)

	o := c.Options(nil)
	assert.Equal(t, cellulose.Options{Phase: "II", Monomers: 8, Structure: "monolayer", Chains: 4, Layer: "edge", PBC: []int{6, 2, 5}}, o)
	o.PBC[0] = 9
	assert.Equal(t, 6, c.Build.PBC[0])

	p, err := c.Provider()
	require.NoError(t, err)
	cr, err := cellulose.NewBuilder(p).Build(o)
	require.NoError(t, err)
	assert.Equal(t, 4, cr.NChains())
}

func TestFlagsOverrideFile(t *testing.T) {
	v := viper.New()
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(strings.NewReader(settings)))
	v.Set("build.monomers", 3)
	c, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Build.Monomers)
	assert.Equal(t, "edge", c.Build.Layer)
}

func TestProviderCellFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "cells.toml")
	require.NoError(t, os.WriteFile(name, []byte("[cell]\nIII = [4.5, 7.9, 10.31, 90.0, 90.0, 105.0]\n"), 0o644))
	c := Config{Build: BuildConfig{CellFile: name}}
	p, err := c.Provider()
	require.NoError(t, err)
	d, err := p.PhaseData(cellulose.III)
	require.NoError(t, err)
	assert.Equal(t, 4.5, d.Cell.A)

	c.Build.CellFile = filepath.Join(t.TempDir(), "missing.toml")
	_, err = c.Provider()
	assert.Error(t, err)
}
