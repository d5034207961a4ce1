/*
 * main_test.go, part of cellulose.
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

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/cellulose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestBuildAndSplit(t *testing.T) {
	dir := t.TempDir()
	xyz := filepath.Join(dir, "layer.xyz.zst")
	out := run(t, "build", "--phase", "Ib", "--monomers", "4", "--structure", "monolayer", "--chains", "3", "-o", xyz, "--plot", filepath.Join(dir, "layer.png"))
	assert.Contains(t, out, "3 chains")
	assert.FileExists(t, xyz)
	assert.FileExists(t, filepath.Join(dir, "layer.png"))

	out = run(t, "split", "-i", xyz, "--outdir", filepath.Join(dir, "chains"), "--prefix", "chain")
	names := strings.Fields(out)
	require.Len(t, names, 3)
	assert.Equal(t, filepath.Join(dir, "chains", "chain_1.pdb"), names[0])
}

func TestPhases(t *testing.T) {
	out := run(t, "phases")
	for _, p := range []string{"Iα", "Iβ", "II", "III"} {
		assert.Contains(t, out, p)
	}
	assert.Contains(t, out, "8.201")
}

// A periodic XYZ block sized by explicit replication counts, split back
// into one PDB file per chain.
func TestPeriodicXYZAndSplit(t *testing.T) {
	dir := t.TempDir()
	xyz := filepath.Join(dir, "block.xyz")
	out := run(t, "build", "--phase", "Ib", "--monomers", "0", "--chains", "0", "--structure", "monolayer", "--xyzsizes", "3,3,2", "--pbc", "4,4,2", "-o", xyz, "--plot", "")
	assert.Contains(t, out, "replicated 3x3x2 cells, periodic box 4x4x2 cells")
	assert.FileExists(t, xyz)

	want, err := cellulose.Build(cellulose.Options{Phase: "Ib", Structure: "monolayer", XYZSizes: []int{3, 3, 2}, PBC: []int{4, 4, 2}})
	require.NoError(t, err)
	require.Greater(t, want.NChains(), 1)

	out = run(t, "split", "-i", xyz, "--outdir", filepath.Join(dir, "frags"), "--prefix", "frag")
	assert.Len(t, strings.Fields(out), want.NChains())
}
