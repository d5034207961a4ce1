/*
 * fragments_test.go, part of cellulose.
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

package fragments

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rmera/cellulose"
	"github.com/rmera/cellulose/cellio"
	v3 "github.com/rmera/cellulose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ cellio.Splitter = BondSplitter{}
var _ cellio.Splitter = VMD{}

// The chains of a crystal are not bonded to each other, so each one must
// come out as one molecule.
func TestBondSplitterChains(t *testing.T) {
	for _, o := range []cellulose.Options{
		{Phase: "Ia", Monomers: 4, Structure: "monolayer", Chains: 3},
		{Phase: "Ib", Monomers: 4, Structure: "monolayer", Chains: 4},
		{Phase: "II", Monomers: 4, Structure: "fibril"},
		{Phase: "III", XYZSizes: []int{2, 2, 2}},
	} {
		c, err := cellulose.Build(o)
		require.NoError(t, err)
		frags, err := BondSplitter{}.Split(c.Symbols(), c.Coords())
		require.NoError(t, err, o.Phase)
		require.Len(t, frags, c.NChains(), o.Phase)
		first := 0
		for i, f := range frags {
			n := c.Chains[i].Len()
			require.Len(t, f, n)
			assert.Equal(t, first, f[0])
			assert.Equal(t, first+n-1, f[n-1])
			first += n
		}
	}
}

func TestBondSplitterPrunesHydrogens(t *testing.T) {
	// an H between two O atoms keeps only its shortest bond
	coords, err := v3.NewMatrix([]float64{
		0, 0, 0,
		1.0, 0, 0,
		2.1, 0, 0,
	})
	require.NoError(t, err)
	frags, err := BondSplitter{}.Split([]string{"O", "H", "O"}, coords)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2}}, frags)
}

func TestBondSplitterErrors(t *testing.T) {
	coords, err := v3.NewMatrix([]float64{0, 0, 0})
	require.NoError(t, err)
	_, err = BondSplitter{}.Split([]string{"Xe"}, coords)
	assert.Error(t, err)
	_, err = BondSplitter{}.Split([]string{"C", "C"}, coords)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, []string{"BondSplitter.Split"}, e.Decorate(""))
}

func fakeVMD(t *testing.T, output string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "vmd")
	script := "#!/bin/sh\nprintf '" + output + "' > fragments.txt\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestVMDSplit(t *testing.T) {
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0, 5, 0, 0})
	require.NoError(t, err)
	dir := t.TempDir()
	frags, err := VMD{Path: fakeVMD(t, "2\\n1 0\\n"), Dir: dir}.Split([]string{"C", "C", "O"}, coords)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2}}, frags)
	assert.FileExists(t, filepath.Join(dir, "input.xyz"))
	assert.FileExists(t, filepath.Join(dir, "fragments.tcl"))
}

func TestVMDSplitMissingAtom(t *testing.T) {
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0, 5, 0, 0})
	require.NoError(t, err)
	_, err = VMD{Path: fakeVMD(t, "0 1\\n")}.Split([]string{"C", "C", "O"}, coords)
	assert.Error(t, err)
}

func TestVMDNotFound(t *testing.T) {
	coords, err := v3.NewMatrix([]float64{0, 0, 0})
	require.NoError(t, err)
	_, err = VMD{Path: filepath.Join(t.TempDir(), "novmd")}.Split([]string{"C"}, coords)
	assert.Error(t, err)
}
