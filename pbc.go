/*
 * pbc.go, part of cellulose.
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

package cellulose

import (
	"fmt"
)

// Grid is the replication grid of a build: how many unit cells are
// replicated along each lattice axis, and the periodic box they sit in.
type Grid struct {
	Phase     Phase
	N         [3]int        //replicated cells along a, b and c
	Periodic  [3]int        //periodic extents in cells, never smaller than N
	Lattice   [3][3]float64 //cartesian a, b and c vectors of one cell
	Monomers  int           //monomers requested per chain, 0 keeps all
	Remainder int           //monomers beyond whole cells along c
}

func checkSizes(name string, sizes []int) error {
	if len(sizes) != 3 {
		return &InvalidDimensionError{Name: name, Value: sizes, Constraint: "must have exactly 3 elements"}
	}
	for _, v := range sizes {
		if v < 1 {
			return &InvalidDimensionError{Name: name, Value: sizes, Constraint: "every element must be at least 1"}
		}
	}
	return nil
}

func newGrid(d *PhaseData, n [3]int) (*Grid, error) {
	lat, err := d.Cell.Vectors()
	if err != nil {
		return nil, err
	}
	return &Grid{Phase: d.Phase, N: n, Periodic: n, Lattice: lat}, nil
}

// GridFromSizes returns a grid with the given replication counts along a,
// b and c. pbc, if not nil, sets the periodic extents of the box, which
// must be at least the replication counts.
func GridFromSizes(d *PhaseData, sizes []int, pbc []int) (*Grid, error) {
	if err := checkSizes("xyzsizes", sizes); err != nil {
		return nil, errDecorate(err, "GridFromSizes")
	}
	g, err := newGrid(d, [3]int{sizes[0], sizes[1], sizes[2]})
	if err != nil {
		return nil, errDecorate(err, "GridFromSizes")
	}
	if err := g.SetPeriodic(pbc); err != nil {
		return nil, errDecorate(err, "GridFromSizes")
	}
	return g, nil
}

// GridFromCounts returns the smallest grid that holds the requested
// structure with chains of the given number of monomers. For monolayers,
// chains is the number of chains in the layer. For fibrils, chains must be
// 0 or the number of chains of the phase's fibril cross section. Single
// chains ignore it.
func GridFromCounts(d *PhaseData, structure Structure, monomers, chains int) (*Grid, error) {
	if monomers < 1 {
		return nil, errDecorate(&InvalidDimensionError{Name: "monomers", Value: monomers, Constraint: "must be at least 1"}, "GridFromCounts")
	}
	if chains < 0 {
		return nil, errDecorate(&InvalidDimensionError{Name: "chains", Value: chains, Constraint: "must not be negative"}, "GridFromCounts")
	}
	per := d.MonomersPerCell
	n := [3]int{1, 1, (monomers + per - 1) / per}
	switch structure {
	case SingleChain:
	case Monolayer:
		if chains == 0 {
			chains = 1
		}
		n[0], n[1] = d.monolayerGrid(chains)
	case Fibril:
		if chains != 0 && chains != d.FibrilChains() {
			return nil, errDecorate(&InvalidDimensionError{Name: "chains", Value: chains, Constraint: fmt.Sprintf("a %s fibril has %d chains", d.Phase, d.FibrilChains())}, "GridFromCounts")
		}
		n[0], n[1] = d.FibrilGrid[0], d.FibrilGrid[1]
	default:
		return nil, errDecorate(&UnsupportedStructureError{Structure: string(structure)}, "GridFromCounts")
	}
	g, err := newGrid(d, n)
	if err != nil {
		return nil, errDecorate(err, "GridFromCounts")
	}
	g.Monomers = monomers
	g.Remainder = monomers % per
	return g, nil
}

// monolayerGrid returns the a and b replication counts needed for a
// monolayer of the given number of chains. Cells stacking along one axis
// take one replicate along it, while sheets running along a diagonal take
// a square grid whose central diagonal holds the layer.
func (d *PhaseData) monolayerGrid(chains int) (int, int) {
	s := d.SheetIndex
	switch {
	case s[0] != 0 && s[1] != 0:
		return chains, chains
	case s[0] != 0:
		return 1, chains
	default:
		return chains, 1
	}
}

// SetPeriodic sets the periodic extents of the grid. A nil pbc resets them
// to the replication counts.
func (g *Grid) SetPeriodic(pbc []int) error {
	if pbc == nil {
		g.Periodic = g.N
		return nil
	}
	if err := checkSizes("pbc", pbc); err != nil {
		return errDecorate(err, "SetPeriodic")
	}
	for i, v := range pbc {
		if v < g.N[i] {
			return errDecorate(&InvalidDimensionError{Name: "pbc", Value: pbc, Constraint: fmt.Sprintf("element %d is smaller than the %d replicated cells", i, g.N[i])}, "SetPeriodic")
		}
	}
	copy(g.Periodic[:], pbc)
	return nil
}

// Cells returns the number of replicated cells.
func (g *Grid) Cells() int {
	return g.N[0] * g.N[1] * g.N[2]
}

// Capacity returns the number of monomers a chain replicated along the
// whole grid contains.
func (g *Grid) Capacity(monomersPerCell int) int {
	return g.N[2] * monomersPerCell
}

// Translation returns the cartesian vector i·a + j·b + k·c.
func (g *Grid) Translation(i, j, k int) [3]float64 {
	var t [3]float64
	idx := [3]float64{float64(i), float64(j), float64(k)}
	for ax := 0; ax < 3; ax++ {
		for c := 0; c < 3; c++ {
			t[c] += idx[ax] * g.Lattice[ax][c]
		}
	}
	return t
}

// Box returns the cartesian vectors of the periodic box.
func (g *Grid) Box() [3][3]float64 {
	var box [3][3]float64
	for ax := 0; ax < 3; ax++ {
		for c := 0; c < 3; c++ {
			box[ax][c] = float64(g.Periodic[ax]) * g.Lattice[ax][c]
		}
	}
	return box
}

// Describe returns the sizes of the grid by name.
func (g *Grid) Describe() map[string]int {
	return map[string]int{
		"xsize":     g.N[0],
		"ysize":     g.N[1],
		"zsize":     g.N[2],
		"xpbc":      g.Periodic[0],
		"ypbc":      g.Periodic[1],
		"zpbc":      g.Periodic[2],
		"monomers":  g.Monomers,
		"remainder": g.Remainder,
	}
}

// Copy returns a copy of the grid.
func (g *Grid) Copy() *Grid {
	ret := *g
	return &ret
}

func (g *Grid) String() string {
	return fmt.Sprintf("%s grid %dx%dx%d, periodic %dx%dx%d", g.Phase, g.N[0], g.N[1], g.N[2], g.Periodic[0], g.Periodic[1], g.Periodic[2])
}
