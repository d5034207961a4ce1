/*
 * bonds.go, part of cellulose.
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

// Package fragments splits sets of atoms into molecules, either from
// distance-based bonds or by asking VMD for its fragments.
package fragments

import (
	"fmt"
	"math"
	"sort"

	"github.com/rmera/cellulose"
	v3 "github.com/rmera/cellulose/v3"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

// Covalent radii from Cordero et al., 2008 (DOI:10.1039/B801115J)
var covrad = map[string]float64{
	"H": 0.4, // 0.31 in the paper. H has only one bond, the extra ones are pruned.
	"C": 0.76,
	"O": 0.66,
	"N": 0.71,
	"S": 1.05,
}

// 0 or absent means the atom is not checked.
var maxBonds = map[string]int{
	"H": 1,
	"C": 4,
	"O": 2,
}

// Error is the error type of the package. It implements cellulose.Error.
type Error struct {
	message string
	deco    []string
}

func (err *Error) Error() string { return "fragments: " + err.message }

// Decorate adds dec to the error decoration, and returns it.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func errDecorate(err error, caller string) error {
	if err2, ok := err.(cellulose.Error); ok {
		err2.Decorate(caller)
	}
	return err
}

type bond struct {
	at1, at2 int
	dist     float64
}

// BondSplitter assigns bonds by distance, as in DOI:10.1186/1758-2946-3-33,
// and returns the connected components of the bond graph as molecules.
// Atoms with more bonds than their valence lose their longest ones.
type BondSplitter struct {
	Tolerance float64 //added to the sum of covalent radii, 0 means 0.45 Å
}

// Split implements cellio.Splitter. Each molecule is sorted by atom index,
// and the molecules by their first atom.
func (s BondSplitter) Split(symbols []string, coords *v3.Matrix) ([][]int, error) {
	if coords == nil || len(symbols) != coords.NVecs() {
		return nil, &Error{message: "the symbols and coordinates don't match", deco: []string{"BondSplitter.Split"}}
	}
	tol := s.Tolerance
	if tol <= 0 {
		tol = bondtol
	}
	rad := make([]float64, len(symbols))
	maxrad := 0.0
	for i, sym := range symbols {
		r, ok := covrad[sym]
		if !ok {
			return nil, &Error{message: fmt.Sprintf("no covalent radius for %s %d", sym, i), deco: []string{"BondSplitter.Split"}}
		}
		rad[i] = r
		maxrad = math.Max(maxrad, r)
	}
	bonds := s.assign(coords, rad, 2*maxrad+tol, tol)
	bonds = prune(symbols, bonds)
	g := simple.NewUndirectedGraph()
	for i := range symbols {
		g.AddNode(simple.Node(i))
	}
	for _, b := range bonds {
		g.SetEdge(simple.Edge{F: simple.Node(b.at1), T: simple.Node(b.at2)})
	}
	return components(topo.ConnectedComponents(g)), nil
}

// assign finds the pairs of atoms closer than the sum of their radii plus tol,
// searching only the neighbouring cells of a grid with the given spacing.
func (s BondSplitter) assign(coords *v3.Matrix, rad []float64, spacing, tol float64) []*bond {
	cell := func(v [3]float64) [3]int {
		return [3]int{int(math.Floor(v[0] / spacing)), int(math.Floor(v[1] / spacing)), int(math.Floor(v[2] / spacing))}
	}
	grid := make(map[[3]int][]int)
	for i := range rad {
		c := cell(coords.Vec(i))
		grid[c] = append(grid[c], i)
	}
	var bonds []*bond
	var near []int
	for i := range rad {
		c := cell(coords.Vec(i))
		near = near[:0]
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for dz := -1; dz <= 1; dz++ {
					for _, j := range grid[[3]int{c[0] + dx, c[1] + dy, c[2] + dz}] {
						if j > i {
							near = append(near, j)
						}
					}
				}
			}
		}
		sort.Ints(near)
		for _, j := range near {
			d := coords.Distance(i, coords, j)
			if d < rad[i]+rad[j]+tol && d > tooclose {
				bonds = append(bonds, &bond{at1: i, at2: j, dist: d})
			}
		}
	}
	return bonds
}

// prune removes, atom by atom, the longest bonds of atoms with more bonds
// than allowed for their element, and returns the remaining bonds.
func prune(symbols []string, bonds []*bond) []*bond {
	per := make([][]*bond, len(symbols))
	for _, b := range bonds {
		per[b.at1] = append(per[b.at1], b)
		per[b.at2] = append(per[b.at2], b)
	}
	removed := make(map[*bond]bool)
	drop := func(list []*bond, b *bond) []*bond {
		for k, v := range list {
			if v == b {
				return append(list[:k], list[k+1:]...)
			}
		}
		return list
	}
	for i, sym := range symbols {
		limit := maxBonds[sym]
		if limit == 0 {
			continue
		}
		sort.SliceStable(per[i], func(a, b int) bool { return per[i][a].dist < per[i][b].dist })
		for len(per[i]) > limit {
			b := per[i][len(per[i])-1]
			removed[b] = true
			per[b.at1] = drop(per[b.at1], b)
			per[b.at2] = drop(per[b.at2], b)
		}
	}
	ret := bonds[:0]
	for _, b := range bonds {
		if !removed[b] {
			ret = append(ret, b)
		}
	}
	return ret
}

func components(cc [][]graph.Node) [][]int {
	ret := make([][]int, len(cc))
	for i, c := range cc {
		ids := make([]int, len(c))
		for j, n := range c {
			ids[j] = int(n.ID())
		}
		sort.Ints(ids)
		ret[i] = ids
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}
