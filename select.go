/*
 * select.go, part of cellulose.
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
	"sort"
)

// Select returns the fragments that form the requested structure. It never
// changes the fragments, only which of them are kept, and it keeps their
// order.
//
// A single chain is the role 0 chain of the cells with i=j=0. A monolayer
// keeps the chains of the phase's monolayer role lying in one sheet: the
// central sheet for LayerCenter, the first one for LayerEdge, counting only
// the sheets with the most chains. A fibril keeps the chains of the phase's
// fibril cross section.
func Select(frags []*Fragment, structure Structure, d *PhaseData, layer Layer) ([]*Fragment, error) {
	var keep func(f *Fragment) bool
	switch structure {
	case SingleChain:
		keep = func(f *Fragment) bool {
			return f.Role == 0 && f.Index[0] == 0 && f.Index[1] == 0
		}
	case Monolayer:
		sheet, err := pickSheet(frags, d, layer)
		if err != nil {
			return nil, errDecorate(err, "Select")
		}
		keep = func(f *Fragment) bool {
			return f.Role == d.MonolayerRole && d.Sheet(f.Index[0], f.Index[1]) == sheet
		}
	case Fibril:
		sites := make(map[FibrilSite]bool, len(d.FibrilSites))
		for _, s := range d.FibrilSites {
			sites[s] = true
		}
		keep = func(f *Fragment) bool {
			return sites[FibrilSite{f.Index[0], f.Index[1], f.Role}]
		}
		present := make(map[FibrilSite]bool)
		for _, f := range frags {
			if keep(f) {
				present[FibrilSite{f.Index[0], f.Index[1], f.Role}] = true
			}
		}
		if len(present) != len(sites) {
			return nil, errDecorate(&InvalidDimensionError{Name: "grid", Value: fmt.Sprintf("%d of %d fibril chains", len(present), len(sites)), Constraint: fmt.Sprintf("a %s fibril needs at least %dx%d cells along a and b", d.Phase, d.FibrilGrid[0], d.FibrilGrid[1])}, "Select")
		}
	default:
		return nil, errDecorate(&UnsupportedStructureError{Structure: string(structure)}, "Select")
	}
	ret := make([]*Fragment, 0, len(frags))
	for _, f := range frags {
		if keep(f) {
			ret = append(ret, f)
		}
	}
	return ret, nil
}

// pickSheet returns the stacking index of the layer to keep in a monolayer.
func pickSheet(frags []*Fragment, d *PhaseData, layer Layer) (int, error) {
	count := make(map[int]map[int]bool)
	for _, f := range frags {
		if f.Role != d.MonolayerRole {
			continue
		}
		s := d.Sheet(f.Index[0], f.Index[1])
		if count[s] == nil {
			count[s] = make(map[int]bool)
		}
		count[s][f.Chain] = true
	}
	most := 0
	for _, c := range count {
		if len(c) > most {
			most = len(c)
		}
	}
	var full []int
	for s, c := range count {
		if len(c) == most {
			full = append(full, s)
		}
	}
	if len(full) == 0 {
		return 0, &InvalidDimensionError{Name: "grid", Value: len(frags), Constraint: "no chains to build a monolayer from"}
	}
	sort.Ints(full)
	switch layer {
	case LayerEdge:
		return full[0], nil
	case LayerCenter, "":
		return full[(len(full)-1)/2], nil
	}
	return 0, &InvalidDimensionError{Name: "layer", Value: layer, Constraint: `must be "center" or "edge"`}
}
