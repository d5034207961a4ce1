/*
 * zexpansion.go, part of cellulose.
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

	v3 "github.com/rmera/cellulose/v3"
)

// spliceTol is the distance (Å) under which an atom of a replicate is taken
// to be the same atom as one already in the chain.
const spliceTol = 0.05

// ZExpand joins the replicates along c of one chain into a single chain with
// exactly monomers residues. Replicates are taken in increasing k. At each
// splice, the atoms of the incoming replicate that coincide with an atom
// already in the chain (the glycosidic oxygen both cells contain) are
// dropped. Residues are renumbered from 0 along the chain, and those past
// the requested number are removed, leaving the new terminus as it is.
// The returned fragment takes its ID, Chain, Role and Index from the k=0
// replicate.
func ZExpand(column []*Fragment, monomers int, d *PhaseData) (*Fragment, error) {
	if monomers < 1 {
		return nil, errDecorate(&InvalidDimensionError{Name: "monomers", Value: monomers, Constraint: "must be at least 1"}, "ZExpand")
	}
	if len(column) == 0 {
		return nil, errDecorate(&InsufficientReplicationError{Phase: d.Phase.String(), Requested: monomers}, "ZExpand")
	}
	reps := make([]*Fragment, len(column))
	copy(reps, column)
	sort.SliceStable(reps, func(i, j int) bool { return reps[i].Index[2] < reps[j].Index[2] })
	available := 0
	for i, f := range reps {
		if f.Chain != reps[0].Chain {
			return nil, errDecorate(&InvalidDimensionError{Name: "column", Value: f.Chain, Constraint: fmt.Sprintf("all replicates must belong to chain %d", reps[0].Chain)}, "ZExpand")
		}
		if i > 0 && f.Index[2] == reps[i-1].Index[2] {
			return nil, errDecorate(&InvalidDimensionError{Name: "column", Value: f.Index, Constraint: "replicate repeated along c"}, "ZExpand")
		}
		available += f.Residues()
	}
	if available < monomers {
		return nil, errDecorate(&InsufficientReplicationError{Phase: d.Phase.String(), Requested: monomers, Available: available}, "ZExpand")
	}
	var atoms []*Atom
	var coords []float64
	var last *Fragment
	var kept []int //atoms of last that went into the chain
	offset := 0
	for _, f := range reps {
		var added []int
		maxres := -1
	incoming:
		for i, at := range f.Atoms {
			for _, j := range kept {
				if f.Coords.Distance(i, last.Coords, j) < spliceTol {
					continue incoming
				}
			}
			if at.Residue > maxres {
				maxres = at.Residue
			}
			if at.Residue+offset >= monomers {
				continue
			}
			n := at.Copy()
			n.Residue += offset
			atoms = append(atoms, n)
			v := f.Coords.Vec(i)
			coords = append(coords, v[:]...)
			added = append(added, i)
		}
		last, kept = f, added
		offset += maxres + 1
		if offset >= monomers {
			break
		}
	}
	mcoords, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "ZExpand")
	}
	first := reps[0]
	return &Fragment{
		ID:     first.ID,
		Chain:  first.Chain,
		Role:   first.Role,
		Index:  first.Index,
		Sense:  first.Sense,
		Atoms:  atoms,
		Coords: mcoords,
	}, nil
}
