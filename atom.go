/*
 * atom.go, part of cellulose.
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

	v3 "github.com/rmera/cellulose/v3"
)

// Atom contains the topological information of one atom. Coordinates
// are kept apart, in the Coords matrix of the Fragment that owns the atom.
type Atom struct {
	Name    string
	Symbol  string
	Residue int  //index of the anhydroglucose unit within its chain, from 0
	Chain   int  //chain id within a crystal
	Link    bool //glycosidic oxygen taken from the neighbouring cell
}

// Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	ret := *A
	return &ret
}

func (A *Atom) String() string {
	return fmt.Sprintf("%s %s res %d chain %d", A.Name, A.Symbol, A.Residue, A.Chain)
}

// symbol returns the element symbol for an atom label of the
// asymmetric units, where the element is always the first letter.
func symbol(name string) string {
	if name == "" {
		return ""
	}
	return name[:1]
}

// Fragment is one replicated chain segment, or, after axial expansion,
// one complete chain. Fragments are not modified once created.
type Fragment struct {
	ID     int    //unique within one replication, row-major in Index and Role
	Chain  int    //shared by all the replicates of one chain along c
	Role   int    //chain role within the unit cell
	Index  [3]int //replication index along a, b and c
	Sense  Sense
	Atoms  []*Atom
	Coords *v3.Matrix
}

// Len returns the number of atoms in the fragment.
func (F *Fragment) Len() int {
	return len(F.Atoms)
}

// Atom returns the ith atom of the fragment.
func (F *Fragment) Atom(i int) *Atom {
	return F.Atoms[i]
}

// Monomers returns the number of anhydroglucose units in the fragment,
// counted from its composition (6 carbons per unit).
func (F *Fragment) Monomers() int {
	c := 0
	for _, at := range F.Atoms {
		if at.Symbol == "C" {
			c++
		}
	}
	return c / 6
}

// Residues returns the number of distinct residue indexes in the fragment.
func (F *Fragment) Residues() int {
	seen := make(map[int]bool)
	for _, at := range F.Atoms {
		seen[at.Residue] = true
	}
	return len(seen)
}

// Copy returns a deep copy of the fragment.
func (F *Fragment) Copy() *Fragment {
	ret := *F
	ret.Atoms = make([]*Atom, len(F.Atoms))
	for i, at := range F.Atoms {
		ret.Atoms[i] = at.Copy()
	}
	if F.Coords != nil {
		ret.Coords = v3.Zeros(F.Coords.NVecs())
		ret.Coords.Copy(F.Coords)
	}
	return &ret
}

func (F *Fragment) String() string {
	return fmt.Sprintf("fragment %d (chain %d, role %d, %s) at %v, %d atoms", F.ID, F.Chain, F.Role, F.Sense, F.Index, len(F.Atoms))
}
