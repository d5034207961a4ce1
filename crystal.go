/*
 * crystal.go, part of cellulose.
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

// Crystal is the result of a build: the periodic box and the chains in it.
// A Crystal is not modified after Build returns it; the methods that give
// access to its atoms return copies.
type Crystal struct {
	Phase     Phase
	Structure Structure
	Grid      *Grid
	Lattice   [3][3]float64 //cartesian vectors of the periodic box
	Chains    []*Fragment
}

// Len returns the number of atoms in the crystal.
func (C *Crystal) Len() int {
	n := 0
	for _, c := range C.Chains {
		n += c.Len()
	}
	return n
}

// NChains returns the number of chains in the crystal.
func (C *Crystal) NChains() int {
	return len(C.Chains)
}

// Monomers returns the number of monomers of the chain with index i.
func (C *Crystal) Monomers(i int) int {
	return C.Chains[i].Monomers()
}

// Atoms returns copies of all the atoms in the crystal, chain by chain.
func (C *Crystal) Atoms() []*Atom {
	ret := make([]*Atom, 0, C.Len())
	for _, c := range C.Chains {
		for _, at := range c.Atoms {
			ret = append(ret, at.Copy())
		}
	}
	return ret
}

// Coords returns a new matrix with the cartesian coordinates of all the
// atoms in the crystal, in the order of Atoms.
func (C *Crystal) Coords() *v3.Matrix {
	if C.Len() == 0 {
		return nil
	}
	ret := v3.Zeros(C.Len())
	row := 0
	for _, c := range C.Chains {
		n := c.Coords.NVecs()
		ret.SetMatrix(row, 0, c.Coords)
		row += n
	}
	return ret
}

// Symbols returns the element symbols of all the atoms, in the order of
// Atoms.
func (C *Crystal) Symbols() []string {
	ret := make([]string, 0, C.Len())
	for _, c := range C.Chains {
		for _, at := range c.Atoms {
			ret = append(ret, at.Symbol)
		}
	}
	return ret
}

func (C *Crystal) String() string {
	return fmt.Sprintf("cellulose %s %s: %d chains, %d atoms", C.Phase, C.Structure, C.NChains(), C.Len())
}
