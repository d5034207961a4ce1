/*
 * geometry.go, part of cellulose.
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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// BondStats summarizes a set of bond lengths (Å).
type BondStats struct {
	N            int
	Mean, StdDev float64
	Min, Max     float64
}

// SpliceGeometry returns the statistics of the glycosidic C1-O bonds of a
// chain, that is, the bonds between the C1 of each residue and an oxygen
// owned by a different residue, or by a link atom. In a correctly spliced
// chain they all have the same length, and there are Monomers()-1 of them,
// plus one if a link oxygen sits at a terminus.
func SpliceGeometry(chain *Fragment) BondStats {
	var d []float64
	for i, at := range chain.Atoms {
		if at.Name != linkAcceptor {
			continue
		}
		for j, o := range chain.Atoms {
			if o.Symbol != "O" || (o.Residue == at.Residue && !o.Link) {
				continue
			}
			if r := chain.Coords.Distance(i, chain.Coords, j); r < linkCutoff {
				d = append(d, r)
			}
		}
	}
	if len(d) == 0 {
		return BondStats{}
	}
	mean, std := stat.MeanStdDev(d, nil)
	if len(d) == 1 {
		std = 0
	}
	return BondStats{N: len(d), Mean: mean, StdDev: std, Min: floats.Min(d), Max: floats.Max(d)}
}
