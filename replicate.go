/*
 * replicate.go, part of cellulose.
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
	"runtime"
	"sync"

	v3 "github.com/rmera/cellulose/v3"
)

// Replicate tiles the basis over the grid. It returns one Fragment per chain
// role and replicated cell, translated by i·a + j·b + k·c. Fragments come in
// row-major order: i varies slowest, then j, then k, then the chain role.
// Each fragment's ID is its position in that order, and its Chain is shared
// by the replicates of one chain along c. Up to workers goroutines fill
// the list; the result does not depend on their number. workers < 1 means
// runtime.NumCPU().
func Replicate(basis *Basis, grid *Grid, workers int) ([]*Fragment, error) {
	if basis == nil || len(basis.Chains) == 0 {
		return nil, errDecorate(&PhaseDataError{Phase: grid.Phase.String(), Reason: "empty unit cell basis"}, "Replicate")
	}
	if grid.Phase != basis.Phase {
		return nil, errDecorate(&PhaseDataError{Phase: basis.Phase.String(), Reason: "grid built for phase " + grid.Phase.String()}, "Replicate")
	}
	for _, n := range grid.N {
		if n < 1 {
			return nil, errDecorate(&InvalidDimensionError{Name: "grid", Value: grid.N, Constraint: "every replication count must be at least 1"}, "Replicate")
		}
	}
	roles := len(basis.Chains)
	cells := grid.Cells()
	frags := make([]*Fragment, cells*roles)
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > cells {
		workers = cells
	}
	jobs := make(chan int, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cell := range jobs {
				replicateCell(basis, grid, cell, frags[cell*roles:(cell+1)*roles])
			}
		}()
	}
	for cell := 0; cell < cells; cell++ {
		jobs <- cell
	}
	close(jobs)
	wg.Wait()
	return frags, nil
}

// replicateCell fills out with the chains of the cell with row-major index
// cell.
func replicateCell(basis *Basis, grid *Grid, cell int, out []*Fragment) {
	n := grid.N
	i := cell / (n[1] * n[2])
	j := (cell / n[2]) % n[1]
	k := cell % n[2]
	t := grid.Translation(i, j, k)
	roles := len(basis.Chains)
	for r, bc := range basis.Chains {
		f := &Fragment{
			ID:    cell*roles + r,
			Chain: (i*n[1]+j)*roles + r,
			Role:  r,
			Index: [3]int{i, j, k},
			Sense: bc.Sense,
			Atoms: make([]*Atom, len(bc.Atoms)),
		}
		for a, at := range bc.Atoms {
			f.Atoms[a] = at.Copy()
		}
		f.Coords = v3.Zeros(bc.Coords.NVecs())
		f.Coords.Translate(bc.Coords, t)
		out[r] = f
	}
}
