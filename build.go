/*
 * build.go, part of cellulose.
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
	"log/slog"
	"sync"
)

// Builder builds crystals from the data of a Provider. The unit cell basis
// of each phase is computed the first time it is needed and then shared by
// all the builds, which may run concurrently.
type Builder struct {
	provider Provider
	once     [nphases]sync.Once
	data     [nphases]*PhaseData
	basis    [nphases]*Basis
	err      [nphases]error
}

// NewBuilder returns a Builder that takes its data from p, or from the
// built-in tables if p is nil.
func NewBuilder(p Provider) *Builder {
	if p == nil {
		p = StaticProvider{}
	}
	return &Builder{provider: p}
}

var defaultBuilder = NewBuilder(nil)

// Build builds a crystal from the built-in tables.
func Build(o Options) (*Crystal, error) {
	return defaultBuilder.Build(o)
}

// UnitCellBasis returns the cached basis of phase p built from the built-in
// tables.
func UnitCellBasis(p Phase) (*Basis, error) {
	b, _, err := defaultBuilder.Basis(p)
	return b, err
}

// Basis returns the unit cell basis of the phase p and the data it was
// built from. Both are shared and must not be modified.
func (b *Builder) Basis(p Phase) (*Basis, *PhaseData, error) {
	if !p.Valid() {
		return nil, nil, errDecorate(&UnknownPhaseError{Phase: p.String()}, "Builder.Basis")
	}
	b.once[p].Do(func() {
		d, err := b.provider.PhaseData(p)
		if err != nil {
			b.err[p] = err
			return
		}
		b.data[p] = d
		b.basis[p], b.err[p] = Expand(d)
	})
	if b.err[p] != nil {
		return nil, nil, errDecorate(b.err[p], "Builder.Basis")
	}
	return b.basis[p], b.data[p], nil
}

// Build validates o and builds the crystal it describes. No partial result
// is returned on error.
func (b *Builder) Build(o Options) (*Crystal, error) {
	req, err := o.validate()
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	log := req.log.With(slog.String("phase", req.phase.String()), slog.String("structure", string(req.structure)))
	basis, data, err := b.Basis(req.phase)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	var grid *Grid
	if req.sizes != nil {
		grid, err = GridFromSizes(data, req.sizes, req.pbc)
		if err == nil {
			grid.Monomers = req.monomers
			grid.Remainder = req.monomers % data.MonomersPerCell
		}
	} else {
		grid, err = GridFromCounts(data, req.structure, req.monomers, req.chains)
		if err == nil {
			err = grid.SetPeriodic(req.pbc)
		}
	}
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	log.Debug("replication grid", slog.Any("cells", grid.N), slog.Any("periodic", grid.Periodic), slog.Int("remainder", grid.Remainder))
	monomers := grid.Monomers
	if monomers == 0 {
		monomers = grid.Capacity(data.MonomersPerCell)
	}
	if capacity := grid.Capacity(data.MonomersPerCell); monomers > capacity {
		return nil, errDecorate(&InsufficientReplicationError{Phase: data.Phase.String(), Requested: monomers, Available: capacity}, "Build")
	}
	frags, err := Replicate(basis, grid, req.workers)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	log.Debug("replicated", slog.Int("fragments", len(frags)))
	selected, err := Select(frags, req.structure, data, req.layer)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	columns := Columns(selected)
	log.Debug("selected", slog.Int("fragments", len(selected)), slog.Int("chains", len(columns)))
	crystal := &Crystal{Phase: req.phase, Structure: req.structure, Grid: grid, Lattice: grid.Box()}
	for id, col := range columns {
		chain, err := ZExpand(col, monomers, data)
		if err != nil {
			return nil, errDecorate(err, "Build")
		}
		chain.Chain = id
		for _, at := range chain.Atoms {
			at.Chain = id
		}
		crystal.Chains = append(crystal.Chains, chain)
	}
	log.Info("built crystal", slog.Int("chains", crystal.NChains()), slog.Int("monomers", monomers), slog.Int("atoms", crystal.Len()))
	return crystal, nil
}

// Columns groups fragments by chain, keeping the order in which each
// chain first appears and, within a chain, the order of the fragments.
func Columns(frags []*Fragment) [][]*Fragment {
	index := make(map[int]int)
	var ret [][]*Fragment
	for _, f := range frags {
		i, ok := index[f.Chain]
		if !ok {
			i = len(ret)
			index[f.Chain] = i
			ret = append(ret, nil)
		}
		ret[i] = append(ret[i], f)
	}
	return ret
}
