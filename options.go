/*
 * options.go, part of cellulose.
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
	"io"
	"log/slog"
)

// Options are the parameters of a build. The zero value is not a valid
// build: either Monomers or explicit sizes must be given.
type Options struct {
	//Phase name, as accepted by ParsePhase. Empty means Iβ.
	Phase string
	//Monomers per chain. With explicit sizes, 0 keeps every replicated
	//monomer.
	Monomers int
	//Chains in a monolayer. Fibrils take 0 or the phase's fibril chain
	//count, single chains ignore it.
	Chains int
	//Explicit replication counts along a, b and c, given either one by one
	//or as a vector of exactly 3 elements.
	XSize, YSize, ZSize int
	XYZSizes            []int
	//Periodic extents overriding the replicated ones. nil keeps the
	//replication counts.
	PBC []int
	//Structure name, as accepted by ParseStructure. Empty means a single
	//chain.
	Structure string
	//Layer taken for monolayers, as accepted by ParseLayer.
	Layer string
	//Goroutines used for replication, 0 means one per CPU.
	Workers int
	//Logger for the build. nil discards the output.
	Logger *slog.Logger
}

// request is a validated set of Options.
type request struct {
	phase     Phase
	structure Structure
	layer     Layer
	monomers  int
	chains    int
	sizes     []int
	pbc       []int
	workers   int
	log       *slog.Logger
}

func (o Options) validate() (*request, error) {
	r := &request{monomers: o.Monomers, chains: o.Chains, workers: o.Workers, log: o.Logger}
	var err error
	r.phase = IBeta
	if o.Phase != "" {
		if r.phase, err = ParsePhase(o.Phase); err != nil {
			return nil, err
		}
	}
	if r.structure, err = ParseStructure(o.Structure); err != nil {
		return nil, err
	}
	if r.layer, err = ParseLayer(o.Layer); err != nil {
		return nil, err
	}
	if o.Monomers < 0 {
		return nil, &InvalidDimensionError{Name: "monomers", Value: o.Monomers, Constraint: "must not be negative"}
	}
	if o.Chains < 0 {
		return nil, &InvalidDimensionError{Name: "chains", Value: o.Chains, Constraint: "must not be negative"}
	}
	if o.Workers < 0 {
		return nil, &InvalidDimensionError{Name: "workers", Value: o.Workers, Constraint: "must not be negative"}
	}
	single := o.XSize != 0 || o.YSize != 0 || o.ZSize != 0
	switch {
	case single && o.XYZSizes != nil:
		return nil, &InvalidDimensionError{Name: "xyzsizes", Value: o.XYZSizes, Constraint: "cannot be combined with xsize, ysize and zsize"}
	case single:
		r.sizes = []int{o.XSize, o.YSize, o.ZSize}
	case o.XYZSizes != nil:
		r.sizes = o.XYZSizes
	case o.Monomers == 0:
		return nil, &InvalidDimensionError{Name: "monomers", Value: o.Monomers, Constraint: "must be at least 1 when no replication sizes are given"}
	}
	if r.sizes != nil {
		if err := checkSizes("xyzsizes", r.sizes); err != nil {
			return nil, err
		}
	}
	if o.PBC != nil {
		if err := checkSizes("pbc", o.PBC); err != nil {
			return nil, err
		}
		r.pbc = o.PBC
	}
	if r.log == nil {
		r.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r, nil
}
