/*
 * frag.go, part of cellulose.
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

package cellio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rmera/cellulose"
	v3 "github.com/rmera/cellulose/v3"
)

// Splitter divides a set of atoms into molecules. Each element of the
// returned slice holds the indexes of the atoms of one molecule.
type Splitter interface {
	Split(symbols []string, coords *v3.Matrix) ([][]int, error)
}

// AtomsFromSymbols returns one atom per symbol, named after its element,
// all in chain 0.
func AtomsFromSymbols(symbols []string) []*cellulose.Atom {
	ret := make([]*cellulose.Atom, len(symbols))
	for i, s := range symbols {
		ret[i] = &cellulose.Atom{Name: s, Symbol: s}
	}
	return ret
}

// FragPDBs splits the atoms with s and writes each molecule to its own PDB
// file in dir, named prefix_N.pdb with N counting from 1. It returns the
// names of the files written.
func FragPDBs(dir, prefix string, atoms []*cellulose.Atom, coords *v3.Matrix, s Splitter) ([]string, error) {
	if coords == nil || len(atoms) != coords.NVecs() {
		return nil, newError("the atoms and coordinates don't match", "", "FragPDBs")
	}
	symbols := make([]string, len(atoms))
	for i, at := range atoms {
		symbols[i] = at.Symbol
	}
	frags, err := s.Split(symbols, coords)
	if err != nil {
		return nil, errDecorate(err, "FragPDBs")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, newError(err.Error(), dir, "FragPDBs")
	}
	names := make([]string, 0, len(frags))
	for i, f := range frags {
		fatoms := make([]*cellulose.Atom, len(f))
		fcoords := v3.Zeros(len(f))
		if err := fcoords.SomeVecsSafe(coords, f); err != nil {
			return names, newError(err.Error(), "", "FragPDBs")
		}
		for j, idx := range f {
			fatoms[j] = atoms[idx].Copy()
			fatoms[j].Chain = i
		}
		name := filepath.Join(dir, fmt.Sprintf("%s_%d.pdb", prefix, i+1))
		out, err := Create(name)
		if err != nil {
			return names, newError(err.Error(), name, "FragPDBs")
		}
		err = WritePDBAtoms(out, fatoms, fcoords, nil)
		if err2 := out.Close(); err == nil {
			err = err2
		}
		if err != nil {
			return names, errDecorate(err, "FragPDBs")
		}
		names = append(names, name)
	}
	return names, nil
}
