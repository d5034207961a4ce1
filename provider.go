/*
 * provider.go, part of cellulose.
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
	"io"
	"os"

	"github.com/pelletier/go-toml"
)

// Provider supplies the crystallographic data of each phase.
type Provider interface {
	PhaseData(p Phase) (*PhaseData, error)
}

// StaticProvider serves the built-in tables.
type StaticProvider struct{}

// PhaseData returns the built-in record for p. It must not be modified.
func (StaticProvider) PhaseData(p Phase) (*PhaseData, error) {
	if !p.Valid() {
		return nil, errDecorate(&UnknownPhaseError{Phase: p.String()}, "StaticProvider.PhaseData")
	}
	return &phaseTable[p], nil
}

// TOMLProvider serves the records of a base provider with the unit cells
// replaced by those read from a TOML file. The file holds one array of six
// floats (a, b, c, α, β, γ) per phase in a [cell] table, for instance
//
//	[cell]
//	Ib = [7.784, 8.201, 10.380, 90.0, 90.0, 96.5]
//
// Phases missing from the file keep the base values.
type TOMLProvider struct {
	base  Provider
	cells map[Phase]UnitCell
}

type cellFile struct {
	Cell map[string][]float64 `toml:"cell"`
}

// NewTOMLProvider parses r and returns a provider that overrides the cells of
// base, or of the built-in tables if base is nil.
func NewTOMLProvider(r io.Reader, base Provider) (*TOMLProvider, error) {
	if base == nil {
		base = StaticProvider{}
	}
	var cf cellFile
	if err := toml.NewDecoder(r).Decode(&cf); err != nil {
		return nil, fmt.Errorf("cellulose: reading cell overrides: %w", err)
	}
	ret := &TOMLProvider{base: base, cells: make(map[Phase]UnitCell, len(cf.Cell))}
	for name, v := range cf.Cell {
		p, err := ParsePhase(name)
		if err != nil {
			return nil, errDecorate(err, "NewTOMLProvider")
		}
		if len(v) != 6 {
			return nil, errDecorate(&InvalidDimensionError{Name: "cell " + name, Value: v, Constraint: "must hold a, b, c, alpha, beta and gamma"}, "NewTOMLProvider")
		}
		cell := UnitCell{A: v[0], B: v[1], C: v[2], Alpha: v[3], Beta: v[4], Gamma: v[5]}
		if err := cell.Check(p.String()); err != nil {
			return nil, errDecorate(err, "NewTOMLProvider")
		}
		ret.cells[p] = cell
	}
	return ret, nil
}

// TOMLProviderFromFile is NewTOMLProvider reading from the named file.
func TOMLProviderFromFile(name string, base Provider) (*TOMLProvider, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewTOMLProvider(f, base)
}

// PhaseData returns a copy of the base record for p with the cell replaced,
// if the file set one.
func (t *TOMLProvider) PhaseData(p Phase) (*PhaseData, error) {
	d, err := t.base.PhaseData(p)
	if err != nil {
		return nil, errDecorate(err, "TOMLProvider.PhaseData")
	}
	cell, ok := t.cells[p]
	if !ok {
		return d, nil
	}
	ret := *d
	ret.Cell = cell
	return &ret, nil
}

// Overrides returns the phases whose cells the file replaces.
func (t *TOMLProvider) Overrides() []Phase {
	var ret []Phase
	for _, p := range Phases {
		if _, ok := t.cells[p]; ok {
			ret = append(ret, p)
		}
	}
	return ret
}
