/*
 * phase.go, part of cellulose.
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
	"strings"
)

// Phase is one of the crystalline allomorphs of cellulose.
type Phase int

const (
	IAlpha Phase = iota //Iα, triclinic, one chain per cell.
	IBeta               //Iβ, monoclinic, two parallel chains per cell.
	II                  //II, monoclinic, two antiparallel chains per cell.
	III                 //III_I, monoclinic, one chain per cell.
)

// Phases lists every phase known to the package, in declaration order.
var Phases = [...]Phase{IAlpha, IBeta, II, III}

const nphases = len(Phases)

// String returns the conventional name of the phase.
func (p Phase) String() string {
	switch p {
	case IAlpha:
		return "Iα"
	case IBeta:
		return "Iβ"
	case II:
		return "II"
	case III:
		return "III"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Valid reports whether p is one of the registered phases.
func (p Phase) Valid() bool {
	return p >= IAlpha && p <= III
}

var phaseNames = map[string]Phase{
	"iα":      IAlpha,
	"ia":      IAlpha,
	"ialpha":  IAlpha,
	"i-alpha": IAlpha,
	"iβ":      IBeta,
	"ib":      IBeta,
	"ibeta":   IBeta,
	"i-beta":  IBeta,
	"ii":      II,
	"iii":     III,
	"iii_i":   III,
	"iiii":    III,
	"iii1":    III,
}

// ParsePhase returns the Phase named by s. Greek letters and their
// ASCII spellings are accepted, case is ignored.
func ParsePhase(s string) (Phase, error) {
	p, ok := phaseNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, errDecorate(&UnknownPhaseError{Phase: s}, "ParsePhase")
	}
	return p, nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, errDecorate(&UnknownPhaseError{Phase: p.String()}, "MarshalText")
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Phase) UnmarshalText(text []byte) error {
	q, err := ParsePhase(string(text))
	if err != nil {
		return err
	}
	*p = q
	return nil
}

// Structure is the kind of assembly cut from the replicated crystal.
type Structure string

const (
	SingleChain Structure = "single-chain"
	Monolayer   Structure = "monolayer"
	Fibril      Structure = "fibril"
)

// ParseStructure validates s. The empty string means SingleChain.
func ParseStructure(s string) (Structure, error) {
	switch st := Structure(strings.ToLower(strings.TrimSpace(s))); st {
	case "", "single", "chain", SingleChain:
		return SingleChain, nil
	case Monolayer, "layer":
		return Monolayer, nil
	case Fibril:
		return Fibril, nil
	}
	return "", errDecorate(&UnsupportedStructureError{Structure: s}, "ParseStructure")
}

// Layer picks which sheet of the crystal is kept for a monolayer.
type Layer string

const (
	LayerCenter Layer = "center"
	LayerEdge   Layer = "edge"
)

// ParseLayer validates s. The empty string means LayerCenter.
func ParseLayer(s string) (Layer, error) {
	switch l := Layer(strings.ToLower(strings.TrimSpace(s))); l {
	case "", "centre", LayerCenter:
		return LayerCenter, nil
	case LayerEdge:
		return LayerEdge, nil
	}
	return "", errDecorate(&InvalidDimensionError{Name: "layer", Value: s, Constraint: `must be "center" or "edge"`}, "ParseLayer")
}
