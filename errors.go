/*
 * errors.go, part of cellulose.
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

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
// The decoration slice contains the functions in the calling stack, innermost first.
type Error interface {
	Error() string
	Decorate(string) []string
}

type decoration struct {
	deco []string
}

// Decorate adds dec to the decoration of the error and returns the result.
// An empty dec just returns the current value.
func (d *decoration) Decorate(dec string) []string {
	if dec != "" {
		d.deco = append(d.deco, dec)
	}
	return d.deco
}

func (d *decoration) trace() string {
	if len(d.deco) == 0 {
		return ""
	}
	return " [" + strings.Join(d.deco, " <- ") + "]"
}

// errDecorate decorates err with the caller's name, if err implements Error,
// and returns it.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
	}
	return err
}

// UnknownPhaseError is returned when a phase is not registered with the
// parameter provider.
type UnknownPhaseError struct {
	Phase string
	decoration
}

func (e *UnknownPhaseError) Error() string {
	return fmt.Sprintf("cellulose: unknown phase %q, expected one of Iα, Iβ, II, III%s", e.Phase, e.trace())
}

// DegenerateCellError is returned when the unit cell parameters do not span
// a positive volume.
type DegenerateCellError struct {
	Phase  string
	Volume float64
	Reason string
	decoration
}

func (e *DegenerateCellError) Error() string {
	return fmt.Sprintf("cellulose: degenerate unit cell for phase %s: %s (volume %g)%s", e.Phase, e.Reason, e.Volume, e.trace())
}

// InvalidDimensionError is returned for sizes that are zero, negative or
// otherwise malformed.
type InvalidDimensionError struct {
	Name       string
	Value      any
	Constraint string
	decoration
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("cellulose: invalid %s %v: %s%s", e.Name, e.Value, e.Constraint, e.trace())
}

// UnsupportedStructureError is returned for unknown structure types.
type UnsupportedStructureError struct {
	Structure string
	decoration
}

func (e *UnsupportedStructureError) Error() string {
	return fmt.Sprintf("cellulose: unsupported structure %q, expected %s, %s or %s%s", e.Structure, SingleChain, Monolayer, Fibril, e.trace())
}

// InsufficientReplicationError is returned when a chain is asked for more
// monomers than the replicated cells along the chain axis contain.
type InsufficientReplicationError struct {
	Phase     string
	Requested int
	Available int
	decoration
}

func (e *InsufficientReplicationError) Error() string {
	return fmt.Sprintf("cellulose: %d monomers requested for phase %s but the replication grid only holds %d per chain, enlarge the grid along the chain axis%s", e.Requested, e.Phase, e.Available, e.trace())
}

// PhaseDataError reports a crystallographic table that does not produce a
// consistent unit cell, such as a chain with no glycosidic link across the
// cell boundary.
type PhaseDataError struct {
	Phase  string
	Reason string
	decoration
}

func (e *PhaseDataError) Error() string {
	return fmt.Sprintf("cellulose: inconsistent data for phase %s: %s%s", e.Phase, e.Reason, e.trace())
}
