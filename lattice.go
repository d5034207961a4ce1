/*
 * lattice.go, part of cellulose.
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
	"math"

	v3 "github.com/rmera/cellulose/v3"
	"gonum.org/v1/gonum/mat"
)

// UnitCell holds the lengths (Å) and angles (degrees) of a unit cell.
type UnitCell struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64
}

func (u UnitCell) String() string {
	return fmt.Sprintf("a=%.3f b=%.3f c=%.3f α=%.2f β=%.2f γ=%.2f", u.A, u.B, u.C, u.Alpha, u.Beta, u.Gamma)
}

// Metric returns the metric tensor G of the cell, G_ij = a_i·a_j.
func (u UnitCell) Metric() *mat.SymDense {
	ca := math.Cos(u.Alpha * deg2rad)
	cb := math.Cos(u.Beta * deg2rad)
	cg := math.Cos(u.Gamma * deg2rad)
	return mat.NewSymDense(3, []float64{
		u.A * u.A, u.A * u.B * cg, u.A * u.C * cb,
		u.A * u.B * cg, u.B * u.B, u.B * u.C * ca,
		u.A * u.C * cb, u.B * u.C * ca, u.C * u.C,
	})
}

// Volume returns the volume of the cell, the square root of the determinant
// of the metric tensor. It returns 0 if the determinant is not positive.
func (u UnitCell) Volume() float64 {
	d := mat.Det(u.Metric())
	if !(d > 0) {
		return 0
	}
	return math.Sqrt(d)
}

// Check returns a DegenerateCellError if the lengths are not positive, the angles
// are outside (0,180) or the cell has no volume. phase is only used for the
// error message.
func (u UnitCell) Check(phase string) error {
	bad := func(reason string) error {
		return errDecorate(&DegenerateCellError{Phase: phase, Volume: u.Volume(), Reason: reason}, "UnitCell.Check")
	}
	for _, l := range [3]float64{u.A, u.B, u.C} {
		if !(l > 0) || math.IsInf(l, 0) {
			return bad(fmt.Sprintf("cell length %g is not positive", l))
		}
	}
	for _, a := range [3]float64{u.Alpha, u.Beta, u.Gamma} {
		if !(a > 0 && a < 180) {
			return bad(fmt.Sprintf("cell angle %g outside (0,180)", a))
		}
	}
	if v := u.Volume(); v <= cellVolumeTol*u.A*u.B*u.C {
		return bad("the cell vectors are coplanar")
	}
	return nil
}

const cellVolumeTol = 1e-6

// Basis returns the 3x3 matrix whose columns are the cartesian cell vectors, with
// a along x and b in the xy plane, so that r = M·f for fractional coordinates f.
func (u UnitCell) Basis() (*mat.Dense, error) {
	if err := u.Check(""); err != nil {
		return nil, errDecorate(err, "UnitCell.Basis")
	}
	ca := math.Cos(u.Alpha * deg2rad)
	cb := math.Cos(u.Beta * deg2rad)
	cg := math.Cos(u.Gamma * deg2rad)
	sg := math.Sin(u.Gamma * deg2rad)
	cx := u.C * cb
	cy := u.C * (ca - cb*cg) / sg
	cz := u.Volume() / (u.A * u.B * sg)
	return mat.NewDense(3, 3, []float64{
		u.A, u.B * cg, cx,
		0, u.B * sg, cy,
		0, 0, cz,
	}), nil
}

// Vectors returns the cartesian cell vectors a, b and c, one per element.
func (u UnitCell) Vectors() ([3][3]float64, error) {
	var ret [3][3]float64
	M, err := u.Basis()
	if err != nil {
		return ret, errDecorate(err, "UnitCell.Vectors")
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			ret[i][j] = M.At(j, i)
		}
	}
	return ret, nil
}

// Converter transforms coordinates between the fractional and cartesian
// spaces of one cell. It is immutable and safe for concurrent use.
type Converter struct {
	cell UnitCell
	m    *mat.Dense
	inv  *mat.Dense
}

// NewConverter builds the forward and inverse transforms for cell.
func NewConverter(cell UnitCell) (*Converter, error) {
	m, err := cell.Basis()
	if err != nil {
		return nil, errDecorate(err, "NewConverter")
	}
	inv := mat.NewDense(3, 3, nil)
	if err := inv.Inverse(m); err != nil {
		return nil, errDecorate(&DegenerateCellError{Volume: cell.Volume(), Reason: err.Error()}, "NewConverter")
	}
	return &Converter{cell: cell, m: m, inv: inv}, nil
}

// Cell returns the cell of the converter.
func (c *Converter) Cell() UnitCell {
	return c.cell
}

func mulVec(m *mat.Dense, v [3]float64) [3]float64 {
	var r [3]float64
	for i := 0; i < 3; i++ {
		r[i] = m.At(i, 0)*v[0] + m.At(i, 1)*v[1] + m.At(i, 2)*v[2]
	}
	return r
}

// ToCartesian returns the cartesian position of the fractional coordinates f.
func (c *Converter) ToCartesian(f [3]float64) [3]float64 {
	return mulVec(c.m, f)
}

// ToFractional returns the fractional coordinates of the cartesian position r.
func (c *Converter) ToFractional(r [3]float64) [3]float64 {
	return mulVec(c.inv, r)
}

// Cartesian returns a new matrix with the cartesian positions of the
// fractional coordinates in frac.
func (c *Converter) Cartesian(frac *v3.Matrix) *v3.Matrix {
	ret := v3.Zeros(frac.NVecs())
	ret.Mul(frac, c.m.T())
	return ret
}

// Fractional returns a new matrix with the fractional coordinates of the
// cartesian positions in cart.
func (c *Converter) Fractional(cart *v3.Matrix) *v3.Matrix {
	ret := v3.Zeros(cart.NVecs())
	ret.Mul(cart, c.inv.T())
	return ret
}

// ToCartesian converts the fractional coordinates f to cartesian ones
// for the given cell.
func ToCartesian(f [3]float64, cell UnitCell) ([3]float64, error) {
	c, err := NewConverter(cell)
	if err != nil {
		return [3]float64{}, errDecorate(err, "ToCartesian")
	}
	return c.ToCartesian(f), nil
}

// ToFractional converts the cartesian position r to fractional coordinates
// for the given cell.
func ToFractional(r [3]float64, cell UnitCell) ([3]float64, error) {
	c, err := NewConverter(cell)
	if err != nil {
		return [3]float64{}, errDecorate(err, "ToFractional")
	}
	return c.ToFractional(r), nil
}

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)
