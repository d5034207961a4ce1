/*
 * symmetry.go, part of cellulose.
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
	"sort"

	v3 "github.com/rmera/cellulose/v3"
	"gonum.org/v1/gonum/floats"
)

const (
	//Fractional distance below which two sites are the same atom.
	siteTol = 1e-4
	//Tolerance for two chain axes to be the same.
	axisTol = 1e-3
	//Longest C1-O4 distance (Å) taken as a glycosidic bond.
	linkCutoff = 1.8
	//shifts the floor used for wrapping, so positions at 0 stay at 0.
	wrapEps = 1e-6
)

// Labels of the atoms forming the glycosidic bond, and the name given to
// the bridging oxygen when it is taken from the neighbouring cell.
const (
	linkDonor    = "O4"
	linkAcceptor = "C1"
	linkName     = "O1"
)

// BasisChain is the segment of one chain contained in a unit cell: its
// residues ordered along c plus the link oxygen bonding the segment to the
// neighbouring cell.
type BasisChain struct {
	Role     int
	Axis     [2]float64
	Sense    Sense
	Residues int
	Atoms    []*Atom
	Frac     *v3.Matrix
	Coords   *v3.Matrix //cartesian
}

// Basis is the full content of one unit cell. It is built once per phase
// and shared, so it must not be modified.
type Basis struct {
	Phase   Phase
	Cell    UnitCell
	Lattice [3][3]float64 //cartesian a, b and c vectors
	Chains  []*BasisChain
}

// Len returns the number of atoms in the basis, link atoms included.
func (B *Basis) Len() int {
	n := 0
	for _, c := range B.Chains {
		n += len(c.Atoms)
	}
	return n
}

// Sites returns the number of symmetry-unique atoms in the basis, that is,
// all the atoms but the link oxygens.
func (B *Basis) Sites() int {
	n := 0
	for _, c := range B.Chains {
		for _, at := range c.Atoms {
			if !at.Link {
				n++
			}
		}
	}
	return n
}

// image is one residue after a symmetry operation.
type image struct {
	axis  [2]float64
	sense Sense
	z     float64 //centroid along c
	names []string
	frac  [][3]float64
}

func wrapShift(x float64) float64 {
	return -math.Floor(x + wrapEps)
}

// applyOp applies op to res and brings the image back to the reference cell:
// the chain axis is moved into [0,1) along a and b, and the centroid into
// [0,1) along c. Residues are moved as a whole.
func applyOp(op SymOp, res Residue) *image {
	im := &image{sense: res.Sense, names: make([]string, 0, len(res.Atoms)), frac: make([][3]float64, 0, len(res.Atoms))}
	if op.Rot[2][2] < 0 {
		im.sense = -im.sense
	}
	for _, at := range res.Atoms {
		f := op.Apply(at.Frac)
		im.names = append(im.names, at.Name)
		im.frac = append(im.frac, f)
		im.z += f[2]
	}
	if len(im.frac) > 0 {
		im.z /= float64(len(im.frac))
	}
	ax := op.Apply([3]float64{res.Axis[0], res.Axis[1], 0})
	shift := [3]float64{wrapShift(ax[0]), wrapShift(ax[1]), wrapShift(im.z)}
	im.axis = [2]float64{ax[0] + shift[0], ax[1] + shift[1]}
	im.z += shift[2]
	for i := range im.frac {
		for j := 0; j < 3; j++ {
			im.frac[i][j] += shift[j]
		}
	}
	return im
}

// sameSite reports whether f and g are the same position modulo a lattice
// translation.
func sameSite(f, g [3]float64) bool {
	for i := 0; i < 3; i++ {
		d := f[i] - g[i]
		if math.Abs(d-math.Round(d)) > siteTol {
			return false
		}
	}
	return true
}

// Expand applies the symmetry operations of d, plus the identity, to its
// asymmetric unit and returns the full content of the unit cell. Images of
// atoms that fall on an atom already present are discarded.
func Expand(d *PhaseData) (*Basis, error) {
	if d == nil {
		return nil, errDecorate(&UnknownPhaseError{Phase: "<nil>"}, "Expand")
	}
	if !d.Phase.Valid() {
		return nil, errDecorate(&UnknownPhaseError{Phase: d.Phase.String()}, "Expand")
	}
	name := d.Phase.String()
	if err := d.Cell.Check(name); err != nil {
		return nil, errDecorate(err, "Expand")
	}
	conv, err := NewConverter(d.Cell)
	if err != nil {
		return nil, errDecorate(err, "Expand")
	}
	ops := append([]SymOp{Identity}, d.Ops...)
	var placed [][3]float64
	var imgs []*image
	for _, op := range ops {
		for _, res := range d.Asym {
			im := applyOp(op, res)
			kept := &image{axis: im.axis, sense: im.sense, z: im.z}
		atoms:
			for i, f := range im.frac {
				for _, g := range placed {
					if sameSite(f, g) {
						continue atoms
					}
				}
				placed = append(placed, f)
				kept.names = append(kept.names, im.names[i])
				kept.frac = append(kept.frac, f)
			}
			if len(kept.frac) > 0 {
				imgs = append(imgs, kept)
			}
		}
	}
	chains := groupChains(imgs)
	basis := &Basis{Phase: d.Phase, Cell: d.Cell}
	basis.Lattice, _ = d.Cell.Vectors() //the cell was already checked
	for role, residues := range chains {
		bc, err := assembleChain(role, residues, conv)
		if err != nil {
			err.Phase = name
			return nil, errDecorate(err, "Expand")
		}
		basis.Chains = append(basis.Chains, bc)
	}
	return basis, nil
}

// groupChains collects the residue images sharing an axis into chains,
// ordered by the position of the axis (along a, then b), with the residues
// of each chain ordered along c.
func groupChains(imgs []*image) [][]*image {
	var chains [][]*image
	for _, im := range imgs {
		found := false
		for i, c := range chains {
			if math.Abs(c[0].axis[0]-im.axis[0]) < axisTol && math.Abs(c[0].axis[1]-im.axis[1]) < axisTol {
				chains[i] = append(chains[i], im)
				found = true
				break
			}
		}
		if !found {
			chains = append(chains, []*image{im})
		}
	}
	sort.SliceStable(chains, func(i, j int) bool {
		a, b := chains[i][0].axis, chains[j][0].axis
		if math.Abs(a[0]-b[0]) >= axisTol {
			return a[0] < b[0]
		}
		return a[1] < b[1]
	})
	for _, c := range chains {
		sort.SliceStable(c, func(i, j int) bool { return c[i].z < c[j].z })
	}
	return chains
}

// assembleChain builds the chain segment from its residues, and finds the
// glycosidic bond that crosses the cell boundary. The donor oxygen of that
// bond is added, translated, to the residue whose C1 it bonds.
func assembleChain(role int, residues []*image, conv *Converter) (*BasisChain, *PhaseDataError) {
	type link struct {
		owner int
		frac  [3]float64
	}
	var links []link
	for r, res := range residues {
		c1, ok := find(res, linkAcceptor)
		if !ok {
			return nil, &PhaseDataError{Reason: fmt.Sprintf("residue %d of chain %d has no %s", r, role, linkAcceptor)}
		}
		acc := conv.ToCartesian(c1)
		for _, other := range residues {
			o4, ok := find(other, linkDonor)
			if !ok {
				continue
			}
			for _, dz := range [...]float64{-1, 1} {
				f := [3]float64{o4[0], o4[1], o4[2] + dz}
				don := conv.ToCartesian(f)
				if floats.Distance(acc[:], don[:], 2) < linkCutoff {
					links = append(links, link{owner: r, frac: f})
				}
			}
		}
	}
	if len(links) != 1 {
		return nil, &PhaseDataError{Reason: fmt.Sprintf("chain %d has %d glycosidic bonds across the cell boundary, expected 1", role, len(links))}
	}
	ret := &BasisChain{Role: role, Axis: residues[0].axis, Sense: residues[0].sense, Residues: len(residues)}
	var frac []float64
	for r, res := range residues {
		if res.sense != ret.Sense {
			return nil, &PhaseDataError{Reason: fmt.Sprintf("residues of chain %d run in opposite directions", role)}
		}
		if links[0].owner == r {
			ret.Atoms = append(ret.Atoms, &Atom{Name: linkName, Symbol: symbol(linkName), Residue: r, Link: true})
			frac = append(frac, links[0].frac[:]...)
		}
		for i, n := range res.names {
			ret.Atoms = append(ret.Atoms, &Atom{Name: n, Symbol: symbol(n), Residue: r})
			frac = append(frac, res.frac[i][:]...)
		}
	}
	var err error
	ret.Frac, err = v3.NewMatrix(frac)
	if err != nil {
		return nil, &PhaseDataError{Reason: err.Error()}
	}
	ret.Coords = conv.Cartesian(ret.Frac)
	return ret, nil
}

func find(im *image, name string) ([3]float64, bool) {
	for i, n := range im.names {
		if n == name {
			return im.frac[i], true
		}
	}
	return [3]float64{}, false
}
