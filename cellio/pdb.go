/*
 * pdb.go, part of cellulose.
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
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/rmera/cellulose"
	v3 "github.com/rmera/cellulose/v3"
	"gonum.org/v1/gonum/floats"
)

// ResName is the residue name used for the glucose units in PDB files.
const ResName = "BGLC"

// WritePDB writes the crystal in PDB format to out, with a CRYST1 record for
// the periodic box and one PDB chain per cellulose chain.
func WritePDB(out io.Writer, c *cellulose.Crystal) error {
	box := c.Lattice
	if err := WritePDBAtoms(out, c.Atoms(), c.Coords(), &box); err != nil {
		return errDecorate(err, "WritePDB")
	}
	return nil
}

// WritePDBAtoms writes the atoms and coordinates in PDB format to out. If box
// is not nil, a CRYST1 record is written for it. A TER record separates
// atoms of different chains.
func WritePDBAtoms(out io.Writer, atoms []*cellulose.Atom, coords *v3.Matrix, box *[3][3]float64) error {
	n := 0
	if coords != nil {
		n = coords.NVecs()
	}
	if len(atoms) != n {
		return newError(fmt.Sprintf("%d atoms for %d coordinates", len(atoms), n), "", "WritePDBAtoms")
	}
	w := bufio.NewWriter(out)
	if box != nil {
		a, b, c, alpha, beta, gamma := cellParams(*box)
		fmt.Fprintf(w, "CRYST1%9.3f%9.3f%9.3f%7.2f%7.2f%7.2f P 1           1\n", a, b, c, alpha, beta, gamma)
	}
	serial := 1
	for i, at := range atoms {
		if i > 0 && atoms[i-1].Chain != at.Chain {
			fmt.Fprintf(w, "TER   %5d\n", serial%100000)
			serial++
		}
		v := coords.Vec(i)
		chain := 'A' + rune(at.Chain%26)
		resid := (at.Residue + 1) % 10000
		format := "%-6s%5d  %-3s %4s%1c%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  \n"
		if len(at.Name) >= 4 {
			format = "%-6s%5d %4s %4s%1c%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  \n"
		}
		fmt.Fprintf(w, format, "ATOM", serial%100000, at.Name, ResName, chain, resid, v[0], v[1], v[2], 1.0, 0.0, at.Symbol)
		serial++
	}
	if n > 0 {
		fmt.Fprintf(w, "TER   %5d\n", serial%100000)
	}
	fmt.Fprintln(w, "END")
	if err := w.Flush(); err != nil {
		return newError(err.Error(), "", "WritePDBAtoms")
	}
	return nil
}

// cellParams returns the lengths and angles (degrees) of the box vectors.
func cellParams(box [3][3]float64) (a, b, c, alpha, beta, gamma float64) {
	a = floats.Norm(box[0][:], 2)
	b = floats.Norm(box[1][:], 2)
	c = floats.Norm(box[2][:], 2)
	alpha = angle(box[1], box[2])
	beta = angle(box[0], box[2])
	gamma = angle(box[0], box[1])
	return
}

func angle(u, v [3]float64) float64 {
	cos := floats.Dot(u[:], v[:]) / (floats.Norm(u[:], 2) * floats.Norm(v[:], 2))
	return math.Acos(math.Max(-1, math.Min(1, cos))) * 180 / math.Pi
}
