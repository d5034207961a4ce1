/*
 * xyz.go, part of cellulose.
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
	"strconv"
	"strings"

	"github.com/rmera/cellulose"
	v3 "github.com/rmera/cellulose/v3"
)

// WriteXYZ writes the crystal in XYZ format to out. The comment line
// carries the phase, the structure and the box vectors.
func WriteXYZ(out io.Writer, c *cellulose.Crystal) error {
	l := c.Lattice
	comment := fmt.Sprintf("cellulose %s %s box %.4f %.4f %.4f %.4f %.4f %.4f %.4f %.4f %.4f", c.Phase, c.Structure,
		l[0][0], l[0][1], l[0][2], l[1][0], l[1][1], l[1][2], l[2][0], l[2][1], l[2][2])
	if err := WriteXYZCoords(out, c.Symbols(), c.Coords(), comment); err != nil {
		return errDecorate(err, "WriteXYZ")
	}
	return nil
}

// WriteXYZCoords writes the symbols and coordinates in XYZ format to out,
// with the given comment line.
func WriteXYZCoords(out io.Writer, symbols []string, coords *v3.Matrix, comment string) error {
	n := 0
	if coords != nil {
		n = coords.NVecs()
	}
	if len(symbols) != n {
		return newError(fmt.Sprintf("%d symbols for %d coordinates", len(symbols), n), "", "WriteXYZCoords")
	}
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "%-4d\n%s\n", n, strings.ReplaceAll(comment, "\n", " "))
	for i := 0; i < n; i++ {
		v := coords.Vec(i)
		fmt.Fprintf(w, "%-2s  %12.6f%12.6f%12.6f\n", symbols[i], v[0], v[1], v[2])
	}
	if err := w.Flush(); err != nil {
		return newError(err.Error(), "", "WriteXYZCoords")
	}
	return nil
}

// ReadXYZ reads the first frame of an XYZ file from in, and returns the
// element symbols and coordinates in it.
func ReadXYZ(in io.Reader) ([]string, *v3.Matrix, error) {
	s := bufio.NewScanner(in)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !s.Scan() {
		return nil, nil, newError("empty file", "", "ReadXYZ")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(s.Text()))
	if err != nil || natoms < 1 {
		return nil, nil, newError(fmt.Sprintf("bad atom count %q", s.Text()), "", "ReadXYZ")
	}
	s.Scan() //comment
	symbols := make([]string, 0, natoms)
	data := make([]float64, 0, 3*natoms)
	for len(symbols) < natoms && s.Scan() {
		fields := strings.Fields(s.Text())
		if len(fields) < 4 {
			return nil, nil, newError(fmt.Sprintf("line %q has fewer than 4 fields", s.Text()), "", "ReadXYZ")
		}
		for _, f := range fields[1:4] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, nil, newError(fmt.Sprintf("bad coordinate %q", f), "", "ReadXYZ")
			}
			data = append(data, v)
		}
		symbols = append(symbols, fields[0])
	}
	if err := s.Err(); err != nil {
		return nil, nil, newError(err.Error(), "", "ReadXYZ")
	}
	if len(symbols) != natoms {
		return nil, nil, newError(fmt.Sprintf("expected %d atoms, found %d", natoms, len(symbols)), "", "ReadXYZ")
	}
	coords, err := v3.NewMatrix(data)
	if err != nil {
		return nil, nil, errDecorate(err, "ReadXYZ")
	}
	return symbols, coords, nil
}

// ReadXYZFile reads the named XYZ file, which can be zstd compressed.
func ReadXYZFile(name string) ([]string, *v3.Matrix, error) {
	in, err := Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer in.Close()
	symbols, coords, err := ReadXYZ(in)
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.filename = name
		}
		return nil, nil, errDecorate(err, "ReadXYZFile")
	}
	return symbols, coords, nil
}
