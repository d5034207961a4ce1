/*
 * vmd.go, part of cellulose.
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

package fragments

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rmera/cellulose/cellio"
	v3 "github.com/rmera/cellulose/v3"
)

const vmdScript = `mol new {%s} type xyz waitfor all
set sel [atomselect top all]
set out [open {%s} w]
foreach f [lsort -unique -integer [$sel get fragment]] {
    set s [atomselect top "fragment $f"]
    puts $out [$s get index]
    $s delete
}
close $out
quit
`

// VMD splits atoms using the fragments VMD assigns from its own bond
// search. VMD must be installed.
type VMD struct {
	Path string //the vmd executable, "vmd" if empty
	Dir  string //scratch directory, a temporary one if empty
}

// Split implements cellio.Splitter.
func (V VMD) Split(symbols []string, coords *v3.Matrix) ([][]int, error) {
	dir := V.Dir
	if dir == "" {
		tmp, err := os.MkdirTemp("", "vmdfrag")
		if err != nil {
			return nil, &Error{message: err.Error(), deco: []string{"VMD.Split"}}
		}
		defer os.RemoveAll(tmp)
		dir = tmp
	}
	xyz := filepath.Join(dir, "input.xyz")
	out, err := os.Create(xyz)
	if err != nil {
		return nil, &Error{message: err.Error(), deco: []string{"VMD.Split"}}
	}
	err = cellio.WriteXYZCoords(out, symbols, coords, "fragments")
	if err2 := out.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return nil, errDecorate(err, "VMD.Split")
	}
	result := filepath.Join(dir, "fragments.txt")
	script := filepath.Join(dir, "fragments.tcl")
	if err := os.WriteFile(script, []byte(fmt.Sprintf(vmdScript, xyz, result)), 0o644); err != nil {
		return nil, &Error{message: err.Error(), deco: []string{"VMD.Split"}}
	}
	path := V.Path
	if path == "" {
		path = "vmd"
	}
	cmd := exec.Command(path, "-dispdev", "text", "-e", script)
	cmd.Dir = dir
	if msg, err := cmd.CombinedOutput(); err != nil {
		return nil, &Error{message: fmt.Sprintf("%s failed: %v: %s", path, err, strings.TrimSpace(string(msg))), deco: []string{"VMD.Split"}}
	}
	frags, err := readFragments(result, len(symbols))
	if err != nil {
		return nil, errDecorate(err, "VMD.Split")
	}
	return frags, nil
}

// readFragments reads one fragment per line, as space-separated atom
// indexes, and checks that every atom appears exactly once.
func readFragments(name string, natoms int) ([][]int, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &Error{message: err.Error(), deco: []string{"readFragments"}}
	}
	defer f.Close()
	seen := make([]bool, natoms)
	var ret [][]int
	s := bufio.NewScanner(f)
	s.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for s.Scan() {
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}
		frag := make([]int, len(fields))
		for i, field := range fields {
			idx, err := strconv.Atoi(field)
			if err != nil || idx < 0 || idx >= natoms || seen[idx] {
				return nil, &Error{message: fmt.Sprintf("bad atom index %q in %s", field, name), deco: []string{"readFragments"}}
			}
			seen[idx] = true
			frag[i] = idx
		}
		sort.Ints(frag)
		ret = append(ret, frag)
	}
	if err := s.Err(); err != nil {
		return nil, &Error{message: err.Error(), deco: []string{"readFragments"}}
	}
	for i, ok := range seen {
		if !ok {
			return nil, &Error{message: fmt.Sprintf("atom %d is in no fragment", i), deco: []string{"readFragments"}}
		}
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret, nil
}
