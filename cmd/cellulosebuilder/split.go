/*
 * split.go, part of cellulose.
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

package main

import (
	"fmt"
	"log/slog"

	"github.com/rmera/cellulose/cellio"
	"github.com/rmera/cellulose/fragments"
	"github.com/spf13/cobra"
)

// splitCmd writes each molecule of a coordinate file to its own PDB file
var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split a combined XYZ file into one PDB file per molecule",
	Long: `
Split the atoms of an XYZ file (optionally zstd compressed) into molecules,
from bonds assigned by distance or, with --vmd, from the fragments VMD
finds, and write each molecule to its own PDB file.`,
	Example: `  cellulosebuilder split -i fibril.xyz --outdir chains
  cellulosebuilder split -i fibril.xyz.zst --outdir chains --vmd /usr/local/bin/vmd`,
	RunE: runSplit,
}

func runSplit(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	in, _ := f.GetString("input")
	dir, _ := f.GetString("outdir")
	prefix, _ := f.GetString("prefix")
	vmd, _ := f.GetString("vmd")
	tol, _ := f.GetFloat64("tolerance")
	if in == "" {
		return fmt.Errorf("no input file given")
	}
	symbols, coords, err := cellio.ReadXYZFile(in)
	if err != nil {
		return err
	}
	var s cellio.Splitter = fragments.BondSplitter{Tolerance: tol}
	if vmd != "" {
		s = fragments.VMD{Path: vmd}
	}
	names, err := cellio.FragPDBs(dir, prefix, cellio.AtomsFromSymbols(symbols), coords, s)
	if err != nil {
		return err
	}
	logger.Info("split molecules", slog.String("input", in), slog.Int("molecules", len(names)), slog.String("outdir", dir))
	for _, n := range names {
		fmt.Fprintln(cmd.OutOrStdout(), n)
	}
	return nil
}

func init() {
	f := splitCmd.Flags()
	f.StringP("input", "i", "", "input XYZ file, optionally .zst compressed")
	f.String("outdir", ".", "directory for the PDB files")
	f.String("prefix", "molecule", "prefix of the PDB file names")
	f.String("vmd", "", "use the fragments found by this VMD executable")
	f.Float64("tolerance", 0, "bond tolerance in Å added to the covalent radii, 0 for 0.45")
	rootCmd.AddCommand(splitCmd)
}
