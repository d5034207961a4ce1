/*
 * build.go, part of cellulose.
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

	"github.com/rmera/cellulose"
	"github.com/rmera/cellulose/cellio"
	"github.com/rmera/cellulose/cellplot"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var sizesHelp = `replication counts along a, b and c, as in --xyzsizes 2,3,5.
Replaces --monomers and --chains.`

// buildCmd builds one crystal and writes it to a file
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a cellulose chain, monolayer, fibril or block",
	Long: `
Build a cellulose structure by replicating the unit cell of a phase and
selecting the chains of the requested structure. Chains are spliced along c
into continuous chains of the requested number of monomers.

The output format is taken from the extension of --output: .pdb or .xyz,
optionally followed by .zst for zstd compression.`,
	Example: `  cellulosebuilder build --phase Ib --monomers 10 --chains 4 --structure monolayer -o layer.pdb
  cellulosebuilder build --phase II --monomers 20 --structure fibril -o fibril.xyz.zst --plot fibril.png
  cellulosebuilder build --phase III --xyzsizes 3,3,5 --pbc 4,4,5 -o block.pdb`,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	p, err := settings.Provider()
	if err != nil {
		return err
	}
	c, err := cellulose.NewBuilder(p).Build(settings.Options(logger))
	if err != nil {
		return err
	}
	out := settings.Output
	if out.File == "" {
		return fmt.Errorf("no output file given")
	}
	if err := cellio.WriteFile(out.File, c); err != nil {
		return err
	}
	logger.Info("wrote crystal", slog.String("file", out.File), slog.Int("atoms", c.Len()))
	if out.Plot != "" {
		if err := cellplot.CrossSection(c, c.String(), out.Plot); err != nil {
			return err
		}
		logger.Info("wrote cross section", slog.String("file", out.Plot))
	}
	fmt.Fprintln(cmd.OutOrStdout(), c)
	box := c.Grid.Describe()
	fmt.Fprintf(cmd.OutOrStdout(), "replicated %dx%dx%d cells, periodic box %dx%dx%d cells\n",
		box["xsize"], box["ysize"], box["zsize"], box["xpbc"], box["ypbc"], box["zpbc"])
	return nil
}

func init() {
	f := buildCmd.Flags()
	f.StringP("phase", "p", "Ibeta", "cellulose phase: Ialpha, Ibeta, II or III")
	f.IntP("monomers", "n", 0, "monomers per chain")
	f.IntP("chains", "c", 0, "chains in a monolayer (fibrils take a fixed number)")
	f.StringP("structure", "s", "single-chain", "single-chain, monolayer or fibril")
	f.String("layer", "center", "monolayer taken from the crystal: center or edge")
	f.IntSlice("xyzsizes", nil, sizesHelp)
	f.IntSlice("pbc", nil, "periodic box along a, b and c, in cells, at least the replicated ones")
	f.IntP("workers", "w", 0, "goroutines for the replication, 0 for one per CPU")
	f.StringP("output", "o", "cellulose.pdb", "output file, .pdb or .xyz, optionally followed by .zst")
	f.String("plot", "", "write a cross section of the chains to this image file")

	for key, flag := range map[string]string{
		"build.phase":     "phase",
		"build.monomers":  "monomers",
		"build.chains":    "chains",
		"build.structure": "structure",
		"build.layer":     "layer",
		"build.xyzsizes":  "xyzsizes",
		"build.pbc":       "pbc",
		"build.workers":   "workers",
		"output.file":     "output",
		"output.plot":     "plot",
	} {
		viper.BindPFlag(key, f.Lookup(flag))
	}
	rootCmd.AddCommand(buildCmd)
}
