/*
 * phases.go, part of cellulose.
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
	"text/tabwriter"

	"github.com/rmera/cellulose"
	"github.com/spf13/cobra"
)

// phasesCmd lists the phases with their unit cells
var phasesCmd = &cobra.Command{
	Use:   "phases",
	Short: "List the cellulose phases and their unit cells",
	Long: `
List the cellulose phases that can be built, with the unit cell used for
each, after applying the cells in --cell-file, if given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := settings.Provider()
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "phase\ta\tb\tc\tα\tβ\tγ\tchains/cell\tfibril chains")
		for _, ph := range cellulose.Phases {
			d, err := p.PhaseData(ph)
			if err != nil {
				return err
			}
			u := d.Cell
			fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%.3f\t%.2f\t%.2f\t%.2f\t%d\t%d\n", ph, u.A, u.B, u.C, u.Alpha, u.Beta, u.Gamma, d.ChainsPerCell, d.FibrilChains())
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(phasesCmd)
}
