/*
 * doc.go, part of cellulose.
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

/*Package cellulose builds atomic models of cellulose crystals, for use as
starting structures in molecular dynamics simulations.


	**Capabilities**


    Builds the Iα, Iβ, II and III_I allomorphs from their crystallographic
	tables, which can be corrected through a TOML file.

    Converts between fractional and cartesian coordinates for triclinic
	cells.

    Expands asymmetric units into full unit cells, and replicates the cells
	over a grid with a given periodic box.

    Builds single chains, monolayers (the central or the edge sheet) and
	18-chain fibrils.

    Joins the replicated segments of each chain into a chain with the exact
	number of monomers requested, keeping the glycosidic bonds across the
	cell boundaries.

A build goes through a fixed pipeline: the replication grid is computed
from the requested sizes (GridFromSizes or GridFromCounts), the unit cell
basis of the phase (Expand, computed once per phase) is tiled over the
grid (Replicate), the fragments making up the requested structure are kept
(Select), and the segments of each chain are joined (ZExpand). Build runs
all of it from an Options value.

Writing the crystals to PDB or XYZ files is done by the cellio package,
splitting combined structures into molecules by the fragments package, and
plotting chain cross sections by the cellplot package. The
cellulosebuilder command puts them together.
*/
package cellulose
