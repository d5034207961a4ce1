/*
 * celldata.go, part of cellulose.
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

// Crystallographic tables. Cell parameters are those of the published
// fiber diffraction structures (Nishiyama et al. for Iα, Iβ and III_I,
// Langan et al. for II). Asymmetric units hold idealized 4C1
// anhydroglucose residues placed on the chain axes with a 116.5° glycosidic
// C4-O4-C1 angle. The hydroxymethyl and hydroxyl torsions are set so that
// no two atoms of different chains come closer than 1.8 Å. Fractional
// coordinates may lie outside [0,1): every residue is kept whole and
// centred on its chain axis.

// Sense is the direction in which a chain runs along the c axis,
// from the reducing to the non reducing end.
type Sense int

const (
	Up   Sense = 1
	Down Sense = -1
)

func (s Sense) String() string {
	if s == Down {
		return "down"
	}
	return "up"
}

// SiteAtom is one atom of an asymmetric unit.
type SiteAtom struct {
	Name string
	Frac [3]float64
}

// Residue is one anhydroglucose unit of an asymmetric unit.
type Residue struct {
	Axis  [2]float64 //fractional a,b position of the chain axis
	Sense Sense
	Atoms []SiteAtom
}

// SymOp is a symmetry operation acting on fractional coordinates,
// f' = Rot·f + Trans.
type SymOp struct {
	Name  string
	Rot   [3][3]float64
	Trans [3]float64
}

// Apply returns the image of the fractional coordinates f.
func (s SymOp) Apply(f [3]float64) [3]float64 {
	var r [3]float64
	for i := 0; i < 3; i++ {
		r[i] = s.Rot[i][0]*f[0] + s.Rot[i][1]*f[1] + s.Rot[i][2]*f[2] + s.Trans[i]
	}
	return r
}

// Identity is the identity operation. It is always applied by Expand and
// need not be listed in a phase's operations.
var Identity = SymOp{Name: "x,y,z", Rot: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}

// Screw21 is the 2_1 screw axis along c of the P2_1 cellulose cells.
var Screw21 = SymOp{Name: "-x,-y,z+1/2", Rot: [3][3]float64{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}, Trans: [3]float64{0, 0, 0.5}}

// FibrilSite is one chain of a fibril cross section: the a and b
// replication indexes and the chain role within the cell.
type FibrilSite struct {
	I, J, Role int
}

// PhaseData is the immutable crystallographic record of one phase.
// Values returned by a Provider must not be modified.
type PhaseData struct {
	Phase Phase
	Cell  UnitCell
	Asym  []Residue
	Ops   []SymOp

	//Symmetry-unique atoms and chains in one cell, checked against the
	//expanded basis.
	Sites         int
	ChainsPerCell int

	//Monomers each chain contributes to one cell along c.
	MonomersPerCell int

	//Coefficients (along a and b) of the stacking index: chains with the same
	//value of SheetIndex[0]*i+SheetIndex[1]*j share a hydrogen-bonded sheet.
	SheetIndex [2]int

	//Chain role used to build monolayers.
	MonolayerRole int

	//The 18-chain fibril cross section (2, 3, 4, 4, 3 and 2 chains per
	//sheet) and the replication grid that contains it.
	FibrilSites []FibrilSite
	FibrilGrid  [2]int
}

// Sheet returns the stacking index of the cell with replication indexes i, j.
func (d *PhaseData) Sheet(i, j int) int {
	return d.SheetIndex[0]*i + d.SheetIndex[1]*j
}

// FibrilChains returns the number of chains in the fibril cross section.
func (d *PhaseData) FibrilChains() int {
	return len(d.FibrilSites)
}

// AtomsPerMonomer is the number of atoms of one anhydroglucose residue.
const AtomsPerMonomer = 21

var phaseTable = [nphases]PhaseData{
	IAlpha: {
		Phase:           IAlpha,
		Cell:            UnitCell{A: 6.717, B: 5.962, C: 10.400, Alpha: 118.08, Beta: 114.80, Gamma: 80.37},
		Asym:            asymIAlpha,
		Sites:           42,
		ChainsPerCell:   1,
		MonomersPerCell: 2,
		SheetIndex:      [2]int{1, 1},
		FibrilSites: []FibrilSite{
			{0, 1, 0}, {1, 0, 0},
			{0, 2, 0}, {1, 1, 0}, {2, 0, 0},
			{0, 3, 0}, {1, 2, 0}, {2, 1, 0}, {3, 0, 0},
			{1, 3, 0}, {2, 2, 0}, {3, 1, 0}, {4, 0, 0},
			{2, 3, 0}, {3, 2, 0}, {4, 1, 0},
			{3, 3, 0}, {4, 2, 0},
		},
		FibrilGrid: [2]int{5, 4},
	},
	IBeta: {
		Phase:           IBeta,
		Cell:            UnitCell{A: 7.784, B: 8.201, C: 10.380, Alpha: 90, Beta: 90, Gamma: 96.5},
		Asym:            asymIBeta,
		Ops:             []SymOp{Screw21},
		Sites:           84,
		ChainsPerCell:   2,
		MonomersPerCell: 2,
		SheetIndex:      [2]int{1, 0},
		FibrilSites: []FibrilSite{
			{0, 1, 0}, {0, 2, 0},
			{0, 0, 1}, {0, 1, 1}, {0, 2, 1},
			{1, 0, 0}, {1, 1, 0}, {1, 2, 0}, {1, 3, 0},
			{1, 0, 1}, {1, 1, 1}, {1, 2, 1}, {1, 3, 1},
			{2, 1, 0}, {2, 2, 0}, {2, 3, 0},
			{2, 1, 1}, {2, 2, 1},
		},
		FibrilGrid: [2]int{3, 4},
	},
	II: {
		Phase:           II,
		Cell:            UnitCell{A: 8.10, B: 9.03, C: 10.31, Alpha: 90, Beta: 90, Gamma: 117.10},
		Asym:            asymII,
		Ops:             []SymOp{Screw21},
		Sites:           84,
		ChainsPerCell:   2,
		MonomersPerCell: 2,
		SheetIndex:      [2]int{0, 1},
		FibrilSites: []FibrilSite{
			{1, 0, 0}, {2, 0, 0},
			{0, 0, 1}, {1, 0, 1}, {2, 0, 1},
			{0, 1, 0}, {1, 1, 0}, {2, 1, 0}, {3, 1, 0},
			{0, 1, 1}, {1, 1, 1}, {2, 1, 1}, {3, 1, 1},
			{1, 2, 0}, {2, 2, 0}, {3, 2, 0},
			{1, 2, 1}, {2, 2, 1},
		},
		FibrilGrid: [2]int{4, 3},
	},
	III: {
		Phase:           III,
		Cell:            UnitCell{A: 4.450, B: 7.850, C: 10.310, Alpha: 90, Beta: 90, Gamma: 105.10},
		Asym:            asymIII,
		Ops:             []SymOp{Screw21},
		Sites:           42,
		ChainsPerCell:   1,
		MonomersPerCell: 2,
		SheetIndex:      [2]int{1, 0},
		FibrilSites: []FibrilSite{
			{0, 1, 0}, {0, 2, 0},
			{1, 0, 0}, {1, 1, 0}, {1, 2, 0},
			{2, 0, 0}, {2, 1, 0}, {2, 2, 0}, {2, 3, 0},
			{3, 0, 0}, {3, 1, 0}, {3, 2, 0}, {3, 3, 0},
			{4, 1, 0}, {4, 2, 0}, {4, 3, 0},
			{5, 1, 0}, {5, 2, 0},
		},
		FibrilGrid: [2]int{6, 4},
	},
}

var asymIAlpha = []Residue{
	{Axis: [2]float64{0, 0}, Sense: Up, Atoms: []SiteAtom{
		{"C1", [3]float64{0.04797, -0.04931, 0.11662}},
		{"C2", [3]float64{0.21604, -0.08438, 0.25572}},
		{"C3", [3]float64{0.10588, -0.15300, 0.33212}},
		{"C4", [3]float64{-0.04797, 0.04931, 0.38338}},
		{"C5", [3]float64{-0.21604, 0.08438, 0.24428}},
		{"C6", [3]float64{-0.36524, 0.29619, 0.30008}},
		{"O2", [3]float64{0.35641, -0.28365, 0.20323}},
		{"O3", [3]float64{0.26879, -0.17736, 0.46736}},
		{"O4", [3]float64{-0.15634, -0.02402, 0.45116}},
		{"O5", [3]float64{-0.10588, 0.15300, 0.16788}},
		{"O6", [3]float64{-0.24413, 0.53429, 0.39480}},
		{"H1", [3]float64{-0.04507, -0.22796, 0.02854}},
		{"H2", [3]float64{0.31329, 0.09215, 0.34176}},
		{"H3", [3]float64{0.01376, -0.33330, 0.24747}},
		{"H4", [3]float64{0.04507, 0.22796, 0.47146}},
		{"H5", [3]float64{-0.31329, -0.09215, 0.15824}},
		{"H61", [3]float64{-0.42743, 0.26010, 0.37030}},
		{"H62", [3]float64{-0.50237, 0.30268, 0.19767}},
		{"HO2", [3]float64{0.28734, -0.38391, 0.09066}},
		{"HO3", [3]float64{0.26041, -0.34694, 0.45355}},
		{"HO6", [3]float64{-0.16378, 0.55593, 0.50127}},
	}},
	{Axis: [2]float64{0, 0}, Sense: Up, Atoms: []SiteAtom{
		{"C1", [3]float64{-0.04797, 0.04931, 0.61723}},
		{"C2", [3]float64{-0.21604, 0.08438, 0.68420}},
		{"C3", [3]float64{-0.10588, 0.15300, 0.85732}},
		{"C4", [3]float64{0.04797, -0.04931, 0.88277}},
		{"C5", [3]float64{0.21604, -0.08438, 0.81580}},
		{"C6", [3]float64{0.36524, -0.29619, 0.83812}},
		{"O2", [3]float64{-0.35641, 0.28365, 0.66320}},
		{"O3", [3]float64{-0.26879, 0.17736, 0.91744}},
		{"O4", [3]float64{0.15634, 0.02402, 1.04884}},
		{"O5", [3]float64{0.10588, -0.15300, 0.64268}},
		{"O6", [3]float64{0.54522, -0.30483, 0.79669}},
		{"H1", [3]float64{0.04507, 0.22796, 0.67598}},
		{"H2", [3]float64{-0.31329, -0.09215, 0.62229}},
		{"H3", [3]float64{-0.01376, 0.33330, 0.91990}},
		{"H4", [3]float64{-0.04507, -0.22796, 0.82402}},
		{"H5", [3]float64{0.31329, 0.09215, 0.87771}},
		{"H61", [3]float64{0.27284, -0.47760, 0.76231}},
		{"H62", [3]float64{0.42748, -0.26007, 0.96153}},
		{"HO2", [3]float64{-0.45509, 0.31792, 0.71497}},
		{"HO3", [3]float64{-0.25964, 0.34654, 1.00027}},
		{"HO6", [3]float64{0.54053, -0.16368, 0.77520}},
	}},
}

var asymIBeta = []Residue{
	{Axis: [2]float64{0, 0}, Sense: Up, Atoms: []SiteAtom{
		{"C1", [3]float64{0.00621, 0.05095, 0.08715}},
		{"C2", [3]float64{-0.05109, 0.15940, 0.19122}},
		{"C3", [3]float64{0.03485, 0.12595, 0.31619}},
		{"C4", [3]float64{-0.00621, -0.05095, 0.35285}},
		{"C5", [3]float64{0.05109, -0.15940, 0.24878}},
		{"C6", [3]float64{0.00277, -0.33792, 0.28611}},
		{"O2", [3]float64{-0.00563, 0.32735, 0.15610}},
		{"O3", [3]float64{-0.02591, 0.22684, 0.41482}},
		{"O4", [3]float64{0.08154, -0.08118, 0.47000}},
		{"O5", [3]float64{-0.03485, -0.12595, 0.12381}},
		{"O6", [3]float64{-0.09475, -0.42158, 0.18434}},
		{"H1", [3]float64{0.14528, 0.07816, 0.07314}},
		{"H2", [3]float64{-0.19087, 0.13554, 0.20266}},
		{"H3", [3]float64{0.17437, 0.15436, 0.30583}},
		{"H4", [3]float64{-0.14528, -0.07816, 0.36686}},
		{"H5", [3]float64{0.19087, -0.13554, 0.23734}},
		{"H61", [3]float64{-0.07480, -0.34412, 0.37377}},
		{"H62", [3]float64{0.12003, -0.39598, 0.30280}},
		{"HO2", [3]float64{0.10620, 0.36533, 0.19061}},
		{"HO3", [3]float64{-0.12908, 0.17166, 0.45264}},
		{"HO6", [3]float64{-0.05936, -0.37228, 0.10331}},
	}},
	{Axis: [2]float64{0.5, 0.5}, Sense: Up, Atoms: []SiteAtom{
		{"C1", [3]float64{0.50621, 0.55095, 0.33715}},
		{"C2", [3]float64{0.44891, 0.65940, 0.44122}},
		{"C3", [3]float64{0.53485, 0.62595, 0.56619}},
		{"C4", [3]float64{0.49379, 0.44905, 0.60285}},
		{"C5", [3]float64{0.55109, 0.34060, 0.49878}},
		{"C6", [3]float64{0.50277, 0.16208, 0.53611}},
		{"O2", [3]float64{0.49437, 0.82735, 0.40610}},
		{"O3", [3]float64{0.47409, 0.72684, 0.66482}},
		{"O4", [3]float64{0.58154, 0.41882, 0.72000}},
		{"O5", [3]float64{0.46515, 0.37405, 0.37381}},
		{"O6", [3]float64{0.60967, 0.06107, 0.46729}},
		{"H1", [3]float64{0.64528, 0.57816, 0.32314}},
		{"H2", [3]float64{0.30913, 0.63554, 0.45266}},
		{"H3", [3]float64{0.67437, 0.65436, 0.55583}},
		{"H4", [3]float64{0.35472, 0.42184, 0.61686}},
		{"H5", [3]float64{0.69087, 0.36446, 0.48734}},
		{"H61", [3]float64{0.36758, 0.12545, 0.51211}},
		{"H62", [3]float64{0.52182, 0.14767, 0.63935}},
		{"HO2", [3]float64{0.39312, 0.87334, 0.37705}},
		{"HO3", [3]float64{0.57060, 0.77796, 0.71325}},
		{"HO6", [3]float64{0.60881, 0.08791, 0.37729}},
	}},
}

var asymII = []Residue{
	{Axis: [2]float64{0, 0}, Sense: Up, Atoms: []SiteAtom{
		{"C1", [3]float64{0.03597, -0.02863, 0.08794}},
		{"C2", [3]float64{0.16786, -0.01306, 0.19519}},
		{"C3", [3]float64{0.06522, -0.07059, 0.32088}},
		{"C4", [3]float64{-0.03597, 0.02863, 0.35206}},
		{"C5", [3]float64{-0.16786, 0.01306, 0.24481}},
		{"C6", [3]float64{-0.26397, 0.11915, 0.27652}},
		{"O2", [3]float64{0.25828, -0.11287, 0.16536}},
		{"O3", [3]float64{0.19438, -0.04958, 0.42239}},
		{"O4", [3]float64{-0.13757, -0.03192, 0.47000}},
		{"O5", [3]float64{-0.06522, 0.07059, 0.11912}},
		{"O6", [3]float64{-0.36055, 0.13206, 0.16440}},
		{"H1", [3]float64{-0.06400, -0.15903, 0.07624}},
		{"H2", [3]float64{0.27108, 0.11668, 0.20440}},
		{"H3", [3]float64{-0.03429, -0.20166, 0.31289}},
		{"H4", [3]float64{0.06400, 0.15903, 0.36376}},
		{"H5", [3]float64{-0.27108, -0.11668, 0.23560}},
		{"H61", [3]float64{-0.16088, 0.24294, 0.30592}},
		{"H62", [3]float64{-0.36236, 0.06161, 0.35533}},
		{"HO2", [3]float64{0.37096, -0.04719, 0.11885}},
		{"HO3", [3]float64{0.20047, -0.15217, 0.43585}},
		{"HO6", [3]float64{-0.34311, 0.07086, 0.09411}},
	}},
	{Axis: [2]float64{0.5, 0.5}, Sense: Down, Atoms: []SiteAtom{
		{"C1", [3]float64{0.55761, 0.49934, 0.60206}},
		{"C2", [3]float64{0.61869, 0.42340, 0.49481}},
		{"C3", [3]float64{0.62774, 0.51021, 0.36912}},
		{"C4", [3]float64{0.44239, 0.50066, 0.33794}},
		{"C5", [3]float64{0.38131, 0.57660, 0.44519}},
		{"C6", [3]float64{0.19048, 0.56029, 0.41348}},
		{"O2", [3]float64{0.79822, 0.43874, 0.52464}},
		{"O3", [3]float64{0.68037, 0.43232, 0.26761}},
		{"O4", [3]float64{0.45582, 0.58879, 0.22000}},
		{"O5", [3]float64{0.37226, 0.48979, 0.57088}},
		{"O6", [3]float64{0.11454, 0.59914, 0.52605}},
		{"H1", [3]float64{0.65908, 0.62928, 0.61376}},
		{"H2", [3]float64{0.52003, 0.29223, 0.48560}},
		{"H3", [3]float64{0.73032, 0.64032, 0.37711}},
		{"H4", [3]float64{0.34092, 0.37072, 0.32624}},
		{"H5", [3]float64{0.47997, 0.70777, 0.45440}},
		{"H61", [3]float64{0.09964, 0.43320, 0.38295}},
		{"H62", [3]float64{0.20237, 0.64606, 0.33547}},
		{"HO2", [3]float64{0.82802, 0.47236, 0.61342}},
		{"HO3", [3]float64{0.81032, 0.46368, 0.27443}},
		{"HO6", [3]float64{0.11437, 0.53029, 0.59704}},
	}},
}

var asymIII = []Residue{
	{Axis: [2]float64{0, 0}, Sense: Up, Atoms: []SiteAtom{
		{"C1", [3]float64{0.05356, 0.06003, 0.08794}},
		{"C2", [3]float64{0.02443, 0.18365, 0.19519}},
		{"C3", [3]float64{0.13207, 0.12379, 0.32088}},
		{"C4", [3]float64{-0.05356, -0.06003, 0.35206}},
		{"C5", [3]float64{-0.02443, -0.18365, 0.24481}},
		{"C6", [3]float64{-0.22294, -0.36774, 0.27652}},
		{"O2", [3]float64{0.21118, 0.35684, 0.16536}},
		{"O3", [3]float64{0.09276, 0.24025, 0.42239}},
		{"O4", [3]float64{0.05972, -0.11641, 0.47000}},
		{"O5", [3]float64{-0.13207, -0.12379, 0.11912}},
		{"O6", [3]float64{-0.09477, -0.43533, 0.38628}},
		{"H1", [3]float64{0.29754, 0.06123, 0.07624}},
		{"H2", [3]float64{-0.21831, 0.18633, 0.20440}},
		{"H3", [3]float64{0.37731, 0.12601, 0.31289}},
		{"H4", [3]float64{-0.29754, -0.06123, 0.36376}},
		{"H5", [3]float64{0.21831, -0.18633, 0.23560}},
		{"H61", [3]float64{-0.22639, -0.45415, 0.19346}},
		{"H62", [3]float64{-0.45952, -0.36183, 0.29866}},
		{"HO2", [3]float64{0.32284, 0.35351, 0.08614}},
		{"HO3", [3]float64{0.23197, 0.35474, 0.40863}},
		{"HO6", [3]float64{-0.22269, -0.55054, 0.40748}},
	}},
}

