package cellulose

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiplicity(t *testing.T) {
	want := map[Phase]struct{ sites, chains int }{
		IAlpha: {42, 1},
		IBeta:  {84, 2},
		II:     {84, 2},
		III:    {42, 1},
	}
	for _, p := range Phases {
		b, err := Expand(&phaseTable[p])
		require.NoError(t, err, p.String())
		assert.Equal(t, want[p].sites, b.Sites(), p.String())
		assert.Equal(t, phaseTable[p].Sites, b.Sites(), p.String())
		require.Len(t, b.Chains, want[p].chains, p.String())
		assert.Equal(t, phaseTable[p].ChainsPerCell, len(b.Chains))
		for _, c := range b.Chains {
			assert.Equal(t, 2*AtomsPerMonomer+1, len(c.Atoms), "%s chain %d", p, c.Role)
			assert.Equal(t, phaseTable[p].MonomersPerCell, c.Residues)
			assert.Equal(t, len(c.Atoms), c.Coords.NVecs())
		}
	}
}

func TestChainRoles(t *testing.T) {
	for _, p := range []Phase{IBeta, II} {
		b, err := Expand(&phaseTable[p])
		require.NoError(t, err)
		assert.Equal(t, [2]float64{0, 0}, b.Chains[0].Axis)
		assert.InDelta(t, 0.5, b.Chains[1].Axis[0], 1e-12)
		assert.InDelta(t, 0.5, b.Chains[1].Axis[1], 1e-12)
		assert.Equal(t, Up, b.Chains[0].Sense)
	}
	b, err := Expand(&phaseTable[II])
	require.NoError(t, err)
	assert.Equal(t, Down, b.Chains[1].Sense, "cellulose II is antiparallel")
	b, err = Expand(&phaseTable[IBeta])
	require.NoError(t, err)
	assert.Equal(t, Up, b.Chains[1].Sense, "cellulose Iβ is parallel")
}

// Every symmetry image of a basis atom must already be in the basis,
// up to a lattice translation.
func TestSymmetryClosure(t *testing.T) {
	for _, p := range Phases {
		d := &phaseTable[p]
		b, err := Expand(d)
		require.NoError(t, err)
		var sites [][3]float64
		for _, c := range b.Chains {
			for i, at := range c.Atoms {
				if !at.Link {
					sites = append(sites, c.Frac.Vec(i))
				}
			}
		}
		for _, op := range append([]SymOp{Identity}, d.Ops...) {
			for _, f := range sites {
				img := op.Apply(f)
				found := false
				for _, g := range sites {
					if sameSite(img, g) {
						found = true
						break
					}
				}
				assert.True(t, found, "%s: %s image of %v not in the basis", p, op.Name, f)
			}
		}
	}
}

func TestLinkAtom(t *testing.T) {
	for _, p := range Phases {
		b, err := UnitCellBasis(p)
		require.NoError(t, err)
		for _, c := range b.Chains {
			links := 0
			for i, at := range c.Atoms {
				if !at.Link {
					continue
				}
				links++
				assert.Equal(t, linkName, at.Name)
				assert.Equal(t, "O", at.Symbol)
				//the link bonds the C1 of its own residue
				bonded := false
				for j, o := range c.Atoms {
					if o.Name == linkAcceptor && o.Residue == at.Residue {
						d := c.Coords.Distance(i, c.Coords, j)
						bonded = d < linkCutoff
					}
				}
				assert.True(t, bonded, "%s chain %d", p, c.Role)
			}
			assert.Equal(t, 1, links, "%s chain %d", p, c.Role)
		}
	}
}

func TestResiduesOrderedAlongC(t *testing.T) {
	for _, p := range Phases {
		b, err := UnitCellBasis(p)
		require.NoError(t, err)
		for _, c := range b.Chains {
			z := make([]float64, c.Residues)
			n := make([]float64, c.Residues)
			for i, at := range c.Atoms {
				if !at.Link {
					z[at.Residue] += c.Frac.Vec(i)[2]
					n[at.Residue]++
				}
			}
			for r := 1; r < c.Residues; r++ {
				assert.Less(t, z[r-1]/n[r-1], z[r]/n[r], "%s chain %d", p, c.Role)
			}
		}
	}
}

func TestExpandErrors(t *testing.T) {
	_, err := Expand(&PhaseData{Phase: Phase(9)})
	var up *UnknownPhaseError
	require.ErrorAs(t, err, &up)

	bad := phaseTable[IBeta]
	bad.Cell.Gamma = 0
	_, err = Expand(&bad)
	var de *DegenerateCellError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "Iβ", de.Phase)

	//a much longer c axis breaks the glycosidic bond across the cell boundary
	bad = phaseTable[III]
	bad.Cell.C = 14
	_, err = Expand(&bad)
	var pe *PhaseDataError
	require.ErrorAs(t, err, &pe)
}

func TestBasisCache(t *testing.T) {
	b := NewBuilder(nil)
	var wg sync.WaitGroup
	got := make([]*Basis, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			basis, _, err := b.Basis(Phases[i%nphases])
			assert.NoError(t, err)
			got[i] = basis
		}(i)
	}
	wg.Wait()
	for i := range got {
		assert.Same(t, got[i%nphases], got[i])
	}
	_, _, err := b.Basis(Phase(-1))
	var up *UnknownPhaseError
	require.ErrorAs(t, err, &up)
}
