package cellulose

import (
	"bytes"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSingleChainEndToEnd(t *testing.T) {
	c, err := Build(Options{Phase: "Iβ", Monomers: 2, Chains: 1, Structure: "single-chain"})
	require.NoError(t, err)
	require.Equal(t, 1, c.NChains())
	assert.Equal(t, 2*(AtomsPerMonomer+1)-1, c.Len())
	assert.Equal(t, 2, c.Monomers(0))
	assert.Equal(t, IBeta, c.Phase)
	assert.Equal(t, SingleChain, c.Structure)
}

func TestBuildDefaults(t *testing.T) {
	c, err := Build(Options{Monomers: 3})
	require.NoError(t, err)
	assert.Equal(t, IBeta, c.Phase)
	assert.Equal(t, SingleChain, c.Structure)
	assert.Equal(t, 1, c.NChains())
	assert.Equal(t, 3, c.Monomers(0))
}

func TestBuildRejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		opts  Options
		check func(t *testing.T, err error)
	}{
		{"xyzsizes with a zero", Options{XYZSizes: []int{0, 1, 1}}, func(t *testing.T, err error) {
			var e *InvalidDimensionError
			require.ErrorAs(t, err, &e)
		}},
		{"negative monomers", Options{Monomers: -5}, func(t *testing.T, err error) {
			var e *InvalidDimensionError
			require.ErrorAs(t, err, &e)
			assert.Equal(t, -5, e.Value)
		}},
		{"unknown phase", Options{Phase: "X", Monomers: 2}, func(t *testing.T, err error) {
			var e *UnknownPhaseError
			require.ErrorAs(t, err, &e)
			assert.Equal(t, "X", e.Phase)
		}},
		{"unknown structure", Options{Structure: "tube", Monomers: 2}, func(t *testing.T, err error) {
			var e *UnsupportedStructureError
			require.ErrorAs(t, err, &e)
		}},
		{"two element sizes", Options{XYZSizes: []int{1, 1}}, func(t *testing.T, err error) {
			var e *InvalidDimensionError
			require.ErrorAs(t, err, &e)
		}},
		{"sizes given twice", Options{XYZSizes: []int{1, 1, 1}, ZSize: 2}, func(t *testing.T, err error) {
			var e *InvalidDimensionError
			require.ErrorAs(t, err, &e)
		}},
		{"incomplete single sizes", Options{XSize: 2, ZSize: 2}, func(t *testing.T, err error) {
			var e *InvalidDimensionError
			require.ErrorAs(t, err, &e)
		}},
		{"nothing to build", Options{}, func(t *testing.T, err error) {
			var e *InvalidDimensionError
			require.ErrorAs(t, err, &e)
		}},
		{"negative chains", Options{Monomers: 2, Chains: -1, Structure: "monolayer"}, func(t *testing.T, err error) {
			var e *InvalidDimensionError
			require.ErrorAs(t, err, &e)
		}},
		{"pbc smaller than the block", Options{Monomers: 6, PBC: []int{1, 1, 2}}, func(t *testing.T, err error) {
			var e *InvalidDimensionError
			require.ErrorAs(t, err, &e)
		}},
		{"more monomers than cells", Options{XYZSizes: []int{1, 1, 2}, Monomers: 5}, func(t *testing.T, err error) {
			var e *InsufficientReplicationError
			require.ErrorAs(t, err, &e)
			assert.Equal(t, 4, e.Available)
		}},
		{"bad layer", Options{Monomers: 2, Structure: "monolayer", Layer: "middle"}, func(t *testing.T, err error) {
			var e *InvalidDimensionError
			require.ErrorAs(t, err, &e)
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			crystal, err := Build(c.opts)
			assert.Nil(t, crystal)
			c.check(t, err)
		})
	}
}

func TestBuildSingleChainFromLargeGrid(t *testing.T) {
	c, err := Build(Options{Phase: "II", XSize: 3, YSize: 2, ZSize: 3, Structure: "single-chain"})
	require.NoError(t, err)
	require.Equal(t, 1, c.NChains())
	assert.Equal(t, 6, c.Monomers(0))
}

func TestBuildMonolayer(t *testing.T) {
	for _, p := range []string{"Ia", "Ib", "II", "III"} {
		c, err := Build(Options{Phase: p, Monomers: 5, Chains: 3, Structure: "monolayer"})
		require.NoError(t, err, p)
		require.Equal(t, 3, c.NChains(), p)
		for i := range c.Chains {
			assert.Equal(t, 5, c.Monomers(i))
			assert.Equal(t, 0, c.Chains[i].Role, "monolayers are made of a single chain role")
		}
	}
}

func TestBuildFibril(t *testing.T) {
	c, err := Build(Options{Phase: "Ib", Monomers: 4, Structure: "fibril"})
	require.NoError(t, err)
	require.Equal(t, 18, c.NChains())
	assert.Equal(t, 18*(4*AtomsPerMonomer+1), c.Len())

	c, err = Build(Options{Phase: "II", Monomers: 3, Chains: 18, Structure: "fibril", Workers: 2})
	require.NoError(t, err)
	require.Equal(t, 18, c.NChains())
	up, down := 0, 0
	for i, ch := range c.Chains {
		assert.Equal(t, 3, c.Monomers(i))
		if ch.Sense == Up {
			up++
		} else {
			down++
		}
	}
	assert.Equal(t, 9, up)
	assert.Equal(t, 9, down)
	assert.Equal(t, 9*(3*AtomsPerMonomer+1)+9*3*AtomsPerMonomer, c.Len())
}

func TestBuildChainIDs(t *testing.T) {
	c, err := Build(Options{Phase: "III", Monomers: 3, Chains: 4, Structure: "monolayer"})
	require.NoError(t, err)
	atoms := c.Atoms()
	require.Len(t, atoms, c.Len())
	coords := c.Coords()
	require.Equal(t, c.Len(), coords.NVecs())
	symbols := c.Symbols()
	row := 0
	for id, ch := range c.Chains {
		assert.Equal(t, id, ch.Chain)
		for i := range ch.Atoms {
			assert.Equal(t, id, atoms[row].Chain)
			assert.Equal(t, ch.Atoms[i].Symbol, symbols[row])
			assert.Equal(t, ch.Coords.Vec(i), coords.Vec(row))
			row++
		}
	}
	//copies, not the crystal's own atoms
	atoms[0].Name = "X"
	assert.NotEqual(t, "X", c.Chains[0].Atoms[0].Name)
}

func TestBuildPBC(t *testing.T) {
	c, err := Build(Options{Phase: "Ib", Monomers: 4, PBC: []int{2, 3, 2}})
	require.NoError(t, err)
	lat, err := phaseTable[IBeta].Cell.Vectors()
	require.NoError(t, err)
	pbc := [3]float64{2, 3, 2}
	for ax := 0; ax < 3; ax++ {
		for i := 0; i < 3; i++ {
			assert.InDelta(t, pbc[ax]*lat[ax][i], c.Lattice[ax][i], 1e-12)
		}
	}
	assert.Equal(t, [3]int{1, 1, 2}, c.Grid.N)
}

func TestBuildSizesKeepAllMonomers(t *testing.T) {
	c, err := Build(Options{Phase: "Ia", XYZSizes: []int{1, 1, 3}})
	require.NoError(t, err)
	assert.Equal(t, 6, c.Monomers(0))
	c, err = Build(Options{Phase: "Ia", XYZSizes: []int{1, 1, 3}, Monomers: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, c.Monomers(0))
	assert.InDelta(t, 3*phaseTable[IAlpha].Cell.C, math.Sqrt(c.Lattice[2][0]*c.Lattice[2][0]+c.Lattice[2][1]*c.Lattice[2][1]+c.Lattice[2][2]*c.Lattice[2][2]), 1e-9)
}

func TestBuildConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	lens := make([]int, 12)
	for i := range lens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := Build(Options{Phase: Phases[i%nphases].String(), Monomers: 4, Structure: "fibril"})
			if assert.NoError(t, err) {
				lens[i] = c.Len()
			}
		}(i)
	}
	wg.Wait()
	for i := range lens {
		assert.Equal(t, lens[i%nphases], lens[i])
	}
}

func TestBuildLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := Build(Options{Monomers: 2, Logger: logger})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "replication grid")
	assert.Contains(t, buf.String(), "phase=Iβ")
	assert.Contains(t, buf.String(), "built crystal")
}
