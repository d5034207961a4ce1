package cellulose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainSet(frags []*Fragment) map[int]bool {
	ret := make(map[int]bool)
	for _, f := range frags {
		ret[f.Chain] = true
	}
	return ret
}

func TestSelectSingleChain(t *testing.T) {
	for _, p := range Phases {
		_, _, frags := replicated(t, p, []int{3, 3, 2}, 0)
		sel, err := Select(frags, SingleChain, &phaseTable[p], LayerCenter)
		require.NoError(t, err)
		assert.Len(t, chainSet(sel), 1, p.String())
		assert.Len(t, sel, 2)
		for k, f := range sel {
			assert.Equal(t, [3]int{0, 0, k}, f.Index)
			assert.Equal(t, 0, f.Role)
		}
	}
}

func TestSelectMonolayer(t *testing.T) {
	d := &phaseTable[IBeta]
	_, _, frags := replicated(t, IBeta, []int{4, 3, 1}, 0)
	center, err := Select(frags, Monolayer, d, LayerCenter)
	require.NoError(t, err)
	require.Len(t, center, 3)
	for _, f := range center {
		assert.Equal(t, 1, f.Index[0])
		assert.Equal(t, d.MonolayerRole, f.Role)
	}
	edge, err := Select(frags, Monolayer, d, LayerEdge)
	require.NoError(t, err)
	require.Len(t, edge, 3)
	for _, f := range edge {
		assert.Equal(t, 0, f.Index[0])
	}

	//cellulose II sheets run along a
	_, _, frags = replicated(t, II, []int{3, 3, 1}, 0)
	sel, err := Select(frags, Monolayer, &phaseTable[II], LayerCenter)
	require.NoError(t, err)
	require.Len(t, sel, 3)
	for _, f := range sel {
		assert.Equal(t, 1, f.Index[1])
	}

	//Iα sheets run along the a-b diagonal
	_, _, frags = replicated(t, IAlpha, []int{4, 4, 1}, 0)
	sel, err = Select(frags, Monolayer, &phaseTable[IAlpha], LayerCenter)
	require.NoError(t, err)
	require.Len(t, sel, 4)
	for _, f := range sel {
		assert.Equal(t, 3, f.Index[0]+f.Index[1])
	}
}

func TestSelectFibril(t *testing.T) {
	for _, p := range Phases {
		d := &phaseTable[p]
		_, _, frags := replicated(t, p, []int{d.FibrilGrid[0], d.FibrilGrid[1], 2}, 0)
		sel, err := Select(frags, Fibril, d, LayerCenter)
		require.NoError(t, err, p.String())
		assert.Len(t, chainSet(sel), 18, p.String())
		assert.Len(t, sel, 36)
		//2, 3, 4, 4, 3 and 2 chains per sheet
		perSheet := make(map[int]map[int]bool)
		for _, f := range sel {
			s := d.Sheet(f.Index[0], f.Index[1])*d.ChainsPerCell + f.Role
			if perSheet[s] == nil {
				perSheet[s] = make(map[int]bool)
			}
			perSheet[s][f.Chain] = true
		}
		var counts []int
		for s := 0; len(counts) < len(perSheet); s++ {
			if c, ok := perSheet[s]; ok {
				counts = append(counts, len(c))
			}
		}
		assert.Equal(t, []int{2, 3, 4, 4, 3, 2}, counts, p.String())
	}
	_, _, frags := replicated(t, IBeta, []int{2, 2, 1}, 0)
	_, err := Select(frags, Fibril, &phaseTable[IBeta], LayerCenter)
	var ide *InvalidDimensionError
	require.ErrorAs(t, err, &ide)
}

func TestSelectIsAFilter(t *testing.T) {
	_, _, frags := replicated(t, IBeta, []int{3, 4, 2}, 0)
	sel, err := Select(frags, Fibril, &phaseTable[IBeta], LayerCenter)
	require.NoError(t, err)
	j := 0
	for _, f := range frags {
		if j < len(sel) && sel[j] == f {
			j++
		}
	}
	assert.Equal(t, len(sel), j, "selected fragments keep their identity and order")
}

func TestSelectUnsupported(t *testing.T) {
	_, _, frags := replicated(t, IBeta, []int{1, 1, 1}, 0)
	_, err := Select(frags, Structure("bundle"), &phaseTable[IBeta], LayerCenter)
	var use *UnsupportedStructureError
	require.ErrorAs(t, err, &use)
	assert.Equal(t, "bundle", use.Structure)
}
