package rings

import (
	"testing"

	chem "github.com/rmera/goname"
	"github.com/rmera/goname/chemgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/topo"
)

//build creates a fragment with n carbons, bonded as given by the index pairs.
func build(Te *testing.T, n int, pairs ...[2]int) (*chem.Manager, *chem.Fragment, []*chem.Atom) {
	Te.Helper()
	M := chem.NewManager()
	f := M.NewFragment("", "")
	ats := make([]*chem.Atom, 0, n)
	for i := 0; i < n; i++ {
		a, err := M.CreateAtom("C", f)
		require.NoError(Te, err)
		ats = append(ats, a)
	}
	for _, p := range pairs {
		_, err := M.CreateBond(ats[p[0]], ats[p[1]], 1)
		require.NoError(Te, err)
	}
	return M, f, ats
}

func cycle(from, to int) [][2]int {
	var ret [][2]int
	for i := from; i < to; i++ {
		ret = append(ret, [2]int{i, i + 1})
	}
	return append(ret, [2]int{to, from})
}

func cyclohexane(Te *testing.T) (*chem.Manager, *chem.Fragment, []*chem.Atom) {
	return build(Te, 6, cycle(0, 5)...)
}

func naphthaleneSkeleton(Te *testing.T) (*chem.Manager, *chem.Fragment, []*chem.Atom) {
	pairs := append(cycle(0, 5), [2]int{4, 6}, [2]int{6, 7}, [2]int{7, 8}, [2]int{8, 9}, [2]int{9, 5})
	return build(Te, 10, pairs...)
}

//inCycleOracle uses gonum's cycle enumeration to find the atoms in rings.
func inCycleOracle(f *chem.Fragment) map[int]bool {
	ret := make(map[int]bool)
	for _, c := range topo.UndirectedCyclesIn(chemgraph.FromChem(f)) {
		for _, n := range c {
			ret[int(n.ID())] = true
		}
	}
	return ret
}

func TestCyclohexaneAtomsInCycle(Te *testing.T) {
	M, f, ats := cyclohexane(Te)
	methyl, err := M.CreateAtom("C", f)
	require.NoError(Te, err)
	_, err = M.CreateBond(ats[0], methyl, 1)
	require.NoError(Te, err)

	AssignWhetherAtomsAreInCycles(f)
	for _, a := range ats {
		assert.True(Te, a.InCycle(), a.String())
	}
	assert.False(Te, methyl.InCycle())

	rs := SetOfSmallestRings(f)
	require.Len(Te, rs, 1)
	assert.Equal(Te, 6, rs[0].Size())
	assert.False(Te, rs[0].HasAtom(methyl))
	assert.Equal(Te, 0, rs[0].FusedBondCount())
}

func TestInCycleAgainstOracle(Te *testing.T) {
	tests := []struct {
		name  string
		n     int
		pairs [][2]int
	}{
		{"chain", 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}},
		{"triangle with tail", 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 1}}},
		{"two rings joined by a chain", 9, append(append(cycle(0, 2), cycle(6, 8)...), [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 5}, [2]int{5, 6})},
		{"spiro", 5, append(cycle(0, 2), [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 2})},
		{"bicyclo[2.2.1]", 7, append(cycle(0, 5), [2]int{0, 6}, [2]int{6, 3})},
		{"disconnected", 7, append(cycle(0, 3), [2]int{4, 5}, [2]int{5, 6})},
		{"branched tail", 8, append(cycle(0, 3), [2]int{0, 4}, [2]int{4, 5}, [2]int{4, 6}, [2]int{6, 7})},
	}
	for _, t := range tests {
		_, f, ats := build(Te, t.n, t.pairs...)
		AssignWhetherAtomsAreInCycles(f)
		want := inCycleOracle(f)
		for _, a := range ats {
			assert.Equal(Te, want[a.ID], a.InCycle(), "%s: atom %s", t.name, a)
		}
	}
}

func TestPathsBetweenAtoms(Te *testing.T) {
	_, f, ats := cyclohexane(Te)
	paths := IntraFragmentPathsBetweenAtoms(ats[0], ats[3], f)
	require.Len(Te, paths, 2)
	assert.ElementsMatch(Te, [][]*chem.Atom{{ats[1], ats[2]}, {ats[5], ats[4]}}, paths)

	paths = IntraFragmentPathsBetweenAtoms(ats[0], ats[1], f)
	require.Len(Te, paths, 2)
	assert.ElementsMatch(Te, [][]*chem.Atom{{}, {ats[5], ats[4], ats[3], ats[2]}}, paths)

	assert.Panics(Te, func() { IntraFragmentPathsBetweenAtoms(nil, ats[1], f) })
}

func TestPathsStayInFragment(Te *testing.T) {
	M, f, ats := build(Te, 3, [2]int{0, 1}, [2]int{1, 2})
	g := M.NewFragment("", "")
	x, err := M.CreateAtom("C", g)
	require.NoError(Te, err)
	//a shortcut through another fragment is not a path
	_, err = M.CreateBond(ats[0], x, 1)
	require.NoError(Te, err)
	_, err = M.CreateBond(x, ats[2], 1)
	require.NoError(Te, err)
	paths := IntraFragmentPathsBetweenAtoms(ats[0], ats[2], f)
	require.Len(Te, paths, 1)
	assert.Equal(Te, []*chem.Atom{ats[1]}, paths[0])
	AssignWhetherAtomsAreInCycles(f)
	assert.False(Te, ats[1].InCycle())
}
