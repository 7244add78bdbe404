package stereo

import (
	"testing"

	chem "github.com/rmera/goname"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//mol is a small molecule builder for tests. Atoms are addressed by name.
type mol struct {
	Te *testing.T
	M  *chem.Manager
	F  *chem.Fragment
	at map[string]*chem.Atom
}

func newMol(Te *testing.T) *mol {
	M := chem.NewManager()
	return &mol{Te: Te, M: M, F: M.NewFragment("", ""), at: make(map[string]*chem.Atom)}
}

func (m *mol) atom(name, symbol string) *chem.Atom {
	m.Te.Helper()
	a, err := m.M.CreateAtom(symbol, m.F)
	require.NoError(m.Te, err)
	m.at[name] = a
	return a
}

func (m *mol) bond(n1, n2 string, order int) *chem.Bond {
	m.Te.Helper()
	b, err := m.M.CreateBond(m.at[n1], m.at[n2], order)
	require.NoError(m.Te, err)
	return b
}

//hydrogenOf returns the first hydrogen bonded to a.
func hydrogenOf(Te *testing.T, a *chem.Atom) *chem.Atom {
	Te.Helper()
	for _, n := range a.Neighbours() {
		if n.Symbol() == "H" {
			return n
		}
	}
	require.FailNow(Te, "no hydrogen", "atom %s", a)
	return nil
}

func butan2ol(Te *testing.T, reversed bool) *mol {
	m := newMol(Te)
	names := []string{"C1", "C2", "O", "C3", "C4"}
	symbols := map[string]string{"C1": "C", "C2": "C", "O": "O", "C3": "C", "C4": "C"}
	if reversed {
		names = []string{"C4", "C3", "O", "C2", "C1"}
	}
	for _, n := range names {
		m.atom(n, symbols[n])
	}
	if reversed {
		m.bond("C4", "C3", 1)
		m.bond("C2", "O", 1)
		m.bond("C3", "C2", 1)
		m.bond("C2", "C1", 1)
	} else {
		m.bond("C1", "C2", 1)
		m.bond("C2", "C3", 1)
		m.bond("C3", "C4", 1)
		m.bond("C2", "O", 1)
	}
	require.NoError(Te, m.M.MakeHydrogensExplicit())
	return m
}

func TestColoursReachFixedPoint(Te *testing.T) {
	m := butan2ol(Te, false)
	A := NewAnalyser(m.F)
	before := make([]int, len(A.nodes))
	for i, n := range A.nodes {
		before[i] = n.colour
	}
	assert.False(Te, refine(A.nodes))
	for i, n := range A.nodes {
		assert.Equal(Te, before[i], n.colour)
	}
	assert.Equal(Te, 0, refineToFixedPoint(A.nodes))
}

func TestColoursDoNotDependOnCreationOrder(Te *testing.T) {
	m1 := butan2ol(Te, false)
	m2 := butan2ol(Te, true)
	A1, A2 := NewAnalyser(m1.F), NewAnalyser(m2.F)
	for _, n := range []string{"C1", "C2", "O", "C3", "C4"} {
		c1, ok := A1.Colour(m1.at[n])
		require.True(Te, ok)
		c2, ok := A2.Colour(m2.at[n])
		require.True(Te, ok)
		assert.Equal(Te, c1, c2, n)
	}
	c1, _ := A1.Colour(m1.at["C1"])
	c3, _ := A1.Colour(m1.at["C3"])
	assert.Less(Te, c1, c3, "ethyl ranks above methyl")
	_, ok := A1.Colour(m2.at["C1"])
	assert.False(Te, ok)

	for _, A := range []*Analyser{A1, A2} {
		cs := A.StereoCentres()
		require.Len(Te, cs, 1)
		assert.Equal(Te, "H", cs[0].Refs[0].Symbol())
	}
	cs := A1.StereoCentres()
	assert.Same(Te, m1.at["C2"], cs[0].Atom)
	assert.Equal(Te, [4]*chem.Atom{hydrogenOf(Te, m1.at["C2"]), m1.at["C1"], m1.at["C3"], m1.at["O"]}, cs[0].Refs)
}

//pent2ene builds C1-C2=C3-C4-C5, creating atoms and bonds from C5 backwards if reversed.
func pent2ene(Te *testing.T, reversed bool) *mol {
	m := newMol(Te)
	names := []string{"C1", "C2", "C3", "C4", "C5"}
	pairs := [][2]string{{"C1", "C2"}, {"C2", "C3"}, {"C3", "C4"}, {"C4", "C5"}}
	if reversed {
		names = []string{"C5", "C4", "C3", "C2", "C1"}
		pairs = [][2]string{{"C5", "C4"}, {"C4", "C3"}, {"C3", "C2"}, {"C2", "C1"}}
	}
	for _, n := range names {
		m.atom(n, "C")
	}
	for _, p := range pairs {
		order := 1
		if p[0]+p[1] == "C2C3" || p[0]+p[1] == "C3C2" {
			order = 2
		}
		m.bond(p[0], p[1], order)
	}
	require.NoError(Te, m.M.MakeHydrogensExplicit())
	return m
}

func (m *mol) nameOf(a *chem.Atom) string {
	for n, v := range m.at {
		if v == a {
			return n
		}
	}
	return a.Symbol()
}

func TestStereoBondsDoNotDependOnCreationOrder(Te *testing.T) {
	m1 := pent2ene(Te, false)
	m2 := pent2ene(Te, true)
	sb1 := NewAnalyser(m1.F).StereoBonds()
	sb2 := NewAnalyser(m2.F).StereoBonds()
	require.Len(Te, sb1, 1)
	require.Len(Te, sb2, len(sb1))
	var n1, n2 []string
	for i := range sb1[0].Refs {
		n1 = append(n1, m1.nameOf(sb1[0].Refs[i]))
		n2 = append(n2, m2.nameOf(sb2[0].Refs[3-i]))
	}
	assert.Equal(Te, []string{"C1", "C2", "C3", "C4"}, n1)
	//the bond was created from the other end, so the references are read backwards
	assert.Equal(Te, n1, n2)
}

func TestMultipleBondsRankAboveSingle(Te *testing.T) {
	//an aldehyde carbon (O,O,H) ranks above a hydroxymethyl carbon (O,H,H)
	m := newMol(Te)
	m.atom("C", "C")
	m.atom("CHO", "C")
	m.atom("O1", "O")
	m.atom("CH2OH", "C")
	m.atom("O2", "O")
	m.atom("N", "N")
	m.bond("C", "CHO", 1)
	m.bond("CHO", "O1", 2)
	m.bond("C", "CH2OH", 1)
	m.bond("CH2OH", "O2", 1)
	m.bond("C", "N", 1)
	require.NoError(Te, m.M.MakeHydrogensExplicit())
	A := NewAnalyser(m.F)
	cho, _ := A.Colour(m.at["CHO"])
	ch2oh, _ := A.Colour(m.at["CH2OH"])
	assert.Greater(Te, cho, ch2oh)
	cs := A.StereoCentres()
	require.Len(Te, cs, 1)
	assert.Same(Te, m.at["CH2OH"], cs[0].Refs[1])
	assert.Same(Te, m.at["CHO"], cs[0].Refs[2])
	assert.Same(Te, m.at["N"], cs[0].Refs[3])
}

func TestStereoBondsFound(Te *testing.T) {
	m := newMol(Te)
	for _, n := range []string{"C1", "C2", "C3", "C4"} {
		m.atom(n, "C")
	}
	m.bond("C1", "C2", 1)
	db := m.bond("C2", "C3", 2)
	m.bond("C3", "C4", 1)
	require.NoError(Te, m.M.MakeHydrogensExplicit())
	sb := NewAnalyser(m.F).StereoBonds()
	require.Len(Te, sb, 1)
	assert.Same(Te, db, sb[0].Bond)
	assert.Equal(Te, [4]*chem.Atom{m.at["C1"], m.at["C2"], m.at["C3"], m.at["C4"]}, sb[0].Refs)

	//isobutene has two methyls on one end
	m = newMol(Te)
	for _, n := range []string{"C1", "C2", "C3", "C4"} {
		m.atom(n, "C")
	}
	m.bond("C1", "C2", 2)
	m.bond("C2", "C3", 1)
	m.bond("C2", "C4", 1)
	require.NoError(Te, m.M.MakeHydrogensExplicit())
	assert.Empty(Te, NewAnalyser(m.F).StereoBonds())
}

func TestImineNitrogenEnd(Te *testing.T) {
	//acetaldoxime: the nitrogen lone pair is the other substituent
	m := newMol(Te)
	m.atom("C1", "C")
	m.atom("C2", "C")
	m.atom("N", "N")
	m.atom("O", "O")
	m.bond("C1", "C2", 1)
	m.bond("C2", "N", 2)
	m.bond("N", "O", 1)
	require.NoError(Te, m.M.MakeHydrogensExplicit())
	sb := NewAnalyser(m.F).StereoBonds()
	require.Len(Te, sb, 1)
	assert.Same(Te, m.at["C1"], sb[0].Refs[0])
	assert.Same(Te, m.at["O"], sb[0].Refs[3])
}

func TestSulfoxideCentre(Te *testing.T) {
	m := newMol(Te)
	m.atom("S", "S")
	m.atom("O", "O")
	m.atom("Me", "C")
	m.atom("Et1", "C")
	m.atom("Et2", "C")
	m.bond("S", "O", 2)
	m.bond("S", "Me", 1)
	m.bond("S", "Et1", 1)
	m.bond("Et1", "Et2", 1)
	require.NoError(Te, m.M.MakeHydrogensExplicit())
	cs := NewAnalyser(m.F).StereoCentres()
	require.Len(Te, cs, 1)
	s := m.at["S"]
	assert.Same(Te, s, cs[0].Atom)
	assert.Same(Te, s, cs[0].Refs[0], "the lone pair comes first")
	assert.Same(Te, m.at["O"], cs[0].Refs[3])
}
