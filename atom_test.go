package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocantIndex(Te *testing.T) {
	M := NewManager()
	f := M.NewFragment("", "")
	ats := mkAtoms(Te, M, f, "C", "C")
	a, b := ats[0], ats[1]
	a.AddLocant("1")
	got, ok := f.AtomByLocant("1")
	require.True(Te, ok)
	assert.Same(Te, a, got)

	b.AddLocant("1")
	got, _ = f.AtomByLocant("1")
	assert.Same(Te, b, got, "the last atom to get a locant owns it")
	assert.True(Te, b.RemoveLocant("1"))
	got, ok = f.AtomByLocant("1")
	require.True(Te, ok)
	assert.Same(Te, a, got, "removal falls back to another atom with the locant")

	a.ReplaceLocants("2", "2a")
	_, ok = f.AtomByLocant("1")
	assert.False(Te, ok)
	assert.Equal(Te, []string{"2", "2a"}, a.Locants())
	assert.Equal(Te, "2", a.FirstLocant())
	_, err := f.AtomByLocantOrErr("7")
	assert.True(Te, IsKind(err, KindStructure))

	a.ClearLocants()
	assert.Empty(Te, a.Locants())
	assert.Equal(Te, "", a.FirstLocant())
	require.NoError(Te, f.Validate())
}

//buildGlutamineLike makes a 5 carbon chain with locants 1 to 5, and an amide nitrogen
//on carbon 5.
func buildGlutamineLike(Te *testing.T, M *Manager) (*Fragment, []*Atom, *Atom) {
	f := M.NewFragment("aminoAcid", "")
	chain := mkAtoms(Te, M, f, "C", "C", "C", "C", "C")
	for i, a := range chain {
		a.AddLocant(string(rune('1' + i)))
		if i > 0 {
			mkBond(Te, M, chain[i-1], a, 1)
		}
	}
	n := mkAtoms(Te, M, f, "N")[0]
	n.Kind = Suffix
	mkBond(Te, M, chain[4], n, 1)
	return f, chain, n
}

func TestAminoAcidStyleLocants(Te *testing.T) {
	M := NewManager()
	f, chain, n := buildGlutamineLike(Te, M)
	assert.True(Te, n.HasLocant("N5"))
	assert.False(Te, n.HasLocant("N4"), "C4 is not reachable without crossing C5")
	assert.False(Te, n.HasLocant("O5"))
	assert.False(Te, chain[4].HasLocant("N5"))
	assert.False(Te, n.HasLocant("N'5"))
	n.AddLocant("N'")
	assert.True(Te, n.HasLocant("N'5"))

	got, ok := f.AtomByLocant("N5")
	require.True(Te, ok)
	assert.Same(Te, n, got)

	//an oxygen on the nitrogen is found through it
	o := mkAtoms(Te, M, f, "O")[0]
	mkBond(Te, M, n, o, 1)
	assert.False(Te, o.HasLocant("O5"), "the suffix nitrogen is not crossed")
}

func TestPermutationParity(Te *testing.T) {
	M := NewManager()
	f := M.NewFragment("", "")
	at := mkAtoms(Te, M, f, "C", "F", "Cl", "Br", "I")
	a, b, c, d := at[0], at[1], at[2], at[3]
	tests := []struct {
		name string
		perm [4]*Atom
		want int
		ok   bool
	}{
		{"identity", [4]*Atom{a, b, c, d}, 1, true},
		{"one swap", [4]*Atom{b, a, c, d}, -1, true},
		{"two swaps", [4]*Atom{b, a, d, c}, 1, true},
		{"three cycle", [4]*Atom{b, c, a, d}, 1, true},
		{"four cycle", [4]*Atom{b, c, d, a}, -1, true},
		{"foreign atom", [4]*Atom{a, b, c, at[4]}, 0, false},
		{"repeated atom", [4]*Atom{a, a, c, d}, 0, false},
	}
	for _, t := range tests {
		got, ok := PermutationParity([4]*Atom{a, b, c, d}, t.perm)
		assert.Equal(Te, t.ok, ok, t.name)
		if t.ok {
			assert.Equal(Te, t.want, got, t.name)
		}
	}
	p := &AtomParity{Refs: [4]*Atom{a, b, c, d}, Parity: -1}
	eq, ok := p.Equivalent([4]*Atom{a, c, b, d})
	require.True(Te, ok)
	assert.Equal(Te, 1, eq)
}

func TestBondStereoValueFor(Te *testing.T) {
	M := NewManager()
	f := M.NewFragment("", "")
	at := mkAtoms(Te, M, f, "C", "C", "F", "H", "Cl", "H")
	c1, c2 := at[0], at[1]
	b := mkBond(Te, M, c1, c2, 2)
	mkBond(Te, M, c1, at[2], 1)
	mkBond(Te, M, c1, at[3], 1)
	mkBond(Te, M, c2, at[4], 1)
	mkBond(Te, M, c2, at[5], 1)
	b.SetStereo(&BondStereo{Refs: [4]*Atom{at[2], c1, c2, at[4]}, Value: Trans})

	s := b.Stereo()
	v, ok := s.ValueFor(at[2], at[4])
	require.True(Te, ok)
	assert.Equal(Te, Trans, v)
	v, _ = s.ValueFor(at[3], at[4])
	assert.Equal(Te, Cis, v)
	v, _ = s.ValueFor(at[3], at[5])
	assert.Equal(Te, Trans, v)
	_, ok = s.ValueFor(at[4], at[2])
	assert.False(Te, ok, "substituents given for the wrong ends")
}

func TestBondBasics(Te *testing.T) {
	M := NewManager()
	f := M.NewFragment("", "")
	at := mkAtoms(Te, M, f, "C", "O", "N")
	b := mkBond(Te, M, at[0], at[1], 1)
	assert.Same(Te, at[1], b.Cross(at[0]))
	assert.Same(Te, at[0], b.Cross(at[1]))
	assert.Panics(Te, func() { b.Cross(at[2]) })
	assert.True(Te, b.Contains(at[0]))
	assert.False(Te, b.Contains(at[2]))
	require.NoError(Te, b.SetOrder(2))
	assert.Equal(Te, 2, at[0].IncomingValency())
	assert.Error(Te, b.SetOrder(4))
	assert.Same(Te, b, at[1].BondTo(at[0]))
	assert.Nil(Te, at[2].BondTo(at[0]))
}

func TestErrorDecoration(Te *testing.T) {
	err := Errorf(KindStereo, "no centre for %s", "R")
	var e Error = err
	e.Decorate("Apply")
	assert.Equal(Te, []string{"Apply"}, e.Decorate(""))
	assert.Contains(Te, err.Error(), "stereochemistry")
	assert.Contains(Te, err.Error(), "Apply")
	assert.Equal(Te, "no centre for R", err.Message())
	assert.Nil(Te, ErrDecorate(nil, "x"))
	assert.False(Te, IsKind(err, KindRing))
}
