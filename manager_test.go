package chem

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCreateAtomAndBondErrors(Te *testing.T) {
	M := NewManager()
	f := M.NewFragment("", "")
	_, err := M.CreateAtom("Qq", f)
	assert.True(Te, IsKind(err, KindStructure))
	r, err := M.CreateAtom("R", f)
	require.NoError(Te, err)
	assert.Equal(Te, 0, r.Z())

	ats := mkAtoms(Te, M, f, "C", "C")
	_, err = M.CreateBond(ats[0], ats[0], 1)
	assert.True(Te, IsKind(err, KindStructure), "self bond")
	_, err = M.CreateBond(ats[0], ats[1], 0)
	assert.True(Te, IsKind(err, KindStructure), "bond order")
	_, err = M.CreateBond(ats[0], ats[1], 4)
	assert.Error(Te, err)
	mkBond(Te, M, ats[0], ats[1], 1)
	_, err = M.CreateBond(ats[1], ats[0], 1)
	assert.True(Te, IsKind(err, KindStructure), "duplicate bond")

	g := M.NewFragment("", "")
	other := mkAtoms(Te, M, g, "O")[0]
	require.NoError(Te, M.RemoveFragment(g))
	_, err = M.CreateBond(ats[0], other, 1)
	assert.True(Te, IsKind(err, KindStructure), "dead fragment")
	_, err = M.CreateAtom("C", g)
	assert.True(Te, IsKind(err, KindStructure))
	assert.Panics(Te, func() { M.CreateBond(nil, ats[0], 1) })
}

func TestAtomIDsAreUniquePerSession(Te *testing.T) {
	M1, M2 := NewManager(), NewManager()
	a := mkAtoms(Te, M1, M1.NewFragment("", ""), "C", "C", "C")
	b := mkAtoms(Te, M2, M2.NewFragment("", ""), "C")
	assert.Equal(Te, 1, a[0].ID)
	assert.Equal(Te, 3, a[2].ID)
	assert.Equal(Te, 1, b[0].ID, "sessions don't share ids")
	assert.NotEqual(Te, M1.Session(), M2.Session())
	got, ok := M1.AtomByID(2)
	require.True(Te, ok)
	assert.Same(Te, a[1], got)
}

func TestIncorporateFragment(Te *testing.T) {
	M := NewManager()
	child := M.NewFragment("substituent", "")
	parent := M.NewFragment("parent", "")
	third := M.NewFragment("substituent", "")
	c := mkAtoms(Te, M, child, "C", "C")
	p := mkAtoms(Te, M, parent, "C")[0]
	t := mkAtoms(Te, M, third, "O")[0]
	cc := mkBond(Te, M, c[0], c[1], 1)
	cp := mkBond(Te, M, c[0], p, 1)
	ct := mkBond(Te, M, c[1], t, 1)
	require.NoError(Te, child.AddOutAtom(c[1], 1, false))
	c[1].AddLocant("2")

	assert.Len(Te, M.InterFragmentBonds(child), 2)
	require.NoError(Te, M.IncorporateFragment(child, parent))

	assert.False(Te, M.IsLive(child))
	assert.Equal(Te, 0, child.Len())
	for _, a := range c {
		assert.True(Te, parent.HasAtom(a))
		assert.Same(Te, parent, a.Frag())
	}
	assert.True(Te, parent.HasBond(cc))
	assert.True(Te, parent.HasBond(cp), "bond to the parent became internal")
	assert.Equal(Te, []*Bond{ct}, M.InterFragmentBonds(parent))
	assert.Equal(Te, []*Bond{ct}, M.InterFragmentBonds(third), "the bond to the third fragment is kept")
	require.Equal(Te, 1, parent.OutAtomCount())
	assert.Same(Te, c[1], parent.OutAtom(0).Atom)
	got, ok := parent.AtomByLocant("2")
	require.True(Te, ok)
	assert.Same(Te, c[1], got)
	require.NoError(Te, parent.Validate())

	err := M.IncorporateFragment(child, parent)
	assert.True(Te, IsKind(err, KindStructure), "double incorporation")
	err = M.IncorporateFragment(parent, parent)
	assert.True(Te, IsKind(err, KindStructure))
}

func TestIncorporateFragmentWithBond(Te *testing.T) {
	M := NewManager()
	child := M.NewFragment("", "")
	parent := M.NewFragment("", "")
	c := mkAtoms(Te, M, child, "O")[0]
	p := mkAtoms(Te, M, parent, "C")[0]
	err := M.IncorporateFragmentWithBond(child, p, parent, c, 1)
	assert.True(Te, IsKind(err, KindStructure), "atoms swapped")
	require.NoError(Te, M.IncorporateFragmentWithBond(child, c, parent, p, 2))
	b := c.BondTo(p)
	require.NotNil(Te, b)
	assert.Equal(Te, 2, b.Order())
	assert.True(Te, parent.HasBond(b))
}

func TestRemoveAtomScrubsIndexes(Te *testing.T) {
	M := NewManager()
	f := M.NewFragment("", "")
	g := M.NewFragment("", "")
	ats := mkAtoms(Te, M, f, "C", "C", "F", "Cl", "Br")
	other := mkAtoms(Te, M, g, "C")[0]
	for _, a := range ats[1:] {
		mkBond(Te, M, ats[0], a, 1)
	}
	mkBond(Te, M, ats[1], other, 1)
	ats[1].AddLocant("2")
	require.NoError(Te, f.AddOutAtom(ats[1], 1, true))
	require.NoError(Te, f.AddInAtom(ats[1], 1))
	require.NoError(Te, f.AddFunctionalAtom(ats[1]))
	require.NoError(Te, f.SetDefaultInAtom(ats[1]))
	ats[0].SetParity(&AtomParity{Refs: [4]*Atom{ats[1], ats[2], ats[3], ats[4]}, Parity: 1})

	require.NoError(Te, M.RemoveAtomAndAssociatedBonds(ats[1]))
	_, ok := f.AtomByLocant("2")
	assert.False(Te, ok)
	assert.False(Te, f.HasAtom(ats[1]))
	assert.Nil(Te, ats[1].Frag())
	assert.Equal(Te, 0, f.OutAtomCount())
	assert.Empty(Te, f.InAtoms())
	assert.Empty(Te, f.FunctionalAtoms())
	assert.Same(Te, ats[0], f.DefaultInAtom())
	assert.Empty(Te, M.InterFragmentBonds(f))
	assert.Empty(Te, M.InterFragmentBonds(g))
	assert.Equal(Te, 0, other.BondCount())
	assert.Equal(Te, 3, ats[0].BondCount())
	assert.Nil(Te, ats[0].Parity(), "parity referenced the removed atom")
	require.NoError(Te, f.Validate())

	err := M.RemoveAtomAndAssociatedBonds(ats[1])
	assert.True(Te, IsKind(err, KindStructure))
}

func TestRemoveBond(Te *testing.T) {
	M := NewManager()
	f := M.NewFragment("", "")
	ats := mkAtoms(Te, M, f, "C", "C")
	b := mkBond(Te, M, ats[0], ats[1], 1)
	require.NoError(Te, M.RemoveBond(b))
	assert.Equal(Te, 0, f.BondCount())
	assert.Nil(Te, ats[0].BondTo(ats[1]))
	assert.True(Te, IsKind(M.RemoveBond(b), KindStructure))
}

func TestReplaceTerminalAtomWithFragment(Te *testing.T) {
	M := NewManager()
	f := M.NewFragment("", "")
	ats := mkAtoms(Te, M, f, "C", "C", "R")
	mkBond(Te, M, ats[0], ats[1], 1)
	mkBond(Te, M, ats[1], ats[2], 2)
	g := M.NewFragment("", "")
	repl := mkAtoms(Te, M, g, "N", "C")
	mkBond(Te, M, repl[0], repl[1], 1)

	err := M.ReplaceTerminalAtomWithFragment(ats[1], repl[0])
	assert.True(Te, IsKind(err, KindStructure), "not a terminal atom")

	require.NoError(Te, M.ReplaceTerminalAtomWithFragment(ats[2], repl[0]))
	assert.False(Te, M.IsLive(g))
	assert.False(Te, f.HasAtom(ats[2]))
	assert.True(Te, f.HasAtom(repl[0]))
	assert.True(Te, f.HasAtom(repl[1]))
	b := ats[1].BondTo(repl[0])
	require.NotNil(Te, b)
	assert.Equal(Te, 2, b.Order(), "the order of the replaced bond is kept")
	assert.True(Te, f.HasBond(b))
	require.NoError(Te, f.Validate())
}

func TestUnifiedFragment(Te *testing.T) {
	M := NewManager()
	f := M.NewFragment("", "")
	g := M.NewFragment("", "")
	a := mkAtoms(Te, M, f, "C", "C")
	b := mkAtoms(Te, M, g, "O")
	mkBond(Te, M, a[0], a[1], 1)
	inter := mkBond(Te, M, a[1], b[0], 1)

	uni := M.UnifiedFragment()
	assert.True(Te, M.IsLive(uni))
	assert.Equal(Te, 3, uni.Len())
	assert.Equal(Te, 2, uni.BondCount())
	assert.True(Te, uni.HasBond(inter))
	for _, v := range append(a, b...) {
		assert.Same(Te, uni, v.Frag())
	}
	assert.Equal(Te, 2, f.Len(), "the original fragments keep their maps")
	assert.True(Te, f.HasAtom(a[0]))
	require.NoError(Te, uni.Validate())

	assert.False(Te, M.IsLive(f))
	assert.False(Te, M.IsLive(g))
	assert.Equal(Te, []*Fragment{uni}, M.Fragments())

	h := mkAtoms(Te, M, uni, "H")[0]
	nb := mkBond(Te, M, b[0], h, 1)
	assert.True(Te, uni.HasBond(nb))
}

func TestRemoveAfterUnify(Te *testing.T) {
	M := NewManager()
	f := M.NewFragment("", "")
	g := M.NewFragment("", "")
	a := mkAtoms(Te, M, f, "C", "C")
	o := mkAtoms(Te, M, g, "O")[0]
	mkBond(Te, M, a[0], a[1], 1)
	inter := mkBond(Te, M, a[1], o, 1)

	uni := M.UnifiedFragment()
	require.NoError(Te, M.RemoveAtomAndAssociatedBonds(o))
	assert.False(Te, uni.HasBond(inter))
	assert.False(Te, uni.HasAtom(o))
	assert.Len(Te, a[1].Neighbours(), 1)
	assert.Nil(Te, M.InterFragmentBonds(f))
	assert.Nil(Te, M.InterFragmentBonds(g))
	require.NoError(Te, uni.Validate())

	//the originals are gone from the session, they can't be removed again
	err := M.RemoveFragment(f)
	assert.True(Te, IsKind(err, KindStructure))
	assert.Equal(Te, 2, uni.Len())

	require.NoError(Te, M.RemoveBond(a[0].BondTo(a[1])))
	assert.Equal(Te, 0, uni.BondCount())
	require.NoError(Te, M.RemoveFragment(uni))
	assert.Empty(Te, M.Fragments())
}

type atomView struct {
	Symbol  string
	Charge  int
	Spare   int
	Out     int
	H       int
	HasH    bool
	Locants []string
	Parity  int
	Refs    []int //positions of the parity references in the fragment, -1 if outside
}

func viewOf(f *Fragment, suffix string) []atomView {
	pos := make(map[*Atom]int)
	for i, a := range f.Atoms() {
		pos[a] = i
	}
	var ret []atomView
	for _, a := range f.Atoms() {
		h, hasH := a.ExplicitHydrogens()
		v := atomView{Symbol: a.Symbol(), Charge: a.Charge(), Spare: a.SpareValency(), Out: a.OutValency(), H: h, HasH: hasH}
		for _, l := range a.Locants() {
			v.Locants = append(v.Locants, strings.TrimSuffix(l, suffix))
		}
		if p := a.Parity(); p != nil {
			v.Parity = p.Parity
			for _, r := range p.Refs {
				i, ok := pos[r]
				if !ok {
					i = -1
				}
				v.Refs = append(v.Refs, i)
			}
		}
		ret = append(ret, v)
	}
	return ret
}

func TestCopyAndRelabel(Te *testing.T) {
	M := NewManager()
	f := M.NewFragment("ring", "benzo")
	ats := mkAtoms(Te, M, f, "C", "F", "Cl", "Br", "C", "C", "N")
	for _, a := range ats[1:4] {
		mkBond(Te, M, ats[0], a, 1)
	}
	mkBond(Te, M, ats[0], ats[4], 1)
	db := mkBond(Te, M, ats[4], ats[5], 2)
	mkBond(Te, M, ats[5], ats[6], 1)
	for i, a := range ats {
		a.AddLocant(string(rune('1' + i)))
	}
	ats[6].SetCharge(1)
	ats[6].SetExplicitHydrogens(3)
	ats[5].AddSpareValency(1)
	ats[0].SetParity(&AtomParity{Refs: [4]*Atom{ats[1], ats[2], ats[3], ats[4]}, Parity: -1})
	db.SetStereo(&BondStereo{Refs: [4]*Atom{ats[0], ats[4], ats[5], ats[6]}, Value: Trans})
	require.NoError(Te, f.AddOutAtom(ats[6], 1, true))
	require.NoError(Te, f.AddFunctionalAtom(ats[1]))

	clone, err := M.CopyAndRelabel(f, "'")
	require.NoError(Te, err)
	assert.Equal(Te, f.Len(), clone.Len())
	assert.Equal(Te, f.BondCount(), clone.BondCount())
	assert.Equal(Te, "benzo", clone.Subtype)

	ids := make(map[int]bool)
	for _, a := range f.Atoms() {
		ids[a.ID] = true
	}
	for _, a := range clone.Atoms() {
		assert.False(Te, ids[a.ID], "clone ids must be new")
		for _, l := range a.Locants() {
			assert.True(Te, strings.HasSuffix(l, "'"))
		}
	}
	if diff := cmp.Diff(viewOf(f, ""), viewOf(clone, "'")); diff != "" {
		Te.Errorf("clone differs from original (-orig +clone):\n%s", diff)
	}
	for i, b := range f.Bonds() {
		assert.Equal(Te, b.Order(), clone.Bonds()[i].Order())
	}
	cdb := clone.Bonds()[4]
	require.NotNil(Te, cdb.Stereo())
	assert.Equal(Te, Trans, cdb.Stereo().Value)
	for _, r := range cdb.Stereo().Refs {
		assert.True(Te, clone.HasAtom(r))
	}
	require.Equal(Te, 1, clone.OutAtomCount())
	assert.True(Te, clone.HasAtom(clone.OutAtom(0).Atom))
	assert.Equal(Te, "7'", clone.OutAtom(0).Atom.FirstLocant())
	got, ok := clone.AtomByLocant("1'")
	require.True(Te, ok)
	assert.Equal(Te, "C", got.Symbol())
	require.NoError(Te, clone.Validate())

	plain, err := M.CopyFragment(f)
	require.NoError(Te, err)
	assert.Equal(Te, ats[0].Locants(), plain.FirstAtom().Locants())
}

func TestKekulizeBenzene(Te *testing.T) {
	M := NewManager()
	f := M.NewFragment("", "")
	ring := mkAtoms(Te, M, f, "C", "C", "C", "C", "C", "C")
	mkRing(Te, M, ring)
	for _, a := range ring {
		a.AddSpareValency(1)
	}
	require.NoError(Te, M.ConvertSpareValenciesToDoubleBonds())
	doubles := 0
	for _, b := range f.Bonds() {
		if b.Order() == 2 {
			doubles++
		}
	}
	assert.Equal(Te, 3, doubles)
	for _, a := range ring {
		assert.Equal(Te, 0, a.SpareValency())
		assert.Equal(Te, 3, a.IncomingValency())
	}
	require.NoError(Te, M.CheckValencies())
}

func TestKekulizeNaphthalene(Te *testing.T) {
	M := NewManager()
	f := M.NewFragment("", "")
	ats := mkAtoms(Te, M, f, "C", "C", "C", "C", "C", "C", "C", "C", "C", "C")
	//two fused six-membered rings, atoms 0 and 5 are the fusion atoms
	mkRing(Te, M, ats[:6])
	mkBond(Te, M, ats[5], ats[6], 1)
	mkBond(Te, M, ats[6], ats[7], 1)
	mkBond(Te, M, ats[7], ats[8], 1)
	mkBond(Te, M, ats[8], ats[9], 1)
	mkBond(Te, M, ats[9], ats[0], 1)
	for _, a := range ats {
		a.AddSpareValency(1)
	}
	require.NoError(Te, M.ConvertSpareValenciesToDoubleBonds())
	for _, a := range ats {
		assert.Equal(Te, 0, a.SpareValency())
		n := 0
		for _, b := range a.Bonds() {
			if b.Order() == 2 {
				n++
			}
		}
		assert.Equal(Te, 1, n, "atom %s", a)
	}
}

func TestKekulizeFailure(Te *testing.T) {
	M := NewManager(WithKekuleLimit(50))
	f := M.NewFragment("", "")
	ring := mkAtoms(Te, M, f, "C", "C", "C", "C", "C")
	mkRing(Te, M, ring)
	for _, a := range ring {
		a.AddSpareValency(1)
	}
	err := M.ConvertSpareValenciesToDoubleBonds()
	require.Error(Te, err)
	assert.True(Te, IsKind(err, KindValency))
	for _, b := range f.Bonds() {
		assert.Equal(Te, 1, b.Order(), "failed attempts are undone")
	}
}

func TestMakeHydrogensExplicit(Te *testing.T) {
	M := NewManager()
	f := M.NewFragment("", "")
	ats := mkAtoms(Te, M, f, "C", "C", "O", "N")
	mkBond(Te, M, ats[0], ats[1], 1)
	mkBond(Te, M, ats[1], ats[2], 1)
	mkBond(Te, M, ats[1], ats[3], 1)
	ats[3].SetExplicitHydrogens(1)
	count := func() int {
		n := 0
		for _, a := range f.Atoms() {
			if a.Symbol() == "H" {
				n++
			}
		}
		return n
	}
	assert.Equal(Te, 3, ImplicitHydrogens(ats[0]))
	require.NoError(Te, M.MakeHydrogensExplicit())
	//CH3 + CH + OH + NH
	assert.Equal(Te, 6, count())
	require.NoError(Te, M.MakeHydrogensExplicit())
	assert.Equal(Te, 6, count(), "hydrogens are only added once")
	assert.Equal(Te, 0, ats[3].PendingHydrogens())
	require.NoError(Te, M.CheckValencies())
}

func TestManagerLogging(Te *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	M := NewManager(WithLogger(zap.New(core)))
	f := M.NewFragment("", "")
	ring := mkAtoms(Te, M, f, "N", "C", "C", "C", "C", "C")
	mkRing(Te, M, ring)
	methyl := mkAtoms(Te, M, f, "C")[0]
	mkBond(Te, M, ring[0], methyl, 1)
	ring[0].AddSpareValency(1)
	require.NoError(Te, ring[0].EnsureSpareValencyConsistent(true))
	require.NoError(Te, M.CheckValencies())
	warns := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(Te, warns, 1)
	assert.Equal(Te, M.Session().String(), warns[0].ContextMap()["session"])
	assert.EqualValues(Te, ring[0].ID, warns[0].ContextMap()["atom"])
}
