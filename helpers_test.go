package chem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

//mkAtoms creates one atom per symbol in f.
func mkAtoms(Te *testing.T, M *Manager, f *Fragment, symbols ...string) []*Atom {
	Te.Helper()
	ret := make([]*Atom, 0, len(symbols))
	for _, s := range symbols {
		a, err := M.CreateAtom(s, f)
		require.NoError(Te, err)
		ret = append(ret, a)
	}
	return ret
}

func mkBond(Te *testing.T, M *Manager, a, b *Atom, order int) *Bond {
	Te.Helper()
	bond, err := M.CreateBond(a, b, order)
	require.NoError(Te, err)
	return bond
}

//mkRing bonds the atoms in a cycle with single bonds.
func mkRing(Te *testing.T, M *Manager, ats []*Atom) {
	Te.Helper()
	for i := range ats {
		mkBond(Te, M, ats[i], ats[(i+1)%len(ats)], 1)
	}
}
