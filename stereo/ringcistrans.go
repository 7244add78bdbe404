/*
 * ringcistrans.go, part of goName.
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package stereo

import (
	"strings"

	chem "github.com/rmera/goname"
	"github.com/rmera/goname/rings"
)

//ringAtom is a ring atom that can take part in cis/trans stereo across its ring.
//sub is its single substituent (or its hydrogen) and the other neighbours complete the tetrahedron.
type ringAtom struct {
	atom *chem.Atom
	sub  *chem.Atom
}

//ringBond returns true if b is in any ring.
func (H *Handler) ringBond(b *chem.Bond) bool {
	for _, r := range H.rings {
		if r.HasBond(b) {
			return true
		}
	}
	return false
}

//ringSubstituent finds the substituent that defines the cis/trans relationship for a:
//its only non-ring, non-hydrogen substituent, or failing that, its only hydrogen.
//Atoms that already took a descriptor are skipped unless allowDone is true, in which case
//their parity is kept and checked by setRelativeParities.
func (H *Handler) ringSubstituent(a *chem.Atom, allowDone bool) (*ringAtom, bool) {
	if !a.InCycle() || a.BondCount() != 4 || (H.doneAtoms[a] && !allowDone) {
		return nil, false
	}
	var heavy, hydrogens []*chem.Atom
	for _, b := range a.Bonds() {
		if !H.frag.HasBond(b) || H.ringBond(b) {
			continue
		}
		n := b.Cross(a)
		if n.Symbol() == "H" {
			hydrogens = append(hydrogens, n)
		} else {
			heavy = append(heavy, n)
		}
	}
	switch {
	case len(heavy) == 1:
		return &ringAtom{atom: a, sub: heavy[0]}, true
	case len(heavy) == 0 && len(hydrogens) == 1:
		return &ringAtom{atom: a, sub: hydrogens[0]}, true
	}
	return nil, false
}

//ringPaths returns the two paths that go around the ring(s) from x1 to x2, or false if the
//atoms are not joined in a way that defines cis and trans.
func (H *Handler) ringPaths(x1, x2 *chem.Atom) ([]*chem.Atom, []*chem.Atom, bool) {
	paths := rings.IntraFragmentPathsBetweenAtoms(x1, x2, H.frag)
	switch len(paths) {
	case 2:
		return paths[0], paths[1], true
	case 3:
		var nonEmpty [][]*chem.Atom
		for _, p := range paths {
			if len(p) > 0 {
				nonEmpty = append(nonEmpty, p)
			}
		}
		if len(nonEmpty) == 2 {
			return nonEmpty[0], nonEmpty[1], true
		}
	}
	return nil, nil, false
}

func first(p []*chem.Atom, otherwise *chem.Atom) *chem.Atom {
	if len(p) == 0 {
		return otherwise
	}
	return p[0]
}

func last(p []*chem.Atom, otherwise *chem.Atom) *chem.Atom {
	if len(p) == 0 {
		return otherwise
	}
	return p[len(p)-1]
}

//fourth returns the neighbour of a that is not in used.
func fourth(a *chem.Atom, used ...*chem.Atom) (*chem.Atom, bool) {
	for _, n := range a.Neighbours() {
		found := false
		for _, u := range used {
			if n == u {
				found = true
				break
			}
		}
		if !found {
			return n, true
		}
	}
	return nil, false
}

//cisTransRefs builds the reference lists for the two atoms, such that the same parity
//on both means their substituents are cis.
func cisTransRefs(r1, r2 *ringAtom, p1, p2 []*chem.Atom) ([4]*chem.Atom, [4]*chem.Atom, bool) {
	x1, x2 := r1.atom, r2.atom
	a1, b1 := first(p1, x2), first(p2, x2)
	a2, b2 := last(p2, x1), last(p1, x1)
	o1, ok1 := fourth(x1, r1.sub, a1, b1)
	o2, ok2 := fourth(x2, r2.sub, a2, b2)
	if !ok1 || !ok2 {
		return [4]*chem.Atom{}, [4]*chem.Atom{}, false
	}
	return [4]*chem.Atom{r1.sub, a1, b1, o1}, [4]*chem.Atom{r2.sub, a2, b2, o2}, true
}

//pairs returns the candidate atom pairs for d in f, in search order.
func (H *Handler) pairs(d Descriptor, f *chem.Fragment) [][2]*ringAtom {
	var ret [][2]*ringAtom
	if d.Locant != "" {
		locs := strings.Split(d.Locant, ",")
		if len(locs) != 2 {
			return nil
		}
		a1, ok1 := f.AtomByLocant(strings.TrimSpace(locs[0]))
		a2, ok2 := f.AtomByLocant(strings.TrimSpace(locs[1]))
		if !ok1 || !ok2 || a1 == a2 {
			return nil
		}
		//explicitly named atoms may already have an R/S configuration from this Apply
		r1, ok1 := H.ringSubstituent(a1, true)
		r2, ok2 := H.ringSubstituent(a2, true)
		if ok1 && ok2 {
			ret = append(ret, [2]*ringAtom{r1, r2})
		}
		return ret
	}
	var eligible []*ringAtom
	for _, a := range f.Atoms() {
		if r, ok := H.ringSubstituent(a, false); ok {
			eligible = append(eligible, r)
		}
	}
	for i := range eligible {
		for j := i + 1; j < len(eligible); j++ {
			ret = append(ret, [2]*ringAtom{eligible[i], eligible[j]})
		}
	}
	return ret
}

//applyAcrossRing applies a cis or trans descriptor to two ring atoms, giving them
//tetrahedral parities that place their substituents on the same or opposite sides of the ring.
func (H *Handler) applyAcrossRing(d Descriptor) (bool, error) {
	for _, f := range H.candidates(d) {
		for _, pair := range H.pairs(d, f) {
			r1, r2 := pair[0], pair[1]
			p1, p2, ok := H.ringPaths(r1.atom, r2.atom)
			if !ok {
				continue
			}
			refs1, refs2, ok := cisTransRefs(r1, r2, p1, p2)
			if !ok {
				continue
			}
			if err := H.setRelativeParities(r1.atom, r2.atom, refs1, refs2, d.Kind == Cis); err != nil {
				return false, chem.ErrDecorate(err, "applyAcrossRing")
			}
			H.doneAtoms[r1.atom] = true
			H.doneAtoms[r2.atom] = true
			return true, nil
		}
	}
	return false, nil
}

//setRelativeParities sets parities on x1 and x2 that are equal if cis is true and opposite
//otherwise, keeping any parity one of them already has. A pre-existing parity on both that
//does not agree with the requested relationship is an error.
func (H *Handler) setRelativeParities(x1, x2 *chem.Atom, refs1, refs2 [4]*chem.Atom, cis bool) error {
	rel, name := 1, "cis"
	if !cis {
		rel, name = -1, "trans"
	}
	p1, p2 := 1, rel
	e1, ok1 := existingParity(x1, refs1)
	e2, ok2 := existingParity(x2, refs2)
	switch {
	case ok1 && ok2:
		if e1*rel != e2 {
			return chem.Errorf(chem.KindStereo, "atoms %s and %s already have configurations that are not %s", x1, x2, name)
		}
		p1, p2 = e1, e2
	case ok1:
		p1, p2 = e1, e1*rel
	case ok2:
		p1, p2 = e2*rel, e2
	}
	x1.SetParity(&chem.AtomParity{Refs: refs1, Parity: p1})
	x2.SetParity(&chem.AtomParity{Refs: refs2, Parity: p2})
	return nil
}

//existingParity returns the parity x already has, expressed with refs as references.
func existingParity(x *chem.Atom, refs [4]*chem.Atom) (int, bool) {
	p := x.Parity()
	if p == nil {
		return 0, false
	}
	return p.Equivalent(refs)
}
