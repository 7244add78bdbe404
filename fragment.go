/*
 * fragment.go, part of goName.
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

package chem

import (
	"github.com/elliotchance/orderedmap/v2"
)

// Fragment is a connected or disconnected piece of the molecule under construction,
// typically what one substituent, parent or suffix contributes. It owns its atoms and the
// bonds among them. Bonds to atoms of other fragments are tracked by the Manager.
type Fragment struct {
	ID      int
	Type    string
	Subtype string

	atoms   *orderedmap.OrderedMap[int, *Atom]
	locants map[string]*Atom
	bonds   *orderedmap.OrderedMap[*Bond, struct{}]

	outAtoms        []*OutAtom
	inAtoms         []*InAtom
	functionalAtoms []*FunctionalAtom
	defaultIn       *Atom
}

func newFragment(id int, typ, subtype string) *Fragment {
	return &Fragment{
		ID:      id,
		Type:    typ,
		Subtype: subtype,
		atoms:   orderedmap.NewOrderedMap[int, *Atom](),
		locants: make(map[string]*Atom),
		bonds:   orderedmap.NewOrderedMap[*Bond, struct{}](),
	}
}

// Atoms returns the atoms of the fragment in insertion order.
func (F *Fragment) Atoms() []*Atom {
	ret := make([]*Atom, 0, F.atoms.Len())
	for el := F.atoms.Front(); el != nil; el = el.Next() {
		ret = append(ret, el.Value)
	}
	return ret
}

// Bonds returns the intra-fragment bonds in insertion order.
func (F *Fragment) Bonds() []*Bond {
	ret := make([]*Bond, 0, F.bonds.Len())
	for el := F.bonds.Front(); el != nil; el = el.Next() {
		ret = append(ret, el.Key)
	}
	return ret
}

// Len returns the number of atoms in the fragment.
func (F *Fragment) Len() int { return F.atoms.Len() }

// BondCount returns the number of intra-fragment bonds.
func (F *Fragment) BondCount() int { return F.bonds.Len() }

// AtomByID returns the atom with the given ID, if it is in the fragment.
func (F *Fragment) AtomByID(id int) (*Atom, bool) {
	return F.atoms.Get(id)
}

// FirstAtom returns the first atom added to the fragment, or nil if the fragment is empty.
func (F *Fragment) FirstAtom() *Atom {
	el := F.atoms.Front()
	if el == nil {
		return nil
	}
	return el.Value
}

// HasAtom returns true if a belongs to the fragment.
func (F *Fragment) HasAtom(a *Atom) bool {
	b, ok := F.atoms.Get(a.ID)
	return ok && b == a
}

// HasBond returns true if b is an intra-fragment bond of F.
func (F *Fragment) HasBond(b *Bond) bool {
	_, ok := F.bonds.Get(b)
	return ok
}

// AtomByLocant returns the atom with the given locant. Locants registered in the fragment's
// index take precedence, then amino-acid style locants (see Atom.HasLocant) are tried.
func (F *Fragment) AtomByLocant(locant string) (*Atom, bool) {
	if a, ok := F.locants[locant]; ok {
		return a, true
	}
	if !aminoAcidStyleLocant.MatchString(locant) {
		return nil, false
	}
	for el := F.atoms.Front(); el != nil; el = el.Next() {
		if el.Value.HasLocant(locant) {
			return el.Value, true
		}
	}
	return nil, false
}

// AtomByLocantOrErr is like AtomByLocant, but returns a structure error if the locant
// is not found.
func (F *Fragment) AtomByLocantOrErr(locant string) (*Atom, error) {
	a, ok := F.AtomByLocant(locant)
	if !ok {
		return nil, Errorf(KindStructure, "locant %q not found in fragment %d", locant, F.ID)
	}
	return a, nil
}

// IntraFragmentIncomingValency returns the sum of the orders of the bonds between a and
// other atoms of the fragment.
func (F *Fragment) IntraFragmentIncomingValency(a *Atom) int {
	v := 0
	for _, b := range a.bonds {
		if b.Cross(a).frag == F {
			v += b.order
		}
	}
	return v
}

// Validate checks the internal consistency of the fragment. Every atom referenced by
// the locant index, a bond or an attachment descriptor must be owned by the fragment.
func (F *Fragment) Validate() error {
	for el := F.atoms.Front(); el != nil; el = el.Next() {
		if el.Value.frag != F {
			return Errorf(KindStructure, "atom %s is listed in fragment %d but owned by another", el.Value, F.ID)
		}
	}
	for l, a := range F.locants {
		if !F.HasAtom(a) {
			return Errorf(KindStructure, "locant %q of fragment %d points to foreign atom %s", l, F.ID, a)
		}
		if !a.hasOwnLocant(l) {
			return Errorf(KindStructure, "locant %q of fragment %d points to atom %s, which lacks it", l, F.ID, a)
		}
	}
	for el := F.bonds.Front(); el != nil; el = el.Next() {
		b := el.Key
		if !F.HasAtom(b.at1) || !F.HasAtom(b.at2) {
			return Errorf(KindStructure, "bond %s is not internal to fragment %d", b, F.ID)
		}
	}
	check := func(a *Atom, what string) error {
		if !F.HasAtom(a) {
			return Errorf(KindStructure, "%s %s is not in fragment %d", what, a, F.ID)
		}
		return nil
	}
	for _, v := range F.outAtoms {
		if err := check(v.Atom, "out atom"); err != nil {
			return err
		}
	}
	for _, v := range F.inAtoms {
		if err := check(v.Atom, "in atom"); err != nil {
			return err
		}
	}
	for _, v := range F.functionalAtoms {
		if err := check(v.Atom, "functional atom"); err != nil {
			return err
		}
	}
	if F.defaultIn != nil {
		return check(F.defaultIn, "default in atom")
	}
	return nil
}

func (F *Fragment) addAtom(a *Atom) {
	a.frag = F
	F.atoms.Set(a.ID, a)
	for _, l := range a.locants {
		F.registerLocant(l, a, false)
	}
}

func (F *Fragment) removeAtom(a *Atom) {
	F.atoms.Delete(a.ID)
	for _, l := range a.locants {
		F.unregisterLocant(l, a)
	}
	F.scrubAttachments(a)
	if a.frag == F {
		a.frag = nil
	}
}

func (F *Fragment) addBond(b *Bond) {
	F.bonds.Set(b, struct{}{})
}

func (F *Fragment) removeBond(b *Bond) bool {
	return F.bonds.Delete(b)
}

func (F *Fragment) registerLocant(l string, a *Atom, override bool) {
	if _, ok := F.locants[l]; ok && !override {
		return
	}
	F.locants[l] = a
}

//if a was the atom indexed under l, another atom of the fragment carrying l, if any, takes its place.
func (F *Fragment) unregisterLocant(l string, a *Atom) {
	if F.locants[l] != a {
		return
	}
	delete(F.locants, l)
	for el := F.atoms.Front(); el != nil; el = el.Next() {
		if el.Value != a && el.Value.hasOwnLocant(l) {
			F.locants[l] = el.Value
			return
		}
	}
}

//empties the fragment, leaving the atoms' ownership untouched.
func (F *Fragment) clear() {
	F.atoms = orderedmap.NewOrderedMap[int, *Atom]()
	F.locants = make(map[string]*Atom)
	F.bonds = orderedmap.NewOrderedMap[*Bond, struct{}]()
	F.outAtoms = nil
	F.inAtoms = nil
	F.functionalAtoms = nil
	F.defaultIn = nil
}
