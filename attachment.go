/*
 * attachment.go, part of goName.
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

// OutAtom is an atom of a fragment that still has to be bonded to something else
// with a bond of the given valency. SetExplicitly is true when the position came from
// a locant in the name rather than from a default.
type OutAtom struct {
	Atom          *Atom
	Valency       int
	SetExplicitly bool
}

// InAtom is an atom of a fragment that accepts a bond of the given valency from
// another fragment.
type InAtom struct {
	Atom    *Atom
	Valency int
}

// FunctionalAtom is an atom that carries a functional replacement or ester-forming role.
type FunctionalAtom struct {
	Atom *Atom
}

// AddOutAtom appends an out atom and reserves the valency on the atom.
func (F *Fragment) AddOutAtom(a *Atom, valency int, setExplicitly bool) error {
	if err := F.mustOwn(a, "AddOutAtom"); err != nil {
		return err
	}
	F.outAtoms = append(F.outAtoms, &OutAtom{Atom: a, Valency: valency, SetExplicitly: setExplicitly})
	a.AddOutValency(valency)
	return nil
}

// OutAtom returns the i-th out atom.
func (F *Fragment) OutAtom(i int) *OutAtom {
	return F.outAtoms[i]
}

// OutAtoms returns a copy of the list of out atoms.
func (F *Fragment) OutAtoms() []*OutAtom {
	ret := make([]*OutAtom, len(F.outAtoms))
	copy(ret, F.outAtoms)
	return ret
}

// OutAtomCount returns the number of out atoms.
func (F *Fragment) OutAtomCount() int { return len(F.outAtoms) }

// RemoveOutAtom removes the i-th out atom, releasing the valency it reserved.
func (F *Fragment) RemoveOutAtom(i int) error {
	if i < 0 || i >= len(F.outAtoms) {
		return Errorf(KindStructure, "no out atom %d in fragment %d", i, F.ID)
	}
	oa := F.outAtoms[i]
	F.outAtoms = append(F.outAtoms[:i], F.outAtoms[i+1:]...)
	return ErrDecorate(oa.Atom.SubtractOutValency(oa.Valency), "RemoveOutAtom")
}

// AddInAtom appends an in atom.
func (F *Fragment) AddInAtom(a *Atom, valency int) error {
	if err := F.mustOwn(a, "AddInAtom"); err != nil {
		return err
	}
	F.inAtoms = append(F.inAtoms, &InAtom{Atom: a, Valency: valency})
	return nil
}

// InAtoms returns a copy of the in atoms.
func (F *Fragment) InAtoms() []*InAtom {
	ret := make([]*InAtom, len(F.inAtoms))
	copy(ret, F.inAtoms)
	return ret
}

// RemoveInAtom removes the i-th in atom.
func (F *Fragment) RemoveInAtom(i int) error {
	if i < 0 || i >= len(F.inAtoms) {
		return Errorf(KindStructure, "no in atom %d in fragment %d", i, F.ID)
	}
	F.inAtoms = append(F.inAtoms[:i], F.inAtoms[i+1:]...)
	return nil
}

// AddFunctionalAtom appends a functional atom.
func (F *Fragment) AddFunctionalAtom(a *Atom) error {
	if err := F.mustOwn(a, "AddFunctionalAtom"); err != nil {
		return err
	}
	F.functionalAtoms = append(F.functionalAtoms, &FunctionalAtom{Atom: a})
	return nil
}

// FunctionalAtoms returns a copy of the functional atoms.
func (F *Fragment) FunctionalAtoms() []*FunctionalAtom {
	ret := make([]*FunctionalAtom, len(F.functionalAtoms))
	copy(ret, F.functionalAtoms)
	return ret
}

// RemoveFunctionalAtom removes the i-th functional atom.
func (F *Fragment) RemoveFunctionalAtom(i int) error {
	if i < 0 || i >= len(F.functionalAtoms) {
		return Errorf(KindStructure, "no functional atom %d in fragment %d", i, F.ID)
	}
	F.functionalAtoms = append(F.functionalAtoms[:i], F.functionalAtoms[i+1:]...)
	return nil
}

// DefaultInAtom returns the atom used when something is attached to the fragment
// without a locant. Unless set, it is the first atom of the fragment.
func (F *Fragment) DefaultInAtom() *Atom {
	if F.defaultIn != nil {
		return F.defaultIn
	}
	return F.FirstAtom()
}

// SetDefaultInAtom sets the default in atom. nil restores the default.
func (F *Fragment) SetDefaultInAtom(a *Atom) error {
	if a == nil {
		F.defaultIn = nil
		return nil
	}
	if err := F.mustOwn(a, "SetDefaultInAtom"); err != nil {
		return err
	}
	F.defaultIn = a
	return nil
}

//drops every attachment descriptor that references a.
func (F *Fragment) scrubAttachments(a *Atom) {
	outs := F.outAtoms[:0]
	for _, v := range F.outAtoms {
		if v.Atom != a {
			outs = append(outs, v)
		}
	}
	F.outAtoms = outs
	ins := F.inAtoms[:0]
	for _, v := range F.inAtoms {
		if v.Atom != a {
			ins = append(ins, v)
		}
	}
	F.inAtoms = ins
	funcs := F.functionalAtoms[:0]
	for _, v := range F.functionalAtoms {
		if v.Atom != a {
			funcs = append(funcs, v)
		}
	}
	F.functionalAtoms = funcs
	if F.defaultIn == a {
		F.defaultIn = nil
	}
}

func (F *Fragment) mustOwn(a *Atom, caller string) error {
	if a == nil {
		panic(ErrNilAtom)
	}
	if a.frag != F {
		return Errorf(KindStructure, "atom %s does not belong to fragment %d (%s)", a, F.ID, caller)
	}
	return nil
}
