/*
 * manager.go, part of goName.
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
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type bondSet = orderedmap.OrderedMap[*Bond, struct{}]

// Manager is the context of one structure-building session. It is the only way to create and
// destroy atoms, bonds and fragments, and it keeps track of the bonds between fragments.
// A Manager is not safe for concurrent use, but different Managers are fully independent.
type Manager struct {
	session    uuid.UUID
	nextAtomID int
	nextBondID int
	nextFragID int
	//live fragments, each with the set of bonds linking it to other fragments.
	frags *orderedmap.OrderedMap[*Fragment, *bondSet]
	opts  *Options
	log   *zap.Logger
}

// NewManager returns a Manager for a new build session.
func NewManager(opts ...Option) *Manager {
	o := DefaultOptions()
	for _, f := range opts {
		f(o)
	}
	M := &Manager{
		session: uuid.New(),
		frags:   orderedmap.NewOrderedMap[*Fragment, *bondSet](),
		opts:    o,
	}
	M.log = o.Logger().With(zap.String("session", M.session.String()))
	return M
}

// Session returns the identifier of the build session, as used in the logs.
func (M *Manager) Session() uuid.UUID { return M.session }

// Options returns the options of the session.
func (M *Manager) Options() *Options { return M.opts }

// Logger returns the session's logger.
func (M *Manager) Logger() *zap.Logger { return M.log }

// NewFragment creates a new, empty, live fragment.
func (M *Manager) NewFragment(typ, subtype string) *Fragment {
	M.nextFragID++
	f := newFragment(M.nextFragID, typ, subtype)
	M.frags.Set(f, orderedmap.NewOrderedMap[*Bond, struct{}]())
	return f
}

// IsLive returns true if f is a fragment of the session that has not been removed or incorporated.
func (M *Manager) IsLive(f *Fragment) bool {
	_, ok := M.frags.Get(f)
	return ok
}

// Fragments returns the live fragments in creation order.
func (M *Manager) Fragments() []*Fragment {
	ret := make([]*Fragment, 0, M.frags.Len())
	for el := M.frags.Front(); el != nil; el = el.Next() {
		ret = append(ret, el.Key)
	}
	return ret
}

// InterFragmentBonds returns the bonds between f and other fragments.
func (M *Manager) InterFragmentBonds(f *Fragment) []*Bond {
	set, ok := M.frags.Get(f)
	if !ok {
		return nil
	}
	ret := make([]*Bond, 0, set.Len())
	for el := set.Front(); el != nil; el = el.Next() {
		ret = append(ret, el.Key)
	}
	return ret
}

// AtomByID looks for an atom with the given ID among the live fragments.
func (M *Manager) AtomByID(id int) (*Atom, bool) {
	for el := M.frags.Front(); el != nil; el = el.Next() {
		if a, ok := el.Key.AtomByID(id); ok && a.frag == el.Key {
			return a, true
		}
	}
	return nil, false
}

// BondBetween returns the bond between a and b, or nil.
func (M *Manager) BondBetween(a, b *Atom) *Bond {
	if a == nil || b == nil {
		panic(ErrNilAtom)
	}
	return a.BondTo(b)
}

func (M *Manager) checkLive(f *Fragment, caller string) error {
	if f == nil {
		panic(ErrNilFragment)
	}
	if !M.IsLive(f) {
		return Errorf(KindStructure, "fragment %d is not a live fragment of this session (%s)", f.ID, caller)
	}
	return nil
}

// CreateAtom creates an atom of the given element in the fragment.
func (M *Manager) CreateAtom(symbol string, f *Fragment) (*Atom, error) {
	if err := M.checkLive(f, "CreateAtom"); err != nil {
		return nil, err
	}
	if !IsElement(symbol) {
		return nil, Errorf(KindStructure, "unknown element symbol %q", symbol)
	}
	M.nextAtomID++
	a := &Atom{ID: M.nextAtomID, symbol: symbol}
	f.addAtom(a)
	return a, nil
}

// CreateBond bonds a and b with the given order. The bond is intra-fragment if both atoms
// belong to the same fragment, and is otherwise recorded as a bond between their fragments.
func (M *Manager) CreateBond(a, b *Atom, order int) (*Bond, error) {
	if a == nil || b == nil {
		panic(ErrNilAtom)
	}
	if a == b {
		return nil, Errorf(KindStructure, "cannot bond atom %s to itself", a)
	}
	if order < 1 || order > 3 {
		return nil, Errorf(KindStructure, "invalid bond order %d between %s and %s", order, a, b)
	}
	if a.frag == nil || !M.IsLive(a.frag) {
		return nil, Errorf(KindStructure, "atom %s is not in a live fragment", a)
	}
	if b.frag == nil || !M.IsLive(b.frag) {
		return nil, Errorf(KindStructure, "atom %s is not in a live fragment", b)
	}
	if a.BondTo(b) != nil {
		return nil, Errorf(KindStructure, "atoms %s and %s are already bonded", a, b)
	}
	M.nextBondID++
	bond := &Bond{ID: M.nextBondID, at1: a, at2: b, order: order}
	a.addBond(bond)
	b.addBond(bond)
	if a.frag == b.frag {
		a.frag.addBond(bond)
		return bond, nil
	}
	sa, _ := M.frags.Get(a.frag)
	sb, _ := M.frags.Get(b.frag)
	sa.Set(bond, struct{}{})
	sb.Set(bond, struct{}{})
	return bond, nil
}

// RemoveBond removes the bond from its atoms and from whichever index holds it.
func (M *Manager) RemoveBond(b *Bond) error {
	if b == nil {
		panic(ErrNilBond)
	}
	f1, f2 := b.at1.frag, b.at2.frag
	var found bool
	if f1 != nil && f1 == f2 {
		found = f1.removeBond(b)
	} else {
		for _, f := range []*Fragment{f1, f2} {
			if f == nil {
				continue
			}
			if set, ok := M.frags.Get(f); ok && set.Delete(b) {
				found = true
			}
		}
	}
	if !found {
		return Errorf(KindStructure, "bond %s not found", b)
	}
	b.at1.removeBond(b)
	b.at2.removeBond(b)
	return nil
}

// RemoveAtomAndAssociatedBonds removes the atom, its bonds, its locants and every
// attachment descriptor pointing to it. Stereo records of former neighbours that
// referenced the atom are dropped.
func (M *Manager) RemoveAtomAndAssociatedBonds(a *Atom) error {
	if a == nil {
		panic(ErrNilAtom)
	}
	f := a.frag
	if f == nil || !f.HasAtom(a) {
		return Errorf(KindStructure, "atom %s is not in any fragment", a)
	}
	neighbours := a.Neighbours()
	for _, b := range a.Bonds() {
		if err := M.RemoveBond(b); err != nil {
			return ErrDecorate(err, "RemoveAtomAndAssociatedBonds")
		}
	}
	for _, n := range neighbours {
		scrubStereoReferences(n, a)
	}
	f.removeAtom(a)
	M.log.Debug("removed atom", zap.Int("frag", f.ID), zap.Int("atom", a.ID))
	return nil
}

func scrubStereoReferences(n, removed *Atom) {
	if p := n.parity; p != nil {
		for _, r := range p.Refs {
			if r == removed {
				n.parity = nil
				break
			}
		}
	}
	for _, b := range n.bonds {
		if s := b.stereo; s != nil {
			for _, r := range s.Refs {
				if r == removed {
					b.stereo = nil
					break
				}
			}
		}
	}
}

// RemoveFragment removes the fragment, all its atoms and all the bonds to them.
func (M *Manager) RemoveFragment(f *Fragment) error {
	if err := M.checkLive(f, "RemoveFragment"); err != nil {
		return err
	}
	for _, b := range M.InterFragmentBonds(f) {
		if err := M.RemoveBond(b); err != nil {
			return ErrDecorate(err, "RemoveFragment")
		}
	}
	for _, a := range f.Atoms() {
		if err := M.RemoveAtomAndAssociatedBonds(a); err != nil {
			return ErrDecorate(err, "RemoveFragment")
		}
	}
	M.frags.Delete(f)
	M.log.Debug("removed fragment", zap.Int("frag", f.ID))
	return nil
}

// IncorporateFragment moves every atom, bond and attachment descriptor of child into parent.
// Bonds between the two become intra-fragment bonds of parent; bonds from child to a third
// fragment are now attributed to parent. child is emptied and is no longer live.
func (M *Manager) IncorporateFragment(child, parent *Fragment) error {
	if err := M.checkLive(child, "IncorporateFragment"); err != nil {
		return err
	}
	if err := M.checkLive(parent, "IncorporateFragment"); err != nil {
		return err
	}
	if child == parent {
		return Errorf(KindStructure, "cannot incorporate fragment %d into itself", child.ID)
	}
	for _, a := range child.Atoms() {
		parent.addAtom(a)
	}
	for _, b := range child.Bonds() {
		parent.addBond(b)
	}
	parent.outAtoms = append(parent.outAtoms, child.outAtoms...)
	parent.inAtoms = append(parent.inAtoms, child.inAtoms...)
	parent.functionalAtoms = append(parent.functionalAtoms, child.functionalAtoms...)

	childInter, _ := M.frags.Get(child)
	parentInter, _ := M.frags.Get(parent)
	for el := childInter.Front(); el != nil; el = el.Next() {
		b := el.Key
		if b.at1.frag == parent && b.at2.frag == parent {
			parentInter.Delete(b)
			parent.addBond(b)
			continue
		}
		parentInter.Set(b, struct{}{})
	}
	n := child.Len()
	child.clear()
	M.frags.Delete(child)
	M.log.Debug("incorporated fragment", zap.Int("frag", parent.ID), zap.Int("child", child.ID), zap.Int("atoms", n))
	return nil
}

// IncorporateFragmentWithBond incorporates child into parent, and bonds from, an atom of
// child, to to, an atom of parent.
func (M *Manager) IncorporateFragmentWithBond(child *Fragment, from *Atom, parent *Fragment, to *Atom, order int) error {
	if err := child.mustOwn(from, "IncorporateFragmentWithBond"); err != nil {
		return err
	}
	if err := parent.mustOwn(to, "IncorporateFragmentWithBond"); err != nil {
		return err
	}
	if err := M.IncorporateFragment(child, parent); err != nil {
		return ErrDecorate(err, "IncorporateFragmentWithBond")
	}
	_, err := M.CreateBond(from, to, order)
	return ErrDecorate(err, "IncorporateFragmentWithBond")
}

// ReplaceTerminalAtomWithFragment removes terminal, which must have exactly one bond, and
// bonds the atom it was attached to with replacement, using the same bond order. The
// fragment of replacement is incorporated into the terminal atom's fragment.
func (M *Manager) ReplaceTerminalAtomWithFragment(terminal, replacement *Atom) error {
	if terminal == nil || replacement == nil {
		panic(ErrNilAtom)
	}
	if len(terminal.bonds) != 1 {
		return Errorf(KindStructure, "atom %s was expected to have one bond, it has %d", terminal, len(terminal.bonds))
	}
	termFrag, replFrag := terminal.frag, replacement.frag
	if err := M.checkLive(termFrag, "ReplaceTerminalAtomWithFragment"); err != nil {
		return err
	}
	if err := M.checkLive(replFrag, "ReplaceTerminalAtomWithFragment"); err != nil {
		return err
	}
	b := terminal.bonds[0]
	other := b.Cross(terminal)
	order := b.order
	if other == replacement {
		return Errorf(KindStructure, "replacement atom %s is already bonded to %s", replacement, terminal)
	}
	if err := M.RemoveAtomAndAssociatedBonds(terminal); err != nil {
		return ErrDecorate(err, "ReplaceTerminalAtomWithFragment")
	}
	if replFrag != termFrag {
		if err := M.IncorporateFragment(replFrag, termFrag); err != nil {
			return ErrDecorate(err, "ReplaceTerminalAtomWithFragment")
		}
	}
	_, err := M.CreateBond(other, replacement, order)
	return ErrDecorate(err, "ReplaceTerminalAtomWithFragment")
}

// UnifiedFragment returns a new live fragment that owns every atom and bond of the session,
// including the bonds between fragments. The original fragments are no longer live
// afterwards, so later removals only need to update the unified fragment. They keep their
// atom maps, which can still be used to tell which atoms came from each of them.
func (M *Manager) UnifiedFragment() *Fragment {
	orig := M.Fragments()
	uni := M.NewFragment("", "")
	seen := make(map[*Bond]bool)
	for _, f := range orig {
		for _, a := range f.Atoms() {
			if a.frag == f {
				uni.addAtom(a)
			}
		}
		for _, b := range f.Bonds() {
			uni.addBond(b)
		}
		for _, b := range M.InterFragmentBonds(f) {
			if !seen[b] {
				seen[b] = true
				uni.addBond(b)
			}
		}
		M.frags.Delete(f)
	}
	M.log.Debug("unified fragment", zap.Int("frag", uni.ID), zap.Int("atoms", uni.Len()), zap.Int("bonds", uni.BondCount()))
	return uni
}

// CheckValencies checks that no atom in the session exceeds its maximum valency.
// The error names the first offending atom.
func (M *Manager) CheckValencies() error {
	seen := make(map[*Atom]bool)
	for el := M.frags.Front(); el != nil; el = el.Next() {
		for _, a := range el.Key.Atoms() {
			if seen[a] {
				continue
			}
			seen[a] = true
			if !CheckValency(a) {
				lim, _ := ValencyLimit(a)
				v := a.IncomingValency() + a.OutValency() + a.SpareValency() + a.PendingHydrogens()
				return Errorf(KindValency, "atom %s (%s, charge %d) has valency %d, above its maximum of %d", a, a.Symbol(), a.Charge(), v, lim)
			}
			if a.HasFlag(FlagPossiblyCharged) {
				M.log.Warn("atom may need a charge", zap.Int("frag", el.Key.ID), zap.Int("atom", a.ID))
			}
		}
	}
	return nil
}
