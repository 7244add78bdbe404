/*
 * kekule.go, part of goName.
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
	"github.com/emirpasic/gods/stacks/arraystack"
	"go.uber.org/zap"
)

// ConvertSpareValenciesToDoubleBonds turns the spare valency of the atoms of every live
// fragment into double bonds (or triple bonds, for atoms with spare valency 2). Spare valency
// is first made consistent with the atoms' valencies. Bonds are then assigned where there is
// only one choice, and the rest is solved by backtracking, with at most the number of steps
// allowed by the session's KekuleLimit. A fragment that cannot be kekulized gives a valency error.
func (M *Manager) ConvertSpareValenciesToDoubleBonds() error {
	for _, f := range M.Fragments() {
		if err := M.kekulize(f); err != nil {
			return ErrDecorate(err, "ConvertSpareValenciesToDoubleBonds")
		}
	}
	return nil
}

//a bond whose order was raised, so it can be undone.
type kekuleStep struct {
	b *Bond
}

type kekulizer struct {
	atoms []*Atom
	undo  *arraystack.Stack
	steps int
	limit int
}

func (M *Manager) kekulize(f *Fragment) error {
	var spare []*Atom
	for _, a := range f.Atoms() {
		if a.frag != f || a.spare == 0 {
			continue
		}
		if err := a.EnsureSpareValencyConsistent(true); err != nil {
			return err
		}
		if a.HasFlag(FlagPossiblyCharged) {
			M.log.Warn("nitrogen without valency left for its spare valency", zap.Int("frag", f.ID), zap.Int("atom", a.ID))
		}
		if a.spare > 0 {
			spare = append(spare, a)
		}
	}
	if len(spare) == 0 {
		return nil
	}
	k := &kekulizer{atoms: spare, undo: arraystack.New(), limit: M.opts.KekuleLimit()}
	k.force()
	if !k.solve() {
		var left []*Atom
		for _, a := range spare {
			if a.spare > 0 {
				left = append(left, a)
			}
		}
		k.rollback(0)
		return Errorf(KindValency, "could not convert spare valency to double bonds in fragment %d, atoms %v are left with spare valency", f.ID, left)
	}
	M.log.Debug("kekulized fragment", zap.Int("frag", f.ID), zap.Int("atoms", len(spare)), zap.Int("steps", k.steps))
	return nil
}

//bonds from a to atoms that still have spare valency and whose order can still grow.
func (K *kekulizer) candidates(a *Atom) []*Bond {
	var ret []*Bond
	for _, b := range a.bonds {
		o := b.Cross(a)
		if o.spare > 0 && o.frag == a.frag && b.order < 3 {
			ret = append(ret, b)
		}
	}
	return ret
}

func (K *kekulizer) raise(b *Bond) {
	b.order++
	b.at1.spare--
	b.at2.spare--
	b.at1.valCache = nil
	b.at2.valCache = nil
	K.undo.Push(kekuleStep{b: b})
}

func (K *kekulizer) rollback(mark int) {
	for K.undo.Size() > mark {
		v, _ := K.undo.Pop()
		b := v.(kekuleStep).b
		b.order--
		b.at1.spare++
		b.at2.spare++
		b.at1.valCache = nil
		b.at2.valCache = nil
	}
}

//force assigns every bond that is the only option for one of its atoms, until nothing changes.
func (K *kekulizer) force() {
	for changed := true; changed; {
		changed = false
		for _, a := range K.atoms {
			if a.spare == 0 {
				continue
			}
			c := K.candidates(a)
			if len(c) == 1 {
				K.raise(c[0])
				changed = true
			}
		}
	}
}

func (K *kekulizer) solve() bool {
	var a *Atom
	for _, v := range K.atoms {
		if v.spare > 0 {
			a = v
			break
		}
	}
	if a == nil {
		return true
	}
	if K.steps >= K.limit {
		return false
	}
	for _, b := range K.candidates(a) {
		K.steps++
		mark := K.undo.Size()
		K.raise(b)
		K.force()
		if K.solve() {
			return true
		}
		K.rollback(mark)
		if K.steps >= K.limit {
			return false
		}
	}
	return false
}
