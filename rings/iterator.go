/*
 * iterator.go, part of goName.
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

package rings

import chem "github.com/rmera/goname"

// RingAtomIterator walks around a cyclic list of atoms, as returned by Ring.CyclicAtoms,
// wrapping at both ends.
type RingAtomIterator struct {
	atoms []*chem.Atom
	i     int
}

// NewRingAtomIterator returns an iterator over atoms positioned at index start.
func NewRingAtomIterator(atoms []*chem.Atom, start int) *RingAtomIterator {
	R := &RingAtomIterator{atoms: atoms}
	R.SetIndex(start)
	return R
}

func (R *RingAtomIterator) wrap(i int) int {
	n := len(R.atoms)
	return ((i % n) + n) % n
}

// Len returns the number of atoms in the ring.
func (R *RingAtomIterator) Len() int { return len(R.atoms) }

// Index returns the current position.
func (R *RingAtomIterator) Index() int { return R.i }

// SetIndex moves the iterator to position i, modulo the ring size.
func (R *RingAtomIterator) SetIndex(i int) {
	if len(R.atoms) == 0 {
		R.i = 0
		return
	}
	R.i = R.wrap(i)
}

// Current returns the atom at the current position.
func (R *RingAtomIterator) Current() *chem.Atom {
	if len(R.atoms) == 0 {
		return nil
	}
	return R.atoms[R.i]
}

// Next moves forward and returns the new current atom.
func (R *RingAtomIterator) Next() *chem.Atom {
	R.SetIndex(R.i + 1)
	return R.Current()
}

// Previous moves backwards and returns the new current atom.
func (R *RingAtomIterator) Previous() *chem.Atom {
	R.SetIndex(R.i - 1)
	return R.Current()
}

// PeekNext returns the next atom without moving.
func (R *RingAtomIterator) PeekNext() *chem.Atom {
	if len(R.atoms) == 0 {
		return nil
	}
	return R.atoms[R.wrap(R.i+1)]
}

// PeekPrevious returns the previous atom without moving.
func (R *RingAtomIterator) PeekPrevious() *chem.Atom {
	if len(R.atoms) == 0 {
		return nil
	}
	return R.atoms[R.wrap(R.i-1)]
}
