/*
 * bonds.go, part of goName.
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

import "fmt"

// BondDir is the SMILES-style "/" or "\" direction of a bond. It is only
// meaningful while a fragment is being built from a SMILES string.
type BondDir int

const (
	DirNone BondDir = iota
	DirSlash
	DirBackslash
)

// Bond is an edge of the molecular graph, with an order between 1 and 3.
// The direction From->To carries no chemical meaning.
type Bond struct {
	ID     int
	Dir    BondDir
	at1    *Atom
	at2    *Atom
	order  int
	stereo *BondStereo
}

func (B *Bond) String() string {
	return fmt.Sprintf("%s-%s(%d)", B.at1, B.at2, B.order)
}

// From returns the first atom of the bond.
func (B *Bond) From() *Atom { return B.at1 }

// To returns the second atom of the bond.
func (B *Bond) To() *Atom { return B.at2 }

// Order returns the bond order.
func (B *Bond) Order() int { return B.order }

// SetOrder changes the bond order. Orders outside 1..3 are rejected.
func (B *Bond) SetOrder(order int) error {
	if order < 1 || order > 3 {
		return Errorf(KindStructure, "invalid bond order %d for bond %s", order, B)
	}
	B.order = order
	B.at1.valCache = nil
	B.at2.valCache = nil
	return nil
}

// Cross returns the atom at the other end of the bond from origin.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin == B.at1 {
		return B.at2
	}
	if origin == B.at2 {
		return B.at1
	}
	panic(PanicMsg(fmt.Sprintf("goName: Trying to cross bond %s from atom %s, which is not in the bond", B, origin))) //programming error
}

// Contains returns true if a is one of the ends of the bond.
func (B *Bond) Contains(a *Atom) bool {
	return a == B.at1 || a == B.at2
}

// Stereo returns the double bond configuration, or nil.
func (B *Bond) Stereo() *BondStereo { return B.stereo }

// SetStereo sets (or with nil, clears) the double bond configuration.
func (B *Bond) SetStereo(s *BondStereo) { B.stereo = s }
