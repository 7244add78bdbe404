/*
 * parity.go, part of goName.
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

// AtomParity is the tetrahedral configuration of an atom. Looking from the first reference
// atom, the other three go clockwise for Parity -1 and anticlockwise for Parity 1.
// A reference may be the centre itself, standing for a lone pair.
type AtomParity struct {
	Refs   [4]*Atom
	Parity int
}

// PermutationParity returns 1 if b is an even permutation of a and -1 if it is an
// odd one. It returns false if b is not a permutation of a.
func PermutationParity(a, b [4]*Atom) (int, bool) {
	var perm [4]int
	var used [4]bool
	for i, v := range b {
		found := -1
		for j, w := range a {
			if v == w {
				found = j
				break
			}
		}
		if found < 0 || used[found] {
			return 0, false
		}
		used[found] = true
		perm[i] = found
	}
	var seen [4]bool
	parity := 1
	for i := range perm {
		if seen[i] {
			continue
		}
		//a cycle of length n is n-1 transpositions
		n := 0
		for j := i; !seen[j]; j = perm[j] {
			seen[j] = true
			n++
		}
		if n%2 == 0 {
			parity = -parity
		}
	}
	return parity, true
}

// Equivalent returns the parity value that describes the same configuration as P,
// but using refs as references. It returns false if refs are not the same atoms as P's.
func (P *AtomParity) Equivalent(refs [4]*Atom) (int, bool) {
	perm, ok := PermutationParity(P.Refs, refs)
	if !ok {
		return 0, false
	}
	return P.Parity * perm, true
}

// CisTrans is the relative configuration of two reference atoms across a double bond.
type CisTrans int

const (
	Cis CisTrans = iota + 1
	Trans
)

func (C CisTrans) String() string {
	switch C {
	case Cis:
		return "cis"
	case Trans:
		return "trans"
	}
	return "unknown"
}

// Flip returns the opposite configuration.
func (C CisTrans) Flip() CisTrans {
	if C == Cis {
		return Trans
	}
	return Cis
}

// BondStereo is the configuration of a double bond. Refs holds a substituent of the first
// end, the two ends of the bond, and a substituent of the second end, in that order.
type BondStereo struct {
	Refs  [4]*Atom
	Value CisTrans
}

// ValueFor returns the configuration as seen from substituent a, of the first end, and
// substituent d, of the second end. Either may be the other substituent on its end,
// which flips the answer. It returns false if a or d are not substituents of the ends.
func (S *BondStereo) ValueFor(a, d *Atom) (CisTrans, bool) {
	ret := S.Value
	first, second := S.Refs[1], S.Refs[2]
	if a != S.Refs[0] {
		if a == second || first.BondTo(a) == nil {
			return 0, false
		}
		ret = ret.Flip()
	}
	if d != S.Refs[3] {
		if d == first || second.BondTo(d) == nil {
			return 0, false
		}
		ret = ret.Flip()
	}
	return ret, true
}
