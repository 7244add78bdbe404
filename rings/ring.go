/*
 * ring.go, part of goName.
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

import (
	chem "github.com/rmera/goname"
	"github.com/scylladb/go-set/iset"
)

// Ring is one ring of a fragment, as a set of bonds. Rings are derived data:
// they are computed on demand and become stale if the fragment changes.
type Ring struct {
	bonds      []*chem.Bond
	atoms      []*chem.Atom
	ids        *iset.Set
	fused      int
	neighbours []*Ring
}

// NewRing builds a ring from its bonds, which must form a single cycle.
func NewRing(bonds []*chem.Bond) *Ring {
	R := &Ring{bonds: bonds, ids: iset.New()}
	seen := make(map[*chem.Atom]bool, len(bonds))
	for _, b := range bonds {
		R.ids.Add(b.ID)
		for _, a := range []*chem.Atom{b.From(), b.To()} {
			if !seen[a] {
				seen[a] = true
				R.atoms = append(R.atoms, a)
			}
		}
	}
	return R
}

// Size returns the number of atoms (or bonds) in the ring.
func (R *Ring) Size() int { return len(R.bonds) }

// Atoms returns the atoms of the ring, in no particular order.
func (R *Ring) Atoms() []*chem.Atom {
	ret := make([]*chem.Atom, len(R.atoms))
	copy(ret, R.atoms)
	return ret
}

// Bonds returns the bonds of the ring, in no particular order.
func (R *Ring) Bonds() []*chem.Bond {
	ret := make([]*chem.Bond, len(R.bonds))
	copy(ret, R.bonds)
	return ret
}

// BondIDs returns a copy of the set of IDs of the bonds in the ring.
func (R *Ring) BondIDs() *iset.Set { return R.ids.Copy() }

// HasBond returns true if b is in the ring.
func (R *Ring) HasBond(b *chem.Bond) bool {
	return R.ids.Has(b.ID) && containsBond(R.bonds, b)
}

// HasAtom returns true if a is in the ring.
func (R *Ring) HasAtom(a *chem.Atom) bool {
	return contains(R.atoms, a)
}

// FusedBondCount is the number of bonds of the ring that are shared with other rings.
// It is set by AssignFusion.
func (R *Ring) FusedBondCount() int { return R.fused }

// Neighbours returns the rings that share at least one bond with R. It is set by AssignFusion.
func (R *Ring) Neighbours() []*Ring {
	ret := make([]*Ring, len(R.neighbours))
	copy(ret, R.neighbours)
	return ret
}

// CyclicAtoms returns the atoms of the ring in order, starting with startAtom and
// going first through startBond.
func (R *Ring) CyclicAtoms(startBond *chem.Bond, startAtom *chem.Atom) ([]*chem.Atom, error) {
	ats, _, err := R.walk(startBond, startAtom)
	return ats, err
}

// CyclicBonds returns the bonds of the ring in order, starting with startBond and
// leaving startAtom behind.
func (R *Ring) CyclicBonds(startBond *chem.Bond, startAtom *chem.Atom) ([]*chem.Bond, error) {
	_, bonds, err := R.walk(startBond, startAtom)
	return bonds, err
}

func (R *Ring) walk(startBond *chem.Bond, startAtom *chem.Atom) ([]*chem.Atom, []*chem.Bond, error) {
	if !R.HasBond(startBond) {
		return nil, nil, chem.Errorf(chem.KindRing, "bond %s is not in the ring", startBond)
	}
	if !startBond.Contains(startAtom) {
		return nil, nil, chem.Errorf(chem.KindRing, "atom %s is not in bond %s", startAtom, startBond)
	}
	atoms := []*chem.Atom{startAtom}
	bonds := []*chem.Bond{startBond}
	current := startBond.Cross(startAtom)
	prev := startBond
	for current != startAtom {
		atoms = append(atoms, current)
		var next *chem.Bond
		for _, b := range R.bonds {
			if b != prev && b.Contains(current) {
				next = b
				break
			}
		}
		if next == nil || len(bonds) >= len(R.bonds) {
			return nil, nil, chem.Errorf(chem.KindRing, "bonds do not form a single cycle at atom %s", current)
		}
		bonds = append(bonds, next)
		prev = next
		current = next.Cross(current)
	}
	if len(atoms) != len(R.bonds) {
		return nil, nil, chem.Errorf(chem.KindRing, "ring with %d bonds closed after %d atoms", len(R.bonds), len(atoms))
	}
	return atoms, bonds, nil
}

// AssignFusion sets the fused bond counts and neighbours of each ring in rs.
func AssignFusion(rs []*Ring) {
	for _, r := range rs {
		r.fused = 0
		r.neighbours = nil
	}
	for i, r := range rs {
		shared := iset.New()
		for j, o := range rs {
			if i == j {
				continue
			}
			common := iset.Intersection(r.ids, o.ids)
			if common.Size() > 0 {
				r.neighbours = append(r.neighbours, o)
				shared.Merge(common)
			}
		}
		r.fused = shared.Size()
	}
}

func containsBond(bs []*chem.Bond, b *chem.Bond) bool {
	for _, v := range bs {
		if v == b {
			return true
		}
	}
	return false
}
