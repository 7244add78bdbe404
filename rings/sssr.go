/*
 * sssr.go, part of goName.
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
	"sort"

	chem "github.com/rmera/goname"
	"github.com/rmera/goname/chemgraph"
	"github.com/scylladb/go-set/iset"
	"go.uber.org/zap"
)

// SSSRFinder finds a small set of smallest rings of a fragment. The procedure starts from the
// fundamental cycles of a spanning forest and replaces rings by the symmetric difference with
// another ring while that gives a smaller single ring. The result is the smallest set of
// smallest rings for most real molecules, but that is not guaranteed for every fused or
// bridged system.
type SSSRFinder struct {
	log *zap.Logger
}

// NewSSSRFinder returns a finder that logs to log. A nil log logs nothing.
func NewSSSRFinder(log *zap.Logger) *SSSRFinder {
	if log == nil {
		log = zap.NewNop()
	}
	return &SSSRFinder{log: log}
}

// SetOfSmallestRings is a shortcut for NewSSSRFinder(nil).SetOfSmallestRings(f).
func SetOfSmallestRings(f *chem.Fragment) []*Ring {
	return NewSSSRFinder(nil).SetOfSmallestRings(f)
}

// PolycyclicRings is a shortcut for NewSSSRFinder(nil).PolycyclicRings(f).
func PolycyclicRings(f *chem.Fragment) ([]*Ring, error) {
	return NewSSSRFinder(nil).PolycyclicRings(f)
}

// PolycyclicRings returns the rings of f, or a ring error if f has fewer than 2 rings.
func (S *SSSRFinder) PolycyclicRings(f *chem.Fragment) ([]*Ring, error) {
	rs := S.SetOfSmallestRings(f)
	if len(rs) < 2 {
		return nil, chem.Errorf(chem.KindRing, "fragment %d was expected to be polycyclic, but %d rings were found", f.ID, len(rs))
	}
	return rs, nil
}

// SetOfSmallestRings returns the rings of f, with their fusion information assigned,
// ordered by size.
func (S *SSSRFinder) SetOfSmallestRings(f *chem.Fragment) []*Ring {
	if f == nil {
		panic(chem.ErrNilFragment)
	}
	byID := make(map[int]*chem.Bond, f.BondCount())
	for _, b := range f.Bonds() {
		byID[b.ID] = b
	}
	cycles := fundamentalCycles(f)
	shrink(cycles, byID)
	sort.SliceStable(cycles, func(i, j int) bool { return cycles[i].Size() < cycles[j].Size() })
	rs := make([]*Ring, 0, len(cycles))
	for _, c := range cycles {
		ids := c.List()
		sort.Ints(ids)
		bonds := make([]*chem.Bond, 0, len(ids))
		for _, id := range ids {
			bonds = append(bonds, byID[id])
		}
		rs = append(rs, NewRing(bonds))
	}
	if expected := chemgraph.CyclomaticNumber(f); expected != len(rs) {
		S.log.Warn("ring count differs from cyclomatic number", zap.Int("frag", f.ID), zap.Int("rings", len(rs)), zap.Int("cyclomatic", expected))
	}
	AssignFusion(rs)
	return rs
}

//fundamentalCycles builds a depth-first spanning forest of f and returns, for each bond
//not in the forest, the cycle it closes, as a set of bond IDs.
func fundamentalCycles(f *chem.Fragment) []*iset.Set {
	parentBond := make(map[*chem.Atom]*chem.Bond)
	visited := make(map[*chem.Atom]bool)
	tree := iset.New()
	for _, root := range f.Atoms() {
		if visited[root] {
			continue
		}
		visited[root] = true
		stack := []*chem.Atom{root}
		for len(stack) > 0 {
			a := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, b := range a.Bonds() {
				if !f.HasBond(b) {
					continue
				}
				n := b.Cross(a)
				if visited[n] {
					continue
				}
				visited[n] = true
				parentBond[n] = b
				tree.Add(b.ID)
				stack = append(stack, n)
			}
		}
	}
	pathToRoot := func(a *chem.Atom) *iset.Set {
		ret := iset.New()
		for b, ok := parentBond[a]; ok; b, ok = parentBond[a] {
			ret.Add(b.ID)
			a = b.Cross(a)
		}
		return ret
	}
	var cycles []*iset.Set
	for _, b := range f.Bonds() {
		if tree.Has(b.ID) {
			continue
		}
		c := iset.SymmetricDifference(pathToRoot(b.From()), pathToRoot(b.To()))
		c.Add(b.ID)
		cycles = append(cycles, c)
	}
	return cycles
}

//shrink replaces a cycle by its symmetric difference with another one while that is
//smaller and still a single ring, until no more replacements are possible.
func shrink(cycles []*iset.Set, byID map[int]*chem.Bond) {
	for changed := true; changed; {
		changed = false
		for i := range cycles {
			for j := range cycles {
				if i == j {
					continue
				}
				x := iset.SymmetricDifference(cycles[i], cycles[j])
				if x.Size() >= cycles[i].Size() || !isSingleCycle(x, byID) || containsSet(cycles, x) {
					continue
				}
				cycles[i] = x
				changed = true
			}
		}
	}
}

func containsSet(sets []*iset.Set, s *iset.Set) bool {
	for _, v := range sets {
		if v.IsEqual(s) {
			return true
		}
	}
	return false
}

//isSingleCycle returns true if the bonds form one simple cycle: every atom has exactly
//two of the bonds, and all bonds are connected.
func isSingleCycle(ids *iset.Set, byID map[int]*chem.Bond) bool {
	if ids.Size() < 3 {
		return false
	}
	degree := make(map[*chem.Atom]int)
	var start *chem.Atom
	ids.Each(func(id int) bool {
		b := byID[id]
		degree[b.From()]++
		degree[b.To()]++
		start = b.From()
		return true
	})
	for _, d := range degree {
		if d != 2 {
			return false
		}
	}
	//walk the cycle from start, it must cover every bond.
	seen := iset.New()
	prev := -1
	a := start
	for {
		var next *chem.Bond
		for _, b := range a.Bonds() {
			if b.ID != prev && ids.Has(b.ID) && !seen.Has(b.ID) {
				next = b
				break
			}
		}
		if next == nil {
			break
		}
		seen.Add(next.ID)
		prev = next.ID
		a = next.Cross(a)
	}
	return seen.Size() == ids.Size()
}
