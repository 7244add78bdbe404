/*
 * analyser.go, part of goName.
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
	"sort"

	chem "github.com/rmera/goname"
	"go.uber.org/zap"
)

// StereoCentre is an atom that can carry a tetrahedral configuration. Refs holds its
// neighbours in ascending priority. A lone pair is represented by the centre itself,
// in the first position.
type StereoCentre struct {
	Atom *chem.Atom
	Refs [4]*chem.Atom
}

// StereoBond is a double bond that can carry an E/Z configuration. Refs holds the highest
// priority substituent of the first end, the two ends, and the highest priority substituent
// of the second end. For a nitrogen end with a lone pair, the substituent is its only neighbour.
type StereoBond struct {
	Bond *chem.Bond
	Refs [4]*chem.Atom
}

//elements that can be tetrahedral stereocentres with four neighbours.
var tetrahedral = map[string]bool{
	"C": true, "N": true, "P": true, "S": true, "B": true, "Si": true, "As": true, "Se": true,
}

// Analyser ranks the atoms of a fragment with a CIP-like colour refinement, and uses the
// ranking to find the possible stereocentres and stereobonds. Multiple bonds are handled
// by adding, for each extra bond order, a ghost copy of each end to the other end, in a
// private graph. The fragment itself is not modified. Hydrogens are only considered if
// they are present as atoms.
type Analyser struct {
	frag   *chem.Fragment
	nodes  []*node
	byAtom map[*chem.Atom]*node
	passes int
}

// NewAnalyser builds the ranking for f.
func NewAnalyser(f *chem.Fragment) *Analyser {
	if f == nil {
		panic(chem.ErrNilFragment)
	}
	A := &Analyser{frag: f, byAtom: make(map[*chem.Atom]*node, f.Len())}
	for _, a := range f.Atoms() {
		n := &node{id: a.ID, atom: a, z: a.Z()}
		A.nodes = append(A.nodes, n)
		A.byAtom[a] = n
	}
	ghostID := 0
	ghost := func(of *chem.Atom, on *node) {
		ghostID--
		g := &node{id: ghostID, atom: of, z: of.Z(), neighbours: []*node{on}}
		on.neighbours = append(on.neighbours, g)
		A.nodes = append(A.nodes, g)
	}
	for _, b := range f.Bonds() {
		n1, n2 := A.byAtom[b.From()], A.byAtom[b.To()]
		n1.neighbours = append(n1.neighbours, n2)
		n2.neighbours = append(n2.neighbours, n1)
		for i := 1; i < b.Order(); i++ {
			ghost(b.To(), n1)
			ghost(b.From(), n2)
		}
	}
	initialColours(A.nodes)
	A.passes = refineToFixedPoint(A.nodes)
	return A
}

// NewAnalyserLogged is like NewAnalyser, but reports the size of the problem to log.
func NewAnalyserLogged(f *chem.Fragment, log *zap.Logger) *Analyser {
	A := NewAnalyser(f)
	log.Debug("ranked atoms", zap.Int("frag", f.ID), zap.Int("nodes", len(A.nodes)), zap.Int("passes", A.passes))
	return A
}

// Colour returns the rank of a. Higher colours are higher priorities, and atoms with
// the same colour are equivalent.
func (A *Analyser) Colour(a *chem.Atom) (int, bool) {
	n, ok := A.byAtom[a]
	if !ok {
		return 0, false
	}
	return n.colour, true
}

//real neighbours of a, that is, the atoms bonded to a through bonds of the fragment.
func (A *Analyser) neighbours(a *chem.Atom) []*node {
	n := A.byAtom[a]
	ret := make([]*node, 0, len(n.neighbours))
	for _, v := range n.neighbours {
		if !v.ghost() {
			ret = append(ret, v)
		}
	}
	return ret
}

func distinctColours(ns []*node) bool {
	seen := make(map[int]bool, len(ns))
	for _, n := range ns {
		if seen[n.colour] {
			return false
		}
		seen[n.colour] = true
	}
	return true
}

// StereoCentres returns the atoms with four different substituents (counting a lone pair
// of sulfur or selenium as one), in the fragment's atom order.
func (A *Analyser) StereoCentres() []*StereoCentre {
	var ret []*StereoCentre
	for _, a := range A.frag.Atoms() {
		ns := A.neighbours(a)
		switch {
		case len(ns) == 4 && tetrahedral[a.Symbol()]:
		case len(ns) == 3 && (a.Symbol() == "S" || a.Symbol() == "Se") && a.IncomingValency() == 4:
		default:
			continue
		}
		if !distinctColours(ns) {
			continue
		}
		sort.Slice(ns, func(i, j int) bool { return ns[i].colour < ns[j].colour })
		c := &StereoCentre{Atom: a}
		i := 0
		if len(ns) == 3 {
			c.Refs[0] = a
			i = 1
		}
		for _, n := range ns {
			c.Refs[i] = n.atom
			i++
		}
		ret = append(ret, c)
	}
	return ret
}

//highestSubstituent returns the substituent of end, other than across, that ranks highest,
//or false if end can't be part of a stereobond.
func (A *Analyser) highestSubstituent(end, across *chem.Atom) (*chem.Atom, bool) {
	var subs []*node
	for _, n := range A.neighbours(end) {
		if n.atom != across {
			subs = append(subs, n)
		}
	}
	switch len(subs) {
	case 2:
		if subs[0].colour == subs[1].colour {
			return nil, false
		}
		if subs[0].colour > subs[1].colour {
			return subs[0].atom, true
		}
		return subs[1].atom, true
	case 1:
		if end.Symbol() == "N" && end.Charge() == 0 && end.IncomingValency() == 3 {
			return subs[0].atom, true
		}
	}
	return nil, false
}

// StereoBonds returns the double bonds with two different substituents on each end,
// in the fragment's bond order.
func (A *Analyser) StereoBonds() []*StereoBond {
	var ret []*StereoBond
	for _, b := range A.frag.Bonds() {
		if b.Order() != 2 {
			continue
		}
		h1, ok1 := A.highestSubstituent(b.From(), b.To())
		h2, ok2 := A.highestSubstituent(b.To(), b.From())
		if !ok1 || !ok2 {
			continue
		}
		ret = append(ret, &StereoBond{Bond: b, Refs: [4]*chem.Atom{h1, b.From(), b.To(), h2}})
	}
	return ret
}
