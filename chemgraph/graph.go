/*
 * graph.go, part of goName.
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

package chemgraph

import (
	"sort"

	chem "github.com/rmera/goname"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"
)

// Atom wraps a chem.Atom so it can be used as a gonum graph node.
type Atom struct {
	*chem.Atom
	Bonds []*Bond
}

// ID returns the atom ID, as an int64, as gonum requires.
func (A *Atom) ID() int64 {
	return int64(A.Atom.ID)
}

// Bond wraps a chem.Bond as an undirected gonum edge.
type Bond struct {
	*chem.Bond
	At1, At2 *Atom
}

func (B *Bond) From() graph.Node {
	return B.At1
}

func (B *Bond) To() graph.Node {
	return B.At2
}

// ReversedEdge returns a copy of the bond with the ends swapped.
// Bonds are not directional, so this is only a change of view.
func (B *Bond) ReversedEdge() graph.Edge {
	return &Bond{Bond: B.Bond, At1: B.At2, At2: B.At1}
}

// Bonds is a list of bonds.
type Bonds []*Bond

func (B Bonds) Len() int {
	return len(B)
}

// Contains returns true if a bond with the given ID is in the list.
func (B Bonds) Contains(id int) bool {
	for _, b := range B {
		if b.Bond.ID == id {
			return true
		}
	}
	return false
}

// Atoms implements gonum's graph.Nodes
type Atoms struct {
	Atoms []*Atom
	curr  int
}

func newAtoms(ats []*Atom) *Atoms {
	return &Atoms{Atoms: ats, curr: -1}
}

// Len returns the number of atoms not yet iterated over.
func (A *Atoms) Len() int {
	return len(A.Atoms) - (A.curr + 1)
}

func (A *Atoms) Reset() {
	A.curr = -1
}

func (A *Atoms) Next() bool {
	if A.curr+1 >= len(A.Atoms) {
		return false
	}
	A.curr++
	return true
}

func (A *Atoms) Node() graph.Node {
	if A.curr < 0 || A.curr >= len(A.Atoms) {
		return nil
	}
	return A.Atoms[A.curr]
}

// Topology is a read-only view of a set of atoms and the bonds among them, that implements
// gonum's graph.Undirected. Changes to the underlying fragment are not reflected: build a new
// Topology after mutating.
type Topology struct {
	Bonds
	atoms []*Atom
	byID  map[int64]*Atom
	order map[int64]int
}

// FromChem builds a Topology from the atoms and bonds of ab. Bonds with an end outside
// ab are left out.
func FromChem(ab chem.AtomBonder) *Topology {
	T := &Topology{byID: make(map[int64]*Atom, ab.Len()), order: make(map[int64]int, ab.Len())}
	for i, v := range ab.Atoms() {
		a := &Atom{Atom: v}
		T.atoms = append(T.atoms, a)
		T.byID[a.ID()] = a
		T.order[a.ID()] = i
	}
	for _, v := range ab.Bonds() {
		at1, ok1 := T.byID[int64(v.From().ID)]
		at2, ok2 := T.byID[int64(v.To().ID)]
		if !ok1 || !ok2 || at1.Atom != v.From() || at2.Atom != v.To() {
			continue
		}
		b := &Bond{Bond: v, At1: at1, At2: at2}
		T.Bonds = append(T.Bonds, b)
		at1.Bonds = append(at1.Bonds, b)
		at2.Bonds = append(at2.Bonds, b)
	}
	return T
}

// Node returns the atom with the given ID, or nil.
func (T *Topology) Node(id int64) graph.Node {
	a, ok := T.byID[id]
	if !ok {
		return nil
	}
	return a
}

func (T *Topology) Nodes() graph.Nodes {
	return newAtoms(T.atoms)
}

// From returns the atoms bonded to the atom with the given ID.
func (T *Topology) From(id int64) graph.Nodes {
	a, ok := T.byID[id]
	if !ok {
		return graph.Empty
	}
	ret := make([]*Atom, 0, len(a.Bonds))
	for _, b := range a.Bonds {
		if b.At1 == a {
			ret = append(ret, b.At2)
		} else {
			ret = append(ret, b.At1)
		}
	}
	return newAtoms(ret)
}

func (T *Topology) HasEdgeBetween(id1, id2 int64) bool {
	return T.EdgeBetween(id1, id2) != nil
}

// Edge returns the bond between the two atoms, oriented from the first one.
func (T *Topology) Edge(id1, id2 int64) graph.Edge {
	a, ok := T.byID[id1]
	if !ok {
		return nil
	}
	for _, b := range a.Bonds {
		//the graph is always undirected
		if b.At1 == a && b.At2.ID() == id2 {
			return b
		}
		if b.At2 == a && b.At1.ID() == id2 {
			return b.ReversedEdge()
		}
	}
	return nil
}

func (T *Topology) EdgeBetween(id1, id2 int64) graph.Edge {
	return T.Edge(id1, id2)
}

// Components returns the connected components of ab. Atoms in each component, and
// the components themselves, follow the order of ab.Atoms().
func Components(ab chem.AtomBonder) [][]*chem.Atom {
	T := FromChem(ab)
	cc := topo.ConnectedComponents(T)
	ret := make([][]*chem.Atom, 0, len(cc))
	for _, c := range cc {
		sort.Slice(c, func(i, j int) bool { return T.order[c[i].ID()] < T.order[c[j].ID()] })
		comp := make([]*chem.Atom, 0, len(c))
		for _, n := range c {
			comp = append(comp, n.(*Atom).Atom)
		}
		ret = append(ret, comp)
	}
	sort.Slice(ret, func(i, j int) bool {
		return T.order[int64(ret[i][0].ID)] < T.order[int64(ret[j][0].ID)]
	})
	return ret
}

// CyclomaticNumber returns the number of independent cycles of ab, that is, the size of
// its smallest set of smallest rings.
func CyclomaticNumber(ab chem.AtomBonder) int {
	T := FromChem(ab)
	return len(T.Bonds) - len(T.atoms) + len(topo.ConnectedComponents(T))
}
