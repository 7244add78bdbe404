/*
 * colour.go, part of goName.
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
)

//node is a vertex of the augmented graph used for ranking. Ghost nodes have
//negative ids, duplicate the atomic number of the atom they stand for, and
//have a single neighbour.
type node struct {
	id         int
	atom       *chem.Atom
	z          int
	neighbours []*node
	colour     int
}

func (n *node) ghost() bool { return n.id < 0 }

type signature struct {
	n    *node
	own  int
	nbrs []int //neighbour colours, descending
}

//less compares signatures by own colour, then by neighbour colours from the highest,
//a missing neighbour counting as colour 0.
func (s signature) less(o signature) bool {
	if s.own != o.own {
		return s.own < o.own
	}
	l := len(s.nbrs)
	if len(o.nbrs) > l {
		l = len(o.nbrs)
	}
	for i := 0; i < l; i++ {
		a, b := at(s.nbrs, i), at(o.nbrs, i)
		if a != b {
			return a < b
		}
	}
	return false
}

func (s signature) equal(o signature) bool {
	return !s.less(o) && !o.less(s)
}

func at(c []int, i int) int {
	if i < len(c) {
		return c[i]
	}
	return 0
}

//initialColours ranks the nodes by atomic number. Colours start at 1.
func initialColours(nodes []*node) {
	zs := make([]int, 0, len(nodes))
	seen := make(map[int]bool)
	for _, n := range nodes {
		if !seen[n.z] {
			seen[n.z] = true
			zs = append(zs, n.z)
		}
	}
	sort.Ints(zs)
	rank := make(map[int]int, len(zs))
	for i, z := range zs {
		rank[z] = i + 1
	}
	for _, n := range nodes {
		n.colour = rank[n.z]
	}
}

//refine does one pass of colour refinement and returns true if the partition
//of the nodes into colours changed.
func refine(nodes []*node) bool {
	sigs := make([]signature, len(nodes))
	distinctBefore := make(map[int]bool)
	for i, n := range nodes {
		distinctBefore[n.colour] = true
		nb := make([]int, len(n.neighbours))
		for j, v := range n.neighbours {
			nb[j] = v.colour
		}
		sort.Sort(sort.Reverse(sort.IntSlice(nb)))
		sigs[i] = signature{n: n, own: n.colour, nbrs: nb}
	}
	sort.SliceStable(sigs, func(i, j int) bool { return sigs[i].less(sigs[j]) })
	colour := 0
	for i, s := range sigs {
		if i == 0 || !s.equal(sigs[i-1]) {
			colour++
		}
		s.n.colour = colour
	}
	return colour != len(distinctBefore)
}

//refineToFixedPoint refines until the colours stop changing.
func refineToFixedPoint(nodes []*node) int {
	passes := 0
	for refine(nodes) {
		passes++
	}
	return passes
}
