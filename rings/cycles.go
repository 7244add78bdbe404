/*
 * cycles.go, part of goName.
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
	"github.com/emirpasic/gods/stacks/arraystack"
	chem "github.com/rmera/goname"
)

// AssignWhetherAtomsAreInCycles marks each atom of f as being in a ring or not. Only the
// bonds of f are considered. Disconnected fragments are fine.
func AssignWhetherAtomsAreInCycles(f *chem.Fragment) {
	if f == nil {
		panic(chem.ErrNilFragment)
	}
	atoms := f.Atoms()
	visited := make(map[*chem.Atom]int, len(atoms))
	for _, a := range atoms {
		a.SetInCycle(false)
	}
	for _, a := range atoms {
		if _, ok := visited[a]; !ok {
			traverseRings(f, a, nil, 0, visited)
		}
	}
}

//neighbours of a through bonds of f.
func neighbours(f *chem.Fragment, a *chem.Atom) []*chem.Atom {
	bonds := a.Bonds()
	ret := make([]*chem.Atom, 0, len(bonds))
	for _, b := range bonds {
		if f.HasBond(b) {
			ret = append(ret, b.Cross(a))
		}
	}
	return ret
}

func without(ats []*chem.Atom, a *chem.Atom) []*chem.Atom {
	ret := make([]*chem.Atom, 0, len(ats))
	for _, v := range ats {
		if v != a {
			ret = append(ret, v)
		}
	}
	return ret
}

//traverseRings does a depth-first search, returning the smallest depth reachable from current
//without going back through previous. Unbranched chains are walked without recursion.
func traverseRings(f *chem.Fragment, current, previous *chem.Atom, depth int, visited map[*chem.Atom]int) int {
	if d, ok := visited[current]; ok {
		return d
	}
	visited[current] = depth
	chain := []*chem.Atom{current}
	var next []*chem.Atom
	for {
		next = without(neighbours(f, current), previous)
		if len(next) != 1 {
			break
		}
		if _, ok := visited[next[0]]; ok {
			break
		}
		previous = current
		current = next[0]
		chain = append(chain, current)
		depth++
		visited[current] = depth
	}
	result := depth + 1
	for _, n := range next {
		if r := traverseRings(f, n, current, depth+1, visited); r < result {
			result = r
		}
	}
	if result < depth {
		for _, a := range chain {
			a.SetInCycle(true)
		}
	} else if result == depth {
		current.SetInCycle(true)
	}
	return result
}

type pathFrame struct {
	at   *chem.Atom
	path []*chem.Atom
}

// IntraFragmentPathsBetweenAtoms returns every simple path between a and b that uses only
// bonds of f. The paths do not include a and b themselves, so if the atoms are bonded, one
// of the paths is empty. The search uses an explicit stack, so long paths are not a problem.
func IntraFragmentPathsBetweenAtoms(a, b *chem.Atom, f *chem.Fragment) [][]*chem.Atom {
	if a == nil || b == nil {
		panic(chem.ErrNilAtom)
	}
	var paths [][]*chem.Atom
	stack := arraystack.New()
	stack.Push(pathFrame{at: a})
	for !stack.Empty() {
		v, _ := stack.Pop()
		fr := v.(pathFrame)
		ns := neighbours(f, fr.at)
		//reverse order, so the first neighbour is explored first
		for i := len(ns) - 1; i >= 0; i-- {
			n := ns[i]
			if n == a || contains(fr.path, n) {
				continue
			}
			if n == b {
				p := make([]*chem.Atom, len(fr.path))
				copy(p, fr.path)
				paths = append(paths, p)
				continue
			}
			np := make([]*chem.Atom, len(fr.path), len(fr.path)+1)
			copy(np, fr.path)
			stack.Push(pathFrame{at: n, path: append(np, n)})
		}
	}
	return paths
}

func contains(ats []*chem.Atom, a *chem.Atom) bool {
	for _, v := range ats {
		if v == a {
			return true
		}
	}
	return false
}
