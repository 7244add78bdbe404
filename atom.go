/*
 * atom.go, part of goName.
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
	"fmt"
	"regexp"
)

// AtomKind tells skeletal atoms apart from atoms that were added by a suffix
// (the oxygen of an -ol, the nitrogen of an -amide...).
type AtomKind int

const (
	Skeletal AtomKind = iota
	Suffix
)

// Flags is a set of side-channel marks on an atom, used to pass information between
// structure-building stages.
type Flags uint8

const (
	// FlagPossiblyCharged marks a neutral atom whose bonding looks like it needs a charge,
	// e.g. a fully substituted aromatic nitrogen.
	FlagPossiblyCharged Flags = 1 << iota
	// FlagAmbiguousElement marks an atom whose element was picked among several candidates.
	FlagAmbiguousElement
)

// Has returns true if all the flags in f are set.
func (F Flags) Has(f Flags) bool { return F&f == f }

//matches locants like N5, N'5 or Calpha. The element symbol must be the atom's.
var aminoAcidStyleLocant = regexp.MustCompile(`^([A-Z][a-z]?)('*)((\d+[a-z]?|alpha|beta|gamma|delta|epsilon|zeta|eta|omega)'*)$`)

type valencyKey struct {
	incoming    int
	out         int
	considerOut bool
}

type valencyResult struct {
	v  int
	ok bool
}

// Atom is a vertex of the molecular graph. Atoms are created by a Manager, which gives them
// an ID unique within the build session, and belong to exactly one Fragment at a time.
type Atom struct {
	ID   int
	Kind AtomKind

	symbol string
	charge int

	locants []string

	explicitH     int
	hasExplicitH  bool
	lambda        int
	hasLambda     bool
	minValency    int
	hasMinValency bool
	protons       int //protons explicitly added (positive) or removed (negative) e.g. by -ium or -ide

	spare      int
	outValency int
	inCycle    bool
	parity     *AtomParity
	flags      Flags

	frag  *Fragment
	bonds []*Bond

	valCache map[valencyKey]valencyResult
}

func (A *Atom) String() string {
	return fmt.Sprintf("%s%d", A.symbol, A.ID)
}

// Symbol returns the element symbol of the atom.
func (A *Atom) Symbol() string { return A.symbol }

// SetSymbol changes the element of the atom, as replacement nomenclature does.
func (A *Atom) SetSymbol(symbol string) error {
	if !IsElement(symbol) {
		return Errorf(KindStructure, "unknown element symbol %q", symbol)
	}
	A.symbol = symbol
	A.valCache = nil
	return nil
}

// Z returns the atomic number of the atom.
func (A *Atom) Z() int {
	z, _ := AtomicNumber(A.symbol)
	return z
}

// Charge returns the formal charge of the atom.
func (A *Atom) Charge() int { return A.charge }

// SetCharge sets the formal charge of the atom.
func (A *Atom) SetCharge(c int) {
	A.charge = c
	A.valCache = nil
}

// Frag returns the fragment that currently owns the atom, or nil
// if the atom has been removed.
func (A *Atom) Frag() *Fragment { return A.frag }

// Bonds returns a copy of the list of bonds of the atom.
func (A *Atom) Bonds() []*Bond {
	ret := make([]*Bond, len(A.bonds))
	copy(ret, A.bonds)
	return ret
}

// BondCount returns the number of bonds of the atom.
func (A *Atom) BondCount() int { return len(A.bonds) }

// Neighbours returns the atoms bonded to A, in bond creation order.
func (A *Atom) Neighbours() []*Atom {
	ret := make([]*Atom, 0, len(A.bonds))
	for _, b := range A.bonds {
		ret = append(ret, b.Cross(A))
	}
	return ret
}

// BondTo returns the bond between A and other, or nil if there is none.
func (A *Atom) BondTo(other *Atom) *Bond {
	for _, b := range A.bonds {
		if b.at1 == other || b.at2 == other {
			return b
		}
	}
	return nil
}

func (A *Atom) addBond(b *Bond) {
	A.bonds = append(A.bonds, b)
	A.valCache = nil
}

func (A *Atom) removeBond(b *Bond) bool {
	for i, v := range A.bonds {
		if v == b {
			A.bonds = append(A.bonds[:i], A.bonds[i+1:]...)
			A.valCache = nil
			return true
		}
	}
	return false
}

/***Locants***/

// Locants returns a copy of the locants of the atom, in the order they were added.
func (A *Atom) Locants() []string {
	ret := make([]string, len(A.locants))
	copy(ret, A.locants)
	return ret
}

// FirstLocant returns the first locant of the atom, or an empty string.
func (A *Atom) FirstLocant() string {
	if len(A.locants) == 0 {
		return ""
	}
	return A.locants[0]
}

// AddLocant adds a locant to the atom. The owning fragment's index will resolve the
// locant to this atom from now on.
func (A *Atom) AddLocant(locant string) {
	if !A.hasOwnLocant(locant) {
		A.locants = append(A.locants, locant)
	}
	if A.frag != nil {
		A.frag.registerLocant(locant, A, true)
	}
}

// AddLocants adds several locants to the atom.
func (A *Atom) AddLocants(locants ...string) {
	for _, l := range locants {
		A.AddLocant(l)
	}
}

// ReplaceLocants removes all the locants of the atom and gives it the ones supplied.
func (A *Atom) ReplaceLocants(locants ...string) {
	A.ClearLocants()
	A.AddLocants(locants...)
}

// RemoveLocant removes the locant from the atom and from the fragment's index.
// It returns false if the atom didn't have the locant.
func (A *Atom) RemoveLocant(locant string) bool {
	for i, l := range A.locants {
		if l == locant {
			A.locants = append(A.locants[:i], A.locants[i+1:]...)
			if A.frag != nil {
				A.frag.unregisterLocant(locant, A)
			}
			return true
		}
	}
	return false
}

// ClearLocants removes every locant from the atom.
func (A *Atom) ClearLocants() {
	for len(A.locants) > 0 {
		A.RemoveLocant(A.locants[len(A.locants)-1])
	}
}

func (A *Atom) hasOwnLocant(locant string) bool {
	for _, l := range A.locants {
		if l == locant {
			return true
		}
	}
	return false
}

// HasLocant returns true if the atom has the locant. Amino-acid style locants like N5 or N'5
// also match a nitrogen atom that is attached, through atoms with no locants, to a
// skeletal atom with locant 5.
func (A *Atom) HasLocant(locant string) bool {
	if A.hasOwnLocant(locant) {
		return true
	}
	m := aminoAcidStyleLocant.FindStringSubmatch(locant)
	if m == nil || m[1] != A.symbol {
		return false
	}
	if m[2] != "" && !A.hasOwnLocant(m[1]+m[2]) {
		return false //the primes have to match exactly
	}
	numeric := m[3]
	visited := map[*Atom]bool{A: true}
	stack := A.Neighbours()
	for len(stack) > 0 {
		a := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[a] {
			continue
		}
		visited[a] = true
		if a.Kind == Suffix {
			continue
		}
		if len(a.locants) > 0 {
			if a.hasOwnLocant(numeric) {
				return true
			}
			continue
		}
		stack = append(stack, a.Neighbours()...)
	}
	return false
}

/***Hydrogens and valency***/

// ExplicitHydrogens returns the total number of hydrogens fixed for the atom, if any.
func (A *Atom) ExplicitHydrogens() (int, bool) { return A.explicitH, A.hasExplicitH }

// SetExplicitHydrogens fixes the total number of hydrogens of the atom.
func (A *Atom) SetExplicitHydrogens(n int) {
	A.explicitH = n
	A.hasExplicitH = true
}

// ClearExplicitHydrogens removes the fixed hydrogen count.
func (A *Atom) ClearExplicitHydrogens() {
	A.explicitH = 0
	A.hasExplicitH = false
}

// PendingHydrogens is the number of fixed explicit hydrogens not yet present as atoms.
func (A *Atom) PendingHydrogens() int {
	if !A.hasExplicitH {
		return 0
	}
	n := A.explicitH - A.hydrogenNeighbours()
	if n < 0 {
		return 0
	}
	return n
}

func (A *Atom) hydrogenNeighbours() int {
	n := 0
	for _, b := range A.bonds {
		if b.Cross(A).symbol == "H" {
			n++
		}
	}
	return n
}

// LambdaConvention returns the valency fixed with the lambda convention, if any.
func (A *Atom) LambdaConvention() (int, bool) { return A.lambda, A.hasLambda }

// SetLambdaConvention fixes the valency of the atom.
func (A *Atom) SetLambdaConvention(v int) {
	A.lambda = v
	A.hasLambda = true
	A.valCache = nil
}

// MinimumValency returns the minimum valency of the atom, if one was set.
func (A *Atom) MinimumValency() (int, bool) { return A.minValency, A.hasMinValency }

// SetMinimumValency sets a lower bound for the valency of the atom.
func (A *Atom) SetMinimumValency(v int) {
	A.minValency = v
	A.hasMinValency = true
	A.valCache = nil
}

// Protons returns the number of protons explicitly added to (positive) or
// removed from (negative) the atom.
func (A *Atom) Protons() int { return A.protons }

// AddProtons records n protons as explicitly added (or removed, if n is negative).
func (A *Atom) AddProtons(n int) {
	A.protons += n
	A.valCache = nil
}

// IncomingValency returns the sum of the orders of the bonds of the atom.
// Bonds to explicit hydrogen atoms are counted like any other bond. Implicit
// hydrogens are not bonds and are not counted, so the value grows when they are
// made explicit.
func (A *Atom) IncomingValency() int {
	v := 0
	for _, b := range A.bonds {
		v += b.order
	}
	return v
}

// DetermineValency returns the smallest standard (or lambda-convention) valency that can hold
// the current bonds of the atom, optionally considering its out valency. It returns false if no
// such valency is known, meaning that the atom needs to be validated later.
func (A *Atom) DetermineValency(considerOutValency bool) (int, bool) {
	current := A.IncomingValency()
	out := 0
	if considerOutValency {
		out = A.outValency
	}
	key := valencyKey{incoming: current, out: out, considerOut: considerOutValency}
	if r, ok := A.valCache[key]; ok {
		return r.v, r.ok
	}
	v, ok := A.determineValency(current + out)
	if A.valCache == nil {
		A.valCache = make(map[valencyKey]valencyResult)
	}
	A.valCache[key] = valencyResult{v: v, ok: ok}
	return v, ok
}

func (A *Atom) determineValency(current int) (int, bool) {
	if A.hasLambda {
		return A.lambda + A.protons, true
	}
	minVal, hasMin := A.minValency+A.protons, A.hasMinValency
	if A.charge == 0 || A.protons != 0 {
		if def, ok := DefaultValency(A.symbol); ok {
			def += A.protons
			if current <= def && (!hasMin || def >= minVal) {
				return def, true
			}
		}
	}
	if possible, ok := PossibleValencies(A.symbol, A.charge); ok {
		if hasMin && minVal >= current {
			return minVal, true
		}
		for _, v := range possible {
			if hasMin && v < minVal {
				continue
			}
			if current <= v {
				return v, true
			}
		}
	}
	if hasMin && minVal >= current {
		return minVal, true
	}
	return 0, false
}

/***Spare and out valency***/

// SpareValency returns the unassigned unsaturation of the atom.
func (A *Atom) SpareValency() int { return A.spare }

// SetSpareValency sets the spare valency. Negative values panic.
func (A *Atom) SetSpareValency(n int) {
	if n < 0 {
		panic(PanicMsg(fmt.Sprintf("goName: negative spare valency %d for atom %s", n, A)))
	}
	A.spare = n
}

// AddSpareValency increases the spare valency of the atom by n.
func (A *Atom) AddSpareValency(n int) {
	A.spare += n
}

// SubtractSpareValency decreases the spare valency of the atom by n. It is an error
// to go below zero.
func (A *Atom) SubtractSpareValency(n int) error {
	if A.spare-n < 0 {
		return Errorf(KindValency, "atom %s has spare valency %d, cannot subtract %d", A, A.spare, n)
	}
	A.spare -= n
	return nil
}

// OutValency returns the bond order reserved on the atom for bonds not yet made.
func (A *Atom) OutValency() int { return A.outValency }

// AddOutValency reserves n more bond order on the atom.
func (A *Atom) AddOutValency(n int) {
	A.outValency += n
}

// SubtractOutValency releases n reserved bond order. It is an error to go below zero.
func (A *Atom) SubtractOutValency(n int) error {
	if A.outValency-n < 0 {
		return Errorf(KindValency, "atom %s has out valency %d, cannot subtract %d", A, A.outValency, n)
	}
	A.outValency -= n
	return nil
}

// EnsureSpareValencyConsistent lowers the spare valency of the atom to what its valency
// allows, given the bonds it already has. If takeIntoAccountExternalBonds is false, only the
// bonds inside the atom's fragment are counted. A neutral nitrogen with no hydrogens that loses
// its spare valency this way is flagged with FlagPossiblyCharged.
func (A *Atom) EnsureSpareValencyConsistent(takeIntoAccountExternalBonds bool) error {
	if A.spare == 0 {
		return nil
	}
	var maxValency int
	if A.hasLambda {
		maxValency = A.lambda + A.protons
	} else if v, ok := MaximumValency(A.symbol, A.charge); ok && A.charge != 0 && A.protons == 0 {
		maxValency = v
	} else {
		hw, ok := HWValency(A.symbol)
		if !ok {
			return Errorf(KindValency, "%s is not expected to be aromatic (atom %s)", A.symbol, A)
		}
		maxValency = hw + A.protons
	}
	used := A.PendingHydrogens()
	if takeIntoAccountExternalBonds || A.frag == nil {
		used += A.IncomingValency() + A.outValency
	} else {
		used += A.frag.IntraFragmentIncomingValency(A)
	}
	budget := maxValency - used
	if budget >= A.spare {
		return nil
	}
	if budget < 0 {
		budget = 0
	}
	if A.symbol == "N" && A.charge == 0 && budget == 0 && A.PendingHydrogens() == 0 && A.hydrogenNeighbours() == 0 {
		A.flags |= FlagPossiblyCharged
	}
	A.spare = budget
	return nil
}

/***Rings, parity and flags***/

// InCycle returns true if the atom was found to be in a ring the last time
// ring membership was assigned.
func (A *Atom) InCycle() bool { return A.inCycle }

// SetInCycle marks the atom as being or not in a ring.
func (A *Atom) SetInCycle(in bool) { A.inCycle = in }

// Parity returns the tetrahedral parity of the atom, or nil.
func (A *Atom) Parity() *AtomParity { return A.parity }

// SetParity sets (or, with nil, clears) the tetrahedral parity of the atom.
func (A *Atom) SetParity(p *AtomParity) { A.parity = p }

// Flags returns the flags set on the atom.
func (A *Atom) Flags() Flags { return A.flags }

// SetFlag sets the given flags on the atom.
func (A *Atom) SetFlag(f Flags) { A.flags |= f }

// ClearFlag unsets the given flags.
func (A *Atom) ClearFlag(f Flags) { A.flags &^= f }

// HasFlag returns true if all the given flags are set.
func (A *Atom) HasFlag(f Flags) bool { return A.flags.Has(f) }
