/*
 * valency.go, part of goName.
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

//The valency tables are initialized once, when the package is loaded, and never
//written afterwards, so they can be read from any number of goroutines.

//Default valency for each element, regardless of charge.
var symbolDefaultValency = map[string]int{
	"H": 1,
	"Li": 1, "Na": 1, "K": 1, "Rb": 1, "Cs": 1, "Fr": 1,
	"Be": 2, "Mg": 2, "Ca": 2, "Sr": 2, "Ba": 2, "Ra": 2,
	"Zn": 2, "Cd": 2, "Hg": 2,
	"B": 3, "Al": 3, "Ga": 3, "In": 3, "Tl": 3,
	"C": 4, "Si": 4, "Ge": 4, "Sn": 4, "Pb": 4,
	"N": 3, "P": 3, "As": 3, "Sb": 3, "Bi": 3,
	"O": 2, "S": 2, "Se": 2, "Te": 2, "Po": 2,
	"F": 1, "Cl": 1, "Br": 1, "I": 1, "At": 1,
}

//Stable valencies for each element and charge, in ascending order.
var symbolChargeValencies = map[string]map[int][]int{
	"H":  {0: {1}, 1: {0}, -1: {0}},
	"He": {0: {0}},
	"Ne": {0: {0}},
	"Ar": {0: {0}},
	"Kr": {0: {0, 2}},
	"Xe": {0: {0, 2, 4, 6, 8}},
	"Rn": {0: {0, 2, 4, 6, 8}},
	"Li": {0: {1}, 1: {0}},
	"Na": {0: {1}, 1: {0}},
	"K":  {0: {1}, 1: {0}},
	"Rb": {0: {1}, 1: {0}},
	"Cs": {0: {1}, 1: {0}},
	"Fr": {0: {1}, 1: {0}},
	"Be": {0: {2}, 2: {0}},
	"Mg": {0: {2}, 2: {0}},
	"Ca": {0: {2}, 2: {0}},
	"Sr": {0: {2}, 2: {0}},
	"Ba": {0: {2}, 2: {0}},
	"Ra": {0: {2}, 2: {0}},
	"Zn": {0: {2}, 2: {0}},
	"Cd": {0: {2}, 2: {0}},
	"Hg": {0: {2}, 2: {0}},
	"B":  {0: {3}, 1: {2}, -1: {4}},
	"Al": {0: {3}, -1: {4}, 3: {0}},
	"Ga": {0: {3}, -1: {4}},
	"In": {0: {3}, -1: {4}},
	"Tl": {0: {1, 3}, -1: {4}},
	"C":  {0: {4}, 1: {3}, -1: {3}},
	"Si": {0: {4}, -1: {3}},
	"Ge": {0: {2, 4}, -1: {3}},
	"Sn": {0: {2, 4}},
	"Pb": {0: {2, 4}},
	"N":  {0: {3}, 1: {4}, -1: {2}},
	"P":  {0: {3, 5}, 1: {4}, -1: {2}},
	"As": {0: {3, 5}, 1: {4}, -1: {2}},
	"Sb": {0: {3, 5}, 1: {4}, -1: {2}},
	"Bi": {0: {3, 5}, 1: {4}, -1: {2}},
	"O":  {0: {2}, 1: {3}, -1: {1}, -2: {0}},
	"S":  {0: {2, 4, 6}, 1: {3, 5}, -1: {1, 3, 5}, -2: {0}},
	"Se": {0: {2, 4, 6}, 1: {3, 5}, -1: {1, 3, 5}, -2: {0}},
	"Te": {0: {2, 4, 6}, 1: {3, 5}, -1: {1, 3, 5}, -2: {0}},
	"Po": {0: {2, 4, 6}, 1: {3, 5}, -1: {1, 3, 5}, -2: {0}},
	"F":  {0: {1}, 1: {2}, -1: {0}},
	"Cl": {0: {1, 3, 5, 7}, 1: {2}, -1: {0}},
	"Br": {0: {1, 3, 5, 7}, 1: {2}, -1: {0}},
	"I":  {0: {1, 3, 5, 7}, 1: {2}, -1: {0}},
	"At": {0: {1, 3, 5, 7}, 1: {2}, -1: {0}},
}

//Valency an element is assumed to have in a Hantzsch-Widman ring.
var symbolHWValency = map[string]int{
	"B": 3, "Al": 3, "Ga": 3, "In": 3, "Tl": 3,
	"C": 4, "Si": 4, "Ge": 4, "Sn": 4, "Pb": 4,
	"N": 3, "P": 3, "As": 3, "Sb": 3, "Bi": 3,
	"O": 2, "S": 2, "Se": 2, "Te": 2, "Po": 2,
	"F": 1, "Cl": 1, "Br": 1, "I": 1,
	"Hg": 2,
}

// DefaultValency returns the usual valency of the element, ignoring charge.
func DefaultValency(symbol string) (int, bool) {
	v, ok := symbolDefaultValency[symbol]
	return v, ok
}

// PossibleValencies returns, in ascending order, the stable valencies of the element
// with the given charge. The returned slice is a copy.
func PossibleValencies(symbol string, charge int) ([]int, bool) {
	byCharge, ok := symbolChargeValencies[symbol]
	if !ok {
		return nil, false
	}
	vals, ok := byCharge[charge]
	if !ok {
		return nil, false
	}
	ret := make([]int, len(vals))
	copy(ret, vals)
	return ret, true
}

// MaximumValency returns the highest stable valency for the element and charge.
func MaximumValency(symbol string, charge int) (int, bool) {
	byCharge, ok := symbolChargeValencies[symbol]
	if !ok {
		return 0, false
	}
	vals, ok := byCharge[charge]
	if !ok || len(vals) == 0 {
		return 0, false
	}
	return vals[len(vals)-1], true
}

// HWValency returns the valency of the element in the Hantzsch-Widman system.
func HWValency(symbol string) (int, bool) {
	v, ok := symbolHWValency[symbol]
	return v, ok
}

// ValencyLimit returns the largest valency the atom may reach: its lambda-convention
// valency if one was given, otherwise the maximum stable valency for its element and
// charge. It returns false when nothing is known about the atom.
func ValencyLimit(a *Atom) (int, bool) {
	if a == nil {
		panic(ErrNilAtom)
	}
	if l, ok := a.LambdaConvention(); ok {
		return l + a.protons, true
	}
	return MaximumValency(a.Symbol(), a.Charge())
}

// CheckValency returns false if the bonds, out valency, spare valency and not yet
// created explicit hydrogens of the atom exceed what the atom can hold. Atoms whose element or charge is not tabulated pass.
func CheckValency(a *Atom) bool {
	lim, ok := ValencyLimit(a)
	if !ok {
		return true
	}
	return a.IncomingValency()+a.OutValency()+a.SpareValency()+a.PendingHydrogens() <= lim
}

// CheckValencyAvailableForBond returns true if a new bond of order order could be
// added to the atom. Spare and out valency are ignored.
func CheckValencyAvailableForBond(a *Atom, order int) bool {
	lim, ok := ValencyLimit(a)
	if !ok {
		return true
	}
	return a.IncomingValency()+order <= lim
}
