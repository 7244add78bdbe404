/*
 * hydrogens.go, part of goName.
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

import "go.uber.org/zap"

// ImplicitHydrogens returns the number of hydrogens the atom carries but which are not
// present as atoms. If an explicit hydrogen count was set, that count is used; otherwise
// the hydrogens fill the valency found by DetermineValency. Atoms of unknown valency, R atoms
// and hydrogen atoms have no implicit hydrogens.
func ImplicitHydrogens(a *Atom) int {
	if a == nil {
		panic(ErrNilAtom)
	}
	if a.symbol == "R" || a.symbol == "H" {
		return 0
	}
	if a.hasExplicitH {
		return a.PendingHydrogens()
	}
	v, ok := a.DetermineValency(true)
	if !ok {
		return 0
	}
	n := v - a.IncomingValency() - a.outValency - a.spare
	if n < 0 {
		return 0
	}
	return n
}

// MakeHydrogensExplicit adds every implicit hydrogen of the session's atoms as a hydrogen
// atom bonded to its heavy atom, in the heavy atom's fragment. Calling it again adds nothing.
func (M *Manager) MakeHydrogensExplicit() error {
	added := 0
	for _, f := range M.Fragments() {
		for _, a := range f.Atoms() {
			if a.frag != f {
				continue //already handled through the fragment that owns it.
			}
			n := ImplicitHydrogens(a)
			for i := 0; i < n; i++ {
				h, err := M.CreateAtom("H", f)
				if err != nil {
					return ErrDecorate(err, "MakeHydrogensExplicit")
				}
				if _, err := M.CreateBond(a, h, 1); err != nil {
					return ErrDecorate(err, "MakeHydrogensExplicit")
				}
			}
			added += n
		}
	}
	M.log.Debug("made hydrogens explicit", zap.Int("hydrogens", added))
	return nil
}
