/*
 * manager_copy.go, part of goName.
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

// CopyFragment returns a deep copy of f, with new IDs.
func (M *Manager) CopyFragment(f *Fragment) (*Fragment, error) {
	return M.CopyAndRelabel(f, "")
}

// CopyAndRelabel returns a deep copy of f with new IDs, and with suffix appended to every
// locant. Atom and bond attributes are preserved. Stereo records that reference atoms of f
// are remapped onto the copies, while references to atoms outside f are kept as they are.
// The copy has no bonds to other fragments.
func (M *Manager) CopyAndRelabel(f *Fragment, suffix string) (*Fragment, error) {
	if err := M.checkLive(f, "CopyAndRelabel"); err != nil {
		return nil, err
	}
	clone := M.NewFragment(f.Type, f.Subtype)
	remap := make(map[*Atom]*Atom, f.Len())
	for _, a := range f.Atoms() {
		M.nextAtomID++
		c := &Atom{
			ID:            M.nextAtomID,
			Kind:          a.Kind,
			symbol:        a.symbol,
			charge:        a.charge,
			explicitH:     a.explicitH,
			hasExplicitH:  a.hasExplicitH,
			lambda:        a.lambda,
			hasLambda:     a.hasLambda,
			minValency:    a.minValency,
			hasMinValency: a.hasMinValency,
			protons:       a.protons,
			spare:         a.spare,
			outValency:    a.outValency,
			inCycle:       a.inCycle,
			flags:         a.flags,
		}
		for _, l := range a.locants {
			c.locants = append(c.locants, l+suffix)
		}
		clone.addAtom(c)
		remap[a] = c
	}
	mapped := func(a *Atom) *Atom {
		if c, ok := remap[a]; ok {
			return c
		}
		return a
	}
	bonds := make(map[*Bond]*Bond, f.BondCount())
	for _, b := range f.Bonds() {
		nb, err := M.CreateBond(remap[b.at1], remap[b.at2], b.order)
		if err != nil {
			return nil, ErrDecorate(err, "CopyAndRelabel")
		}
		nb.Dir = b.Dir
		bonds[b] = nb
	}
	for a, c := range remap {
		if p := a.parity; p != nil {
			np := &AtomParity{Parity: p.Parity}
			for i, r := range p.Refs {
				np.Refs[i] = mapped(r)
			}
			c.parity = np
		}
	}
	for b, nb := range bonds {
		if s := b.stereo; s != nil {
			ns := &BondStereo{Value: s.Value}
			for i, r := range s.Refs {
				ns.Refs[i] = mapped(r)
			}
			nb.stereo = ns
		}
	}
	for _, v := range f.outAtoms {
		clone.outAtoms = append(clone.outAtoms, &OutAtom{Atom: remap[v.Atom], Valency: v.Valency, SetExplicitly: v.SetExplicitly})
	}
	for _, v := range f.inAtoms {
		clone.inAtoms = append(clone.inAtoms, &InAtom{Atom: remap[v.Atom], Valency: v.Valency})
	}
	for _, v := range f.functionalAtoms {
		clone.functionalAtoms = append(clone.functionalAtoms, &FunctionalAtom{Atom: remap[v.Atom]})
	}
	if f.defaultIn != nil {
		clone.defaultIn = remap[f.defaultIn]
	}
	M.log.Debug("copied fragment", zap.Int("frag", f.ID), zap.Int("copy", clone.ID), zap.String("suffix", suffix))
	return clone, nil
}
