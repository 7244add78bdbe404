/*
 * handler.go, part of goName.
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
	"github.com/rmera/goname/rings"
	"go.uber.org/zap"
)

// Handler applies stereodescriptors to a finished structure.
type Handler struct {
	mgr   *chem.Manager
	frag  *chem.Fragment
	log   *zap.Logger
	maxEZ int

	centres []*StereoCentre
	bonds   []*StereoBond
	rings   []*rings.Ring

	doneAtoms map[*chem.Atom]bool
	doneBonds map[*chem.Bond]bool
}

// NewHandler returns a handler for the unified fragment of the session managed by mgr.
func NewHandler(mgr *chem.Manager, unified *chem.Fragment) *Handler {
	if unified == nil {
		panic(chem.ErrNilFragment)
	}
	return &Handler{
		mgr:       mgr,
		frag:      unified,
		log:       mgr.Logger().With(zap.Int("frag", unified.ID)),
		maxEZ:     mgr.Options().MaxEZRingSize(),
		doneAtoms: make(map[*chem.Atom]bool),
		doneBonds: make(map[*chem.Bond]bool),
	}
}

// Apply assigns the descriptors to the structure. Implicit hydrogens are made explicit first.
// Descriptors with locants are applied before those without, and each one takes the first
// stereocentre or stereobond, not yet assigned, that it can apply to. It is an error for a
// descriptor to find nothing to apply to.
func (H *Handler) Apply(ds []Descriptor) error {
	if len(ds) == 0 {
		return nil
	}
	if err := H.mgr.MakeHydrogensExplicit(); err != nil {
		return chem.ErrDecorate(err, "Apply")
	}
	H.perceive()
	ordered := make([]Descriptor, len(ds))
	copy(ordered, ds)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Locant != "" && ordered[j].Locant == "" })
	for _, d := range ordered {
		ok, err := H.apply(d)
		if err != nil {
			return chem.ErrDecorate(err, "Apply")
		}
		if !ok {
			return chem.Errorf(chem.KindStereo, "could not find anything to apply stereodescriptor %s to", d)
		}
		H.log.Debug("applied stereodescriptor", zap.Stringer("descriptor", d))
	}
	return nil
}

func (H *Handler) perceive() {
	rings.AssignWhetherAtomsAreInCycles(H.frag)
	H.rings = rings.NewSSSRFinder(H.log).SetOfSmallestRings(H.frag)
	an := NewAnalyserLogged(H.frag, H.log)
	H.centres = an.StereoCentres()
	H.bonds = nil
	for _, b := range an.StereoBonds() {
		if !H.inSmallRing(b.Bond) {
			H.bonds = append(H.bonds, b)
		}
	}
}

//inSmallRing returns true if b is in a ring too small for the bond to have its own E/Z configuration.
func (H *Handler) inSmallRing(b *chem.Bond) bool {
	for _, r := range H.rings {
		if r.Size() <= H.maxEZ && r.HasBond(b) {
			return true
		}
	}
	return false
}

func (H *Handler) apply(d Descriptor) (bool, error) {
	switch d.Kind {
	case R, S:
		c, ok := H.findCentre(d)
		if !ok {
			return false, nil
		}
		c.Atom.SetParity(&chem.AtomParity{Refs: c.Refs, Parity: d.Kind.parity()})
		H.doneAtoms[c.Atom] = true
		return true, nil
	case E, Z:
		return H.applyToBond(d), nil
	case Cis, Trans:
		if H.applyToBond(d) {
			return true, nil
		}
		return H.applyAcrossRing(d)
	}
	return false, chem.Errorf(chem.KindStereo, "unknown stereodescriptor kind %d", int(d.Kind))
}

func (H *Handler) applyToBond(d Descriptor) bool {
	b, ok := H.findBond(d)
	if !ok {
		return false
	}
	b.Bond.SetStereo(&chem.BondStereo{Refs: b.Refs, Value: d.Kind.cisTrans()})
	H.doneBonds[b.Bond] = true
	return true
}

//candidates returns the fragments to search for d, in order.
func (H *Handler) candidates(d Descriptor) []*chem.Fragment {
	if len(d.Candidates) == 0 {
		return []*chem.Fragment{H.frag}
	}
	return d.Candidates
}

func (H *Handler) findCentre(d Descriptor) (*StereoCentre, bool) {
	for _, f := range H.candidates(d) {
		for _, c := range H.centres {
			if H.doneAtoms[c.Atom] || !f.HasAtom(c.Atom) {
				continue
			}
			if d.Locant == "" || c.Atom.HasLocant(d.Locant) {
				return c, true
			}
		}
	}
	return nil, false
}

func (H *Handler) findBond(d Descriptor) (*StereoBond, bool) {
	for _, f := range H.candidates(d) {
		for _, b := range H.bonds {
			from, to := b.Bond.From(), b.Bond.To()
			if H.doneBonds[b.Bond] || !(f.HasAtom(from) || f.HasAtom(to)) {
				continue
			}
			if d.Locant == "" || from.HasLocant(d.Locant) || to.HasLocant(d.Locant) {
				return b, true
			}
		}
	}
	return nil, false
}
