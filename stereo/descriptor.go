/*
 * descriptor.go, part of goName.
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
	"fmt"

	chem "github.com/rmera/goname"
)

// Kind is the type of a stereodescriptor.
type Kind int

const (
	R Kind = iota + 1
	S
	E
	Z
	Cis
	Trans
)

func (K Kind) String() string {
	switch K {
	case R:
		return "R"
	case S:
		return "S"
	case E:
		return "E"
	case Z:
		return "Z"
	case Cis:
		return "cis"
	case Trans:
		return "trans"
	}
	return "?"
}

// Descriptor is a stereodescriptor read from a name. Locant is optional. Candidates are the
// fragments where the descriptor may apply, in the order they should be searched. If there
// are no candidates, the whole structure is searched.
type Descriptor struct {
	Kind       Kind
	Locant     string
	Candidates []*chem.Fragment
}

func (D Descriptor) String() string {
	if D.Locant == "" {
		return D.Kind.String()
	}
	return fmt.Sprintf("%s%s", D.Locant, D.Kind)
}

//parity assigned to a stereocentre with references in ascending priority.
func (K Kind) parity() int {
	if K == R {
		return -1
	}
	return 1
}

//configuration of the highest priority substituents of a double bond.
func (K Kind) cisTrans() chem.CisTrans {
	switch K {
	case E, Trans:
		return chem.Trans
	}
	return chem.Cis
}
