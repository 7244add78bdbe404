/*
 * doc.go, part of goName.
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

/*Package chem is the main package of the goName library. It provides the molecular graph
that is built while a chemical name is interpreted: atoms, bonds and fragments, and the
Manager that creates, merges and removes them while keeping every index consistent.


	**goName Capabilities**


    Atoms with element, charge, locants, explicit hydrogen counts, lambda-convention
	valencies, spare (aromatic) valency and out valency.

    Fragments with locant lookup, including amino-acid style locants like N5 or N'5,
	and out, in and functional attachment atoms.

    A Manager per build session that creates atoms and bonds, keeps track of the bonds
	between fragments, incorporates a fragment into another, copies fragments with
	relabeled locants and replaces terminal placeholder atoms by whole fragments.

    Valency tables and checks, per element and charge.

    Conversion of spare valency into double bonds (kekulization), and addition of
	implicit hydrogens as atoms.

    Tetrahedral parity and double bond configuration records.

Ring perception is in the rings subpackage, and CIP-like ranking and the assignment
of R/S, E/Z and cis/trans descriptors in the stereo subpackage. chemgraph exposes
fragments as gonum graphs.

A Manager is not safe for concurrent use. Different names can be interpreted concurrently
with one Manager each. The element and valency tables are read-only.*/
package chem
