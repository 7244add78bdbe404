/*
 * errors.go, part of goName.
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
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies the failures the engine can report. All of them are terminal
// for the current name interpretation; the caller is expected to try another parse.
type ErrorKind int

const (
	// KindStructure is a structural-integrity failure: an atom, bond or fragment is
	// not where the operation expected it to be.
	KindStructure ErrorKind = iota
	// KindValency means an atom ended up with more bonds than its element/charge allows.
	KindValency
	// KindStereo means a stereodescriptor could not be bound to the structure.
	KindStereo
	// KindRing is a ring-perception precondition failure.
	KindRing
)

func (K ErrorKind) String() string {
	switch K {
	case KindStructure:
		return "structure"
	case KindValency:
		return "valency"
	case KindStereo:
		return "stereochemistry"
	case KindRing:
		return "ring perception"
	}
	return "unknown"
}

// CError is the error type returned by every package in this module.
// It fulfills the Error interface.
type CError struct {
	Kind ErrorKind
	msg  string
	deco []string
}

// Sentinels for errors.Is. Any *CError of the same Kind matches them.
var (
	ErrStructure = &CError{Kind: KindStructure}
	ErrValency   = &CError{Kind: KindValency}
	ErrStereo    = &CError{Kind: KindStereo}
	ErrRing      = &CError{Kind: KindRing}
)

func (err *CError) Error() string {
	if err.msg == "" {
		return fmt.Sprintf("goName: %s error", err.Kind)
	}
	if len(err.deco) == 0 {
		return fmt.Sprintf("goName: %s error: %s", err.Kind, err.msg)
	}
	return fmt.Sprintf("goName: %s error: %s (%s)", err.Kind, err.msg, strings.Join(err.deco, " <- "))
}

// Decorate adds the name of a calling function to the error trail, and returns the trail.
// An empty string just returns the current trail.
func (err *CError) Decorate(caller string) []string {
	if caller != "" {
		err.deco = append(err.deco, caller)
	}
	return err.deco
}

// Message returns the error message without kind or trail.
func (err *CError) Message() string { return err.msg }

// Is reports whether target is a CError of the same kind. Sentinels
// carry no message, so errors.Is(err, ErrValency) works for any valency error.
func (err *CError) Is(target error) bool {
	t, ok := target.(*CError)
	if !ok {
		return false
	}
	return t.Kind == err.Kind && (t.msg == "" || t.msg == err.msg)
}

// Errorf builds a new CError of the given kind.
func Errorf(kind ErrorKind, format string, args ...interface{}) *CError {
	return &CError{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err, or anything it wraps, is a CError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ce *CError
	if !errors.As(err, &ce) {
		return false
	}
	return ce.Kind == kind
}

// ErrDecorate asserts that the error implements Error and decorates it with the
// caller's name before returning it. Other errors are returned untouched.
func ErrDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// Panics are reserved for programming errors, such as passing nil atoms.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilAtom     = PanicMsg("goName: nil atom given")
	ErrNilFragment = PanicMsg("goName: nil fragment given")
	ErrNilBond     = PanicMsg("goName: nil bond given")
)
