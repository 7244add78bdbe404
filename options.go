/*
 * options.go, part of goName.
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

// Options contains the tunable parameters of a build session.
type Options struct {
	logger        *zap.Logger
	kekuleLimit   int //maximum number of backtracking steps when kekulizing a fragment.
	maxEZRingSize int //double bonds in rings of this size or smaller cannot get E/Z descriptors.
}

// DefaultOptions returns options that log nothing, allow a generous amount of
// backtracking during kekulization and exclude E/Z on double bonds in rings
// with 6 or fewer atoms.
func DefaultOptions() *Options {
	r := new(Options)
	r.logger = zap.NewNop()
	r.kekuleLimit = 100000
	r.maxEZRingSize = 6
	return r
}

// Logger returns the logger, and sets it to a new one, if given.
func (O *Options) Logger(l ...*zap.Logger) *zap.Logger {
	if len(l) > 0 && l[0] != nil {
		O.logger = l[0]
	}
	return O.logger
}

// KekuleLimit returns the maximum number of backtracking steps allowed when converting
// spare valencies to double bonds, and sets it to a new value, if given.
func (O *Options) KekuleLimit(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.kekuleLimit = n[0]
	}
	return O.kekuleLimit
}

// MaxEZRingSize returns the size of the largest ring in which a double bond is
// considered to have a fixed configuration, and sets it to a new value, if given.
func (O *Options) MaxEZRingSize(n ...int) int {
	if len(n) > 0 && n[0] >= 0 {
		O.maxEZRingSize = n[0]
	}
	return O.maxEZRingSize
}

// Option modifies the options of a new Manager.
type Option func(*Options)

// WithLogger makes the Manager log to l.
func WithLogger(l *zap.Logger) Option {
	return func(O *Options) { O.Logger(l) }
}

// WithKekuleLimit sets the kekulization backtracking limit.
func WithKekuleLimit(n int) Option {
	return func(O *Options) { O.KekuleLimit(n) }
}

// WithMaxEZRingSize sets the largest ring size for which double bonds get no E/Z descriptor.
func WithMaxEZRingSize(n int) Option {
	return func(O *Options) { O.MaxEZRingSize(n) }
}
