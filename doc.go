// seehuhn.de/go/gauss - tolerance constants for floating-point comparisons
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package gauss provides tolerance constants for comparing floating-point
// numbers.
//
// Rounding errors make exact comparisons of computed floating-point values
// unreliable.  The function [Epsilon] returns a small threshold, chosen by
// the precision of the type argument, below which two values are treated as
// equal:
//
//	if gauss.IsNearlyZero(x) {
//	    // treat x as zero
//	}
//
// The thresholds are 1e-6 for float32 and 1e-8 for float64.  Only
// floating-point types are accepted; an instantiation such as
// Epsilon[int] is rejected by the compiler, since exact integer types have
// no use for a tolerance.
//
// The type [Real] selects the default precision of the library.  It is
// float32, unless the program is built with the "gauss_double" build tag.
package gauss
