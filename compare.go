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

package gauss

// IsNearlyZero reports whether |x| is at most Epsilon[T]().
// NaN is never nearly zero.
func IsNearlyZero[T Float](x T) bool {
	return abs(x) <= Epsilon[T]()
}

// NearlyEqual reports whether a and b differ by at most Epsilon[T]().
//
// Infinities of the same sign are equal.  NaN is not equal to anything,
// including itself.
func NearlyEqual[T Float](a, b T) bool {
	if a == b {
		return true
	}
	return abs(a-b) <= Epsilon[T]()
}

func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
