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

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Float is the constraint for the type arguments of [Epsilon] and the
// comparison functions.  Only floating-point types are allowed.
type Float interface {
	constraints.Float
}

// These are the tolerances returned by [Epsilon].
const (
	Epsilon32 float32 = 1e-6
	Epsilon64 float64 = 1e-8
)

// Epsilon returns the comparison tolerance for the floating-point type T.
// This is [Epsilon32] for types with underlying type float32, and
// [Epsilon64] for types with underlying type float64.
func Epsilon[T Float]() T {
	if reflect.TypeFor[T]().Kind() == reflect.Float32 {
		return T(Epsilon32)
	}
	return T(Epsilon64)
}
