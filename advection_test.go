/*
Copyright © 2021 the seabgc authors.
This file is part of seabgc.

seabgc is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

seabgc is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with seabgc.  If not, see <http://www.gnu.org/licenses/>.
*/

package seabgc

import (
	"math"
	"testing"
)

// fillField gives every cell of f a distinct deterministic value.
func fillField(f *Field) {
	for n := range f.Data.Elements {
		f.Data.Elements[n] = 1 + math.Sin(float64(n))
	}
}

func TestUpwindSinkingColumn(t *testing.T) {
	const (
		tolerance = 1.e-12
		s         = 1.e-4 // sinking speed [m/s]
	)

	g := testGrid(t)
	q := NewField("D", g)
	fillField(q)
	v := DriftVelocity{W: -s} // downward

	scheme := Upwind()
	const i, j = 1, 1
	for k := 0; k < g.Nz; k++ {
		// With a purely downward velocity the upwind donor cell for
		// each horizontal face is the cell above it.
		var want float64
		if k < g.Nz-1 {
			want += -s * q.Value(i, j, k+1) / g.Dz
		}
		if k > 0 {
			want -= -s * q.Value(i, j, k) / g.Dz
		}
		got := scheme.FluxDivergence(v, q, i, j, k)
		if math.Abs(got-want) > tolerance {
			t.Errorf("k=%d: got %g, want %g", k, got, want)
		}
	}
}

// Both schemes should conserve the domain total of the transported
// field: the sum of the flux divergence over all cells is zero
// because interior face fluxes cancel pairwise and boundary faces
// carry no flux.
func TestFluxDivergenceConservation(t *testing.T) {
	const tolerance = 1.e-12

	g := testGrid(t)
	q := NewField("D", g)
	fillField(q)
	v := DriftVelocity{U: 2.e-4, V: -1.5e-4, W: -3.e-4}

	for _, test := range []struct {
		name   string
		scheme AdvectionScheme
	}{
		{"upwind", Upwind()},
		{"centered", Centered()},
	} {
		var sum float64
		for k := 0; k < g.Nz; k++ {
			for j := 0; j < g.Ny; j++ {
				for i := 0; i < g.Nx; i++ {
					sum += test.scheme.FluxDivergence(v, q, i, j, k)
				}
			}
		}
		if math.Abs(sum) > tolerance {
			t.Errorf("%s: total divergence = %g, want 0", test.name, sum)
		}
	}
}

func TestCenteredInteriorUniformField(t *testing.T) {
	const tolerance = 1.e-15

	g := testGrid(t)
	q := NewField("D", g)
	for n := range q.Data.Elements {
		q.Data.Elements[n] = 3.7
	}
	v := DriftVelocity{U: 1.e-4, V: 1.e-4, W: -1.e-4}

	// A uniform field has zero divergence away from the boundaries.
	if got := Centered().FluxDivergence(v, q, 1, 1, 2); math.Abs(got) > tolerance {
		t.Errorf("interior divergence of uniform field = %g, want 0", got)
	}
	if got := Upwind().FluxDivergence(v, q, 1, 1, 2); math.Abs(got) > tolerance {
		t.Errorf("interior upwind divergence of uniform field = %g, want 0", got)
	}
}
