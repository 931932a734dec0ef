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

import "github.com/ctessum/atmos/advect"

// DriftVelocity is a tracer-specific velocity added on top of the
// resolved flow, for example particulate sinking. It is spatially
// uniform. W is positive upward, so a sinking speed s corresponds to
// W = -s.
type DriftVelocity struct {
	U, V, W float64 // [m/s]
}

// An AdvectionScheme computes the flux divergence ∇·(v q) of a scalar
// field q transported by a uniform velocity v, evaluated at a single
// cell. The domain boundaries are treated as no-normal-flow: the
// outermost cell faces carry no flux, so the operator conserves the
// domain total of q.
type AdvectionScheme interface {
	// FluxDivergence returns ∇·(v q) at cell (i, j, k) in units of
	// q-units per second.
	FluxDivergence(v DriftVelocity, q *Field, i, j, k int) float64
}

type upwind struct{}

// Upwind returns a first-order upwind advection scheme. It is the
// default scheme for drift transport.
func Upwind() AdvectionScheme { return upwind{} }

func (upwind) FluxDivergence(v DriftVelocity, q *Field, i, j, k int) float64 {
	g := q.grid
	var div float64

	// Each face flux comes from advect.UpwindFlux, which already
	// divides by the cell size, so the divergence along one axis is
	// the positive-face flux minus the negative-face flux.
	if i > 0 {
		div -= advect.UpwindFlux(v.U, q.Value(i-1, j, k), q.Value(i, j, k), g.Dx)
	}
	if i < g.Nx-1 {
		div += advect.UpwindFlux(v.U, q.Value(i, j, k), q.Value(i+1, j, k), g.Dx)
	}
	if j > 0 {
		div -= advect.UpwindFlux(v.V, q.Value(i, j-1, k), q.Value(i, j, k), g.Dy)
	}
	if j < g.Ny-1 {
		div += advect.UpwindFlux(v.V, q.Value(i, j, k), q.Value(i, j+1, k), g.Dy)
	}
	if k > 0 {
		div -= advect.UpwindFlux(v.W, q.Value(i, j, k-1), q.Value(i, j, k), g.Dz)
	}
	if k < g.Nz-1 {
		div += advect.UpwindFlux(v.W, q.Value(i, j, k), q.Value(i, j, k+1), g.Dz)
	}
	return div
}

type centered struct{}

// Centered returns a second-order centered-difference advection
// scheme. It is less diffusive than Upwind but not monotone.
func Centered() AdvectionScheme { return centered{} }

func (centered) FluxDivergence(v DriftVelocity, q *Field, i, j, k int) float64 {
	g := q.grid
	var div float64

	// Face values are the average of the two adjacent cell centers.
	if i > 0 {
		div -= v.U * (q.Value(i-1, j, k) + q.Value(i, j, k)) / 2 / g.Dx
	}
	if i < g.Nx-1 {
		div += v.U * (q.Value(i, j, k) + q.Value(i+1, j, k)) / 2 / g.Dx
	}
	if j > 0 {
		div -= v.V * (q.Value(i, j-1, k) + q.Value(i, j, k)) / 2 / g.Dy
	}
	if j < g.Ny-1 {
		div += v.V * (q.Value(i, j, k) + q.Value(i, j+1, k)) / 2 / g.Dy
	}
	if k > 0 {
		div -= v.W * (q.Value(i, j, k-1) + q.Value(i, j, k)) / 2 / g.Dz
	}
	if k < g.Nz-1 {
		div += v.W * (q.Value(i, j, k) + q.Value(i, j, k+1)) / 2 / g.Dz
	}
	return div
}
