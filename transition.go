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

import "fmt"

// maxInlineDeps is the number of continuous-forcing dependencies that
// can be gathered without allocating.
const maxInlineDeps = 16

// Transition computes the right-hand-side contribution of m to the
// evolution of tracer name at cell (i, j, k): the reaction term plus
// drift-driven transport, excluding the ambient advection-diffusion
// the host solver applies to every tracer. A net drift outflow
// reduces the result.
//
// Transition is a pure function of its arguments; it mutates no field
// and is safe to call concurrently for different cells and tracers
// while the state is not being written. The tracer must be present in
// the (validated) state; evaluating an undeclared tracer with drift
// configured is a programmer error and panics.
func Transition(m ReactionModel, name TracerID, i, j, k int, clock Clock, s *State) float64 {
	val := reactionValue(m, name, i, j, k, clock, s)

	if v, ok := m.DriftVelocity(name); ok {
		q, ok := s.Tracers.Field(name)
		if !ok {
			panic(fmt.Sprintf("seabgc: drift transport for tracer %q, which is not in the field set", name))
		}
		scheme := m.AdvectionScheme(name)
		if scheme == nil {
			scheme = Upwind()
		}
		val -= scheme.FluxDivergence(v, q, i, j, k)
	}
	return val
}

// reactionValue dispatches to the forcing's evaluation form. A tracer
// without a forcing contributes nothing.
func reactionValue(m ReactionModel, name TracerID, i, j, k int, clock Clock, s *State) float64 {
	f, ok := m.Forcing(name)
	if !ok {
		return 0
	}
	switch f.form {
	case Discrete:
		return f.discrete(i, j, k, s.Grid(), clock, s, f.params)
	default:
		return evalContinuous(f, name, i, j, k, clock, s)
	}
}

// evalContinuous maps the cell indices to physical coordinates,
// gathers the forcing's declared dependencies at the cell in declared
// order, and invokes the user function.
func evalContinuous(f Forcing, name TracerID, i, j, k int, clock Clock, s *State) float64 {
	var buf [maxInlineDeps]float64
	var deps []float64
	if len(f.deps) <= len(buf) {
		deps = buf[:len(f.deps)]
	} else {
		deps = make([]float64, len(f.deps))
	}
	for n, dep := range f.deps {
		fld, ok := s.Field(dep)
		if !ok {
			panic(fmt.Sprintf("seabgc: forcing for tracer %q depends on field %q, which is not in the field set", name, dep))
		}
		deps[n] = fld.Value(i, j, k)
	}
	g := s.Grid()
	return f.continuous(g.X(i), g.Y(j), g.Z(k), clock.Time, deps, f.params)
}
