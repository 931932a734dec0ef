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

// Package seabgc implements an extensible biogeochemical tracer
// reaction framework for ocean models. Reaction models attach
// reaction-transport source terms to named tracer fields; the
// framework reconciles the fields each model requires against the
// fields a host solver declares, and evaluates the combined
// reaction-plus-drift right-hand side for one tracer at one grid cell
// at a time.
package seabgc

import "sort"

// Clock carries the simulation time.
type Clock struct {
	Time      float64 // seconds since the start of the simulation
	Iteration int
}

// Parameters is a read-only bundle of named values passed through to
// user transition functions. Callers must not modify a Parameters
// value after handing it to a Forcing.
type Parameters map[string]float64

// Get returns the named parameter, or fallback if it is not present.
func (p Parameters) Get(name string, fallback float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return fallback
}

// Names returns the parameter names in sorted order.
func (p Parameters) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ContinuousFunc is a reaction term expressed in physical coordinates
// and time. deps holds the values of the forcing's declared field
// dependencies at the query cell, in declared order.
type ContinuousFunc func(x, y, z, t float64, deps []float64, p Parameters) float64

// DiscreteFunc is a reaction term expressed directly over grid
// indices and the full field state, for terms that need stencil
// access (for example light attenuation integrated over depth). The
// function must only read fields, never write them.
type DiscreteFunc func(i, j, k int, g *Grid, clock Clock, s *State, p Parameters) float64

// ForcingForm tags the evaluation idiom of a Forcing.
type ForcingForm int

const (
	// Continuous forcings are evaluated at the physical coordinates
	// of the cell center with their declared dependencies gathered
	// for them.
	Continuous ForcingForm = iota
	// Discrete forcings index the fields themselves.
	Discrete
)

// A Forcing wraps a user transition function together with its
// parameters and, for the continuous form, the ordered list of fields
// it depends on. A Forcing is immutable once built.
type Forcing struct {
	form       ForcingForm
	continuous ContinuousFunc
	discrete   DiscreteFunc
	deps       []TracerID
	params     Parameters
}

// NewContinuousForcing wraps fn as a continuous-form forcing. deps
// lists the tracer and auxiliary fields whose values fn receives, in
// exactly the order fn expects them.
func NewContinuousForcing(fn ContinuousFunc, deps []TracerID, params Parameters) Forcing {
	return Forcing{
		form:       Continuous,
		continuous: fn,
		deps:       append([]TracerID(nil), deps...),
		params:     params,
	}
}

// NewDiscreteForcing wraps fn as a discrete-form forcing.
func NewDiscreteForcing(fn DiscreteFunc, params Parameters) Forcing {
	return Forcing{form: Discrete, discrete: fn, params: params}
}

// Form returns the forcing's evaluation idiom.
func (f Forcing) Form() ForcingForm { return f.form }

// Dependencies returns the forcing's declared field dependencies in
// declared order. It is empty for discrete forcings.
func (f Forcing) Dependencies() []TracerID {
	return append([]TracerID(nil), f.deps...)
}

// A ReactionModel supplies reaction terms and drift transport for an
// open set of tracers. Implementations must be immutable after
// construction: every method must return the same result for the
// same arguments for the lifetime of the model.
type ReactionModel interface {
	// RequiredTracers returns the tracers the model evolves, in
	// declared order, without duplicates.
	RequiredTracers() []TracerID

	// RequiredAuxiliary returns the names of supporting fields the
	// model reads but does not evolve, in declared order.
	RequiredAuxiliary() []TracerID

	// Forcing returns the reaction term for the given tracer. A
	// tracer without a forcing has a zero reaction term.
	Forcing(name TracerID) (Forcing, bool)

	// DriftVelocity returns the drift velocity for the given tracer,
	// if one is configured.
	DriftVelocity(name TracerID) (DriftVelocity, bool)

	// AdvectionScheme returns the advection scheme to use for the
	// given tracer's drift transport. A nil result selects the
	// default (first-order upwind).
	AdvectionScheme(name TracerID) AdvectionScheme
}

// NoReaction is a ReactionModel with no tracers, no reaction terms,
// and no drift: its transition is zero for every tracer, cell, and
// time.
type NoReaction struct{}

// RequiredTracers returns no tracers.
func (NoReaction) RequiredTracers() []TracerID { return nil }

// RequiredAuxiliary returns no auxiliary fields.
func (NoReaction) RequiredAuxiliary() []TracerID { return nil }

// Forcing reports that no tracer has a reaction term.
func (NoReaction) Forcing(TracerID) (Forcing, bool) { return Forcing{}, false }

// DriftVelocity reports that no tracer drifts.
func (NoReaction) DriftVelocity(TracerID) (DriftVelocity, bool) {
	return DriftVelocity{}, false
}

// AdvectionScheme returns nil, selecting the default scheme.
func (NoReaction) AdvectionScheme(TracerID) AdvectionScheme { return nil }
