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

// GenericConfig configures a GenericReaction.
type GenericConfig struct {
	// Tracers lists the tracers the model evolves, in the order the
	// model reports them.
	Tracers []TracerID

	// Transitions maps tracer names to their reaction forcings.
	// Tracers without an entry get a zero reaction term. Every key
	// must appear in Tracers.
	Transitions map[TracerID]Forcing

	// DriftSpeeds maps tracer names to sinking speeds [m/s]. A
	// positive speed yields downward transport: the resulting drift
	// velocity is (0, 0, -speed). Every key must appear in Tracers.
	DriftSpeeds map[TracerID]float64

	// Scheme is the advection scheme for drift transport. If nil,
	// the evaluator's default (first-order upwind) is used.
	Scheme AdvectionScheme

	// Auxiliary lists supporting fields the transitions read but the
	// model does not evolve.
	Auxiliary []TracerID
}

// GenericReaction is a ReactionModel driven entirely by user-supplied
// per-tracer transition functions, drift speeds and advection scheme.
// It is immutable after construction.
type GenericReaction struct {
	tracers  []TracerID
	aux      []TracerID
	forcings map[TracerID]Forcing
	drift    map[TracerID]DriftVelocity
	scheme   AdvectionScheme
}

var _ ReactionModel = (*GenericReaction)(nil)

// NewGenericReaction builds a GenericReaction from cfg. It fails with
// a *ConfigurationError if the tracer list contains duplicates, if a
// transition or drift speed refers to a tracer outside the list, or
// if a continuous forcing declares a dependency that is neither a
// tracer nor an auxiliary field of the model.
func NewGenericReaction(cfg GenericConfig) (*GenericReaction, error) {
	declared := make(map[TracerID]bool, len(cfg.Tracers)+len(cfg.Auxiliary))
	tracer := make(map[TracerID]bool, len(cfg.Tracers))
	for _, name := range cfg.Tracers {
		if declared[name] {
			return nil, newConfigurationError("seabgc: tracer %q is declared twice", name)
		}
		declared[name] = true
		tracer[name] = true
	}
	for _, name := range cfg.Auxiliary {
		if declared[name] {
			return nil, newConfigurationError("seabgc: auxiliary field %q is also declared elsewhere", name)
		}
		declared[name] = true
	}

	for name, f := range cfg.Transitions {
		if !tracer[name] {
			return nil, newConfigurationError("seabgc: transition for %q, which is not a declared tracer", name)
		}
		for _, dep := range f.deps {
			if !declared[dep] {
				return nil, newConfigurationError("seabgc: transition for %q depends on %q, which is neither a declared tracer nor an auxiliary field", name, dep)
			}
		}
	}

	drift := make(map[TracerID]DriftVelocity, len(cfg.DriftSpeeds))
	for name, speed := range cfg.DriftSpeeds {
		if !tracer[name] {
			return nil, newConfigurationError("seabgc: drift speed for %q, which is not a declared tracer", name)
		}
		// A positive sinking speed is downward transport.
		drift[name] = DriftVelocity{W: -speed}
	}

	forcings := make(map[TracerID]Forcing, len(cfg.Transitions))
	for name, f := range cfg.Transitions {
		forcings[name] = f
	}

	return &GenericReaction{
		tracers:  append([]TracerID(nil), cfg.Tracers...),
		aux:      append([]TracerID(nil), cfg.Auxiliary...),
		forcings: forcings,
		drift:    drift,
		scheme:   cfg.Scheme,
	}, nil
}

// RequiredTracers returns the declared tracer list in declared order.
func (r *GenericReaction) RequiredTracers() []TracerID {
	return append([]TracerID(nil), r.tracers...)
}

// RequiredAuxiliary returns the declared auxiliary field names in
// declared order.
func (r *GenericReaction) RequiredAuxiliary() []TracerID {
	return append([]TracerID(nil), r.aux...)
}

// Forcing returns the reaction forcing for the given tracer.
func (r *GenericReaction) Forcing(name TracerID) (Forcing, bool) {
	f, ok := r.forcings[name]
	return f, ok
}

// DriftVelocity returns the drift velocity for the given tracer, if a
// drift speed was configured for it.
func (r *GenericReaction) DriftVelocity(name TracerID) (DriftVelocity, bool) {
	v, ok := r.drift[name]
	return v, ok
}

// AdvectionScheme returns the configured advection scheme, which may
// be nil.
func (r *GenericReaction) AdvectionScheme(TracerID) AdvectionScheme {
	return r.scheme
}
