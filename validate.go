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

// Validate reconciles the host solver's tracer and auxiliary field
// sets against the fields m requires, returning a new pair of field
// sets in which every required name is present. Names that already
// exist keep their existing Field object; missing names are added as
// freshly allocated, zero-valued, cell-centered fields over g.
//
// Validate is purely additive and idempotent: it never removes or
// replaces an existing field, and validating an already-validated
// pair a second time returns equivalent sets with identical field
// objects.
//
// Either input set may be nil, in which case an empty set over g is
// assumed. Validation fails with a *ConfigurationError if a required
// name is already present with an incompatible representation (not
// cell-centered, or allocated over a different grid).
func Validate(tracers, aux *FieldSet, m ReactionModel, g *Grid) (*FieldSet, *FieldSet, error) {
	tracersOut, err := augment(tracers, m.RequiredTracers(), g)
	if err != nil {
		return nil, nil, err
	}
	auxOut, err := augment(aux, m.RequiredAuxiliary(), g)
	if err != nil {
		return nil, nil, err
	}
	return tracersOut, auxOut, nil
}

// augment returns a new field set containing every field of s plus a
// fresh zero field for each required name not already present.
func augment(s *FieldSet, required []TracerID, g *Grid) (*FieldSet, error) {
	var out *FieldSet
	if s == nil {
		out = &FieldSet{grid: g, fields: make(map[TracerID]*Field)}
	} else {
		if s.grid != g {
			return nil, newConfigurationError("seabgc: field set was allocated over a different grid")
		}
		out = s.clone()
	}
	for _, name := range required {
		if f, ok := out.Field(name); ok {
			if f.Loc != CellCenter {
				return nil, newConfigurationError("seabgc: required field %q exists at the %v, but reaction models need cell-centered fields", name, f.Loc)
			}
			continue
		}
		if err := out.Add(NewField(name, g)); err != nil {
			return nil, err
		}
	}
	return out, nil
}
