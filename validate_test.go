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
	"errors"
	"testing"
)

// planktonModel returns a generic model requiring tracers P and Z and
// auxiliary field light, with no reaction terms.
func planktonModel(t *testing.T) *GenericReaction {
	t.Helper()
	m, err := NewGenericReaction(GenericConfig{
		Tracers:   []TracerID{"P", "Z"},
		Auxiliary: []TracerID{"light"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func sameNames(a, b []TracerID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestValidateAddsMissing(t *testing.T) {
	g := testGrid(t)
	m := planktonModel(t)

	tracers, aux, err := Validate(nil, nil, m, g)
	if err != nil {
		t.Fatal(err)
	}
	if !sameNames(tracers.Names(), []TracerID{"P", "Z"}) {
		t.Errorf("tracers = %v, want [P Z]", tracers.Names())
	}
	if !sameNames(aux.Names(), []TracerID{"light"}) {
		t.Errorf("auxiliary = %v, want [light]", aux.Names())
	}
	p, _ := tracers.Field("P")
	if p.Loc != CellCenter {
		t.Errorf("added field location = %v, want cell center", p.Loc)
	}
	for n, v := range p.Data.Elements {
		if v != 0 {
			t.Fatalf("added field not zero at element %d: %g", n, v)
		}
	}
}

func TestValidateNoReactionNoop(t *testing.T) {
	g := testGrid(t)
	existing, err := NewFieldSet(g, "T", "S")
	if err != nil {
		t.Fatal(err)
	}
	tracers, aux, err := Validate(existing, nil, NoReaction{}, g)
	if err != nil {
		t.Fatal(err)
	}
	if !sameNames(tracers.Names(), []TracerID{"T", "S"}) {
		t.Errorf("tracers = %v, want [T S]", tracers.Names())
	}
	if aux.Len() != 0 {
		t.Errorf("auxiliary has %d fields, want 0", aux.Len())
	}
}

func TestValidatePreservesIdentity(t *testing.T) {
	g := testGrid(t)
	m := planktonModel(t)

	existing, err := NewFieldSet(g, "P")
	if err != nil {
		t.Fatal(err)
	}
	orig, _ := existing.Field("P")
	orig.Set(42, 1, 2, 3)

	tracers, _, err := Validate(existing, nil, m, g)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := tracers.Field("P")
	if got != orig {
		t.Error("existing field was replaced instead of kept")
	}
	if v := got.Value(1, 2, 3); v != 42 {
		t.Errorf("field contents changed: got %g, want 42", v)
	}
	// The input set itself must be untouched.
	if existing.Len() != 1 {
		t.Errorf("input set was mutated: has %d fields, want 1", existing.Len())
	}
}

func TestValidateIdempotent(t *testing.T) {
	g := testGrid(t)
	m := planktonModel(t)

	t1, a1, err := Validate(nil, nil, m, g)
	if err != nil {
		t.Fatal(err)
	}
	t2, a2, err := Validate(t1, a1, m, g)
	if err != nil {
		t.Fatal(err)
	}
	if !sameNames(t1.Names(), t2.Names()) || !sameNames(a1.Names(), a2.Names()) {
		t.Error("second validation changed the field names")
	}
	for _, name := range t1.Names() {
		f1, _ := t1.Field(name)
		f2, _ := t2.Field(name)
		if f1 != f2 {
			t.Errorf("second validation replaced field %q", name)
		}
	}
}

func TestValidateRejectsWrongLocation(t *testing.T) {
	g := testGrid(t)
	m := planktonModel(t)

	existing, err := NewFieldSet(g)
	if err != nil {
		t.Fatal(err)
	}
	f := NewField("P", g)
	f.Loc = FaceZ
	if err := existing.Add(f); err != nil {
		t.Fatal(err)
	}

	_, _, err = Validate(existing, nil, m, g)
	var cerr *ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %v, want a ConfigurationError", err)
	}
}

func TestValidateRejectsWrongGrid(t *testing.T) {
	g := testGrid(t)
	other, err := NewGrid(2, 2, 2, 100, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	existing, err := NewFieldSet(other, "P")
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = Validate(existing, nil, planktonModel(t), g)
	var cerr *ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %v, want a ConfigurationError", err)
	}
}
