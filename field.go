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
	"fmt"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

// TracerID identifies a transported scalar field.
type TracerID string

// Location specifies where within a grid cell a field's values live.
type Location int

// Field staggering options. Tracers and auxiliary fields allocated by
// this package are always cell-centered; the face locations exist so
// that fields owned by a host solver's staggered grid can be
// recognized, and rejected, during validation.
const (
	CellCenter Location = iota
	FaceX
	FaceY
	FaceZ
)

func (l Location) String() string {
	switch l {
	case CellCenter:
		return "cell center"
	case FaceX:
		return "x face"
	case FaceY:
		return "y face"
	case FaceZ:
		return "z face"
	}
	return fmt.Sprintf("unknown location %d", int(l))
}

// Field holds one scalar variable over the grid.
type Field struct {
	Name        TracerID
	Description string
	Units       string
	Loc         Location

	// Data holds the values with shape (Nz, Ny, Nx).
	Data *sparse.DenseArray

	grid *Grid
}

// NewField allocates a zero-valued cell-centered field over g.
func NewField(name TracerID, g *Grid) *Field {
	return &Field{
		Name: name,
		Loc:  CellCenter,
		Data: sparse.ZerosDense(g.Nz, g.Ny, g.Nx),
		grid: g,
	}
}

// Value returns the field value at cell (i, j, k).
func (f *Field) Value(i, j, k int) float64 { return f.Data.Get(k, j, i) }

// Set sets the field value at cell (i, j, k).
func (f *Field) Set(val float64, i, j, k int) { f.Data.Set(val, k, j, i) }

// Sum returns the sum of the field over all cells.
func (f *Field) Sum() float64 { return floats.Sum(f.Data.Elements) }

// Grid returns the grid the field is allocated over.
func (f *Field) Grid() *Grid { return f.grid }

// FieldSet is an ordered collection of named fields over a single
// grid. The zero FieldSet is not usable; create one with NewFieldSet.
type FieldSet struct {
	grid   *Grid
	names  []TracerID
	fields map[TracerID]*Field
}

// NewFieldSet creates a field set over g containing a freshly
// allocated zero field for each of the given names, in order.
func NewFieldSet(g *Grid, names ...TracerID) (*FieldSet, error) {
	s := &FieldSet{grid: g, fields: make(map[TracerID]*Field, len(names))}
	for _, name := range names {
		if err := s.Add(NewField(name, g)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add appends f to the set. The field must be allocated over the
// set's grid, and its name must not already be present.
func (s *FieldSet) Add(f *Field) error {
	if f.grid != s.grid {
		return newConfigurationError("seabgc: field %q belongs to a different grid", f.Name)
	}
	if _, ok := s.fields[f.Name]; ok {
		return newConfigurationError("seabgc: duplicate field %q", f.Name)
	}
	s.names = append(s.names, f.Name)
	s.fields[f.Name] = f
	return nil
}

// Field returns the field with the given name.
func (s *FieldSet) Field(name TracerID) (*Field, bool) {
	f, ok := s.fields[name]
	return f, ok
}

// Has reports whether the set contains a field with the given name.
func (s *FieldSet) Has(name TracerID) bool {
	_, ok := s.fields[name]
	return ok
}

// Names returns the field names in the order they were added.
func (s *FieldSet) Names() []TracerID {
	return append([]TracerID(nil), s.names...)
}

// Len returns the number of fields in the set.
func (s *FieldSet) Len() int { return len(s.names) }

// Grid returns the grid the fields are allocated over.
func (s *FieldSet) Grid() *Grid { return s.grid }

// clone returns a new set holding the same field objects in the same
// order. The fields themselves are shared, not copied.
func (s *FieldSet) clone() *FieldSet {
	out := &FieldSet{
		grid:   s.grid,
		names:  append([]TracerID(nil), s.names...),
		fields: make(map[TracerID]*Field, len(s.fields)),
	}
	for name, f := range s.fields {
		out.fields[name] = f
	}
	return out
}

// State bundles the tracer and auxiliary field sets that a reaction
// model sees during one tendency evaluation. Both sets are read-only
// for the duration of the evaluation pass.
type State struct {
	Tracers   *FieldSet
	Auxiliary *FieldSet
}

// Field looks a field up by name, searching the tracers first and the
// auxiliary fields second.
func (s *State) Field(name TracerID) (*Field, bool) {
	if f, ok := s.Tracers.Field(name); ok {
		return f, true
	}
	return s.Auxiliary.Field(name)
}

// Grid returns the grid the state is defined over.
func (s *State) Grid() *Grid { return s.Tracers.Grid() }
