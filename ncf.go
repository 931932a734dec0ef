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
	"os"

	"github.com/ctessum/cdf"
)

// WriteCDF writes the grid coordinates and every tracer and auxiliary
// field of s to a NetCDF (classic format) file at path. Fields are
// stored with dimensions (z, y, x).
func WriteCDF(path string, g *Grid, s *State, clock Clock) error {
	h := cdf.NewHeader([]string{"z", "y", "x"}, []int{g.Nz, g.Ny, g.Nx})

	for _, v := range []struct{ name, units string }{
		{"x", "m"}, {"y", "m"}, {"z", "m"},
	} {
		h.AddVariable(v.name, []string{v.name}, []float64{0.})
		h.AddAttribute(v.name, "units", v.units)
	}
	h.AddAttribute("z", "positive", "up")

	fields := make([]*Field, 0, s.Tracers.Len()+s.Auxiliary.Len())
	for _, set := range []*FieldSet{s.Tracers, s.Auxiliary} {
		for _, name := range set.Names() {
			f, _ := set.Field(name)
			fields = append(fields, f)
		}
	}
	for _, f := range fields {
		h.AddVariable(string(f.Name), []string{"z", "y", "x"}, []float64{0.})
		if f.Units != "" {
			h.AddAttribute(string(f.Name), "units", f.Units)
		}
		if f.Description != "" {
			h.AddAttribute(string(f.Name), "description", f.Description)
		}
	}
	h.AddAttribute("", "simulation_time_seconds", []float64{clock.Time})

	h.Define()
	for _, err := range h.Check() {
		return fmt.Errorf("seabgc: building netcdf header for %s: %v", path, err)
	}

	ff, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("seabgc: creating netcdf file: %v", err)
	}
	defer ff.Close()
	f, err := cdf.Create(ff, h)
	if err != nil {
		return fmt.Errorf("seabgc: creating netcdf file %s: %v", path, err)
	}

	writeCoord := func(name string, n int, at func(int) float64) error {
		vals := make([]float64, n)
		for i := range vals {
			vals[i] = at(i)
		}
		w := f.Writer(name, []int{0}, []int{n})
		if _, err := w.Write(vals); err != nil {
			return fmt.Errorf("seabgc: writing %s coordinates: %v", name, err)
		}
		return nil
	}
	if err := writeCoord("x", g.Nx, g.X); err != nil {
		return err
	}
	if err := writeCoord("y", g.Ny, g.Y); err != nil {
		return err
	}
	if err := writeCoord("z", g.Nz, g.Z); err != nil {
		return err
	}

	for _, fld := range fields {
		// Field storage is (k, j, i) row-major, matching the (z, y, x)
		// dimension order.
		w := f.Writer(string(fld.Name), []int{0, 0, 0}, []int{g.Nz, g.Ny, g.Nx})
		if _, err := w.Write(fld.Data.Elements); err != nil {
			return fmt.Errorf("seabgc: writing field %q: %v", fld.Name, err)
		}
	}
	return nil
}
