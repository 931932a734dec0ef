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

// testGrid returns a small grid for use throughout the tests:
// 4×3×5 cells over 400 m × 300 m × 100 m depth, so Dx=100, Dy=100,
// Dz=20.
func testGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := NewGrid(4, 3, 5, 400, 300, 100)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestGridCoordinates(t *testing.T) {
	const tolerance = 1.e-12

	g := testGrid(t)
	cases := []struct {
		got, want float64
	}{
		{g.X(0), 50},
		{g.X(3), 350},
		{g.Y(0), 50},
		{g.Y(2), 250},
		{g.Z(0), -90}, // deepest cell center
		{g.Z(4), -10}, // shallowest cell center
	}
	for i, c := range cases {
		if math.Abs(c.got-c.want) > tolerance {
			t.Errorf("case %d: got %g, want %g", i, c.got, c.want)
		}
	}
	if n := g.Cells(); n != 4*3*5 {
		t.Errorf("cells: got %d, want %d", n, 4*3*5)
	}
}

func TestNewGridErrors(t *testing.T) {
	if _, err := NewGrid(0, 3, 5, 400, 300, 100); err == nil {
		t.Error("expected error for zero cell count")
	}
	if _, err := NewGrid(4, 3, 5, 400, -300, 100); err == nil {
		t.Error("expected error for negative extent")
	}
}
