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

// Grid describes a regular rectilinear box of grid cells.
// The vertical index k increases upward: cell (i, j, 0) is the deepest
// cell in its column and cell (i, j, Nz-1) touches the surface, which
// is at z = 0. Cell centers therefore sit at negative z.
type Grid struct {
	Nx, Ny, Nz int     // number of cells in each direction
	Dx, Dy, Dz float64 // cell size [m]
	X0, Y0     float64 // position of the southwest corner [m]
	Depth      float64 // domain depth [m], positive
}

// NewGrid creates a grid of nx×ny×nz cells spanning lx×ly meters
// horizontally and depth meters vertically.
func NewGrid(nx, ny, nz int, lx, ly, depth float64) (*Grid, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, fmt.Errorf("seabgc: grid must have at least one cell in each direction; got %d×%d×%d", nx, ny, nz)
	}
	if lx <= 0 || ly <= 0 || depth <= 0 {
		return nil, fmt.Errorf("seabgc: grid extents must be positive; got %g×%g×%g", lx, ly, depth)
	}
	return &Grid{
		Nx: nx, Ny: ny, Nz: nz,
		Dx: lx / float64(nx), Dy: ly / float64(ny), Dz: depth / float64(nz),
		Depth: depth,
	}, nil
}

// X returns the x coordinate of the center of cells with index i.
func (g *Grid) X(i int) float64 { return g.X0 + (float64(i)+0.5)*g.Dx }

// Y returns the y coordinate of the center of cells with index j.
func (g *Grid) Y(j int) float64 { return g.Y0 + (float64(j)+0.5)*g.Dy }

// Z returns the z coordinate of the center of cells with index k.
// The result is negative, with z approaching 0 at the surface.
func (g *Grid) Z(k int) float64 { return -g.Depth + (float64(k)+0.5)*g.Dz }

// Cells returns the total number of cells in the grid.
func (g *Grid) Cells() int { return g.Nx * g.Ny * g.Nz }
