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
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/ctessum/sparse"
	log "github.com/sirupsen/logrus"
)

const secondsPerDay = 3600. * 24.

// Model is a demonstration driver that advances the tracers of a
// reaction model on a grid. It validates the field sets once at
// construction and then, per step, evaluates the reaction-transport
// tendency for every (tracer, cell) pair concurrently and applies a
// forward-Euler update. A full ocean model would add its own
// advection-diffusion of the bulk flow on top; Model advances the
// reaction and drift terms only.
type Model struct {
	// Dt is the model time step [s]. NewModel sets it from the CFL
	// condition for the configured drift velocities; it may be
	// shortened (but not lengthened) afterwards.
	Dt float64

	// Clock is the simulation clock, advanced by Step.
	Clock Clock

	grid       *Grid
	reaction   ReactionModel
	state      *State
	tendencies map[TracerID]*sparse.DenseArray
}

// defaultDt limits the time step when no drift velocity constrains it.
const defaultDt = 3600. // seconds

// NewModel validates tracers and aux against m over g and prepares a
// driver for the validated state. Either field set may be nil.
func NewModel(g *Grid, m ReactionModel, tracers, aux *FieldSet) (*Model, error) {
	tracersOut, auxOut, err := Validate(tracers, aux, m, g)
	if err != nil {
		return nil, err
	}
	mdl := &Model{
		grid:       g,
		reaction:   m,
		state:      &State{Tracers: tracersOut, Auxiliary: auxOut},
		tendencies: make(map[TracerID]*sparse.DenseArray, tracersOut.Len()),
	}
	// All allocation happens here, off the hot path.
	for _, name := range tracersOut.Names() {
		mdl.tendencies[name] = sparse.ZerosDense(g.Nz, g.Ny, g.Nx)
	}
	mdl.Dt = mdl.timestepCFL()
	return mdl, nil
}

// timestepCFL returns the largest stable time step for the configured
// drift velocities under a Courant number of 1.
func (mdl *Model) timestepCFL() float64 {
	const cMax = 1.
	dt := defaultDt
	for _, name := range mdl.state.Tracers.Names() {
		v, ok := mdl.reaction.DriftVelocity(name)
		if !ok {
			continue
		}
		for _, cfl := range []float64{
			math.Abs(v.U) / mdl.grid.Dx,
			math.Abs(v.V) / mdl.grid.Dy,
			math.Abs(v.W) / mdl.grid.Dz,
		} {
			if cfl > 0 {
				dt = math.Min(dt, cMax/cfl)
			}
		}
	}
	return dt
}

// State returns the validated model state.
func (mdl *Model) State() *State { return mdl.state }

// Grid returns the model grid.
func (mdl *Model) Grid() *Grid { return mdl.grid }

// Tendency returns the most recently computed tendency [tracer units
// per second] for the given tracer at cell (i, j, k).
func (mdl *Model) Tendency(name TracerID, i, j, k int) float64 {
	return mdl.tendencies[name].Get(k, j, i)
}

// TotalMass returns the domain total of the named tracer multiplied
// by the cell volume.
func (mdl *Model) TotalMass(name TracerID) (float64, error) {
	f, ok := mdl.state.Tracers.Field(name)
	if !ok {
		return 0, fmt.Errorf("seabgc: no tracer %q in the model", name)
	}
	return f.Sum() * mdl.grid.Dx * mdl.grid.Dy * mdl.grid.Dz, nil
}

// Step evaluates the transition for every tracer at every cell and
// applies one forward-Euler update. The tendency pass runs
// concurrently across cells; the state is read-shared during the pass
// and written only afterwards.
func (mdl *Model) Step() {
	g := mdl.grid
	ncells := g.Cells()
	nprocs := runtime.GOMAXPROCS(0)

	var wg sync.WaitGroup
	for _, name := range mdl.state.Tracers.Names() {
		tend := mdl.tendencies[name]
		wg.Add(nprocs)
		for pp := 0; pp < nprocs; pp++ {
			go func(name TracerID, tend *sparse.DenseArray, pp int) {
				defer wg.Done()
				for n := pp; n < ncells; n += nprocs {
					i := n % g.Nx
					j := (n / g.Nx) % g.Ny
					k := n / (g.Nx * g.Ny)
					tend.Elements[n] = Transition(mdl.reaction, name, i, j, k, mdl.Clock, mdl.state)
				}
			}(name, tend, pp)
		}
	}
	wg.Wait()

	for _, name := range mdl.state.Tracers.Names() {
		q, _ := mdl.state.Tracers.Field(name)
		tend := mdl.tendencies[name]
		for n, dcdt := range tend.Elements {
			q.Data.Elements[n] += dcdt * mdl.Dt
		}
	}
	mdl.Clock.Time += mdl.Dt
	mdl.Clock.Iteration++
}

// Run advances the model nsteps steps, logging progress and tracer
// mass budgets.
func (mdl *Model) Run(nsteps int) {
	const logEvery = 10
	start := time.Now()
	for n := 0; n < nsteps; n++ {
		mdl.Step()
		if mdl.Clock.Iteration%logEvery == 0 || n == nsteps-1 {
			fields := log.Fields{
				"iteration": mdl.Clock.Iteration,
				"day":       mdl.Clock.Time / secondsPerDay,
				"walltime":  time.Since(start).Round(time.Millisecond),
			}
			for _, name := range mdl.state.Tracers.Names() {
				mass, _ := mdl.TotalMass(name)
				fields["mass."+string(name)] = mass
			}
			log.WithFields(fields).Info("step")
		}
	}
}
