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

// Package npz contains a four-compartment
// nutrient-phytoplankton-zooplankton-detritus (NPZD) reaction model
// built on the seabgc generic reaction builder. All concentrations
// are in mmol N m⁻³; the four compartments exchange nitrogen
// conservatively, so absent sinking through the sea floor the domain
// nitrogen total is constant.
package npz

import (
	"math"

	"github.com/oceanmodel/seabgc"
)

// Tracer and auxiliary field names used by the model.
const (
	Nutrient      seabgc.TracerID = "N"
	Phytoplankton seabgc.TracerID = "P"
	Zooplankton   seabgc.TracerID = "Z"
	Detritus      seabgc.TracerID = "D"
)

const perDay = 1. / (3600. * 24.) // 1/day expressed in 1/s

// Config holds the NPZD model parameters.
type Config struct {
	MaxGrowthRate    float64 // μ0, phytoplankton growth at the surface [1/s]
	LightEFolding    float64 // λ, light attenuation depth scale [m]
	NutrientHalfSat  float64 // kN, half-saturation for nutrient uptake [mmol N/m³]
	GrazingRate      float64 // g, zooplankton grazing [m³/(mmol N s)]
	Assimilation     float64 // a, fraction of grazed material assimilated
	PhytoMortality   float64 // mP [1/s]
	ZooMortality     float64 // mZ [1/s]
	Remineralization float64 // r, detritus to nutrient [1/s]
	SinkingSpeed     float64 // detritus sinking speed [m/s], positive down
}

// DefaultConfig returns parameter values typical of mid-latitude
// mixed-layer NPZD configurations.
func DefaultConfig() Config {
	return Config{
		MaxGrowthRate:    2 * perDay,
		LightEFolding:    20,
		NutrientHalfSat:  0.5,
		GrazingRate:      1 * perDay,
		Assimilation:     0.7,
		PhytoMortality:   0.1 * perDay,
		ZooMortality:     0.1 * perDay,
		Remineralization: 0.2 * perDay,
		SinkingSpeed:     10 * perDay, // 10 m/day
	}
}

// growth is the light- and nutrient-limited phytoplankton growth
// term μ0·exp(z/λ)·N/(kN+N)·P. z is negative below the surface, so
// growth decays exponentially with depth.
func growth(z, n, p float64, cfg Config) float64 {
	return cfg.MaxGrowthRate * math.Exp(z/cfg.LightEFolding) *
		n / (cfg.NutrientHalfSat + n) * p
}

// New builds the NPZD reaction model.
func New(cfg Config) (*seabgc.GenericReaction, error) {
	params := seabgc.Parameters{
		"mu0":    cfg.MaxGrowthRate,
		"lambda": cfg.LightEFolding,
		"kN":     cfg.NutrientHalfSat,
		"g":      cfg.GrazingRate,
		"a":      cfg.Assimilation,
		"mP":     cfg.PhytoMortality,
		"mZ":     cfg.ZooMortality,
		"r":      cfg.Remineralization,
	}

	return seabgc.NewGenericReaction(seabgc.GenericConfig{
		Tracers: []seabgc.TracerID{Nutrient, Phytoplankton, Zooplankton, Detritus},
		Transitions: map[seabgc.TracerID]seabgc.Forcing{
			Nutrient: seabgc.NewContinuousForcing(
				func(x, y, z, t float64, deps []float64, p seabgc.Parameters) float64 {
					n, ph, d := deps[0], deps[1], deps[2]
					return -growth(z, n, ph, cfg) + cfg.Remineralization*d
				},
				[]seabgc.TracerID{Nutrient, Phytoplankton, Detritus}, params),
			Phytoplankton: seabgc.NewContinuousForcing(
				func(x, y, z, t float64, deps []float64, p seabgc.Parameters) float64 {
					n, ph, zo := deps[0], deps[1], deps[2]
					return growth(z, n, ph, cfg) -
						cfg.GrazingRate*ph*zo - cfg.PhytoMortality*ph
				},
				[]seabgc.TracerID{Nutrient, Phytoplankton, Zooplankton}, params),
			Zooplankton: seabgc.NewContinuousForcing(
				func(x, y, z, t float64, deps []float64, p seabgc.Parameters) float64 {
					ph, zo := deps[0], deps[1]
					return cfg.Assimilation*cfg.GrazingRate*ph*zo - cfg.ZooMortality*zo
				},
				[]seabgc.TracerID{Phytoplankton, Zooplankton}, params),
			Detritus: seabgc.NewContinuousForcing(
				func(x, y, z, t float64, deps []float64, p seabgc.Parameters) float64 {
					ph, zo, d := deps[0], deps[1], deps[2]
					return (1-cfg.Assimilation)*cfg.GrazingRate*ph*zo +
						cfg.PhytoMortality*ph + cfg.ZooMortality*zo -
						cfg.Remineralization*d
				},
				[]seabgc.TracerID{Phytoplankton, Zooplankton, Detritus}, params),
		},
		DriftSpeeds: map[seabgc.TracerID]float64{
			Detritus: cfg.SinkingSpeed,
		},
	})
}
