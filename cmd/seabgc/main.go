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

// Command seabgc runs a demonstration NPZD simulation from a
// configuration file and writes the final tracer state to a NetCDF
// file.
package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/oceanmodel/seabgc"
	"github.com/oceanmodel/seabgc/bio/npz"
)

// options are the configuration options, their defaults, and the
// flag sets they are registered with.
var options = []struct {
	name, usage string
	defaultVal  interface{}
	flagsets    []*pflag.FlagSet
}{
	{
		name:       "config",
		usage:      "config specifies the configuration file location.",
		defaultVal: "",
	},
	{
		name:       "grid.nx",
		usage:      "grid.nx is the number of grid cells in the x direction.",
		defaultVal: 16,
	},
	{
		name:       "grid.ny",
		usage:      "grid.ny is the number of grid cells in the y direction.",
		defaultVal: 16,
	},
	{
		name:       "grid.nz",
		usage:      "grid.nz is the number of grid cells in the vertical.",
		defaultVal: 32,
	},
	{
		name:       "grid.lx",
		usage:      "grid.lx is the domain extent in the x direction [m].",
		defaultVal: 1000.,
	},
	{
		name:       "grid.ly",
		usage:      "grid.ly is the domain extent in the y direction [m].",
		defaultVal: 1000.,
	},
	{
		name:       "grid.depth",
		usage:      "grid.depth is the domain depth [m].",
		defaultVal: 100.,
	},
	{
		name:       "run.days",
		usage:      "run.days is the simulated duration [days].",
		defaultVal: 30.,
	},
	{
		name:       "run.output",
		usage:      "run.output is the path of the NetCDF output file.",
		defaultVal: "seabgc_out.nc",
	},
	{
		name:       "npz.sinking_speed_per_day",
		usage:      "npz.sinking_speed_per_day is the detritus sinking speed [m/day].",
		defaultVal: 10.,
	},
	{
		name:       "init.nutrient",
		usage:      "init.nutrient is the initial nutrient concentration [mmol N/m³].",
		defaultVal: 5.,
	},
	{
		name:       "init.phytoplankton",
		usage:      "init.phytoplankton is the initial phytoplankton concentration [mmol N/m³].",
		defaultVal: 0.1,
	},
	{
		name:       "init.zooplankton",
		usage:      "init.zooplankton is the initial zooplankton concentration [mmol N/m³].",
		defaultVal: 0.05,
	},
}

var root = &cobra.Command{
	Use:   "seabgc",
	Short: "seabgc simulates biogeochemical tracer dynamics in the ocean.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfg := viper.GetString("config"); cfg != "" {
			viper.SetConfigFile(cfg)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("reading configuration file: %v", err)
			}
		}
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an NPZD simulation and write the final state to NetCDF.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	for i, opt := range options {
		options[i].flagsets = []*pflag.FlagSet{root.PersistentFlags()}
		for _, fs := range options[i].flagsets {
			switch v := opt.defaultVal.(type) {
			case int:
				fs.Int(opt.name, v, opt.usage)
			case float64:
				fs.Float64(opt.name, v, opt.usage)
			case string:
				fs.String(opt.name, v, opt.usage)
			default:
				panic(fmt.Sprintf("unsupported option type %T for %s", v, opt.name))
			}
			viper.BindPFlag(opt.name, fs.Lookup(opt.name))
		}
		viper.SetDefault(opt.name, opt.defaultVal)
	}
	root.AddCommand(runCmd)
}

func run() error {
	g, err := seabgc.NewGrid(
		cast.ToInt(viper.Get("grid.nx")),
		cast.ToInt(viper.Get("grid.ny")),
		cast.ToInt(viper.Get("grid.nz")),
		cast.ToFloat64(viper.Get("grid.lx")),
		cast.ToFloat64(viper.Get("grid.ly")),
		cast.ToFloat64(viper.Get("grid.depth")),
	)
	if err != nil {
		return err
	}

	cfg := npz.DefaultConfig()
	cfg.SinkingSpeed = cast.ToFloat64(viper.Get("npz.sinking_speed_per_day")) / (3600 * 24)
	reaction, err := npz.New(cfg)
	if err != nil {
		return err
	}

	mdl, err := seabgc.NewModel(g, reaction, nil, nil)
	if err != nil {
		return err
	}
	for name, val := range map[seabgc.TracerID]float64{
		npz.Nutrient:      cast.ToFloat64(viper.Get("init.nutrient")),
		npz.Phytoplankton: cast.ToFloat64(viper.Get("init.phytoplankton")),
		npz.Zooplankton:   cast.ToFloat64(viper.Get("init.zooplankton")),
	} {
		f, _ := mdl.State().Tracers.Field(name)
		for n := range f.Data.Elements {
			f.Data.Elements[n] = val
		}
	}

	days := cast.ToFloat64(viper.Get("run.days"))
	nsteps := int(days * 3600 * 24 / mdl.Dt)
	log.WithFields(log.Fields{
		"cells":   g.Cells(),
		"tracers": len(mdl.State().Tracers.Names()),
		"dt":      mdl.Dt,
		"steps":   nsteps,
	}).Info("starting simulation")
	mdl.Run(nsteps)

	out := viper.GetString("run.output")
	if err := seabgc.WriteCDF(out, g, mdl.State(), mdl.Clock); err != nil {
		return err
	}
	log.WithField("file", out).Info("wrote output")
	return nil
}

func main() {
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
