/*
 * config.go, part of cellulose.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

// Package config holds the settings of the cellulosebuilder command,
// unmarshalled from Viper (see: /cmd/cellulosebuilder). Settings come
// from a settings file, from command line flags, or both.
package config

import (
	"fmt"
	"log/slog"

	"github.com/rmera/cellulose"
	"github.com/spf13/viper"
)

// BuildConfig are the settings of one build
type BuildConfig struct {
	// phase name: Ialpha, Ibeta, II or III
	Phase string `mapstructure:"phase"`

	// monomers per chain
	Monomers int `mapstructure:"monomers"`

	// chains in a monolayer or fibril
	Chains int `mapstructure:"chains"`

	// explicit replication along a, b and c
	XYZSizes []int `mapstructure:"xyzsizes"`

	// periodic extents along a, b and c
	PBC []int `mapstructure:"pbc"`

	// single-chain, monolayer or fibril
	Structure string `mapstructure:"structure"`

	// center or edge, for monolayers
	Layer string `mapstructure:"layer"`

	// goroutines for the replication
	Workers int `mapstructure:"workers"`

	// TOML file with unit cells replacing the built-in ones
	CellFile string `mapstructure:"cell-file"`
}

// OutputConfig are the settings for the files written
type OutputConfig struct {
	// coordinate file, .xyz or .pdb, optionally followed by .zst
	File string `mapstructure:"file"`

	// cross section plot, empty for none
	Plot string `mapstructure:"plot"`
}

// Config is the root-level settings struct and is a mix
// of settings available in the settings file and those
// available from the command line
type Config struct {
	Build   BuildConfig  `mapstructure:"build"`
	Output  OutputConfig `mapstructure:"output"`
	Verbose bool         `mapstructure:"verbose"`
}

// FromViper returns a new Config populated by the settings in v.
func FromViper(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("config: unable to decode into struct: %w", err)
	}
	return c, nil
}

// NewConfig returns a new Config populated by the global Viper settings,
// reading file first, if not empty.
func NewConfig(file string) (Config, error) {
	if file != "" {
		viper.SetConfigFile(file)
		if err := viper.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", file, err)
		}
	}
	return FromViper(viper.GetViper())
}

// Options returns the build options in c, logging to l.
func (c Config) Options(l *slog.Logger) cellulose.Options {
	b := c.Build
	o := cellulose.Options{
		Phase:     b.Phase,
		Monomers:  b.Monomers,
		Chains:    b.Chains,
		Structure: b.Structure,
		Layer:     b.Layer,
		Workers:   b.Workers,
		Logger:    l,
	}
	if len(b.XYZSizes) > 0 {
		o.XYZSizes = append([]int(nil), b.XYZSizes...)
	}
	if len(b.PBC) > 0 {
		o.PBC = append([]int(nil), b.PBC...)
	}
	return o
}

// Provider returns the source of unit cell data for the build: the
// built-in tables, with the cells in CellFile replacing theirs if it is set.
func (c Config) Provider() (cellulose.Provider, error) {
	if c.Build.CellFile == "" {
		return cellulose.StaticProvider{}, nil
	}
	p, err := cellulose.TOMLProviderFromFile(c.Build.CellFile, cellulose.StaticProvider{})
	if err != nil {
		return nil, err
	}
	return p, nil
}
