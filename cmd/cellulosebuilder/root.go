/*
 * root.go, part of cellulose.
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

package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/rmera/cellulose/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	settings config.Config

	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cellulosebuilder",
	Short: "Build cellulose Iα, Iβ, II and III crystals, monolayers and fibrils",
	Long: `
Build atomistic models of crystalline cellulose from the unit cells of its
Iα, Iβ, II and III allomorphs: single chains, monolayers, fibrils or
explicitly replicated blocks, with the periodic box needed to simulate them.`,
	Version:           "0.1.0",
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// setup reads the settings file, if any, and the flags into settings,
// and sets up the logger.
func setup(cmd *cobra.Command, args []string) error {
	file, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	settings, err = config.NewConfig(file)
	if err != nil {
		return err
	}
	level := slog.LevelInfo
	if settings.Verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "settings file (TOML, YAML or JSON)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log every step of the build")
	rootCmd.PersistentFlags().String("cell-file", "", "TOML file with unit cells replacing the built-in ones")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("build.cell-file", rootCmd.PersistentFlags().Lookup("cell-file"))
}
