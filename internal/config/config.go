// Package config loads simulator defaults (default shot count, RNG seed,
// norm tolerance, the PNG renderer's cell size, and the cross-validation
// shot count and tolerance) from environment variables, a config file,
// or built-in defaults, via
// github.com/spf13/viper. Grounded on the config-loading shape used
// across the example pack's own viper-backed config packages
// (DefaultConfig() plus mapstructure-tagged fields), adapted to the
// simulator's own small surface of tunables.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the simulator's runtime defaults.
type Config struct {
	// Simulator holds QuState/Circuit execution defaults.
	Simulator struct {
		DefaultShots int     `mapstructure:"default_shots"`
		RNGSeed      int64   `mapstructure:"rng_seed"`
		Tolerance    float64 `mapstructure:"tolerance"`
	} `mapstructure:"simulator"`

	// Render holds qc/export/png defaults.
	Render struct {
		CellPixels int `mapstructure:"cell_pixels"`
	} `mapstructure:"render"`

	// CrossVal holds qc/crossval defaults.
	CrossVal struct {
		Shots     int     `mapstructure:"shots"`
		Tolerance float64 `mapstructure:"tolerance"`
	} `mapstructure:"crossval"`
}

// Default returns the simulator's built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.Simulator.DefaultShots = 1024
	cfg.Simulator.RNGSeed = 1
	cfg.Simulator.Tolerance = 1e-10
	cfg.Render.CellPixels = 40
	cfg.CrossVal.Shots = 512
	cfg.CrossVal.Tolerance = 0.1
	return cfg
}

// Load reads configuration from (in ascending priority) built-in
// defaults, a config file named "qsim" on the given search paths, and
// QSIM_-prefixed environment variables, and returns the merged result.
// A missing config file is not an error; a malformed one is.
func Load(searchPaths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("qsim")
	v.SetConfigType("yaml")
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix("QSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("simulator.default_shots", def.Simulator.DefaultShots)
	v.SetDefault("simulator.rng_seed", def.Simulator.RNGSeed)
	v.SetDefault("simulator.tolerance", def.Simulator.Tolerance)
	v.SetDefault("render.cell_pixels", def.Render.CellPixels)
	v.SetDefault("crossval.shots", def.CrossVal.Shots)
	v.SetDefault("crossval.tolerance", def.CrossVal.Tolerance)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
