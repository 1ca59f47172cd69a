// Package config externalizes the tunables spec.md §9 recommends surfacing
// (topK, k1, b) plus the boolean connective markers (andMarker, orMarker)
// using github.com/spf13/viper, reusing the exact config-file + flag +
// environment-variable wiring the teacher's cmd/root.go sets up for its own
// $HOME/.mcap.yaml.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/hieudo/queryproc/internal/scoring"
)

// Config holds the query engine's tunable constants. Defaults match the
// source exactly when no config file, flag, or environment variable
// overrides them.
type Config struct {
	TopK int
	K1   float64
	B    float64

	AndMarker string
	OrMarker  string
}

const (
	defaultTopK      = 10
	defaultAndMarker = " and "
	defaultOrMarker  = " or "
)

// Load reads queryproc configuration the way the teacher's initConfig
// does: an optional --config path, falling back to
// $HOME/.queryproc.yaml, with QUERYPROC_-prefixed environment variables
// as overrides.
func Load(cfgFile string) (Config, error) {
	v := viper.New()
	v.SetDefault("topk", defaultTopK)
	v.SetDefault("k1", scoring.DefaultK1)
	v.SetDefault("b", scoring.DefaultB)
	v.SetDefault("andmarker", defaultAndMarker)
	v.SetDefault("ormarker", defaultOrMarker)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("config: resolving home directory: %w", err)
		}
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(".queryproc")
	}
	v.SetEnvPrefix("QUERYPROC")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return Config{}, fmt.Errorf("config: reading %s: %w", cfgFile, err)
		}
	}

	return Config{
		TopK:      v.GetInt("topk"),
		K1:        v.GetFloat64("k1"),
		B:         v.GetFloat64("b"),
		AndMarker: v.GetString("andmarker"),
		OrMarker:  v.GetString("ormarker"),
	}, nil
}

// Params converts the loaded config into the scoring.Params the BM25
// scorer consumes.
func (c Config) Params() scoring.Params {
	return scoring.Params{K1: c.K1, B: c.B}
}
