// Copyright (c) 2026 TTBT Enterprises LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package backend

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
	"github.com/ttbt-io/strikezone/backend/engine"
)

// Config holds the game settings.
type Config struct {
	LogLevel    string
	DataDir     string
	Pace        float64
	MoundVisits int
	Seed        uint64
	Pitcher     string
	Opponent    string
	MetricsFile string

	LeagueAverage      float64
	DifficultyExponent float64

	// MasterKey is the passphrase of the encrypted store. It is only read
	// from the environment.
	MasterKey string
}

// envConfig holds the settings that can come from the environment.
type envConfig struct {
	MasterKey string `env:"STRIKEZONE_MASTER_KEY"`
	LogLevel  string `env:"STRIKEZONE_LOG_LEVEL"`
}

// LoadConfig reads strikezone.cfg.json from configDir, when present, over the
// defaults, then applies the environment.
func LoadConfig(configDir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("logLevel", "info")
	v.SetDefault("dataDir", "./data")
	v.SetDefault("pace", 1.0)
	v.SetDefault("moundVisits", DefaultMoundVisits)
	v.SetDefault("seed", 0)
	v.SetDefault("pitcher", "clayton_kershaw")
	v.SetDefault("opponent", "seattle_mariners")
	v.SetDefault("metricsFile", "")
	v.SetDefault("tuning.leagueAverage", engine.LeagueAverage)
	v.SetDefault("tuning.difficultyExponent", engine.DifficultyExponent)

	v.SetConfigName(ConfigFileName)
	v.AddConfigPath(configDir)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		LogLevel:           v.GetString("logLevel"),
		DataDir:            v.GetString("dataDir"),
		Pace:               v.GetFloat64("pace"),
		MoundVisits:        v.GetInt("moundVisits"),
		Seed:               v.GetUint64("seed"),
		Pitcher:            v.GetString("pitcher"),
		Opponent:           v.GetString("opponent"),
		MetricsFile:        v.GetString("metricsFile"),
		LeagueAverage:      v.GetFloat64("tuning.leagueAverage"),
		DifficultyExponent: v.GetFloat64("tuning.difficultyExponent"),
	}

	var e envConfig
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.MasterKey = e.MasterKey
	if e.LogLevel != "" {
		cfg.LogLevel = e.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that the game cannot run without.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("dataDir must not be empty")
	}
	if c.Pace < 0 {
		return fmt.Errorf("pace must not be negative, got %v", c.Pace)
	}
	if c.MoundVisits < 1 {
		return fmt.Errorf("moundVisits must be at least 1, got %d", c.MoundVisits)
	}
	if c.LeagueAverage <= 0 || c.LeagueAverage >= 1 {
		return fmt.Errorf("tuning.leagueAverage must be in (0,1), got %v", c.LeagueAverage)
	}
	if c.DifficultyExponent < 0 {
		return fmt.Errorf("tuning.difficultyExponent must not be negative, got %v", c.DifficultyExponent)
	}
	return nil
}

// Resolver returns the resolver with the configured tuning.
func (c *Config) Resolver() engine.Resolver {
	return engine.Resolver{
		LeagueAverage:      c.LeagueAverage,
		DifficultyExponent: c.DifficultyExponent,
	}
}
