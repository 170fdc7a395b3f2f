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

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/ttbt-io/strikezone/backend"
	"github.com/ttbt-io/strikezone/backend/engine"
)

var (
	configDir   = flag.String("config-dir", ".", "Directory containing "+backend.ConfigFileName)
	dataDir     = flag.String("data-dir", "data", "Directory for outcome tables, roster and logs")
	debugMode   = flag.Bool("debug", false, "Log to stderr at debug level")
	seed        = flag.Uint64("seed", 0, "Seed for the pitch outcome generator. 0 picks a random seed.")
	pace        = flag.Float64("pace", 1, "Narration speed multiplier. 0 disables pauses.")
	pitcherID   = flag.String("pitcher", "clayton_kershaw", "Pitcher to play as")
	opponentID  = flag.String("opponent", "seattle_mariners", "Opposing team")
	metricsFile = flag.String("metrics-file", "", "Write game metrics to this file in Prometheus text format")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s [flags] [command]

Commands:
  play                            Play a game (default)
  info                            Explain how pitches are resolved and scored
  legend                          Show the zone numbers
  tables list                     List stored outcome tables
  tables import <pitcher> <file>  Import an outcome table from a JSON file
  tables export <pitcher> <file>  Export an outcome table to a JSON file
  tables delete <pitcher>         Delete a stored outcome table

Flags:
`, os.Args[0])
	flag.PrintDefaults()
}

// main loads the configuration and dispatches to the requested command.
func main() {
	flag.Usage = usage
	flag.Parse()

	cfg, err := backend.LoadConfig(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := setupLogging(cfg)
	defer closeLog()

	store, err := backend.OpenStorage(cfg.DataDir, cfg.MasterKey, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open storage")
	}
	tables := backend.NewTableStore(cfg.DataDir, store)
	if err := tables.EnsureDefaults(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to install default outcome tables")
	}
	roster := backend.NewRosterStore(cfg.DataDir, tables)
	if err := roster.LoadRoster(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to load roster")
	}

	args := flag.Args()
	cmd := "play"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "play":
		err = play(cfg, roster)
	case "info":
		err = info(cfg, roster)
	case "legend":
		fmt.Print(engine.Legend())
	case "tables":
		err = tablesCommand(tables, args)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error().Err(err).Str("command", cmd).Msg("Command failed")
		fmt.Fprintf(os.Stderr, "%s: %v\n", cmd, err)
		closeLog()
		os.Exit(1)
	}
}

// applyFlags lets explicitly set flags override the config file.
func applyFlags(cfg *backend.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data-dir":
			cfg.DataDir = *dataDir
		case "seed":
			cfg.Seed = *seed
		case "pace":
			cfg.Pace = *pace
		case "pitcher":
			cfg.Pitcher = *pitcherID
		case "opponent":
			cfg.Opponent = *opponentID
		case "metrics-file":
			cfg.MetricsFile = *metricsFile
		}
	})
	if *debugMode {
		cfg.LogLevel = "debug"
	}
}

// setupLogging sends logs to the data directory so they don't interleave with
// the game. With -debug they go to stderr.
func setupLogging(cfg *backend.Config) (zerolog.Logger, func()) {
	var out io.Writer = os.Stderr
	closeLog := func() {}
	if !*debugMode {
		f, err := backend.OpenLogFile(cfg.DataDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		out = f
		closeLog = func() { f.Close() }
	}
	return backend.ConfigureLogging(backend.LogConfig{Level: cfg.LogLevel, Output: out}), closeLog
}

func play(cfg *backend.Config, roster *backend.RosterStore) error {
	if cfg.Seed != 0 {
		engine.Seed(cfg.Seed)
	}
	pitcher, err := roster.Pitcher(cfg.Pitcher)
	if err != nil {
		return err
	}
	opponent, err := roster.Team(cfg.Opponent)
	if err != nil {
		return err
	}
	s, err := backend.NewSession(pitcher, opponent,
		backend.WithTuning(cfg.Resolver()),
		backend.WithMoundVisits(cfg.MoundVisits),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := &backend.Console{In: os.Stdin, Out: os.Stdout, Pacer: backend.Pacer{Scale: cfg.Pace}}
	score, err := c.Play(ctx, s)
	l := backend.WithComponent("main")
	l.Info().Str("game", s.ID).Int("score", score).Int("battersFaced", s.BattersFaced()).Msg("Game finished")

	if cfg.MetricsFile != "" {
		if werr := s.Metrics().WriteTextfile(cfg.MetricsFile); werr != nil && err == nil {
			err = werr
		}
	}
	return err
}

func info(cfg *backend.Config, roster *backend.RosterStore) error {
	pitcher, err := roster.Pitcher(cfg.Pitcher)
	if err != nil {
		return err
	}
	opponent, err := roster.Team(cfg.Opponent)
	if err != nil {
		return err
	}
	if len(opponent.Lineup) == 0 {
		return fmt.Errorf("%s has no batters", opponent)
	}
	c := &backend.Console{Out: os.Stdout}
	return c.Info(pitcher, opponent.Lineup[0], cfg.Resolver())
}

func tablesCommand(tables *backend.TableStore, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing tables subcommand")
	}
	switch sub := args[0]; {
	case sub == "list" && len(args) == 1:
		for id, err := range tables.ListTables() {
			if err != nil {
				return err
			}
			fmt.Println(id)
		}
		return nil
	case sub == "import" && len(args) == 3:
		return tables.ImportJSON(args[1], args[2])
	case sub == "export" && len(args) == 3:
		return tables.ExportJSON(args[1], args[2])
	case sub == "delete" && len(args) == 2:
		return tables.DeleteTable(args[1])
	default:
		return fmt.Errorf("invalid tables command: %v", args)
	}
}
