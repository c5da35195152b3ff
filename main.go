package main

import (
	"flag"
	"os"
	"time"

	"dominion/config"
	"dominion/experiments"
	"dominion/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Tournament config (YAML); the built-in default when empty")
	games := flag.Int("games", 0, "Games per matchup, overrides the config")
	seed := flag.Uint64("seed", 0, "Random seed, overrides the config")
	level := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	human := flag.String("human", "", "Seat a human with this name in the first seat of every matchup")
	database := flag.String("database", "", "SQLite file that collects every run, overrides the config")
	throughput := flag.Bool("throughput", false, "Run the search throughput experiment instead")
	duration := flag.Duration("duration", 10*time.Millisecond, "Search time per buy in the throughput experiment")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	logLevel, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(logLevel)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		cfg = *loaded
	}
	if *games > 0 {
		cfg.Games = *games
	}
	if *seed > 0 {
		cfg.Seed = *seed
	}
	if *database != "" {
		cfg.Database = *database
	}
	if *human != "" {
		for i := range cfg.Matchups {
			seat := config.Player{Kind: config.KindHuman, Name: *human}
			seat.ApplyDefaults()
			cfg.Matchups[i].Players[0] = seat
		}
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	var dir string
	if *throughput {
		dir, err = experiments.RunThroughput(&cfg, experiments.ThroughputGoroutines, *duration)
	} else {
		dir, err = experiments.Run(&cfg, player.Terminal{In: os.Stdin, Out: os.Stdout})
	}
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	log.Info().Msgf("results written to %s", dir)
}
