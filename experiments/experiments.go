package experiments

import (
	"context"
	"fmt"
	"os"

	"dominion/config"
	"dominion/engine"
	"dominion/experiments/metrics"
	"dominion/game"
	"dominion/player"
	"dominion/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Run plays every matchup of cfg Games times and writes the results into a
// new directory under cfg.OutputDir, which it returns.
func Run(cfg *config.Config, term player.Terminal) (string, error) {
	return runExperiment("tournament", cfg, term)
}

func runExperiment(name string, cfg *config.Config, term player.Terminal) (string, error) {
	kingdom, err := resolveKingdom(cfg)
	if err != nil {
		return "", err
	}
	configs, seats := agentConfigs(cfg)

	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	turnRecords := []metrics.TurnRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range cfg.Matchups {
		log.Info().Msgf("starting matchup %d of %d: %s...", mi+1, len(cfg.Matchups), matchup.Name)

		for i := 0; i < cfg.Games; i++ {
			log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(cfg.Matchups), i+1, cfg.Games)

			seed := cfg.Seed + uint64(count)
			players, err := createPlayers(matchup, seed, term)
			if err != nil {
				return "", err
			}
			e := engine.Local(players, kingdom, seed, engine.WithMaxTurns(cfg.MaxTurns))
			winners, gameMetric, turnMetrics := e.Run()
			count++

			id := uuid.NewString()
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         id,
				Matchup:    matchup.Name,
				Agents:     seats[mi],
				GameMetric: gameMetric,
			})
			for _, tm := range turnMetrics {
				turnRecords = append(turnRecords, metrics.TurnRecord{
					Game:       id,
					TurnMetric: tm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winners: %s",
				mi+1, len(cfg.Matchups), i+1, winnerNames(players, winners))
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(cfg.Matchups))
	}

	log.Info().Msgf("completed %s experiment", name)

	runID := uuid.NewString()
	dir, err := store(cfg.OutputDir, runID, configs, gameRecords, turnRecords)
	if err != nil {
		return "", err
	}
	log.Info().Msgf("stored results in %s", dir)

	if cfg.Database != "" {
		if err := storeSQLite(cfg.Database, runID, configs, gameRecords, turnRecords); err != nil {
			return "", err
		}
		log.Info().Msgf("stored run %s in %s", runID, cfg.Database)
	}
	return dir, nil
}

func resolveKingdom(cfg *config.Config) ([]*game.Card, error) {
	catalog := game.Base
	if cfg.Catalog != "" {
		f, err := os.Open(cfg.Catalog)
		if err != nil {
			return nil, fmt.Errorf("failed to open catalog: %w", err)
		}
		defer f.Close()

		catalog, err = game.LoadCatalog(f)
		if err != nil {
			return nil, err
		}
	}
	kingdom, err := catalog.Lookup(cfg.Kingdom)
	if err != nil {
		return nil, fmt.Errorf("invalid kingdom: %w", err)
	}
	piles := catalog.Kingdom()
	for _, card := range kingdom {
		if utils.FindIndex(piles, card) < 0 {
			return nil, fmt.Errorf("%w: %s is not a kingdom card", config.ErrInvalid, card)
		}
	}
	return kingdom, nil
}

// agentConfigs numbers every seat of every matchup. It also returns the IDs
// per matchup in seat order.
func agentConfigs(cfg *config.Config) ([]metrics.AgentConfig, [][]int) {
	var configs []metrics.AgentConfig
	seats := make([][]int, len(cfg.Matchups))
	for mi, matchup := range cfg.Matchups {
		for seat, p := range matchup.Players {
			id := len(configs) + 1
			configs = append(configs, metrics.AgentConfig{
				ID:              id,
				Matchup:         matchup.Name,
				Seat:            seat,
				Kind:            p.Kind,
				Name:            p.Name,
				Cutoff1:         p.Cutoff1,
				Cutoff2:         p.Cutoff2,
				CardsPerSmithy:  p.CardsPerSmithy,
				SimulationSteps: p.SimulationSteps,
				Goroutines:      p.Goroutines,
				Episodes:        p.Episodes,
				Duration:        p.Duration,
			})
			seats[mi] = append(seats[mi], id)
		}
	}
	return configs, seats
}

// createPlayers builds fresh players for one game. Each seat gets its own
// seed.
func createPlayers(matchup config.Matchup, seed uint64, term player.Terminal) ([]game.Player, error) {
	players := make([]game.Player, len(matchup.Players))
	for seat, p := range matchup.Players {
		created, err := player.New(p, seed+uint64(seat), term)
		if err != nil {
			return nil, fmt.Errorf("matchup %s seat %d: %w", matchup.Name, seat+1, err)
		}
		players[seat] = created
	}
	return players, nil
}

func store(outputDir, runID string, configs []metrics.AgentConfig, games []metrics.GameRecord, turns []metrics.TurnRecord) (string, error) {
	writer, err := metrics.NewWriter(outputDir, runID)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteTurnRecords(turns); err != nil {
		return "", fmt.Errorf("failed to write turn records: %w", err)
	}
	log.Info().Msg("stored turn records")

	return writer.Dir(), nil
}

func storeSQLite(path, runID string, configs []metrics.AgentConfig, games []metrics.GameRecord, turns []metrics.TurnRecord) error {
	db, err := metrics.NewSQLiteStore(path)
	if err != nil {
		return err
	}
	defer db.Close()

	return db.Store(context.Background(), runID, configs, games, turns)
}

func winnerNames(players []game.Player, seats []int) []string {
	names := make([]string, len(seats))
	for i, seat := range seats {
		names[i] = players[seat].Name()
	}
	return names
}
