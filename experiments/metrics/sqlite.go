package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id            TEXT PRIMARY KEY,
    created_at_ms INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS agent_configs (
    run              TEXT NOT NULL REFERENCES runs(id),
    id               INTEGER NOT NULL,
    matchup          TEXT NOT NULL,
    seat             INTEGER NOT NULL,
    kind             TEXT NOT NULL,
    name             TEXT NOT NULL,
    cutoff1          INTEGER NOT NULL,
    cutoff2          INTEGER NOT NULL,
    cards_per_smithy INTEGER NOT NULL,
    simulation_steps INTEGER NOT NULL,
    goroutines       INTEGER NOT NULL,
    episodes         INTEGER NOT NULL,
    duration_ns      INTEGER NOT NULL,
    PRIMARY KEY (run, id)
);
CREATE TABLE IF NOT EXISTS game_records (
    run           TEXT NOT NULL REFERENCES runs(id),
    id            TEXT PRIMARY KEY,
    matchup       TEXT NOT NULL,
    agents        TEXT NOT NULL,
    starting_seat INTEGER NOT NULL,
    winners       TEXT NOT NULL,
    scores        TEXT NOT NULL,
    completed     INTEGER NOT NULL,
    start_time_ms INTEGER NOT NULL,
    end_time_ms   INTEGER NOT NULL,
    duration_ns   INTEGER NOT NULL,
    total_turns   INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS turn_records (
    game        TEXT NOT NULL REFERENCES game_records(id),
    turn        INTEGER NOT NULL,
    seat        INTEGER NOT NULL,
    player      TEXT NOT NULL,
    gained      TEXT NOT NULL,
    score       INTEGER NOT NULL,
    deck_size   INTEGER NOT NULL,
    searches    INTEGER NOT NULL,
    duration_ns INTEGER NOT NULL,
    episodes    INTEGER NOT NULL,
    PRIMARY KEY (game, turn)
);`

// SQLiteStore keeps the records of many runs in one database file.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("empty sqlite database path")
	}
	if path != ":memory:" {
		if parent := filepath.Dir(path); parent != "." {
			if err := os.MkdirAll(parent, 0755); err != nil {
				return nil, fmt.Errorf("failed to create directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, stmt := range []string{`PRAGMA busy_timeout = 5000;`, `PRAGMA foreign_keys = ON;`, schema} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to prepare database: %w", err)
		}
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Store saves one run in a single transaction.
func (s *SQLiteStore) Store(ctx context.Context, runID string, configs []AgentConfig, games []GameRecord, turns []TurnRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `INSERT INTO runs (id, created_at_ms) VALUES (?, ?)`,
		runID, time.Now().UTC().UnixMilli()); err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for _, c := range configs {
		_, err := tx.ExecContext(ctx, `
INSERT INTO agent_configs (
    run, id, matchup, seat, kind, name, cutoff1, cutoff2,
    cards_per_smithy, simulation_steps, goroutines, episodes, duration_ns
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, c.ID, c.Matchup, c.Seat, c.Kind, c.Name, c.Cutoff1, c.Cutoff2,
			c.CardsPerSmithy, c.SimulationSteps, c.Goroutines, c.Episodes, int64(c.Duration))
		if err != nil {
			return fmt.Errorf("failed to insert agent config %d: %w", c.ID, err)
		}
	}

	for _, g := range games {
		_, err := tx.ExecContext(ctx, `
INSERT INTO game_records (
    run, id, matchup, agents, starting_seat, winners, scores, completed,
    start_time_ms, end_time_ms, duration_ns, total_turns
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, g.ID, g.Matchup, joinInts(g.Agents), g.StartingSeat, joinInts(g.Winners),
			joinInts(g.Scores), g.Completed, g.StartTime.UnixMilli(), g.EndTime.UnixMilli(),
			int64(g.Duration), g.TotalTurns)
		if err != nil {
			return fmt.Errorf("failed to insert game record %s: %w", g.ID, err)
		}
	}

	for _, t := range turns {
		_, err := tx.ExecContext(ctx, `
INSERT INTO turn_records (
    game, turn, seat, player, gained, score, deck_size, searches, duration_ns, episodes
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.Game, t.Turn, t.Seat, t.Player, strings.Join(t.Gained, ";"), t.Score,
			t.DeckSize, t.Searches, int64(t.Duration), t.Episodes)
		if err != nil {
			return fmt.Errorf("failed to insert turn %d of game %s: %w", t.Turn, t.Game, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}
	return nil
}

// GameCount returns how many games a run stored.
func (s *SQLiteStore) GameCount(ctx context.Context, runID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM game_records WHERE run = ?`, runID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count games: %w", err)
	}
	return n, nil
}
