package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// AgentConfig identifies a seat of a matchup in the output files.
type AgentConfig struct {
	ID              int
	Matchup         string
	Seat            int
	Kind            string
	Name            string
	Cutoff1         int
	Cutoff2         int
	CardsPerSmithy  int
	SimulationSteps int
	Goroutines      int
	Episodes        int
	Duration        time.Duration
}

type GameRecord struct {
	ID      string
	Matchup string
	Agents  []int // AgentConfig.ID per seat
	GameMetric
}

type TurnRecord struct {
	Game string // GameRecord.ID
	TurnMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates the directory a run writes its files into.
func NewWriter(outputDir, runID string) (*Writer, error) {
	baseDir := filepath.Join(outputDir, runID)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string { return w.baseDir }

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{
		"id", "matchup", "seat", "kind", "name", "cutoff1", "cutoff2",
		"cards_per_smithy", "simulation_steps", "goroutines", "episodes", "duration",
	}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Matchup,
			strconv.Itoa(config.Seat),
			config.Kind,
			config.Name,
			strconv.Itoa(config.Cutoff1),
			strconv.Itoa(config.Cutoff2),
			strconv.Itoa(config.CardsPerSmithy),
			strconv.Itoa(config.SimulationSteps),
			strconv.Itoa(config.Goroutines),
			strconv.Itoa(config.Episodes),
			config.Duration.String(),
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{
		"id", "matchup", "agents", "starting_seat", "winners", "scores",
		"completed", "start_time", "end_time", "duration", "total_turns",
	}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID,
			record.Matchup,
			joinInts(record.Agents),
			strconv.Itoa(record.StartingSeat),
			joinInts(record.Winners),
			joinInts(record.Scores),
			strconv.FormatBool(record.Completed),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalTurns),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteTurnRecords(records []TurnRecord) error {
	header := []string{
		"game", "turn", "seat", "player", "gained", "score", "deck_size",
		"searches", "duration", "episodes",
	}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Game,
			strconv.Itoa(record.Turn),
			strconv.Itoa(record.Seat),
			record.Player,
			strings.Join(record.Gained, ";"),
			strconv.Itoa(record.Score),
			strconv.Itoa(record.DeckSize),
			strconv.Itoa(record.Searches),
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
		})
	}
	return w.write("turn_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

func joinInts(values []int) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, ";")
}
