package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

// Kinds of players a config can seat.
const (
	KindBigMoney   = "bigmoney"
	KindSmithy     = "smithy"
	KindHillClimb  = "hillclimb"
	KindMonteCarlo = "montecarlo"
	KindRandom     = "random"
	KindHuman      = "human"
)

const MaxPlayers = 6

// Config describes a tournament: every matchup is played Games times.
type Config struct {
	Seed      uint64    `yaml:"seed"`
	Games     int       `yaml:"games"`
	MaxTurns  int       `yaml:"max_turns"`
	OutputDir string    `yaml:"output_dir"`
	Database  string    `yaml:"database"` // Optional SQLite file that collects every run
	Kingdom   []string  `yaml:"kingdom"`
	Catalog   string    `yaml:"catalog"` // Optional YAML file with extra cards
	Matchups  []Matchup `yaml:"matchups"`
}

type Matchup struct {
	Name    string   `yaml:"name"`
	Players []Player `yaml:"players"`
}

// Player configures one seat. Fields that do not apply to Kind are ignored.
type Player struct {
	Kind            string        `yaml:"kind"`
	Name            string        `yaml:"name"`
	Cutoff1         int           `yaml:"cutoff1"`
	Cutoff2         int           `yaml:"cutoff2"`
	CardsPerSmithy  int           `yaml:"cards_per_smithy"`
	SimulationSteps int           `yaml:"simulation_steps"`
	Goroutines      int           `yaml:"goroutines"`
	Episodes        int           `yaml:"episodes"`
	Duration        time.Duration `yaml:"duration"`
}

// Default is a small BigMoney against SmithyBot tournament. Its seats carry
// their kind's default parameters.
func Default() Config {
	cfg := Config{
		Seed:      1,
		Games:     10,
		MaxTurns:  400,
		OutputDir: "results",
		Kingdom: []string{
			"Cellar", "Moat", "Village", "Woodcutter", "Militia",
			"Moneylender", "Smithy", "Festival", "Laboratory", "Market",
		},
		Matchups: []Matchup{
			{
				Name:    "bigmoney_vs_smithy",
				Players: []Player{{Kind: KindBigMoney}, {Kind: KindSmithy}},
			},
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(bytes.NewReader(b))
}

// Parse decodes a config on top of the defaults and validates it.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ApplyDefaults() {
	for i := range c.Matchups {
		m := &c.Matchups[i]
		if m.Name == "" {
			m.Name = fmt.Sprintf("matchup_%d", i+1)
		}
		for j := range m.Players {
			m.Players[j].ApplyDefaults()
		}
	}
}

// ApplyDefaults fills the parameters a kind uses but the config left out.
func (p *Player) ApplyDefaults() {
	switch p.Kind {
	case KindBigMoney, KindHuman:
		p.Cutoff1 = orDefault(p.Cutoff1, 3)
		p.Cutoff2 = orDefault(p.Cutoff2, 6)
	case KindSmithy:
		p.Cutoff1 = orDefault(p.Cutoff1, 3)
		p.Cutoff2 = orDefault(p.Cutoff2, 6)
		p.CardsPerSmithy = orDefault(p.CardsPerSmithy, 8)
	case KindHillClimb:
		p.Cutoff1 = orDefault(p.Cutoff1, 2)
		p.Cutoff2 = orDefault(p.Cutoff2, 3)
		p.SimulationSteps = orDefault(p.SimulationSteps, 100)
	case KindMonteCarlo:
		p.Cutoff1 = orDefault(p.Cutoff1, 2)
		p.Cutoff2 = orDefault(p.Cutoff2, 3)
		p.Goroutines = orDefault(p.Goroutines, 4)
		if p.Episodes <= 0 && p.Duration <= 0 {
			p.Episodes = 200
		}
	}
}

func orDefault(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}

func (c *Config) Validate() error {
	if c.Games <= 0 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalid, c.Games)
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("%w: max_turns must be positive, got %d", ErrInvalid, c.MaxTurns)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir is required", ErrInvalid)
	}
	if len(c.Kingdom) == 0 {
		return fmt.Errorf("%w: kingdom is empty", ErrInvalid)
	}
	seen := make(map[string]bool, len(c.Kingdom))
	for _, name := range c.Kingdom {
		if seen[name] {
			return fmt.Errorf("%w: %s is in the kingdom twice", ErrInvalid, name)
		}
		seen[name] = true
	}
	if len(c.Matchups) == 0 {
		return fmt.Errorf("%w: no matchups", ErrInvalid)
	}
	for _, m := range c.Matchups {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (m *Matchup) Validate() error {
	if n := len(m.Players); n < 2 || n > MaxPlayers {
		return fmt.Errorf("%w: matchup %s has %d players, want 2 to %d", ErrInvalid, m.Name, n, MaxPlayers)
	}
	humans := 0
	for i, p := range m.Players {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("matchup %s seat %d: %w", m.Name, i+1, err)
		}
		if p.Kind == KindHuman {
			humans++
		}
	}
	if humans > 1 {
		return fmt.Errorf("%w: matchup %s seats %d humans", ErrInvalid, m.Name, humans)
	}
	return nil
}

func (p *Player) Validate() error {
	switch p.Kind {
	case KindBigMoney, KindSmithy, KindHillClimb, KindRandom, KindHuman:
	case KindMonteCarlo:
		if p.Goroutines <= 0 {
			return fmt.Errorf("%w: goroutines must be positive", ErrInvalid)
		}
		if p.Episodes <= 0 && p.Duration <= 0 {
			return fmt.Errorf("%w: episodes or duration is required", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown player kind %q", ErrInvalid, p.Kind)
	}
	if p.Cutoff1 > p.Cutoff2 {
		return fmt.Errorf("%w: cutoff1 %d exceeds cutoff2 %d", ErrInvalid, p.Cutoff1, p.Cutoff2)
	}
	return nil
}
