// Package config loads mcflow run configuration from TOML.
//
// A file describes the network, demand, commodities and shortcut along with
// logging, solver and scenario settings. Sections left out of a file keep
// their defaults; the [network], [[commodity]] and [[demand]] data have no
// defaults. Default returns the embedded reference dataset.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mcflow/lp/simplex"
	"github.com/katalvlaran/mcflow/scenario"
)

//go:embed reference.toml
var reference string

// ErrInvalid is matched by every configuration error from this package.
var ErrInvalid = errors.New("config: invalid")

// Config is the decoded file.
type Config struct {
	Log         LogConfig         `toml:"log"`
	Solver      SolverConfig      `toml:"solver"`
	Scenario    ScenarioConfig    `toml:"scenario"`
	Shortcut    ShortcutConfig    `toml:"shortcut"`
	Network     NetworkConfig     `toml:"network"`
	Commodities []CommodityConfig `toml:"commodity"`
	Demand      []DemandConfig    `toml:"demand"`
}

// LogConfig selects the logrus level and formatter.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text | json
}

// SolverConfig tunes the simplex solver.
type SolverConfig struct {
	Tolerance float64 `toml:"tolerance"`
}

// ScenarioConfig tunes the runner.
type ScenarioConfig struct {
	Tolerance float64 `toml:"tolerance"`
	Parallel  bool    `toml:"parallel"`
}

// ShortcutConfig is the arc added in the augmented scenario.
type ShortcutConfig struct {
	From     string  `toml:"from"`
	To       string  `toml:"to"`
	Distance float64 `toml:"distance"`
	Capacity float64 `toml:"capacity"`
}

// NetworkConfig lists nodes and directed edges. Nodes named only by edges
// are appended after the listed ones.
type NetworkConfig struct {
	Nodes []string     `toml:"nodes"`
	Edges []EdgeConfig `toml:"edges"`
}

// EdgeConfig is one directed edge. A missing distance makes a free edge.
type EdgeConfig struct {
	From     string   `toml:"from"`
	To       string   `toml:"to"`
	Distance *float64 `toml:"distance"`
}

// CommodityConfig declares one commodity. Label defaults to "O"+origin and
// Destinations to every other node.
type CommodityConfig struct {
	Label        string   `toml:"label"`
	Origin       string   `toml:"origin"`
	Destinations []string `toml:"destinations"`
}

// DemandConfig holds the volumes leaving one origin, keyed by destination.
type DemandConfig struct {
	Origin  string             `toml:"origin"`
	Volumes map[string]float64 `toml:"volumes"`
}

// defaults returns the settings used for sections a file leaves out.
func defaults() Config {
	return Config{
		Log:      LogConfig{Level: "info", Format: "text"},
		Solver:   SolverConfig{Tolerance: simplex.DefaultTolerance},
		Scenario: ScenarioConfig{Tolerance: scenario.DefaultTolerance},
	}
}

// Load decodes and validates the TOML file at path.
func Load(path string) (*Config, error) {
	c := defaults()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}

	return finish(&c, md)
}

// Parse decodes and validates TOML text.
func Parse(data string) (*Config, error) {
	c := defaults()
	md, err := toml.Decode(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return finish(&c, md)
}

// Default returns the embedded reference dataset.
func Default() *Config {
	c, err := Parse(reference)
	if err != nil {
		panic(fmt.Sprintf("config: embedded reference is invalid: %v", err))
	}

	return c
}

func finish(c *Config, md toml.MetaData) (*Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)

		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks settings and builds the inputs once, so every error a
// run could hit on its input surfaces here.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalid, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log format %q (want text or json)", ErrInvalid, c.Log.Format)
	}
	if !positive(c.Solver.Tolerance) {
		return fmt.Errorf("%w: solver tolerance %g", ErrInvalid, c.Solver.Tolerance)
	}
	if !positive(c.Scenario.Tolerance) {
		return fmt.Errorf("%w: scenario tolerance %g", ErrInvalid, c.Scenario.Tolerance)
	}
	_, err := c.Input()

	return err
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 0) }

// ApplyLogging configures l from the [log] section.
func (c *Config) ApplyLogging(l *logrus.Logger) error {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalid, err)
	}
	l.SetLevel(level)
	if c.Log.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return nil
}

// RunnerOptions translates the [solver] and [scenario] sections.
func (c *Config) RunnerOptions() []scenario.Option {
	return []scenario.Option{
		scenario.WithSolver(simplex.New(simplex.WithTolerance(c.Solver.Tolerance))),
		scenario.WithTolerance(c.Scenario.Tolerance),
		scenario.WithParallel(c.Scenario.Parallel),
	}
}
