// Package config loads the planner's process configuration: wire prefix,
// runtime endpoints, journaling, and simulator tuning. The planning core
// itself takes no configuration; everything here feeds the commands and
// the runtime-client layer.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"mindcraftce.ai/internal/envelope"
	"mindcraftce.ai/internal/runtime"
)

type Config struct {
	// Prefix is the command word prepended to wire commands.
	Prefix string `yaml:"prefix"`
	// EventsURL is the runtime's event socket. MINDCRAFT_CE_EVENTS_URL
	// overrides it when set.
	EventsURL string `yaml:"events_url"`
	// ReconnectSeconds is the fixed delay between event-stream dials.
	ReconnectSeconds int `yaml:"reconnect_seconds"`
	// JournalDir enables the plan/envelope/event journal when non-empty.
	JournalDir string `yaml:"journal_dir"`
	// ScoreWorkers sizes the scoring worker pool.
	ScoreWorkers int `yaml:"score_workers"`

	Simulator SimulatorSpec `yaml:"simulator"`
}

// SimulatorSpec tunes the in-process fallback runtime.
type SimulatorSpec struct {
	Steps   int `yaml:"steps"`
	DelayMs int `yaml:"delay_ms"`
}

func Defaults() Config {
	return Config{
		Prefix:           envelope.DefaultPrefix,
		ReconnectSeconds: int(runtime.DefaultReconnect / time.Second),
		ScoreWorkers:     2,
		Simulator:        SimulatorSpec{Steps: 3, DelayMs: 0},
	}
}

// Load reads path over the defaults. An empty path returns the defaults
// untouched; the env override still applies.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("planner.yaml: %w", err)
		}
	}
	if url := os.Getenv(runtime.EnvEventsURL); url != "" {
		cfg.EventsURL = url
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("planner.yaml: %w", err)
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Prefix = strings.TrimSpace(c.Prefix)
	if c.Prefix == "" {
		c.Prefix = envelope.DefaultPrefix
	}
	c.EventsURL = strings.TrimSpace(c.EventsURL)
	if c.ReconnectSeconds <= 0 {
		c.ReconnectSeconds = int(runtime.DefaultReconnect / time.Second)
	}
	if c.ScoreWorkers <= 0 {
		c.ScoreWorkers = 2
	}
	if c.Simulator.Steps <= 0 {
		c.Simulator.Steps = 3
	}
	if c.Simulator.DelayMs < 0 {
		c.Simulator.DelayMs = 0
	}
}

func (c Config) Validate() error {
	if strings.ContainsAny(c.Prefix, " \t\n") {
		return fmt.Errorf("prefix %q must be a single word", c.Prefix)
	}
	if c.EventsURL != "" && !strings.HasPrefix(c.EventsURL, "ws://") && !strings.HasPrefix(c.EventsURL, "wss://") {
		return fmt.Errorf("events_url %q must be a ws:// or wss:// URL", c.EventsURL)
	}
	return nil
}

// Reconnect returns the reconnect delay as a duration.
func (c Config) Reconnect() time.Duration {
	return time.Duration(c.ReconnectSeconds) * time.Second
}

// SimulatorConfig converts the simulator settings into the runtime's
// config type.
func (c Config) SimulatorConfig() runtime.SimulatorConfig {
	return runtime.SimulatorConfig{
		Steps: c.Simulator.Steps,
		Delay: time.Duration(c.Simulator.DelayMs) * time.Millisecond,
	}
}
