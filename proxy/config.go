package proxy

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Strategy selects how the pool picks a backend for a new session.
type Strategy string

const (
	StrategyRoundRobin    Strategy = "round_robin"
	StrategyLeastSessions Strategy = "least_sessions"
	StrategyWeighted      Strategy = "weighted"
	StrategyGeographic    Strategy = "geographic"
	StrategyQoSBased      Strategy = "qos_based"
)

var validStrategies = map[Strategy]bool{
	StrategyRoundRobin:    true,
	StrategyLeastSessions: true,
	StrategyWeighted:      true,
	StrategyGeographic:    true,
	StrategyQoSBased:      true,
}

// implemented reports whether Strategy has its own selection logic in
// Pool.Select, as opposed to falling back to round_robin.
func (s Strategy) implemented() bool {
	return s == StrategyRoundRobin || s == StrategyLeastSessions
}

// BackendConfig names one UPF reachable on N4, per spec.md §6's
// `backends` option: (address, weight, zone, max_sessions).
type BackendConfig struct {
	Address     string `yaml:"address"`
	Weight      int    `yaml:"weight"`
	Zone        string `yaml:"zone"`
	MaxSessions int    `yaml:"max_sessions"`
}

// Config is the proxy's full configuration record, covering every
// option in spec.md §6's Configuration table. Unlike the teacher's
// per-NF config (bind addresses, PLMN, DNN), the proxy core owns no
// transport and no persisted state — callers load this, construct a
// Proxy, and drive it from their own UDP loop.
type Config struct {
	ListenAddress        string          `yaml:"listen_address"`
	Backends              []BackendConfig `yaml:"backends"`
	Strategy              Strategy        `yaml:"strategy"`
	HealthCheckInterval   time.Duration   `yaml:"health_check_interval"`
	HeartbeatTimeout      time.Duration   `yaml:"heartbeat_timeout"`
	FailureThreshold      int             `yaml:"failure_threshold"`
	RecoveryThreshold     int             `yaml:"recovery_threshold"`
	SessionTimeout        time.Duration   `yaml:"session_timeout"`
}

// Load reads and validates a Config from a YAML file, following the
// teacher's config.Load shape (os.ReadFile + yaml.Unmarshal + defaults).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read proxy config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse proxy config file: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Strategy == "" {
		c.Strategy = StrategyRoundRobin
	}
	if c.HealthCheckInterval == 0 {
		c.HealthCheckInterval = 30 * time.Second
	}
	if c.HeartbeatTimeout == 0 {
		c.HeartbeatTimeout = 5 * time.Second
	}
	if c.FailureThreshold == 0 {
		c.FailureThreshold = 3
	}
	if c.RecoveryThreshold == 0 {
		c.RecoveryThreshold = 2
	}
	if c.SessionTimeout == 0 {
		c.SessionTimeout = 1 * time.Hour
	}
	for i := range c.Backends {
		if c.Backends[i].Weight == 0 {
			c.Backends[i].Weight = 1
		}
	}
}

// Validate checks cross-field constraints Load can't catch via yaml
// tags alone. Every named strategy is accepted even though three of
// the five currently select via round_robin (see Pool.Select).
func (c *Config) Validate() error {
	if len(c.Backends) == 0 {
		return fmt.Errorf("proxy config: at least one backend is required")
	}
	if !validStrategies[c.Strategy] {
		return fmt.Errorf("proxy config: unknown strategy %q", c.Strategy)
	}
	for _, b := range c.Backends {
		if b.Address == "" {
			return fmt.Errorf("proxy config: backend with empty address")
		}
	}
	return nil
}
