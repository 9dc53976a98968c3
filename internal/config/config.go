package config

import (
	"fmt"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"VoteChain/internal/logger"
	"VoteChain/internal/protocol"
)

// Config holds the curator configuration.
type Config struct {
	// DataDir is the directory of the chain state database.
	DataDir string `toml:"data_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// Workers bounds parallel curation builds; 0 means unbounded.
	Workers int `toml:"workers"`

	// SyncInterval is the period between WAL syncs.
	SyncInterval time.Duration `toml:"sync_interval"`

	// Fund is the reward fund content is paid from.
	Fund string `toml:"fund"`

	// Fork is used when the chain state carries no global properties.
	Fork ForkConfig `toml:"fork"`
}

// ForkConfig is the fallback curation fork state.
type ForkConfig struct {
	CurationActive       bool               `toml:"curation_active"`
	WitnessCurationCurve protocol.CurveKind `toml:"witness_curation_curve"`
}

// State converts the fork config into the protocol representation.
func (f ForkConfig) State() protocol.ForkState {
	return protocol.ForkState{
		CurationForkActive:   f.CurationActive,
		WitnessCurationCurve: f.WitnessCurationCurve,
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataDir:      "./data",
		LogLevel:     "info",
		Workers:      runtime.GOMAXPROCS(0),
		SyncInterval: 100 * time.Millisecond,
		Fund:         protocol.PostRewardFundName,
		Fork: ForkConfig{
			WitnessCurationCurve: protocol.CurveQuadratic,
		},
	}
}

// Load reads path over the defaults and validates the result.
// An empty path yields the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("decode %s:\n%w", path, err)
		}

		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)

			return nil, fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level:\n%w", err)
	}

	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}

	if c.SyncInterval < 0 {
		return fmt.Errorf("sync_interval must be >= 0, got %s", c.SyncInterval)
	}

	if protocol.ParseFundKind(c.Fund) == protocol.FundUnknown {
		return fmt.Errorf("unknown reward fund %q", c.Fund)
	}

	// The witness curve replaces detect, so it cannot be detect itself
	if !c.Fork.WitnessCurationCurve.Valid() {
		return fmt.Errorf("invalid witness curation curve %v", c.Fork.WitnessCurationCurve)
	}

	return nil
}
