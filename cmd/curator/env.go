package main

import (
	"errors"
	"fmt"
	"os"

	"VoteChain/internal/chain"
	"VoteChain/internal/config"
	"VoteChain/internal/curation"
	"VoteChain/internal/logger"
	"VoteChain/internal/state"
	"VoteChain/internal/storage"
)

// env is an opened database with its configuration.
type env struct {
	cfg   *config.Config
	db    *storage.Storage
	state *state.State
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config:\n%w", err)
	}

	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if workers >= 0 {
		cfg.Workers = workers
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags:\n%w", err)
	}

	return cfg, nil
}

// openEnv loads the config, installs the logger and opens the database.
func openEnv() (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	level, _ := logger.ParseLevel(cfg.LogLevel) // validated by loadConfig
	logger.InitLevel(os.Stderr, level)

	db, err := storage.Open(cfg.DataDir, cfg.SyncInterval)
	if err != nil {
		return nil, fmt.Errorf("open storage at %s:\n%w", cfg.DataDir, err)
	}

	logger.Debug("storage opened", "dir", cfg.DataDir)

	return &env{cfg: cfg, db: db, state: state.New(db)}, nil
}

// Close closes the database.
func (e *env) Close() error {
	return e.db.Close()
}

// chainParams are the chain-wide inputs of a computation, read from one view.
type chainParams struct {
	props state.Props
	fund  chain.RewardFund
}

// curationEnv returns the curation environment of these parameters.
func (p *chainParams) curationEnv() curation.Env {
	return curation.Env{Fork: p.props.Fork, FundCurve: p.fund.CurationCurve, ContentConstant: p.fund.ContentConstant}
}

// loadParams reads props and the configured fund from r.
// Missing props fall back to the configured fork state and a null price.
func (e *env) loadParams(r *state.Reader) (*chainParams, error) {
	props, err := r.Props()
	if errors.Is(err, state.ErrNotFound) {
		logger.Warn("no global properties in state, using configured fork state")
		props = state.Props{Fork: e.cfg.Fork.State()}
	} else if err != nil {
		return nil, err
	}

	fund, err := r.Fund(e.cfg.Fund)
	if err != nil {
		return nil, fmt.Errorf("load reward fund:\n%w", err)
	}

	if props.Price.IsNull() {
		logger.Warn("null price feed, every payout is dust", "fund", fund.Name)
	}

	return &chainParams{props: props, fund: fund}, nil
}
