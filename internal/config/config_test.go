package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"VoteChain/internal/protocol"
)

// writeConfig writes a TOML file in a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "curator.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Fund != protocol.PostRewardFundName {
		t.Errorf("fund: got %q, want %q", cfg.Fund, protocol.PostRewardFundName)
	}

	if cfg.Fork.WitnessCurationCurve != protocol.CurveQuadratic {
		t.Errorf("witness curve: got %v, want quadratic", cfg.Fork.WitnessCurationCurve)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
data_dir = "/var/lib/curator"
log_level = "debug"
workers = 2
sync_interval = "250ms"
fund = "comment"

[fork]
curation_active = true
witness_curation_curve = "square_root"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DataDir != "/var/lib/curator" || cfg.LogLevel != "debug" || cfg.Workers != 2 {
		t.Errorf("got %+v", cfg)
	}

	if cfg.SyncInterval != 250*time.Millisecond {
		t.Errorf("sync interval: got %s, want 250ms", cfg.SyncInterval)
	}

	want := protocol.ForkState{CurationForkActive: true, WitnessCurationCurve: protocol.CurveSquareRoot}
	if cfg.Fork.State() != want {
		t.Errorf("fork: got %+v, want %+v", cfg.Fork.State(), want)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown key", `colour = "blue"`, "unknown keys"},
		{"bad level", `log_level = "loud"`, "log_level"},
		{"negative workers", `workers = -1`, "workers"},
		{"unknown fund", `fund = "bogus"`, "unknown reward fund"},
		{"detect witness curve", "[fork]\nwitness_curation_curve = \"detect\"", "witness curation curve"},
		{"unknown curve", "[fork]\nwitness_curation_curve = \"cubic\"", "unknown curve"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
