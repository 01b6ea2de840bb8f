package config

import (
	"os"
	"testing"
	"time"

	"github.com/lixenwraith/chromebar/constants"
)

func clearEnv() {
	os.Unsetenv("CHROMEBAR_SCROLL_THRESHOLD")
	os.Unsetenv("CHROMEBAR_TOP_ZONE")
	os.Unsetenv("CHROMEBAR_PROXIMITY_ZONE")
	os.Unsetenv("CHROMEBAR_HIDE_DEPTH")
	os.Unsetenv("CHROMEBAR_COMPACT_WIDTH")
	os.Unsetenv("CHROMEBAR_SETTLE_MS")
	os.Unsetenv("CHROMEBAR_AUDIO_ENABLED")
}

// TestDefaultConfig verifies the built-in thresholds
func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Expected non-nil default config")
	}
	if cfg.ScrollThreshold != constants.ScrollThreshold {
		t.Errorf("Expected default threshold %d, got %d", constants.ScrollThreshold, cfg.ScrollThreshold)
	}
	if cfg.SettleDelay != constants.ScrollSettleDelay {
		t.Errorf("Expected default settle delay %v, got %v", constants.ScrollSettleDelay, cfg.SettleDelay)
	}
	if !cfg.AudioEnabled {
		t.Error("Expected audio enabled by default")
	}
}

// TestLoadConfigDefaults verifies loading with no env vars set
func TestLoadConfigDefaults(t *testing.T) {
	clearEnv()

	cfg := Load()
	if *cfg != *Default() {
		t.Errorf("Expected defaults with empty environment, got %+v", cfg)
	}
}

// TestLoadConfigOverrides verifies env var overrides
func TestLoadConfigOverrides(t *testing.T) {
	clearEnv()
	os.Setenv("CHROMEBAR_SCROLL_THRESHOLD", "2")
	os.Setenv("CHROMEBAR_HIDE_DEPTH", "20")
	os.Setenv("CHROMEBAR_SETTLE_MS", "80")
	os.Setenv("CHROMEBAR_AUDIO_ENABLED", "false")
	defer clearEnv()

	cfg := Load()
	if cfg.ScrollThreshold != 2 {
		t.Errorf("Expected threshold 2, got %d", cfg.ScrollThreshold)
	}
	if cfg.HideDepth != 20 {
		t.Errorf("Expected hide depth 20, got %d", cfg.HideDepth)
	}
	if cfg.SettleDelay != 80*time.Millisecond {
		t.Errorf("Expected settle delay 80ms, got %v", cfg.SettleDelay)
	}
	if cfg.AudioEnabled {
		t.Error("Expected audio disabled")
	}
	if cfg.TopZone != constants.TopZone {
		t.Errorf("Expected untouched top zone %d, got %d", constants.TopZone, cfg.TopZone)
	}
}

// TestLoadConfigRejectsMalformedValues verifies silent fallback on bad input
func TestLoadConfigRejectsMalformedValues(t *testing.T) {
	clearEnv()
	os.Setenv("CHROMEBAR_SCROLL_THRESHOLD", "not-a-number")
	os.Setenv("CHROMEBAR_SETTLE_MS", "-5")
	defer clearEnv()

	cfg := Load()
	if cfg.ScrollThreshold != constants.ScrollThreshold {
		t.Errorf("Expected default threshold on parse failure, got %d", cfg.ScrollThreshold)
	}
	if cfg.SettleDelay != constants.ScrollSettleDelay {
		t.Errorf("Expected default settle delay on negative input, got %v", cfg.SettleDelay)
	}
}

// TestParamsConversion verifies the controller params mirror the config
func TestParamsConversion(t *testing.T) {
	cfg := Default()
	cfg.ScrollThreshold = 3
	cfg.CompactWidth = 90

	p := cfg.Params()
	if p.ScrollThreshold != 3 || p.CompactWidth != 90 {
		t.Errorf("Expected params to mirror config, got %+v", p)
	}
	if p.SettleDelay != cfg.SettleDelay {
		t.Errorf("Expected settle delay %v, got %v", cfg.SettleDelay, p.SettleDelay)
	}
}
