package config

import (
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/chromebar/bar"
	"github.com/lixenwraith/chromebar/constants"
)

// Config holds bar behavior thresholds and demo toggles
type Config struct {
	ScrollThreshold int
	TopZone         int
	ProximityZone   int
	HideDepth       int
	CompactWidth    int
	SettleDelay     time.Duration
	AudioEnabled    bool
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		ScrollThreshold: constants.ScrollThreshold,
		TopZone:         constants.TopZone,
		ProximityZone:   constants.ProximityZone,
		HideDepth:       constants.HideDepth,
		CompactWidth:    constants.CompactWidth,
		SettleDelay:     constants.ScrollSettleDelay,
		AudioEnabled:    true,
	}
}

// Load loads configuration from environment variables
// Unset or malformed values keep their defaults
func Load() *Config {
	cfg := Default()

	if v := os.Getenv("CHROMEBAR_SCROLL_THRESHOLD"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.ScrollThreshold = val
		}
	}

	if v := os.Getenv("CHROMEBAR_TOP_ZONE"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.TopZone = val
		}
	}

	if v := os.Getenv("CHROMEBAR_PROXIMITY_ZONE"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.ProximityZone = val
		}
	}

	if v := os.Getenv("CHROMEBAR_HIDE_DEPTH"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.HideDepth = val
		}
	}

	if v := os.Getenv("CHROMEBAR_COMPACT_WIDTH"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.CompactWidth = val
		}
	}

	if v := os.Getenv("CHROMEBAR_SETTLE_MS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.SettleDelay = time.Duration(val) * time.Millisecond
		}
	}

	if v := os.Getenv("CHROMEBAR_AUDIO_ENABLED"); v != "" {
		if val, err := strconv.ParseBool(v); err == nil {
			cfg.AudioEnabled = val
		}
	}

	return cfg
}

// Params converts the configuration into controller parameters
func (c *Config) Params() bar.Params {
	return bar.Params{
		ScrollThreshold: c.ScrollThreshold,
		TopZone:         c.TopZone,
		ProximityZone:   c.ProximityZone,
		HideDepth:       c.HideDepth,
		CompactWidth:    c.CompactWidth,
		SettleDelay:     c.SettleDelay,
	}
}
