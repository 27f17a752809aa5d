package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()

	assert.Nil(t, cfg.Validate())
	assert.Equal(t, "3.3", cfg.ControlTower.LandingZoneVersion)
	assert.Equal(t, "4.0", cfg.ControlTower.BaselineVersion)
	assert.Len(t, cfg.Imaging.Choices, 4)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")

	require.Nil(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
region: eu-west-1
state:
  backend: bolt
  file: /tmp/ledger.db
poll:
  initialInterval: 2s
  maxInterval: 30s
  timeout: 10m
workers:
  frames: 2
controlTower:
  governedRegions: [eu-west-1, eu-central-1]
`
	require.Nil(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)

	require.Nil(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, StateBackendBolt, cfg.State.Backend)
	assert.Equal(t, 2*time.Second, cfg.Poll.InitialInterval)
	assert.Equal(t, 30*time.Second, cfg.Poll.MaxInterval)
	assert.Equal(t, 10*time.Minute, cfg.Poll.Timeout)
	assert.Equal(t, float64(2), cfg.Poll.Multiplier)
	assert.Equal(t, 2, cfg.Workers.Frames)
	assert.Equal(t, 8, cfg.Workers.Copy)
	assert.Equal(t, []string{"eu-west-1", "eu-central-1"}, cfg.ControlTower.GovernedRegions)
	assert.Equal(t, "Sandbox", cfg.ControlTower.SandboxOuName)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.Nil(t, os.WriteFile(path, []byte("workers:\n  copy: 0\n"), 0644))

	_, err := Load(path)

	assert.NotNil(t, err)
}

func TestLoadRejectsEmptyChoices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.Nil(t, os.WriteFile(path, []byte("imaging:\n  choices: []\n"), 0644))

	_, err := Load(path)

	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "at least one choice")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.NotNil(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.State.Backend = "redis" }},
		{"bolt without file", func(c *Config) { c.State.Backend = StateBackendBolt; c.State.File = "" }},
		{"zero interval", func(c *Config) { c.Poll.InitialInterval = 0 }},
		{"max below initial", func(c *Config) { c.Poll.MaxInterval = time.Second }},
		{"multiplier below one", func(c *Config) { c.Poll.Multiplier = 0.5 }},
		{"jitter above one", func(c *Config) { c.Poll.Jitter = 2 }},
		{"empty choice prefix", func(c *Config) { c.Imaging.Choices[0].Prefix = "" }},
		{"empty source bucket", func(c *Config) { c.Imaging.SourceBucket = "" }},
		{"no imaging choices", func(c *Config) { c.Imaging.Choices = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.NotNil(t, cfg.Validate())
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.Region = "us-east-2"

	require.Nil(t, Save(cfg, path))
	loaded, err := Load(path)

	require.Nil(t, err)
	assert.Equal(t, cfg, loaded)
}
