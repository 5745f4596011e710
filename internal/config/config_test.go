package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "curator", cfg.Service.Name)
	assert.Equal(t, 8080, cfg.Service.Port)
	assert.Equal(t, 10, cfg.Service.Concurrency)
	assert.Equal(t, "hackernews", cfg.Service.Source)
	assert.InDelta(t, 0.2, cfg.Curation.MinRelevance, 1e-9)
	assert.Equal(t, 25, cfg.Curation.PoolSize)
	assert.Equal(t, 8, cfg.Curation.PublishCount)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Empty(t, cfg.Taxonomy.Path)
}

func TestLoadFromYAML(t *testing.T) {
	content := `service:
  name: curator-test
  port: 9090
  concurrency: 4
curation:
  min_relevance: 0.4
  pool_size: 10
  publish_count: 3
taxonomy:
  path: /etc/curator/taxonomy.yaml
logging:
  level: debug
  format: console
`
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "curator-test", cfg.Service.Name)
	assert.Equal(t, 9090, cfg.Service.Port)
	assert.Equal(t, 4, cfg.Service.Concurrency)
	assert.InDelta(t, 0.4, cfg.Curation.MinRelevance, 1e-9)
	assert.Equal(t, 10, cfg.Curation.PoolSize)
	assert.Equal(t, 3, cfg.Curation.PublishCount)
	assert.Equal(t, "/etc/curator/taxonomy.yaml", cfg.Taxonomy.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Missing fields still get defaults.
	assert.Equal(t, "1.0.0", cfg.Service.Version)
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	content := `service:
  port: 9090
curation:
  publish_count: 3
`
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("CURATOR_PORT", "7070")
	t.Setenv("CURATOR_PUBLISH_COUNT", "12")
	t.Setenv("CURATOR_MIN_RELEVANCE", "0.35")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Service.Port)
	assert.Equal(t, 12, cfg.Curation.PublishCount)
	assert.InDelta(t, 0.35, cfg.Curation.MinRelevance, 1e-9)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port too low", func(c *Config) { c.Service.Port = 0 }},
		{"port too high", func(c *Config) { c.Service.Port = 70000 }},
		{"zero concurrency", func(c *Config) { c.Service.Concurrency = 0 }},
		{"negative min_relevance", func(c *Config) { c.Curation.MinRelevance = -0.1 }},
		{"min_relevance above one", func(c *Config) { c.Curation.MinRelevance = 1.5 }},
		{"zero pool_size", func(c *Config) { c.Curation.PoolSize = 0 }},
		{"zero publish_count", func(c *Config) { c.Curation.PublishCount = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			setDefaults(cfg)
			require.NoError(t, cfg.Validate())

			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestGetConfigPath(t *testing.T) {
	assert.Equal(t, "config.yml", GetConfigPath("config.yml"))

	t.Setenv("CONFIG_PATH", "/srv/curator/config.yml")
	assert.Equal(t, "/srv/curator/config.yml", GetConfigPath("config.yml"))
}
