package config

import "fmt"

// Default configuration values.
const (
	defaultServiceName    = "curator"
	defaultServiceVersion = "1.0.0"
	defaultServicePort    = 8080
	defaultConcurrency    = 10
	defaultSource         = "hackernews"
	defaultMinRelevance   = 0.2
	defaultPoolSize       = 25
	defaultPublishCount   = 8
	defaultLogLevel       = "info"
	defaultLogFormat      = "json"
)

// Config holds all configuration for the curator service.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Curation CurationConfig `yaml:"curation"`
	Taxonomy TaxonomyConfig `yaml:"taxonomy"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Port        int    `env:"CURATOR_PORT"        yaml:"port"`
	Debug       bool   `env:"APP_DEBUG"           yaml:"debug"`
	Concurrency int    `env:"CURATOR_CONCURRENCY" yaml:"concurrency"`
	Source      string `env:"CURATOR_SOURCE"      yaml:"source"`
}

// CurationConfig holds the default pipeline parameters. Per-request
// overrides are still validated against the same bounds.
type CurationConfig struct {
	MinRelevance float64 `env:"CURATOR_MIN_RELEVANCE" yaml:"min_relevance"`
	PoolSize     int     `env:"CURATOR_POOL_SIZE"     yaml:"pool_size"`
	PublishCount int     `env:"CURATOR_PUBLISH_COUNT" yaml:"publish_count"`
}

// TaxonomyConfig points at an optional taxonomy file. An empty path
// means the built-in taxonomy.
type TaxonomyConfig struct {
	Path string `env:"CURATOR_TAXONOMY_PATH" yaml:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// Load reads configuration from path (empty path loads defaults plus
// environment overrides only), applies defaults and validates.
func Load(path string) (*Config, error) {
	cfg, err := loadFile[Config](path)
	if err != nil {
		return nil, err
	}

	setDefaults(cfg)
	// Env always wins, including over defaults.
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Service.Name == "" {
		cfg.Service.Name = defaultServiceName
	}
	if cfg.Service.Version == "" {
		cfg.Service.Version = defaultServiceVersion
	}
	if cfg.Service.Port == 0 {
		cfg.Service.Port = defaultServicePort
	}
	if cfg.Service.Concurrency == 0 {
		cfg.Service.Concurrency = defaultConcurrency
	}
	if cfg.Service.Source == "" {
		cfg.Service.Source = defaultSource
	}
	if cfg.Curation.MinRelevance == 0 {
		cfg.Curation.MinRelevance = defaultMinRelevance
	}
	if cfg.Curation.PoolSize == 0 {
		cfg.Curation.PoolSize = defaultPoolSize
	}
	if cfg.Curation.PublishCount == 0 {
		cfg.Curation.PublishCount = defaultPublishCount
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = defaultLogFormat
	}
}

// Validate rejects out-of-range values instead of silently clamping, so
// a bad deployment fails at startup rather than curating with surprise
// parameters.
func (c *Config) Validate() error {
	if c.Service.Port < 1 || c.Service.Port > 65535 {
		return fmt.Errorf("service port %d out of range", c.Service.Port)
	}
	if c.Service.Concurrency < 1 {
		return fmt.Errorf("concurrency must be positive, got %d", c.Service.Concurrency)
	}
	if c.Curation.MinRelevance < 0 || c.Curation.MinRelevance > 1 {
		return fmt.Errorf("min_relevance %v outside [0,1]", c.Curation.MinRelevance)
	}
	if c.Curation.PoolSize < 1 {
		return fmt.Errorf("pool_size must be positive, got %d", c.Curation.PoolSize)
	}
	if c.Curation.PublishCount < 1 {
		return fmt.Errorf("publish_count must be positive, got %d", c.Curation.PublishCount)
	}
	return nil
}
