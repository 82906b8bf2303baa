package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Routing policies for the conversation shell.
const (
	RoutingBoth   = "both"   // every turn searches both collections
	RoutingIntent = "intent" // keyword-detected intent, sticky across turns
)

// Config holds the application configuration.
type Config struct {
	HTTP    HTTPConfig      `yaml:"http"`
	Data    DataConfig      `yaml:"data"`
	Scoring ScoringSettings `yaml:"scoring"`
	Chat    ChatConfig      `yaml:"chat"`
	Logging LoggingConfig   `yaml:"logging"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int   `yaml:"port"`
	MaxBodyBytes    int64 `yaml:"max_body_bytes"`
	ShutdownTimeout int   `yaml:"shutdown_timeout_sec"`
}

// DataConfig points at the record sources.
type DataConfig struct {
	CodePath         string `yaml:"kode_path"`       // JSON array of classification codes
	DocumentTypePath string `yaml:"jenis_path"`      // JSON array of document types
	DictionaryPath   string `yaml:"dictionary_path"` // optional extra stemmer root words, one per line
}

// ChatConfig holds conversation shell settings.
type ChatConfig struct {
	Routing  string `yaml:"routing"` // both (default) or intent
	Greeting string `yaml:"greeting"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Env   string `yaml:"env"`   // prod, dev or local (default: local)
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns a configuration with every default applied.
func Default() Config {
	var cfg Config
	cfg.ApplyDefaults()
	return cfg
}

// Load reads configuration from a YAML file.
// A missing file is not an error: defaults are returned instead.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(filepath.Clean(path))
	switch {
	case errors.Is(err, os.ErrNotExist):
		// fall through with zero config
	case err != nil:
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		data = expandEnvVars(data)
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.Port <= 0 {
		c.HTTP.Port = 8080
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		c.HTTP.MaxBodyBytes = 10 << 20
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		c.HTTP.ShutdownTimeout = 10
	}
	if c.Data.CodePath == "" {
		c.Data.CodePath = "db_kode.json"
	}
	if c.Data.DocumentTypePath == "" {
		c.Data.DocumentTypePath = "db_jenis.json"
	}
	if c.Chat.Routing == "" {
		c.Chat.Routing = RoutingBoth
	}
	if c.Chat.Greeting == "" {
		c.Chat.Greeting = "Halo! Silakan tanya tentang **Kode Klasifikasi** atau **Jenis Surat**."
	}
	if c.Logging.Env == "" {
		c.Logging.Env = "local"
	}
	c.Scoring.ApplyDefaults()
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	switch c.Chat.Routing {
	case RoutingBoth, RoutingIntent:
	default:
		return fmt.Errorf("chat.routing must be %q or %q, got %q", RoutingBoth, RoutingIntent, c.Chat.Routing)
	}
	if problems := c.Scoring.Validate(); len(problems) > 0 {
		return fmt.Errorf("scoring: %s", strings.Join(problems, "; "))
	}
	return nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
