package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config models accesslint.yml.
type Config struct {
	Server struct {
		Addr     string `yaml:"addr"`
		BasePath string `yaml:"base_path"`
	} `yaml:"server"`
	Auth struct {
		JWTSecret      string `yaml:"jwt_secret"`
		AllowAnonymous bool   `yaml:"allow_anonymous"`
	} `yaml:"auth"`
	Audit struct {
		Enabled bool `yaml:"enabled"`
		Keep    int  `yaml:"keep"`
	} `yaml:"audit"`
	Report struct {
		DefaultTitle string `yaml:"default_title"`
	} `yaml:"report"`
}

// Load reads and validates config from workspace.
func Load(workspace string) (*Config, error) {
	path := Path(workspace)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config %s not found; create it with al config init", path)
		}
		return nil, err
	}
	return FromYAML(data)
}

// Validate ensures the config meets required structure.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("config.server.addr is required")
	}
	if c.Audit.Keep < 0 {
		return fmt.Errorf("config.audit.keep must not be negative")
	}
	if !c.Auth.AllowAnonymous && c.Auth.JWTSecret == "" {
		return fmt.Errorf("config.auth.jwt_secret is required unless allow_anonymous is set")
	}
	return nil
}

// Path returns the config file path for a workspace.
func Path(workspace string) string {
	if workspace == "" {
		workspace = "."
	}
	return filepath.Join(workspace, "accesslint.yml")
}

// GenerateDefault returns default config YAML.
func GenerateDefault() string {
	return defaultTemplate
}

// LoadOptional returns nil,nil if the config file does not exist.
func LoadOptional(workspace string) (*Config, error) {
	path := Path(workspace)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return FromYAML(data)
}

// Default returns the default Config struct.
func Default() *Config {
	var cfg Config
	_ = yaml.NewDecoder(bytes.NewBufferString(defaultTemplate)).Decode(&cfg)
	return &cfg
}

// FromYAML parses and validates config from raw YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FromFile reads YAML config from the given path.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromYAML(data)
}

const defaultTemplate = `server:
  addr: 127.0.0.1:8787
  base_path: /api/v1

auth:
  # HS256 secret for bearer tokens. Leave empty with allow_anonymous: true
  # for local use.
  jwt_secret: ""
  allow_anonymous: true

audit:
  enabled: true
  # Number of audit records retained per operation, 0 keeps everything.
  keep: 0

report:
  default_title: Accessibility Report
`
