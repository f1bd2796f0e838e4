package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported output formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Supported key cases for rendered object keys
const (
	KeyCaseNone       = "none"
	KeyCaseSnake      = "snake"
	KeyCaseCamel      = "camel"
	KeyCaseLowerCamel = "lower-camel"
	KeyCaseKebab      = "kebab"
)

var (
	formats  = []string{FormatJSON, FormatYAML}
	keyCases = []string{KeyCaseNone, KeyCaseSnake, KeyCaseCamel, KeyCaseLowerCamel, KeyCaseKebab}
)

// Config represents the complete configuration for safejson
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Dev      DevConfig      `yaml:"dev"`
}

// OutputConfig controls how navigated values are rendered
type OutputConfig struct {
	Format  string `yaml:"format"`
	Indent  bool   `yaml:"indent"`
	KeyCase string `yaml:"key_case"`
}

// DefaultsConfig holds the fallback returned for a field when --default is
// not given on the command line
type DefaultsConfig struct {
	String string  `yaml:"string"`
	Int    int32   `yaml:"int"`
	Int64  int64   `yaml:"int64"`
	Float  float64 `yaml:"float"`
	Bool   bool    `yaml:"bool"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format:  FormatJSON,
			Indent:  false,
			KeyCase: KeyCaseNone,
		},
		Defaults: DefaultsConfig{},
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".safejson.yml", ".safejson.yaml", "safejson.yml", "safejson.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Validate normalizes the output section and rejects unknown values
func (c *Config) Validate() error {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = FormatJSON
	}
	if !slices.Contains(formats, c.Output.Format) {
		return fmt.Errorf("unknown output format '%s' (want one of %s)", c.Output.Format, strings.Join(formats, ", "))
	}

	c.Output.KeyCase = strings.ToLower(strings.TrimSpace(c.Output.KeyCase))
	if c.Output.KeyCase == "" {
		c.Output.KeyCase = KeyCaseNone
	}
	if !slices.Contains(keyCases, c.Output.KeyCase) {
		return fmt.Errorf("unknown key case '%s' (want one of %s)", c.Output.KeyCase, strings.Join(keyCases, ", "))
	}

	return nil
}

// LoadConfigWithCLI loads config with CLI argument precedence.
// Empty strings and false flags leave the file (or default) value in place.
func LoadConfigWithCLI(configPath, cliFormat, cliKeyCase string, cliIndent, cliDebug bool) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cliFormat != "" {
		cfg.Output.Format = cliFormat
	}
	if cliKeyCase != "" {
		cfg.Output.KeyCase = cliKeyCase
	}
	if cliIndent {
		cfg.Output.Indent = true
	}
	if cliDebug {
		cfg.Dev.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
