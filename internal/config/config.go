package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for jsonpack
type Config struct {
	Output OutputConfig `yaml:"output"`
	Dev    DevConfig    `yaml:"dev"`
}

// OutputConfig controls how conversion results are rendered
type OutputConfig struct {
	// Encoding is the textual alphabet for MessagePack output: "base64" or "hex"
	Encoding string `yaml:"encoding"`
	// Indent is the indent width for pretty-printed JSON output
	Indent int `yaml:"indent"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug   bool `yaml:"debug"`
	Verbose bool `yaml:"verbose"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Encoding: "base64",
			Indent:   2,
		},
		Dev: DevConfig{
			Debug:   false,
			Verbose: false,
		},
	}
}

// Validate checks the configuration for values the converter cannot honour
func (c *Config) Validate() error {
	switch c.Output.Encoding {
	case "base64", "hex":
	default:
		return fmt.Errorf("invalid output encoding %q: must be \"base64\" or \"hex\"", c.Output.Encoding)
	}
	if c.Output.Indent < 0 || c.Output.Indent > 8 {
		return fmt.Errorf("invalid indent width %d: must be between 0 and 8", c.Output.Indent)
	}
	return nil
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults so omitted keys keep their default values
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
	configNames := []string{".jsonpack.yml", ".jsonpack.yaml", "jsonpack.yml", "jsonpack.yaml"}

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

// LoadConfigWithCLI loads config with CLI argument precedence. CLI values
// override the config file only when they differ from the defaults, so a
// config file still takes effect when the flags are left alone.
func LoadConfigWithCLI(configPath, cliEncoding string, cliIndent int, cliDebug bool) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cliEncoding != "" && cliEncoding != "base64" {
		cfg.Output.Encoding = cliEncoding
	}
	if cliIndent != 2 {
		cfg.Output.Indent = cliIndent
	}
	if cliDebug {
		cfg.Dev.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
