package dspfedit

import (
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Config represents the dspf-edit configuration
type Config struct {
	// SequenceAreaWidth is the leading region reserved on every source
	// line before the fixed content columns begin. Pointer to distinguish
	// between unset (standard width 6) and an explicit 0 for copy sources
	// without sequence numbers.
	SequenceAreaWidth *int           `yaml:"sequence_area_width"`
	Fallback          FallbackConfig `yaml:"fallback"`
	Output            OutputConfig   `yaml:"output"`
}

// SequenceWidth returns the configured sequence area width, defaulting to
// the standard source member width when unset.
func (c *Config) SequenceWidth() int {
	if c.SequenceAreaWidth == nil {
		return 6
	}

	return *c.SequenceAreaWidth
}

// FallbackConfig is the display geometry assumed when a document carries
// no usable sizing keyword.
type FallbackConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// OutputConfig represents default output settings for the CLI
type OutputConfig struct {
	Format string `yaml:"format"`
}

// maxSequenceAreaWidth bounds the configurable leading region; anything
// wider would eat into the fixed content columns of every line.
const maxSequenceAreaWidth = 12

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	if err := loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Return default configuration if the file doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return getDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)
	expandConfigEnvVars(&config)

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateConfig validates the configuration for common errors
func validateConfig(config *Config) error {
	if w := config.SequenceWidth(); w < 0 || w > maxSequenceAreaWidth {
		return fmt.Errorf("%w: sequence_area_width must be between 0 and %d, got %d", ErrConfigValidation, maxSequenceAreaWidth, w)
	}

	if config.Fallback.Rows <= 0 {
		return fmt.Errorf("%w: fallback.rows must be positive, got %d", ErrConfigValidation, config.Fallback.Rows)
	}

	if config.Fallback.Columns <= 0 {
		return fmt.Errorf("%w: fallback.columns must be positive, got %d", ErrConfigValidation, config.Fallback.Columns)
	}

	validFormats := map[string]bool{
		"text": true,
		"yaml": true,
	}
	if !validFormats[config.Output.Format] {
		return fmt.Errorf("%w: output.format '%s' is invalid: must be one of text, yaml", ErrConfigValidation, config.Output.Format)
	}

	return nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)

	return config
}

// applyDefaults fills in defaults for missing values
func applyDefaults(config *Config) {
	if config.Fallback.Rows == 0 {
		config.Fallback.Rows = 24
	}

	if config.Fallback.Columns == 0 {
		config.Fallback.Columns = 80
	}

	if config.Output.Format == "" {
		config.Output.Format = "text"
	}
}

// loadEnvFiles loads a .env file from the current directory when present
func loadEnvFiles() error {
	if fileExists(".env") {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	// Pattern for ${VAR} format
	re1 := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re1.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1] // Remove ${ and }
		return os.Getenv(varName)
	})

	// Pattern for $VAR format (word boundaries)
	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:] // Remove $
		return os.Getenv(varName)
	})

	return s
}

// expandConfigEnvVars expands environment variables in string settings
func expandConfigEnvVars(config *Config) {
	config.Output.Format = expandEnvVars(config.Output.Format)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
