package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Moises-Pirela/calculator-task"
)

// Config holds the calculator shell configuration.
type Config struct {
	// LogLevel is the zerolog log level (trace, debug, info, warn, error).
	LogLevel string `yaml:"log-level"`
	// Format is the fmt verb used to print results.
	Format string `yaml:"format"`
	// Prompt is printed before reading each line. Empty means no prompt.
	Prompt string `yaml:"prompt"`
	// CarryLastResult enables continuing from the last result.
	CarryLastResult bool `yaml:"carry-last-result"`
	// StrictDivision makes division and modulo by zero errors.
	StrictDivision bool `yaml:"strict-division"`
	// Precedence overrides operator precedences. It must name every operator.
	Precedence map[string]int `yaml:"precedence"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		LogLevel:        "warn",
		Format:          "%g",
		CarryLastResult: true,
	}
}

// LoadConfig reads a YAML configuration file over the defaults. Keys absent
// from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides configuration from environment variables.
//
//	CALC_LOG_LEVEL — log level
//	CALC_FORMAT    — result formatting verb
func (c *Config) ApplyEnv() {
	c.LogLevel = envOrDefault("CALC_LOG_LEVEL", c.LogLevel)
	c.Format = envOrDefault("CALC_FORMAT", c.Format)
}

// Options converts the configuration to context options.
func (c Config) Options() ([]calculator.ContextOption, error) {
	opts := []calculator.ContextOption{
		calculator.CarryLastResult(c.CarryLastResult),
		calculator.StrictDivision(c.StrictDivision),
	}
	if c.Precedence != nil {
		prec, err := calculator.NewPrecedenceTable(c.Precedence)
		if err != nil {
			return nil, fmt.Errorf("precedence: %w", err)
		}
		opts = append(opts, calculator.WithPrecedence(prec))
	}
	return opts, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
