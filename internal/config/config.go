// Package config provides environment-based configuration for the resume builder.
// All keys are read once at startup; values are immutable afterwards.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults for optional configuration keys.
const (
	DefaultModel       = "google/flan-t5-large"
	DefaultAPIURL      = "https://api-inference.huggingface.co/models"
	DefaultTimeout     = 30 * time.Second
	DefaultMaxLength   = 500
	DefaultTemperature = 0.7
	DefaultTemplate    = "Professional"
	DefaultFont        = "Arial"
	DefaultFontSize    = 12.0
	DefaultTitleSize   = 24.0
)

// Config holds the runtime configuration shared by the server and the
// interactive form. The API key is the only key without a default; leaving it
// unset disables text generation but nothing else.
type Config struct {
	APIKey      string        // HF_API_KEY
	Model       string        // MODEL_NAME
	APIURL      string        // HF_API_URL (base URL of the inference endpoint)
	Timeout     time.Duration // API_TIMEOUT, in seconds
	MaxLength   int           // MAX_TEXT_LENGTH, hard ceiling on generated text
	Temperature float64       // DEFAULT_TEMPERATURE
	Template    string        // DEFAULT_TEMPLATE
	Font        string        // PDF_FONT
	FontSize    float64       // PDF_FONT_SIZE
	TitleSize   float64       // PDF_TITLE_SIZE
}

// Load reads configuration from the environment, applying defaults for any
// key that is unset. Malformed numeric values are reported as errors rather
// than silently replaced.
func Load() (*Config, error) {
	cfg := &Config{
		APIKey:   os.Getenv("HF_API_KEY"),
		Model:    envString("MODEL_NAME", DefaultModel),
		APIURL:   envString("HF_API_URL", DefaultAPIURL),
		Template: envString("DEFAULT_TEMPLATE", DefaultTemplate),
		Font:     envString("PDF_FONT", DefaultFont),
	}

	timeoutSecs, err := envInt("API_TIMEOUT", int(DefaultTimeout/time.Second))
	if err != nil {
		return nil, err
	}
	cfg.Timeout = time.Duration(timeoutSecs) * time.Second

	if cfg.MaxLength, err = envInt("MAX_TEXT_LENGTH", DefaultMaxLength); err != nil {
		return nil, err
	}
	if cfg.Temperature, err = envFloat("DEFAULT_TEMPERATURE", DefaultTemperature); err != nil {
		return nil, err
	}
	if cfg.FontSize, err = envFloat("PDF_FONT_SIZE", DefaultFontSize); err != nil {
		return nil, err
	}
	if cfg.TitleSize, err = envFloat("PDF_TITLE_SIZE", DefaultTitleSize); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("config error: 'API_TIMEOUT' must be positive")
	}
	if c.MaxLength <= 0 {
		return fmt.Errorf("config error: 'MAX_TEXT_LENGTH' must be positive")
	}
	if c.Temperature < 0 || c.Temperature > 1 {
		return fmt.Errorf("config error: 'DEFAULT_TEMPERATURE' must be between 0.0 and 1.0")
	}
	if c.FontSize <= 0 || c.TitleSize <= 0 {
		return fmt.Errorf("config error: PDF font sizes must be positive")
	}
	return nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config error: invalid integer for %s: %q", key, v)
	}
	return n, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config error: invalid number for %s: %q", key, v)
	}
	return f, nil
}
