package config

import (
	"fmt"
	"strings"
)

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be > 0 (got %v)", c.Server.ShutdownTimeout)
	}

	if len(c.CORS.Origins()) == 0 {
		return fmt.Errorf("cors.allowed_origins must not be empty")
	}
	if c.CORS.MaxAge < 0 {
		return fmt.Errorf("cors.max_age must be >= 0 (got %d)", c.CORS.MaxAge)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Transcribe.validate(); err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	return nil
}

func (l LogConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error (got %q)", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}

func (t TranscribeConfig) validate() error {
	if t.MaxInputBytes <= 0 {
		return fmt.Errorf("max_input_bytes must be > 0 (got %d)", t.MaxInputBytes)
	}
	if t.BatchMaxItems <= 0 {
		return fmt.Errorf("batch_max_items must be > 0 (got %d)", t.BatchMaxItems)
	}
	if t.BatchWorkers < 0 {
		return fmt.Errorf("batch_workers must be >= 0 (got %d)", t.BatchWorkers)
	}
	return nil
}
