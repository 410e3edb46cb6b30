package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable. Provider API keys are
// deliberately not required: without them the gateway serves its
// offline sample catalog.
func (c *Config) Validate() error {
	if err := c.validateGateway(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateGateway() error {
	if c.Gateway.CacheTTLSeconds < 0 {
		return errors.New("gateway.cache_ttl_seconds must not be negative")
	}
	if c.Gateway.MinRequestIntervalMS < 0 {
		return errors.New("gateway.min_request_interval_ms must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
