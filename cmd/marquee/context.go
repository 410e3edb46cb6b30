package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"marquee/internal/config"
	"marquee/internal/gateway"
	"marquee/internal/kvstore"
	"marquee/internal/logging"
	"marquee/internal/watchlist"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error

	gatewayOnce sync.Once
	gateway     *gateway.Gateway
	gatewayErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the CLI logger. Output goes to the log file so
// command stdout stays reserved for rendered results.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logPath := filepath.Join(cfg.Paths.LogDir, "marquee.log")
		logger, err := logging.New(logging.Options{
			Level:            cfg.Logging.Level,
			Format:           cfg.Logging.Format,
			OutputPaths:      []string{logPath},
			ErrorOutputPaths: []string{logPath},
		})
		if err != nil {
			c.loggerErr = fmt.Errorf("configure logging: %w", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) ensureGateway() (*gateway.Gateway, error) {
	c.gatewayOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.gatewayErr = err
			return
		}
		logger, err := c.ensureLogger()
		if err != nil {
			c.gatewayErr = err
			return
		}
		gw, err := gateway.New(cfg, logger)
		if err != nil {
			c.gatewayErr = fmt.Errorf("create metadata gateway: %w", err)
			return
		}
		c.gateway = gw
	})
	return c.gateway, c.gatewayErr
}

// withStore opens the watchlist store for the duration of fn. A file
// lock on the data directory keeps concurrent CLI invocations from
// interleaving writes.
func (c *commandContext) withStore(ctx context.Context, fn func(*watchlist.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}

	if err := unix.Access(cfg.Paths.DataDir, unix.W_OK); err != nil {
		return fmt.Errorf("data directory %s is not writable: %w", cfg.Paths.DataDir, err)
	}

	lock := flock.New(filepath.Join(cfg.Paths.DataDir, "marquee.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire data directory lock: %w", err)
	}
	if !ok {
		return errors.New("another marquee instance is using the data directory")
	}
	defer func() {
		_ = lock.Unlock()
	}()

	kv, err := kvstore.Open(filepath.Join(cfg.Paths.DataDir, "marquee.db"))
	if err != nil {
		return fmt.Errorf("open watchlist database: %w", err)
	}
	defer kv.Close()

	store, err := watchlist.NewStore(ctx, kv, logger)
	if err != nil {
		return fmt.Errorf("load watchlist: %w", err)
	}
	return fn(store)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
