package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"marquee/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			if err := config.WriteSample(target); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Edit the file to set tmdb.api_key (or export TMDB_API_KEY) for live catalog data.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			view := map[string]any{
				"data_dir":                cfg.Paths.DataDir,
				"log_dir":                 cfg.Paths.LogDir,
				"tmdb_base_url":           cfg.TMDB.BaseURL,
				"tmdb_language":           cfg.TMDB.Language,
				"tmdb_api_key":            maskKey(cfg.TMDB.APIKey),
				"omdb_base_url":           cfg.OMDB.BaseURL,
				"omdb_api_key":            maskKey(cfg.OMDB.APIKey),
				"cache_ttl_seconds":       cfg.Gateway.CacheTTLSeconds,
				"min_request_interval_ms": cfg.Gateway.MinRequestIntervalMS,
				"logging_format":          cfg.Logging.Format,
				"logging_level":           cfg.Logging.Level,
			}
			if asJSON {
				return writeJSON(cmd, view)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Data directory:   %s\n", cfg.Paths.DataDir)
			fmt.Fprintf(out, "Log directory:    %s\n", cfg.Paths.LogDir)
			fmt.Fprintf(out, "TMDB API key:     %s\n", maskKey(cfg.TMDB.APIKey))
			fmt.Fprintf(out, "OMDb API key:     %s\n", maskKey(cfg.OMDB.APIKey))
			fmt.Fprintf(out, "Cache TTL:        %s\n", cfg.CacheTTL())
			fmt.Fprintf(out, "Request interval: %s\n", cfg.MinRequestInterval())
			fmt.Fprintf(out, "Logging:          %s/%s\n", cfg.Logging.Format, cfg.Logging.Level)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}

func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return "****"
	}
	return key[:2] + strings.Repeat("*", len(key)-4) + key[len(key)-2:]
}
