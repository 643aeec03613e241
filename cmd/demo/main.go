// Package main runs the viewkit component gallery server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/viewkit/demo"
	"github.com/dmitrymomot/viewkit/pkg/config"
	"github.com/dmitrymomot/viewkit/pkg/environment"
	"github.com/dmitrymomot/viewkit/pkg/httpserver"
	"github.com/dmitrymomot/viewkit/pkg/logger"
	"github.com/dmitrymomot/viewkit/pkg/requestid"
	"github.com/dmitrymomot/viewkit/pkg/theme"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "viewkit-demo"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, buf[:n])
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		addr      string
		themePath string
		envName   string
		logLevel  string
		envFile   string
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "viewkit component gallery",
		Long: `Serves the viewkit component gallery: a page per component with live
examples and a schema-derived parameter reference, a misuse page showing the
validator's diagnostics, the interactive date picker, and the schemas JSON
API. Theme file edits stream to open pages without a reload.

Settings come from DEMO_* environment variables; flags override them.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, addr, themePath, envName, logLevel, envFile)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Address to listen on")
	cmd.Flags().StringVar(&themePath, "theme", "demo/theme.yaml", "Theme token file to load and watch")
	cmd.Flags().StringVar(&envName, "env", "development", "Runtime environment (development, staging, production)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&envFile, "env-file", "", "Extra .env file to read before loading config")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// loadConfig reads the environment first, then applies any flag the caller
// actually set on top.
func loadConfig(cmd *cobra.Command, addr, themePath, envName, logLevel, envFile string) (demo.Config, error) {
	var cfg demo.Config

	if envFile != "" {
		if err := config.LoadEnv(envFile); err != nil {
			return cfg, err
		}
	}
	if err := config.Load(&cfg); err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("addr") {
		cfg.Addr = addr
	}
	if cmd.Flags().Changed("theme") {
		cfg.ThemePath = themePath
	}
	if cmd.Flags().Changed("env") {
		cfg.Env = envName
	}
	if cmd.Flags().Changed("log-level") {
		var level slog.Level
		if err := level.UnmarshalText([]byte(logLevel)); err != nil {
			return cfg, fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

func run(ctx context.Context, cfg demo.Config) error {
	env := cfg.Environment()

	log := logger.New(
		logger.WithEnvironment(env, appName),
		logger.WithLevel(cfg.LogLevel),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			environment.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	themes, err := theme.NewHolder(cfg.ThemePath, log)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}
	defer themes.Stop()

	if err := themes.Watch(); err != nil {
		return fmt.Errorf("watch theme file: %w", err)
	}

	gallery := demo.New(cfg, themes, log)
	defer gallery.Close()

	log.Info("gallery starting",
		slog.String("addr", cfg.Addr),
		slog.String("env", env.String()),
		slog.String("theme", themes.Get().Name),
		slog.String("version", Version),
	)

	srv := httpserver.New(
		httpserver.WithAddr(cfg.Addr),
		httpserver.WithLogger(log),
	)
	return srv.Run(ctx, gallery.Handler())
}
