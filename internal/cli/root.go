package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/cardtally-go/internal/factory"
	"github.com/mcoot/cardtally-go/internal/model"
	redisstorage "github.com/mcoot/cardtally-go/internal/storage/redis"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "cardtally",
		Short: "Score tally for multi-round card games",
		Long: `cardtally keeps running score totals for table card games played over
many rounds. It tracks sessions and players, applies per-round score
changes, and produces leaderboards, streaks and shareable result links.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			app, err = newApp(cfg)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closer, ok := app.Storage.(io.Closer); ok {
				return closer.Close()
			}
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Storage backend: memory, sqlite, redis (env: CARDTALLY_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path (env: CARDTALLY_DB)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: CARDTALLY_REDIS_URL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newSessionCmd())
	rootCmd.AddCommand(newHomeCmd())
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newShareCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newPrefsCmd())

	return rootCmd
}

// newApp wires the application for the configured storage backend
func newApp(cfg *Config) (*factory.App, error) {
	logLevel := slog.LevelWarn
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
	}

	switch cfg.StorageType {
	case factory.StorageTypeSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0700); err != nil {
			return nil, err
		}
		factoryCfg.SQLitePath = cfg.DBPath
	case factory.StorageTypeRedis:
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	return factory.New(factoryCfg)
}

// resolveSession finds a session by id or case-insensitive name. With no
// argument it falls back to the currently selected session.
func resolveSession(ctx context.Context, arg string) (*model.Session, error) {
	if arg == "" {
		state, err := app.SessionController.State(ctx)
		if err != nil {
			return nil, err
		}
		if state.SessionID == "" {
			return nil, fmt.Errorf("no session selected; pass one or run 'cardtally session open'")
		}
		return app.SessionController.Get(ctx, state.SessionID)
	}

	if found, err := app.SessionController.Get(ctx, model.SessionID(arg)); err == nil {
		return found, nil
	}

	sessions, err := app.SessionController.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range sessions {
		if strings.EqualFold(s.Name, arg) {
			return s, nil
		}
	}
	return nil, model.ErrSessionNotFound
}

// resolvePlayer finds a player within a session by case-insensitive name
func resolvePlayer(session *model.Session, name string) (*model.Player, error) {
	if p := session.PlayerNamed(name); p != nil {
		return p, nil
	}
	return nil, model.ErrPlayerNotFound
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
