package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ideahub/backend/internal/config"
	"github.com/ideahub/backend/internal/logging"
	"github.com/ideahub/backend/internal/repository"
)

// migrator is the subset of repository.Migrator the commands drive.
type migrator interface {
	Up() error
	Down() error
	Reset() error
	Version() (version uint, dirty bool, ok bool, err error)
	Close() error
}

type openFunc func(url string) (migrator, error)

func openMigrator(url string) (migrator, error) {
	m, err := repository.NewMigrator(url)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("load config failed", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	if err := newRootCmd(cfg, openMigrator).Execute(); err != nil {
		logging.Fatal("migrate failed", "error", err)
	}
}

func newRootCmd(cfg *config.Config, open openFunc) *cobra.Command {
	var dbURL string

	// withMigrator opens a migrator for the duration of fn.
	withMigrator := func(fn func(m migrator) error) error {
		url := cfg.DatabaseURL
		if dbURL != "" {
			url = dbURL
		}
		m, err := open(url)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := m.Close(); cerr != nil {
				slog.Warn("close migrator", "error", cerr)
			}
		}()
		return fn(m)
	}

	up := func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m migrator) error {
			if err := m.Up(); err != nil {
				return err
			}
			slog.Info("migrations applied")
			return nil
		})
	}

	root := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the IdeaHub database schema",
		Long: `Apply or roll back the embedded schema migrations.

Without a subcommand, pending migrations are applied (same as "up").`,
		SilenceUsage: true,
		RunE:         up,
	}
	root.PersistentFlags().StringVar(&dbURL, "database-url", "", "PostgreSQL URL (default: DATABASE_URL)")

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE:  up,
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every migration, dropping all tables",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(func(m migrator) error {
					if err := m.Down(); err != nil {
						return err
					}
					slog.Info("migrations rolled back")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Drop all tables and re-apply every migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(func(m migrator) error {
					if err := m.Reset(); err != nil {
						return err
					}
					slog.Info("schema reset")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(func(m migrator) error {
					v, dirty, ok, err := m.Version()
					if err != nil {
						return err
					}
					out := cmd.OutOrStdout()
					if !ok {
						_, err = fmt.Fprintln(out, "no migrations applied")
						return err
					}
					if dirty {
						_, err = fmt.Fprintf(out, "%d (dirty)\n", v)
						return err
					}
					_, err = fmt.Fprintln(out, v)
					return err
				})
			},
		},
	)
	return root
}
