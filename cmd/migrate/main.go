package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-isme/udaan-api/internal/repository"
	"github.com/noah-isme/udaan-api/internal/seed"
	"github.com/noah-isme/udaan-api/migrations"
	"github.com/noah-isme/udaan-api/pkg/config"
	"github.com/noah-isme/udaan-api/pkg/database"
	"github.com/noah-isme/udaan-api/pkg/logger"
)

type session struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the Udaan database schema and seed data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		gooseCmd("up", "Migrate to the latest version", goose.Up),
		gooseCmd("up-one", "Migrate one version up", goose.UpByOne),
		gooseCmd("down", "Roll back one version", goose.Down),
		gooseCmd("status", "Show migration status", goose.Status),
		gooseCmd("version", "Show current version", goose.Version),
		gooseCmd("reset", "Roll back all migrations", goose.Reset),
		seedCmd(),
	)
	return root
}

func gooseCmd(use, short string, fn func(db *sql.DB, dir string, opts ...goose.OptionsFunc) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.close()

			if err := migrations.Setup(); err != nil {
				return err
			}
			if err := fn(rt.db.DB, "."); err != nil {
				return fmt.Errorf("%s: %w", use, err)
			}
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upsert scholarships from a YAML fixture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := seed.LoadFile(file)
			if err != nil {
				return err
			}

			rt, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.close()

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			res, err := seed.Apply(ctx, repository.NewScholarshipRepository(rt.db, nil), rows, rt.logger)
			if err != nil {
				return fmt.Errorf("seed after %d rows: %w", res.Written(), err)
			}
			rt.logger.Sugar().Infow("seed complete", "file", file, "inserted", res.Inserted, "updated", res.Updated)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "seeds/scholarships.yaml", "path to the YAML fixture")
	return cmd
}

func open(ctx context.Context) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return &session{db: db, logger: log}, nil
}

func (s *session) close() {
	_ = s.db.Close()
	_ = s.logger.Sync()
}
