package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"courier/config"
	"courier/internal/domain/lifecycle"
	logs "courier/internal/infra/log"
	"courier/internal/infra/persistence/migrate"
	"courier/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	os.Exit(migrateMain())
}

func migrateMain() int {
	cmd := flag.String("cmd", "up", "migration command: up|down|status|redo|version|list")
	version := flag.String("version", "", "target version (YYYYMMDDHHMMSS) for -cmd=version")
	flag.Parse()

	// Listing needs no database.
	if *cmd == "list" {
		versions, err := migrate.Versions()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to list migrations: %v\n", err)

			return 1
		}
		for _, v := range versions {
			fmt.Println(v)
		}

		return 0
	}

	var (
		db     *gorm.DB
		logger *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Populate(&db, &logger),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := app.Start(startCtx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)

		return 1
	}

	code := run(context.Background(), db, logger, migrate.Command(*cmd), *version)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer stopCancel()

	if err := app.Stop(stopCtx); err != nil {
		logger.Error("Failed to close database", slog.Any("error", err))
	}

	return code
}

func run(ctx context.Context, db *gorm.DB, logger *slog.Logger, cmd migrate.Command, version string) int {
	logger = logger.With(slog.String("cmd", string(cmd)))

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get sql database", slog.Any("error", err))

		return 1
	}

	switch cmd {
	case migrate.CommandUp, migrate.CommandDown, migrate.CommandStatus, migrate.CommandRedo:
		err = migrate.Run(ctx, sqlDB, cmd)
	case migrate.CommandVersion:
		if version == "" {
			fmt.Fprintln(os.Stderr, "missing -version for version command")

			return 1
		}
		err = migrate.MigrateTo(ctx, sqlDB, version)
	default:
		fmt.Fprintln(os.Stderr, "unknown -cmd value:", cmd)

		return 1
	}

	if err != nil {
		logger.Error("Migration failed", slog.Any("error", err))

		return 1
	}

	logger.Info("Migration finished")

	return 0
}
