// Package migrate applies the embedded goose migrations.
package migrate

import (
	"context"
	"database/sql"
	"strconv"

	"courier/internal/errors"
	"courier/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
)

// Command is a goose command supported by Run.
type Command string

const (
	CommandUp      Command = "up"
	CommandDown    Command = "down"
	CommandStatus  Command = "status"
	CommandVersion Command = "version"
	CommandRedo    Command = "redo"
)

func init() {
	goose.SetBaseFS(migrations.FS)
}

func setup() error {
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "set goose dialect")
	}

	return nil
}

// Run executes a goose command against db using the embedded migrations.
func Run(ctx context.Context, db *sql.DB, command Command, args ...string) error {
	if db == nil {
		return errors.New("db is required")
	}
	if err := setup(); err != nil {
		return err
	}

	if err := goose.RunContext(ctx, string(command), db, ".", args...); err != nil {
		return errors.Wrapf(err, "goose %s", command)
	}

	return nil
}

// MigrateTo moves the schema up or down to targetVersion.
func MigrateTo(ctx context.Context, db *sql.DB, targetVersion string) error {
	target, err := strconv.ParseInt(targetVersion, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid version %q (expected YYYYMMDDHHMMSS)", targetVersion)
	}
	if err := setup(); err != nil {
		return err
	}

	current, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return errors.Wrap(err, "get db version")
	}

	switch {
	case current == target:
		return nil
	case current < target:
		return errors.Wrapf(goose.UpToContext(ctx, db, ".", target), "goose up-to %d", target)
	default:
		return errors.Wrapf(goose.DownToContext(ctx, db, ".", target), "goose down-to %d", target)
	}
}

// Versions lists the embedded migration versions in apply order.
func Versions() ([]int64, error) {
	found, err := goose.CollectMigrations(".", 0, goose.MaxVersion)
	if err != nil {
		return nil, errors.Wrap(err, "collect migrations")
	}

	versions := make([]int64, 0, len(found))
	for _, m := range found {
		versions = append(versions, m.Version)
	}

	return versions, nil
}
