package sqlite3

import (
	"database/sql"
	"embed"
	"errors"

	embedded "github.com/assodanse/assoserver"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

func UpServerDB(db *sql.DB) error {
	return up(db, embedded.ServerMigrations, "migrations/server", "site")
}

func UpAuthDB(db *sql.DB) error {
	return up(db, embedded.AuthMigrations, "migrations/auth", "auth")
}

func UpBotDB(db *sql.DB) error {
	return up(db, embedded.BotMigrations, "migrations/bot", "bot")
}

func up(db *sql.DB, fs embed.FS, path string, name string) error {
	sourceDriver, err := iofs.New(fs, path)
	if err != nil {
		return err
	}
	databaseDriver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", sourceDriver, name, databaseDriver)
	if err != nil {
		return err
	}
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
