package postgresql

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"materieelbeheer/migrations"
)

// Migrate runs the embedded goose migrations against the configured DSN.
func Migrate(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("migraties: kon database niet openen: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migraties: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migraties: %w", err)
	}
	return nil
}
