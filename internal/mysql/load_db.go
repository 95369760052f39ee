package mysql

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
)

//go:embed users.sql sessions.sql
var schema embed.FS

var schemaFiles = []string{"users.sql", "sessions.sql"}

func LoadDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot connect to mysql: %w", err)
	}
	return db, nil
}

// Migrate creates the users and sessions tables when missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, file := range schemaFiles {
		query, err := schema.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		if _, err := db.ExecContext(ctx, string(query)); err != nil {
			return fmt.Errorf("failed to execute %s: %w", file, err)
		}
	}
	return nil
}
