package db

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	_ "modernc.org/sqlite"
)

// NewSQLite abre el archivo de logs. SQLite serializa escrituras, así que se usa una sola conexión.
func NewSQLite(path string) (*sqlx.DB, error) {
	conn, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("connect sqlite: %w", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(5 * time.Minute)
	return conn, nil
}
