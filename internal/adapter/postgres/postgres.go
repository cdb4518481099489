// Package postgres implements the domain repositories using PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// DB owns the single shared connection used by every repository. The design
// assumes one active caller at a time; concurrent use is not supported.
type DB struct {
	connStr string
	driver  string
	sql     *sql.DB
}

// New returns a DB that opens its connection on first use.
func New(connStr string) *DB {
	return &DB{connStr: connStr, driver: "postgres"}
}

// Conn returns the shared handle, opening and pinging it on first use.
// Calling Conn again after Close opens a fresh handle.
func (d *DB) Conn(ctx context.Context) (*sql.DB, error) {
	if d.sql != nil {
		return d.sql, nil
	}

	s, err := sql.Open(d.driver, d.connStr)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	s.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.PingContext(pingCtx); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}

	d.sql = s
	return d.sql, nil
}

// Close releases the shared handle. Safe to call when never opened.
func (d *DB) Close() error {
	if d.sql == nil {
		return nil
	}
	err := d.sql.Close()
	d.sql = nil
	return err
}

// Migrate creates the schema. Column names follow the inherited database,
// including the keyless "user" table.
func (d *DB) Migrate(ctx context.Context) error {
	conn, err := d.Conn(ctx)
	if err != nil {
		return err
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS patient (
			pid BIGSERIAL PRIMARY KEY,
			firstname TEXT NOT NULL,
			surname TEXT NOT NULL,
			dateofbirth TEXT NOT NULL,
			carelevel TEXT NOT NULL,
			roomnumber TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS treatment (
			tid BIGSERIAL PRIMARY KEY,
			pid BIGINT NOT NULL REFERENCES patient (pid) ON DELETE CASCADE,
			treatment_date TEXT NOT NULL,
			"begin" TEXT NOT NULL,
			"end" TEXT NOT NULL,
			description TEXT NOT NULL,
			remark TEXT NOT NULL,
			cgid BIGINT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS caregiver (
			cgid BIGSERIAL PRIMARY KEY,
			firstname TEXT NOT NULL,
			surname TEXT NOT NULL,
			telnumber TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS "user" (
			username TEXT NOT NULL,
			password TEXT NOT NULL
		);`,
	}

	for _, stmt := range stmts {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Wipe drops all tables. Used by the seed tool before reloading demo data.
func (d *DB) Wipe(ctx context.Context) error {
	conn, err := d.Conn(ctx)
	if err != nil {
		return err
	}

	for _, table := range []string{"treatment", "patient", "caregiver", `"user"`} {
		if _, err := conn.ExecContext(ctx, "DROP TABLE IF EXISTS "+table+";"); err != nil {
			return fmt.Errorf("wipe %s: %w", table, err)
		}
	}
	return nil
}
