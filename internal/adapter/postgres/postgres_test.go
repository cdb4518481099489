package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"testing"
)

// stubDriver serves the connection and engine tests without a running
// server. The DSN selects the behavior: "key" answers every query with one
// generated-key row, "empty" answers with no rows, "fail" refuses to prepare
// statements.
type stubDriver struct{}

func (stubDriver) Open(dsn string) (driver.Conn, error) {
	return &stubConn{mode: dsn}, nil
}

type stubConn struct{ mode string }

func (c *stubConn) Prepare(query string) (driver.Stmt, error) {
	if c.mode == "fail" {
		return nil, errors.New("statement refused")
	}
	return &stubStmt{mode: c.mode}, nil
}

func (c *stubConn) Close() error { return nil }

func (c *stubConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not supported")
}

type stubStmt struct{ mode string }

func (s *stubStmt) Close() error  { return nil }
func (s *stubStmt) NumInput() int { return -1 }

func (s *stubStmt) Exec(args []driver.Value) (driver.Result, error) {
	return driver.RowsAffected(0), nil
}

func (s *stubStmt) Query(args []driver.Value) (driver.Rows, error) {
	return &stubRows{mode: s.mode}, nil
}

type stubRows struct {
	mode string
	done bool
}

func (r *stubRows) Columns() []string { return []string{"id"} }
func (r *stubRows) Close() error      { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
	if r.mode == "empty" || r.done {
		return io.EOF
	}
	r.done = true
	dest[0] = int64(7)
	return nil
}

func init() {
	sql.Register("stubstore", stubDriver{})
}

func stubDB(mode string) *DB {
	return &DB{connStr: mode, driver: "stubstore"}
}

func TestConnReopensAfterClose(t *testing.T) {
	db := stubDB("key")
	ctx := context.Background()

	first, err := db.Conn(ctx)
	if err != nil {
		t.Fatalf("Conn: %v", err)
	}
	again, err := db.Conn(ctx)
	if err != nil {
		t.Fatalf("second Conn: %v", err)
	}
	if again != first {
		t.Error("expected repeated Conn to return the shared handle")
	}

	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	reopened, err := db.Conn(ctx)
	if err != nil {
		t.Fatalf("Conn after Close: %v", err)
	}
	if reopened == first {
		t.Error("expected a fresh handle after Close")
	}
}

func TestCloseWithoutOpen(t *testing.T) {
	db := stubDB("key")
	if err := db.Close(); err != nil {
		t.Errorf("Close before first Conn: %v", err)
	}
}
