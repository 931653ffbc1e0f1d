package db_test

import (
	"context"
	"path/filepath"
	"testing"

	dbpkg "github.com/jrocha/techbook/internal/db"
)

func TestNewAndExec(t *testing.T) {
	ctx := context.Background()
	d, err := dbpkg.New(ctx, filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	defer d.Close()

	if _, err := d.Exec(ctx, `CREATE TABLE t (id INTEGER PRIMARY KEY, v TEXT)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	res, err := d.Exec(ctx, `INSERT INTO t (v) VALUES (?)`, "hello")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil || id != 1 {
		t.Fatalf("last insert id: %d err=%v", id, err)
	}

	var v string
	if err := d.QueryRow(ctx, `SELECT v FROM t WHERE id = ?`, id).Scan(&v); err != nil {
		t.Fatalf("query row: %v", err)
	}
	if v != "hello" {
		t.Fatalf("expected hello got %q", v)
	}

	rows, err := d.QueryRows(ctx, `SELECT v FROM t`)
	if err != nil {
		t.Fatalf("query rows: %v", err)
	}
	defer rows.Close()
	n := 0
	for rows.Next() {
		n++
	}
	if n != 1 {
		t.Fatalf("expected 1 row got %d", n)
	}
}

func TestNew_BadPath(t *testing.T) {
	ctx := context.Background()
	if _, err := dbpkg.New(ctx, filepath.Join(t.TempDir(), "missing-dir", "x", "test.db"), nil); err == nil {
		t.Fatalf("expected error for unreachable database path")
	}
}
