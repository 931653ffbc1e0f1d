package db_test

import (
	"context"
	"path/filepath"
	"testing"

	migrations "github.com/jrocha/techbook/db"
	dbpkg "github.com/jrocha/techbook/internal/db"
)

func TestMigrate(t *testing.T) {
	ctx := context.Background()
	d, err := dbpkg.New(ctx, filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	defer d.Close()

	if err := dbpkg.Migrate(ctx, d, migrations.Migrations); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	// all three tables plus the identifier sequence exist
	for _, table := range []string{"technicians", "technician_seq", "accounts", "service_feedback", "schema_migrations"} {
		var name string
		err := d.QueryRow(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Fatalf("expected table %s to exist: %v", table, err)
		}
	}

	// sequence row is seeded exactly once
	var seq int64
	if err := d.QueryRow(ctx, `SELECT seq FROM technician_seq`).Scan(&seq); err != nil {
		t.Fatalf("read sequence: %v", err)
	}
	if seq != 0 {
		t.Fatalf("expected fresh sequence 0 got %d", seq)
	}

	// running again is a no-op
	if err := dbpkg.Migrate(ctx, d, migrations.Migrations); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	var count int
	if err := d.QueryRow(ctx, `SELECT COUNT(1) FROM technician_seq`).Scan(&count); err != nil {
		t.Fatalf("count sequence rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one sequence row got %d", count)
	}

	var applied int
	if err := d.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations`).Scan(&applied); err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if applied != 3 {
		t.Fatalf("expected 3 applied migrations got %d", applied)
	}
}
