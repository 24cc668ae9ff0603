package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Lock de pg_advisory_xact_lock para que dos procesos no migren a la vez.
const migrationLockID = int64(0x76657463)

// Migration es un archivo .sql embebido; Version es el prefijo antes del primer "_".
type Migration struct {
	Version string
	Name    string
	SQL     string
}

// LoadMigrations lee los .sql embebidos en orden lexicográfico.
func LoadMigrations() ([]Migration, error) {
	return loadMigrations(migrationsFS, "migrations")
}

func loadMigrations(fsys fs.FS, dir string) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	out := make([]Migration, 0, len(entries))
	seen := map[string]string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".sql") {
			continue
		}
		version := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		if i := strings.Index(version, "_"); i > 0 {
			version = version[:i]
		}
		if prev, dup := seen[version]; dup {
			return nil, fmt.Errorf("duplicate migration version %q in %s and %s", version, prev, e.Name())
		}
		seen[version] = e.Name()

		b, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		out = append(out, Migration{Version: version, Name: e.Name(), SQL: string(b)})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

// Migrate aplica las migraciones pendientes en una sola transacción y devuelve
// los nombres aplicados (vacío si ya estaba al día).
func Migrate(ctx context.Context, db DB, migs []Migration) ([]string, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, mapErr("begin", err)
	}
	defer rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, migrationLockID); err != nil {
		return nil, mapErr("advisory lock", err)
	}

	if _, err := tx.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version     TEXT PRIMARY KEY,
			applied_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`); err != nil {
		return nil, mapErr("create schema_migrations", err)
	}

	rows, err := tx.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, mapErr("list applied migrations", err)
	}
	applied := map[string]struct{}{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			rows.Close()
			return nil, mapErr("scan migration version", err)
		}
		applied[v] = struct{}{}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, mapErr("list applied migrations", err)
	}

	done := make([]string, 0)
	for _, m := range migs {
		if _, ok := applied[m.Version]; ok {
			continue
		}
		if _, err := tx.Exec(ctx, m.SQL); err != nil {
			return nil, mapErr("apply "+m.Name, err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, m.Version); err != nil {
			return nil, mapErr("record "+m.Name, err)
		}
		done = append(done, m.Name)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, mapErr("commit", err)
	}
	return done, nil
}
