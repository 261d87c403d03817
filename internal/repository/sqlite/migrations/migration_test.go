package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&count)
	require.NoError(t, err)
	return count == 1
}

func TestLoadMigrations(t *testing.T) {
	migrations, err := LoadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "000001_create_snapshots", migrations[0].Name)
	assert.Contains(t, migrations[0].Up, "CREATE TABLE IF NOT EXISTS snapshots")
	assert.Contains(t, migrations[0].Down, "DROP TABLE IF EXISTS snapshots")

	for i := 1; i < len(migrations); i++ {
		assert.Less(t, migrations[i-1].Version, migrations[i].Version)
	}
}

func TestRunMigrations_CreatesSnapshotsTable(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	require.NoError(t, RunMigrations(ctx, db))
	assert.True(t, tableExists(t, db, "snapshots"))

	applied, err := AppliedVersions(ctx, db)
	require.NoError(t, err)
	assert.True(t, applied[1])
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	require.NoError(t, RunMigrations(ctx, db))
	_, err := db.Exec("INSERT INTO snapshots (key, value, updated_at) VALUES ('timer', '{}', '2024-05-01T09:00:00Z')")
	require.NoError(t, err)

	require.NoError(t, RunMigrations(ctx, db))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&count))
	assert.Equal(t, 1, count, "re-running migrations keeps existing rows")
}

func TestRollback(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, Rollback(ctx, db))

	assert.False(t, tableExists(t, db, "snapshots"))
	applied, err := AppliedVersions(ctx, db)
	require.NoError(t, err)
	assert.False(t, applied[1])

	require.NoError(t, RunMigrations(ctx, db))
	assert.True(t, tableExists(t, db, "snapshots"))
}

func TestRunMigrations_DirtyDatabase(t *testing.T) {
	db := openMemoryDB(t)

	_, err := db.Exec(`
		CREATE TABLE migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			dirty BOOLEAN DEFAULT FALSE
		)
	`)
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO migrations (version, dirty) VALUES (1, TRUE)")
	require.NoError(t, err)

	err = RunMigrations(context.Background(), db)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "database is in a dirty state"))
	assert.Contains(t, err.Error(), "failed migration(s): [1]")
}

func TestRunMigrations_FileDatabaseKeepsExistingData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "clock.db")
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE notes (id INTEGER PRIMARY KEY, value TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO notes (value) VALUES ('original data')`)
	require.NoError(t, err)

	require.NoError(t, RunMigrations(context.Background(), db))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM notes").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestExtractVersion(t *testing.T) {
	assert.Equal(t, 1, extractVersion("000001_create_snapshots.up.sql"))
	assert.Equal(t, 12, extractVersion("000012_add_index.up.sql"))
	assert.Equal(t, 0, extractVersion("readme.sql"))
}
