package sqlite

import (
	"context"
	"database/sql"
	"time"

	"productivity-clock/internal/errors"
	"productivity-clock/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for snapshot storage
type Repository interface {
	Put(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (*Snapshot, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]*Snapshot, error)

	// Utility
	Close() error
}

// Options tunes the repository. Zero timeouts leave the caller's context untouched.
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
	Now          func() time.Time
}

// SnapshotRepository implements Repository on a single sqlite table
type SnapshotRepository struct {
	db   *sql.DB
	opts Options
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SnapshotRepository, error) {
	return NewWithOptions(dbPath, Options{})
}

// NewWithOptions creates a repository and runs pending migrations.
func NewWithOptions(dbPath string, opts Options) (*SnapshotRepository, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}
	// sqlite allows one writer, and every :memory: connection is a separate database.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(context.Background(), db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SnapshotRepository{db: db, opts: opts}, nil
}

// Close closes the database connection
func (r *SnapshotRepository) Close() error {
	return r.db.Close()
}

// Put inserts or replaces the value stored under key
func (r *SnapshotRepository) Put(ctx context.Context, key, value string) error {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	query := `
	INSERT INTO snapshots (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	return Execute(ctx, r.db, query, key, value, FormatTimeForDB(r.opts.Now()))
}

// Get retrieves the snapshot stored under key
func (r *SnapshotRepository) Get(ctx context.Context, key string) (*Snapshot, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `SELECT key, value, updated_at FROM snapshots WHERE key = ?`
	return QuerySingle(ctx, r.db, query, ScanSnapshot, "snapshot", key, key)
}

// Delete removes the snapshot stored under key
func (r *SnapshotRepository) Delete(ctx context.Context, key string) error {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	query := `DELETE FROM snapshots WHERE key = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "snapshot", key, key)
}

// List retrieves all snapshots ordered by key
func (r *SnapshotRepository) List(ctx context.Context) ([]*Snapshot, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `SELECT key, value, updated_at FROM snapshots ORDER BY key ASC`
	return QueryMultiple(ctx, r.db, query, ScanSnapshots, "snapshots")
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
