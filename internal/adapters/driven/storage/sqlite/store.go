package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/packlane-labs/packtrak-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/packlane-labs/packtrak-cli/internal/core/domain"
	"github.com/packlane-labs/packtrak-cli/internal/core/ports/driven"
)

// Store is the SQLite-backed storage shared by both app variants.
// Variant-scoped QueueStore views are obtained through QueueStore().
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.packtrak/data/queue.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("%w: getting home directory: %w", domain.ErrStorageUnavailable, err)
		}
		dataDir = filepath.Join(home, ".packtrak", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %w", domain.ErrStorageUnavailable, err)
	}

	dbPath := filepath.Join(dataDir, "queue.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %w", domain.ErrStorageUnavailable, err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: running migrations: %w", domain.ErrStorageUnavailable, err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// QueueStore returns a QueueStore scoped to the variant's namespace.
func (s *Store) QueueStore(variant domain.Variant) driven.QueueStore {
	return &queueStore{store: s, namespace: variant.Namespace}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Queue Store ====================

// queueStore implements driven.QueueStore for one variant namespace.
type queueStore struct {
	store     *Store
	namespace string
}

var _ driven.QueueStore = (*queueStore)(nil)

// Append sanitizes and persists a new pending scan.
// Empty input after sanitization is a silent no-op.
func (q *queueStore) Append(ctx context.Context, parcelNumber string) error {
	sanitized := domain.SanitizeParcelNumber(parcelNumber)
	if sanitized == "" {
		return nil
	}

	_, err := q.store.db.ExecContext(ctx, `
		INSERT INTO pending_scans (local_key, namespace, parcel_number, stored_at)
		VALUES (?, ?, ?, ?)
	`, uuid.New().String(), q.namespace, sanitized, time.Now().UTC())

	if err != nil {
		return fmt.Errorf("appending pending scan: %w", err)
	}
	return nil
}

// ListPending returns all records for this namespace in insertion order.
func (q *queueStore) ListPending(ctx context.Context) ([]domain.PendingScan, error) {
	rows, err := q.store.db.QueryContext(ctx, `
		SELECT local_key, parcel_number, stored_at
		FROM pending_scans WHERE namespace = ?
		ORDER BY seq
	`, q.namespace)
	if err != nil {
		return nil, fmt.Errorf("querying pending scans: %w", err)
	}
	defer rows.Close()

	var records []domain.PendingScan //nolint:prealloc // size unknown from query
	for rows.Next() {
		var record domain.PendingScan
		var storedAt sql.NullTime
		if err := rows.Scan(&record.LocalKey, &record.ParcelNumber, &storedAt); err != nil {
			return nil, fmt.Errorf("scanning pending scan: %w", err)
		}
		if storedAt.Valid {
			record.StoredAt = storedAt.Time
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pending scans: %w", err)
	}

	return records, nil
}

// Remove deletes the record with the given key. Absent keys are a no-op.
func (q *queueStore) Remove(ctx context.Context, localKey string) error {
	_, err := q.store.db.ExecContext(ctx, `
		DELETE FROM pending_scans WHERE namespace = ? AND local_key = ?
	`, q.namespace, localKey)
	if err != nil {
		return fmt.Errorf("removing pending scan: %w", err)
	}
	return nil
}
