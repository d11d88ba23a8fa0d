package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/veldt-labs/workspacehub/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/veldt-labs/workspacehub/internal/core/domain"
	"github.com/veldt-labs/workspacehub/internal/core/ports/driven"
)

// jsonNull is the JSON representation of null.
const jsonNull = "null"

// Store is a unified SQLite-based storage that provides access to
// the credentials and run store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.workspacehub/data/workspacehub.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".workspacehub", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "workspacehub.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
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

// CredentialsStore returns a CredentialsStore interface backed by this store.
func (s *Store) CredentialsStore() driven.CredentialsStore {
	return &credentialsStore{store: s}
}

// RunStore returns a RunStore interface backed by this store.
func (s *Store) RunStore() driven.RunStore {
	return &runStore{store: s}
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
	}

	return nil
}

// ==================== Credentials Store ====================

// credentialsStore implements driven.CredentialsStore.
type credentialsStore struct {
	store *Store
}

var _ driven.CredentialsStore = (*credentialsStore)(nil)

// Save stores or updates credentials.
func (s *credentialsStore) Save(ctx context.Context, creds domain.Credentials) error {
	if creds.ID == "" {
		return domain.ErrInvalidInput
	}

	oauthJSON, err := json.Marshal(creds.OAuth)
	if err != nil {
		return fmt.Errorf("marshalling oauth token: %w", err)
	}

	now := time.Now().UTC()
	if creds.CreatedAt.IsZero() {
		creds.CreatedAt = now
	}
	creds.UpdatedAt = now

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO credentials (id, account_identifier, oauth, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			account_identifier = excluded.account_identifier,
			oauth = excluded.oauth,
			updated_at = excluded.updated_at
	`, creds.ID, creds.AccountIdentifier, string(oauthJSON), creds.CreatedAt, creds.UpdatedAt)

	if err != nil {
		return fmt.Errorf("saving credentials: %w", err)
	}
	return nil
}

// Get retrieves credentials by ID.
func (s *credentialsStore) Get(ctx context.Context, id string) (*domain.Credentials, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, account_identifier, oauth, created_at, updated_at
		FROM credentials WHERE id = ?
	`, id)

	var creds domain.Credentials
	var oauthJSON sql.NullString
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&creds.ID, &creds.AccountIdentifier, &oauthJSON, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning credentials: %w", err)
	}

	if oauthJSON.Valid && oauthJSON.String != jsonNull {
		var token domain.OAuthToken
		if err := json.Unmarshal([]byte(oauthJSON.String), &token); err != nil {
			return nil, fmt.Errorf("unmarshalling oauth token: %w", err)
		}
		creds.OAuth = &token
	}

	if createdAt.Valid {
		creds.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		creds.UpdatedAt = updatedAt.Time
	}

	return &creds, nil
}

// Delete removes credentials by ID.
func (s *credentialsStore) Delete(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM credentials WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting credentials: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ==================== Run Store ====================

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

// Record stores a completed extraction run.
func (s *runStore) Record(ctx context.Context, run domain.Run) error {
	if run.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO runs (id, service, time_range, item_count, duration_ms, error, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, string(run.Service), run.Range, run.ItemCount,
		run.Duration.Milliseconds(), run.Error, run.StartedAt)

	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first.
func (s *runStore) List(ctx context.Context, limit int) ([]domain.Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, service, time_range, item_count, duration_ms, error, started_at
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.Run //nolint:prealloc // size unknown from query
	for rows.Next() {
		var run domain.Run
		var service string
		var durationMs int64
		var startedAt sql.NullTime
		if err := rows.Scan(&run.ID, &service, &run.Range, &run.ItemCount,
			&durationMs, &run.Error, &startedAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}

		run.Service = domain.Service(service)
		run.Duration = time.Duration(durationMs) * time.Millisecond
		if startedAt.Valid {
			run.StartedAt = startedAt.Time
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	return runs, nil
}
