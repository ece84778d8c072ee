package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/nodetypes/pkg/types"
)

var _ types.Repository = (*Backend)(nil)

// dbFileName is the SQLite database file inside DataDir. It is rebuilt from
// the JSONL files on every Attach.
const dbFileName = "nodetypes.db"

// Backend implements types.Repository using SQLite as the query engine and
// JSONL files as the source of truth.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	dataDir  string
	db       *sql.DB
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration.
// Creates DataDir if it does not exist, seeds built-in definitions on first
// run, and loads the JSONL files into a fresh database.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	firstRun, err := initJSONLFiles(dataDir)
	if err != nil {
		return err
	}
	if firstRun {
		if err := seedBuiltIns(dataDir); err != nil {
			return fmt.Errorf("seed built-ins: %w", err)
		}
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return err
	}
	for _, ddl := range slices.Concat(schemaDDL, indexDDL) {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("create schema: %w", err)
		}
	}
	if err := loadAllJSONL(db, dataDir); err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	b.db = db
	b.config = config
	b.dataDir = dataDir
	b.attached = true

	logrus.WithFields(logrus.Fields{"data_dir": dataDir, "first_run": firstRun}).Debug("repository attached")
	return nil
}

// Detach closes the database. Callers should Logout open sessions first.
// Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false

	logrus.WithField("data_dir", b.dataDir).Debug("repository detached")
	return nil
}

// Login opens a read-only session on one pooled connection.
// Returns ErrRepositoryDetached if the backend is not attached.
func (b *Backend) Login(ctx context.Context) (types.Session, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, errors.WithStack(types.ErrRepositoryDetached)
	}
	conn, err := b.db.Conn(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "opening session")
	}
	return &session{ctx: ctx, conn: conn}, nil
}

// DescriptorKeys returns descriptor keys in the order they were stored.
func (b *Backend) DescriptorKeys() ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, errors.WithStack(types.ErrRepositoryDetached)
	}
	rows, err := b.db.Query("SELECT key FROM descriptors ORDER BY position")
	if err != nil {
		return nil, errors.Wrap(err, "querying descriptors")
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, errors.Wrap(err, "scanning descriptor")
		}
		keys = append(keys, key)
	}
	return keys, errors.WithStack(rows.Err())
}

// Descriptor returns the value stored for key.
// Returns ErrDescriptorNotFound if there is none.
func (b *Backend) Descriptor(key string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return "", errors.WithStack(types.ErrRepositoryDetached)
	}
	var value string
	err := b.db.QueryRow("SELECT value FROM descriptors WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", errors.Wrapf(types.ErrDescriptorNotFound, "key %q", key)
	}
	if err != nil {
		return "", errors.Wrapf(err, "reading descriptor %q", key)
	}
	return value, nil
}
