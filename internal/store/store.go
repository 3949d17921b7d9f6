package store

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"sync"

	_ "modernc.org/sqlite"
)

// KV is the storage collaborator contract: whole serialized collections keyed
// by name. Every write replaces the full collection under its key,
// last-write-wins; there is no partial update and no locking beyond what the
// backing store provides itself.
type KV interface {
	// Load returns the raw collection bytes and whether the key exists.
	Load(ctx context.Context, key string) ([]byte, bool, error)
	// Save replaces the collection stored under key.
	Save(ctx context.Context, key string, data []byte) error
	Close() error
}

// SQLiteKV persists collections in a single-file SQLite database, one row per
// key.
type SQLiteKV struct {
	writer *sql.DB
	reader *sql.DB
}

func OpenSQLite(dbPath string) (*SQLiteKV, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)", dbPath)

	writer, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open writer: %w", err)
	}
	writer.SetMaxOpenConns(1)

	reader, err := sql.Open("sqlite", dsn)
	if err != nil {
		writer.Close()
		return nil, fmt.Errorf("open reader: %w", err)
	}
	reader.SetMaxOpenConns(runtime.NumCPU())

	kv := &SQLiteKV{writer: writer, reader: reader}

	if err := kv.migrate(context.Background()); err != nil {
		kv.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return kv, nil
}

func (kv *SQLiteKV) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := kv.reader.QueryRowContext(ctx,
		`SELECT data FROM collections WHERE key = ?`, key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}
	return data, true, nil
}

func (kv *SQLiteKV) Save(ctx context.Context, key string, data []byte) error {
	_, err := kv.writer.ExecContext(ctx,
		`INSERT INTO collections (key, data, updated_at) VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ','now'))
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, data,
	)
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (kv *SQLiteKV) Close() error {
	err1 := kv.writer.Close()
	err2 := kv.reader.Close()
	if err1 != nil {
		return err1
	}
	return err2
}

// MemoryKV is the in-memory substitute used by tests.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (kv *MemoryKV) Load(_ context.Context, key string) ([]byte, bool, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	data, ok := kv.data[key]
	return data, ok, nil
}

func (kv *MemoryKV) Save(_ context.Context, key string, data []byte) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.data[key] = data
	return nil
}

func (kv *MemoryKV) Close() error { return nil }

// Store wraps a KV with typed collection accessors and the document-save
// side effects.
type Store struct {
	kv KV
}

// Open opens the SQLite-backed store at dbPath.
func Open(dbPath string) (*Store, error) {
	kv, err := OpenSQLite(dbPath)
	if err != nil {
		return nil, err
	}
	return &Store{kv: kv}, nil
}

// NewMemory returns a store backed by an in-memory KV, for tests.
func NewMemory() *Store {
	return &Store{kv: NewMemoryKV()}
}

// New wraps an existing KV.
func New(kv KV) *Store {
	return &Store{kv: kv}
}

func (s *Store) Close() error {
	return s.kv.Close()
}
