package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"
	// SQLite driver.
	_ "modernc.org/sqlite"

	"github.com/fr0stylo/partnerhub/internal/db/queries"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	driver        = "sqlite"
	defaultPath   = "data/partnerhub"
	migrationsDir = "migrations"
)

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// Database wraps sqlc catalog queries with the shared connection.
type Database struct {
	*queries.Queries
	db      *sql.DB
	tracker *queryLatencyTracker
}

// New opens the SQLite catalog database at path (".sqlite" is appended) and
// applies pending migrations. Extra openParams are "key=value" DSN pairs.
func New(path string, openParams ...string) (*Database, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = defaultPath
	}
	conn, err := sql.Open(driver, sqliteDSN(path, openParams...))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := migrate(conn); err != nil {
		_ = conn.Close()
		return nil, err
	}

	tracker := newQueryLatencyTracker()
	return &Database{
		Queries: queries.New(newInstrumentedDBTX(conn, tracker)),
		db:      conn,
		tracker: tracker,
	}, nil
}

func migrate(conn *sql.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(conn, migrationsDir); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// SchemaVersion reports the applied goose migration version.
func (c *Database) SchemaVersion(ctx context.Context) (int64, error) {
	if err := c.db.PingContext(ctx); err != nil {
		return 0, fmt.Errorf("ping database: %w", err)
	}
	gooseMu.Lock()
	defer gooseMu.Unlock()
	if err := goose.SetDialect(driver); err != nil {
		return 0, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	version, err := goose.GetDBVersionContext(ctx, c.db)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

func sqliteDSN(path string, openParams ...string) string {
	values := url.Values{}
	values.Add("_pragma", "foreign_keys(ON)")
	values.Add("_pragma", "journal_mode(WAL)")
	values.Add("_pragma", "synchronous(NORMAL)")
	values.Add("_pragma", "busy_timeout(5000)")
	values.Add("_pragma", "temp_store(MEMORY)")

	for _, param := range openParams {
		key, value, ok := strings.Cut(strings.TrimSpace(strings.TrimPrefix(param, "&")), "=")
		if !ok || strings.TrimSpace(key) == "" {
			continue
		}
		values.Add(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	return fmt.Sprintf("file:%s.sqlite?%s", path, values.Encode())
}

// Close closes the underlying database connection.
func (c *Database) Close() error {
	return c.db.Close()
}
