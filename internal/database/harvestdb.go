package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/natscan/natscan/internal/model"
)

// HarvestDB provides SQLite-based storage for harvested responses and
// extracted records. It manages connection pooling and provides methods
// for CRUD operations.
//
// Design decision: We use a single database file per harvest session
// rather than separate files for the cache and the records. This keeps
// resumable harvests and their extracted output together for
// backup/restore.
type HarvestDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HarvestDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HarvestDB at the specified path.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*HarvestDB, error) {
	dbPath := filepath.Join(dbDir, "natscan.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating
	// new files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HarvestDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *HarvestDB) Close() error {
	return hdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HarvestDB) createTables() error {
	schema := `
	-- Responses cache raw API page bodies keyed by request URL
	CREATE TABLE IF NOT EXISTS responses (
		url TEXT PRIMARY KEY,
		body BLOB NOT NULL,
		fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_responses_fetched ON responses(fetched_at);

	-- Records store extracted naturalisation entries
	CREATE TABLE IF NOT EXISTS records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		article_id TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		address TEXT NOT NULL,
		date_raw TEXT NOT NULL,
		date TEXT NOT NULL,
		support TEXT,
		valid INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(article_id, first_name, last_name, address, date_raw)
	);

	CREATE INDEX IF NOT EXISTS idx_records_article ON records(article_id);
	CREATE INDEX IF NOT EXISTS idx_records_last ON records(last_name);
	CREATE INDEX IF NOT EXISTS idx_records_valid ON records(valid);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// Get returns the cached response body for url, if present.
// It satisfies the gazette client's cache interface.
func (hdb *HarvestDB) Get(ctx context.Context, url string) ([]byte, bool, error) {
	query := `SELECT body FROM responses WHERE url = ?`

	var body []byte
	err := hdb.db.QueryRowContext(ctx, query, url).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get cached response: %w", err)
	}

	return body, true, nil
}

// Put stores a response body under url, replacing any previous entry.
func (hdb *HarvestDB) Put(ctx context.Context, url string, body []byte) error {
	query := `
	INSERT INTO responses (url, body)
	VALUES (?, ?)
	ON CONFLICT(url) DO UPDATE SET
		body = excluded.body,
		fetched_at = CURRENT_TIMESTAMP
	`

	if _, err := hdb.db.ExecContext(ctx, query, url, body); err != nil {
		return fmt.Errorf("failed to cache response: %w", err)
	}

	return nil
}

// HasRecentResponse checks if a URL was fetched within the specified duration.
func (hdb *HarvestDB) HasRecentResponse(ctx context.Context, url string, duration time.Duration) (bool, error) {
	query := `
	SELECT COUNT(*) FROM responses
	WHERE url = ? AND fetched_at > datetime('now', ?)
	`

	// SQLite datetime modifier format
	modifier := fmt.Sprintf("-%d seconds", int(duration.Seconds()))

	var count int
	if err := hdb.db.QueryRowContext(ctx, query, url, modifier).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check recent response: %w", err)
	}

	return count > 0, nil
}

// PurgeResponses deletes cached responses older than the specified duration.
// It returns the number of deleted rows.
func (hdb *HarvestDB) PurgeResponses(ctx context.Context, olderThan time.Duration) (int64, error) {
	query := `DELETE FROM responses WHERE fetched_at < datetime('now', ?)`

	modifier := fmt.Sprintf("-%d seconds", int(olderThan.Seconds()))

	result, err := hdb.db.ExecContext(ctx, query, modifier)
	if err != nil {
		return 0, fmt.Errorf("failed to purge responses: %w", err)
	}

	return result.RowsAffected()
}

// SaveRecords stores extracted records in a single transaction.
// Duplicate records (same article and fields) are updated in place so
// re-running an extraction does not multiply rows.
func (hdb *HarvestDB) SaveRecords(ctx context.Context, records []*model.Record) error {
	tx, err := hdb.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	query := `
	INSERT INTO records (article_id, first_name, last_name, address, date_raw, date, support, valid)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(article_id, first_name, last_name, address, date_raw) DO UPDATE SET
		date = excluded.date,
		support = excluded.support,
		valid = excluded.valid
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		supportJSON, err := json.Marshal(rec.Support)
		if err != nil {
			return fmt.Errorf("failed to serialize support tags: %w", err)
		}

		if _, err := stmt.ExecContext(ctx,
			rec.ArticleID,
			rec.First,
			rec.Last,
			rec.Address,
			rec.DateRaw,
			rec.FormatDate(),
			string(supportJSON),
			boolToInt(rec.Valid),
		); err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit records: %w", err)
	}

	return nil
}

// ListRecords retrieves stored records, optionally filtered to a single
// article. An empty articleID returns all records.
func (hdb *HarvestDB) ListRecords(ctx context.Context, articleID string) ([]*model.Record, error) {
	query := `
	SELECT article_id, first_name, last_name, address, date_raw, date, support, valid
	FROM records
	WHERE 1=1
	`
	args := make([]interface{}, 0)

	if articleID != "" {
		query += " AND article_id = ?"
		args = append(args, articleID)
	}

	query += " ORDER BY id"

	rows, err := hdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []*model.Record
	for rows.Next() {
		var rec model.Record
		var date string
		var supportJSON sql.NullString
		var valid int

		if err := rows.Scan(
			&rec.ArticleID,
			&rec.First,
			&rec.Last,
			&rec.Address,
			&rec.DateRaw,
			&date,
			&supportJSON,
			&valid,
		); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}

		if date != model.UnparsedDate {
			if t, err := time.Parse(model.DateLayout, date); err == nil {
				rec.Date = t
			}
		}
		if supportJSON.Valid && supportJSON.String != "" {
			if err := json.Unmarshal([]byte(supportJSON.String), &rec.Support); err != nil {
				return nil, fmt.Errorf("failed to parse support tags: %w", err)
			}
		}
		rec.Valid = valid != 0

		records = append(records, &rec)
	}

	return records, rows.Err()
}

// CountRecords returns the number of stored records, split into valid
// and rejected counts.
func (hdb *HarvestDB) CountRecords(ctx context.Context) (valid, rejected int, err error) {
	query := `
	SELECT
		COUNT(CASE WHEN valid = 1 THEN 1 END),
		COUNT(CASE WHEN valid = 0 THEN 1 END)
	FROM records
	`

	if err := hdb.db.QueryRowContext(ctx, query).Scan(&valid, &rejected); err != nil {
		return 0, 0, fmt.Errorf("failed to count records: %w", err)
	}

	return valid, rejected, nil
}

// ListArticleIDs returns the distinct article IDs with stored records.
func (hdb *HarvestDB) ListArticleIDs(ctx context.Context) ([]string, error) {
	query := `
	SELECT DISTINCT article_id FROM records
	ORDER BY article_id
	`

	rows, err := hdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list article IDs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan article ID: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// boolToInt converts a bool to the 0/1 form stored in SQLite.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
