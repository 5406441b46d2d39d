// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger keeps an audit trail of report deliveries in SQLite.
// It records who a report was sent to and whether the send succeeded;
// meeting content is never stored.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/meeting-report/pkg/types"
)

const (
	dbFile = "deliveries.db"

	defaultListLimit = 20

	// timeLayout is fixed-width so created_at sorts lexicographically.
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// Ledger manages the deliveries database.
type Ledger struct {
	db  *sql.DB
	dir string
}

// Open opens or creates dir/deliveries.db and its schema.
func Open(cfg types.LedgerConfig) (*Ledger, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("ledger directory not configured")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating ledger directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	l := &Ledger{db: db, dir: cfg.Dir}
	if err := l.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return l, nil
}

// Close releases the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Dir returns the directory holding the database.
func (l *Ledger) Dir() string {
	return l.dir
}

func (l *Ledger) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS deliveries (
			id TEXT PRIMARY KEY,
			log_file TEXT NOT NULL,
			recipient TEXT NOT NULL,
			subject TEXT NOT NULL,
			topics INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL,
			error TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_deliveries_created_at ON deliveries(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_deliveries_recipient ON deliveries(recipient)`,
	}
	for _, stmt := range statements {
		if _, err := l.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores d. A missing ID is filled with a new UUID and a zero
// CreatedAt with the current time.
func (l *Ledger) Record(ctx context.Context, d types.Delivery) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO deliveries (id, log_file, recipient, subject, topics, status, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.LogFile, d.Recipient, d.Subject, d.Topics, string(d.Status), d.Error,
		d.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("recording delivery %s: %w", d.ID, err)
	}
	return nil
}

// ListOptions filters List results. Zero values mean no filter.
type ListOptions struct {
	// Limit caps the number of rows (default 20).
	Limit     int
	Status    types.DeliveryStatus
	Recipient string
}

// List returns deliveries matching opts, newest first.
func (l *Ledger) List(ctx context.Context, opts ListOptions) ([]types.Delivery, error) {
	var (
		where []string
		args  []any
	)
	if opts.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(opts.Status))
	}
	if opts.Recipient != "" {
		where = append(where, "recipient = ?")
		args = append(args, opts.Recipient)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `SELECT id, log_file, recipient, subject, topics, status, COALESCE(error, ''), created_at FROM deliveries`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, rowid DESC LIMIT ?"
	args = append(args, limit)

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying deliveries: %w", err)
	}
	defer rows.Close()

	var out []types.Delivery
	for rows.Next() {
		var (
			d         types.Delivery
			status    string
			createdAt string
		)
		if err := rows.Scan(&d.ID, &d.LogFile, &d.Recipient, &d.Subject, &d.Topics, &status, &d.Error, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning delivery: %w", err)
		}
		d.Status = types.DeliveryStatus(status)
		if t, err := time.Parse(timeLayout, createdAt); err == nil {
			d.CreatedAt = t
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
