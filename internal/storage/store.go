// Package storage provides the durable transaction store backed by an
// embedded SQLite database.
//
// The exported methods encode the propagation policy directly: reads
// are total and fall back to empty results on storage faults, Add
// surfaces failure to the caller, and the destructive cleanup
// operations are best-effort. Swallowed faults are always logged.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"masroufi/internal/core"
	"masroufi/internal/log"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if necessary) the database at dbPath
// and brings the schema up to date. Safe to call repeatedly: opening
// an already-migrated database is a no-op beyond the connection.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Add generates an id, persists the record and returns the id. The
// incoming ID and CreatedAt fields are ignored; the store owns both.
// This is the one write whose failure the caller must see.
func (s *SQLiteStore) Add(ctx context.Context, t core.Transaction) (string, error) {
	now := time.Now().UTC()
	id := core.NewTransactionID(now.UnixMilli())

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (id, type, amount, category, date, note, createdAt)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, string(t.Type), t.Amount, t.Category, t.Date.String(), t.Note,
		now.Format(core.CreatedAtLayout))
	if err != nil {
		return "", fmt.Errorf("insert transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		log.FieldTransactionID, id,
		log.FieldType, t.Type,
		log.FieldAmount, t.Amount,
		log.FieldCategory, t.Category,
		log.FieldDate, t.Date.String())

	return id, nil
}

// ListAll returns every stored transaction ordered by date descending,
// newest creation first on equal dates. Unbounded; the caller limits
// what it displays.
func (s *SQLiteStore) ListAll(ctx context.Context) []core.Transaction {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, type, amount, category, date, note, createdAt
		 FROM transactions
		 ORDER BY date DESC, createdAt DESC`)
	if err != nil {
		slog.ErrorContext(ctx, "List transactions failed, returning empty", log.FieldError, err)
		return nil
	}
	defer rows.Close()

	return scanTransactions(ctx, rows)
}

// ListByMonth returns the transactions whose date falls in the given
// calendar month, same ordering as ListAll. The filter is a half-open
// range up to the first day of the following month, so 28/29/30/31-day
// months all bound correctly under string comparison.
func (s *SQLiteStore) ListByMonth(ctx context.Context, year, month int) []core.Transaction {
	start, end := core.MonthRange(year, month)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, type, amount, category, date, note, createdAt
		 FROM transactions
		 WHERE date >= ? AND date < ?
		 ORDER BY date DESC, createdAt DESC`, start, end)
	if err != nil {
		slog.ErrorContext(ctx, "List transactions by month failed, returning empty",
			log.FieldYear, year, log.FieldMonth, month, log.FieldError, err)
		return nil
	}
	defer rows.Close()

	return scanTransactions(ctx, rows)
}

// DeleteOne removes the record with the given id. Missing ids are a
// no-op; failures are logged and swallowed as best-effort cleanup.
func (s *SQLiteStore) DeleteOne(ctx context.Context, id string) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		slog.ErrorContext(ctx, "Delete transaction failed", log.FieldTransactionID, id, log.FieldError, err)
		return
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		slog.DebugContext(ctx, "Delete transaction matched nothing", log.FieldTransactionID, id)
		return
	}
	slog.InfoContext(ctx, "Transaction deleted", log.FieldTransactionID, id)
}

// ClearAll removes every record. Irreversible, best-effort.
func (s *SQLiteStore) ClearAll(ctx context.Context) {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		slog.ErrorContext(ctx, "Clear transactions failed", log.FieldError, err)
		return
	}
	slog.InfoContext(ctx, "All transactions cleared")
}

func scanTransactions(ctx context.Context, rows *sql.Rows) []core.Transaction {
	var out []core.Transaction
	for rows.Next() {
		var (
			t         core.Transaction
			typ       string
			date      string
			note      sql.NullString
			createdAt string
		)
		if err := rows.Scan(&t.ID, &typ, &t.Amount, &t.Category, &date, &note, &createdAt); err != nil {
			slog.ErrorContext(ctx, "Scan transaction row failed, returning empty", log.FieldError, err)
			return nil
		}

		t.Type = core.TransactionType(typ)
		t.Note = note.String

		d, err := core.ParseDate(date)
		if err != nil {
			slog.WarnContext(ctx, "Stored transaction has malformed date, skipping",
				log.FieldTransactionID, t.ID, log.FieldDate, date)
			continue
		}
		t.Date = d

		if created, err := time.Parse(core.CreatedAtLayout, createdAt); err == nil {
			t.CreatedAt = created
		}

		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		slog.ErrorContext(ctx, "Iterate transaction rows failed, returning empty", log.FieldError, err)
		return nil
	}
	return out
}
