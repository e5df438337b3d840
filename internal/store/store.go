// Package store provides the relational persistence layer for expense
// records, backed by SQLite or PostgreSQL through database/sql.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gontzess/expense-tracker/internal/model"

	"github.com/shopspring/decimal"

	_ "github.com/lib/pq"  // register postgres driver
	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound is returned by lookups against an id with no row.
var ErrNotFound = errors.New("no matching expense")

// Store wraps a single database connection and the dialect it speaks.
type Store struct {
	db      *sql.DB
	dialect dialect
}

// Open connects to the database named by dbURL and ensures the
// expenses table exists. A postgres:// or postgresql:// URL selects
// the PostgreSQL backend; anything else is a SQLite file path whose
// parent directory is created if needed.
func Open(dbURL string) (*Store, error) {
	d := dialectFor(dbURL)

	dsn := dbURL
	if d.name == "sqlite" {
		dir := filepath.Dir(dbURL)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating database dir: %w", err)
		}
		dsn = dbURL + "?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)"
	}

	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, dialect: d}
	if err := s.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dialect reports which engine the store speaks ("sqlite" or "postgres").
func (s *Store) Dialect() string {
	return s.dialect.name
}

// ensureSchema checks the engine catalog for the expenses table and
// creates it only when absent. Idempotent, runs on every Open.
func (s *Store) ensureSchema() error {
	var name string
	err := s.db.QueryRow(s.q(s.dialect.tableExists), "expenses").Scan(&name)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := s.db.Exec(s.dialect.schema); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("checking schema: %w", err)
	}
	return nil
}

// q binds ? placeholders for the active dialect.
func (s *Store) q(query string) string {
	return s.dialect.bind(query)
}

// Add inserts one expense row. The amount travels as a fixed 2-decimal
// string so neither engine sees a binary float.
func (s *Store) Add(amount decimal.Decimal, memo string, createdOn time.Time) error {
	_, err := s.db.Exec(
		s.q("INSERT INTO expenses (amount, memo, created_on) VALUES (?, ?, ?)"),
		amount.StringFixed(2), memo, createdOn.Format(model.DateLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting expense: %w", err)
	}
	return nil
}

const selectColumns = "SELECT id, amount, memo, created_on FROM expenses"

// All returns every expense ordered by date, then id, so rows sharing
// a date keep insertion order.
func (s *Store) All() ([]model.Expense, error) {
	rows, err := s.db.Query(selectColumns + " ORDER BY created_on, id")
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	return collectExpenses(rows)
}

// Search returns expenses whose memo contains the query substring,
// case-insensitively. LIKE wildcards in the query are escaped so the
// match is literal containment.
func (s *Store) Search(query string) ([]model.Expense, error) {
	rows, err := s.db.Query(
		s.q(selectColumns+" WHERE LOWER(memo) LIKE '%' || LOWER(?) || '%' ESCAPE '\\' ORDER BY created_on, id"),
		escapeLike(query),
	)
	if err != nil {
		return nil, fmt.Errorf("searching expenses: %w", err)
	}
	return collectExpenses(rows)
}

// Get returns the expense with the given id, or ErrNotFound.
func (s *Store) Get(id int64) (model.Expense, error) {
	row := s.db.QueryRow(s.q(selectColumns+" WHERE id = ?"), id)
	e, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Expense{}, ErrNotFound
	}
	if err != nil {
		return model.Expense{}, fmt.Errorf("reading expense %d: %w", id, err)
	}
	return e, nil
}

// DeleteByID removes the expense with the given id and returns the
// deleted row. The row is looked up first; ErrNotFound means nothing
// was mutated.
func (s *Store) DeleteByID(id int64) (model.Expense, error) {
	e, err := s.Get(id)
	if err != nil {
		return model.Expense{}, err
	}
	if _, err := s.db.Exec(s.q("DELETE FROM expenses WHERE id = ?"), id); err != nil {
		return model.Expense{}, fmt.Errorf("deleting expense %d: %w", id, err)
	}
	return e, nil
}

// DeleteAll unconditionally removes every expense row.
func (s *Store) DeleteAll() error {
	if _, err := s.db.Exec("DELETE FROM expenses"); err != nil {
		return fmt.Errorf("clearing expenses: %w", err)
	}
	return nil
}

// Count returns the number of stored expenses.
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM expenses").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting expenses: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(r rowScanner) (model.Expense, error) {
	var e model.Expense
	var day string
	if err := r.Scan(&e.ID, &e.Amount, &e.Memo, &day); err != nil {
		return model.Expense{}, err
	}
	created, err := parseDay(day)
	if err != nil {
		return model.Expense{}, err
	}
	e.CreatedOn = created
	return e, nil
}

func collectExpenses(rows *sql.Rows) ([]model.Expense, error) {
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading expenses: %w", err)
	}
	return expenses, nil
}

// parseDay extracts the calendar date from a scanned created_on value.
// SQLite hands back the stored YYYY-MM-DD text; lib/pq hands back a
// time.Time that database/sql stringifies as RFC 3339, so the date is
// the first 10 bytes either way.
func parseDay(s string) (time.Time, error) {
	if len(s) > len(model.DateLayout) {
		s = s[:len(model.DateLayout)]
	}
	return time.Parse(model.DateLayout, s)
}

// escapeLike backslash-escapes LIKE metacharacters in a search needle.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
