package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/petrusjohannesmaas/zaimu/internal/core"
)

// SQLiteRepository holds the single persistent database handle for the
// process. Writes are serialized by the storage engine; there is no pooling
// or retry logic on top.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
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

	// The cascade on transactions.user_id is declared in the schema but no
	// operation deletes users; the pragma keeps the declaration honest.
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// CreateUser inserts a new user row and returns its id. A duplicate
// username surfaces as core.ErrUsernameTaken.
func (r *SQLiteRepository) CreateUser(ctx context.Context, u core.User) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, password, est_income, savings_goal) VALUES (?, ?, ?, ?)",
		u.Username, string(u.Password), u.EstIncome, u.SavingsGoal)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, core.ErrUsernameTaken
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	slog.InfoContext(ctx, "User created", "id", id, "username", u.Username)
	return id, nil
}

// GetUserByUsername returns the full user row, or core.ErrUserNotFound.
func (r *SQLiteRepository) GetUserByUsername(ctx context.Context, username string) (core.User, error) {
	var u core.User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, username, password, est_income, savings_goal FROM users WHERE username = ?",
		username).Scan(&u.ID, &u.Username, &u.Password, &u.EstIncome, &u.SavingsGoal)
	if errors.Is(err, sql.ErrNoRows) {
		return core.User{}, core.ErrUserNotFound
	}
	if err != nil {
		return core.User{}, fmt.Errorf("select user: %w", err)
	}
	return u, nil
}

// UpdateSettings overwrites both settings fields unconditionally. No
// history of prior values is kept.
func (r *SQLiteRepository) UpdateSettings(ctx context.Context, username string, estIncome, savingsGoal float64) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE users SET est_income = ?, savings_goal = ? WHERE username = ?",
		estIncome, savingsGoal, username)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return core.ErrUserNotFound
	}
	return nil
}

// CreateTransaction appends a transaction row for userID. Rows are never
// updated or deleted afterwards.
func (r *SQLiteRepository) CreateTransaction(ctx context.Context, userID int64, t core.Transaction) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO transactions (user_id, amount, type, category, description, date) VALUES (?, ?, ?, ?, ?, ?)",
		userID, t.Amount, t.Type, t.Category, t.Description, t.Date)
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// ListTransactions returns every transaction owned by userID, ordered by
// the stored date string descending. The ordering is lexicographic and only
// calendar-correct for ISO-formatted dates.
func (r *SQLiteRepository) ListTransactions(ctx context.Context, userID int64) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT amount, type, category, description, date FROM transactions WHERE user_id = ? ORDER BY date DESC",
		userID)
	if err != nil {
		return nil, fmt.Errorf("select transactions: %w", err)
	}
	defer rows.Close()

	transactions := []core.Transaction{}
	for rows.Next() {
		var t core.Transaction
		if err := rows.Scan(&t.Amount, &t.Type, &t.Category, &t.Description, &t.Date); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.UserID = userID
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return transactions, nil
}

// ListTransactionsForMonth filters by the two-digit month component of the
// stored date string. The match is textual, not calendar-aware; month codes
// outside 01-12 simply match nothing.
func (r *SQLiteRepository) ListTransactionsForMonth(ctx context.Context, userID int64, month string) ([]core.MonthEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT amount, type, category, date FROM transactions WHERE user_id = ? AND strftime('%m', date) = ?",
		userID, month)
	if err != nil {
		return nil, fmt.Errorf("select transactions for month: %w", err)
	}
	defer rows.Close()

	entries := []core.MonthEntry{}
	for rows.Next() {
		var e core.MonthEntry
		if err := rows.Scan(&e.Amount, &e.Type, &e.Category, &e.Date); err != nil {
			return nil, fmt.Errorf("scan month entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate month entries: %w", err)
	}

	return entries, nil
}
