// Package storage owns the expenses table: connection lifecycle, schema
// bootstrap, and all CRUD/query operations. Every statement that carries
// external data uses bound parameters.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Duncan-Britt/Expenses/internal/core"
	applog "github.com/Duncan-Britt/Expenses/internal/log"
)

// SQLSTATE codes the store maps to domain errors.
const (
	codeCheckViolation = "23514"
	codeDuplicateTable = "42P07"
)

const createTableSQL = `
CREATE TABLE expenses (
	id SERIAL PRIMARY KEY,
	amount NUMERIC(6,2) NOT NULL,
	memo TEXT NOT NULL,
	created_on DATE NOT NULL,
	CONSTRAINT positive_amount_check CHECK (amount > 0)
)`

// Amounts travel as numeric text so no float64 ever touches them.
const expenseColumns = `id, amount::text, memo, created_on`

// Store owns the PostgreSQL connection pool and the expenses table.
// No other component mutates the table directly.
type Store struct {
	pool *pgxpool.Pool
	log  *applog.Logger
}

// New connects to the database at databaseURL, verifies the connection,
// and runs the schema bootstrap. The caller must Close the store on
// every exit path.
func New(ctx context.Context, databaseURL string, logger *applog.Logger) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{pool: pool, log: logger.WithComponent(applog.ComponentStorage)}

	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// ensureSchema creates the expenses table on first run. It is a no-op
// when the table already exists and never alters an existing table.
func (s *Store) ensureSchema(ctx context.Context) error {
	var exists bool
	err := s.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = 'expenses'
		)`).Scan(&exists)
	if err != nil {
		return &SchemaError{Err: fmt.Errorf("check table existence: %w", err)}
	}
	if exists {
		s.log.DebugContext(ctx, "Expenses table already present")
		return nil
	}

	if _, err := s.pool.Exec(ctx, createTableSQL); err != nil {
		// Another invocation may have created the table between the
		// existence check and the CREATE.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == codeDuplicateTable {
			return nil
		}
		return &SchemaError{Err: fmt.Errorf("create expenses table: %w", err)}
	}

	s.log.InfoContext(ctx, "Created expenses table")
	return nil
}

// Add inserts one expense and returns it with its generated id. The
// database constraint is the final guard on the amount: violating
// inserts fail with ErrAmountNotPositive and create no row.
func (s *Store) Add(ctx context.Context, amount decimal.Decimal, memo string, createdOn core.Date) (core.Expense, error) {
	var id int64
	err := s.pool.QueryRow(ctx, `
		INSERT INTO expenses (amount, memo, created_on)
		VALUES ($1::numeric, $2, $3::date)
		RETURNING id`,
		amount.StringFixed(2), memo, createdOn.String()).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == codeCheckViolation && pgErr.ConstraintName == "positive_amount_check" {
			return core.Expense{}, ErrAmountNotPositive
		}
		return core.Expense{}, fmt.Errorf("insert expense: %w", err)
	}

	s.log.InfoContext(ctx, "Expense saved",
		"id", id,
		"amount", amount.StringFixed(2),
		"memo", memo,
		"created_on", createdOn.String())

	return core.Expense{ID: id, Amount: amount, Memo: memo, CreatedOn: createdOn}, nil
}

// List returns every expense ordered by id ascending, with the decimal
// sum of their amounts.
func (s *Store) List(ctx context.Context) (core.RowSet, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+expenseColumns+` FROM expenses ORDER BY id`)
	if err != nil {
		return core.RowSet{}, fmt.Errorf("list expenses: %w", err)
	}

	expenses, err := scanExpenses(rows)
	if err != nil {
		return core.RowSet{}, fmt.Errorf("list expenses: %w", err)
	}
	return core.NewRowSet(expenses), nil
}

// Search returns the expenses whose memo contains query as a
// case-insensitive substring. An empty query matches every row.
func (s *Store) Search(ctx context.Context, query string) (core.RowSet, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+expenseColumns+` FROM expenses
		WHERE memo ILIKE '%' || $1 || '%'
		ORDER BY id`,
		escapeLike(query))
	if err != nil {
		return core.RowSet{}, fmt.Errorf("search expenses: %w", err)
	}

	expenses, err := scanExpenses(rows)
	if err != nil {
		return core.RowSet{}, fmt.Errorf("search expenses: %w", err)
	}
	return core.NewRowSet(expenses), nil
}

// Delete removes the expense with the given id and returns its prior
// contents. The delete and the existence check are a single statement,
// so a concurrent deletion cannot be double-reported.
func (s *Store) Delete(ctx context.Context, id int64) (core.Expense, error) {
	row := s.pool.QueryRow(ctx, `
		DELETE FROM expenses WHERE id = $1
		RETURNING `+expenseColumns,
		id)

	e, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return core.Expense{}, ErrNotFound
		}
		return core.Expense{}, fmt.Errorf("delete expense %d: %w", id, err)
	}

	s.log.InfoContext(ctx, "Expense deleted", "id", e.ID, "memo", e.Memo)
	return e, nil
}

// Clear removes every expense and returns how many rows were deleted.
// Clearing an empty table succeeds and removes zero rows.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM expenses`)
	if err != nil {
		return 0, fmt.Errorf("clear expenses: %w", err)
	}

	removed := tag.RowsAffected()
	s.log.InfoContext(ctx, "Expenses cleared", "removed", removed)
	return removed, nil
}

// likeEscaper makes a search term match literally under LIKE/ILIKE by
// escaping the pattern metacharacters with a backslash.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func scanExpense(row pgx.Row) (core.Expense, error) {
	var (
		e         core.Expense
		amount    string
		createdOn time.Time
	)
	if err := row.Scan(&e.ID, &amount, &e.Memo, &createdOn); err != nil {
		return core.Expense{}, err
	}

	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return core.Expense{}, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	e.Amount = amt
	e.CreatedOn = core.DateOf(createdOn)
	return e, nil
}

func scanExpenses(rows pgx.Rows) ([]core.Expense, error) {
	defer rows.Close()

	var expenses []core.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return expenses, nil
}
