package sqlconfig

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

const transactionColumns = "id, account_id, amount, description, category, date, created_at"

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	db *sql.DB
}

// Ensure TransactionsTable implements ITransactionsTable at compile time.
var _ ITransactionsTable = (*TransactionsTable)(nil)

// NewTransactionsTable creates a TransactionsTable for the given database.
func NewTransactionsTable(db *sql.DB) TransactionsTable {
	return TransactionsTable{db: db}
}

// Insert creates a new transaction and returns the stored row.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	row := t.db.QueryRowContext(ctx,
		"INSERT INTO transactions (account_id, amount, description, category, date) VALUES ($1, $2, $3, $4, $5) RETURNING "+transactionColumns,
		create.AccountID, create.Amount, create.Description, create.Category, nullableTime(create.Date))
	return scanTransaction(row)
}

// ListByAccount returns an account's transactions ordered by date descending.
func (t *TransactionsTable) ListByAccount(ctx context.Context, accountID int64) ([]*Transaction, error) {
	rows, err := t.db.QueryContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE account_id = $1 ORDER BY date DESC",
		accountID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var result []*Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, transaction)
	}
	return result, translateError(rows.Err())
}

// CashflowByAccount returns the sum of an account's transaction amounts,
// 0 when it has none.
func (t *TransactionsTable) CashflowByAccount(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	row := t.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE account_id = $1",
		accountID)

	var cashflow decimal.Decimal
	if err := row.Scan(&cashflow); err != nil {
		return decimal.Zero, translateError(err)
	}
	return cashflow, nil
}

// Update changes the named columns and returns the updated row.
func (t *TransactionsTable) Update(ctx context.Context, id int64, update *TransactionUpdate) (*Transaction, error) {
	var sets []updateSet
	if update.Amount != nil {
		sets = append(sets, updateSet{column: "amount", value: *update.Amount})
	}
	if update.Description != nil {
		sets = append(sets, updateSet{column: "description", value: *update.Description})
	}
	if update.Category != nil {
		sets = append(sets, updateSet{column: "category", value: *update.Category})
	}
	if update.ClearDate {
		sets = append(sets, updateSet{column: "date", value: sql.NullTime{}})
	} else if update.Date != nil {
		sets = append(sets, updateSet{column: "date", value: *update.Date})
	}

	query, args, err := buildUpdate("transactions", sets, id, transactionColumns)
	if err != nil {
		return nil, err
	}
	return scanTransaction(t.db.QueryRowContext(ctx, query, args...))
}

// Delete removes a transaction and returns the deleted row.
func (t *TransactionsTable) Delete(ctx context.Context, id int64) (*Transaction, error) {
	row := t.db.QueryRowContext(ctx,
		"DELETE FROM transactions WHERE id = $1 RETURNING "+transactionColumns, id)
	return scanTransaction(row)
}

func scanTransaction(row rowScanner) (*Transaction, error) {
	var transaction Transaction
	var date sql.NullTime
	err := row.Scan(&transaction.ID, &transaction.AccountID, &transaction.Amount,
		&transaction.Description, &transaction.Category, &date, &transaction.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	if date.Valid {
		transaction.Date = &date.Time
	}
	return &transaction, nil
}

func nullableTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}
