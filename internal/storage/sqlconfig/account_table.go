package sqlconfig

import (
	"context"
	"database/sql"
)

const accountColumns = "id, user_id, name, type, currency, created_at"

// AccountsTable provides access to the accounts table.
type AccountsTable struct {
	db *sql.DB
}

// Ensure AccountsTable implements IAccountsTable at compile time.
var _ IAccountsTable = (*AccountsTable)(nil)

// NewAccountsTable creates an AccountsTable for the given database.
func NewAccountsTable(db *sql.DB) AccountsTable {
	return AccountsTable{db: db}
}

// Insert creates a new account and returns the stored row.
func (t *AccountsTable) Insert(ctx context.Context, create *AccountCreate) (*Account, error) {
	row := t.db.QueryRowContext(ctx,
		"INSERT INTO accounts (user_id, name, type, currency) VALUES ($1, $2, $3, $4) RETURNING "+accountColumns,
		create.UserID, create.Name, create.Type, create.Currency)
	return scanAccount(row)
}

// List returns all accounts ordered by id ascending.
func (t *AccountsTable) List(ctx context.Context) ([]*Account, error) {
	rows, err := t.db.QueryContext(ctx,
		"SELECT "+accountColumns+" FROM accounts ORDER BY id ASC")
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var result []*Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, account)
	}
	return result, translateError(rows.Err())
}

// ListByUser returns a user's accounts, newest first, each with the sum of
// its transaction amounts (0 when it has none).
func (t *AccountsTable) ListByUser(ctx context.Context, userID int64) ([]*AccountWithCashflow, error) {
	rows, err := t.db.QueryContext(ctx,
		`SELECT a.id, a.user_id, a.name, a.type, a.currency, a.created_at,
		        COALESCE(SUM(t.amount), 0) AS cashflow
		 FROM accounts a
		 LEFT JOIN transactions t ON t.account_id = a.id
		 WHERE a.user_id = $1
		 GROUP BY a.id
		 ORDER BY a.created_at DESC`,
		userID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var result []*AccountWithCashflow
	for rows.Next() {
		var account AccountWithCashflow
		err := rows.Scan(&account.ID, &account.UserID, &account.Name,
			&account.Type, &account.Currency, &account.CreatedAt, &account.Cashflow)
		if err != nil {
			return nil, translateError(err)
		}
		result = append(result, &account)
	}
	return result, translateError(rows.Err())
}

// FindByID retrieves an account by primary key.
func (t *AccountsTable) FindByID(ctx context.Context, id int64) (*Account, error) {
	row := t.db.QueryRowContext(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE id = $1", id)
	return scanAccount(row)
}

// Update changes the named columns and returns the updated row.
func (t *AccountsTable) Update(ctx context.Context, id int64, update *AccountUpdate) (*Account, error) {
	var sets []updateSet
	if update.Name != nil {
		sets = append(sets, updateSet{column: "name", value: *update.Name})
	}
	if update.Type != nil {
		sets = append(sets, updateSet{column: "type", value: *update.Type})
	}
	if update.Currency != nil {
		sets = append(sets, updateSet{column: "currency", value: *update.Currency})
	}

	query, args, err := buildUpdate("accounts", sets, id, accountColumns)
	if err != nil {
		return nil, err
	}
	return scanAccount(t.db.QueryRowContext(ctx, query, args...))
}

// Delete removes an account and returns the deleted row.
func (t *AccountsTable) Delete(ctx context.Context, id int64) (*Account, error) {
	row := t.db.QueryRowContext(ctx,
		"DELETE FROM accounts WHERE id = $1 RETURNING "+accountColumns, id)
	return scanAccount(row)
}

func scanAccount(row rowScanner) (*Account, error) {
	var account Account
	err := row.Scan(&account.ID, &account.UserID, &account.Name,
		&account.Type, &account.Currency, &account.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &account, nil
}
