package sqlconfig

import (
	"context"
	"database/sql"
)

const userColumns = "id, name, email, created_at"

// UsersTable provides access to the users table.
type UsersTable struct {
	db *sql.DB
}

// Ensure UsersTable implements IUsersTable at compile time.
var _ IUsersTable = (*UsersTable)(nil)

// NewUsersTable creates a UsersTable for the given database.
func NewUsersTable(db *sql.DB) UsersTable {
	return UsersTable{db: db}
}

// Insert creates a new user and returns the stored row.
func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	row := t.db.QueryRowContext(ctx,
		"INSERT INTO users (name, email) VALUES ($1, $2) RETURNING "+userColumns,
		create.Name, create.Email)
	return scanUser(row)
}

// List returns all users ordered by id ascending.
func (t *UsersTable) List(ctx context.Context) ([]*User, error) {
	rows, err := t.db.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY id ASC")
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var result []*User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, user)
	}
	return result, translateError(rows.Err())
}

// Update changes the named columns and returns the updated row.
func (t *UsersTable) Update(ctx context.Context, id int64, update *UserUpdate) (*User, error) {
	var sets []updateSet
	if update.Name != nil {
		sets = append(sets, updateSet{column: "name", value: *update.Name})
	}
	if update.Email != nil {
		sets = append(sets, updateSet{column: "email", value: *update.Email})
	}

	query, args, err := buildUpdate("users", sets, id, userColumns)
	if err != nil {
		return nil, err
	}
	return scanUser(t.db.QueryRowContext(ctx, query, args...))
}

// Delete removes a user and returns the deleted row.
func (t *UsersTable) Delete(ctx context.Context, id int64) (*User, error) {
	row := t.db.QueryRowContext(ctx,
		"DELETE FROM users WHERE id = $1 RETURNING "+userColumns, id)
	return scanUser(row)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*User, error) {
	var user User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}
