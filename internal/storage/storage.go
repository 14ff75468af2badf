package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// Storage is the shared connection pool plus the per-table accessors. One
// instance is created at startup and passed to every handler through the
// service layer.
type Storage struct {
	DB           *sql.DB
	Users        sqlconfig.IUsersTable
	Accounts     sqlconfig.IAccountsTable
	Transactions sqlconfig.ITransactionsTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		return nil, err
	}

	users := sqlconfig.NewUsersTable(db)
	accounts := sqlconfig.NewAccountsTable(db)
	transactions := sqlconfig.NewTransactionsTable(db)

	return &Storage{
		DB:           db,
		Users:        &users,
		Accounts:     &accounts,
		Transactions: &transactions,
	}, nil
}

// Ping issues a trivial query to verify the store is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	var one int
	return s.DB.QueryRowContext(ctx, "SELECT 1").Scan(&one)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
