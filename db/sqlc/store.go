package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store defines all functions to execute db queries and transactions
type Store interface {
	Querier
	// Ping checks the database connection
	Ping(ctx context.Context) error
	// Locker pickup transactions
	AssignLockerTx(ctx context.Context, arg AssignLockerTxParams) (AssignLockerTxResult, error)
	VerifyPickupTx(ctx context.Context, arg VerifyPickupTxParams) (VerifyPickupTxResult, error)
	// Route bundling transaction
	BundleRoutesTx(ctx context.Context, arg BundleRoutesTxParams) (BundleRoutesTxResult, error)
	// Inventory rebalance transaction
	ApplyRebalanceTx(ctx context.Context, arg ApplyRebalanceTxParams) (ApplyRebalanceTxResult, error)
	// Fixture seeding transaction
	SeedFixturesTx(ctx context.Context, arg SeedFixturesTxParams) (SeedFixturesTxResult, error)
}

// SQLStore provides all functions to execute SQL queries and transactions
type SQLStore struct {
	connPool *pgxpool.Pool
	*Queries
}

// NewStore creates a new store
func NewStore(connPool *pgxpool.Pool) Store {
	return &SQLStore{
		connPool: connPool,
		Queries:  New(connPool),
	}
}

// Ping checks the database connection
func (store *SQLStore) Ping(ctx context.Context) error {
	return store.connPool.Ping(ctx)
}
