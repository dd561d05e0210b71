package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/szilard-n/vending-machine/internal/pkg/database"
)

// AccountLedger is the only mutator of account deposits. It enforces the
// non-negative balance invariant itself and performs no locking; callers
// hold the coordinator locks for every account they touch.
type AccountLedger interface {
	Credit(ctx context.Context, executor database.QueryExecuter, accountId uuid.UUID, amount int) (int, error)
	Debit(ctx context.Context, executor database.QueryExecuter, accountId uuid.UUID, amount int) (int, error)
	Reset(ctx context.Context, executor database.QueryExecuter, accountId uuid.UUID) (int, error)
}

// StockLedger is the only mutator of product stock, with the same contract.
type StockLedger interface {
	Decrement(ctx context.Context, executor database.QueryExecuter, productId uuid.UUID, amount int) (int, error)
}

// LockCoordinator grants exclusive per-key access for the duration of one
// unit of work. Acquire blocks until every key is available; Release must be
// called exactly once per Acquire, on every exit path.
type LockCoordinator interface {
	Acquire(keys ...string)
	Release(keys ...string)
}

// TransactionResult is the outcome of a successful buy: the amount charged,
// the product as it looks after the purchase and the change payout in coins.
type TransactionResult struct {
	TotalSpent int
	Product    Product
	Change     []int
}
