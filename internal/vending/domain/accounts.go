package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/szilard-n/vending-machine/internal/pkg/database"
)

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

type Account struct {
	Id       uuid.UUID
	Username string
	Role     string
	Deposit  int
}

type AccountRepository interface {
	GetAccount(ctx context.Context, querier database.Querier, accountId uuid.UUID) (Account, error)
}

// AccountLockKey names an account in the lock coordinator's keyspace.
// Account and product keys are disjoint namespaces.
func AccountLockKey(accountId uuid.UUID) string {
	return "account:" + accountId.String()
}
