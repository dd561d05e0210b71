package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/szilard-n/vending-machine/internal/pkg/database"
	"github.com/szilard-n/vending-machine/internal/vending/domain"
)

type DepositCase struct {
	accountLedger domain.AccountLedger
	locks         domain.LockCoordinator
	txManager     database.TxManager
	denominations domain.DenominationSet
}

func NewDepositCase(
	accountLedger domain.AccountLedger,
	locks domain.LockCoordinator,
	txManager database.TxManager,
	denominations domain.DenominationSet,
) *DepositCase {
	return &DepositCase{
		accountLedger: accountLedger,
		locks:         locks,
		txManager:     txManager,
		denominations: denominations,
	}
}

// Deposit adds a single coin to the account. Only coins from the configured
// denomination set are accepted.
func (dc *DepositCase) Deposit(ctx context.Context, accountId uuid.UUID, amount int) (int, error) {
	if amount <= 0 || !dc.denominations.Contains(amount) {
		return 0, &domain.InvalidAmountError{
			Msg: fmt.Sprintf("%d is not an accepted coin", amount),
		}
	}

	lockKey := domain.AccountLockKey(accountId)
	dc.locks.Acquire(lockKey)
	defer dc.locks.Release(lockKey)

	var newDeposit int
	err := dc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		deposit, err := dc.accountLedger.Credit(ctx, executor, accountId, amount)
		if err != nil {
			return err
		}

		newDeposit = deposit
		return nil
	})
	if err != nil {
		return 0, err
	}

	return newDeposit, nil
}

// ResetDeposit unconditionally zeroes the account's deposit. Idempotent.
func (dc *DepositCase) ResetDeposit(ctx context.Context, accountId uuid.UUID) (int, error) {
	lockKey := domain.AccountLockKey(accountId)
	dc.locks.Acquire(lockKey)
	defer dc.locks.Release(lockKey)

	var newDeposit int
	err := dc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		deposit, err := dc.accountLedger.Reset(ctx, executor, accountId)
		if err != nil {
			return err
		}

		newDeposit = deposit
		return nil
	})
	if err != nil {
		return 0, err
	}

	return newDeposit, nil
}
