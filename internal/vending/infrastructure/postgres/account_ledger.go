package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/szilard-n/vending-machine/internal/pkg/database"
	"github.com/szilard-n/vending-machine/internal/vending/domain"
)

type AccountLedger struct {
}

func NewAccountLedger() *AccountLedger {
	return &AccountLedger{}
}

func (al *AccountLedger) Credit(ctx context.Context, executor database.QueryExecuter, accountId uuid.UUID, amount int) (int, error) {
	if amount <= 0 {
		return 0, &domain.InvalidAmountError{Msg: fmt.Sprintf("credit amount must be positive, got %d", amount)}
	}

	creditSQL := `UPDATE accounts SET deposit = deposit + $1 WHERE id = $2 RETURNING deposit`

	var deposit int
	err := executor.QueryRow(ctx, creditSQL, amount, accountId).Scan(&deposit)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", accountId)}
		}

		return 0, fmt.Errorf("failed to credit account: %w", err)
	}

	return deposit, nil
}

// Debit refuses to take the deposit below zero; the guard lives in the
// statement itself so the invariant holds even without the caller's checks.
func (al *AccountLedger) Debit(ctx context.Context, executor database.QueryExecuter, accountId uuid.UUID, amount int) (int, error) {
	if amount <= 0 {
		return 0, &domain.InvalidAmountError{Msg: fmt.Sprintf("debit amount must be positive, got %d", amount)}
	}

	debitSQL := `UPDATE accounts SET deposit = deposit - $1 WHERE id = $2 AND deposit >= $1 RETURNING deposit`

	var deposit int
	err := executor.QueryRow(ctx, debitSQL, amount, accountId).Scan(&deposit)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.InsufficientFundsError{Msg: fmt.Sprintf("account %s cannot cover %d", accountId, amount)}
		}

		return 0, fmt.Errorf("failed to debit account: %w", err)
	}

	return deposit, nil
}

func (al *AccountLedger) Reset(ctx context.Context, executor database.QueryExecuter, accountId uuid.UUID) (int, error) {
	resetSQL := `UPDATE accounts SET deposit = 0 WHERE id = $1 RETURNING deposit`

	var deposit int
	err := executor.QueryRow(ctx, resetSQL, accountId).Scan(&deposit)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", accountId)}
		}

		return 0, fmt.Errorf("failed to reset account deposit: %w", err)
	}

	return deposit, nil
}
