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

type AccountsRepository struct {
}

func NewAccountsRepository() *AccountsRepository {
	return &AccountsRepository{}
}

func (ar *AccountsRepository) GetAccount(ctx context.Context, querier database.Querier, accountId uuid.UUID) (domain.Account, error) {
	findAccountSQL := `SELECT id, username, role, deposit FROM accounts WHERE id = $1`

	var account domain.Account
	err := querier.QueryRow(ctx, findAccountSQL, accountId).
		Scan(&account.Id, &account.Username, &account.Role, &account.Deposit)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", accountId)}
		}

		return domain.Account{}, fmt.Errorf("failed to find account: %w", err)
	}

	return account, nil
}
