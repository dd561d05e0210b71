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

type StockLedger struct {
}

func NewStockLedger() *StockLedger {
	return &StockLedger{}
}

func (sl *StockLedger) Decrement(ctx context.Context, executor database.QueryExecuter, productId uuid.UUID, amount int) (int, error) {
	if amount <= 0 {
		return 0, &domain.InvalidAmountError{Msg: fmt.Sprintf("decrement amount must be positive, got %d", amount)}
	}

	decrementSQL := `UPDATE products SET amount_available = amount_available - $1
WHERE id = $2 AND amount_available >= $1
RETURNING amount_available`

	var available int
	err := executor.QueryRow(ctx, decrementSQL, amount, productId).Scan(&available)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.InsufficientStockError{Msg: fmt.Sprintf("product %s cannot supply %d units", productId, amount)}
		}

		return 0, fmt.Errorf("failed to decrement product stock: %w", err)
	}

	return available, nil
}
