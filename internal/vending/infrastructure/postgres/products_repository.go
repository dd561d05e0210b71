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

type ProductsRepository struct {
}

func NewProductsRepository() *ProductsRepository {
	return &ProductsRepository{}
}

func (pr *ProductsRepository) GetProduct(ctx context.Context, querier database.Querier, productId uuid.UUID) (domain.Product, error) {
	findProductSQL := `SELECT id, product_name, cost, amount_available, seller_id FROM products WHERE id = $1`

	var product domain.Product
	err := querier.QueryRow(ctx, findProductSQL, productId).
		Scan(&product.Id, &product.Name, &product.Cost, &product.AmountAvailable, &product.SellerId)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, &domain.ProductNotFoundError{Msg: fmt.Sprintf("product %s not found", productId)}
		}

		return domain.Product{}, fmt.Errorf("failed to find product: %w", err)
	}

	return product, nil
}
