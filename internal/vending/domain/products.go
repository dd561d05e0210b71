package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/szilard-n/vending-machine/internal/pkg/database"
)

type Product struct {
	Id              uuid.UUID
	Name            string
	Cost            int
	AmountAvailable int
	SellerId        uuid.UUID
}

type ProductRepository interface {
	GetProduct(ctx context.Context, querier database.Querier, productId uuid.UUID) (Product, error)
}

func ProductLockKey(productId uuid.UUID) string {
	return "product:" + productId.String()
}
