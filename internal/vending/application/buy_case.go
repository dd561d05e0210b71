package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/szilard-n/vending-machine/internal/pkg/database"
	"github.com/szilard-n/vending-machine/internal/pkg/logging"
	"github.com/szilard-n/vending-machine/internal/vending/domain"
)

// BuyCase orchestrates a purchase as one all-or-nothing unit of work:
// exclusive locks around a single database transaction in which every
// precondition is checked before any ledger is touched.
type BuyCase struct {
	querier       database.Querier
	products      domain.ProductRepository
	accounts      domain.AccountRepository
	stockLedger   domain.StockLedger
	accountLedger domain.AccountLedger
	locks         domain.LockCoordinator
	txManager     database.TxManager
	denominations domain.DenominationSet
	logger        logging.Logger
}

func NewBuyCase(
	querier database.Querier,
	products domain.ProductRepository,
	accounts domain.AccountRepository,
	stockLedger domain.StockLedger,
	accountLedger domain.AccountLedger,
	locks domain.LockCoordinator,
	txManager database.TxManager,
	denominations domain.DenominationSet,
	logger logging.Logger,
) *BuyCase {
	return &BuyCase{
		querier:       querier,
		products:      products,
		accounts:      accounts,
		stockLedger:   stockLedger,
		accountLedger: accountLedger,
		locks:         locks,
		txManager:     txManager,
		denominations: denominations,
		logger:        logger,
	}
}

// Buy charges the buyer amount * unit cost, moves it to the seller, takes the
// stock and pays the buyer's remaining deposit back as a list of coins. The
// remaining deposit itself stays on the account; the change list mirrors it.
func (bc *BuyCase) Buy(ctx context.Context, buyerId, productId uuid.UUID, amount int) (domain.TransactionResult, error) {
	if amount <= 0 {
		return domain.TransactionResult{}, &domain.InvalidAmountError{
			Msg: fmt.Sprintf("purchase amount must be positive, got %d", amount),
		}
	}

	// Seller id and cost never change during purchases, so the unlocked
	// pre-read is safe; stock and balances are re-read under the locks.
	product, err := bc.products.GetProduct(ctx, bc.querier, productId)
	if err != nil {
		return domain.TransactionResult{}, err
	}

	lockKeys := []string{
		domain.ProductLockKey(productId),
		domain.AccountLockKey(buyerId),
		domain.AccountLockKey(product.SellerId),
	}

	bc.locks.Acquire(lockKeys...)
	defer bc.locks.Release(lockKeys...)

	var result domain.TransactionResult

	err = bc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		current, err := bc.products.GetProduct(ctx, executor, productId)
		if err != nil {
			return err
		}

		buyer, err := bc.accounts.GetAccount(ctx, executor, buyerId)
		if err != nil {
			return err
		}

		totalCost := current.Cost * amount

		if current.AmountAvailable < amount {
			return &domain.InsufficientStockError{
				Msg: fmt.Sprintf("only %d units of %s available", current.AmountAvailable, current.Name),
			}
		}

		if buyer.Deposit < totalCost {
			return &domain.InsufficientFundsError{
				Msg: fmt.Sprintf("deposit %d cannot cover total cost %d", buyer.Deposit, totalCost),
			}
		}

		available, err := bc.stockLedger.Decrement(ctx, executor, productId, amount)
		if err != nil {
			return err
		}

		if _, err := bc.accountLedger.Credit(ctx, executor, current.SellerId, totalCost); err != nil {
			return err
		}

		remaining, err := bc.accountLedger.Debit(ctx, executor, buyerId, totalCost)
		if err != nil {
			return err
		}

		change, err := domain.ComputeChange(remaining, bc.denominations)
		if err != nil {
			bc.logger.Error("change computation failed, denomination set cannot represent deposit",
				"buyerId", buyerId, "remaining", remaining, "error", err)
			return err
		}

		current.AmountAvailable = available
		result = domain.TransactionResult{
			TotalSpent: totalCost,
			Product:    current,
			Change:     change,
		}

		return nil
	})
	if err != nil {
		return domain.TransactionResult{}, err
	}

	return result, nil
}
