package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/szilard-n/vending-machine/internal/pkg/logging"
	"github.com/szilard-n/vending-machine/internal/vending/domain"
)

type BuyService interface {
	Buy(ctx context.Context, buyerId, productId uuid.UUID, amount int) (domain.TransactionResult, error)
}

type DepositService interface {
	Deposit(ctx context.Context, accountId uuid.UUID, amount int) (int, error)
	ResetDeposit(ctx context.Context, accountId uuid.UUID) (int, error)
}

type buyRequestBody struct {
	ProductId uuid.UUID `json:"productId" binding:"required"`
	Amount    int       `json:"amount" binding:"required,gt=0"`
}

type depositRequestBody struct {
	Amount int `json:"amount" binding:"required,gt=0"`
}

type productBody struct {
	Id              uuid.UUID `json:"id"`
	ProductName     string    `json:"productName"`
	Cost            int       `json:"cost"`
	AmountAvailable int       `json:"amountAvailable"`
}

type buyResponseBody struct {
	TotalSpent    int         `json:"totalSpent"`
	BoughtProduct productBody `json:"boughtProduct"`
	Change        []int       `json:"change"`
}

type depositResponseBody struct {
	Deposit int `json:"deposit"`
}

type TransactionHandler struct {
	buyService     BuyService
	depositService DepositService
	logger         logging.Logger
}

func NewTransactionHandler(buyService BuyService, depositService DepositService, logger logging.Logger) *TransactionHandler {
	return &TransactionHandler{
		buyService:     buyService,
		depositService: depositService,
		logger:         logger,
	}
}

func (h *TransactionHandler) BuyProduct(c *gin.Context) {
	var body buyRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	buyerId, ok := accountIdFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "unresolved caller"})
		return
	}

	result, err := h.buyService.Buy(c.Request.Context(), buyerId, body.ProductId, body.Amount)
	if err != nil {
		h.handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, buyResponseBody{
		TotalSpent: result.TotalSpent,
		BoughtProduct: productBody{
			Id:              result.Product.Id,
			ProductName:     result.Product.Name,
			Cost:            result.Product.Cost,
			AmountAvailable: result.Product.AmountAvailable,
		},
		Change: result.Change,
	})
}

func (h *TransactionHandler) MakeDeposit(c *gin.Context) {
	var body depositRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	accountId, ok := accountIdFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "unresolved caller"})
		return
	}

	deposit, err := h.depositService.Deposit(c.Request.Context(), accountId, body.Amount)
	if err != nil {
		h.handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, depositResponseBody{Deposit: deposit})
}

func (h *TransactionHandler) ResetDeposit(c *gin.Context) {
	accountId, ok := accountIdFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "unresolved caller"})
		return
	}

	deposit, err := h.depositService.ResetDeposit(c.Request.Context(), accountId)
	if err != nil {
		h.handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, depositResponseBody{Deposit: deposit})
}

func (h *TransactionHandler) handleDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, &domain.ProductNotFoundError{}) || errors.Is(err, &domain.AccountNotFoundError{}):
		c.JSON(http.StatusNotFound, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.InsufficientFundsError{}) ||
		errors.Is(err, &domain.InsufficientStockError{}) ||
		errors.Is(err, &domain.InvalidAmountError{}):
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
	default:
		h.logger.Error("transaction failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
	}
}
