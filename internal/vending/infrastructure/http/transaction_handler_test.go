package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	mocks "github.com/szilard-n/vending-machine/gen/mocks/http"
	loggingmocks "github.com/szilard-n/vending-machine/gen/mocks/logging"
	"github.com/szilard-n/vending-machine/internal/vending/domain"
)

var (
	testBuyerId   = uuid.MustParse("1b671a64-40d5-491e-99b0-da01ff1f3341")
	testProductId = uuid.MustParse("9e107d9d-372e-4bf1-b13e-3f5ba2a3f9d2")
)

func TestTransactionHandler_BuyProduct(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		requestBody    interface{}
		expectedStatus int

		prepareFn       func(t *testing.T, mockService *mocks.MockBuyService)
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}

	expectedResult := domain.TransactionResult{
		TotalSpent: 20,
		Product: domain.Product{
			Id:              testProductId,
			Name:            "soda",
			Cost:            10,
			AmountAvailable: 98,
			SellerId:        uuid.New(),
		},
		Change: []int{50, 20, 10},
	}

	tests := []testCase{
		{
			name: "successful purchase",
			requestBody: buyRequestBody{
				ProductId: testProductId,
				Amount:    2,
			},
			expectedStatus: http.StatusOK,

			prepareFn: func(t *testing.T, mockService *mocks.MockBuyService) {
				mockService.EXPECT().
					Buy(gomock.Any(), testBuyerId, testProductId, 2).
					Return(expectedResult, nil).
					Times(1)
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var response buyResponseBody
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, expectedResult.TotalSpent, response.TotalSpent)
				assert.Equal(t, expectedResult.Product.Id, response.BoughtProduct.Id)
				assert.Equal(t, expectedResult.Product.AmountAvailable, response.BoughtProduct.AmountAvailable)
				assert.Equal(t, expectedResult.Change, response.Change)
			},
		},
		{
			name: "invalid_request_body",
			requestBody: map[string]interface{}{
				"invalid": "data",
			},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, mockService *mocks.MockBuyService) {},
		},
		{
			name: "invalid_amount_zero",
			requestBody: map[string]interface{}{
				"productId": testProductId.String(),
				"amount":    0,
			},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, mockService *mocks.MockBuyService) {},
		},
		{
			name: "product_not_found",
			requestBody: buyRequestBody{
				ProductId: testProductId,
				Amount:    2,
			},
			expectedStatus: http.StatusNotFound,

			prepareFn: func(t *testing.T, mockService *mocks.MockBuyService) {
				mockService.EXPECT().
					Buy(gomock.Any(), testBuyerId, testProductId, 2).
					Return(domain.TransactionResult{}, &domain.ProductNotFoundError{Msg: "product not found"})
			},
		},
		{
			name: "insufficient_funds",
			requestBody: buyRequestBody{
				ProductId: testProductId,
				Amount:    2,
			},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, mockService *mocks.MockBuyService) {
				mockService.EXPECT().
					Buy(gomock.Any(), testBuyerId, testProductId, 2).
					Return(domain.TransactionResult{}, &domain.InsufficientFundsError{Msg: "deposit too low"})
			},
		},
		{
			name: "insufficient_stock",
			requestBody: buyRequestBody{
				ProductId: testProductId,
				Amount:    2,
			},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, mockService *mocks.MockBuyService) {
				mockService.EXPECT().
					Buy(gomock.Any(), testBuyerId, testProductId, 2).
					Return(domain.TransactionResult{}, &domain.InsufficientStockError{Msg: "not enough stock"})
			},
		},
		{
			name: "internal_server_error",
			requestBody: buyRequestBody{
				ProductId: testProductId,
				Amount:    2,
			},
			expectedStatus: http.StatusInternalServerError,

			prepareFn: func(t *testing.T, mockService *mocks.MockBuyService) {
				mockService.EXPECT().
					Buy(gomock.Any(), testBuyerId, testProductId, 2).
					Return(domain.TransactionResult{}, assert.AnError)
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			mockService := mocks.NewMockBuyService(ctrl)
			mockLogger := loggingmocks.NewMockLogger(ctrl)
			mockLogger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
			tt.prepareFn(t, mockService)

			handler := NewTransactionHandler(mockService, mocks.NewMockDepositService(ctrl), mockLogger)

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)

			bodyBytes, _ := json.Marshal(tt.requestBody)
			c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(bodyBytes))
			c.Request.Header.Set("Content-Type", "application/json")
			c.Set(accountIdContextKey, testBuyerId)

			handler.BuyProduct(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, writer)
			}
		})
	}
}

func TestTransactionHandler_BuyProduct_UnresolvedCaller(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	handler := NewTransactionHandler(
		mocks.NewMockBuyService(ctrl),
		mocks.NewMockDepositService(ctrl),
		loggingmocks.NewMockLogger(ctrl),
	)

	writer := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(writer)

	bodyBytes, _ := json.Marshal(buyRequestBody{ProductId: testProductId, Amount: 1})
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(bodyBytes))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.BuyProduct(c)

	assert.Equal(t, http.StatusUnauthorized, writer.Code)
}

func TestTransactionHandler_MakeDeposit(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		requestBody    interface{}
		expectedStatus int

		prepareFn       func(t *testing.T, mockService *mocks.MockDepositService)
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}

	tests := []testCase{
		{
			name:           "successful deposit",
			requestBody:    depositRequestBody{Amount: 50},
			expectedStatus: http.StatusOK,

			prepareFn: func(t *testing.T, mockService *mocks.MockDepositService) {
				mockService.EXPECT().
					Deposit(gomock.Any(), testBuyerId, 50).
					Return(150, nil).
					Times(1)
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var response depositResponseBody
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, 150, response.Deposit)
			},
		},
		{
			name: "invalid_request_body",
			requestBody: map[string]interface{}{
				"invalid": "data",
			},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, mockService *mocks.MockDepositService) {},
		},
		{
			name:           "unsupported_coin",
			requestBody:    depositRequestBody{Amount: 3},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, mockService *mocks.MockDepositService) {
				mockService.EXPECT().
					Deposit(gomock.Any(), testBuyerId, 3).
					Return(0, &domain.InvalidAmountError{Msg: "coin not accepted"})
			},
		},
		{
			name:           "account_not_found",
			requestBody:    depositRequestBody{Amount: 50},
			expectedStatus: http.StatusNotFound,

			prepareFn: func(t *testing.T, mockService *mocks.MockDepositService) {
				mockService.EXPECT().
					Deposit(gomock.Any(), testBuyerId, 50).
					Return(0, &domain.AccountNotFoundError{Msg: "account not found"})
			},
		},
		{
			name:           "internal_server_error",
			requestBody:    depositRequestBody{Amount: 50},
			expectedStatus: http.StatusInternalServerError,

			prepareFn: func(t *testing.T, mockService *mocks.MockDepositService) {
				mockService.EXPECT().
					Deposit(gomock.Any(), testBuyerId, 50).
					Return(0, assert.AnError)
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			mockService := mocks.NewMockDepositService(ctrl)
			mockLogger := loggingmocks.NewMockLogger(ctrl)
			mockLogger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
			tt.prepareFn(t, mockService)

			handler := NewTransactionHandler(mocks.NewMockBuyService(ctrl), mockService, mockLogger)

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)

			bodyBytes, _ := json.Marshal(tt.requestBody)
			c.Request = httptest.NewRequest(http.MethodPut, "/", bytes.NewReader(bodyBytes))
			c.Request.Header.Set("Content-Type", "application/json")
			c.Set(accountIdContextKey, testBuyerId)

			handler.MakeDeposit(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, writer)
			}
		})
	}
}

func TestTransactionHandler_ResetDeposit(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		expectedStatus int

		prepareFn       func(t *testing.T, mockService *mocks.MockDepositService)
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}

	tests := []testCase{
		{
			name:           "successful reset",
			expectedStatus: http.StatusOK,

			prepareFn: func(t *testing.T, mockService *mocks.MockDepositService) {
				mockService.EXPECT().
					ResetDeposit(gomock.Any(), testBuyerId).
					Return(0, nil).
					Times(1)
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var response depositResponseBody
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, 0, response.Deposit)
			},
		},
		{
			name:           "account_not_found",
			expectedStatus: http.StatusNotFound,

			prepareFn: func(t *testing.T, mockService *mocks.MockDepositService) {
				mockService.EXPECT().
					ResetDeposit(gomock.Any(), testBuyerId).
					Return(0, &domain.AccountNotFoundError{Msg: "account not found"})
			},
		},
		{
			name:           "internal_server_error",
			expectedStatus: http.StatusInternalServerError,

			prepareFn: func(t *testing.T, mockService *mocks.MockDepositService) {
				mockService.EXPECT().
					ResetDeposit(gomock.Any(), testBuyerId).
					Return(0, assert.AnError)
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			mockService := mocks.NewMockDepositService(ctrl)
			mockLogger := loggingmocks.NewMockLogger(ctrl)
			mockLogger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
			tt.prepareFn(t, mockService)

			handler := NewTransactionHandler(mocks.NewMockBuyService(ctrl), mockService, mockLogger)

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)
			c.Request = httptest.NewRequest(http.MethodPut, "/", nil)
			c.Set(accountIdContextKey, testBuyerId)

			handler.ResetDeposit(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, writer)
			}
		})
	}
}
