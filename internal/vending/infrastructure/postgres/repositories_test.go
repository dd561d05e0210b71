package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/szilard-n/vending-machine/internal/vending/domain"
)

func TestProductsRepository_GetProduct(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string

		expectedRes domain.Product
		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name: "product found",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "product_name", "cost", "amount_available", "seller_id"}).
					AddRow(testProductId, "soda", 10, 100, testAccountId)
				mock.ExpectQuery("SELECT").
					WithArgs(testProductId).
					WillReturnRows(rows)
			},
			expectedRes: domain.Product{
				Id:              testProductId,
				Name:            "soda",
				Cost:            10,
				AmountAvailable: 100,
				SellerId:        testAccountId,
			},
			expectedErr: nil,
		},
		{
			name: "product not found",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs(testProductId).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: &domain.ProductNotFoundError{},
		},
		{
			name: "database error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs(testProductId).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repo := NewProductsRepository()
			res, err := repo.GetProduct(t.Context(), mock, testProductId)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}
		})
	}
}

func TestAccountsRepository_GetAccount(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string

		expectedRes domain.Account
		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name: "account found",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "username", "role", "deposit"}).
					AddRow(testAccountId, "buyer1", domain.RoleBuyer, 100)
				mock.ExpectQuery("SELECT").
					WithArgs(testAccountId).
					WillReturnRows(rows)
			},
			expectedRes: domain.Account{
				Id:       testAccountId,
				Username: "buyer1",
				Role:     domain.RoleBuyer,
				Deposit:  100,
			},
			expectedErr: nil,
		},
		{
			name: "account not found",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs(testAccountId).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: &domain.AccountNotFoundError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repo := NewAccountsRepository()
			res, err := repo.GetAccount(t.Context(), mock, testAccountId)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}
		})
	}
}
