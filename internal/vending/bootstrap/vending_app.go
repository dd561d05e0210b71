package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/szilard-n/vending-machine/internal/pkg/database"
	"github.com/szilard-n/vending-machine/internal/pkg/jwt"
	"github.com/szilard-n/vending-machine/internal/pkg/keylock"
	"github.com/szilard-n/vending-machine/internal/pkg/logging"
	"github.com/szilard-n/vending-machine/internal/vending/application"
	"github.com/szilard-n/vending-machine/internal/vending/domain"
	httpwrap "github.com/szilard-n/vending-machine/internal/vending/infrastructure/http"
	"github.com/szilard-n/vending-machine/internal/vending/infrastructure/postgres"
	"github.com/szilard-n/vending-machine/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	shutdownTimeout = 5 * time.Second
)

type VendingApp struct {
	cfg    VendingConfig
	logger logging.Logger

	server *http.Server
	dbpool *pgxpool.Pool
}

func NewVendingApp(cfg VendingConfig, logger logging.Logger) *VendingApp {
	return &VendingApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *VendingApp) Run(ctx context.Context) error {
	logger := a.logger
	cfg := a.cfg

	denominations, err := domain.NewDenominationSet(cfg.Coins)
	if err != nil {
		return fmt.Errorf("invalid coin configuration: %w", err)
	}

	dbURL := cfg.DbSettings.GetUrl()

	if err := database.MigrateDatabase(dbURL, migrations.FS, ".", "pgx", "postgres"); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	a.dbpool = dbpool
	txManager := database.NewDelegateTxManager(dbpool, logger)

	productsRepository := postgres.NewProductsRepository()
	accountsRepository := postgres.NewAccountsRepository()
	accountLedger := postgres.NewAccountLedger()
	stockLedger := postgres.NewStockLedger()
	locks := keylock.NewKeyedMutex()

	buyCase := application.NewBuyCase(
		dbpool,
		productsRepository,
		accountsRepository,
		stockLedger,
		accountLedger,
		locks,
		txManager,
		denominations,
		logger,
	)
	depositCase := application.NewDepositCase(accountLedger, locks, txManager, denominations)

	router := gin.Default()
	transactionHandler := httpwrap.NewTransactionHandler(buyCase, depositCase, logger)

	secret := []byte(cfg.JwtSecret)
	authenticated := router.Group("/api/transaction", httpwrap.NewAuthMiddleware(secret, jwt.NewJWTTokenParser(), logger))
	{
		buyers := authenticated.Group("/", httpwrap.RequireRole(domain.RoleBuyer))
		{
			buyers.POST("/product/buy", transactionHandler.BuyProduct)
			buyers.PUT("/deposit", transactionHandler.MakeDeposit)
			buyers.PUT("/deposit/reset", transactionHandler.ResetDeposit)
		}
	}

	a.server = &http.Server{
		Addr:    cfg.HttpPort,
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "port", cfg.HttpPort)

		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *VendingApp) Shutdown() {
	if a.server == nil {
		return
	}

	a.logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown failed", "error", err.Error())
	}

	a.dbpool.Close()
	a.logger.Info("http server stopped")
}
