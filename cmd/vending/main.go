package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/szilard-n/vending-machine/internal/pkg/logging"
	"github.com/szilard-n/vending-machine/internal/vending/bootstrap"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	if err := godotenv.Load(); err != nil {
		defaultLogger.Info("no .env file found, relying on environment variables")
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		defaultLogger.Error("failed to load config", "error", err.Error())
		return
	}

	app := bootstrap.NewVendingApp(cfg, defaultLogger)

	if err := app.Run(mainCtx); err != nil {
		defaultLogger.Error("application stopped with error", "error", err.Error())
	}

	app.Shutdown()
}
