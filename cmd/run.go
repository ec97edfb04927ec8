package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"neonbank/config"
	"neonbank/database"
	"neonbank/domain/services"
	"neonbank/repository"
	"neonbank/web"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	cfg := config.Get()
	configureLogging(cfg)

	log.Info("Starting bank server...")

	// Apply pending schema migrations before opening the pool
	if err := database.MigrateUp(cfg.GetDatabaseURL()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	log.Info("Database connection established successfully")

	uowFactory := repository.NewUnitOfWorkFactory(db)

	ledgerService := services.NewLedgerService(uowFactory)
	accountService := services.NewAccountService(uowFactory, cfg.StartingBalance)
	casinoService := services.NewCasinoService(uowFactory, ledgerService)
	adminService := services.NewAdminService(uowFactory)

	server := web.NewServer(cfg, accountService, ledgerService, casinoService, adminService)

	errChan := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	log.Infof("Server is running in %s mode", cfg.Environment)

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Error shutting down HTTP server")
	}

	log.Info("Shutdown completed")
	return nil
}

func configureLogging(cfg *config.Config) {
	if cfg.Environment == "production" {
		log.SetFormatter(&log.JSONFormatter{})
		log.SetLevel(log.InfoLevel)
		return
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.DebugLevel)
}
