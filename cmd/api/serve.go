package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sangkips/sales-engine-api/internal/application/service"
	"github.com/sangkips/sales-engine-api/internal/infrastructure/database"
	"github.com/sangkips/sales-engine-api/internal/infrastructure/repository"
	"github.com/sangkips/sales-engine-api/internal/presentation/http/handler"
	"github.com/sangkips/sales-engine-api/internal/presentation/http/routes"
	"github.com/sangkips/sales-engine-api/pkg/metrics"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE:  runServe,
	}
	addServeFlags(cmd)
	return cmd
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("migrate", true, "run migrations before serving")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	migrate, err := cmd.Flags().GetBool("migrate")
	if err != nil {
		return err
	}
	if migrate {
		if err := database.AutoMigrate(a.db); err != nil {
			return err
		}
	}

	var httpMetrics *metrics.HTTPMetrics
	if a.cfg.Metrics.Enabled {
		httpMetrics = metrics.NewHTTPMetrics(a.cfg.App.Name)
	}

	router := routes.Setup(newHandlers(a.db, a.cfg.Ranking.DefaultQuantity), &routes.Deps{
		Cfg:     a.cfg,
		Logger:  a.log,
		Metrics: httpMetrics,
	})

	port := a.cfg.App.Port
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("starting server",
			zap.String("addr", srv.Addr),
			zap.String("environment", a.cfg.App.Env),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newHandlers wires repositories, services and handlers
func newHandlers(db *gorm.DB, defaultQuantity int) *routes.Handlers {
	merchantRepo := repository.NewMerchantRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	itemRepo := repository.NewItemRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	invoiceItemRepo := repository.NewInvoiceItemRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	ranking := service.RankingOptions{DefaultQuantity: defaultQuantity}

	merchantService := service.NewMerchantService(merchantRepo, itemRepo, invoiceRepo, analyticsRepo, ranking)
	customerService := service.NewCustomerService(customerRepo, invoiceRepo, transactionRepo, analyticsRepo)
	itemService := service.NewItemService(itemRepo, merchantRepo, invoiceItemRepo, analyticsRepo, ranking)
	invoiceService := service.NewInvoiceService(invoiceRepo, itemRepo, customerRepo, merchantRepo, invoiceItemRepo, transactionRepo)
	invoiceItemService := service.NewInvoiceItemService(invoiceItemRepo, invoiceRepo, itemRepo)
	transactionService := service.NewTransactionService(transactionRepo, invoiceRepo)

	return &routes.Handlers{
		Merchant:    handler.NewMerchantHandler(merchantService),
		Customer:    handler.NewCustomerHandler(customerService),
		Item:        handler.NewItemHandler(itemService),
		Invoice:     handler.NewInvoiceHandler(invoiceService),
		InvoiceItem: handler.NewInvoiceItemHandler(invoiceItemService),
		Transaction: handler.NewTransactionHandler(transactionService),
	}
}
