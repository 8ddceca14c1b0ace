package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/addismart/catalog-service/internal/app/catalog/queries"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/check_stock"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/featured_products"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/get_product"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/list_products"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/low_stock"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/search_products"
	"github.com/addismart/catalog-service/internal/app/catalog/repo"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/activate_product"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/apply_discount"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/create_product"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/deactivate_product"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/delete_product"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/inventory"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/rate_product"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/remove_discount"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/restore_product"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/update_price"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/update_stock"
	"github.com/addismart/catalog-service/internal/config"
	"github.com/addismart/catalog-service/internal/metrics"
	"github.com/addismart/catalog-service/internal/outbox"
	"github.com/addismart/catalog-service/internal/pkg/clock"
	"github.com/addismart/catalog-service/internal/pkg/committer"
	catalogtransport "github.com/addismart/catalog-service/internal/transport/http/catalog"
)

func main() {
	cfg, err := config.Load(os.Getenv("CATALOG_CONFIG"))
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	log.SetFormatter(&log.JSONFormatter{})
	logger := log.WithField("component", "server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		logger.Info("shutdown signal received")
		cancel()
	}()

	client, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
	if err != nil {
		logger.WithError(err).Fatal("spanner client")
	}
	defer client.Close()

	clk := clock.RealClock{}
	prodRepo := repo.NewProductRepo()
	invRepo := repo.NewInventoryRepo()
	outboxRepo := repo.NewOutboxRepo()
	cm := committer.NewAdapter(client)
	readModel := queries.NewSpannerReadModel(client)
	inventories := queries.NewSpannerInventoryReadModel(client)

	m := metrics.NewCatalogMetrics()

	cmds := catalogtransport.Commands{
		Create:         create_product.NewInteractor(prodRepo, outboxRepo, cm, readModel, clk),
		UpdatePrice:    update_price.NewInteractor(prodRepo, outboxRepo, cm, readModel, clk),
		UpdateStock:    update_stock.NewInteractor(prodRepo, outboxRepo, cm, readModel, clk),
		Rate:           rate_product.NewInteractor(prodRepo, outboxRepo, cm, readModel, clk),
		ApplyDiscount:  apply_discount.NewInteractor(prodRepo, outboxRepo, cm, readModel, clk),
		RemoveDiscount: remove_discount.NewInteractor(prodRepo, outboxRepo, cm, readModel, clk),
		Delete:         delete_product.NewInteractor(prodRepo, outboxRepo, cm, readModel, clk),
		Restore:        restore_product.NewInteractor(prodRepo, outboxRepo, cm, readModel, clk),
		Activate:       activate_product.NewInteractor(prodRepo, outboxRepo, cm, readModel, clk),
		Deactivate:     deactivate_product.NewInteractor(prodRepo, outboxRepo, cm, readModel, clk),
		Inventory:      inventory.NewInteractor(invRepo, outboxRepo, cm, readModel, inventories, clk),
	}
	qrys := catalogtransport.Queries{
		Get:         get_product.NewHandler(readModel),
		List:        list_products.NewHandler(readModel),
		Search:      search_products.NewHandler(readModel),
		Featured:    featured_products.NewHandler(readModel),
		LowStock:    low_stock.NewHandler(readModel),
		CheckStock:  check_stock.NewHandler(readModel),
		Inventories: inventories,
	}
	h := catalogtransport.NewHandler(cmds, qrys, m, log.WithField("component", "http"))

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(requestLog(log.WithField("component", "http")))
	e.Use(requestMetrics(m))
	h.RegisterRoutes(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if cfg.RelayEnabled() {
		publisher, err := outbox.NewKafkaPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.WithError(err).Fatal("kafka publisher")
		}
		defer publisher.Close()

		relay := outbox.NewRelay(client, publisher, cfg.KafkaTopic, cfg.OutboxPollInterval, m)
		go relay.Run(ctx)
	} else {
		logger.Info("outbox relay disabled, no kafka brokers configured")
	}

	go func() {
		logger.WithField("addr", cfg.HTTPAddr).Info("http server listening")
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("http serve")
			cancel()
		}
	}()

	<-ctx.Done()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("http shutdown")
	}
	logger.Info("server stopped")
}

func requestLog(logger *log.Entry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			logger.WithFields(log.Fields{
				"method":  c.Request().Method,
				"path":    c.Request().URL.Path,
				"status":  c.Response().Status,
				"elapsed": time.Since(start).String(),
			}).Info("request")
			return err
		}
	}
}

func requestMetrics(m *metrics.CatalogMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			m.RecordRequestDuration(c.Request().Method, c.Path(), time.Since(start))
			return err
		}
	}
}
