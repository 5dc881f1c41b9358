package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/shop_discovery/config"
	"github.com/Gunvolt24/shop_discovery/internal/cache/session"
	cartclient "github.com/Gunvolt24/shop_discovery/internal/client/cart"
	"github.com/Gunvolt24/shop_discovery/internal/client/catalog"
	"github.com/Gunvolt24/shop_discovery/internal/client/ranking"
	"github.com/Gunvolt24/shop_discovery/internal/kafka"
	"github.com/Gunvolt24/shop_discovery/internal/ports"
	"github.com/Gunvolt24/shop_discovery/internal/projector"
	"github.com/Gunvolt24/shop_discovery/internal/repo/memory"
	"github.com/Gunvolt24/shop_discovery/internal/repo/postgres"
	"github.com/Gunvolt24/shop_discovery/internal/resolver"
	rest "github.com/Gunvolt24/shop_discovery/internal/transport/http"
	"github.com/Gunvolt24/shop_discovery/internal/usecase"
	"github.com/Gunvolt24/shop_discovery/pkg/logger"
	"github.com/Gunvolt24/shop_discovery/pkg/metrics"
	"github.com/Gunvolt24/shop_discovery/pkg/telemetry"
	"github.com/Gunvolt24/shop_discovery/pkg/validate"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер
	KafkaConsumer   ports.MessageConsumer // консьюмер событий корзины
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Сессия: фиксированный id продолжает прошлую, пустой — начинает новую.
	sessionID := cfg.Session.ID
	if sessionID == "" {
		sessionID = uuid.New().String()
		logg.Infof(ctx, "fresh session id=%s", sessionID)
	}

	// Долговременный KV сессии: Postgres при заданном DSN,
	// иначе in-memory (сессия живёт не дольше процесса).
	var store ports.SessionStore
	var pool *pgxpool.Pool
	if cfg.Postgres.DSN == "" {
		logg.Infof(ctx, "postgres dsn is empty, using in-memory session store")
		store = memory.NewSessionStore()
	} else {
		pool, err = postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if err != nil {
			if terr := shutdownTrace(context.Background()); terr != nil {
				logg.Warnf(ctx, "shutdown tracing: %v", terr)
			}
			if cErr := cleanupLogger(); cErr != nil {
				logg.Warnf(ctx, "cleanup logger: %v", cErr)
			}
			return nil, func() {}, err
		}
		store = postgres.NewSessionStore(pool, sessionID)
	}

	// Кэш разрешённых результатов поверх сессионного KV.
	resultCache := session.NewResultCache(store, logg)
	resultCache.Hydrate(ctx)

	// Клиенты внешних сервисов.
	rankingClient := ranking.NewClient(cfg.Ranking.BaseURL, cfg.Ranking.Timeout)
	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout)
	cartClient := cartclient.NewClient(cfg.Cart.BaseURL, cfg.Cart.Timeout)

	// Сборка зависимостей доменного слоя.
	res := resolver.NewResolver(rankingClient, catalogClient, logg)
	proj := projector.NewProjector()
	searchService := usecase.NewSearchService(res, resultCache, proj, logg)
	homeService := usecase.NewHomeService(res, resultCache, logg)
	cartService := usecase.NewCartService(res, cartClient, logg, validate.NewEventValidator())

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Роутер и HTTP-сервер (+ otelgin при включённом трейсинге).
	httpHandler := rest.NewHandler(searchService, homeService, cartService, logg)
	var extra []gin.HandlerFunc
	if cfg.Tracing.Enabled {
		extra = append(extra, otelgin.Middleware(cfg.Tracing.ServiceName))
	}
	router := rest.NewRouter(httpHandler, extra...)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	// Конфигурация и создание консьюмера событий корзины.
	kafkaCfg := kafka.ConsumerConfig{
		Brokers:        cfg.Kafka.Brokers,
		GroupID:        cfg.Kafka.GroupID,
		Topic:          cfg.Kafka.Topic,
		StartOffset:    cfg.Kafka.StartOffset,
		ProcessTimeout: cfg.Kafka.ProcessTimeout,
		RetryInitial:   cfg.Kafka.RetryInitial,
		RetryMax:       cfg.Kafka.RetryMax,
	}
	consumer := kafka.NewConsumer(&kafkaCfg, cartService, logg)

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		KafkaConsumer:   consumer,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if err := consumer.Close(); err != nil {
			logg.Warnf(ctx, "kafka consumer close error: %v", err)
		}

		if pool != nil {
			pool.Close()
		}
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	// Запуск консьюмера.
	go func() {
		a.Logger.Infof(ctx, "kafka consumer starting")
		if err := a.KafkaConsumer.Run(ctx); err != nil {
			errCh <- err
		}
	}()

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Остановка Kafka-консьюмера
	if err := a.KafkaConsumer.Close(); err != nil {
		a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
