package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ysbenali/wasales-bridge/internal/ai"
	"github.com/ysbenali/wasales-bridge/internal/convo"
	"github.com/ysbenali/wasales-bridge/internal/extract"
	"github.com/ysbenali/wasales-bridge/internal/ledger"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	port := envDefault("PORT", "8080")
	product := envDefault("PRODUCT_NAME", "Smart Watch X1")
	price := envDefault("PRODUCT_PRICE", "299 MAD")
	naturalMode := os.Getenv("NATURAL_MODE") == "true"
	sessionTimeout := envDuration(logger, "SESSION_TIMEOUT", 2*time.Hour)
	sweepInterval := envDuration(logger, "SWEEP_INTERVAL", 30*time.Minute)

	// --- Ledger backend ---
	var backend ledger.Ledger
	switch {
	case os.Getenv("DATABASE_URL") != "":
		db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
		if err != nil {
			logger.Fatal("db open failed", zap.Error(err))
		}
		defer db.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := db.PingContext(pingCtx); err != nil {
			cancel()
			logger.Fatal("db ping failed", zap.Error(err))
		}
		cancel()
		backend = ledger.NewPostgresLedger(db)
	case os.Getenv("SHEET_WEBHOOK_URL") != "":
		backend = ledger.NewSheetLedger(os.Getenv("SHEET_WEBHOOK_URL"))
	default:
		logger.Fatal("neither DATABASE_URL nor SHEET_WEBHOOK_URL is set")
	}

	// --- AI collaborator (optional) ---
	var aiClient ai.AI
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		aiClient = ai.NewOpenAIClient(key, os.Getenv("OPENAI_MODEL"), 15*time.Second, logger)
	} else {
		logger.Info("OPENAI_API_KEY not set, deterministic extraction only")
	}

	// --- Transport outbound ---
	sendURL := os.Getenv("SEND_API_URL")
	if sendURL == "" {
		logger.Fatal("SEND_API_URL is not set")
	}
	outbound := convo.NewHTTPOutbound(sendURL, os.Getenv("SEND_API_TOKEN"), logger)

	// --- Module wiring ---
	store := convo.NewStore()
	extractor := extract.New(aiClient, logger)
	gateway := ledger.NewGateway(backend, 10*time.Second, logger)
	svc := convo.NewService(store, extractor, gateway, outbound, convo.Config{
		Product:     product,
		Price:       price,
		NaturalMode: naturalMode,
	}, logger)
	handler := convo.NewHandler(svc)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	convo.RegisterRoutes(r, handler)

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{Addr: ":" + port, Handler: r}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("port", port), zap.Bool("natural_mode", naturalMode))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return convo.RunSweeper(ctx, store, sweepInterval, sessionTimeout, logger)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("server error", zap.Error(err))
	}
	logger.Info("shut down")
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(logger *zap.Logger, key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logger.Warn("bad duration, using default",
			zap.String("key", key), zap.String("value", v), zap.Duration("default", def))
		return def
	}
	return d
}
