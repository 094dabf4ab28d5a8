package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"pima_backend/internal/app/config"
	"pima_backend/internal/app/di"
	"pima_backend/internal/app/router"
	forecasthandler "pima_backend/internal/feature/forecast/transport/handler"
	forecastusecase "pima_backend/internal/feature/forecast/usecase"
	priceshandler "pima_backend/internal/feature/prices/transport/handler"
	pricesusecase "pima_backend/internal/feature/prices/usecase"
	"pima_backend/internal/web"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// Upstream
	pimaClient := di.NewPIMAClient(cfg.PIMA)

	// Usecase
	pricesUC := pricesusecase.NewPricesUsecase(pimaClient)
	forecastUC := forecastusecase.NewForecastUsecase(pimaClient)

	// Handler
	pricesH := priceshandler.NewPricesHandler(pricesUC)
	forecastH := forecasthandler.NewForecastHandler(forecastUC)

	tmpl, err := web.Templates()
	if err != nil {
		log.Fatalf("failed to parse templates: %v", err)
	}
	pages := web.NewPages(forecastusecase.Horizon)

	// ルータ生成
	r := router.NewRouter(pricesH, forecastH, pages, router.Options{
		Logger:             logger,
		Templates:          tmpl,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server listening", "addr", srv.Addr, "pima_url", cfg.PIMA.URL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
