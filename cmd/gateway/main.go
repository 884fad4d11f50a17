package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/esgmate/esg-platform/internal/api"
	"github.com/esgmate/esg-platform/internal/core/service"
	"github.com/esgmate/esg-platform/internal/infrastructure/config"
	"github.com/esgmate/esg-platform/internal/infrastructure/probe"
	"github.com/esgmate/esg-platform/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.LoadGateway()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	endpoints := cfg.Services.Endpoints()
	prober := probe.NewHTTPProber(time.Duration(cfg.ProbeTimeoutSeconds)*time.Second, log)
	health := service.NewHealthService(endpoints, prober, log)

	e := api.NewGatewayRouter(cfg, health, log)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("gateway server failed")
		}
	}()
	log.Info().Str("addr", addr).Int("services", len(endpoints)).Msg("gateway started")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("gateway shutdown failed")
	}
}
