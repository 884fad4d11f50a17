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
	"github.com/esgmate/esg-platform/internal/infrastructure/memory"
	"github.com/esgmate/esg-platform/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.LoadMateriality()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	store := memory.NewMaterialityStore()
	materiality := service.NewMaterialityService(store, log)

	e := api.NewMaterialityRouter(cfg, materiality, log)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("materiality server failed")
		}
	}()
	log.Info().Str("addr", addr).Msg("materiality service started")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("materiality shutdown failed")
	}
}
