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

	cfg := config.LoadAuth()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	store := memory.NewUserStore()
	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	auth := service.NewAuthService(store, hasher, tokens, cfg.PasswordMinLength, log)

	e := api.NewAuthRouter(cfg, auth, log)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("auth server failed")
		}
	}()
	log.Info().Str("addr", addr).Msg("auth service started")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("auth shutdown failed")
	}
}
