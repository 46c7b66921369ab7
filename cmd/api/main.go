package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/vetclinic-api/internal/auth"
	"github.com/BruksfildServices01/vetclinic-api/internal/config"
	dbpkg "github.com/BruksfildServices01/vetclinic-api/internal/db"
	"github.com/BruksfildServices01/vetclinic-api/internal/logging"
	"github.com/BruksfildServices01/vetclinic-api/internal/middleware"
	"github.com/BruksfildServices01/vetclinic-api/internal/notify"
	"github.com/BruksfildServices01/vetclinic-api/internal/payment"
	"github.com/BruksfildServices01/vetclinic-api/internal/routes"
	"github.com/BruksfildServices01/vetclinic-api/internal/storage"
	"github.com/BruksfildServices01/vetclinic-api/internal/timezone"
)

func main() {

	cfg := config.Load()

	logger, err := logging.Init(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	store, err := dbpkg.NewStore(ctx, cfg)
	if err != nil {
		zap.L().Fatal("failed to open store", zap.Error(err))
	}
	defer store.Close()

	var gateway payment.Gateway = payment.LocalGateway{}
	if cfg.MercadoPagoAccessToken != "" {
		mp, err := payment.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
		if err != nil {
			zap.L().Fatal("failed to configure mercadopago", zap.Error(err))
		}
		gateway = mp
	}

	deps := routes.Deps{
		Store:    store,
		Tokens:   auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL),
		Sink:     storage.New(cfg),
		Gateway:  gateway,
		Sender:   notify.NewSMTPSender(cfg),
		Location: timezone.Location(cfg.ClinicTimezone),
	}
	if !cfg.S3Enabled() {
		deps.StaticDir = cfg.StaticDir
		deps.StaticURLPrefix = cfg.StaticURLPrefix
	}

	if cfg.LogMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	app := routes.RegisterRoutes(r, deps)
	defer app.Close()

	if err := app.Auth.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
		zap.L().Error("failed to seed admin user", zap.Error(err))
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		zap.L().Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("server shutdown", zap.Error(err))
	}
}
