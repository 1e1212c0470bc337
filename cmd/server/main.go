package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"linebot-admin/internal/config"
	"linebot-admin/internal/database"
	"linebot-admin/internal/handlers"
	"linebot-admin/internal/logger"
	"linebot-admin/internal/services"
	"linebot-admin/internal/utils"
)

func main() {
	newPass := flag.String("new-password", "", "Set new password")
	targetEmail := flag.String("email", "", "Email target")
	importFile := flag.String("import-configs", "", "Create LINE bot configs from a YAML file and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile}); err != nil {
		log.Fatal("failed to initialize logger: ", err)
	}

	db, err := database.Connect(cfg.DSN(), cfg.DBConnectRetries, gormLogLevel(cfg.LogLevel))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	validator := utils.NewValidator()
	authService := services.NewAuthService(db)
	lineBotService := services.NewLineBotService(
		database.NewLineBotConfigStore(db),
		services.NewLineClient(cfg.LinePushURL, cfg.LineTimeout),
		validator,
		cfg.BroadcastConcurrency,
	)

	if *newPass != "" && *targetEmail != "" {
		handlePasswordReset(ctx, authService, *targetEmail, *newPass)
		return
	}
	if *importFile != "" {
		if _, err := services.ImportLineBotConfigs(ctx, lineBotService, *importFile); err != nil {
			log.Fatal("import failed: ", err)
		}
		return
	}

	h := &handlers.Handler{
		LineBots: lineBotService,
		Apps:     services.NewPortalAppService(cfg.AppsFile),
		Auth:     authService,
		Tokens:   utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL),
		Ping:     func() error { return database.Ping(db) },
	}
	e := handlers.NewServer(h, validator, cfg.CORSOrigins)

	go func() {
		log.Infof("listening on :%s", cfg.AppPort)
		if err := e.Start(":" + cfg.AppPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
	closeDB(db)
	log.Info("server stopped")
}

func handlePasswordReset(ctx context.Context, auth *services.AuthService, email, password string) {
	created, err := auth.ResetPassword(ctx, email, password)
	if err != nil {
		log.Fatal("failed to reset password: ", err)
	}
	if created {
		log.Infof("user %s not found, created new admin user", email)
		return
	}
	log.Infof("password updated for %s", email)
}

func gormLogLevel(level string) gormlogger.LogLevel {
	if level == "debug" {
		return gormlogger.Info
	}
	return gormlogger.Warn
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}
