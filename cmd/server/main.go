package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/kaiwenlow/simple-auth-be/internal/config"
	"github.com/kaiwenlow/simple-auth-be/internal/server"
	"github.com/kaiwenlow/simple-auth-be/internal/storage/postgres"
)

func main() {
	loadLocalEnv()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	ctx := context.Background()
	userStore, err := postgres.NewUserStore(ctx, cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("init database")
	}
	defer userStore.Close()

	srv, err := server.New(cfg, userStore)
	if err != nil {
		logrus.WithError(err).Fatal("init server")
	}

	go func() {
		logrus.WithFields(logrus.Fields{
			"addr":        cfg.HTTPAddress(),
			"environment": cfg.Environment,
		}).Info("auth backend listening")
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("http server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logrus.WithError(err).Error("graceful shutdown error")
	}
}

func loadLocalEnv() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found; relying on existing environment")
	}
}
