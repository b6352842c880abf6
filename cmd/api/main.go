package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petweb/internal/adapters/storage/postgres"
	"petweb/internal/config"
	"petweb/internal/platform/logger"
	"petweb/internal/router"
)

// @title Cat API
// @version 1.0.0
// @description API endpoints for managing cats
// @BasePath /
func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	opts := router.Options{
		UploadDir: cfg.UploadDir,
		JWTSecret: cfg.JWTSecret,
		Logger:    zlog,
	}

	if cfg.DBDSN != "" {
		db, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			zlog.Fatalf("opening database: %v", err)
		}
		defer db.Close()
		opts.DB = db
		zlog.Info("connected to database")
	}

	r, err := router.NewRouter(opts)
	if err != nil {
		zlog.Fatalf("building router: %v", err)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
		<-sigc

		zlog.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			zlog.Errorf("shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	zlog.Infof("starting server on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatalf("server error: %v", err)
	}

	<-idleConnsClosed
}
