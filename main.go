package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	intconfig "hotelbooking/internal/config"
	router "hotelbooking/internal/http"
	"hotelbooking/internal/repositories"
	"hotelbooking/internal/worker"
	"hotelbooking/pkg/redis"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := intconfig.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	if _, err := intconfig.ConnectDB(cfg.Database); err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer intconfig.CloseDB()

	redisClient, err := redis.NewRedisClient(cfg.Redis)
	if err != nil {
		logrus.Fatalf("Failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	releaseWorker := worker.NewRoomReleaseWorker(repositories.RoomRepository{}, cfg.Worker.ReleaseInterval)
	go releaseWorker.Start(workerCtx)

	r := router.NewRouter(cfg, redisClient)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.Infof("Server listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server shutdown failed: %v", err)
	}

	logrus.Info("Server stopped cleanly")
}
