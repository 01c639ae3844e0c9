package main

import (
	"context"
	"os"

	"carconnect/config"
	"carconnect/pkg/api"
	"carconnect/pkg/logger"
	"carconnect/pkg/notifier"
	"carconnect/service"
	"carconnect/storage/blob"
	"carconnect/storage/postgres"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)

	pgStore, err := postgres.New(context.Background(), cfg, log)
	if err != nil {
		log.Error("Failed to connect to postgres", logger.Error(err))
		os.Exit(1)
	}
	defer pgStore.Close()

	blobStore, err := blob.NewDiskStore(cfg.UploadDir, cfg.PublicBaseURL, log)
	if err != nil {
		log.Error("Failed to init blob store", logger.Error(err))
		os.Exit(1)
	}

	leadNotifier, err := notifier.NewTelegram(&cfg, log)
	if err != nil {
		log.Error("Failed to init telegram notifier", logger.Error(err))
		os.Exit(1)
	}

	svc := service.New(pgStore, cfg, leadNotifier, log)

	// Sweep stale sessions left over from previous runs.
	if err := pgStore.Session().DeleteExpired(context.Background()); err != nil {
		log.Warning("failed to sweep expired sessions", logger.Error(err))
	}

	server := api.New(cfg, svc, blobStore, log)

	log.Info("CarConnect API is starting...", logger.Int("port", cfg.AppPort))
	if err := server.Run(); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}
