package main

import (
	"context"
	"os"

	"carconnect/config"
	"carconnect/pkg/logger"
	"carconnect/pkg/notifier"
	"carconnect/service"
	"carconnect/storage/postgres"
)

// Provisions the single admin account from ADMIN_EMAIL / ADMIN_PASSWORD.
// Run once against a fresh database.
func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)

	if cfg.AdminPassword == "" {
		log.Error("ADMIN_PASSWORD must be set")
		os.Exit(1)
	}

	pg, err := postgres.New(context.Background(), cfg, log)
	if err != nil {
		log.Error("Failed to connect to postgres", logger.Error(err))
		os.Exit(1)
	}
	defer pg.Close()

	svc := service.New(pg, cfg, notifier.NewNop(), log)

	user, err := svc.Auth().CreateAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		log.Error("Failed to create admin", logger.Error(err))
		os.Exit(1)
	}

	log.Info("admin account created", logger.String("email", user.Email), logger.Int64("id", user.ID))
}
