package main

import (
	"context"
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/tompettersson/reparatur-formular/internal/config"
	apphttp "github.com/tompettersson/reparatur-formular/internal/http"
	"github.com/tompettersson/reparatur-formular/internal/storage"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	store, err := storage.New(context.Background(), cfg.Upload)
	if err != nil {
		log.Fatalf("failed to initialize photo storage: %v", err)
	}

	r := apphttp.NewRouter(cfg, logger, db, store)
	logger.Info("listening", slog.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
