package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"rentalvoice/cmd"
	"rentalvoice/internal/adapters/out/memkv"
	"rentalvoice/internal/adapters/out/postgres/kvstore"
	"rentalvoice/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	root := cmd.NewCompositionRoot(configs, createKeyValueStore(configs, logger), logger)

	if err := root.ReadModel().Refresh(context.Background()); err != nil {
		logger.Error("Initial read model load failed", "error", err)
	}

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()
	defer root.SessionManager().End()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:             os.Getenv("HTTP_PORT"),
		DBHost:               os.Getenv("DB_HOST"),
		DBPort:               os.Getenv("DB_PORT"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               os.Getenv("DB_NAME"),
		DBSslMode:            os.Getenv("DB_SSLMODE"),
		VoiceAgentURL:        os.Getenv("VOICE_AGENT_URL"),
		VoiceAgentID:         os.Getenv("VOICE_AGENT_ID"),
		ReadModelRefreshCron: os.Getenv("READ_MODEL_REFRESH_CRON"),
	}
}

// createKeyValueStore opens the Postgres-backed store when DB_HOST is set and
// falls back to the in-memory store otherwise.
func createKeyValueStore(configs cmd.Config, logger *slog.Logger) ports.KeyValueStore {
	if configs.DBHost == "" {
		logger.Warn("DB_HOST not set, orders are stored in memory only")
		return memkv.NewStore()
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&kvstore.KVEntryDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return kvstore.NewGormKeyValueStore(db)
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	root.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
