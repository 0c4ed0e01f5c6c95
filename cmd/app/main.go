package main

import (
	"fmt"
	"log/slog"
	"os"

	"dispatch/cmd"
	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/distributorrepo"
	"dispatch/internal/adapters/out/postgres/documentrepo"
	"dispatch/internal/adapters/out/postgres/reviewrepo"
	"dispatch/internal/adapters/out/postgres/shipmentrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	configs := getConfigs(logger)

	gormDB, err := openDatabase(configs)
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		os.Exit(1)
	}

	if err = migrate(gormDB); err != nil {
		logger.Error("Failed to migrate database schema", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(configs, gormDB, logger)

	if err = root.JobManager().StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer root.JobManager().StopAll()

	startWebServer(root, configs)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file found, using process environment")
	}
	return cmd.Config{
		HTTPPort:       os.Getenv("HTTP_PORT"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      os.Getenv("DB_SSLMODE"),
		InternalAPIKey: os.Getenv("INTERNAL_API_KEY"),
	}
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)
	return gorm.Open(pgdriver.Open(dsn), &gorm.Config{TranslateError: true})
}

func migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&courierrepo.CourierDTO{},
		&distributorrepo.DistributorDTO{},
		&shipmentrepo.ShipmentDTO{},
		&documentrepo.DocumentDTO{},
		&reviewrepo.ReviewDTO{},
	)
}

func startWebServer(root cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	server := httpin.NewServer(root.CreateHandlers())
	server.RegisterRoutes(e, configs.InternalAPIKey)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
