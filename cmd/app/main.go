package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"appcenar/cmd"
	httpadapter "appcenar/internal/adapters/in/http"
	"appcenar/internal/adapters/out/postgres/addressrepo"
	"appcenar/internal/adapters/out/postgres/courierrepo"
	"appcenar/internal/adapters/out/postgres/orderrepo"
	"appcenar/internal/adapters/out/postgres/productrepo"
	"appcenar/internal/adapters/out/postgres/taxconfigrepo"
	"appcenar/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	redisClient := redis.NewClient(&redis.Options{
		Addr: configs.RedisAddr,
		DB:   configs.RedisDB,
	})

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient)

	jobManager := jobs.NewJobManager(
		app.CreateAssignCourierCommandHandler(),
		app.CreateGetOrderStatsQueryHandler(),
		logger,
	)
	if configs.DispatchEnabled {
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// Missing .env is fine: plain environment variables still apply.
	_ = godotenv.Load(".env")

	redisDB, err := strconv.Atoi(envOrDefault("REDIS_DB", "0"))
	if err != nil {
		redisDB = 0
	}

	return cmd.Config{
		HTTPPort:        envOrDefault("HTTP_PORT", "8080"),
		DBHost:          envOrDefault("DB_HOST", "localhost"),
		DBPort:          envOrDefault("DB_PORT", "5432"),
		DBUser:          envOrDefault("DB_USER", "postgres"),
		DBPassword:      envOrDefault("DB_PASSWORD", "postgres"),
		DBName:          envOrDefault("DB_NAME", "appcenar"),
		DBSslMode:       envOrDefault("DB_SSLMODE", "disable"),
		RedisAddr:       envOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisDB:         redisDB,
		CartTTL:         envOrDefault("CART_TTL", "24h"),
		DispatchEnabled: envOrDefault("DISPATCH_ENABLED", "true") == "true",
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&courierrepo.CourierDTO{},
		&productrepo.ProductDTO{},
		&addressrepo.AddressDTO{},
		&taxconfigrepo.TaxConfigDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateSaveCartCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateAssignCourierCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateGetCartQueryHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetMerchantCatalogQueryHandler(),
		app.CreateGetOrderStatsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
