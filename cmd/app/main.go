package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"supplyline/cmd"
	httpserver "supplyline/internal/adapters/in/http"
	"supplyline/internal/jobs"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	redisClient := connectRedis(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:            goDotEnvVariable("REDIS_ADDR"),
		OptimizerURL:         goDotEnvVariable("OPTIMIZER_URL"),
		OptimizerVehicle:     goDotEnvVariable("OPTIMIZER_VEHICLE"),
		OptimizationSchedule: goDotEnvVariable("OPTIMIZATION_SCHEDULE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

// connectRedis returns nil when no address is configured; the directory
// then reads straight from the database.
func connectRedis(configs cmd.Config) *redis.Client {
	if configs.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	schedule := configs.OptimizationSchedule
	if schedule == "" {
		schedule = "0 0 5 * * *"
	}

	jobManager := jobs.NewJobManager(
		app.CreateOptimizeDueRoutesCommandHandler(),
		app.CreateCompleteFinishedRoutesCommandHandler(),
		configs.OptimizerVehicle,
		schedule,
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpserver.NewServer(httpserver.Handlers{
		AdjustStock:           app.CreateAdjustStockCommandHandler(),
		RecordOutwardUsage:    app.CreateRecordOutwardUsageCommandHandler(),
		RecordUnlisted:        app.CreateRecordUnlistedInventoryCommandHandler(),
		TransferToVan:         app.CreateTransferWarehouseToVanCommandHandler(),
		TransferToLocation:    app.CreateTransferVanToLocationCommandHandler(),
		CreateRestockRequest:  app.CreateCreateRestockRequestCommandHandler(),
		CreateFollowupRequest: app.CreateCreateFollowupRequestCommandHandler(),
		CreateRoute:           app.CreateCreateRouteCommandHandler(),
		AttachRequest:         app.CreateAttachRequestCommandHandler(),
		ReorderStops:          app.CreateReorderStopsCommandHandler(),
		OptimizeRoute:         app.CreateOptimizeRouteCommandHandler(),
		AdvanceStop:           app.CreateAdvanceStopCommandHandler(),
		CompleteRoute:         app.CreateCompleteRouteCommandHandler(),
		CancelRoute:           app.CreateCancelRouteCommandHandler(),

		GetStock:         app.CreateGetStockQueryHandler(),
		GetLocationStock: app.CreateGetLocationStockQueryHandler(),
		GetRoute:         app.CreateGetRouteQueryHandler(),
	}, app.ReferenceDirectory())

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
