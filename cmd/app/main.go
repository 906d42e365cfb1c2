package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"produzione/cmd"
	httpin "produzione/internal/adapters/in/http"
	"produzione/internal/adapters/out/notifier"
	"produzione/internal/adapters/out/postgres/offerstaterepo"
	"produzione/internal/adapters/out/postgres/orderrepo"
	"produzione/internal/adapters/out/postgres/planningrepo"
	"produzione/internal/adapters/out/postgres/processingrepo"
	"produzione/internal/adapters/out/postgres/refdatarepo"
	"produzione/internal/adapters/out/postgres/sequencerepo"
	"produzione/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := connectDB(configs)
	migrateDB(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateReconcileWorkedQuantitiesCommandHandler(),
		app.CreateRebuildSummariesCommandHandler(),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		GranularityMinutes: goDotEnvIntVariable("GRANULARITY_MINUTES", 15),
		LockTimeoutMS:      goDotEnvIntVariable("LOCK_TIMEOUT_MS", 3000),
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

func goDotEnvIntVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer for %s: %v", key, err)
	}
	return value
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	return gormDB
}

func migrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&planningrepo.AllocationDTO{},
		&planningrepo.SummaryDTO{},
		&processingrepo.ProcessingDTO{},
		&sequencerepo.SequenceCodeDTO{},
		&offerstaterepo.OfferOrderStateDTO{},
		&refdatarepo.WorkLineDTO{},
		&refdatarepo.ArticleDTO{},
		&refdatarepo.EmployeeDTO{},
		&notifier.CacheEntryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateRecordProcessingCommandHandler(),
		app.CreateSavePlanningCommandHandler(),
		app.CreateForceRescheduleCommandHandler(),
		app.CreateRemoveOrderCommandHandler(),
		app.CreateGetPlanningDataQueryHandler(),
		app.CreateCheckTodayQueryHandler(),
		app.CreateCalculateHoursQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
