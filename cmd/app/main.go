package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"backoffice/cmd"
	"backoffice/internal/adapters/in/http"
	"backoffice/internal/adapters/out/clock"
	"backoffice/internal/adapters/out/postgres/billrepo"
	"backoffice/internal/adapters/out/postgres/requestrepo"
	"backoffice/internal/adapters/out/postgres/shipperrepo"
	"backoffice/internal/adapters/out/postgres/userrepo"
	"backoffice/internal/core/application/auth"
	"backoffice/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	location, err := time.LoadLocation(configs.Timezone)
	if err != nil {
		log.Fatalf("Invalid timezone %q: %v", configs.Timezone, err)
	}

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	systemClock := clock.NewSystemClock(location)
	app := cmd.NewCompositionRoot(gormDB, systemClock)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := startJobs(&app, systemClock, configs, logger)
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:      goDotEnvVariable("JWT_SECRET"),
		JWTTTLMinutes:  goDotEnvVariable("JWT_TTL_MINUTES"),
		DigestSchedule: goDotEnvVariable("DIGEST_SCHEDULE"),
		Timezone:       goDotEnvVariable("TIMEZONE"),
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&shipperrepo.ShipperDTO{},
		&billrepo.BillDTO{},
		&requestrepo.RequestDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, systemClock clock.SystemClock, configs cmd.Config, logger *slog.Logger) *jobs.JobManager {
	digestJob := jobs.NewPendingRequestDigestJob(
		app.CreateListRequestsForDateQueryHandler(),
		systemClock,
		configs.DigestSchedule,
		logger,
	)

	jobManager := jobs.NewJobManager(digestJob)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	ttlMinutes, err := strconv.Atoi(configs.JWTTTLMinutes)
	if err != nil || ttlMinutes <= 0 {
		log.Fatalf("Invalid JWT_TTL_MINUTES %q", configs.JWTTTLMinutes)
	}
	tokens := http.NewTokenManager(configs.JWTSecret, time.Duration(ttlMinutes)*time.Minute)

	server := http.NewServer(
		auth.DefaultPolicy(),
		tokens,
		app.CreateUserRepository(),
		app.Clock(),
		app.CreateCreateBillsCommandHandler(),
		app.CreateExchangeBillCommandHandler(),
		app.CreateMarkTransferCommandHandler(),
		app.CreateSubmitRequestCommandHandler(),
		app.CreateResolveRequestCommandHandler(),
		app.CreateCreateShipperCommandHandler(),
		app.CreateSearchBillsQueryHandler(),
		app.CreateListShipperBillsQueryHandler(),
		app.CreateListRequestsQueryHandler(),
		app.CreateListRequestsForDateQueryHandler(),
		app.CreateListUsersQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
