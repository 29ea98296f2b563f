package main

import (
	"fmt"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"log/slog"

	"yard/cmd"
	yardhttp "yard/internal/adapters/in/http"
	"yard/internal/adapters/out/postgres/containerrepo"
	"yard/internal/adapters/out/postgres/positionrepo"
	"yard/internal/adapters/out/postgres/vehiclerepo"
	"yard/internal/adapters/out/postgres/workorderrepo"
	"yard/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	mustMigrate(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateDispatchVehicleCommandHandler(),
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	startWebServer(app, jobManager, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError maps unique index violations to gorm.ErrDuplicatedKey,
	// which the position repository relies on to report occupied coordinates.
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&containerrepo.ContainerDTO{},
		&positionrepo.PositionDTO{},
		&vehiclerepo.VehicleDTO{},
		&workorderrepo.WorkOrderDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, jobManager *jobs.JobManager, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := yardhttp.NewServer(
		app.CreateAssignPositionCommandHandler(),
		app.CreateMovePositionCommandHandler(),
		app.CreateRemovePositionCommandHandler(),
		app.CreateCreateWorkOrderCommandHandler(),
		app.CreateAssignVehicleCommandHandler(),
		app.CreateCompleteWorkOrderCommandHandler(),
		app.CreateCancelWorkOrderCommandHandler(),
		app.CreateGetLayoutQueryHandler(),
		app.CreateSuggestPositionQueryHandler(),
		app.CreateGetAvailablePositionsQueryHandler(),
		app.CreateGetUnplacedContainersQueryHandler(),
		app.CreateGetWorkOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		jobManager.StopAll()
		e.Close()
	}()

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
