package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"workshop/cmd"
	workshophttp "workshop/internal/adapters/in/http"
	"workshop/internal/adapters/out/postgres/accountrepo"
	"workshop/internal/adapters/out/postgres/orderrepo"
	"workshop/internal/adapters/out/postgres/vehiclerepo"
	"workshop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateListOrdersByStatusQueryHandler(),
		slog.Default(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&accountrepo.AccountDTO{}, &accountrepo.CustomerDTO{}, &accountrepo.EmployeeDTO{},
		&vehiclerepo.VehicleDTO{}, &orderrepo.OrderDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := workshophttp.NewServer(
		workshophttp.CommandHandlers{
			RegisterCustomer: app.CreateRegisterCustomerCommandHandler(),
			RegisterEmployee: app.CreateRegisterEmployeeCommandHandler(),
			UpdateCustomer:   app.CreateUpdateCustomerCommandHandler(),
			AddVehicle:       app.CreateAddVehicleCommandHandler(),
			UpdateVehicle:    app.CreateUpdateVehicleCommandHandler(),
			CreateOrder:      app.CreateCreateOrderCommandHandler(),
			TransitionOrder:  app.CreateTransitionOrderCommandHandler(),
			UpdateOrder:      app.CreateUpdateOrderCommandHandler(),
			SetOrderPrice:    app.CreateSetOrderPriceCommandHandler(),
			DeleteCustomer:   app.CreateDeleteCustomerCommandHandler(),
			DeleteVehicle:    app.CreateDeleteVehicleCommandHandler(),
			DeleteEmployee:   app.CreateDeleteEmployeeCommandHandler(),
			DeleteOrder:      app.CreateDeleteOrderCommandHandler(),
		},
		workshophttp.QueryHandlers{
			ListOrdersByStatus:     app.CreateListOrdersByStatusQueryHandler(),
			ListVehiclesByCustomer: app.CreateListVehiclesByCustomerQueryHandler(),
			GetOrder:               app.CreateGetOrderQueryHandler(),
			AuthenticateAccount:    app.CreateAuthenticateAccountQueryHandler(),
		},
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
