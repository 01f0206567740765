package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"atelier/cmd"
	httpadapter "atelier/internal/adapters/in/http"
	"atelier/internal/adapters/out/postgres/actorrepo"
	"atelier/internal/adapters/out/postgres/billrepo"
	"atelier/internal/adapters/out/postgres/orderrepo"
)

func main() {
	configs := getConfigs()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	gormDB := mustOpenDB(configs, logger)
	migrateDB(gormDB, logger)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		logger.Fatal("composition root failed", zap.Error(err))
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.Fatal("failed to start jobs", zap.Error(err))
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort, logger)
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

		GatewayBaseURL:   goDotEnvVariable("GATEWAY_BASE_URL"),
		GatewayKeyID:     goDotEnvVariable("GATEWAY_KEY_ID"),
		GatewayKeySecret: goDotEnvVariable("GATEWAY_KEY_SECRET"),

		CatalogBaseURL:      goDotEnvVariable("CATALOG_BASE_URL"),
		MeasurementsBaseURL: goDotEnvVariable("MEASUREMENTS_BASE_URL"),
		NotifyWebhookURL:    goDotEnvVariable("NOTIFY_WEBHOOK_URL"),
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

func mustOpenDB(configs cmd.Config, logger *zap.Logger) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError turns driver duplicate-key errors into gorm.ErrDuplicatedKey,
	// which the repositories map onto conflicts.
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	return gormDB
}

func migrateDB(gormDB *gorm.DB, logger *zap.Logger) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.StatusChangeDTO{},
		&billrepo.BillDTO{},
		&billrepo.PaymentDTO{},
		&actorrepo.ActorDTO{},
	)
	if err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *zap.Logger) {
	e := echo.New()
	e.Use(httpadapter.RequestLogger(logger))

	server := httpadapter.NewServer(
		app.CreateRegisterActorCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateAssignTailorCommandHandler(),
		app.CreateCompleteEmbroideryCommandHandler(),
		app.CreateGenerateBillCommandHandler(),
		app.CreateRecordPaymentCommandHandler(),
		app.CreateRefundPaymentCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetBillByOrderQueryHandler(),
	)
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil {
			logger.Info("web server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("web server shutdown failed", zap.Error(err))
	}
}
