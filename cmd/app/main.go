package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"shiprates/cmd"
	httpin "shiprates/internal/adapters/in/http"
	"shiprates/internal/jobs"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs, logger)

	jobManager := jobs.NewJobManager(app.CreateRefreshExchangeRateCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, logger, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warn("No .env file found, reading configuration from environment")
	}

	return cmd.Config{
		HTTPPort:              envOrDefault("HTTP_PORT", "8080"),
		OriginPostalCode:      os.Getenv("ORIGIN_POSTAL_CODE"),
		OriginCountry:         os.Getenv("ORIGIN_COUNTRY"),
		PartnerCountry:        os.Getenv("PARTNER_COUNTRY"),
		ExchangeRateURL:       os.Getenv("EXCHANGE_RATE_URL"),
		CanadaPostEnvironment: os.Getenv("CANADA_POST_ENVIRONMENT"),
		CanadaPostCustomer:    os.Getenv("CANADA_POST_CUSTOMER_NUMBER"),
		CanadaPostContract:    os.Getenv("CANADA_POST_CONTRACT_ID"),
		CanadaPostUsername:    os.Getenv("CANADA_POST_USERNAME"),
		CanadaPostPassword:    os.Getenv("CANADA_POST_PASSWORD"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(app *cmd.CompositionRoot, logger *slog.Logger, port string) {
	e := echo.New()
	e.HideBanner = true
	e.Use(httpin.RequestID(), httpin.RequestLogger(logger))

	server := httpin.NewServer(app.CreateGetShippingRatesQueryHandler())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
