package main

import (
	"context"

	_ "analysis_billing/docs"
	"analysis_billing/internal/adapter/http/routes"
	"analysis_billing/internal/logger"
	"analysis_billing/internal/telemetry"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Analysis Billing API
// @version         1.0
// @description     Premium-unlock payment service: card and Pix payments via Mercado Pago, reconciled into analysis records through signed webhooks.

// @host localhost:8080

// @BasePath  /v1

func main() {
	shutdown, err := telemetry.InitProvider(context.Background())
	if err != nil {
		logger.Warn("telemetry disabled", zap.Error(err))
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("telemetry shutdown failed", zap.Error(err))
			}
		}()
	}

	routes.Run()
}
