package routes

import (
	"context"
	"os"

	_ "analysis_billing/docs"
	"analysis_billing/internal/adapter/http/handlers"
	"analysis_billing/internal/adapter/persistence/repository"
	"analysis_billing/internal/infrastructure/database"
	"analysis_billing/internal/infrastructure/events"
	"analysis_billing/internal/infrastructure/payments"
	"analysis_billing/internal/logger"
	"analysis_billing/internal/usecase"
	"analysis_billing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const defaultPort = "8080"

// Run wires the dependency graph and starts the server.
func Run() {
	router := gin.New()
	setMiddlewares(router)

	// The webhook contract distinguishes 405 (wrong method) from 404;
	// gin only emits 405 with this enabled.
	router.HandleMethodNotAllowed = true

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	logger.Info("server starting", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Fatal("failed to start the application", zap.Error(err))
	}
}

func registerRoutes(router *gin.Engine) {
	cfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		logger.Fatal("failed to load AWS config", zap.Error(err))
	}

	ddb := database.ConnectDynamoDB(cfg)
	recordRepo := repository.NewAnalysisRecordDynamoRepository(ddb)

	gateway := payments.NewMercadoPagoClient(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))

	var publisher interfaces.IPaymentEventPublisher
	if snsPublisher := events.NewSNSPublisher(cfg); snsPublisher.Configured() {
		publisher = snsPublisher
	} else {
		logger.Warn("AWS_SNS_TOPIC_ARN not set; premium unlock events disabled")
	}

	paymentUseCase := usecase.NewPaymentUseCase(recordRepo, gateway, publisher)
	webhookUseCase := usecase.NewWebhookUseCase(recordRepo, gateway, publisher)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, webhookHandler)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
