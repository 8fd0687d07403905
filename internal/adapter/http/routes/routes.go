package routes

import (
	"log"
	"os"
	"strconv"

	_ "github.com/grupo95-symposium/registration-service/docs" // This will be auto-generated
	"github.com/grupo95-symposium/registration-service/internal/adapter/http/handlers"
	"github.com/grupo95-symposium/registration-service/internal/adapter/http/middleware"
	repository2 "github.com/grupo95-symposium/registration-service/internal/adapter/persistence/repository"
	"github.com/grupo95-symposium/registration-service/internal/infrastructure/database"
	"github.com/grupo95-symposium/registration-service/internal/infrastructure/payments"
	"github.com/grupo95-symposium/registration-service/internal/usecase"
	"github.com/grupo95-symposium/registration-service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const DefaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(listenPort()))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	attendeeRepo := repository2.NewAttendeeDynamoRepository(ddb)
	intentRepo := repository2.NewPaymentIntentDynamoRepository(ddb)
	registrationRepo := repository2.NewRegistrationDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	rzpGateway, err := payments.NewRazorpayGateway(os.Getenv("RAZORPAY_KEY_ID"), os.Getenv("RAZORPAY_KEY_SECRET"))
	if err != nil {
		log.Printf("Razorpay gateway not configured: %v", err)
	} else {
		paymentGateway = rzpGateway
	}

	pricing := usecase.PricingConfigFromEnv()
	ledger := usecase.NewEntryFeeLedger(attendeeRepo)
	intentService := usecase.NewPaymentIntentService(intentRepo, paymentGateway)

	registrationUseCase := usecase.NewRegistrationUseCase(registrationRepo, ledger, intentService, pricing)
	entryFeeUseCase := usecase.NewEntryFeeUseCase(ledger, intentService, pricing)
	reconcileUseCase := usecase.NewReconcileUseCase(intentRepo, registrationRepo, ledger, usecase.ReconcileSecrets{
		WebhookSecret: os.Getenv("RAZORPAY_WEBHOOK_SECRET"),
		KeySecret:     os.Getenv("RAZORPAY_KEY_SECRET"),
	})

	registrationHandler := handlers.NewRegistrationHandler(registrationUseCase)
	entryFeeHandler := handlers.NewEntryFeeHandler(entryFeeUseCase, reconcileUseCase)
	webhookHandler := handlers.NewWebhookHandler(reconcileUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, webhookHandler)

	// Rotas autenticadas
	authed := v1.Group("")
	authed.Use(middleware.RequireAuth(os.Getenv("AUTH_JWT_SECRET")))
	addRegistrationRoutes(authed, registrationHandler)
	addEntryFeeRoutes(authed, entryFeeHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func listenPort() int {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			return p
		}
		log.Printf("invalid PORT=%q, falling back to %d", v, DefaultPort)
	}
	return DefaultPort
}
